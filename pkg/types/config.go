package types

// Config holds the parameters for opening the snapshot gateway.
type Config struct {
	DataDir string `json:"data_dir" yaml:"data_dir"`
}

// Validate checks that the Config is well-formed. It returns a sentinel
// error from this package on failure.
func (c Config) Validate() error {
	if c.DataDir == "" {
		return ErrDataDirEmpty
	}
	return nil
}
