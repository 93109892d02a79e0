// Package snapshot persists the contact and note stores as JSONL files,
// one self-describing JSON record per line. Writes are atomic: records go
// to a temp file which is fsynced and renamed over the previous snapshot,
// so an interrupted save never corrupts the prior state. The two snapshots
// are independent; deleting or corrupting one never affects the other.
package snapshot
