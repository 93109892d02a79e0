// Birthday commands: set, show, and the upcoming-birthdays window query.
package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/pocketpal-dev/pocketpal/pkg/types"
)

// defaultBirthdayWindow is the window size when no day count is given.
const defaultBirthdayWindow = 7

var addBirthdayCmd = &cobra.Command{
	Use:   "add-birthday NAME DATE",
	Short: "Set a contact's birthday (DD.MM.YYYY)",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := types.ParseDate(args[1])
		if err != nil {
			return err
		}
		if err := contacts.SetBirthday(args[0], d); err != nil {
			return err
		}
		c, _ := contacts.Get(args[0])
		return ok("Birthday added.", c)
	},
}

var showBirthdayCmd = &cobra.Command{
	Use:   "show-birthday NAME",
	Short: "Show a contact's birthday",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := contacts.Get(args[0])
		if err != nil {
			return err
		}
		birthday := absent
		if c.Birthday != nil {
			birthday = c.Birthday.String()
		}
		if flagJSON {
			return printJSON(map[string]string{"name": c.Name, "birthday": birthday})
		}
		fmt.Println(birthday)
		return nil
	},
}

var birthdaysCmd = &cobra.Command{
	Use:   "birthdays [DAYS]",
	Short: "Show contacts with birthdays in the next N days (default 7)",
	Long: `Birthdays lists contacts whose next birthday falls within the given
number of days from today, including birthdays that wrap into the next
year. Results are ordered soonest first. The congratulation date moves to
the following Monday when the birthday lands on a weekend.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runBirthdays,
}

func runBirthdays(cmd *cobra.Command, args []string) error {
	days := defaultBirthdayWindow
	if len(args) == 1 {
		parsed, err := strconv.Atoi(args[0])
		if err != nil || parsed < 0 {
			return fmt.Errorf("invalid day count %q", args[0])
		}
		days = parsed
	}

	entries := contacts.UpcomingBirthdays(days)
	if flagJSON {
		return printJSON(entries)
	}
	if len(entries) == 0 {
		fmt.Printf("No upcoming birthdays found in next %d days.\n", days)
		return nil
	}
	for _, e := range entries {
		fmt.Printf("Contact name: %s, congratulation date: %s\n",
			e.Contact.Name, e.Congratulation.Format(types.DateLayout))
	}
	return nil
}
