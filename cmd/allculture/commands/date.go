package commands

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/allculture/internal/constants"
	"github.com/fivetwenty-io/allculture/pkg/culture"
)

// NewDateCommand creates the date command group.
func NewDateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "date",
		Short: "Convert dates to and from API timestamps",
		Long:  "Convert between human readable dates and the millisecond timestamps used by the API",
	}

	cmd.AddCommand(newDateToMillisCommand())
	cmd.AddCommand(newDateFormatCommand())

	return cmd
}

func newDateToMillisCommand() *cobra.Command {
	var timezone string

	cmd := &cobra.Command{
		Use:   "to-millis DATE",
		Short: "Convert a date to epoch milliseconds",
		Long:  "Parse a human readable date and print it as epoch milliseconds, truncated to whole seconds",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			location, err := loadLocation(timezone)
			if err != nil {
				return err
			}

			millis, err := culture.ParseToEpochMillisIn(args[0], location)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), millis)

			return err
		},
	}

	cmd.Flags().StringVar(&timezone, "timezone", "", "IANA zone for dates without an offset (default UTC)")

	return cmd
}

func newDateFormatCommand() *cobra.Command {
	var (
		pattern  string
		timezone string
	)

	cmd := &cobra.Command{
		Use:   "format MILLIS",
		Short: "Format epoch milliseconds as a date",
		Long:  "Render an API millisecond timestamp with a strftime pattern",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			millis, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("%w: %q", constants.ErrInvalidMillis, args[0])
			}

			location, err := loadLocation(timezone)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), culture.FormatFromEpochMillisIn(millis, pattern, location))

			return err
		},
	}

	cmd.Flags().StringVarP(&pattern, "pattern", "p", constants.DefaultDatePattern, "strftime pattern")
	cmd.Flags().StringVar(&timezone, "timezone", "", "IANA zone to render in (default UTC)")

	return cmd
}

func loadLocation(name string) (*time.Location, error) {
	if name == "" {
		return time.UTC, nil
	}

	location, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("%w: timezone %q: %w", constants.ErrInvalidConfigValue, name, err)
	}

	return location, nil
}
