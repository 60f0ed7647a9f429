package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/username/holiday-calendar/pkg/easter"
	"go.uber.org/zap"
)

func easterCmd() *cobra.Command {
	var year int
	var reckoning string

	cmd := &cobra.Command{
		Use:   "easter",
		Short: "Print Easter Sunday for a year",
		RunE: func(cmd *cobra.Command, args []string) error {
			reckonings := []easter.Reckoning{easter.Western, easter.Orthodox}
			if reckoning != "" && reckoning != "all" {
				r, err := easter.ParseReckoning(reckoning)
				if err != nil {
					return err
				}
				reckonings = []easter.Reckoning{r}
			}

			for _, r := range reckonings {
				date, ok := easter.Sunday(r, year)
				if !ok {
					fmt.Fprintf(cmd.OutOrStdout(), "%-9s %d: not defined\n", r, year)
					continue
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%-9s %s\n", r, date.Format("2006-01-02"))
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&year, "year", time.Now().Year(), "Year")
	cmd.Flags().StringVar(&reckoning, "reckoning", "all", "western, orthodox or all")

	return cmd
}

func weekendCmd() *cobra.Command {
	var code string
	var atStr string
	var tz string

	cmd := &cobra.Command{
		Use:   "weekend",
		Short: "Check whether an instant falls on a calendar's weekend",
		RunE: func(cmd *cobra.Command, args []string) error {
			loc := time.UTC
			if tz != "" {
				var err error
				loc, err = time.LoadLocation(tz)
				if err != nil {
					return fmt.Errorf("invalid time zone: %w", err)
				}
			}

			at := time.Now()
			if atStr != "" {
				var err error
				at, err = time.Parse(time.RFC3339, atStr)
				if err != nil {
					return fmt.Errorf("invalid --at (want RFC3339): %w", err)
				}
			}

			registry, err := initializeRegistry()
			if err != nil {
				return err
			}
			cal, err := registry.Get(code)
			if err != nil {
				return err
			}

			weekend := cal.IsWeekend(at, loc)
			logger.Debug("Weekend checked",
				zap.String("calendar", cal.Code()),
				zap.Time("at", at),
				zap.String("location", loc.String()),
				zap.Bool("weekend", weekend))

			local := at.In(loc)
			verdict := "a working day"
			if weekend {
				verdict = "a weekend day"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s (%s) is %s in %s\n",
				local.Format("2006-01-02 15:04 MST"), local.Weekday(), verdict, cal.Code())
			return nil
		},
	}

	cmd.Flags().StringVar(&code, "calendar", "", "Calendar code")
	cmd.Flags().StringVar(&atStr, "at", "", "Instant in RFC3339 (now when empty)")
	cmd.Flags().StringVar(&tz, "tz", "", "IANA time zone the weekday is taken in (UTC when empty)")
	_ = cmd.MarkFlagRequired("calendar")

	return cmd
}
