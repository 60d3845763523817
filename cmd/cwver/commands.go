package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/username/cwver/internal/bisect"
	"github.com/username/cwver/internal/calendar"
	"github.com/username/cwver/internal/cwver"
	"github.com/username/cwver/pkg/dateutil"
)

func (a *app) todayCmd() *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "today",
		Short: "Display today's date as cw version string",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runToday(cmd, date)
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Use this date (YYYY-MM-DD) instead of the system clock")

	return cmd
}

func (a *app) runToday(cmd *cobra.Command, date string) error {
	today := dateutil.Today(now())
	if date != "" {
		d, err := dateutil.ParseDate(date)
		if err != nil {
			return fmt.Errorf("invalid --date: %w", err)
		}
		today = d
	}

	v, err := a.cfg.Converter().FromDate(today)
	if err != nil {
		return err
	}

	a.logger.Debug("Resolved today", zap.Stringer("date", today), zap.Stringer("version", v))

	newPrinter(cmd.OutOrStdout()).today(v, today)
	return nil
}

func (a *app) convertCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "convert <cwver|YYYY-MM-DD>",
		Short: "Convert cw version string (e.g. 21w45.7) into ISO date or back",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tok, err := cwver.ParseToken(args[0])
			if err != nil {
				return err
			}

			out, err := a.cfg.Converter().Convert(tok)
			if err != nil {
				return err
			}

			a.logger.Debug("Converted token",
				zap.String("input", tok.Raw),
				zap.Stringer("kind", tok.Kind),
				zap.String("output", out))

			newPrinter(cmd.OutOrStdout()).converted(tok.Raw, out)
			return nil
		},
	}
}

func (a *app) bisectCmd() *cobra.Command {
	var workdays string
	var holidayFiles []string

	cmd := &cobra.Command{
		Use:   "bisect <from> <till>",
		Short: "Calculate the workday(s) in the middle of a regression range",
		Long: "Calculates the workday(s) in the middle of two given cw versions spanning a regression range. " +
			"Saturdays and sundays are ignored. Use --workdays to override.",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			policy, err := a.cfg.WorkdayPolicy()
			if cmd.Flags().Changed("workdays") {
				policy, err = bisect.ParsePolicy(workdays)
			}
			if err != nil {
				return err
			}
			if policy.Empty() {
				return fmt.Errorf("no workdays given")
			}

			files := a.cfg.Holidays.Files
			if cmd.Flags().Changed("holidays") {
				files = holidayFiles
			}

			conv := a.cfg.Converter()
			opts := []bisect.Option{
				bisect.WithConverter(conv),
				bisect.WithLogger(a.logger),
			}
			if len(files) > 0 {
				cal, err := calendar.FromFiles(files, a.logger)
				if err != nil {
					return err
				}
				opts = append(opts, bisect.WithCalendar(cal))
			}

			from, err := cwver.ParseToken(args[0])
			if err != nil {
				return err
			}
			till, err := cwver.ParseToken(args[1])
			if err != nil {
				return err
			}

			res, err := runBisect(conv, from, till, policy, opts)
			if err != nil {
				return err
			}

			a.logger.Info("Bisect finished",
				zap.Stringer("start", res.Start),
				zap.Stringer("end", res.End),
				zap.Int("workdays", res.WorkdayCount),
				zap.Int("midpoints", len(res.Midpoints)))

			newPrinter(cmd.OutOrStdout()).bisectResult(conv, res)
			return nil
		},
	}

	cmd.Flags().StringVarP(&workdays, "workdays", "w", "1,2,3,4,5", "Comma-separated ISO weekdays counted as workdays (1=Mon ... 7=Sun)")
	cmd.Flags().StringSliceVar(&holidayFiles, "holidays", nil, "Calendar file(s) with day overrides (YYYY-MM-DD type [note])")

	return cmd
}

func runBisect(conv cwver.Converter, from, till cwver.Token, policy bisect.WorkdayPolicy, opts []bisect.Option) (bisect.Result, error) {
	if from.Kind == cwver.KindVersion && till.Kind == cwver.KindVersion {
		return bisect.Bisect(from.Version, till.Version, policy, opts...)
	}

	a, err := conv.ResolveDate(from)
	if err != nil {
		return bisect.Result{}, err
	}
	b, err := conv.ResolveDate(till)
	if err != nil {
		return bisect.Result{}, err
	}
	return bisect.BisectDates(a, b, policy, opts...)
}
