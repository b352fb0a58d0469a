package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/example/meeting-planner/internal/application"
	"github.com/example/meeting-planner/internal/catalog"
	"github.com/example/meeting-planner/internal/config"
	"github.com/example/meeting-planner/internal/scheduler"
)

type slotsOptions struct {
	emails     string
	date       string
	minMinutes int
	busy       []string
}

func newSlotsCmd() *cobra.Command {
	opts := &slotsOptions{}
	cmd := &cobra.Command{
		Use:   "slots",
		Short: "Find common free time for the sample people",
		Long: `Compute the windows in which every listed person is free on a day.

The people come from the built-in sample registry and work the hours set by
SCHEDULER_WORKDAY_START and SCHEDULER_WORKDAY_END. Existing meetings can be
simulated with --busy, for example --busy joey@rag4j.org=10:00-11:30.`,
		Example: `  scheduler slots --emails jettro@rag4j.org,joey@rag4j.org --date 2024-03-18 --min 30`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSlots(cmd.Context(), cmd.OutOrStdout(), *opts)
		},
	}

	cmd.Flags().StringVar(&opts.emails, "emails", "", "Comma separated e-mail addresses (required)")
	cmd.Flags().StringVar(&opts.date, "date", "", "Day as YYYY-MM-DD (default: today)")
	cmd.Flags().IntVar(&opts.minMinutes, "min", 30, "Minimum slot length in minutes")
	cmd.Flags().StringArrayVar(&opts.busy, "busy", nil, "Existing meeting as email=HH:MM-HH:MM (repeatable)")
	_ = cmd.MarkFlagRequired("emails")
	return cmd
}

func runSlots(ctx context.Context, w io.Writer, opts slotsOptions) error {
	emails := parseCommaSeparatedList(opts.emails)
	if len(emails) == 0 {
		return fmt.Errorf("--emails must name at least one person")
	}
	if opts.minMinutes < 0 {
		return fmt.Errorf("--min must not be negative")
	}

	day := scheduler.DateOf(time.Now())
	if opts.date != "" {
		parsed, err := scheduler.ParseDate(opts.date)
		if err != nil {
			return err
		}
		day = parsed
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	registry := catalog.NewPersonRegistry()
	if err := catalog.SeedPersons(registry, scheduler.WithWorkingHours(cfg.WorkingHours)); err != nil {
		return err
	}
	quiet := slog.New(slog.NewTextHandler(io.Discard, nil))
	party := application.NewPartyServiceWithLogger(registry, nil, application.PartyServiceConfig{}, quiet)

	for _, entry := range opts.busy {
		email, start, end, err := parseBusy(entry)
		if err != nil {
			return err
		}
		if _, err := party.BookForAll(ctx, []string{email}, day, start, end, "busy"); err != nil {
			return err
		}
	}

	slots, err := party.FindCommonSlots(ctx, emails, day, time.Duration(opts.minMinutes)*time.Minute)
	if err != nil {
		return err
	}
	if len(slots) == 0 {
		_, err = fmt.Fprintf(w, "no common slot on %s\n", day)
		return err
	}
	for _, slot := range slots {
		if _, err := fmt.Fprintf(w, "%s %s\n", day, slot); err != nil {
			return err
		}
	}
	return nil
}

// parseBusy reads "email=HH:MM-HH:MM".
func parseBusy(value string) (email string, start, end scheduler.TimeOfDay, err error) {
	email, span, ok := strings.Cut(value, "=")
	if !ok {
		return "", 0, 0, fmt.Errorf("invalid --busy %q: expected email=HH:MM-HH:MM", value)
	}
	from, to, ok := strings.Cut(span, "-")
	if !ok {
		return "", 0, 0, fmt.Errorf("invalid --busy %q: expected email=HH:MM-HH:MM", value)
	}
	if start, err = scheduler.ParseTimeOfDay(from); err != nil {
		return "", 0, 0, err
	}
	if end, err = scheduler.ParseTimeOfDay(to); err != nil {
		return "", 0, 0, err
	}
	return strings.TrimSpace(email), start, end, nil
}

// parseCommaSeparatedList splits a comma separated list, dropping blanks.
func parseCommaSeparatedList(input string) []string {
	if strings.TrimSpace(input) == "" {
		return nil
	}
	parts := strings.Split(input, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
