package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"switchsprint/internal/bootstrap"
	studydto "switchsprint/internal/modules/study/dto"
)

func newStudyCmd(flags *globalFlags) *cobra.Command {
	study := &cobra.Command{Use: "study", Short: "Study plan"}

	study.AddCommand(&cobra.Command{
		Use:   "plan",
		Short: "Show the study plan",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd.Context(), flags, func(ctx context.Context, app *bootstrap.App) error {
				plan, err := app.StudyCLI.Plan(ctx)
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				_, _ = fmt.Fprintf(out, "start %s  today day %d  focus day %d  %d/%d done\n",
					orDash(plan.StartDate), plan.CurrentDay, plan.FocusedDay, plan.Completed, len(plan.Days))
				for _, d := range plan.Days {
					mark := "[ ]"
					switch {
					case d.Completed:
						mark = "[x]"
					case d.Locked:
						mark = " - "
					}
					_, _ = fmt.Fprintf(out, "  %s day %2d  %-10s %s | %s | %s\n",
						mark, d.DayNumber, orDash(d.Date), d.TopicSQL, d.TopicPython, d.TopicSpark)
				}
				return nil
			})
		},
	})

	var restart bool
	start := &cobra.Command{
		Use:   "start",
		Short: "Set the plan's start date to today",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd.Context(), flags, func(ctx context.Context, app *bootstrap.App) error {
				date, err := app.StudyCLI.Start(ctx, restart)
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "plan starts %s\n", date)
				return nil
			})
		},
	}
	start.Flags().BoolVar(&restart, "restart", false, "move an existing start date to today")
	study.AddCommand(start)

	study.AddCommand(&cobra.Command{
		Use:   "complete <day> [true|false]",
		Short: "Mark a day done, or undone with false",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			day, err := parseDay(args[0])
			if err != nil {
				return err
			}
			done := true
			if len(args) == 2 {
				if done, err = strconv.ParseBool(args[1]); err != nil {
					return fmt.Errorf("parse done flag: %w", err)
				}
			}
			return withApp(cmd.Context(), flags, func(ctx context.Context, app *bootstrap.App) error {
				out, err := app.StudyCLI.Complete(ctx, day, done)
				if err != nil {
					return err
				}
				printDay(cmd, out)
				return nil
			})
		},
	})

	study.AddCommand(&cobra.Command{
		Use:   "note <day> <text>",
		Short: "Set a day's notes",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			day, err := parseDay(args[0])
			if err != nil {
				return err
			}
			return updateDay(cmd, flags, studydto.UpdateDayInput{DayNumber: day, Notes: &args[1]})
		},
	})

	var remove bool
	topic := &cobra.Command{
		Use:   "topic <day> <topic>",
		Short: "Add a custom topic to a day, or remove it with --remove",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			day, err := parseDay(args[0])
			if err != nil {
				return err
			}
			input := studydto.UpdateDayInput{DayNumber: day, AddTopic: args[1]}
			if remove {
				input = studydto.UpdateDayInput{DayNumber: day, RemoveTopic: args[1]}
			}
			return updateDay(cmd, flags, input)
		},
	}
	topic.Flags().BoolVar(&remove, "remove", false, "remove the topic instead of adding it")
	study.AddCommand(topic)

	study.AddCommand(&cobra.Command{
		Use:   "focus <day>",
		Short: "Move focus to a day",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			day, err := parseDay(args[0])
			if err != nil {
				return err
			}
			return withApp(cmd.Context(), flags, func(ctx context.Context, app *bootstrap.App) error {
				focused, err := app.StudyCLI.Focus(ctx, day)
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "focus day %d\n", focused)
				return nil
			})
		},
	})

	study.AddCommand(&cobra.Command{
		Use:   "next",
		Short: "Move focus to the next unfinished day",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd.Context(), flags, func(ctx context.Context, app *bootstrap.App) error {
				focused, err := app.StudyCLI.Next(ctx)
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "focus day %d\n", focused)
				return nil
			})
		},
	})

	study.AddCommand(&cobra.Command{
		Use:   "import <file.json>",
		Short: "Replace the study plan with a JSON array of days",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd.Context(), flags, func(ctx context.Context, app *bootstrap.App) error {
				n, err := app.StudyCLI.Import(ctx, args[0])
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "imported %d days\n", n)
				return nil
			})
		},
	})

	study.AddCommand(&cobra.Command{
		Use:   "export <file.md>",
		Short: "Write a markdown progress report",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd.Context(), flags, func(ctx context.Context, app *bootstrap.App) error {
				report, err := app.StudyCLI.Export(ctx, args[0])
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%d/%d days)\n", report.Path, report.CompletedDays, report.TotalDays)
				return nil
			})
		},
	})

	study.AddCommand(&cobra.Command{
		Use:   "reminder",
		Short: "Print a calendar link for a daily 21:30 study reminder",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd.Context(), flags, func(ctx context.Context, app *bootstrap.App) error {
				text, err := app.StudyCLI.Reminder(ctx)
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), text)
				return nil
			})
		},
	})

	return study
}

func updateDay(cmd *cobra.Command, flags *globalFlags, input studydto.UpdateDayInput) error {
	return withApp(cmd.Context(), flags, func(ctx context.Context, app *bootstrap.App) error {
		out, err := app.StudyCLI.Update(ctx, input)
		if err != nil {
			return err
		}
		printDay(cmd, out)
		return nil
	})
}

func parseDay(raw string) (int, error) {
	day, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("parse day number %q: %w", raw, err)
	}
	return day, nil
}

func printDay(cmd *cobra.Command, d studydto.DayOutput) {
	state := "open"
	if d.Completed {
		state = "done " + d.CompletedDate
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "day %d  %s\n", d.DayNumber, state)
	if len(d.CustomTopics) > 0 {
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "  topics: %v\n", d.CustomTopics)
	}
	if d.Notes != "" {
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "  notes: %s\n", d.Notes)
	}
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
