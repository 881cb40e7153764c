package main

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"switchsprint/internal/bootstrap"
	sessiondto "switchsprint/internal/modules/session/dto"
)

func newSessionCmd(flags *globalFlags) *cobra.Command {
	session := &cobra.Command{Use: "session", Short: "Daily session lifecycle"}

	show := func(use, short string, fn func(ctx context.Context, app *bootstrap.App) (sessiondto.SessionOutput, error)) *cobra.Command {
		return &cobra.Command{
			Use:   use,
			Short: short,
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return withApp(cmd.Context(), flags, func(ctx context.Context, app *bootstrap.App) error {
					out, err := fn(ctx, app)
					if err != nil {
						return err
					}
					printSession(cmd.OutOrStdout(), out)
					return nil
				})
			},
		}
	}

	session.AddCommand(show("today", "Show today's session", func(ctx context.Context, app *bootstrap.App) (sessiondto.SessionOutput, error) {
		return app.SessionCLI.Today(ctx)
	}))
	session.AddCommand(show("start", "Start today's session", func(ctx context.Context, app *bootstrap.App) (sessiondto.SessionOutput, error) {
		return app.SessionCLI.Start(ctx)
	}))
	session.AddCommand(show("end", "End today's session", func(ctx context.Context, app *bootstrap.App) (sessiondto.SessionOutput, error) {
		return app.SessionCLI.End(ctx)
	}))

	var (
		notes      string
		apps       int
		recruiters int
	)
	wrap := &cobra.Command{
		Use:   "wrap",
		Short: "Record end-of-day notes and counters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var input sessiondto.SessionDetailsInput
			if cmd.Flags().Changed("notes") {
				input.Notes = &notes
			}
			if cmd.Flags().Changed("applications") {
				input.ApplicationsCount = &apps
			}
			if cmd.Flags().Changed("recruiters") {
				input.RecruiterMessagesCount = &recruiters
			}
			return withApp(cmd.Context(), flags, func(ctx context.Context, app *bootstrap.App) error {
				out, err := app.SessionCLI.Wrap(ctx, input)
				if err != nil {
					return err
				}
				printSession(cmd.OutOrStdout(), out)
				return nil
			})
		},
	}
	wrap.Flags().StringVar(&notes, "notes", "", "session notes")
	wrap.Flags().IntVar(&apps, "applications", 0, "applications sent today")
	wrap.Flags().IntVar(&recruiters, "recruiters", 0, "recruiter messages sent today")
	session.AddCommand(wrap)

	var limit int
	history := &cobra.Command{
		Use:   "history",
		Short: "List past sessions, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd.Context(), flags, func(ctx context.Context, app *bootstrap.App) error {
				sessions, err := app.SessionCLI.History(ctx, limit)
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				for _, s := range sessions {
					_, _ = fmt.Fprintf(out, "%s  %-8s  %3d min  %d/%d done  %d apps\n",
						s.Date, s.State, s.TotalTimeSpentSeconds/60, s.CompletedItems, len(s.Checklist), s.ApplicationsCount)
				}
				return nil
			})
		},
	}
	history.Flags().IntVar(&limit, "limit", 14, "maximum sessions to list (0 for all)")
	session.AddCommand(history)

	return session
}

func newChecklistCmd(flags *globalFlags) *cobra.Command {
	checklist := &cobra.Command{Use: "checklist", Short: "Today's checklist items"}

	checklist.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List today's items",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd.Context(), flags, func(ctx context.Context, app *bootstrap.App) error {
				out, err := app.SessionCLI.Today(ctx)
				if err != nil {
					return err
				}
				printSession(cmd.OutOrStdout(), out)
				return nil
			})
		},
	})

	checklist.AddCommand(&cobra.Command{
		Use:   "done <item-id> [true|false]",
		Short: "Mark an item done, or undone with false",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			done := true
			if len(args) == 2 {
				v, err := strconv.ParseBool(args[1])
				if err != nil {
					return fmt.Errorf("parse done flag: %w", err)
				}
				done = v
			}
			return patchItem(cmd, flags, sessiondto.ChecklistPatchInput{ItemID: args[0], Completed: &done})
		},
	})

	checklist.AddCommand(&cobra.Command{
		Use:   "note <item-id> <text>",
		Short: "Set an item's notes",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return patchItem(cmd, flags, sessiondto.ChecklistPatchInput{ItemID: args[0], Notes: &args[1]})
		},
	})

	var (
		label   string
		minutes int
		spent   int
	)
	set := &cobra.Command{
		Use:   "set <item-id>",
		Short: "Edit an item's label, planned minutes or tracked time",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := sessiondto.ChecklistPatchInput{ItemID: args[0]}
			if cmd.Flags().Changed("label") {
				input.Label = &label
			}
			if cmd.Flags().Changed("minutes") {
				input.DefaultTimeMinutes = &minutes
			}
			if cmd.Flags().Changed("spent") {
				input.TimeSpentSeconds = &spent
			}
			return patchItem(cmd, flags, input)
		},
	}
	set.Flags().StringVar(&label, "label", "", "item label")
	set.Flags().IntVar(&minutes, "minutes", 0, "planned minutes")
	set.Flags().IntVar(&spent, "spent", 0, "tracked seconds")
	checklist.AddCommand(set)

	var addMinutes int
	add := &cobra.Command{
		Use:   "add <label>",
		Short: "Add a custom item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd.Context(), flags, func(ctx context.Context, app *bootstrap.App) error {
				item, err := app.SessionCLI.AddItem(ctx, args[0], addMinutes)
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "added %s (%s)\n", item.Label, item.ID)
				return nil
			})
		},
	}
	add.Flags().IntVar(&addMinutes, "minutes", 30, "planned minutes")
	checklist.AddCommand(add)

	checklist.AddCommand(&cobra.Command{
		Use:   "remove <item-id>",
		Short: "Remove a custom item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd.Context(), flags, func(ctx context.Context, app *bootstrap.App) error {
				if err := app.SessionCLI.RemoveItem(ctx, args[0]); err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "removed %s\n", args[0])
				return nil
			})
		},
	})

	return checklist
}

func patchItem(cmd *cobra.Command, flags *globalFlags, input sessiondto.ChecklistPatchInput) error {
	return withApp(cmd.Context(), flags, func(ctx context.Context, app *bootstrap.App) error {
		out, err := app.SessionCLI.UpdateItem(ctx, input)
		if err != nil {
			return err
		}
		if !out.Found {
			return fmt.Errorf("no checklist item %q today", input.ItemID)
		}
		printSession(cmd.OutOrStdout(), out.Session)
		return nil
	})
}

func printSession(w io.Writer, s sessiondto.SessionOutput) {
	_, _ = fmt.Fprintf(w, "%s  %s  %s tracked  %d/%d done\n",
		s.Date, s.State, clockText(s.TotalTimeSpentSeconds), s.CompletedItems, len(s.Checklist))
	for _, item := range s.Checklist {
		mark := "[ ]"
		if item.Completed {
			mark = "[x]"
		}
		_, _ = fmt.Fprintf(w, "  %s %-18s %-30s %s / %d min\n",
			mark, item.ID, item.Label, clockText(item.TimeSpentSeconds), item.DefaultTimeMinutes)
	}
	if s.Notes != "" {
		_, _ = fmt.Fprintf(w, "notes: %s\n", s.Notes)
	}
}
