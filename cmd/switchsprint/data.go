package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"switchsprint/internal/bootstrap"
	backupdto "switchsprint/internal/modules/backup/dto"
)

func newBackupCmd(flags *globalFlags) *cobra.Command {
	backup := &cobra.Command{Use: "backup", Short: "Backup folder"}

	status := func(use, short string, args cobra.PositionalArgs, fn func(ctx context.Context, app *bootstrap.App, args []string) (backupdto.StatusOutput, error)) *cobra.Command {
		return &cobra.Command{
			Use:   use,
			Short: short,
			Args:  args,
			RunE: func(cmd *cobra.Command, args []string) error {
				return withApp(cmd.Context(), flags, func(ctx context.Context, app *bootstrap.App) error {
					out, err := fn(ctx, app, args)
					if err != nil {
						return err
					}
					printBackup(cmd.OutOrStdout(), out)
					return nil
				})
			},
		}
	}

	backup.AddCommand(status("status", "Show backup status", cobra.NoArgs, func(ctx context.Context, app *bootstrap.App, _ []string) (backupdto.StatusOutput, error) {
		return app.BackupCLI.Status(ctx)
	}))
	backup.AddCommand(status("connect <dir>", "Grant and connect a backup folder", cobra.ExactArgs(1), func(ctx context.Context, app *bootstrap.App, args []string) (backupdto.StatusOutput, error) {
		return app.BackupCLI.Connect(ctx, args[0])
	}))
	backup.AddCommand(status("verify", "Re-check the remembered folder and reconnect", cobra.NoArgs, func(ctx context.Context, app *bootstrap.App, _ []string) (backupdto.StatusOutput, error) {
		return app.BackupCLI.Verify(ctx)
	}))

	backup.AddCommand(&cobra.Command{
		Use:   "disconnect",
		Short: "Forget the backup folder",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd.Context(), flags, func(ctx context.Context, app *bootstrap.App) error {
				if err := app.BackupCLI.Disconnect(ctx); err != nil {
					return err
				}
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "disconnected")
				return nil
			})
		},
	})

	backup.AddCommand(&cobra.Command{
		Use:   "flush",
		Short: "Write the backup now",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd.Context(), flags, func(ctx context.Context, app *bootstrap.App) error {
				if _, err := app.BackupCLI.Verify(ctx); err != nil {
					return err
				}
				if err := app.BackupCLI.SaveNow(ctx); err != nil {
					return err
				}
				out, err := app.BackupCLI.Status(ctx)
				if err != nil {
					return err
				}
				printBackup(cmd.OutOrStdout(), out)
				return nil
			})
		},
	})

	backup.AddCommand(&cobra.Command{
		Use:   "import <file.json>",
		Short: "Replace all data with the content of a backup file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd.Context(), flags, func(ctx context.Context, app *bootstrap.App) error {
				out, err := app.BackupCLI.Import(ctx, args[0])
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "imported %d sessions, %d applications\n", out.Sessions, out.Applications)
				return nil
			})
		},
	})

	return backup
}

func newExportCmd(flags *globalFlags) *cobra.Command {
	var report bool
	export := &cobra.Command{
		Use:   "export [dir]",
		Short: "Write the full document, and optionally a spreadsheet report, to a folder",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}
			return withApp(cmd.Context(), flags, func(ctx context.Context, app *bootstrap.App) error {
				out, err := app.BackupCLI.Export(ctx, dir, report)
				if err != nil {
					return err
				}
				for _, path := range out.Paths {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
				}
				return nil
			})
		},
	}
	export.Flags().BoolVar(&report, "report", true, "also write the xlsx report")
	return export
}

func newAnalyticsCmd(flags *globalFlags) *cobra.Command {
	analytics := &cobra.Command{Use: "analytics", Short: "Progress statistics"}

	analytics.AddCommand(&cobra.Command{
		Use:   "summary",
		Short: "Show lifetime totals",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd.Context(), flags, func(ctx context.Context, app *bootstrap.App) error {
				s, err := app.AnalyticsCLI.Summary(ctx)
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(),
					"sessions      %d (%d useful days)\nhours         %d\napplications  %d\nstudy days    %d/%d\nresources     %d/%d\n",
					s.TotalSessions, s.UsefulDays, s.TotalHours, s.TotalApplications,
					s.StudyDaysCompleted, s.StudyDaysTotal, s.ResourcesChecked, s.ResourcesTotal)
				return nil
			})
		},
	})

	analytics.AddCommand(&cobra.Command{
		Use:   "funnel",
		Short: "Show applications per status",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd.Context(), flags, func(ctx context.Context, app *bootstrap.App) error {
				stages, err := app.AnalyticsCLI.Funnel(ctx)
				if err != nil {
					return err
				}
				for _, s := range stages {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%-14s %4d  %3d%%\n", s.Status, s.Count, s.Percent)
				}
				return nil
			})
		},
	})

	var recentLimit int
	recent := &cobra.Command{
		Use:   "recent",
		Short: "Show recent session activity",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd.Context(), flags, func(ctx context.Context, app *bootstrap.App) error {
				rows, err := app.AnalyticsCLI.Recent(ctx, recentLimit)
				if err != nil {
					return err
				}
				for _, a := range rows {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s  %4d min  %d done\n", a.Date, a.Minutes, a.ItemsDone)
				}
				return nil
			})
		},
	}
	recent.Flags().IntVar(&recentLimit, "limit", 5, "sessions to show")
	analytics.AddCommand(recent)

	analytics.AddCommand(&cobra.Command{
		Use:   "wrapup",
		Short: "Show the end-of-day wrap-up",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd.Context(), flags, func(ctx context.Context, app *bootstrap.App) error {
				w, err := app.AnalyticsCLI.WrapUp(ctx)
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				_, _ = fmt.Fprintf(out, "%s\n  today     %d min, %d applications\n  checklist %d/%d (%d%%)\n",
					w.Date, w.Today.Minutes, w.Today.Applications, w.TasksCompleted, w.TasksTotal, w.CompletionPercent)
				if len(w.TopicsCovered) > 0 {
					_, _ = fmt.Fprintf(out, "  study     days %v\n", w.TopicsCovered)
				}
				_, _ = fmt.Fprintf(out, "  7 days    %d min, %d applications\n  lifetime  %d min, %d applications\n",
					w.Weekly.Minutes, w.Weekly.Applications, w.Lifetime.Minutes, w.Lifetime.Applications)
				return nil
			})
		},
	})

	var from, to string
	history := &cobra.Command{
		Use:   "history",
		Short: "Query indexed session history",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd.Context(), flags, func(ctx context.Context, app *bootstrap.App) error {
				rows, err := app.AnalyticsCLI.History(ctx, from, to)
				if err != nil {
					return err
				}
				for _, r := range rows {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s  %4d min  %d/%d done  %d apps  %d msgs\n",
						r.Date, r.Minutes, r.ItemsDone, r.ItemsTotal, r.ApplicationsCount, r.RecruiterMessagesCount)
				}
				return nil
			})
		},
	}
	history.Flags().StringVar(&from, "from", "", "first date (YYYY-MM-DD)")
	history.Flags().StringVar(&to, "to", "", "last date (YYYY-MM-DD)")
	analytics.AddCommand(history)

	var weeks int
	weekly := &cobra.Command{
		Use:   "weekly",
		Short: "Show per-week totals",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd.Context(), flags, func(ctx context.Context, app *bootstrap.App) error {
				rows, err := app.AnalyticsCLI.Weekly(ctx, weeks)
				if err != nil {
					return err
				}
				for _, w := range rows {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s  %2d sessions  %5d min  %3d apps\n", w.Week, w.Sessions, w.Minutes, w.Applications)
				}
				return nil
			})
		},
	}
	weekly.Flags().IntVar(&weeks, "limit", 8, "weeks to show")
	analytics.AddCommand(weekly)

	analytics.AddCommand(&cobra.Command{
		Use:   "reindex",
		Short: "Rebuild the history index from the document",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd.Context(), flags, func(ctx context.Context, app *bootstrap.App) error {
				n, err := app.AnalyticsCLI.Reindex(ctx)
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "indexed %d sessions\n", n)
				return nil
			})
		},
	})

	analytics.AddCommand(&cobra.Command{
		Use:   "export <dir>",
		Short: "Write the spreadsheet report",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd.Context(), flags, func(ctx context.Context, app *bootstrap.App) error {
				path, err := app.AnalyticsCLI.Export(ctx, args[0])
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
				return nil
			})
		},
	})

	return analytics
}

func printBackup(w io.Writer, s backupdto.StatusOutput) {
	_, _ = fmt.Fprintf(w, "status: %s\n", s.Status)
	if s.Dir != "" {
		_, _ = fmt.Fprintf(w, "folder: %s\n", s.Dir)
	}
	if s.LastSaved != nil {
		_, _ = fmt.Fprintf(w, "saved:  %s\n", s.LastSaved.Local().Format("2006-01-02 15:04:05"))
	}
	if s.Pending {
		_, _ = fmt.Fprintln(w, "a write is pending")
	}
	if s.LastError != "" {
		_, _ = fmt.Fprintf(w, "error:  %s\n", s.LastError)
	}
}
