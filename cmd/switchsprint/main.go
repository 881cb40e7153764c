package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"switchsprint/internal/bootstrap"
	timerdto "switchsprint/internal/modules/timer/dto"
	"switchsprint/internal/platform/config"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type globalFlags struct {
	dataDir     string
	metricsAddr string
}

func newRootCmd() *cobra.Command {
	flags := &globalFlags{}

	root := &cobra.Command{
		Use:           "switchsprint",
		Short:         "Daily job-search sprint tracker",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&flags.dataDir, "data", defaultDataDir(), "data directory")
	root.PersistentFlags().StringVar(&flags.metricsAddr, "metrics-addr", "", "serve Prometheus metrics on this address (tui and timer run)")

	root.AddCommand(newTUICmd(flags))
	root.AddCommand(newSessionCmd(flags))
	root.AddCommand(newChecklistCmd(flags))
	root.AddCommand(newTimerCmd(flags))
	root.AddCommand(newStudyCmd(flags))
	root.AddCommand(newApplicationCmd(flags))
	root.AddCommand(newContactCmd(flags))
	root.AddCommand(newResumeCmd(flags))
	root.AddCommand(newResourceCmd(flags))
	root.AddCommand(newBackupCmd(flags))
	root.AddCommand(newExportCmd(flags))
	root.AddCommand(newAnalyticsCmd(flags))
	return root
}

func defaultDataDir() string {
	if v := os.Getenv("SWITCHSPRINT_DATA"); v != "" {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".switchsprint")
}

func loadApp(ctx context.Context, flags *globalFlags) (*bootstrap.App, error) {
	cfg, err := config.New(flags.dataDir)
	if err != nil {
		return nil, err
	}
	if flags.metricsAddr != "" {
		cfg.MetricsAddr = flags.metricsAddr
	}
	return bootstrap.New(ctx, cfg)
}

// withApp runs fn against a freshly wired app and always closes it, which
// flushes a pending backup write.
func withApp(ctx context.Context, flags *globalFlags, fn func(ctx context.Context, app *bootstrap.App) error) error {
	app, err := loadApp(ctx, flags)
	if err != nil {
		return err
	}
	runErr := fn(ctx, app)
	return errors.Join(runErr, app.Close(context.Background()))
}

func newTUICmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Run the terminal UI",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()
			return withApp(ctx, flags, func(ctx context.Context, app *bootstrap.App) error {
				if err := app.ServeMetrics(ctx); err != nil {
					return err
				}
				return bootstrap.RunTUI(app)
			})
		},
	}
}

func newTimerCmd(flags *globalFlags) *cobra.Command {
	timer := &cobra.Command{Use: "timer", Short: "Checklist timer"}

	timer.AddCommand(&cobra.Command{
		Use:   "run <item-id>",
		Short: "Time one checklist item in the foreground until interrupted",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return withApp(ctx, flags, func(ctx context.Context, app *bootstrap.App) error {
				if err := app.ServeMetrics(ctx); err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				stopped := make(chan timerdto.EventOutput, 1)
				app.TimerCLI.Subscribe(func(event timerdto.EventOutput) {
					switch event.Kind {
					case "tick":
						_, _ = fmt.Fprintf(out, "\r%s  %s  %3.0f%%", args[0], clockText(event.TimeSpentSeconds), event.Progress*100)
					case "stopped":
						select {
						case stopped <- event:
						default:
						}
					}
				})
				if _, err := app.TimerCLI.Start(ctx, args[0]); err != nil {
					return err
				}
				_, _ = fmt.Fprintf(out, "timing %s, ctrl+c to stop\n", args[0])
				select {
				case <-ctx.Done():
					if err := app.TimerCLI.Stop(context.Background()); err != nil {
						return err
					}
					_, _ = fmt.Fprintln(out, "\nstopped")
				case event := <-stopped:
					_, _ = fmt.Fprintf(out, "\nstopped: %s\n", event.Reason)
				}
				return nil
			})
		},
	})
	return timer
}

func clockText(seconds int) string {
	h, m, s := seconds/3600, seconds%3600/60, seconds%60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%02d:%02d", m, s)
}
