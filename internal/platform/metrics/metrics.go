// Package metrics exposes process counters for long-running hosts (tui, timer run).
package metrics

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Registry bundles the collectors the services report into.
type Registry struct {
	reg *prometheus.Registry

	DocumentSaves *prometheus.CounterVec
	TimerTicks    *prometheus.CounterVec
	BackupWrites  *prometheus.CounterVec
	BackupStatus  *prometheus.GaugeVec
}

func New() *Registry {
	reg := prometheus.NewRegistry()
	r := &Registry{
		reg: reg,
		DocumentSaves: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "switchsprint",
			Name:      "document_saves_total",
			Help:      "Primary store writes by result.",
		}, []string{"result"}),
		TimerTicks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "switchsprint",
			Name:      "timer_ticks_total",
			Help:      "Checklist timer ticks by outcome.",
		}, []string{"outcome"}),
		BackupWrites: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "switchsprint",
			Name:      "backup_writes_total",
			Help:      "Backup folder writes by result.",
		}, []string{"result"}),
		BackupStatus: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "switchsprint",
			Name:      "backup_status",
			Help:      "1 for the current backup status, 0 otherwise.",
		}, []string{"status"}),
	}
	reg.MustRegister(r.DocumentSaves, r.TimerTicks, r.BackupWrites, r.BackupStatus)
	return r
}

// Gatherer is exposed for tests.
func (r *Registry) Gatherer() prometheus.Gatherer {
	return r.reg
}

// Serve exposes /metrics on addr until ctx is done. An empty addr is a no-op.
func (r *Registry) Serve(ctx context.Context, addr string, logger *slog.Logger) error {
	if addr == "" {
		return nil
	}
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("start metrics listener: %w", err)
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(r.reg, promhttp.HandlerOpts{}))
	srv := &http.Server{
		Handler:           mux,
		ReadHeaderTimeout: 2 * time.Second,
	}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()
	go func() {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Warn("metrics endpoint stopped", slog.String("error", err.Error()))
		}
	}()
	logger.Info("metrics endpoint listening", slog.String("addr", ln.Addr().String()))
	return nil
}

// The helpers below accept a nil receiver so services can run without metrics.

func (r *Registry) CountSave(result string) {
	if r == nil {
		return
	}
	r.DocumentSaves.WithLabelValues(result).Inc()
}

func (r *Registry) CountTick(outcome string) {
	if r == nil {
		return
	}
	r.TimerTicks.WithLabelValues(outcome).Inc()
}

func (r *Registry) CountBackup(result string) {
	if r == nil {
		return
	}
	r.BackupWrites.WithLabelValues(result).Inc()
}

// SetBackupStatus marks current as the only active status among all.
func (r *Registry) SetBackupStatus(current string, all []string) {
	if r == nil {
		return
	}
	for _, s := range all {
		v := 0.0
		if s == current {
			v = 1
		}
		r.BackupStatus.WithLabelValues(s).Set(v)
	}
}
