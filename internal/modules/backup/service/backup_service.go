package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"switchsprint/internal/modules/backup/domain"
	backupout "switchsprint/internal/modules/backup/port/out"
	docdomain "switchsprint/internal/modules/document/domain"
	"switchsprint/internal/platform/clock"
	apperrors "switchsprint/internal/platform/errors"
	"switchsprint/internal/platform/metrics"
)

type Options struct {
	Debounce      time.Duration
	IncludeReport bool
	Logger        *slog.Logger
	Metrics       *metrics.Registry
}

// BackupService mirrors the document into a user-granted folder. Writes are
// debounced, re-check the folder right before writing and never touch the
// primary store.
type BackupService struct {
	docs    backupout.DocumentSource
	grants  backupout.GrantStore
	folder  backupout.Folder
	watcher backupout.FolderWatcher
	report  backupout.ReportRenderer
	clock   clock.Clock
	opts    Options
	logger  *slog.Logger

	writeMu sync.Mutex

	mu        sync.Mutex
	status    domain.Status
	dir       string
	lastSaved *time.Time
	lastErr   string
	gen       uint64
	timer     *time.Timer
	pending   bool
	stopWatch func()
	closed    bool
	listeners []func(domain.Snapshot)
}

func NewBackupService(docs backupout.DocumentSource, grants backupout.GrantStore, folder backupout.Folder, watcher backupout.FolderWatcher, report backupout.ReportRenderer, clk clock.Clock, opts Options) *BackupService {
	if opts.Debounce <= 0 {
		opts.Debounce = 2 * time.Second
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	s := &BackupService{
		docs:    docs,
		grants:  grants,
		folder:  folder,
		watcher: watcher,
		report:  report,
		clock:   clk,
		opts:    opts,
		logger:  opts.Logger,
		status:  domain.StatusDisconnected,
	}
	s.opts.Metrics.SetBackupStatus(string(s.status), domain.StatusNames())
	return s
}

// OnStatus registers a callback run after every status change, without locks held.
func (s *BackupService) OnStatus(fn func(domain.Snapshot)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, fn)
}

func (s *BackupService) Snapshot() domain.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *BackupService) snapshotLocked() domain.Snapshot {
	snap := domain.Snapshot{Status: s.status, Dir: s.dir, LastError: s.lastErr, Pending: s.pending}
	if s.lastSaved != nil {
		saved := *s.lastSaved
		snap.LastSaved = &saved
	}
	return snap
}

// Restore loads a remembered grant. The sink stays disconnected until Verify.
func (s *BackupService) Restore(ctx context.Context) error {
	grant, err := s.grants.Load(ctx)
	if errors.Is(err, apperrors.ErrNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("restore backup grant: %w", err)
	}
	s.mu.Lock()
	s.dir = grant.Dir
	s.mu.Unlock()
	s.logger.Info("backup folder remembered, reconnect required", "dir", grant.Dir)
	return nil
}

// Connect grants dir as the backup folder. It is only called on an explicit
// user request.
func (s *BackupService) Connect(ctx context.Context, dir string) (domain.Snapshot, error) {
	if dir == "" {
		return s.Snapshot(), fmt.Errorf("%w: backup folder is required", apperrors.ErrInvalidInput)
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return s.Snapshot(), fmt.Errorf("resolve backup folder: %w", err)
	}
	if err := s.folder.Check(abs); err != nil {
		return s.Snapshot(), fmt.Errorf("%w: %v", apperrors.ErrPermissionDenied, err)
	}
	if err := s.grants.Save(ctx, domain.Grant{Dir: abs, GrantedAt: s.clock.Now()}); err != nil {
		return s.Snapshot(), fmt.Errorf("save backup grant: %w", err)
	}
	s.connect(abs)
	s.logger.Info("backup folder connected", "dir", abs)
	return s.Snapshot(), nil
}

// Verify reconnects the remembered folder after a restart.
func (s *BackupService) Verify(ctx context.Context) (domain.Snapshot, error) {
	s.mu.Lock()
	dir := s.dir
	s.mu.Unlock()
	if dir == "" {
		if err := s.Restore(ctx); err != nil {
			return s.Snapshot(), err
		}
		s.mu.Lock()
		dir = s.dir
		s.mu.Unlock()
	}
	if dir == "" {
		return s.Snapshot(), apperrors.ErrBackupNotConnected
	}
	if err := s.folder.Check(dir); err != nil {
		s.fail(dir, err)
		return s.Snapshot(), fmt.Errorf("%w: %v", apperrors.ErrPermissionDenied, err)
	}
	s.connect(dir)
	return s.Snapshot(), nil
}

// Disconnect forgets the folder and cancels any pending write.
func (s *BackupService) Disconnect(ctx context.Context) error {
	if err := s.grants.Clear(ctx); err != nil {
		return fmt.Errorf("clear backup grant: %w", err)
	}
	s.mu.Lock()
	s.cancelPendingLocked()
	stop := s.takeWatchLocked()
	s.dir = ""
	s.lastErr = ""
	s.setStatusLocked(domain.StatusDisconnected)
	snap, listeners := s.snapshotLocked(), s.listeners
	s.mu.Unlock()
	stop()
	notify(listeners, snap)
	return nil
}

// DocumentChanged schedules a debounced write while a folder is connected.
func (s *BackupService) DocumentChanged(docdomain.AppData) {
	s.mu.Lock()
	if s.closed || s.status == domain.StatusDisconnected {
		s.mu.Unlock()
		return
	}
	s.cancelPendingLocked()
	if s.status == domain.StatusSaved {
		s.setStatusLocked(domain.StatusConnected)
	}
	gen := s.gen
	s.pending = true
	s.timer = time.AfterFunc(s.opts.Debounce, func() { s.fire(gen) })
	snap, listeners := s.snapshotLocked(), s.listeners
	s.mu.Unlock()
	notify(listeners, snap)
}

// Flush performs a pending write now.
func (s *BackupService) Flush(ctx context.Context) error {
	s.mu.Lock()
	if !s.pending || s.closed {
		s.mu.Unlock()
		return nil
	}
	s.cancelPendingLocked()
	dir := s.dir
	s.mu.Unlock()
	return s.save(ctx, dir)
}

// SaveNow writes the current document into the connected folder, replacing
// any pending debounced write.
func (s *BackupService) SaveNow(ctx context.Context) error {
	s.mu.Lock()
	if s.closed || s.dir == "" || s.status == domain.StatusDisconnected {
		s.mu.Unlock()
		return apperrors.ErrBackupNotConnected
	}
	s.cancelPendingLocked()
	dir := s.dir
	s.mu.Unlock()
	return s.save(ctx, dir)
}

// Close cancels any pending write and stops watching the folder.
func (s *BackupService) Close() error {
	s.mu.Lock()
	s.closed = true
	s.cancelPendingLocked()
	stop := s.takeWatchLocked()
	s.mu.Unlock()
	stop()
	return nil
}

// ExportNow writes a backup (and optionally the report) into dir right away.
func (s *BackupService) ExportNow(ctx context.Context, dir string, includeReport bool) ([]string, error) {
	if dir == "" {
		return nil, fmt.Errorf("%w: export folder is required", apperrors.ErrInvalidInput)
	}
	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	return s.writeFiles(ctx, dir, includeReport)
}

// ImportBackup replaces the document with the content of a backup file.
func (s *BackupService) ImportBackup(ctx context.Context, path string) (docdomain.AppData, error) {
	payload, err := s.folder.Read(path)
	if err != nil {
		return docdomain.AppData{}, fmt.Errorf("read backup: %w", err)
	}
	doc, err := docdomain.Decode(payload)
	if err != nil {
		return docdomain.AppData{}, fmt.Errorf("%w: %v", apperrors.ErrInvalidInput, err)
	}
	return s.docs.Replace(ctx, doc)
}

func (s *BackupService) fire(gen uint64) {
	s.mu.Lock()
	if s.closed || gen != s.gen || !s.pending {
		s.mu.Unlock()
		return
	}
	s.pending = false
	s.timer = nil
	dir := s.dir
	s.mu.Unlock()
	if err := s.save(context.Background(), dir); err != nil {
		s.logger.Warn("backup write failed", "dir", dir, "error", err)
	}
}

func (s *BackupService) save(ctx context.Context, dir string) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	s.mu.Lock()
	if s.dir != dir || s.status == domain.StatusDisconnected {
		s.mu.Unlock()
		return nil
	}
	s.setStatusLocked(domain.StatusSaving)
	snap, listeners := s.snapshotLocked(), s.listeners
	s.mu.Unlock()
	notify(listeners, snap)

	if _, err := s.writeFiles(ctx, dir, s.opts.IncludeReport); err != nil {
		s.opts.Metrics.CountBackup("error")
		s.fail(dir, err)
		return err
	}
	s.opts.Metrics.CountBackup("ok")

	s.mu.Lock()
	if s.dir == dir && s.status == domain.StatusSaving {
		now := s.clock.Now()
		s.lastSaved = &now
		s.lastErr = ""
		s.setStatusLocked(domain.StatusSaved)
	}
	snap, listeners = s.snapshotLocked(), s.listeners
	s.mu.Unlock()
	notify(listeners, snap)
	return nil
}

// writeFiles checks the folder and writes the current document. Callers hold writeMu.
func (s *BackupService) writeFiles(_ context.Context, dir string, includeReport bool) ([]string, error) {
	if err := s.folder.Check(dir); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrPermissionDenied, err)
	}
	doc := s.docs.Snapshot()
	now := s.clock.Now()
	payload, err := docdomain.Encode(doc)
	if err != nil {
		return nil, err
	}
	name := domain.BackupFileName(now)
	if err := s.folder.Write(dir, name, payload); err != nil {
		return nil, fmt.Errorf("write backup: %w", err)
	}
	written := []string{filepath.Join(dir, name)}
	if includeReport && s.report != nil {
		report, err := s.report.Render(doc)
		if err != nil {
			return written, fmt.Errorf("render report: %w", err)
		}
		name := domain.ReportFileName(now)
		if err := s.folder.Write(dir, name, report); err != nil {
			return written, fmt.Errorf("write report: %w", err)
		}
		written = append(written, filepath.Join(dir, name))
	}
	return written, nil
}

func (s *BackupService) connect(dir string) {
	s.mu.Lock()
	previous := s.takeWatchLocked()
	s.dir = dir
	s.lastErr = ""
	s.setStatusLocked(domain.StatusConnected)
	closed := s.closed
	snap, listeners := s.snapshotLocked(), s.listeners
	s.mu.Unlock()
	previous()
	notify(listeners, snap)

	if s.watcher == nil || closed {
		return
	}
	stop, err := s.watcher.Watch(dir, func(reason string) { s.fail(dir, errors.New(reason)) })
	if err != nil {
		s.logger.Warn("backup folder watch failed", "dir", dir, "error", err)
		return
	}
	s.mu.Lock()
	if s.dir != dir || s.closed || s.stopWatch != nil {
		s.mu.Unlock()
		stop()
		return
	}
	s.stopWatch = stop
	s.mu.Unlock()
}

func (s *BackupService) fail(dir string, err error) {
	s.mu.Lock()
	if s.dir != dir {
		s.mu.Unlock()
		return
	}
	s.lastErr = err.Error()
	s.setStatusLocked(domain.StatusError)
	snap, listeners := s.snapshotLocked(), s.listeners
	s.mu.Unlock()
	notify(listeners, snap)
}

func (s *BackupService) cancelPendingLocked() {
	s.gen++
	s.pending = false
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}

// takeWatchLocked detaches the folder watch; the returned func must run
// after mu is released.
func (s *BackupService) takeWatchLocked() func() {
	stop := s.stopWatch
	s.stopWatch = nil
	if stop == nil {
		return func() {}
	}
	return stop
}

func (s *BackupService) setStatusLocked(status domain.Status) {
	s.status = status
	s.opts.Metrics.SetBackupStatus(string(status), domain.StatusNames())
}

func notify(listeners []func(domain.Snapshot), snap domain.Snapshot) {
	for _, fn := range listeners {
		fn(snap)
	}
}
