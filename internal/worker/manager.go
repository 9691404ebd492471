package worker

import (
	"context"
	"fmt"
	"sync"

	"venue-booking/internal/data/repository"
	"venue-booking/internal/notify"
	"venue-booking/pkg/apperror"
	"venue-booking/pkg/utils"

	"github.com/go-co-op/gocron/v2"
	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"
)

// Manager owns the scheduled background work: the global no-show sweep and
// one reconciliation monitor per venue. All timing flows through the
// injected clock.
type Manager struct {
	scheduler gocron.Scheduler
	repo      *repository.Repository
	notifier  notify.Notifier
	clock     clockwork.Clock
	config    *utils.Config
	log       *zap.Logger

	mu       sync.Mutex
	monitors map[uuid.UUID]*monitorHandle
}

type monitorHandle struct {
	monitor *BookingMonitor
	jobID   uuid.UUID
}

func NewManager(repo *repository.Repository, notifier notify.Notifier, clock clockwork.Clock, config *utils.Config, log *zap.Logger) (*Manager, error) {
	scheduler, err := gocron.NewScheduler(gocron.WithClock(clock))
	if err != nil {
		return nil, fmt.Errorf("create scheduler: %w", err)
	}

	return &Manager{
		scheduler: scheduler,
		repo:      repo,
		notifier:  notifier,
		clock:     clock,
		config:    config,
		log:       log.With(zap.String("component", "worker_manager")),
		monitors:  make(map[uuid.UUID]*monitorHandle),
	}, nil
}

// Start registers the no-show sweep and begins running jobs. The sweep
// fires immediately once, then on its fixed interval.
func (m *Manager) Start(ctx context.Context) error {
	sweep := NewNoShowSweep(m.repo, m.notifier, m.clock, m.log)

	_, err := m.scheduler.NewJob(
		gocron.DurationJob(m.config.Worker.SweepInterval()),
		gocron.NewTask(func() { sweep.Run(ctx) }),
		gocron.WithStartAt(gocron.WithStartImmediately()),
		gocron.WithName("noshow-sweep"),
	)
	if err != nil {
		return fmt.Errorf("schedule no-show sweep: %w", err)
	}

	m.scheduler.Start()

	m.log.Info("Background workers started",
		zap.Duration("sweep_interval", m.config.Worker.SweepInterval()),
		zap.Duration("monitor_interval", m.config.Worker.MonitorInterval()),
	)

	return nil
}

// StartMonitor activates a reconciliation monitor for the venue. Starting
// an already-monitored venue is a conflict.
func (m *Manager) StartMonitor(ctx context.Context, venueID uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.monitors[venueID]; exists {
		return apperror.Conflict("monitor for venue %s already running", venueID.String())
	}

	monitor := NewBookingMonitor(venueID, m.repo.Booking, m.notifier, m.clock, m.log)
	monitor.Activate()

	job, err := m.scheduler.NewJob(
		gocron.DurationJob(m.config.Worker.MonitorInterval()),
		gocron.NewTask(func() { monitor.Tick(ctx) }),
		gocron.WithStartAt(gocron.WithStartImmediately()),
		gocron.WithName("booking-monitor-"+venueID.String()),
	)
	if err != nil {
		monitor.Stop()
		return fmt.Errorf("schedule monitor for venue %s: %w", venueID.String(), err)
	}

	m.monitors[venueID] = &monitorHandle{monitor: monitor, jobID: job.ID()}

	m.log.Info("Booking monitor started", zap.String("venue_id", venueID.String()))
	return nil
}

// StopMonitor tears the venue's monitor down: the job is removed and the
// monitor's cached state cleared.
func (m *Manager) StopMonitor(venueID uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	handle, exists := m.monitors[venueID]
	if !exists {
		return apperror.NotFound("no monitor running for venue %s", venueID.String())
	}

	if err := m.scheduler.RemoveJob(handle.jobID); err != nil {
		m.log.Warn("Failed to remove monitor job",
			zap.Error(err),
			zap.String("venue_id", venueID.String()),
		)
	}
	handle.monitor.Stop()
	delete(m.monitors, venueID)

	m.log.Info("Booking monitor stopped", zap.String("venue_id", venueID.String()))
	return nil
}

// MonitorStatus returns the status record for the venue's monitor.
func (m *Manager) MonitorStatus(venueID uuid.UUID) (MonitorStatus, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	handle, exists := m.monitors[venueID]
	if !exists {
		return MonitorStatus{}, apperror.NotFound("no monitor running for venue %s", venueID.String())
	}
	return handle.monitor.Status(), nil
}

// Shutdown stops the scheduler and all monitors.
func (m *Manager) Shutdown() error {
	m.mu.Lock()
	for venueID, handle := range m.monitors {
		handle.monitor.Stop()
		delete(m.monitors, venueID)
	}
	m.mu.Unlock()

	if err := m.scheduler.Shutdown(); err != nil {
		return fmt.Errorf("shutdown scheduler: %w", err)
	}

	m.log.Info("Background workers stopped")
	return nil
}
