package battery

import (
	"context"
	"log/slog"
	"time"

	"razer-driver-go/device"
)

const defaultPollInterval = 60 * time.Second

// Monitor periodically rescans the bus, samples every device that answers
// battery queries, and records the readings into a History.
type Monitor struct {
	// Interval between polls; defaults to one minute.
	Interval time.Duration
	// History receives every sample. Required.
	History *History
	// OnSample, when set, is called with each fresh reading.
	OnSample func(Status)

	logger *slog.Logger
}

func NewMonitor(history *History, logger *slog.Logger) *Monitor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Monitor{
		Interval: defaultPollInterval,
		History:  history,
		logger:   logger,
	}
}

// Run polls until the context is canceled. The first poll happens
// immediately. Scan failures are logged and retried on the next tick; a
// single misbehaving device never stops the loop.
func (m *Monitor) Run(ctx context.Context) error {
	interval := m.Interval
	if interval <= 0 {
		interval = defaultPollInterval
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	m.poll(ctx)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			m.poll(ctx)
		}
	}
}

func (m *Monitor) poll(ctx context.Context) {
	devices, err := device.Scan()
	if err != nil {
		m.logger.Warn("battery poll: scan failed", "error", err)
		return
	}
	defer func() {
		for _, dev := range devices {
			_ = dev.Close()
		}
	}()

	now := time.Now()
	for _, dev := range devices {
		if ctx.Err() != nil {
			return
		}
		status, err := Read(dev)
		if err != nil {
			// Wired-only devices answer battery queries with "not
			// supported"; that is normal and only worth a debug line.
			m.logger.Debug("battery poll: no reading", "device", dev.Name, "error", err)
			continue
		}
		m.History.Record(Sample{
			ProductID:  status.ProductID,
			CreatedAt:  now,
			Percentage: status.Percentage,
			Charging:   status.Charging,
		})
		m.logger.Info("battery sample",
			"device", status.Name,
			"percentage", status.Percentage,
			"charging", status.Charging,
		)
		if m.OnSample != nil {
			m.OnSample(status)
		}
	}
}
