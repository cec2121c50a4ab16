package session

import (
	"context"
	"log/slog"
	"time"
)

// StartGC launches the recurring sweep in a background goroutine. Each tick
// takes the same lock as Start and Destroy, invokes the provider's GC, and
// only then schedules the next tick, so a sweep never overlaps itself or a
// lifecycle transition. Subsequent calls are no-ops; Close stops the loop.
func (m *Manager) StartGC() {
	m.gcOnce.Do(func() {
		go m.gcLoop()
	})
}

func (m *Manager) gcLoop() {
	timer := time.NewTimer(m.config.gcInterval())
	defer timer.Stop()

	for {
		select {
		case <-timer.C:
			m.sweep()
			// Reschedule only after the sweep completes.
			timer.Reset(m.config.gcInterval())
		case <-m.done:
			return
		}
	}
}

func (m *Manager) sweep() {
	ctx := context.Background()

	m.mu.Lock()
	removed, err := m.provider.GC(ctx, m.config.MaxLifetime)
	m.mu.Unlock()

	if err != nil {
		m.log.ErrorContext(ctx, "session: gc sweep failed", slog.Any("error", err))
		return
	}
	if removed > 0 {
		m.log.InfoContext(ctx, "session: gc sweep", slog.Int64("removed", removed))
	}
}

// Close stops the GC loop. It is safe to call multiple times.
func (m *Manager) Close() error {
	m.closeOnce.Do(func() {
		close(m.done)
	})
	return nil
}
