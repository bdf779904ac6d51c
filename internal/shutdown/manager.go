package shutdown

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"exifview/internal/logger"
)

// DefaultHookTimeout bounds how long a single hook may block shutdown.
const DefaultHookTimeout = 5 * time.Second

type hook struct {
	name string
	fn   func()
}

// Manager owns the session context. Shutdown cancels it, which kills any
// exiftool process still running, then runs the registered hooks newest
// first.
type Manager struct {
	hooks   []hook
	logger  logger.Logger
	timeout time.Duration
	mu      sync.Mutex
	done    chan struct{}
	ctx     context.Context
	cancel  context.CancelFunc
	stop    func()
}

func NewManager(log logger.Logger) *Manager {
	if log == nil {
		log = logger.NoOpLogger{}
	}
	ctx, cancel := context.WithCancel(context.Background())

	return &Manager{
		logger:  log,
		timeout: DefaultHookTimeout,
		done:    make(chan struct{}),
		ctx:     ctx,
		cancel:  cancel,
	}
}

// SetHookTimeout changes the per-hook timeout.
func (m *Manager) SetHookTimeout(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.timeout = d
}

// OnShutdown registers fn to run during Shutdown.
func (m *Manager) OnShutdown(name string, fn func()) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.hooks = append(m.hooks, hook{name: name, fn: fn})
}

// Listen shuts down on SIGINT or SIGTERM.
func (m *Manager) Listen() {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	m.mu.Lock()
	m.stop = func() { signal.Stop(sigChan) }
	m.mu.Unlock()

	go func() {
		select {
		case sig := <-sigChan:
			m.Shutdown(sig.String())
		case <-m.done:
		}
	}()
}

// Shutdown is idempotent; only the first call does anything.
func (m *Manager) Shutdown(reason string) {
	m.mu.Lock()
	select {
	case <-m.done:
		m.mu.Unlock()
		return
	default:
		close(m.done)
	}
	hooks := append([]hook(nil), m.hooks...)
	timeout := m.timeout
	stop := m.stop
	m.mu.Unlock()

	m.logger.Info("ShutdownManager", "shutting down", map[string]interface{}{
		"reason": reason,
		"hooks":  len(hooks),
	})

	if stop != nil {
		stop()
	}
	m.cancel()

	for i := len(hooks) - 1; i >= 0; i-- {
		h := hooks[i]

		finished := make(chan struct{})
		go func() {
			defer close(finished)
			h.fn()
		}()

		select {
		case <-finished:
		case <-time.After(timeout):
			m.logger.Warning("ShutdownManager", "shutdown hook timed out", map[string]interface{}{
				"hook":    h.name,
				"timeout": timeout.String(),
			})
		}
	}

	m.logger.Info("ShutdownManager", "shutdown complete", nil)
}

// Context is cancelled when shutdown starts.
func (m *Manager) Context() context.Context {
	return m.ctx
}

func (m *Manager) Done() <-chan struct{} {
	return m.done
}
