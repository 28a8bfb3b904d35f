package infra

import (
	"context"
	"net"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog/log"
)

// ConnectivityWatcher keeps a live online/offline flag by dialing a probe
// address on an interval. Administrative tenant mutations consult Online()
// and refuse while offline; sales and reads never do.
//
// The flag starts optimistic (online) so a slow first probe does not lock
// the admin panel on boot.
type ConnectivityWatcher struct {
	probeAddr string
	interval  time.Duration
	online    atomic.Bool
}

// NewConnectivityWatcher builds a watcher; call Start to begin probing.
func NewConnectivityWatcher(probeAddr string, interval time.Duration) *ConnectivityWatcher {
	if interval <= 0 {
		interval = 10 * time.Second
	}
	w := &ConnectivityWatcher{probeAddr: probeAddr, interval: interval}
	w.online.Store(true)
	return w
}

// Online reports the last observed connectivity state.
func (w *ConnectivityWatcher) Online() bool { return w.online.Load() }

// SetOnline overrides the flag. Used by tests and by operators forcing
// offline mode during maintenance.
func (w *ConnectivityWatcher) SetOnline(v bool) { w.online.Store(v) }

// Start launches the probe loop; it stops when ctx is cancelled.
func (w *ConnectivityWatcher) Start(ctx context.Context) {
	go func() {
		ticker := time.NewTicker(w.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				w.probe()
			}
		}
	}()
}

func (w *ConnectivityWatcher) probe() {
	conn, err := net.DialTimeout("tcp", w.probeAddr, 3*time.Second)
	now := err == nil
	if conn != nil {
		_ = conn.Close()
	}
	// Log only on transition, not every tick
	if was := w.online.Swap(now); was != now {
		if now {
			log.Info().Str("probe", w.probeAddr).Msg("connectivity restored — admin writes enabled")
		} else {
			log.Warn().Str("probe", w.probeAddr).Err(err).Msg("connectivity lost — admin writes disabled")
		}
	}
}
