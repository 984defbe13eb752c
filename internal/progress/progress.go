package progress

import (
	"fmt"
	"sync"
	"time"

	"github.com/cachehound/cachehound/pkg/utils"
)

// Phase represents the current phase of a scan
type Phase string

const (
	PhaseWalking  Phase = "walking"
	PhaseScanning Phase = "scanning"
	PhaseComplete Phase = "complete"
)

// ScanProgress is one progress observation published while scanning
type ScanProgress struct {
	Phase       Phase
	Scanned     int    // candidate paths inspected so far
	Total       int    // candidate total, known up front from the walk
	CurrentPath string // path being inspected
	Found       int    // cache files found so far
	FoundSize   int64  // bytes found so far
	StartTime   time.Time
}

// Reporter provides thread-safe progress broadcasting. Sends to subscribers
// never block: a full or abandoned listener loses updates instead of stalling
// the scan.
type Reporter struct {
	mu        sync.RWMutex
	current   *ScanProgress
	listeners []chan ScanProgress
}

// NewReporter creates a new progress reporter
func NewReporter() *Reporter {
	return &Reporter{
		listeners: make([]chan ScanProgress, 0),
	}
}

// Subscribe returns a channel that receives progress updates
func (r *Reporter) Subscribe() <-chan ScanProgress {
	r.mu.Lock()
	defer r.mu.Unlock()

	ch := make(chan ScanProgress, 16)
	r.listeners = append(r.listeners, ch)
	return ch
}

// Unsubscribe closes and removes a listener channel
func (r *Reporter) Unsubscribe(ch <-chan ScanProgress) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, listener := range r.listeners {
		if listener == ch {
			close(listener)
			r.listeners = append(r.listeners[:i], r.listeners[i+1:]...)
			return
		}
	}
}

// Update records the latest progress and notifies listeners without blocking
func (r *Reporter) Update(update ScanProgress) {
	r.mu.Lock()
	r.current = &update
	listeners := make([]chan ScanProgress, len(r.listeners))
	copy(listeners, r.listeners)
	r.mu.Unlock()

	for _, listener := range listeners {
		select {
		case listener <- update:
		default:
			// Skip if channel is full
		}
	}
}

// Current returns the most recently published progress, or nil before the
// first update
func (r *Reporter) Current() *ScanProgress {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.current
}

// FormatScanProgress returns a human-readable progress line
func FormatScanProgress(p *ScanProgress) string {
	if p == nil {
		return "Initializing..."
	}

	switch p.Phase {
	case PhaseWalking:
		return "Traversing directory structure..."
	case PhaseScanning:
		return fmt.Sprintf("%d/%d files scanned", p.Scanned, p.Total)
	case PhaseComplete:
		return fmt.Sprintf("Scan complete: %d cache files (%s) in %s",
			p.Found,
			utils.FormatBytes(p.FoundSize),
			FormatDuration(time.Since(p.StartTime)))
	default:
		return "Scanning..."
	}
}

// FormatDuration formats duration in human-readable format
func FormatDuration(d time.Duration) string {
	d = d.Round(time.Second)

	h := d / time.Hour
	d -= h * time.Hour
	m := d / time.Minute
	d -= m * time.Minute
	s := d / time.Second

	if h > 0 {
		return fmt.Sprintf("%dh%dm%ds", h, m, s)
	}
	if m > 0 {
		return fmt.Sprintf("%dm%ds", m, s)
	}
	return fmt.Sprintf("%ds", s)
}
