package progression

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"voyager.com/solorpg/util"
)

var trackerLogger = log.With().Str("logger_name", "progression::tracker").Logger()

const saveTimeout = 5 * time.Second

// Tracker applies completion reports on a background goroutine so the game never waits on storage.
type Tracker struct {
	playerID string
	store    Store
	reports  chan CompletionReport
	logger   zerolog.Logger

	mu       sync.RWMutex
	state    *State
	unlocked []string

	done chan struct{}
}

func NewTracker(store Store, playerID string, buffer int) *Tracker {
	return &Tracker{
		playerID: playerID,
		store:    store,
		reports:  make(chan CompletionReport, buffer),
		logger:   trackerLogger.With().Str("playerID", playerID).Logger(),
		state:    NewState(),
		done:     make(chan struct{}),
	}
}

// Start loads the stored state and begins consuming reports.
func (t *Tracker) Start(ctx context.Context) {
	if t.store != nil {
		state, err := t.store.Load(ctx, t.playerID)
		if err == nil {
			t.state = state
		} else if _, ok := err.(*NotFoundError); !ok {
			t.logger.Warn().Err(err).Msg("Could not load progression. Starting fresh.")
		}
	}
	go t.run()
}

// Report queues a report. When the queue is full the report is dropped.
func (t *Tracker) Report(report CompletionReport) {
	select {
	case t.reports <- report:
	default:
		t.logger.Warn().Str("sessionID", report.SessionID).Msg("Progression queue is full. Dropping report.")
	}
}

func (t *Tracker) run() {
	defer close(t.done)
	for report := range t.reports {
		t.process(report)
	}
}

func (t *Tracker) process(report CompletionReport) {
	t.mu.Lock()
	next, unlocked := Apply(t.state, report)
	t.state = next
	t.unlocked = append(t.unlocked, unlocked...)
	snapshot := next.Clone()
	t.mu.Unlock()

	util.Metrics.ProgressionReportProcessed()
	for _, id := range unlocked {
		t.logger.Info().Str("achievement", id).Msg("Achievement unlocked")
	}
	if t.store == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), saveTimeout)
	defer cancel()
	if err := t.store.Save(ctx, t.playerID, snapshot); err != nil {
		t.logger.Error().Err(err).Msg("Could not save progression")
	}
}

// Close stops accepting reports and waits for queued ones to be processed.
func (t *Tracker) Close() {
	close(t.reports)
	<-t.done
}

func (t *Tracker) State() *State {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.state.Clone()
}

// Unlocked lists achievements unlocked since the tracker started.
func (t *Tracker) Unlocked() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return append([]string(nil), t.unlocked...)
}
