package game

import (
	"context"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"voyager.com/solorpg/caching"
	"voyager.com/solorpg/logging"
	"voyager.com/solorpg/poker"
	"voyager.com/solorpg/progression"
	"voyager.com/solorpg/rules"
	"voyager.com/solorpg/util"
)

var engineLogger = log.With().Str("logger_name", "game::engine").Logger()

type EngineConfig struct {
	Rules *rules.Rules
	// 0 picks a random seed
	Seed      int64
	CacheSize int
	Store     SessionStore
	Reporter  progression.Reporter
}

// Engine owns the current session and feeds actions through Reduce.
// It is not safe for concurrent use.
type Engine struct {
	env      Env
	cache    *caching.EvaluationCache
	session  Session
	store    SessionStore
	reporter progression.Reporter
	logger   zerolog.Logger
}

func NewEngine(config EngineConfig) (*Engine, error) {
	r := config.Rules
	if r == nil {
		r = rules.Default()
	}
	if err := r.Validate(); err != nil {
		return nil, err
	}
	size := config.CacheSize
	if size <= 0 {
		size = caching.DefaultEvaluationCacheSize
	}
	cache, err := caching.NewEvaluationCache(poker.NewEvaluator(), size)
	if err != nil {
		return nil, err
	}
	e := &Engine{
		env: Env{
			Rules:     r,
			Rand:      poker.NewRandGen(config.Seed),
			Evaluator: cache,
		},
		cache:    cache,
		store:    config.Store,
		reporter: config.Reporter,
		logger:   engineLogger,
	}
	if err := e.reset(Session{}); err != nil {
		return nil, err
	}
	return e, nil
}

func (e *Engine) reset(from Session) error {
	session, err := Reduce(from, InitializeGame{}, e.env)
	if err != nil {
		return errors.Wrap(err, "Unable to initialize session")
	}
	e.setSession(session)
	return nil
}

func (e *Engine) setSession(s Session) {
	if s.ID != e.session.ID {
		e.logger = engineLogger.With().Str(logging.SessionIDKey, s.ID).Logger()
	}
	e.session = s
}

// Session returns a copy of the current session.
func (e *Engine) Session() Session {
	return e.session.Clone()
}

// Replace swaps in a prepared session after checking its invariants.
func (e *Engine) Replace(s Session) error {
	if err := s.Validate(); err != nil {
		return err
	}
	e.setSession(s.Clone())
	return nil
}

func (e *Engine) Rules() *rules.Rules {
	return e.env.Rules
}

func (e *Engine) CachedEvaluations() int {
	return e.cache.Len()
}

// Dispatch applies an action to the current session. Player mistakes are reported
// through the session message; an error means the action itself was malformed
// and the session is left as it was.
func (e *Engine) Dispatch(action Action) (Session, error) {
	prev := e.session
	if action == nil {
		return prev.Clone(), &UnknownActionError{}
	}
	name := action.Name()
	util.Metrics.ActionDispatched(name)

	next, err := Reduce(prev, action, e.env)
	if err != nil {
		e.logger.Error().Err(err).
			Str(logging.ActionKey, name).
			Str(logging.StatusKey, string(prev.Status)).
			Msg("Action failed")
		return prev.Clone(), err
	}
	e.setSession(next)

	if next.Rejected {
		util.Metrics.ActionRejected(name)
		e.logger.Debug().
			Str(logging.ActionKey, name).
			Str(logging.StatusKey, string(next.Status)).
			Msg(next.Message)
		return next.Clone(), nil
	}

	e.logger.Debug().
		Str(logging.ActionKey, name).
		Str(logging.StatusKey, string(next.Status)).
		Int(logging.RoundKey, next.Round).
		Msg(next.Message)
	if name == ActionPlayHand && next.LastScore != nil {
		util.Metrics.HandPlayed(next.LastScore.Rank.String())
	}
	if prev.Status != StatusGameOver && next.Status == StatusGameOver {
		e.complete(next)
	}
	return next.Clone(), nil
}

func (e *Engine) complete(s Session) {
	util.Metrics.GameCompleted()
	e.logger.Info().
		Int("points", s.Points).
		Int(logging.RoundKey, s.Round).
		Int("health", s.Health).
		Msg("Game over")
	if e.reporter != nil && s.Report != nil {
		e.reporter.Report(*s.Report)
	}
}

// Save writes the current session to the store under its id.
func (e *Engine) Save(ctx context.Context) error {
	if e.store == nil {
		return errors.New("Session store is not configured")
	}
	s := e.session
	return e.store.Save(ctx, s.ID, &s)
}

// Restore replaces the current session with a saved one. A missing, unreadable or
// inconsistent save starts a fresh game instead; restored reports which happened.
func (e *Engine) Restore(ctx context.Context, sessionID string) (session Session, restored bool) {
	if e.store != nil {
		saved, err := e.store.Load(ctx, sessionID)
		if err == nil {
			err = saved.Validate()
		}
		if err == nil {
			e.setSession(*saved)
			e.logger.Info().Str(logging.StatusKey, string(saved.Status)).Msg("Session restored")
			return e.Session(), true
		}
		if _, ok := err.(*SessionNotFoundError); ok {
			e.logger.Info().Str("saved", sessionID).Msg("No saved session. Starting a new game.")
		} else {
			e.logger.Warn().Err(err).Str("saved", sessionID).Msg("Saved session is unusable. Starting a new game.")
		}
	}
	if err := e.reset(e.session); err != nil {
		e.logger.Error().Err(err).Msg("Could not start a new game")
	}
	return e.Session(), false
}
