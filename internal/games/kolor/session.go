// Package kolor implements a timed color-guessing game. A target color is
// shown as a swatch and the player picks it among decoys; each round has a
// fixed time budget and the session ends after a fixed number of rounds.
package kolor

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/kolor/internal/config"
	"github.com/vovakirdan/kolor/internal/core"
)

// Feedback is the result of the last player action or timeout.
// Display only; it never affects game logic.
type Feedback int

const (
	FeedbackNone Feedback = iota
	FeedbackCorrect
	FeedbackWrong
	FeedbackTimeout
)

// String returns the message shown to the player.
func (f Feedback) String() string {
	switch f {
	case FeedbackCorrect:
		return "Correct!"
	case FeedbackWrong:
		return "Wrong!"
	case FeedbackTimeout:
		return "Timeout!"
	default:
		return ""
	}
}

// Session holds the state of one game from round 1 to game over.
// It is not safe for concurrent use; Runner serializes access.
type Session struct {
	id     string
	cfg    config.KolorConfig
	rng    *rand.Rand
	store  Store
	logger *log.Logger

	target    core.Color
	options   Options
	feedback  Feedback
	ticksLeft int // Remaining countdown ticks in the current round
	round     int // 1-based
	score     int
	best      int
	over      bool
	persisted bool // Best-score gate already ran
	newBest   bool

	correct  int
	wrong    int
	timeouts int
	seq      uint64
}

// Option configures a Session.
type Option func(*Session)

// WithConfig sets rounds, timing and scoring. Invalid configs are replaced
// by the defaults.
func WithConfig(cfg config.KolorConfig) Option {
	return func(s *Session) { s.cfg = cfg }
}

// WithSeed seeds the color generator for reproducible sessions.
func WithSeed(seed int64) Option {
	return func(s *Session) { s.rng = rand.New(rand.NewSource(seed)) }
}

// WithSource drives color generation and shuffling from src.
func WithSource(src rand.Source) Option {
	return func(s *Session) { s.rng = rand.New(src) }
}

// WithLogger sets the logger. The default discards output.
func WithLogger(l *log.Logger) Option {
	return func(s *Session) { s.logger = l }
}

// WithID overrides the generated session ID.
func WithID(id string) Option {
	return func(s *Session) { s.id = id }
}

// NewSession starts a session at round 1. The best score is read from store
// exactly once here; a nil store disables persistence.
func NewSession(store Store, opts ...Option) *Session {
	s := &Session{
		cfg:   config.DefaultKolorConfig(),
		store: store,
	}
	for _, opt := range opts {
		opt(s)
	}

	if s.logger == nil {
		s.logger = log.New(io.Discard)
	}
	if s.store == nil {
		s.store = nopStore{}
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if s.id == "" {
		s.id = uuid.NewString()
	}
	if err := s.cfg.Validate(); err != nil {
		s.logger.Warn("invalid session config, using defaults", "err", err)
		s.cfg = config.DefaultKolorConfig()
	}

	s.best = s.loadBest()
	s.round = 1
	s.newTarget()

	s.logger.Info("session started", "id", s.id, "rounds", s.cfg.Rounds, "best", s.best)
	return s
}

// loadBest reads the persisted best score. Anything unusable counts as 0
// so the game stays playable without persistence.
func (s *Session) loadBest() int {
	v, ok, err := s.store.GetInteger(s.cfg.BestScoreKey)
	if err != nil {
		s.logger.Warn("best score unavailable", "key", s.cfg.BestScoreKey, "err", err)
		return 0
	}
	if !ok || v < 0 {
		return 0
	}
	return v
}

// newTarget picks a target and options and restarts the countdown.
func (s *Session) newTarget() {
	s.target = RandomColor(s.rng)
	s.options = BuildOptions(s.rng, s.target)
	s.ticksLeft = s.cfg.TicksPerRound()
}

// HandleGuess checks a picked color against the target.
// A correct guess scores and ends the round; a wrong one only sets feedback
// and the round continues. Ignored after game over (returns FeedbackNone).
func (s *Session) HandleGuess(c core.Color) Feedback {
	if s.over {
		return FeedbackNone
	}

	if c != s.target {
		return s.miss()
	}

	s.score += s.cfg.Points
	s.correct++
	s.resetRound()
	s.feedback = FeedbackCorrect
	s.seq++
	return s.feedback
}

func (s *Session) miss() Feedback {
	s.wrong++
	s.feedback = FeedbackWrong
	s.seq++
	return s.feedback
}

// HandleGuessIndex picks the option at position i. Out-of-range positions
// count as a wrong guess.
func (s *Session) HandleGuessIndex(i int) Feedback {
	if i < 0 || i >= OptionCount {
		if s.over {
			return FeedbackNone
		}
		return s.miss()
	}
	return s.HandleGuess(s.options[i])
}

// Tick advances the countdown by one interval. When time runs out the round
// ends with a timeout, exactly once. Returns false when nothing changed.
func (s *Session) Tick() bool {
	if s.over || s.ticksLeft <= 0 {
		return false
	}

	s.ticksLeft--
	if s.ticksLeft == 0 {
		s.timeouts++
		s.resetRound()
		s.feedback = FeedbackTimeout
	}
	s.seq++
	return true
}

// resetRound moves to the next round, or ends the session after the last one.
func (s *Session) resetRound() {
	if s.round < s.cfg.Rounds {
		s.newTarget()
		s.feedback = FeedbackNone
		s.round++
		return
	}

	s.over = true
	s.persistBest()
	s.logger.Info("game over", "id", s.id, "score", s.score, "best", s.best,
		"correct", s.correct, "timeouts", s.timeouts)
}

// persistBest writes the score back if it beats the best loaded at start.
// Runs at most once per session.
func (s *Session) persistBest() {
	if s.persisted {
		return
	}
	s.persisted = true

	if s.score <= s.best {
		return
	}
	s.best = s.score
	s.newBest = true
	if err := s.store.SetInteger(s.cfg.BestScoreKey, s.score); err != nil {
		s.logger.Warn("cannot persist best score", "key", s.cfg.BestScoreKey, "score", s.score, "err", err)
		return
	}
	s.logger.Info("new best score", "score", s.score)
}

// ID returns the session identifier.
func (s *Session) ID() string {
	return s.id
}

// Over reports whether the session has ended.
func (s *Session) Over() bool {
	return s.over
}

// Round returns the current 1-based round.
func (s *Session) Round() int {
	return s.round
}

// Target returns the color to find this round.
func (s *Session) Target() core.Color {
	return s.target
}

// Options returns the choices of the current round.
func (s *Session) Options() Options {
	return s.options
}

// Config returns the effective session configuration.
func (s *Session) Config() config.KolorConfig {
	return s.cfg
}
