package service

import (
	"context"
	"math/rand"
	"strconv"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/Abdullah-819/786Times/internal/data"
	"github.com/Abdullah-819/786Times/internal/models"
	appErrors "github.com/Abdullah-819/786Times/pkg/errors"
)

// IntroConfig configures the devotional content service.
type IntroConfig struct {
	Key    string
	Verses []models.Quote
	Quotes []models.Quote
	Dhikr  []string
	// Source drives random selection; nil seeds from the clock.
	Source rand.Source
}

// IntroService rotates intro verses and picks random quotes.
type IntroService struct {
	store  KeyValueStore
	cfg    IntroConfig
	logger *zap.Logger

	mu  sync.Mutex
	rng *rand.Rand
}

// NewIntroService constructs the service with the built-in content when cfg
// leaves it empty.
func NewIntroService(store KeyValueStore, cfg IntroConfig, logger *zap.Logger) *IntroService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.Key == "" {
		cfg.Key = "@intro_index"
	}
	if len(cfg.Verses) == 0 {
		cfg.Verses = data.IntroVerses
	}
	if len(cfg.Quotes) == 0 {
		cfg.Quotes = data.Quotes
	}
	if len(cfg.Dhikr) == 0 {
		cfg.Dhikr = data.DhikrRoutines
	}
	if cfg.Source == nil {
		cfg.Source = rand.NewSource(time.Now().UnixNano())
	}
	return &IntroService{store: store, cfg: cfg, logger: logger, rng: rand.New(cfg.Source)}
}

// NextIntro advances the persisted rotation and returns the verse it lands
// on. The first visit, or an unreadable index, starts at zero.
func (s *IntroService) NextIntro(ctx context.Context) (models.IntroVerse, error) {
	total := len(s.cfg.Verses)
	if total == 0 {
		return models.IntroVerse{}, appErrors.Clone(appErrors.ErrNotFound, "no intro verses configured")
	}

	next := 0
	raw, err := s.store.Get(ctx, s.cfg.Key)
	switch {
	case err == nil:
		if last, convErr := strconv.Atoi(strings.TrimSpace(raw)); convErr == nil && last >= 0 {
			next = (last + 1) % total
		}
	case !isKeyNotFound(err):
		s.logger.Warn("failed to read intro index", zap.Error(err))
	}

	if err := s.store.Set(ctx, s.cfg.Key, strconv.Itoa(next)); err != nil {
		s.logger.Warn("failed to persist intro index", zap.Int("index", next), zap.Error(err))
	}

	return models.IntroVerse{Quote: s.cfg.Verses[next], Index: next, Total: total}, nil
}

// RandomQuote picks a dashboard quote.
func (s *IntroService) RandomQuote() (models.Quote, error) {
	if len(s.cfg.Quotes) == 0 {
		return models.Quote{}, appErrors.Clone(appErrors.ErrNotFound, "no quotes configured")
	}
	return s.cfg.Quotes[s.intn(len(s.cfg.Quotes))], nil
}

// RandomDhikr picks a dhikr reminder.
func (s *IntroService) RandomDhikr() (string, error) {
	if len(s.cfg.Dhikr) == 0 {
		return "", appErrors.Clone(appErrors.ErrNotFound, "no dhikr configured")
	}
	return s.cfg.Dhikr[s.intn(len(s.cfg.Dhikr))], nil
}

func (s *IntroService) intn(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Intn(n)
}
