package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/Abdullah-819/786Times/internal/data"
	"github.com/Abdullah-819/786Times/internal/models"
	appErrors "github.com/Abdullah-819/786Times/pkg/errors"
)

// SectionConfig configures the selected-section store.
type SectionConfig struct {
	Key     string
	Default models.SectionCode
	// Strict rejects codes outside Known.
	Strict bool
	Known  []models.SectionCode
}

// SectionService persists the user's selected section under a single key.
// Writes are last-writer-wins.
type SectionService struct {
	store  KeyValueStore
	cfg    SectionConfig
	known  map[models.SectionCode]struct{}
	logger *zap.Logger
}

// NewSectionService constructs the store. Empty config fields fall back to
// the built-in key, default section and catalogue.
func NewSectionService(store KeyValueStore, cfg SectionConfig, logger *zap.Logger) *SectionService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.Key == "" {
		cfg.Key = "@selected_section"
	}
	if cfg.Default == "" {
		cfg.Default = models.SectionBSE
	}
	if len(cfg.Known) == 0 {
		for _, s := range data.Sections {
			cfg.Known = append(cfg.Known, s.Code)
		}
	}
	known := make(map[models.SectionCode]struct{}, len(cfg.Known))
	for _, code := range cfg.Known {
		known[code] = struct{}{}
	}
	return &SectionService{store: store, cfg: cfg, known: known, logger: logger}
}

// Default returns the section used when nothing is stored.
func (s *SectionService) Default() models.SectionCode {
	return s.cfg.Default
}

// SaveSection persists code as the selected section.
func (s *SectionService) SaveSection(ctx context.Context, code models.SectionCode) error {
	code = models.SectionCode(strings.TrimSpace(string(code)))
	if code == "" {
		return appErrors.Clone(appErrors.ErrValidation, "section is required")
	}
	if s.cfg.Strict && !s.IsKnown(code) {
		return appErrors.Clone(appErrors.ErrValidation, "unknown section "+string(code))
	}
	if err := s.store.Set(ctx, s.cfg.Key, string(code)); err != nil {
		s.logger.Warn("failed to save section", zap.String("section", string(code)), zap.Error(err))
		return appErrors.WrapAs(appErrors.ErrStorage, err, "failed to save section")
	}
	return nil
}

// GetSelectedSection returns the stored section, or the default when none is
// stored. On a read failure the default is returned together with the error
// so callers can choose to degrade.
func (s *SectionService) GetSelectedSection(ctx context.Context) (models.SectionCode, error) {
	raw, err := s.store.Get(ctx, s.cfg.Key)
	if err != nil {
		if isKeyNotFound(err) {
			return s.cfg.Default, nil
		}
		s.logger.Warn("failed to read section", zap.Error(err))
		return s.cfg.Default, appErrors.WrapAs(appErrors.ErrStorage, err, "failed to read section")
	}
	code := models.SectionCode(strings.TrimSpace(raw))
	if code == "" {
		return s.cfg.Default, nil
	}
	if s.cfg.Strict && !s.IsKnown(code) {
		s.logger.Warn("stored section is not in the catalogue", zap.String("section", string(code)))
		return s.cfg.Default, nil
	}
	return code, nil
}

// ClearSection forgets the selection so the next read yields the default.
func (s *SectionService) ClearSection(ctx context.Context) error {
	if err := s.store.Remove(ctx, s.cfg.Key); err != nil {
		s.logger.Warn("failed to clear section", zap.Error(err))
		return appErrors.WrapAs(appErrors.ErrStorage, err, "failed to clear section")
	}
	return nil
}

// IsKnown reports whether code is in the configured catalogue.
func (s *SectionService) IsKnown(code models.SectionCode) bool {
	_, ok := s.known[code]
	return ok
}
