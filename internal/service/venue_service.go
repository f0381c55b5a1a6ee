package service

import (
	"context"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/Abdullah-819/786Times/internal/data"
	"github.com/Abdullah-819/786Times/internal/models"
	appErrors "github.com/Abdullah-819/786Times/pkg/errors"
	"github.com/Abdullah-819/786Times/pkg/timeofday"
)

// VenueConfig configures the venue explorer.
type VenueConfig struct {
	// Key stores the preferred slot mode.
	Key    string
	Slots  []models.SlotDefinition
	Venues []string
}

// VenueService reports which venues are free or booked in each teaching slot,
// across every section of the timetable.
type VenueService struct {
	timetable models.Timetable
	store     KeyValueStore
	cfg       VenueConfig
	logger    *zap.Logger
}

// NewVenueService constructs the explorer. Without explicit venues the
// catalogue is every venue the timetable uses.
func NewVenueService(timetable models.Timetable, store KeyValueStore, cfg VenueConfig, logger *zap.Logger) *VenueService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.Key == "" {
		cfg.Key = "@slot_mode"
	}
	if len(cfg.Slots) == 0 {
		cfg.Slots = data.Slots
	}
	if len(cfg.Venues) == 0 {
		cfg.Venues = data.VenueCatalogue(timetable)
	}
	return &VenueService{timetable: timetable, store: store, cfg: cfg, logger: logger}
}

// Occupancy splits the catalogue into free and booked venues for every slot
// of day. Only teaching days are accepted.
func (s *VenueService) Occupancy(day models.Weekday) ([]models.SlotOccupancy, error) {
	if !isTeachingDay(day) {
		return nil, appErrors.Clone(appErrors.ErrValidation, "no slots on "+string(day))
	}

	var lectures []models.Lecture
	for _, week := range s.timetable {
		lectures = append(lectures, week[day]...)
	}

	out := make([]models.SlotOccupancy, 0, len(s.cfg.Slots))
	for _, slot := range s.cfg.Slots {
		booked := make(map[string]struct{})
		for _, l := range lectures {
			venue := strings.TrimSpace(l.Venue)
			if venue != "" && occupies(l, slot) {
				booked[venue] = struct{}{}
			}
		}
		occ := models.SlotOccupancy{
			Slot:   slot.Label,
			Time:   slot.Start + " - " + slot.End,
			Free:   []string{},
			Booked: make([]string, 0, len(booked)),
		}
		for _, venue := range s.cfg.Venues {
			if _, ok := booked[venue]; !ok {
				occ.Free = append(occ.Free, venue)
			}
		}
		for venue := range booked {
			occ.Booked = append(occ.Booked, venue)
		}
		sort.Strings(occ.Booked)
		out = append(out, occ)
	}
	return out, nil
}

// Venues returns the venues of day in one mode, slot by slot.
func (s *VenueService) Venues(day models.Weekday, mode models.SlotMode) (models.VenueDay, error) {
	if _, ok := models.ParseSlotMode(string(mode)); !ok {
		return models.VenueDay{}, appErrors.Clone(appErrors.ErrValidation, "unknown slot mode "+string(mode))
	}
	slots, err := s.Occupancy(day)
	if err != nil {
		return models.VenueDay{}, err
	}
	out := models.VenueDay{Day: day, Mode: mode, Slots: make([]models.SlotVenues, 0, len(slots))}
	for _, slot := range slots {
		venues := slot.Free
		if mode == models.SlotModeBooked {
			venues = slot.Booked
		}
		out.Slots = append(out.Slots, models.SlotVenues{Slot: slot.Slot, Time: slot.Time, Count: len(venues), Venues: venues})
	}
	return out, nil
}

// SlotMode returns the stored explorer mode. Absent or unknown values read as
// free; a failed read returns free together with the error.
func (s *VenueService) SlotMode(ctx context.Context) (models.SlotMode, error) {
	raw, err := s.store.Get(ctx, s.cfg.Key)
	if err != nil {
		if isKeyNotFound(err) {
			return models.SlotModeFree, nil
		}
		s.logger.Warn("failed to read slot mode", zap.Error(err))
		return models.SlotModeFree, appErrors.WrapAs(appErrors.ErrStorage, err, "failed to read slot mode")
	}
	mode, ok := models.ParseSlotMode(raw)
	if !ok {
		s.logger.Warn("ignoring stored slot mode", zap.String("mode", raw))
		return models.SlotModeFree, nil
	}
	return mode, nil
}

// SaveSlotMode persists mode.
func (s *VenueService) SaveSlotMode(ctx context.Context, mode models.SlotMode) error {
	parsed, ok := models.ParseSlotMode(string(mode))
	if !ok {
		return appErrors.Clone(appErrors.ErrValidation, "unknown slot mode "+string(mode))
	}
	if err := s.store.Set(ctx, s.cfg.Key, string(parsed)); err != nil {
		s.logger.Warn("failed to save slot mode", zap.String("mode", string(parsed)), zap.Error(err))
		return appErrors.WrapAs(appErrors.ErrStorage, err, "failed to save slot mode")
	}
	return nil
}

// occupies reports whether l overlaps slot. Unparsable times fall back to the
// lecture's slot label.
func occupies(l models.Lecture, slot models.SlotDefinition) bool {
	start, err1 := timeofday.Hours(l.Start)
	end, err2 := timeofday.Hours(l.End)
	slotStart, err3 := timeofday.Hours(slot.Start)
	slotEnd, err4 := timeofday.Hours(slot.End)
	if err1 != nil || err2 != nil || err3 != nil || err4 != nil {
		return strings.EqualFold(strings.TrimSpace(l.Slot), slot.Label)
	}
	return start < slotEnd && end > slotStart
}

func isTeachingDay(day models.Weekday) bool {
	for _, d := range models.TeachingDays {
		if d == day {
			return true
		}
	}
	return false
}
