package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Abdullah-819/786Times/internal/data"
	"github.com/Abdullah-819/786Times/internal/models"
	appErrors "github.com/Abdullah-819/786Times/pkg/errors"
)

func venueTimetable() models.Timetable {
	return models.Timetable{
		"A": {
			models.Monday: {
				{ID: "a1", Type: models.LectureTypeLecture, Start: "08:00 AM", End: "09:00 AM", Venue: "D8", Slot: "1st Slot"},
				{ID: "a2", Type: models.LectureTypeLab, Start: "11:00 AM", End: "01:00 PM", Venue: "CLab-9", Slot: "4th Slot"},
			},
			models.Tuesday: {
				{ID: "a3", Type: models.LectureTypeLecture, Start: "09:00 AM", End: "10:00 AM", Venue: "B3", Slot: "2nd Slot"},
			},
		},
		"B": {
			models.Monday: {
				{ID: "b1", Type: models.LectureTypeLecture, Start: "08:00 AM", End: "09:00 AM", Venue: "B3", Slot: "1st Slot"},
				{ID: "b2", Type: models.LectureTypeLecture, Start: "late", End: "later", Venue: "W2", Slot: "5th slot"},
			},
		},
	}
}

func TestVenueServiceOccupancy(t *testing.T) {
	svc := NewVenueService(venueTimetable(), newKVStoreStub(), VenueConfig{}, nil)

	slots, err := svc.Occupancy(models.Monday)
	require.NoError(t, err)
	require.Len(t, slots, len(data.Slots))

	assert.Equal(t, "1st Slot", slots[0].Slot)
	assert.Equal(t, "08:00 AM - 09:00 AM", slots[0].Time)
	assert.Equal(t, []string{"B3", "D8"}, slots[0].Booked)
	assert.Equal(t, []string{"CLab-9", "W2"}, slots[0].Free)

	assert.Empty(t, slots[1].Booked)
	assert.Equal(t, []string{"B3", "CLab-9", "D8", "W2"}, slots[1].Free)

	// A lab running past noon only books the slots it overlaps.
	assert.Equal(t, []string{"CLab-9"}, slots[3].Booked)
	// Unparsable times fall back to the slot label.
	assert.Equal(t, []string{"W2"}, slots[4].Booked)
	assert.NotContains(t, slots[4].Booked, "CLab-9")
}

func TestVenueServiceRejectsWeekends(t *testing.T) {
	svc := NewVenueService(venueTimetable(), newKVStoreStub(), VenueConfig{}, nil)

	_, err := svc.Occupancy(models.Saturday)
	assert.ErrorIs(t, err, appErrors.ErrValidation)
	_, err = svc.Venues("someday", models.SlotModeFree)
	assert.ErrorIs(t, err, appErrors.ErrValidation)
}

func TestVenueServiceVenuesByMode(t *testing.T) {
	svc := NewVenueService(venueTimetable(), newKVStoreStub(), VenueConfig{}, nil)

	booked, err := svc.Venues(models.Tuesday, models.SlotModeBooked)
	require.NoError(t, err)
	assert.Equal(t, models.Tuesday, booked.Day)
	assert.Equal(t, models.SlotModeBooked, booked.Mode)
	assert.Equal(t, []string{"B3"}, booked.Slots[1].Venues)
	assert.Equal(t, 1, booked.Slots[1].Count)
	assert.Equal(t, 0, booked.Slots[0].Count)

	free, err := svc.Venues(models.Tuesday, models.SlotModeFree)
	require.NoError(t, err)
	assert.Equal(t, []string{"CLab-9", "D8", "W2"}, free.Slots[1].Venues)

	_, err = svc.Venues(models.Tuesday, "busy")
	assert.ErrorIs(t, err, appErrors.ErrValidation)
}

func TestVenueServiceExplicitCatalogue(t *testing.T) {
	svc := NewVenueService(venueTimetable(), newKVStoreStub(), VenueConfig{
		Slots:  []models.SlotDefinition{{Label: "Morning", Start: "08:00 AM", End: "12:00 PM"}},
		Venues: []string{"D8", "Auditorium"},
	}, nil)

	slots, err := svc.Occupancy(models.Monday)
	require.NoError(t, err)
	require.Len(t, slots, 1)
	assert.Equal(t, []string{"Auditorium"}, slots[0].Free)
	assert.Equal(t, []string{"B3", "CLab-9", "D8"}, slots[0].Booked)
}

func TestVenueServiceSlotMode(t *testing.T) {
	store := newKVStoreStub()
	svc := NewVenueService(venueTimetable(), store, VenueConfig{}, nil)
	ctx := context.Background()

	mode, err := svc.SlotMode(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.SlotModeFree, mode)

	require.NoError(t, svc.SaveSlotMode(ctx, "BOOKED"))
	assert.Equal(t, "booked", store.values["@slot_mode"])
	mode, err = svc.SlotMode(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.SlotModeBooked, mode)

	assert.ErrorIs(t, svc.SaveSlotMode(ctx, "busy"), appErrors.ErrValidation)
	assert.Equal(t, "booked", store.values["@slot_mode"])

	store.values["@slot_mode"] = "sideways"
	mode, err = svc.SlotMode(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.SlotModeFree, mode)
}

func TestVenueServiceSlotModeStorageFailure(t *testing.T) {
	store := newKVStoreStub()
	svc := NewVenueService(venueTimetable(), store, VenueConfig{Key: "@mode"}, nil)
	ctx := context.Background()

	store.getErr = errors.New("disk gone")
	mode, err := svc.SlotMode(ctx)
	assert.ErrorIs(t, err, appErrors.ErrStorage)
	assert.Equal(t, models.SlotModeFree, mode)

	store.setErr = errors.New("disk gone")
	assert.ErrorIs(t, svc.SaveSlotMode(ctx, models.SlotModeBooked), appErrors.ErrStorage)
	assert.Empty(t, store.values)
}
