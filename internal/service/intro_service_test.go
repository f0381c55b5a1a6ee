package service

import (
	"context"
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Abdullah-819/786Times/internal/data"
	"github.com/Abdullah-819/786Times/internal/models"
)

func TestIntroServiceRotationWraps(t *testing.T) {
	store := newKVStoreStub()
	svc := NewIntroService(store, IntroConfig{}, nil)
	ctx := context.Background()
	total := len(data.IntroVerses)

	for i := 0; i < total+2; i++ {
		verse, err := svc.NextIntro(ctx)
		require.NoError(t, err)
		assert.Equal(t, i%total, verse.Index)
		assert.Equal(t, total, verse.Total)
		assert.Equal(t, data.IntroVerses[i%total].Reference, verse.Reference)
	}
}

func TestIntroServiceRecoversFromGarbage(t *testing.T) {
	store := newKVStoreStub()
	store.values["@intro_index"] = "NaN"
	svc := NewIntroService(store, IntroConfig{}, nil)

	verse, err := svc.NextIntro(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, verse.Index)
	assert.Equal(t, "0", store.values["@intro_index"])
}

func TestIntroServiceStorageFailuresStillReturnVerse(t *testing.T) {
	store := newKVStoreStub()
	store.getErr = errors.New("read failed")
	store.setErr = errors.New("write failed")
	svc := NewIntroService(store, IntroConfig{}, nil)

	verse, err := svc.NextIntro(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, verse.Index)
}

func TestIntroServiceRandomSelection(t *testing.T) {
	quotes := []models.Quote{{Translation: "a"}, {Translation: "b"}}
	svc := NewIntroService(newKVStoreStub(), IntroConfig{
		Quotes: quotes,
		Dhikr:  []string{"only"},
		Source: rand.NewSource(1),
	}, nil)

	quote, err := svc.RandomQuote()
	require.NoError(t, err)
	assert.Contains(t, quotes, quote)

	dhikr, err := svc.RandomDhikr()
	require.NoError(t, err)
	assert.Equal(t, "only", dhikr)

	again := NewIntroService(newKVStoreStub(), IntroConfig{Quotes: quotes, Dhikr: []string{"only"}, Source: rand.NewSource(1)}, nil)
	same, err := again.RandomQuote()
	require.NoError(t, err)
	assert.Equal(t, quote, same)
}
