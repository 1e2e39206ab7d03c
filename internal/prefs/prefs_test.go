package prefs_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/odalys-dev/pennybook/internal/infra/memory"
	"github.com/odalys-dev/pennybook/internal/prefs"
	"github.com/odalys-dev/pennybook/internal/shared/apperrors"
	"github.com/odalys-dev/pennybook/internal/storage"
	"github.com/odalys-dev/pennybook/pkg/logger"
)

type writerFunc func(p []byte) (int, error)

func (f writerFunc) Write(p []byte) (int, error) { return f(p) }

func newService(t *testing.T) (*prefs.Service, *memory.KV) {
	t.Helper()
	kv := memory.NewKV()
	log := logger.New("test", writerFunc(func(p []byte) (int, error) {
		t.Log(string(p))
		return len(p), nil
	}))
	return prefs.NewService(kv, log), kv
}

func TestGetDefaults(t *testing.T) {
	svc, _ := newService(t)
	got := svc.Get(context.Background())
	assert.Equal(t, prefs.Defaults(), got)
}

func TestSetAndGetRoundTrip(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService(t)

	want := prefs.Preferences{CurrencyCode: "EUR", CurrencySymbol: "€", ShowTooltips: false}
	require.NoError(t, svc.Set(ctx, want))
	assert.Equal(t, want, svc.Get(ctx))
}

func TestSetValidation(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService(t)

	err := svc.Set(ctx, prefs.Preferences{CurrencyCode: "", CurrencySymbol: "$"})
	assert.True(t, apperrors.IsCode(err, apperrors.CodeValidation))

	err = svc.Set(ctx, prefs.Preferences{CurrencyCode: "USD", CurrencySymbol: "  "})
	assert.True(t, apperrors.IsCode(err, apperrors.CodeValidation))
}

func TestGetCorruptValue(t *testing.T) {
	ctx := context.Background()
	svc, kv := newService(t)

	require.NoError(t, kv.Set(ctx, storage.KeyPreferences, "][nonsense"))
	assert.Equal(t, prefs.Defaults(), svc.Get(ctx))
}
