//go:build integration

package postgres

import (
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/odalys-dev/pennybook/internal/storage"
	"github.com/odalys-dev/pennybook/pkg/logger"
	"github.com/odalys-dev/pennybook/testutil/testdb"
)

var testDB *testdb.TestDB

func TestMain(m *testing.M) {
	ctx := context.Background()

	var err error
	testDB, err = testdb.NewTestDB(ctx)
	if err != nil {
		panic("failed to create test database: " + err.Error())
	}

	kv := NewKV(&DB{Pool: testDB.Pool}, logger.New("test", io.Discard))
	if err := kv.EnsureSchema(ctx); err != nil {
		testDB.Close(ctx)
		panic("failed to create kv table: " + err.Error())
	}

	code := m.Run()

	testDB.Close(ctx)
	if code != 0 {
		panic("tests failed")
	}
}

func setupTest(t *testing.T) (*KV, context.Context) {
	ctx := context.Background()
	require.NoError(t, testDB.Reset(ctx))

	kv := NewKV(&DB{Pool: testDB.Pool}, logger.New("test", io.Discard))
	return kv, ctx
}

func TestKV_GetMissingKey(t *testing.T) {
	kv, ctx := setupTest(t)

	value, ok, err := kv.Get(ctx, storage.KeyLedger)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, value)
}

func TestKV_SetThenGet(t *testing.T) {
	kv, ctx := setupTest(t)

	require.NoError(t, kv.Set(ctx, storage.KeyLedger, `[{"id":1}]`))

	value, ok, err := kv.Get(ctx, storage.KeyLedger)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `[{"id":1}]`, value)
}

func TestKV_SetOverwrites(t *testing.T) {
	kv, ctx := setupTest(t)

	require.NoError(t, kv.Set(ctx, storage.KeyPreferences, `{"currency_code":"USD"}`))
	require.NoError(t, kv.Set(ctx, storage.KeyPreferences, `{"currency_code":"EUR"}`))

	value, ok, err := kv.Get(ctx, storage.KeyPreferences)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `{"currency_code":"EUR"}`, value)
}

func TestKV_KeysAreIndependent(t *testing.T) {
	kv, ctx := setupTest(t)

	require.NoError(t, kv.Set(ctx, storage.KeyLedger, "[]"))
	require.NoError(t, kv.Set(ctx, storage.KeyPreferences, "{}"))

	ledgerValue, ok, err := kv.Get(ctx, storage.KeyLedger)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "[]", ledgerValue)

	prefsValue, ok, err := kv.Get(ctx, storage.KeyPreferences)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "{}", prefsValue)
}

func TestKV_EnsureSchemaIdempotent(t *testing.T) {
	kv, ctx := setupTest(t)

	require.NoError(t, kv.EnsureSchema(ctx))
	require.NoError(t, kv.EnsureSchema(ctx))
}
