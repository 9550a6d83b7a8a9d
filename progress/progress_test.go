package progress

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSQLiteStore(t *testing.T) *SQLiteStore {
	t.Helper()
	db, err := OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() {
		db.Close()
	})
	return NewSQLiteStore(db)
}

func storesUnderTest(t *testing.T) map[string]Store {
	return map[string]Store{
		"memory": NewMemStore(),
		"sqlite": newTestSQLiteStore(t),
	}
}

func TestKeyString(t *testing.T) {
	assert.Equal(t, "2-4", Key{Item: 2, Category: 4}.String())
}

func TestStore_GetSetClear(t *testing.T) {
	ctx := context.Background()
	for name, s := range storesUnderTest(t) {
		t.Run(name, func(t *testing.T) {
			k := Key{Item: 1, Category: 3}

			on, err := s.Get(ctx, k)
			require.NoError(t, err)
			assert.False(t, on, "absent entries are unchecked")

			require.NoError(t, s.Set(ctx, k, true))
			on, err = s.Get(ctx, k)
			require.NoError(t, err)
			assert.True(t, on)

			require.NoError(t, s.Set(ctx, k, false))
			on, err = s.Get(ctx, k)
			require.NoError(t, err)
			assert.False(t, on)

			require.NoError(t, s.Set(ctx, k, true))
			require.NoError(t, s.Set(ctx, Key{Item: 0, Category: 0}, true))
			require.NoError(t, s.Clear(ctx))
			on, err = s.Get(ctx, k)
			require.NoError(t, err)
			assert.False(t, on, "clear removes all entries")
		})
	}
}

func TestSQLiteStore_Persists(t *testing.T) {
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "sub", "progress.db")

	db, err := OpenDB(dbPath)
	require.NoError(t, err)
	require.NoError(t, NewSQLiteStore(db).Set(ctx, Key{Item: 2, Category: 1}, true))
	require.NoError(t, db.Close())

	db, err = OpenDB(dbPath)
	require.NoError(t, err)
	defer db.Close()
	on, err := NewSQLiteStore(db).Get(ctx, Key{Item: 2, Category: 1})
	require.NoError(t, err)
	assert.True(t, on)
}

func TestSQLiteStore_ValueEncoding(t *testing.T) {
	ctx := context.Background()
	s := newTestSQLiteStore(t)
	require.NoError(t, s.Set(ctx, Key{Item: 0, Category: 2}, true))
	require.NoError(t, s.Set(ctx, Key{Item: 1, Category: 2}, false))

	var value string
	require.NoError(t, s.db.QueryRow(`SELECT value FROM checklist WHERE key = '0-2'`).Scan(&value))
	assert.Equal(t, "1", value)
	require.NoError(t, s.db.QueryRow(`SELECT value FROM checklist WHERE key = '1-2'`).Scan(&value))
	assert.Equal(t, "0", value)
}

func TestMatrix(t *testing.T) {
	ctx := context.Background()
	s := NewMemStore()
	require.NoError(t, s.Set(ctx, Key{Item: 0, Category: 1}, true))
	require.NoError(t, s.Set(ctx, Key{Item: 2, Category: 1}, true))
	require.NoError(t, s.Set(ctx, Key{Item: 1, Category: 4}, true))

	m, err := Load(ctx, s, 3, 5)
	require.NoError(t, err)
	levels := make([]int, 5)
	for c := range levels {
		levels[c] = m.Level(c)
	}
	assert.Equal(t, []int{0, 2, 0, 0, 1}, levels)
	assert.True(t, m.Checked(Key{Item: 2, Category: 1}))
	assert.False(t, m.Checked(Key{Item: 1, Category: 1}))
	assert.False(t, m.Checked(Key{Item: 5, Category: 1}), "keys outside the matrix are unchecked")
	assert.True(t, m.Contains(Key{Item: 2, Category: 4}))
	assert.False(t, m.Contains(Key{Item: 0, Category: 5}))
	assert.False(t, m.Contains(Key{Item: -1, Category: 0}))
	assert.Equal(t, 0, m.Level(7), "categories outside the matrix have level 0")
}
