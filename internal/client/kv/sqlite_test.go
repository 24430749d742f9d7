package kv

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func setupStore(t *testing.T) *SQLiteStore {
	t.Helper()
	s, err := Open(context.Background(), filepath.Join(t.TempDir(), "carework.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestSQLiteStore_SetAndGet(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "@carework:token", "t1"))

	v, ok, err := s.Get(ctx, "@carework:token")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "t1", v)

	require.NoError(t, s.Set(ctx, "@carework:token", "t2"))
	v, ok, err = s.Get(ctx, "@carework:token")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "t2", v)
}

func TestSQLiteStore_GetMissing(t *testing.T) {
	s := setupStore(t)

	v, ok, err := s.Get(context.Background(), "nope")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, v)
}

func TestSQLiteStore_EmptyValueIsPresent(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "k", ""))
	v, ok, err := s.Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "", v)
}

func TestSQLiteStore_RemoveAndKeys(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	for _, k := range []string{"b", "a", "c"} {
		require.NoError(t, s.Set(ctx, k, "v"))
	}

	keys, err := s.Keys(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, keys)

	require.NoError(t, s.Remove(ctx, "b"))
	require.NoError(t, s.Remove(ctx, "absent"))

	keys, err = s.Keys(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "c"}, keys)
}

func TestSQLiteStore_MultiRemove(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	for _, k := range []string{"a", "b", "c", "d"} {
		require.NoError(t, s.Set(ctx, k, "v"))
	}
	require.NoError(t, s.MultiRemove(ctx, []string{"a", "c", "zzz"}))
	require.NoError(t, s.MultiRemove(ctx, nil))

	keys, err := s.Keys(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "d"}, keys)
}

func TestSQLiteStore_KeysEmpty(t *testing.T) {
	s := setupStore(t)

	keys, err := s.Keys(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, keys)
	assert.Empty(t, keys)
}

func TestOpen_PersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "carework.db")

	s, err := Open(ctx, path)
	require.NoError(t, err)
	require.NoError(t, s.Set(ctx, "@carework:userId", "u1"))
	require.NoError(t, s.Close())

	s, err = Open(ctx, path)
	require.NoError(t, err)
	defer s.Close()

	v, ok, err := s.Get(ctx, "@carework:userId")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "u1", v)
}

func newMockStore(t *testing.T) (*SQLiteStore, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewSQLiteStore(db), mock
}

func TestSQLiteStore_GetError(t *testing.T) {
	s, mock := newMockStore(t)
	mock.ExpectQuery(`SELECT value FROM kv WHERE key = \?`).
		WithArgs("k").
		WillReturnError(errors.New("disk I/O error"))

	_, ok, err := s.Get(context.Background(), "k")
	require.Error(t, err)
	assert.False(t, ok)
	assert.Contains(t, err.Error(), "failed to get kv[k]")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLiteStore_SetError(t *testing.T) {
	s, mock := newMockStore(t)
	mock.ExpectExec(`INSERT INTO kv`).
		WithArgs("k", "v").
		WillReturnError(errors.New("readonly database"))

	err := s.Set(context.Background(), "k", "v")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "readonly database")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLiteStore_KeysScanError(t *testing.T) {
	s, mock := newMockStore(t)
	rows := sqlmock.NewRows([]string{"key"}).
		AddRow("a").
		RowError(0, errors.New("row broken"))
	mock.ExpectQuery(`SELECT key FROM kv ORDER BY key`).WillReturnRows(rows)

	_, err := s.Keys(context.Background())
	require.Error(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLiteStore_MultiRemoveRollsBack(t *testing.T) {
	s, mock := newMockStore(t)
	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM kv WHERE key = \?`).WithArgs("a").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`DELETE FROM kv WHERE key = \?`).WithArgs("b").
		WillReturnError(errors.New("locked"))
	mock.ExpectRollback()

	err := s.MultiRemove(context.Background(), []string{"a", "b"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to remove 2 kv keys")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRunMigrations_Idempotent(t *testing.T) {
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	defer db.Close()
	db.SetMaxOpenConns(1)

	ctx := context.Background()
	require.NoError(t, RunMigrations(ctx, db))
	require.NoError(t, RunMigrations(ctx, db))

	_, err = db.ExecContext(ctx, `INSERT INTO kv (key, value) VALUES ('x', 'y')`)
	require.NoError(t, err)
}
