package services

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/dmitrijs2005/carework/internal/client/client"
	"github.com/dmitrijs2005/carework/internal/client/kv"
	"github.com/dmitrijs2005/carework/internal/client/models"
	"github.com/dmitrijs2005/carework/internal/client/session"
	"github.com/dmitrijs2005/carework/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newSQLiteSession opens a file-backed store holding a saved session.
func newSQLiteSession(t *testing.T) (*kv.SQLiteStore, *session.Store) {
	t.Helper()
	ctx := context.Background()
	store, err := kv.Open(ctx, filepath.Join(t.TempDir(), "carework.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	sess := session.NewStore(store, "")
	require.NoError(t, sess.Save(ctx, session.Session{Token: "t1", UserID: "u1", UserName: "Ann", UserEmail: "a@b.com"}))
	return store, sess
}

func cancelledContext() context.Context {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	return ctx
}

func TestLogout_ClearsSQLiteSessionWithCancelledContext(t *testing.T) {
	store, sess := newSQLiteSession(t)
	fc := &fakeClient{Err: &client.APIError{Message: client.MsgConnection, Kind: client.KindTransport}}

	require.NoError(t, NewAuthService(fc, sess, logging.Discard()).Logout(cancelledContext()))

	keys, err := store.Keys(context.Background())
	require.NoError(t, err)
	assert.Empty(t, keys)
	_, err = sess.Load(context.Background())
	assert.ErrorIs(t, err, session.ErrNoSession)
}

func TestDeleteAccount_ClearsSQLiteSessionWithCancelledContext(t *testing.T) {
	store, sess := newSQLiteSession(t)
	fc := &fakeClient{}

	err := NewAuthService(fc, sess, logging.Discard()).DeleteAccount(cancelledContext(), models.DeleteAccountRequest{Password: "pw"})
	require.NoError(t, err)

	keys, err := store.Keys(context.Background())
	require.NoError(t, err)
	assert.Empty(t, keys)
}
