package service

import (
	"context"
	"testing"

	"github.com/askboard/askboard/internal/board/domain"
	"github.com/askboard/askboard/internal/board/store"
	"github.com/askboard/askboard/internal/board/store/drivers/sqlite"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) store.Store {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	require.NoError(t, st.ApplyMigrations())
	return st
}

// registerUser creates an account directly through the credential service,
// bypassing the invitation gate.
func registerUser(
	t *testing.T,
	ctx context.Context,
	creds *CredentialService,
	username, password string,
	roles ...string,
) {
	t.Helper()

	_, err := creds.Register(ctx, username, password, domain.NewRoleSet(roles...))
	require.NoError(t, err)
}
