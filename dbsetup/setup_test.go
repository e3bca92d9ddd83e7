package dbsetup_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arsurgical/hub-backend/db/sqldb"
	"github.com/arsurgical/hub-backend/db/sqldb/impls/sqlite"
	"github.com/arsurgical/hub-backend/dbsetup"
	"github.com/arsurgical/hub-backend/sec"
)

var testConf = dbsetup.Conf{
	AdminEmail:    "admin@example.com",
	AdminPassword: "letmein",
}

func newSetupClient(t *testing.T) sqldb.Client {
	t.Helper()
	c := &sqlite.Client{Conf: &sqldb.Conf{
		Type: "sqlite",
		Path: filepath.Join(t.TempDir(), "setup.sqlite"),
	}}
	require.NoError(t, c.Init())
	t.Cleanup(func() { _ = c.Close() })
	return c
}

func countRows(t *testing.T, c sqldb.Client, table string) int64 {
	t.Helper()
	res, err := c.Query(context.Background(), "SELECT COUNT(*) AS n FROM "+table)
	require.NoError(t, err)
	require.Len(t, res.Rows, 1)
	switch n := res.Rows[0]["n"].(type) {
	case int64:
		return n
	default:
		t.Fatalf("unexpected count type %T", res.Rows[0]["n"])
		return 0
	}
}

func TestSetupSeedsFreshDatabase(t *testing.T) {
	c := newSetupClient(t)
	ctx := context.Background()

	require.NoError(t, dbsetup.Setup(ctx, c, testConf))

	assert.EqualValues(t, 3, countRows(t, c, "roles"))
	assert.EqualValues(t, 1, countRows(t, c, "users"))
	assert.EqualValues(t, 4, countRows(t, c, "categories"))
	assert.EqualValues(t, 6, countRows(t, c, "products"))
	assert.EqualValues(t, 2, countRows(t, c, "careers"))
	assert.EqualValues(t, 2, countRows(t, c, "vacancies"))
}

func TestSetupIsIdempotent(t *testing.T) {
	c := newSetupClient(t)
	ctx := context.Background()

	require.NoError(t, dbsetup.Setup(ctx, c, testConf))
	require.NoError(t, dbsetup.Setup(ctx, c, testConf))

	assert.EqualValues(t, 3, countRows(t, c, "roles"))
	assert.EqualValues(t, 1, countRows(t, c, "users"))
	assert.EqualValues(t, 6, countRows(t, c, "products"))
}

func TestSetupRolesHaveFixedIDs(t *testing.T) {
	c := newSetupClient(t)
	ctx := context.Background()
	require.NoError(t, dbsetup.Setup(ctx, c, testConf))

	res, err := c.Query(ctx, "SELECT id FROM roles WHERE name = $1", "admin")
	require.NoError(t, err)
	require.Len(t, res.Rows, 1)
	assert.Equal(t, dbsetup.AdminRoleID, res.Rows[0]["id"])

	res, err = c.Query(ctx, "SELECT id FROM roles WHERE name = $1", "customer")
	require.NoError(t, err)
	require.Len(t, res.Rows, 1)
	assert.Equal(t, dbsetup.CustomerRoleID, res.Rows[0]["id"])
}

func TestSetupAdminAccount(t *testing.T) {
	c := newSetupClient(t)
	ctx := context.Background()
	require.NoError(t, dbsetup.Setup(ctx, c, testConf))

	res, err := c.Query(ctx,
		"SELECT password_hash, role_id FROM users WHERE email = $1", testConf.AdminEmail)
	require.NoError(t, err)
	require.Len(t, res.Rows, 1)
	assert.Equal(t, dbsetup.AdminRoleID, res.Rows[0]["role_id"])

	hash, _ := res.Rows[0]["password_hash"].(string)
	assert.True(t, sec.CheckPassword(hash, testConf.AdminPassword))
}

func TestSetupKeepsExistingAdminPassword(t *testing.T) {
	c := newSetupClient(t)
	ctx := context.Background()

	require.NoError(t, dbsetup.Setup(ctx, c, testConf))

	changed := testConf
	changed.AdminPassword = "different"
	require.NoError(t, dbsetup.Setup(ctx, c, changed))

	res, err := c.Query(ctx, "SELECT password_hash FROM users WHERE email = $1", testConf.AdminEmail)
	require.NoError(t, err)
	require.Len(t, res.Rows, 1)
	hash, _ := res.Rows[0]["password_hash"].(string)
	assert.True(t, sec.CheckPassword(hash, testConf.AdminPassword))
}
