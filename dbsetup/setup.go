// Package dbsetup prepares a ready database on process start: schema,
// fixed roles, the administrator account, and first-run catalog data.
// Everything is idempotent — running it on every boot is the intended
// usage.
package dbsetup

import (
	"context"
	"embed"
	"fmt"
	"log"

	"github.com/arsurgical/hub-backend/db/sqldb"
	"github.com/arsurgical/hub-backend/sec"
)

//go:embed sql
var sqlFS embed.FS

// Fixed role identifiers, stable across environments so exports and
// fixtures can reference them.
const (
	AdminRoleID    = "c56a4180-65aa-42ec-a945-5fd21dec0501"
	ManagerRoleID  = "c56a4180-65aa-42ec-a945-5fd21dec0502"
	CustomerRoleID = "c56a4180-65aa-42ec-a945-5fd21dec0503"
)

// Conf carries the first-run administrator credentials.
type Conf struct {
	AdminEmail    string
	AdminPassword string
}

// Setup creates missing tables and seed rows. Callers treat a returned
// error as degraded startup, not fatal: the service still serves
// whatever data is already present.
func Setup(ctx context.Context, client sqldb.Client, conf Conf) error {
	if err := applySchema(ctx, client); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	evolveSchema(ctx, client)
	if err := ensureRoles(ctx, client); err != nil {
		return fmt.Errorf("ensure roles: %w", err)
	}
	if err := ensureAdmin(ctx, client, conf); err != nil {
		return fmt.Errorf("ensure admin: %w", err)
	}
	if err := seedCatalog(ctx, client); err != nil {
		return fmt.Errorf("seed catalog: %w", err)
	}
	if err := seedCareers(ctx, client); err != nil {
		return fmt.Errorf("seed careers: %w", err)
	}
	return nil
}

func applySchema(ctx context.Context, client sqldb.Client) error {
	store := sqldb.NewRawStore()
	if err := sqldb.LoadRawStmts(store, sqlFS, client.GetConf().Type); err != nil {
		return err
	}
	schema, ok := store.Get("schema")
	if !ok {
		return fmt.Errorf("no schema statement for engine type %q", client.GetConf().Type)
	}
	for _, stmt := range sqldb.SplitStatements(schema) {
		if _, err := client.Query(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}

// evolveSchema adds columns introduced after the first release. None of
// the engines have a portable "add column if missing", so the duplicate
// column error on an already-migrated database is expected and ignored.
func evolveSchema(ctx context.Context, client sqldb.Client) {
	alters := []string{
		"ALTER TABLE categories ADD COLUMN image_url TEXT",
		"ALTER TABLE products ADD COLUMN image_url TEXT",
	}
	for _, stmt := range alters {
		if _, err := client.Query(ctx, stmt); err != nil {
			log.Printf("[INFO] schema evolution skipped (%s)", firstWords(stmt, 6))
		}
	}
}

func ensureRoles(ctx context.Context, client sqldb.Client) error {
	roles := []struct {
		id   string
		name string
	}{
		{AdminRoleID, "admin"},
		{ManagerRoleID, "manager"},
		{CustomerRoleID, "customer"},
	}
	for _, role := range roles {
		res, err := client.Query(ctx, "SELECT id FROM roles WHERE name = $1", role.name)
		if err != nil {
			return err
		}
		if len(res.Rows) > 0 {
			continue
		}
		if _, err = client.Query(ctx,
			"INSERT INTO roles (id, name) VALUES ($1, $2)",
			role.id, role.name,
		); err != nil {
			return err
		}
	}
	return nil
}

func ensureAdmin(ctx context.Context, client sqldb.Client, conf Conf) error {
	res, err := client.Query(ctx, "SELECT id FROM users WHERE email = $1", conf.AdminEmail)
	if err != nil {
		return err
	}
	if len(res.Rows) > 0 {
		return nil
	}
	hash, err := sec.HashPassword(conf.AdminPassword)
	if err != nil {
		return err
	}
	_, err = client.Query(ctx,
		"INSERT INTO users (id, full_name, email, password_hash, phone, role_id) VALUES ($1, $2, $3, $4, $5, $6)",
		newID(), "Admin User", conf.AdminEmail, hash, "+1 555 000 0000", AdminRoleID,
	)
	if err != nil {
		return err
	}
	log.Printf("[INFO] admin user seeded: %s", conf.AdminEmail)
	return nil
}
