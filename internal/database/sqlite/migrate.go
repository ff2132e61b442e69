package sqlite

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"
)

type SeedConfig struct {
	AdminUsername string
	AdminPassword string
}

const SuperAdminRole = "super_admin"

var seedRoles = []struct{ name, description string }{
	{SuperAdminRole, "Full access"},
	{"manager", "Manage stock, purchases and bills"},
	{"cashier", "Create and view bills"},
}

var seedPermissions = []string{
	"manage_users", "manage_settings", "manage_vendors", "manage_items",
	"manage_purchases", "create_bills", "edit_bills", "delete_bills", "view_reports",
}

// Grants per role; super_admin gets every permission.
var seedGrants = map[string][]string{
	"manager": {"manage_vendors", "manage_items", "manage_purchases", "create_bills", "edit_bills", "view_reports"},
	"cashier": {"create_bills"},
}

// Migrate creates every table and index and seeds the fixed rows. It is safe
// to run against an existing store: DDL is IF NOT EXISTS and seeds are
// INSERT OR IGNORE, so nothing already present is overwritten.
func Migrate(ctx context.Context, db *sqlx.DB, seed *SeedConfig) error {
	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "begin schema transaction")
	}
	defer tx.Rollback()

	for _, stmt := range schemaDDL {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return errors.Wrapf(err, "create schema: %.60s", stmt)
		}
	}
	for _, stmt := range indexDDL {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return errors.Wrapf(err, "create index: %.60s", stmt)
		}
	}

	if err := seedRows(ctx, tx, seed); err != nil {
		return err
	}

	return errors.Wrap(tx.Commit(), "commit schema")
}

func seedRows(ctx context.Context, tx *sqlx.Tx, seed *SeedConfig) error {
	if _, err := tx.ExecContext(ctx,
		`INSERT OR IGNORE INTO schema_meta (id, version) VALUES (1, ?)`, SchemaVersion); err != nil {
		return errors.Wrap(err, "seed schema_meta")
	}
	if _, err := tx.ExecContext(ctx, `INSERT OR IGNORE INTO settings (id) VALUES (1)`); err != nil {
		return errors.Wrap(err, "seed settings")
	}

	for _, r := range seedRoles {
		if _, err := tx.ExecContext(ctx,
			`INSERT OR IGNORE INTO roles (name, description) VALUES (?, ?)`, r.name, r.description); err != nil {
			return errors.Wrapf(err, "seed role %s", r.name)
		}
	}
	for _, p := range seedPermissions {
		if _, err := tx.ExecContext(ctx,
			`INSERT OR IGNORE INTO permissions (name) VALUES (?)`, p); err != nil {
			return errors.Wrapf(err, "seed permission %s", p)
		}
	}

	grant := `
		INSERT OR IGNORE INTO role_permissions (role_id, permission_id)
		SELECT r.id, p.id FROM roles r, permissions p
		WHERE r.name = ? AND p.name = ?`
	for _, p := range seedPermissions {
		if _, err := tx.ExecContext(ctx, grant, SuperAdminRole, p); err != nil {
			return errors.Wrapf(err, "grant %s to %s", p, SuperAdminRole)
		}
	}
	for role, perms := range seedGrants {
		for _, p := range perms {
			if _, err := tx.ExecContext(ctx, grant, role, p); err != nil {
				return errors.Wrapf(err, "grant %s to %s", p, role)
			}
		}
	}

	return seedAdmin(ctx, tx, seed)
}

func seedAdmin(ctx context.Context, tx *sqlx.Tx, seed *SeedConfig) error {
	username, password := "admin", "admin"
	if seed != nil {
		if seed.AdminUsername != "" {
			username = seed.AdminUsername
		}
		if seed.AdminPassword != "" {
			password = seed.AdminPassword
		}
	}

	var exists int
	if err := tx.GetContext(ctx, &exists, `SELECT COUNT(*) FROM users WHERE username = ?`, username); err != nil {
		return errors.Wrap(err, "check admin user")
	}
	if exists > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return errors.Wrap(err, "hash admin password")
	}

	_, err = tx.ExecContext(ctx, `
		INSERT OR IGNORE INTO users (username, password_hash, full_name, role_id)
		SELECT ?, ?, 'Administrator', id FROM roles WHERE name = ?`,
		username, string(hash), SuperAdminRole)
	return errors.Wrap(err, "seed admin user")
}
