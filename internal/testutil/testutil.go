// Copyright (c) 2025 Hirewire
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package testutil provides schema-per-test isolation for database tests.
// Tests are skipped unless RUN_DB_TESTS=1 is set.
package testutil

import (
	"context"
	"fmt"
	"os"
	"regexp"
	"strings"
	"testing"

	"github.com/gofrs/uuid"
	"github.com/hirewire/hirewire/internal/database/postgres"
	platformconfig "github.com/hirewire/hirewire/internal/platform/config"
)

// IsolatedDB is a postgres client pinned to a schema that exists only for
// the lifetime of one test.
type IsolatedDB struct {
	Client *postgres.Client
	Schema string
}

// Setup creates a dedicated schema for the test, connects a client whose
// search_path is pinned to it, and drops the schema on cleanup. The test is
// skipped when RUN_DB_TESTS is not set or Postgres is unreachable.
func Setup(t *testing.T) *IsolatedDB {
	t.Helper()

	if os.Getenv("RUN_DB_TESTS") != "1" {
		t.Skip("set RUN_DB_TESTS=1 to run database tests")
	}

	cfg, err := platformconfig.LoadFromEnv()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	ctx := context.Background()

	suffix := strings.ReplaceAll(uuid.Must(uuid.NewV4()).String(), "-", "")[:16]
	schema := fmt.Sprintf("test_%s_%s", sanitizeTestName(t.Name()), suffix)

	// An admin connection without a pinned search_path manages the schema.
	adminCfg := cfg.Database.Postgres
	adminCfg.Schema = ""
	admin, err := postgres.NewClient(ctx, &adminCfg)
	if err != nil {
		t.Skipf("PostgreSQL not available, skipping test: %v", err)
	}

	if _, err := admin.DB().ExecContext(ctx, fmt.Sprintf("CREATE SCHEMA %s", schema)); err != nil {
		admin.Close()
		t.Fatalf("failed to create test schema %s: %v", schema, err)
	}

	testCfg := cfg.Database.Postgres
	testCfg.Schema = schema
	client, err := postgres.NewClient(ctx, &testCfg)
	if err != nil {
		admin.Close()
		t.Fatalf("failed to connect to test schema %s: %v", schema, err)
	}

	t.Cleanup(func() {
		client.Close()
		if _, err := admin.DB().ExecContext(context.Background(),
			fmt.Sprintf("DROP SCHEMA IF EXISTS %s CASCADE", schema)); err != nil {
			t.Logf("failed to drop test schema %s: %v", schema, err)
		}
		admin.Close()
	})

	return &IsolatedDB{Client: client, Schema: schema}
}

// Migrate applies the given DDL to the test schema.
func (db *IsolatedDB) Migrate(t *testing.T, ddl string) {
	t.Helper()
	if _, err := db.Client.DB().ExecContext(context.Background(), ddl); err != nil {
		t.Fatalf("migration failed: %v", err)
	}
}

var identifierRe = regexp.MustCompile(`[^a-zA-Z0-9_]+`)

// sanitizeTestName turns a test name into a valid schema identifier.
func sanitizeTestName(name string) string {
	name = strings.ReplaceAll(name, "/", "_")
	name = strings.ToLower(identifierRe.ReplaceAllString(name, ""))
	const maxLen = 40
	if len(name) > maxLen {
		name = name[:maxLen]
	}
	return name
}
