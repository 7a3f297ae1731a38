package db

import (
	"path/filepath"
	"testing"
)

func TestEmbeddedMigrationsApplyOnce(t *testing.T) {
	databasePath := filepath.Join(t.TempDir(), "parishdesk-migrate.db")

	firstOpen, err := OpenSQLite(databasePath)
	if err != nil {
		t.Fatalf("first open: %v", err)
	}
	firstConn, err := firstOpen.DB()
	if err != nil {
		t.Fatalf("first sql db: %v", err)
	}

	var appliedAfterFirst int64
	if err := firstOpen.Raw(`SELECT COUNT(*) FROM schema_migrations`).Scan(&appliedAfterFirst).Error; err != nil {
		t.Fatalf("count applied migrations: %v", err)
	}
	if appliedAfterFirst == 0 {
		t.Fatal("expected at least one applied migration")
	}
	if err := firstConn.Close(); err != nil {
		t.Fatalf("close first connection: %v", err)
	}

	// Re-opening the same file must be a no-op for already applied versions.
	secondOpen, err := OpenSQLite(databasePath)
	if err != nil {
		t.Fatalf("second open: %v", err)
	}
	secondConn, err := secondOpen.DB()
	if err != nil {
		t.Fatalf("second sql db: %v", err)
	}
	defer secondConn.Close()

	var appliedAfterSecond int64
	if err := secondOpen.Raw(`SELECT COUNT(*) FROM schema_migrations`).Scan(&appliedAfterSecond).Error; err != nil {
		t.Fatalf("count applied migrations: %v", err)
	}
	if appliedAfterSecond != appliedAfterFirst {
		t.Fatalf("expected %d applied migrations after reopen, got %d", appliedAfterFirst, appliedAfterSecond)
	}
}

func TestLoadEmbeddedMigrationsOrdersByVersion(t *testing.T) {
	migrations, err := loadEmbeddedMigrations()
	if err != nil {
		t.Fatalf("load embedded migrations: %v", err)
	}
	if len(migrations) == 0 {
		t.Fatal("expected embedded migrations to be present")
	}
	for index := 1; index < len(migrations); index++ {
		if migrations[index-1].Order >= migrations[index].Order {
			t.Fatalf("expected strictly increasing versions, got %s before %s",
				migrations[index-1].Name, migrations[index].Name)
		}
	}
}

func TestSplitSQLStatementsDropsBlanks(t *testing.T) {
	statements := splitSQLStatements("CREATE TABLE a (id INTEGER);\n\n;CREATE TABLE b (id INTEGER);\n")
	if len(statements) != 2 {
		t.Fatalf("expected 2 statements, got %d: %v", len(statements), statements)
	}
}
