package internal

import (
	"path/filepath"
	"testing"

	"github.com/talqui/cx-insight/testutil"
)

func TestOpenDatabase(t *testing.T) {
	dir := testutil.CreateTempDir(t)
	dbPath := filepath.Join(dir, "export.db")
	testutil.CreateSQLiteFixture(t, dbPath)

	db, err := OpenDatabase(dbPath)
	if err != nil {
		t.Fatalf("OpenDatabase failed: %v", err)
	}
	defer func() { _ = db.Close() }()
}

func TestLoadMessagesDB(t *testing.T) {
	dir := testutil.CreateTempDir(t)
	dbPath := filepath.Join(dir, "export.db")
	testutil.CreateSQLiteFixture(t, dbPath)

	db, err := OpenDatabase(dbPath)
	if err != nil {
		t.Fatalf("OpenDatabase failed: %v", err)
	}
	defer func() { _ = db.Close() }()

	table, err := LoadMessagesDB(db)
	if err != nil {
		t.Fatalf("LoadMessagesDB failed: %v", err)
	}
	if len(table.Messages) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(table.Messages))
	}

	m := table.Messages[0]
	if m.ID != "m1" || m.Direction != DirectionInbound || m.Channel != "whatsapp" {
		t.Errorf("first message = %+v", m)
	}
	if !m.HasContent {
		t.Error("first message should have content")
	}
}

func TestLoadSessionsDB(t *testing.T) {
	dir := testutil.CreateTempDir(t)
	dbPath := filepath.Join(dir, "export.db")
	testutil.CreateSQLiteFixture(t, dbPath)

	db, err := OpenDatabase(dbPath)
	if err != nil {
		t.Fatalf("OpenDatabase failed: %v", err)
	}
	defer func() { _ = db.Close() }()

	table, err := LoadSessionsDB(db)
	if err != nil {
		t.Fatalf("LoadSessionsDB failed: %v", err)
	}
	if len(table.Sessions) != 1 {
		t.Fatalf("expected 1 session, got %d", len(table.Sessions))
	}

	s := table.Sessions[0]
	if s.Operator != "Ana" || s.CloseReason != "resolved" {
		t.Errorf("session = %+v", s)
	}
	if s.Rating == nil || *s.Rating != 5 {
		t.Errorf("rating = %v, want 5", s.Rating)
	}
	if s.Duration == nil || *s.Duration != 900 {
		t.Errorf("duration = %v, want 900", s.Duration)
	}
}

func TestLoadPluginsDBMissingTable(t *testing.T) {
	dir := testutil.CreateTempDir(t)
	dbPath := filepath.Join(dir, "export.db")
	testutil.CreateSQLiteFixture(t, dbPath)

	db, err := OpenDatabase(dbPath)
	if err != nil {
		t.Fatalf("OpenDatabase failed: %v", err)
	}
	defer func() { _ = db.Close() }()

	table, err := LoadPluginsDB(db)
	if err != nil {
		t.Fatalf("LoadPluginsDB should tolerate a missing table, got %v", err)
	}
	if table != nil {
		t.Errorf("expected a nil table for a missing export, got %+v", table)
	}
}

func TestOpenDatabaseMissingFile(t *testing.T) {
	dir := testutil.CreateTempDir(t)
	if db, err := OpenDatabase(filepath.Join(dir, "missing.db")); err == nil {
		_ = db.Close()
		t.Error("expected an error for a missing database")
	}
}
