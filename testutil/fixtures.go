package testutil

import (
	"database/sql"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	_ "modernc.org/sqlite"
)

// MessageColumns is the header of the messages CSV export.
var MessageColumns = []string{
	"messageID", "sessionID", "contactID", "messageDirection",
	"messageChannel", "messageValue", "messageKey", "createdAt",
}

// SessionColumns is the header of the sessions CSV export.
var SessionColumns = []string{
	"sessionID", "contactID", "operatorFirstname", "queuedAt", "manualAt",
	"closedAt", "createdAt", "updatedAt", "sessionRatingStars",
	"__sessionMessagesCount", "__sessionDuration", "__sessionQueueDuration",
	"__sessionManualDuration", "closeMotive",
}

// PluginColumns is the header of the sessions-with-plugins CSV export.
var PluginColumns = []string{"sessionID", "pluginConnectionLabel", "createdAt"}

// WriteCSVFixture writes a CSV file with the given header and rows.
func WriteCSVFixture(t *testing.T, path string, header []string, rows [][]string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("Failed to create fixture directory: %v", err)
	}

	file, err := os.Create(path)
	if err != nil {
		t.Fatalf("Failed to create fixture %s: %v", path, err)
	}
	defer func() { _ = file.Close() }()

	writer := csv.NewWriter(file)
	if err := writer.Write(header); err != nil {
		t.Fatalf("Failed to write fixture header: %v", err)
	}
	for _, row := range rows {
		if err := writer.Write(row); err != nil {
			t.Fatalf("Failed to write fixture row: %v", err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		t.Fatalf("Failed to flush fixture: %v", err)
	}
}

// WriteMessagesCSV writes a messages export fixture.
func WriteMessagesCSV(t *testing.T, path string, rows [][]string) {
	t.Helper()
	WriteCSVFixture(t, path, MessageColumns, rows)
}

// WriteSessionsCSV writes a sessions export fixture.
func WriteSessionsCSV(t *testing.T, path string, rows [][]string) {
	t.Helper()
	WriteCSVFixture(t, path, SessionColumns, rows)
}

// WritePluginsCSV writes a sessions-with-plugins export fixture.
func WritePluginsCSV(t *testing.T, path string, rows [][]string) {
	t.Helper()
	WriteCSVFixture(t, path, PluginColumns, rows)
}

// CreateSQLiteFixture creates a SQLite export fixture with the messages
// and sessions tables plus sample rows.
func CreateSQLiteFixture(t *testing.T, dbPath string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		t.Fatalf("Failed to create fixture directory: %v", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		t.Fatalf("Failed to open database: %v", err)
	}
	defer func() { _ = db.Close() }()

	schema := []string{
		`CREATE TABLE IF NOT EXISTS messages (
			messageID TEXT, sessionID TEXT, contactID TEXT,
			messageDirection TEXT, messageChannel TEXT, messageValue TEXT,
			messageKey TEXT, createdAt TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS sessions (
			sessionID TEXT, contactID TEXT, operatorFirstname TEXT,
			queuedAt TEXT, manualAt TEXT, closedAt TEXT, createdAt TEXT,
			updatedAt TEXT, sessionRatingStars TEXT,
			__sessionMessagesCount TEXT, __sessionDuration TEXT,
			__sessionQueueDuration TEXT, __sessionManualDuration TEXT,
			closeMotive TEXT
		)`,
	}
	for _, stmt := range schema {
		if _, err := db.Exec(stmt); err != nil {
			t.Fatalf("Failed to create table: %v", err)
		}
	}

	insertMessage := `INSERT INTO messages VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	if _, err := db.Exec(insertMessage,
		"m1", "s1", "c1", "inbound", "whatsapp", "obrigado pelo atendimento", "text",
		"2024-03-04T10:15:00Z"); err != nil {
		t.Fatalf("Failed to insert message: %v", err)
	}
	if _, err := db.Exec(insertMessage,
		"m2", "s1", "c1", "outbound", "whatsapp", "de nada!", "text",
		"2024-03-04T10:16:00Z"); err != nil {
		t.Fatalf("Failed to insert message: %v", err)
	}

	insertSession := `INSERT INTO sessions VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	if _, err := db.Exec(insertSession,
		"s1", "c1", "Ana", "2024-03-04T10:14:00Z", "2024-03-04T10:15:00Z",
		"2024-03-04T10:30:00Z", "2024-03-04T10:14:00Z", "2024-03-04T10:30:00Z",
		"5", "2", "900", "60", "840", "resolved"); err != nil {
		t.Fatalf("Failed to insert session: %v", err)
	}
}

// CreateTempDir creates a temporary directory for testing
func CreateTempDir(t *testing.T) string {
	t.Helper()
	dir, err := os.MkdirTemp("", "cx-insight-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	t.Cleanup(func() { _ = os.RemoveAll(dir) })
	return dir
}
