package internal

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// SQLite input backend: some deployments hand over a .db export instead
// of loose CSVs. Tables mirror the CSV column names, so the raw rows
// feed the same Normalizer.

// OpenDatabase opens a SQLite export in read-only mode
func OpenDatabase(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path+"?mode=ro")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("database ping failed: %w", err)
	}

	return db, nil
}

// nullable turns a scanned NULL into an empty raw field.
func nullable(v sql.NullString) string {
	if v.Valid {
		return v.String
	}
	return ""
}

// LoadMessagesDB loads and normalizes the messages table from a SQLite
// export.
func LoadMessagesDB(db *sql.DB) (*MessageTable, error) {
	query := `SELECT messageID, sessionID, contactID, messageDirection,
		messageChannel, messageValue, messageKey, createdAt FROM messages`
	rows, err := db.Query(query)
	if err != nil {
		return nil, &LoadError{Path: "messages", Op: "read", Err: err}
	}
	defer func() { _ = rows.Close() }()

	var raw []RawMessageRow
	for rows.Next() {
		var id, session, contact, direction, channel, content, kind, created sql.NullString
		if err := rows.Scan(&id, &session, &contact, &direction, &channel, &content, &kind, &created); err != nil {
			return nil, fmt.Errorf("scan failed: %w", err)
		}
		raw = append(raw, RawMessageRow{
			MessageID: nullable(id),
			SessionID: nullable(session),
			ContactID: nullable(contact),
			Direction: nullable(direction),
			Channel:   nullable(channel),
			Content:   nullable(content),
			Kind:      nullable(kind),
			CreatedAt: nullable(created),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return NewNormalizer().NormalizeMessages(raw), nil
}

// LoadSessionsDB loads and normalizes the sessions table from a SQLite
// export.
func LoadSessionsDB(db *sql.DB) (*SessionTable, error) {
	query := `SELECT sessionID, contactID, operatorFirstname, queuedAt,
		manualAt, closedAt, createdAt, updatedAt, sessionRatingStars,
		__sessionMessagesCount, __sessionDuration, __sessionQueueDuration,
		__sessionManualDuration, closeMotive FROM sessions`
	rows, err := db.Query(query)
	if err != nil {
		return nil, &LoadError{Path: "sessions", Op: "read", Err: err}
	}
	defer func() { _ = rows.Close() }()

	var raw []RawSessionRow
	for rows.Next() {
		var fields [14]sql.NullString
		dests := make([]interface{}, len(fields))
		for i := range fields {
			dests[i] = &fields[i]
		}
		if err := rows.Scan(dests...); err != nil {
			return nil, fmt.Errorf("scan failed: %w", err)
		}
		raw = append(raw, RawSessionRow{
			SessionID:      nullable(fields[0]),
			ContactID:      nullable(fields[1]),
			Operator:       nullable(fields[2]),
			QueuedAt:       nullable(fields[3]),
			ManualAt:       nullable(fields[4]),
			ClosedAt:       nullable(fields[5]),
			CreatedAt:      nullable(fields[6]),
			UpdatedAt:      nullable(fields[7]),
			Rating:         nullable(fields[8]),
			MessageCount:   nullable(fields[9]),
			Duration:       nullable(fields[10]),
			QueueDuration:  nullable(fields[11]),
			ManualDuration: nullable(fields[12]),
			CloseReason:    nullable(fields[13]),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return NewNormalizer().NormalizeSessions(raw), nil
}

// LoadPluginsDB loads the optional sessions-with-plugins table. A
// missing table is not an error; the plugin breakdown is simply absent.
func LoadPluginsDB(db *sql.DB) (*PluginTable, error) {
	query := `SELECT sessionID, pluginConnectionLabel, createdAt FROM sessions_plugins`
	rows, err := db.Query(query)
	if err != nil {
		LogDebug("No sessions_plugins table: %v", err)
		return nil, nil
	}
	defer func() { _ = rows.Close() }()

	var raw []RawPluginRow
	for rows.Next() {
		var id, label, created sql.NullString
		if err := rows.Scan(&id, &label, &created); err != nil {
			return nil, fmt.Errorf("scan failed: %w", err)
		}
		raw = append(raw, RawPluginRow{
			SessionID:   nullable(id),
			PluginLabel: nullable(label),
			CreatedAt:   nullable(created),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return NewNormalizer().NormalizePlugins(raw), nil
}
