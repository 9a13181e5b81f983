package internal

import (
	"encoding/csv"
	"errors"
	"io"
	"os"
)

// CSV loading for the three export files. Column lookup is header-driven
// so exports survive column reordering; a missing optional column simply
// leaves the field empty and the dependent view degrades on its own.

// columnIndex maps header names to positions for one CSV file.
type columnIndex map[string]int

// get returns the value of a named column for a record, "" when the
// column is absent or the record is short.
func (ci columnIndex) get(record []string, name string) string {
	idx, ok := ci[name]
	if !ok || idx >= len(record) {
		return ""
	}
	return record[idx]
}

// readCSV opens a CSV file and returns its header index plus all data
// records. Only a missing/unreadable/empty file is an error.
func readCSV(path string) (columnIndex, [][]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, nil, &LoadError{Path: path, Op: "open", Err: err}
	}
	defer func() { _ = file.Close() }()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, nil, &LoadError{Path: path, Op: "header", Err: err}
	}

	index := make(columnIndex, len(header))
	for i, name := range header {
		index[name] = i
	}

	var records [][]string
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			// A single malformed line is a row-level problem, not a
			// load failure. Skip it; the normalizer counts drops from
			// missing identifiers, parse-level skips are logged.
			LogDebug("Skipping malformed CSV line in %s: %v", path, err)
			continue
		}
		records = append(records, record)
	}

	return index, records, nil
}

// LoadMessagesCSV loads and normalizes the messages export.
func LoadMessagesCSV(path string) (*MessageTable, error) {
	index, records, err := readCSV(path)
	if err != nil {
		return nil, err
	}

	rows := make([]RawMessageRow, 0, len(records))
	for _, record := range records {
		rows = append(rows, RawMessageRow{
			MessageID: index.get(record, "messageID"),
			SessionID: index.get(record, "sessionID"),
			ContactID: index.get(record, "contactID"),
			Direction: index.get(record, "messageDirection"),
			Channel:   index.get(record, "messageChannel"),
			Content:   index.get(record, "messageValue"),
			Kind:      index.get(record, "messageKey"),
			CreatedAt: index.get(record, "createdAt"),
		})
	}

	table := NewNormalizer().NormalizeMessages(rows)
	LogInfo("Loaded %d message(s) from %s (%d dropped)", len(table.Messages), path, table.Dropped)
	return table, nil
}

// LoadSessionsCSV loads and normalizes the sessions export.
func LoadSessionsCSV(path string) (*SessionTable, error) {
	index, records, err := readCSV(path)
	if err != nil {
		return nil, err
	}

	rows := make([]RawSessionRow, 0, len(records))
	for _, record := range records {
		rows = append(rows, RawSessionRow{
			SessionID:      index.get(record, "sessionID"),
			ContactID:      index.get(record, "contactID"),
			Operator:       index.get(record, "operatorFirstname"),
			QueuedAt:       index.get(record, "queuedAt"),
			ManualAt:       index.get(record, "manualAt"),
			ClosedAt:       index.get(record, "closedAt"),
			CreatedAt:      index.get(record, "createdAt"),
			UpdatedAt:      index.get(record, "updatedAt"),
			Rating:         index.get(record, "sessionRatingStars"),
			MessageCount:   index.get(record, "__sessionMessagesCount"),
			Duration:       index.get(record, "__sessionDuration"),
			QueueDuration:  index.get(record, "__sessionQueueDuration"),
			ManualDuration: index.get(record, "__sessionManualDuration"),
			CloseReason:    index.get(record, "closeMotive"),
		})
	}

	table := NewNormalizer().NormalizeSessions(rows)
	LogInfo("Loaded %d session(s) from %s (%d dropped)", len(table.Sessions), path, table.Dropped)
	return table, nil
}

// LoadPluginsCSV loads and normalizes the sessions-with-plugins export.
func LoadPluginsCSV(path string) (*PluginTable, error) {
	index, records, err := readCSV(path)
	if err != nil {
		return nil, err
	}

	rows := make([]RawPluginRow, 0, len(records))
	for _, record := range records {
		rows = append(rows, RawPluginRow{
			SessionID:   index.get(record, "sessionID"),
			PluginLabel: index.get(record, "pluginConnectionLabel"),
			CreatedAt:   index.get(record, "createdAt"),
		})
	}

	table := NewNormalizer().NormalizePlugins(rows)
	LogInfo("Loaded %d plugin session(s) from %s (%d dropped)", len(table.Sessions), path, table.Dropped)
	return table, nil
}
