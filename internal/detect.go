package internal

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// DataPaths holds the detected export files inside a data directory.
// A path is empty when no matching export was found; only the messages
// export is required for anything to run.
type DataPaths struct {
	Messages string
	Sessions string
	Plugins  string
}

// DetectDataFiles scans dir for CSV exports and classifies each by its
// header columns. When several files match the same kind the most
// recently modified one wins.
func DetectDataFiles(dir string) (DataPaths, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return DataPaths{}, fmt.Errorf("failed to read data directory: %w", err)
	}

	var paths DataPaths
	var messagesMod, sessionsMod, pluginsMod time.Time

	for _, entry := range entries {
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), ".csv") {
			continue
		}

		path := filepath.Join(dir, entry.Name())
		header, err := readCSVHeader(path)
		if err != nil {
			LogDebug("Skipping %s: %v", path, err)
			continue
		}

		info, err := entry.Info()
		if err != nil {
			continue
		}
		mod := info.ModTime()

		switch classifyHeader(header) {
		case "messages":
			if paths.Messages == "" || mod.After(messagesMod) {
				paths.Messages = path
				messagesMod = mod
			}
		case "plugins":
			if paths.Plugins == "" || mod.After(pluginsMod) {
				paths.Plugins = path
				pluginsMod = mod
			}
		case "sessions":
			if paths.Sessions == "" || mod.After(sessionsMod) {
				paths.Sessions = path
				sessionsMod = mod
			}
		}
	}

	if paths.Messages == "" && paths.Sessions == "" && paths.Plugins == "" {
		return DataPaths{}, fmt.Errorf("no recognizable CSV exports in %s", dir)
	}

	return paths, nil
}

// readCSVHeader reads just the header line of a CSV file.
func readCSVHeader(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = file.Close() }()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	return reader.Read()
}

// classifyHeader decides which export a header belongs to. The plugin
// check runs before the generic session check because the plugins export
// also carries a sessionID column.
func classifyHeader(header []string) string {
	cols := make(map[string]bool, len(header))
	for _, name := range header {
		cols[name] = true
	}

	switch {
	case cols["messageID"] || cols["messageDirection"]:
		return "messages"
	case cols["pluginConnectionLabel"]:
		return "plugins"
	case cols["sessionID"]:
		return "sessions"
	default:
		return ""
	}
}
