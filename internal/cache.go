package internal

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// CacheManager persists normalized tables between runs so repeated
// commands skip the CSV parse. Validity is keyed explicitly on source
// file identity and modification time; any change invalidates the whole
// snapshot.
type CacheManager struct {
	cacheDir string
}

// SourceStamp records one input file's identity at cache time.
type SourceStamp struct {
	Path    string    `json:"path" yaml:"path"`
	ModTime time.Time `json:"mod_time" yaml:"mod_time"`
}

// CacheMetadata stores metadata about the cache
type CacheMetadata struct {
	Sources      []SourceStamp `json:"sources" yaml:"sources"`
	CacheVersion string        `json:"cache_version" yaml:"cache_version"`
	CreatedAt    time.Time     `json:"created_at" yaml:"created_at"`
}

// CacheIndex is the YAML index describing the cached snapshot.
type CacheIndex struct {
	Metadata        CacheMetadata `yaml:"metadata"`
	MessageCount    int           `yaml:"message_count"`
	SessionCount    int           `yaml:"session_count"`
	PluginCount     int           `yaml:"plugin_count"`
	DroppedMessages int           `yaml:"dropped_messages"`
	DroppedSessions int           `yaml:"dropped_sessions"`
}

const cacheVersion = "1.0"

// NewCacheManager creates a new cache manager
func NewCacheManager(cacheDir string) *CacheManager {
	return &CacheManager{cacheDir: cacheDir}
}

// EnsureCacheDir ensures the cache directory exists
func (cm *CacheManager) EnsureCacheDir() error {
	return os.MkdirAll(cm.cacheDir, 0755)
}

// GetIndexPath returns the path to the cache index YAML file
func (cm *CacheManager) GetIndexPath() string {
	return filepath.Join(cm.cacheDir, "index.yaml")
}

func (cm *CacheManager) tablePath(name string) string {
	return filepath.Join(cm.cacheDir, name+".json")
}

// StampSources stats the given input files. Empty paths are skipped;
// a stat failure is an error because a cache keyed on an unreadable
// source could never be validated.
func StampSources(paths ...string) ([]SourceStamp, error) {
	var stamps []SourceStamp
	for _, path := range paths {
		if path == "" {
			continue
		}
		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("failed to stat source %s: %w", path, err)
		}
		stamps = append(stamps, SourceStamp{Path: path, ModTime: info.ModTime()})
	}
	return stamps, nil
}

// IsCacheValid checks whether the cached snapshot matches the given
// source stamps exactly: same version, same files, same mtimes.
func (cm *CacheManager) IsCacheValid(sources []SourceStamp) (bool, error) {
	index, err := cm.LoadIndex()
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, nil
	}

	if index.Metadata.CacheVersion != cacheVersion {
		return false, nil
	}
	if len(index.Metadata.Sources) != len(sources) {
		return false, nil
	}

	cached := make(map[string]time.Time, len(index.Metadata.Sources))
	for _, s := range index.Metadata.Sources {
		cached[s.Path] = s.ModTime
	}
	for _, s := range sources {
		mod, ok := cached[s.Path]
		if !ok || !mod.Equal(s.ModTime) {
			return false, nil
		}
	}

	return true, nil
}

// LoadIndex loads the cache index
func (cm *CacheManager) LoadIndex() (*CacheIndex, error) {
	data, err := os.ReadFile(cm.GetIndexPath())
	if err != nil {
		return nil, err
	}

	var index CacheIndex
	if err := yaml.Unmarshal(data, &index); err != nil {
		return nil, &ParseError{Source: "cache", Key: cm.GetIndexPath(), Err: err}
	}

	return &index, nil
}

// SaveTables writes the normalized tables and the index describing them.
func (cm *CacheManager) SaveTables(messages *MessageTable, sessions *SessionTable, plugins *PluginTable, sources []SourceStamp) error {
	if err := cm.EnsureCacheDir(); err != nil {
		return err
	}

	index := CacheIndex{
		Metadata: CacheMetadata{
			Sources:      sources,
			CacheVersion: cacheVersion,
			CreatedAt:    time.Now(),
		},
	}

	if messages != nil {
		if err := cm.saveTable("messages", messages); err != nil {
			return err
		}
		index.MessageCount = len(messages.Messages)
		index.DroppedMessages = messages.Dropped
	}
	if sessions != nil {
		if err := cm.saveTable("sessions", sessions); err != nil {
			return err
		}
		index.SessionCount = len(sessions.Sessions)
		index.DroppedSessions = sessions.Dropped
	}
	if plugins != nil {
		if err := cm.saveTable("plugins", plugins); err != nil {
			return err
		}
		index.PluginCount = len(plugins.Sessions)
	}

	data, err := yaml.Marshal(&index)
	if err != nil {
		return fmt.Errorf("failed to marshal index: %w", err)
	}
	return os.WriteFile(cm.GetIndexPath(), data, 0644)
}

func (cm *CacheManager) saveTable(name string, table interface{}) error {
	data, err := json.Marshal(table)
	if err != nil {
		return fmt.Errorf("failed to marshal %s table: %w", name, err)
	}
	return os.WriteFile(cm.tablePath(name), data, 0644)
}

// LoadTables loads the cached snapshot. Absent table files come back as
// nil tables, matching how they were saved.
func (cm *CacheManager) LoadTables() (*MessageTable, *SessionTable, *PluginTable, error) {
	var messages MessageTable
	var sessions SessionTable
	var plugins PluginTable

	haveMessages, err := cm.loadTable("messages", &messages)
	if err != nil {
		return nil, nil, nil, err
	}
	haveSessions, err := cm.loadTable("sessions", &sessions)
	if err != nil {
		return nil, nil, nil, err
	}
	havePlugins, err := cm.loadTable("plugins", &plugins)
	if err != nil {
		return nil, nil, nil, err
	}

	var mt *MessageTable
	var st *SessionTable
	var pt *PluginTable
	if haveMessages {
		mt = &messages
	}
	if haveSessions {
		st = &sessions
	}
	if havePlugins {
		pt = &plugins
	}
	return mt, st, pt, nil
}

func (cm *CacheManager) loadTable(name string, out interface{}) (bool, error) {
	data, err := os.ReadFile(cm.tablePath(name))
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	if err := json.Unmarshal(data, out); err != nil {
		return false, &ParseError{Source: "cache", Key: cm.tablePath(name), Err: err}
	}
	return true, nil
}

// ClearCache removes the cached snapshot and index.
func (cm *CacheManager) ClearCache() error {
	for _, name := range []string{"messages", "sessions", "plugins"} {
		_ = os.Remove(cm.tablePath(name))
	}
	if err := os.Remove(cm.GetIndexPath()); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
