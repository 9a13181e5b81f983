package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/talqui/cx-insight/internal"
)

// dataset bundles the three normalized tables every command works from.
type dataset struct {
	Messages *internal.MessageTable
	Sessions *internal.SessionTable
	Plugins  *internal.PluginTable
}

// resolveCacheDir returns the configured cache directory, defaulting to
// ~/.cx-insight-cache.
func resolveCacheDir() string {
	if cacheDir != "" {
		return cacheDir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".cx-insight-cache"
	}
	return filepath.Join(home, ".cx-insight-cache")
}

// loadDataset resolves inputs from the global flags, serves from cache
// when the snapshot is still valid and loads + caches otherwise.
func loadDataset(ctx context.Context) (*dataset, error) {
	cm := internal.NewCacheManager(resolveCacheDir())

	if clearCache {
		if err := cm.ClearCache(); err != nil {
			return nil, fmt.Errorf("failed to clear cache: %w", err)
		}
		internal.LogInfo("Cache cleared")
	}

	if sqlitePath != "" {
		return loadFromSQLite(ctx, cm)
	}
	return loadFromCSV(ctx, cm)
}

func loadFromSQLite(ctx context.Context, cm *internal.CacheManager) (*dataset, error) {
	sources, err := internal.StampSources(sqlitePath)
	if err != nil {
		return nil, err
	}

	if ds, ok := tryCache(cm, sources); ok {
		return ds, nil
	}

	var ds dataset
	err = internal.ShowProgress(ctx, fmt.Sprintf("Loading %s", sqlitePath), func() error {
		db, err := internal.OpenDatabase(sqlitePath)
		if err != nil {
			return err
		}
		defer func() { _ = db.Close() }()

		if ds.Messages, err = internal.LoadMessagesDB(db); err != nil {
			return err
		}
		if ds.Sessions, err = internal.LoadSessionsDB(db); err != nil {
			return err
		}
		ds.Plugins, err = internal.LoadPluginsDB(db)
		return err
	})
	if err != nil {
		return nil, err
	}

	saveCache(cm, &ds, sources)
	return &ds, nil
}

func loadFromCSV(ctx context.Context, cm *internal.CacheManager) (*dataset, error) {
	paths, err := resolveDataPaths()
	if err != nil {
		return nil, err
	}

	sources, err := internal.StampSources(paths.Messages, paths.Sessions, paths.Plugins)
	if err != nil {
		return nil, err
	}

	if ds, ok := tryCache(cm, sources); ok {
		return ds, nil
	}

	var ds dataset
	var steps []internal.ProgressStep
	if paths.Messages != "" {
		p := paths.Messages
		steps = append(steps, internal.ProgressStep{Message: fmt.Sprintf("Loading %s", p), Fn: func() error {
			var err error
			ds.Messages, err = internal.LoadMessagesCSV(p)
			return err
		}})
	}
	if paths.Sessions != "" {
		p := paths.Sessions
		steps = append(steps, internal.ProgressStep{Message: fmt.Sprintf("Loading %s", p), Fn: func() error {
			var err error
			ds.Sessions, err = internal.LoadSessionsCSV(p)
			return err
		}})
	}
	if paths.Plugins != "" {
		p := paths.Plugins
		steps = append(steps, internal.ProgressStep{Message: fmt.Sprintf("Loading %s", p), Fn: func() error {
			var err error
			ds.Plugins, err = internal.LoadPluginsCSV(p)
			return err
		}})
	}

	if err := internal.ShowProgressWithSteps(ctx, steps); err != nil {
		return nil, err
	}

	saveCache(cm, &ds, sources)
	return &ds, nil
}

// resolveDataPaths honors explicit per-file flags; anything not given
// explicitly is filled by scanning the data directory. Explicit flags
// alone skip the scan entirely.
func resolveDataPaths() (internal.DataPaths, error) {
	paths := internal.DataPaths{
		Messages: messagesPath,
		Sessions: sessionsPath,
		Plugins:  pluginsPath,
	}
	if paths.Messages != "" || paths.Sessions != "" || paths.Plugins != "" {
		return paths, nil
	}

	detected, err := internal.DetectDataFiles(dataDir)
	if err != nil {
		return internal.DataPaths{}, err
	}
	internal.LogDebug("Detected exports: messages=%s sessions=%s plugins=%s",
		detected.Messages, detected.Sessions, detected.Plugins)
	return detected, nil
}

func tryCache(cm *internal.CacheManager, sources []internal.SourceStamp) (*dataset, bool) {
	if noCache {
		return nil, false
	}

	valid, err := cm.IsCacheValid(sources)
	if err != nil || !valid {
		return nil, false
	}

	messages, sessions, plugins, err := cm.LoadTables()
	if err != nil {
		internal.LogWarn("Cache load failed, re-reading sources: %v", err)
		return nil, false
	}

	internal.LogInfo("Using cached tables from %s", resolveCacheDir())
	return &dataset{Messages: messages, Sessions: sessions, Plugins: plugins}, true
}

func saveCache(cm *internal.CacheManager, ds *dataset, sources []internal.SourceStamp) {
	if noCache {
		return
	}
	if err := cm.SaveTables(ds.Messages, ds.Sessions, ds.Plugins, sources); err != nil {
		internal.LogWarn("Failed to save cache: %v", err)
	}
}
