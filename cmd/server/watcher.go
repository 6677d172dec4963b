package main

import (
	"context"
	"fmt"
	"log"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// watchConfig reloads the config file whenever it is written and hands the
// new config to apply. Files that fail to load are logged and skipped.
func watchConfig(ctx context.Context, filename string, apply func(Config)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("fsnotify.NewWatcher: %w", err)
	}
	defer watcher.Close()

	// editors replace files on save, so watch the directory
	if err := watcher.Add(filepath.Dir(filename)); err != nil {
		return fmt.Errorf("watch %q: %w", filename, err)
	}
	target := filepath.Clean(filename)

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target || event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			log.Println("Config file changed. Reloading...")
			cfg, err := LoadConfig(filename)
			if err != nil {
				log.Printf("Failed to reload config: %v", err)
				continue
			}
			apply(cfg)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Printf("Config watcher error: %v", err)
		case <-ctx.Done():
			return nil
		}
	}
}
