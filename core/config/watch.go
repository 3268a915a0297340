// File: watch.go
// Title: Configuration File Watching
// Description: Reloads a configuration file when it changes on disk and
//              hands the new configuration to a callback. Events are
//              debounced so that editors writing in several steps trigger
//              a single reload.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-16
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation of file watching
// - 2026-10-16 v0.2.0: fsnotify based watcher with trailing debounce

package config

import (
	"context"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	txerror "github.com/msto63/textx/core/error"
	"github.com/msto63/textx/core/log"
)

// DefaultDebounce is the quiet period after the last event before reloading
const DefaultDebounce = 200 * time.Millisecond

// Watcher reloads a configuration file on change
type Watcher struct {
	path     string
	watcher  *fsnotify.Watcher
	logger   *log.Logger
	onChange func(*Config)
	debounce time.Duration
	done     chan struct{}
}

// Watch starts watching path and calls onChange with every successfully
// reloaded configuration. Files that fail to load are logged and skipped;
// the previous configuration stays in effect. Watching stops when ctx is
// cancelled or Close is called.
func Watch(ctx context.Context, path string, logger *log.Logger, onChange func(*Config)) (*Watcher, error) {
	if path == "" {
		return nil, txerror.New("file path required for watching").
			WithCode(txerror.CodeValidationFailed).
			WithOperation("config.watch")
	}
	if logger == nil {
		logger = log.Discard()
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, txerror.Wrap(err, "failed to resolve config path").
			WithCode(txerror.CodeConfigError).
			WithOperation("config.watch").
			WithDetail("path", path)
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, txerror.Wrap(err, "failed to create watcher").
			WithCode(txerror.CodeInternal).
			WithOperation("config.watch")
	}

	// watch the directory, editors often replace the file instead of writing it
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		fw.Close()
		return nil, txerror.Wrap(err, "failed to watch directory").
			WithCode(txerror.CodeConfigError).
			WithOperation("config.watch").
			WithDetail("path", abs)
	}

	w := &Watcher{
		path:     abs,
		watcher:  fw,
		logger:   logger.WithField("config", abs),
		onChange: onChange,
		debounce: DefaultDebounce,
		done:     make(chan struct{}),
	}
	w.logger.Debug("watching configuration")

	go w.loop(ctx)
	return w, nil
}

// Close stops watching and waits for the watch loop to exit
func (w *Watcher) Close() error {
	err := w.watcher.Close()
	<-w.done
	return err
}

func (w *Watcher) loop(ctx context.Context) {
	defer close(w.done)

	var pending <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			w.watcher.Close()
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			pending = time.After(w.debounce)

		case <-pending:
			pending = nil
			w.reload()

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.ErrorWithErr("watcher error", err)
		}
	}
}

func (w *Watcher) reload() {
	cfg, err := Load(w.path)
	if err != nil {
		w.logger.LogError(err)
		return
	}
	w.logger.Info("configuration reloaded", log.Field("comparison", cfg.Text.Comparison.String()))
	if w.onChange != nil {
		w.onChange(cfg)
	}
}
