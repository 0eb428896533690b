package main

import (
	"errors"
	"log/slog"

	"github.com/philipparndt/gosketch/internal/bootstrap"
	"github.com/philipparndt/gosketch/internal/config"
	"github.com/philipparndt/gosketch/internal/editor"
	"github.com/philipparndt/gosketch/internal/script"
	"github.com/philipparndt/gosketch/pkg/sketch"
)

// loadConfig merges the config file, environment and command line flags
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return cfg, err
	}
	if keymapPath != "" {
		cfg.Keymap = keymapPath
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}
	return cfg, nil
}

// newSession builds an editor session from the config
func newSession(cfg config.Config) (*editor.Session, *slog.Logger, error) {
	env, err := bootstrap.New(cfg, false)
	if err != nil {
		return nil, nil, err
	}
	return env.Session, env.Logger, nil
}

// replay loads a script and feeds it to a fresh session. Rejected events
// are collected and the replay continues.
func replay(path string) (*editor.Session, script.Result, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, script.Result{}, err
	}
	s, logger, err := newSession(cfg)
	if err != nil {
		return nil, script.Result{}, err
	}

	sc, err := script.Load(path)
	if err != nil {
		return nil, script.Result{}, err
	}
	res, err := sc.Run(s)
	if err != nil {
		return nil, res, err
	}
	logger.Debug("replay finished", "script", path, "events", res.Events, "errors", len(res.Errors))
	return s, res, nil
}

// targetSketch returns the sketch being edited, else the first one
func targetSketch(s *editor.Session) (*sketch.Sketch, error) {
	doc := s.Document()
	if id := s.Active(); id != 0 {
		return doc.Sketch(id)
	}
	all := doc.Sketches()
	if len(all) == 0 {
		return nil, errors.New("the script did not create a sketch")
	}
	return all[0], nil
}
