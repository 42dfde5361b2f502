package main

import (
	"context"
	"fmt"

	"github.com/tonylturner/catview/internal/catalogue"
	"github.com/tonylturner/catview/internal/config"
	apperrors "github.com/tonylturner/catview/internal/errors"
	"github.com/tonylturner/catview/internal/logging"
	"github.com/tonylturner/catview/internal/progress"
	"github.com/tonylturner/catview/internal/source"
)

// session bundles what every catalogue command needs: config, logger and
// the sheet source.
type session struct {
	cfg    *config.Config
	logger *logging.Logger
	src    source.Source
	quiet  bool
}

func (g *globalFlags) level(cfg *config.Config) (logging.LogLevel, error) {
	switch {
	case g.debug:
		return logging.LogLevelDebug, nil
	case g.verbose:
		return logging.LogLevelVerbose, nil
	}
	level, err := logging.ParseLevel(cfg.Logging.Level)
	if err != nil {
		return logging.LogLevelInfo, apperrors.WrapConfigError(fmt.Errorf("logging.level: %w", err), g.configPath)
	}
	return level, nil
}

func (g *globalFlags) logPath(cfg *config.Config) string {
	if g.logFile != "" {
		return g.logFile
	}
	return cfg.Logging.File
}

// openSession loads config and builds the source. fileOnly selects a logger
// that never writes to the terminal.
func openSession(ctx context.Context, g *globalFlags, command string, fileOnly bool) (*session, error) {
	cfg, err := config.LoadConfig(g.configPath, true)
	if err != nil {
		return nil, err
	}

	level, err := g.level(cfg)
	if err != nil {
		return nil, err
	}

	var logger *logging.Logger
	if fileOnly {
		logger, err = logging.NewFileLogger(level, g.logPath(cfg))
	} else {
		logger, err = logging.NewLogger(level, g.logPath(cfg))
	}
	if err != nil {
		return nil, fmt.Errorf("create logger: %w", err)
	}

	src, err := source.NewFromConfig(ctx, cfg.Source, logger)
	if err != nil {
		logger.Close()
		return nil, apperrors.WrapConfigError(err, g.configPath)
	}

	logger.LogStartup(command, src.Describe(), g.configPath)
	return &session{cfg: cfg, logger: logger, src: src, quiet: g.quiet}, nil
}

func (s *session) Close() {
	_ = s.logger.Close()
}

func (s *session) chat() catalogue.ChatLinker {
	return catalogue.ChatLinker{
		BaseURL:  s.cfg.Chat.BaseURL,
		Phone:    s.cfg.Chat.Phone,
		Greeting: s.cfg.Chat.Greeting,
	}
}

func (s *session) loader() *catalogue.Loader {
	return &catalogue.Loader{
		Source: s.src,
		Sheets: catalogue.Sheets{
			Items:      s.cfg.Sheets.Items,
			Images:     s.cfg.Sheets.Images,
			Categories: s.cfg.Sheets.Categories,
		},
		Placeholders: catalogue.Placeholders{
			Item:     s.cfg.Placeholders.Item,
			Category: s.cfg.Placeholders.Category,
		},
		Logger: s.logger,
	}
}

// load fetches the catalogue, showing a progress line on stderr.
func (s *session) load(ctx context.Context) (*catalogue.Index, error) {
	l := s.loader()

	bar := progress.NewProgressBar(3, "Loading catalogue")
	if s.quiet {
		bar.Disable()
	}
	l.OnSheet = bar.Step

	x, err := l.Load(ctx)
	bar.Finish()
	if err != nil {
		return nil, apperrors.WrapLoadError(err, s.src.Describe())
	}
	return x, nil
}
