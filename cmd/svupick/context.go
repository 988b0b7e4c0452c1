package main

import (
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/spf13/cobra"

	"svupick/internal/catalog"
	"svupick/internal/config"
	"svupick/internal/enrich"
	"svupick/internal/logging"
	"svupick/internal/ratingcache"
	"svupick/internal/services/omdb"
)

type commandContext struct {
	configFlag *string

	configOnce sync.Once
	config     *config.Config
	configErr  error

	loggerOnce sync.Once
	logger     *slog.Logger

	loader *catalog.Loader
}

func newCommandContext(configFlag *string) *commandContext {
	return &commandContext{
		configFlag: configFlag,
		loader:     catalog.NewLoader(),
	}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		if err := cfg.EnsureDirectories(); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

func (c *commandContext) ensureLogger() *slog.Logger {
	c.loggerOnce.Do(func() {
		cfg, err := c.ensureConfig()
		if err != nil {
			c.logger = logging.NewNop()
			return
		}
		logger, err := logging.NewFromConfig(cfg)
		if err != nil {
			c.logger = logging.NewNop()
			return
		}
		c.logger = logger
	})
	return c.logger
}

// loadEpisodes resolves the catalog path, loads it, and runs the enrichment
// step when OMDb credentials are configured. The --data flag overrides any
// configured catalog path; an empty path yields the built-in sample set.
func (c *commandContext) loadEpisodes(cmd *cobra.Command, dataFlag string) ([]catalog.Episode, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}

	path := strings.TrimSpace(dataFlag)
	if path == "" {
		path = cfg.Catalog.Path
	} else if path, err = config.ExpandPath(path); err != nil {
		return nil, err
	}

	episodes, err := c.loader.Load(path)
	if err != nil {
		return nil, err
	}

	logger := logging.WithContext(cmd.Context(), c.ensureLogger())
	if cfg.EnrichmentEnabled() {
		enricher, cache := c.buildEnricher(cfg, logger)
		enricher.Apply(cmd.Context(), episodes)
		if cache != nil {
			defer cache.Close()
		}
	}
	logger.Debug("catalog loaded",
		logging.String("path", path),
		logging.Int("episodes", len(episodes)),
		logging.Bool("enrichment", cfg.EnrichmentEnabled()))
	return episodes, nil
}

func (c *commandContext) buildEnricher(cfg *config.Config, logger *slog.Logger) (*enrich.Enricher, *ratingcache.Store) {
	client, err := omdb.New(cfg.OMDb.APIKey, cfg.OMDb.BaseURL,
		omdb.WithTimeout(time.Duration(cfg.OMDb.TimeoutSeconds)*time.Second))
	if err != nil {
		logger.Warn("rating client unavailable", logging.Error(err))
		return enrich.New(nil, nil, logger), nil
	}

	var cache *ratingcache.Store
	if cfg.RatingCache.Enabled {
		cache, err = ratingcache.Open(cfg.RatingCache.Path)
		if err != nil {
			logger.Warn("rating cache unavailable", logging.Error(err))
			cache = nil
		}
	}
	return enrich.New(client, cache, logger), cache
}

func yesNo(value bool) string {
	if value {
		return "yes"
	}
	return "no"
}
