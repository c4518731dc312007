package commands

import (
	"log/slog"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"

	"git.home.luguber.info/inful/doccatalog/internal/catalog"
	"git.home.luguber.info/inful/doccatalog/internal/config"
	"git.home.luguber.info/inful/doccatalog/internal/docs"
	"git.home.luguber.info/inful/doccatalog/internal/markdown"
	"git.home.luguber.info/inful/doccatalog/internal/metrics"
	"git.home.luguber.info/inful/doccatalog/internal/navigation"
)

// Site is a classified catalog together with its navigation.
type Site struct {
	Config     *config.Config
	Catalog    *catalog.Catalog
	Navigation *navigation.Catalog
	Registry   *prom.Registry
	Recorder   *metrics.PrometheusRecorder
}

// LoadSite discovers the configured sources, classifies them, and builds the navigation.
func LoadSite(cfg *config.Config) (*Site, error) {
	logger := slog.Default()
	reg := prom.NewRegistry()
	site := &Site{
		Config:   cfg,
		Registry: reg,
		Recorder: metrics.NewPrometheusRecorder(reg),
	}
	site.Catalog = catalog.New(cfg.URLs.HTMLExtensionStyle,
		catalog.WithLogger(logger),
		catalog.WithRecorder(site.Recorder))

	var bundles []catalog.Bundle
	err := site.stage("discover", func() (err error) {
		bundles, err = docs.NewDiscovery(cfg.Content.Sources, logger).DiscoverBundles()
		return err
	})
	if err != nil {
		return nil, err
	}
	if err := site.stage("classify", func() error {
		return site.Catalog.Classify(bundles, cfg.Site.StartPage)
	}); err != nil {
		return nil, err
	}
	if err := site.stage("navigation", func() (err error) {
		site.Navigation, err = navigation.Build(site.Catalog, markdown.NewNavLoader(logger), navigation.WithLogger(logger))
		return err
	}); err != nil {
		return nil, err
	}
	return site, nil
}

func (s *Site) stage(name string, fn func() error) error {
	start := time.Now()
	err := fn()
	s.Recorder.ObserveStageDuration(name, time.Since(start))
	return err
}
