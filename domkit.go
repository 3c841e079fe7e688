// Package domkit bundles the helper packages behind the shared library
// configuration: injectors, size mirrors, and viewport checks come out
// pre-tuned from domkit.toml / DOMKIT_* environment settings.
package domkit

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/bnema/domkit/internal/config"
	"github.com/bnema/domkit/internal/logging"
	"github.com/bnema/domkit/pkg/dom"
	"github.com/bnema/domkit/pkg/inject"
	"github.com/bnema/domkit/pkg/present"
	"github.com/bnema/domkit/pkg/webview"
)

// Toolkit constructs helpers from the loaded configuration.
type Toolkit struct {
	cfg *config.Manager
	log zerolog.Logger
}

// New loads the configuration (built-in defaults when no file exists) and
// builds a logger from its logging section.
func New(ctx context.Context) (*Toolkit, error) {
	cfg, err := config.NewManager()
	if err != nil {
		return nil, err
	}

	settings := cfg.Settings()
	logCfg := logging.DefaultConfig()
	switch settings.Logging.Level {
	case "trace":
		logCfg.Level = zerolog.TraceLevel
	case "debug":
		logCfg.Level = zerolog.DebugLevel
	case "warn":
		logCfg.Level = zerolog.WarnLevel
	case "error":
		logCfg.Level = zerolog.ErrorLevel
	}
	if settings.Logging.Format != "" {
		logCfg.Format = settings.Logging.Format
	}

	return &Toolkit{cfg: cfg, log: logging.New(logCfg)}, nil
}

// Logger returns the configured logger, for callers to thread through
// contexts via logging.WithContext.
func (t *Toolkit) Logger() zerolog.Logger { return t.log }

// Context returns ctx carrying the toolkit logger.
func (t *Toolkit) Context(ctx context.Context) context.Context {
	return logging.WithContext(ctx, t.log)
}

// WatchConfig starts reacting to configuration file changes.
func (t *Toolkit) WatchConfig() { t.cfg.Watch() }

// Injector builds a stylesheet injector for view using the configured
// manifest dataset key.
func (t *Toolkit) Injector(view webview.Webview) *inject.Injector {
	return inject.NewInjector(view,
		inject.WithDatasetKey(t.cfg.Settings().RegistryDatasetKey))
}

// SizeMirror builds a coalescing size mirror using the configured quiet
// period.
func (t *Toolkit) SizeMirror(source present.Resizable, target present.Measurable) *present.SizeMirror {
	return present.NewSizeMirror(source, target, t.cfg.Settings().DebounceInterval)
}

// InView runs a viewport-intersection check with the configured threshold.
func (t *Toolkit) InView(vp dom.Viewport, tops []float64, fixedCount int) (inView, ok bool) {
	return vp.InView(tops, t.cfg.Settings().ViewportThreshold, fixedCount)
}

// PlatformClasses returns the configured platform class override, or the
// detected platform classes when none is set.
func (t *Toolkit) PlatformClasses() []string {
	if classes := t.cfg.Settings().PlatformClasses; len(classes) > 0 {
		return classes
	}
	return dom.PlatformClasses()
}
