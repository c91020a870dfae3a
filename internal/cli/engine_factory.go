package cli

import (
	"fmt"
	"log/slog"

	"github.com/aretw0/bemjson"
	"github.com/aretw0/bemjson/pkg/identity"
	"github.com/aretw0/bemjson/pkg/observability"
	"github.com/prometheus/client_golang/prometheus"
)

// createEngine initializes an engine with standard CLI conventions.
// reg may be nil when metrics are not exposed.
func createEngine(opts Options, logger *slog.Logger, reg prometheus.Registerer) (*bemjson.Engine, error) {
	ids, err := identity.FromStrategy(opts.IDStrategy, opts.IDPrefix)
	if err != nil {
		return nil, err
	}

	engineOpts := []bemjson.Option{
		bemjson.WithLogger(logger),
		bemjson.WithIdentifier(ids),
	}
	if opts.Debug {
		engineOpts = append(engineOpts, bemjson.WithLifecycleHooks(observability.LogHooks(logger)))
	}
	if reg != nil {
		engineOpts = append(engineOpts, bemjson.WithMetrics(reg))
	}

	engine := bemjson.New(engineOpts...)
	if opts.RulesPath != "" {
		if err := engine.LoadRules(opts.RulesPath); err != nil {
			return nil, fmt.Errorf("error loading rules: %w", err)
		}
	}
	return engine, nil
}
