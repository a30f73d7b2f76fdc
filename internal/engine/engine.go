// Package engine generates the finalized parameter table for one test
// function: resolve its spec, expand the combinations, subtract exclusions
// and emit the result for the external test-execution framework.
package engine

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"tdp/internal/domain"
	"tdp/internal/expand"
	"tdp/internal/store"
)

// Engine turns resolved specs into parameter tables. It is stateless across
// calls: each Generate performs its own independent resolution, so one
// engine can serve any number of workers without coordination.
type Engine struct {
	store  store.Store
	logger *log.Logger
}

// New creates an Engine. A nil logger discards all output, which is what
// tests want.
func New(st store.Store, logger *log.Logger) *Engine {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Engine{store: st, logger: logger}
}

// Generate produces the parametrization for one test function. It never
// returns an error: missing or unreadable data becomes a skip request, a
// missing entry for the location means the function runs unparametrized.
// A failure for one function can therefore never abort collection of others.
func (e *Engine) Generate(loc domain.Location) domain.Result {
	spec, err := e.store.Resolve(loc)
	switch {
	case errors.Is(err, store.ErrSpecMismatch):
		e.logger.Debug("no parametrization entry", "location", loc.String())
		return domain.NoResult()
	case errors.Is(err, store.ErrDataNotFound):
		e.logger.Warn("no test data found", "location", loc.String())
		return domain.SkipResult(domain.SkipDataNotFound,
			fmt.Sprintf("no test data found for %s", loc))
	case errors.Is(err, store.ErrDataUnreadable):
		e.logger.Error("unreadable test data", "location", loc.String(), "error", err)
		return domain.SkipResult(domain.SkipDataUnreadable, err.Error())
	case err != nil:
		// Unexpected resolution failures follow the unreadable-data policy.
		e.logger.Error("resolution failed", "location", loc.String(), "error", err)
		return domain.SkipResult(domain.SkipDataUnreadable, err.Error())
	}

	if !spec.StrategyKnown {
		e.logger.Warn("unrecognized strategy, falling back to zip", "location", loc.String())
	}

	rows := expand.Expand(spec.Arguments, spec.Strategy)

	if spec.Exclude != nil {
		if !spec.Exclude.StrategyKnown || spec.Exclude.Strategy == domain.Zip {
			e.logger.Debug("exclusion expands with the product rule", "location", loc.String())
		}
		rows = expand.Filter(rows, expand.ExpandExclude(spec.Exclude))
	}

	e.logger.Debug("parametrized",
		"location", loc.String(),
		"strategy", spec.Strategy.String(),
		"rows", len(rows))

	// IDs stay nil: default display identifiers are the framework's job.
	return domain.ParametrizedResult(&domain.Table{
		Names: spec.Arguments.Names(),
		Rows:  rows,
		Label: spec.Name,
	})
}
