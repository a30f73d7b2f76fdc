// Package tdp is a data-driven test-parametrization engine. Given a
// declarative JSON description of input values and a combination strategy,
// it produces the concrete set of argument tuples to run a test function
// under, for an external test-execution framework to schedule.
//
// The test data lives in JSON files keyed by module, optional class and
// function name:
//
//	{
//	    "test_mathematics": {
//	        "TestMathematics": {
//	            "test_add": {
//	                "strategy": "product",
//	                "arguments": {
//	                    "first_number": [1, 2],
//	                    "second_number": [10, 20]
//	                }
//	            }
//	        }
//	    }
//	}
//
// A framework integrating the engine calls Generate once per collected test
// function and acts on the result: schedule one invocation per parameter
// row, run the function unparametrized, or skip it with the given reason.
package tdp

import (
	"github.com/charmbracelet/log"

	"tdp/internal/config"
	"tdp/internal/domain"
	"tdp/internal/engine"
	"tdp/internal/store"
)

// Re-exported engine types, so integrations only import this package.
type (
	Location   = domain.Location
	Result     = domain.Result
	ResultKind = domain.ResultKind
	Table      = domain.Table
	Tuple      = domain.Tuple
	Value      = domain.Value
	SkipReason = domain.SkipReason
)

const (
	NoParametrization = domain.NoParametrization
	Parametrized      = domain.Parametrized
	Skipped           = domain.Skipped
)

// ParseLocation parses "module::function" or "module::Class::function".
func ParseLocation(s string) (Location, error) {
	return domain.ParseLocation(s)
}

// Generate resolves and expands the parametrization for one test function,
// reading data files from dataPath. Logging is discarded; use
// GenerateWithLogger to observe fallbacks and skips.
func Generate(dataPath string, loc Location) Result {
	return GenerateWithLogger(dataPath, loc, nil)
}

// GenerateWithLogger is Generate with an injected logger.
func GenerateWithLogger(dataPath string, loc Location, logger *log.Logger) Result {
	cfg := config.New()
	cfg.Flags.DataPath = dataPath
	return engine.New(store.NewJSONStore(cfg), logger).Generate(loc)
}
