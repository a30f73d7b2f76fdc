package collect

import (
	"time"

	"tdp/internal/domain"
)

// Collector expands parametrization specs for a set of locations
type Collector interface {
	Collect(locations []domain.Location) ([]domain.Collection, time.Duration, error)
}
