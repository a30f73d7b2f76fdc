package storage

import (
	"sort"
	"time"

	"tdp/internal/domain"
)

// Storage persists and loads collection outputs (e.g. for the view command).
type Storage interface {
	// SaveOutput writes the full collection output.
	SaveOutput(output *domain.CollectionOutput) error
	Load() (*domain.CollectionOutput, error)
}

// BuildOutput assembles a collection output from the raw collection results,
// with details sorted by location for stable reports.
func BuildOutput(collections []domain.Collection, duration time.Duration, workers int) *domain.CollectionOutput {
	meta := domain.CollectionMeta{
		TotalLocations:  len(collections),
		Duration:        duration.String(),
		DurationSeconds: duration.Seconds(),
		Workers:         workers,
		Timestamp:       time.Now().Format(time.RFC3339),
	}

	details := make([]domain.CollectionDetail, 0, len(collections))
	for _, collection := range collections {
		result := collection.Result
		switch result.Kind {
		case domain.Parametrized:
			meta.Parametrized++
			meta.TotalRows += len(result.Table.Rows)
		case domain.Skipped:
			meta.Skipped++
		default:
			meta.Unparametrized++
		}

		details = append(details, domain.CollectionDetail{
			Location: collection.Location.String(),
			Status:   result.Status(),
			Table:    result.Table,
			Skip:     result.Skip,
		})
	}

	sort.Slice(details, func(i, j int) bool {
		return details[i].Location < details[j].Location
	})

	return &domain.CollectionOutput{Meta: meta, Details: details}
}
