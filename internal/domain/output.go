package domain

// CollectionMeta contains aggregate statistics for one collection pass.
type CollectionMeta struct {
	TotalLocations  int     `json:"total_locations"`
	Parametrized    int     `json:"parametrized"`
	Unparametrized  int     `json:"unparametrized"`
	Skipped         int     `json:"skipped"`
	TotalRows       int     `json:"total_rows"`
	Duration        string  `json:"duration"`
	DurationSeconds float64 `json:"duration_seconds"`
	Workers         int     `json:"workers"`
	Timestamp       string  `json:"timestamp"`
}

// CollectionDetail is the persisted outcome for one location.
type CollectionDetail struct {
	Location string      `json:"location"`
	Status   string      `json:"status"`
	Table    *Table      `json:"table,omitempty"`
	Skip     *SkipReason `json:"skip,omitempty"`
}

// CollectionOutput is the complete output structure for a collection pass.
type CollectionOutput struct {
	Meta    CollectionMeta     `json:"meta"`
	Details []CollectionDetail `json:"details"`
}
