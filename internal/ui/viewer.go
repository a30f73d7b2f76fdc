package ui

import "tdp/internal/domain"

// Viewer displays a collection pass in an interactive TUI
type Viewer interface {
	View(output *domain.CollectionOutput) error
}
