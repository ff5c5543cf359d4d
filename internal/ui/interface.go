// Package ui defines the front-end interface for the showcase.
package ui

import "github.com/ijuttt/showcase/internal/app"

// UI abstracts the runtime that renders widgets and turns input into events.
// This allows swapping Gio, Bubble Tea or gocui without changing app logic.
type UI interface {
	// Run starts the UI main loop. The UI renders from ctrl.State() and
	// reports every interaction through ctrl.Dispatch.
	Run(ctrl *app.Controller) error
	// Close releases UI resources.
	Close()
}
