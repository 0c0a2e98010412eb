// Package tui is the entry point for the full-screen UI.
package tui

import (
	"tableflip.dev/vireo/pkg/app"
	tuiapp "tableflip.dev/vireo/pkg/tui/app"
)

// Run opens the UI bound to the given service and blocks until the user
// quits.
func Run(service *app.Service) error {
	return tuiapp.Run(service)
}
