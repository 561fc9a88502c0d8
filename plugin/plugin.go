// Package plugin defines the contract between the Smart File Manager host
// and its extension units. The host drives the lifecycle; plugins must not
// depend on any call ordering beyond receiving the host API in Activate.
package plugin

import (
	"context"

	"github.com/smartfilemanager/plugin-sdk/capabilities"
)

// Plugin is the interface every Smart File Manager extension implements.
type Plugin interface {
	// Metadata reports the plugin's identity. Pure, no side effects.
	Metadata() Metadata

	// Activate is called when the host enables the plugin, injecting the
	// host API object.
	Activate(ctx context.Context, api *capabilities.Capabilities) error

	// Deactivate is called when the host disables the plugin.
	Deactivate(ctx context.Context) error

	// ProcessFile handles a single file. Failures are soft: they are
	// reported in the returned FileResult, never as an error.
	ProcessFile(ctx context.Context, path string) *FileResult
}
