// Package helloworld contains the sample plugin shipped with the SDK. It is
// meant as a starting point for extension authors: it exercises every part
// of the plugin contract without doing any real work.
package helloworld

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/smartfilemanager/plugin-sdk/capabilities"
	"github.com/smartfilemanager/plugin-sdk/plugin"
)

const (
	pluginName    = "Hello World Plugin"
	pluginVersion = "1.0.0"
)

// HelloWorld is the sample plugin.
type HelloWorld struct {
	api *capabilities.Capabilities
	log zerolog.Logger
}

var _ plugin.Plugin = (*HelloWorld)(nil)

// New returns an inactive HelloWorld plugin.
func New() *HelloWorld {
	h := &HelloWorld{
		log: zerolog.Nop(),
	}

	return h
}

// Metadata reports the sample plugin's identity.
func (h *HelloWorld) Metadata() plugin.Metadata {
	return plugin.Metadata{
		Name:        pluginName,
		Version:     pluginVersion,
		Description: "A simple demonstration plugin",
		Author:      "Smart File Manager Team",
	}
}

// Activate stores the host API and greets the user if a UI is attached.
func (h *HelloWorld) Activate(ctx context.Context, api *capabilities.Capabilities) error {
	h.api = api
	h.log = api.LoggerSource.Logger(pluginName)

	h.log.Info().Msgf("%s v%s activated", pluginName, pluginVersion)

	// the UI capability is optional; headless hosts get no notification
	if api.UI != nil {
		n := capabilities.Notification{
			Title:   "Hello World Plugin",
			Message: "Plugin successfully loaded!",
			Type:    capabilities.NotificationTypeSuccess,
		}

		if err := api.UI.ShowNotification(n); err != nil {
			// a failed notification is not a failed activation
			h.log.Warn().Err(err).Msg("failed to ShowNotification")
		}
	}

	return nil
}

// Deactivate logs the shutdown. The sample holds no resources to release.
func (h *HelloWorld) Deactivate(ctx context.Context) error {
	h.log.Info().Msgf("%s v%s deactivated", pluginName, pluginVersion)

	return nil
}

// ProcessFile reports the byte size of the given file, or a soft
// file-not-found result when it does not exist.
func (h *HelloWorld) ProcessFile(ctx context.Context, path string) *plugin.FileResult {
	files := h.files()

	if !files.Exists(path) {
		return plugin.NotFoundResult()
	}

	size, err := files.Size(path)
	if err != nil {
		// the file vanished between the existence check and the size query
		return plugin.NotFoundResult()
	}

	result := &plugin.FileResult{
		Message:     fmt.Sprintf("Hello from plugin! Processed file: %s", path),
		FileSize:    size,
		ProcessedAt: time.Now().UTC().Format(time.RFC3339),
	}

	return result
}

// files returns the injected file source, falling back to an os-backed one
// when the plugin has not been activated yet.
func (h *HelloWorld) files() capabilities.FileCapability {
	if h.api != nil && h.api.FileSource != nil {
		return h.api.FileSource
	}

	return capabilities.DefaultFileSource(capabilities.FileConfig{Enabled: true})
}
