package helloworld_test

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartfilemanager/plugin-sdk/capabilities"
	"github.com/smartfilemanager/plugin-sdk/helloworld"
	"github.com/smartfilemanager/plugin-sdk/plugin"
)

func TestMetadata(t *testing.T) {
	meta := helloworld.New().Metadata()

	want := plugin.Metadata{
		Name:        "Hello World Plugin",
		Version:     "1.0.0",
		Description: "A simple demonstration plugin",
		Author:      "Smart File Manager Team",
	}

	assert.Equal(t, want, meta)
	assert.NoError(t, meta.Validate())
}

func TestActivateWithoutUI(t *testing.T) {
	config := capabilities.DefaultConfigWithLogger(zerolog.Nop())
	config.UI = nil

	caps, err := capabilities.NewWithConfig(config)
	require.NoError(t, err)

	h := helloworld.New()

	assert.NoError(t, h.Activate(context.Background(), caps))
	assert.NoError(t, h.Deactivate(context.Background()))
}

func TestActivateWithDisabledUI(t *testing.T) {
	config := capabilities.DefaultConfigWithLogger(zerolog.Nop())
	config.UI = &capabilities.UIConfig{Enabled: false}

	caps, err := capabilities.NewWithConfig(config)
	require.NoError(t, err)

	// the notification fails, the activation must not
	assert.NoError(t, helloworld.New().Activate(context.Background(), caps))
}

func TestProcessFileMissing(t *testing.T) {
	h := activated(t)

	result := h.ProcessFile(context.Background(), filepath.Join(t.TempDir(), "nope.txt"))
	require.NotNil(t, result)
	assert.True(t, result.Failed())

	out, err := json.Marshal(result)
	require.NoError(t, err)
	assert.Equal(t, `{"error":"File not found"}`, string(out))
}

func TestProcessFileExisting(t *testing.T) {
	h := activated(t)

	content := []byte("twelve bytes")
	path := filepath.Join(t.TempDir(), "notes.txt")
	require.NoError(t, os.WriteFile(path, content, 0o644))

	result := h.ProcessFile(context.Background(), path)
	require.NotNil(t, result)

	assert.False(t, result.Failed())
	assert.Equal(t, int64(len(content)), result.FileSize)
	assert.Contains(t, result.Message, path)

	_, err := time.Parse(time.RFC3339, result.ProcessedAt)
	assert.NoError(t, err, "processed_at should be an RFC3339 timestamp")
}

func TestProcessFileEmpty(t *testing.T) {
	h := activated(t)

	path := filepath.Join(t.TempDir(), "empty.txt")
	require.NoError(t, os.WriteFile(path, []byte{}, 0o644))

	result := h.ProcessFile(context.Background(), path)
	require.NotNil(t, result)

	assert.False(t, result.Failed())
	assert.Equal(t, int64(0), result.FileSize)

	// a zero-byte file must still report its size on the wire
	out, err := json.Marshal(result)
	require.NoError(t, err)
	assert.Contains(t, string(out), `"file_size":0`)
}

func TestProcessFileBeforeActivate(t *testing.T) {
	h := helloworld.New()

	path := filepath.Join(t.TempDir(), "early.txt")
	require.NoError(t, os.WriteFile(path, []byte("early bird"), 0o644))

	// without an injected API the plugin falls back to an os-backed source
	result := h.ProcessFile(context.Background(), path)
	require.NotNil(t, result)
	assert.False(t, result.Failed())
	assert.Equal(t, int64(len("early bird")), result.FileSize)
}

func TestProcessFileWithDisabledFileSource(t *testing.T) {
	config := capabilities.DefaultConfigWithLogger(zerolog.Nop())
	config.File = &capabilities.FileConfig{Enabled: false}

	caps, err := capabilities.NewWithConfig(config)
	require.NoError(t, err)

	h := helloworld.New()
	require.NoError(t, h.Activate(context.Background(), caps))

	path := filepath.Join(t.TempDir(), "hidden.txt")
	require.NoError(t, os.WriteFile(path, []byte("hidden"), 0o644))

	// a disabled file source reports every path as absent
	result := h.ProcessFile(context.Background(), path)
	require.NotNil(t, result)
	assert.Equal(t, plugin.ErrMsgFileNotFound, result.Error)
}

func activated(t *testing.T) *helloworld.HelloWorld {
	t.Helper()

	h := helloworld.New()
	require.NoError(t, h.Activate(context.Background(), capabilities.New(zerolog.Nop())))

	return h
}
