package capabilities

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestDefaultUISource(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := zerolog.New(buf)

	ui := DefaultUISource(UIConfig{Enabled: true}, logger)

	t.Run("show enabled", func(t *testing.T) {
		err := ui.ShowNotification(Notification{
			Title:   "Hello",
			Message: "it works",
			Type:    NotificationTypeSuccess,
		})

		if err != nil {
			t.Error("error occurred, should not have")
		}

		if !strings.Contains(buf.String(), "it works") {
			t.Error("notification message not rendered: " + buf.String())
		}

		if !strings.Contains(buf.String(), string(NotificationTypeSuccess)) {
			t.Error("notification type not rendered: " + buf.String())
		}
	})

	t.Run("empty type defaults to info", func(t *testing.T) {
		buf.Reset()

		if err := ui.ShowNotification(Notification{Title: "Hello", Message: "untyped"}); err != nil {
			t.Error("error occurred, should not have")
		}

		if !strings.Contains(buf.String(), string(NotificationTypeInfo)) {
			t.Error("expected info type, got: " + buf.String())
		}
	})
}

func TestDisabledUISource(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := zerolog.New(buf)

	ui := DefaultUISource(UIConfig{Enabled: false}, logger)

	t.Run("show disabled", func(t *testing.T) {
		err := ui.ShowNotification(Notification{Title: "Hello", Message: "nope"})

		if !errors.Is(err, ErrCapabilityNotEnabled) {
			t.Error("expected ErrCapabilityNotEnabled, got:", err)
		}

		if buf.Len() != 0 {
			t.Error("notification rendered, should not have been: " + buf.String())
		}
	})
}
