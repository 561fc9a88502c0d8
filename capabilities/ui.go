package capabilities

import (
	"github.com/rs/zerolog"
)

// NotificationType mirrors the severity levels the host's notification area understands.
type NotificationType string

const (
	NotificationTypeSuccess NotificationType = "success"
	NotificationTypeInfo    NotificationType = "info"
	NotificationTypeWarning NotificationType = "warning"
	NotificationTypeError   NotificationType = "error"
)

// Notification is a message surfaced to the user by the host.
type Notification struct {
	Title   string           `json:"title" yaml:"title"`
	Message string           `json:"message" yaml:"message"`
	Type    NotificationType `json:"type" yaml:"type"`
}

// UIConfig is configuration for the UI capability.
type UIConfig struct {
	Enabled bool `json:"enabled" yaml:"enabled"`
}

// UICapability lets a plugin surface notifications to the host's user
// interface, when one is attached.
type UICapability interface {
	ShowNotification(n Notification) error
}

type logUISource struct {
	config UIConfig
	log    zerolog.Logger
}

// DefaultUISource returns a UI source that renders notifications as log
// lines. Hosts with a real notification area provide their own UICapability.
func DefaultUISource(config UIConfig, log zerolog.Logger) UICapability {
	u := &logUISource{
		config: config,
		log:    log,
	}

	return u
}

// ShowNotification renders the notification through the attached logger.
func (u *logUISource) ShowNotification(n Notification) error {
	if !u.config.Enabled {
		return ErrCapabilityNotEnabled
	}

	if n.Type == "" {
		n.Type = NotificationTypeInfo
	}

	u.log.Info().
		Str("type", string(n.Type)).
		Str("title", n.Title).
		Msg(n.Message)

	return nil
}
