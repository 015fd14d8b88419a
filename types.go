package chat2pdf

import (
	"time"

	"github.com/alnah/go-chat2pdf/internal/settings"
)

// Platform identifies which chat application a page came from.
type Platform string

// Supported platforms.
const (
	PlatformChatGPT Platform = "chatgpt"
	PlatformClaude  Platform = "claude"
	PlatformGemini  Platform = "gemini"
)

// Role classifies a conversation turn.
type Role string

// Turn roles.
const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Page is a serialized snapshot of a chat page, as captured by the host
// environment. The exporter reconstructs its own document from HTML and
// never assumes live DOM access.
type Page struct {
	HTML  string // serialized document (required)
	URL   string // determines the platform
	Title string // page title, used for the export title and filename
}

// ConversationTurn is one turn of an extracted conversation, in
// chronological source order.
type ConversationTurn struct {
	Role         Role
	TitleText    string // derived first-sentence heading, user turns only
	BodyMarkdown string
}

// ExtractionResult is the outcome of one extraction request. Immutable
// after construction.
type ExtractionResult struct {
	Platform  Platform
	ModelName string
	UserName  string
	PageTitle string
	Turns     []ConversationTurn
}

// Settings is the flat rendering-settings record: page size, margins,
// font sizes, colors, code background, syntax-highlight and TOC toggles,
// table line styling.
type Settings = settings.Record

// DefaultSettings returns the compiled-in settings record.
func DefaultSettings() *Settings {
	return settings.Defaults()
}

// Option configures an Exporter.
type Option func(*Exporter)

// exporterConfig holds internal configuration for Exporter.
type exporterConfig struct {
	timeout      time.Duration
	settings     *Settings
	settingsPath string
}

// defaultTimeout is used when no timeout is specified.
const defaultTimeout = 30 * time.Second

// WithTimeout sets the PDF conversion timeout.
// Panics if d <= 0 (programmer error, similar to time.NewTicker).
func WithTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("chat2pdf: WithTimeout duration must be positive")
	}
	return func(e *Exporter) {
		e.cfg.timeout = d
	}
}

// WithSettings fixes the rendering settings, bypassing the settings
// store entirely.
func WithSettings(s *Settings) Option {
	return func(e *Exporter) {
		e.cfg.settings = s
	}
}

// WithSettingsPath loads rendering settings from an explicit file
// instead of the default search locations.
func WithSettingsPath(path string) Option {
	return func(e *Exporter) {
		e.cfg.settingsPath = path
	}
}
