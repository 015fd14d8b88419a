package sniff

import (
	"strings"
	"testing"

	"github.com/alnah/go-chat2pdf/internal/snapshot"
)

func mustSnapshot(t *testing.T, html string, platform snapshot.Platform) *snapshot.Snapshot {
	t.Helper()
	snap, err := snapshot.NewForPlatform(html, platform, "", "")
	if err != nil {
		t.Fatalf("building snapshot: %v", err)
	}
	return snap
}

func TestUserNameChatGPT(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		html     string
		expected string
	}{
		{
			name:     "user menu button",
			html:     `<html><body><div data-testid="user-menu-button">Ada Lovelace</div></body></html>`,
			expected: "Ada Lovelace",
		},
		{
			name:     "profile div",
			html:     `<html><body><div class="user-name-badge">Grace Hopper</div></body></html>`,
			expected: "Grace Hopper",
		},
		{
			name:     "email local part title-cased",
			html:     `<html><body><span>signed in as ada.l@example.com</span></body></html>`,
			expected: "Ada.l",
		},
		{
			name:     "nothing recognizable",
			html:     `<html><body><p>welcome</p></body></html>`,
			expected: "User",
		},
		{
			name:     "empty menu falls through to email",
			html:     `<html><body><div data-testid="user-menu-button">  </div><span>grace@navy.mil</span></body></html>`,
			expected: "Grace",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			snap := mustSnapshot(t, tt.html, snapshot.PlatformChatGPT)
			if got := UserName(snap); got != tt.expected {
				t.Errorf("UserName() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestUserNameClaude(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		html     string
		expected string
	}{
		{
			name:     "full_name in serialized state",
			html:     `<html><body><script>{\"full_name\":\"Alan Turing\"}</script></body></html>`,
			expected: "Alan Turing",
		},
		{
			name:     "account name div",
			html:     `<html><body><div class="font-semibold">Joan Clarke</div></body></html>`,
			expected: "Joan Clarke",
		},
		{
			name:     "branding div skipped",
			html:     `<html><body><div class="font-semibold">Claude Pro</div></body></html>`,
			expected: "User",
		},
		{
			name:     "no markers",
			html:     `<html><body></body></html>`,
			expected: "User",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			snap := mustSnapshot(t, tt.html, snapshot.PlatformClaude)
			if got := UserName(snap); got != tt.expected {
				t.Errorf("UserName() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestUserNameGemini(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		html     string
		expected string
	}{
		{
			name:     "account bar div",
			html:     `<html><body><div class="gb_g">Margaret Hamilton</div></body></html>`,
			expected: "Margaret Hamilton",
		},
		{
			name:     "profile meta tag",
			html:     `<html><head><meta name="og-profile-acct" content="mh@example.com"></head><body></body></html>`,
			expected: "mh@example.com",
		},
		{
			name:     "default",
			html:     `<html><body></body></html>`,
			expected: "User",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			snap := mustSnapshot(t, tt.html, snapshot.PlatformGemini)
			if got := UserName(snap); got != tt.expected {
				t.Errorf("UserName() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestModelNameChatGPT(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		html     string
		expected string
	}{
		{
			name:     "model selector aria label",
			html:     `<html><body><button aria-label="Model selector, current model is 4o">GPT</button></body></html>`,
			expected: "GPT-4o",
		},
		{
			name:     "message model slug",
			html:     `<html><body><div data-message-model-slug="gpt-4o-mini"></div></body></html>`,
			expected: "Gpt 4o Mini",
		},
		{
			name:     "default",
			html:     `<html><body></body></html>`,
			expected: "ChatGPT",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			snap := mustSnapshot(t, tt.html, snapshot.PlatformChatGPT)
			if got := ModelName(snap); got != tt.expected {
				t.Errorf("ModelName() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestModelNameClaude(t *testing.T) {
	t.Parallel()

	t.Run("dropdown text", func(t *testing.T) {
		t.Parallel()

		snap := mustSnapshot(t,
			`<html><body><button data-testid="model-selector-dropdown">Sonnet 4.5</button></body></html>`,
			snapshot.PlatformClaude)
		if got := ModelName(snap); got != "Claude Sonnet 4.5" {
			t.Errorf("ModelName() = %q, want %q", got, "Claude Sonnet 4.5")
		}
	})

	t.Run("default", func(t *testing.T) {
		t.Parallel()

		snap := mustSnapshot(t, `<html><body></body></html>`, snapshot.PlatformClaude)
		if got := ModelName(snap); got != "Claude" {
			t.Errorf("ModelName() = %q, want %q", got, "Claude")
		}
	})
}

func TestModelNameGemini(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		html     string
		expected string
	}{
		{
			name:     "longest serialized candidate wins",
			html:     `<html><body><script>[1,null,null,null,"Gemini",null],[2,null,null,null,"Gemini 2.5 Pro",null]</script></body></html>`,
			expected: "Gemini 2.5 Pro",
		},
		{
			name:     "overlong candidate rejected",
			html:     `<html><body><script>[1,null,null,null,"Gemini ` + strings.Repeat("x", 64) + `",null]</script>Gemini Advanced</body></html>`,
			expected: "Gemini Advanced",
		},
		{
			name:     "advanced literal fallback",
			html:     `<html><body>Get Gemini Advanced today</body></html>`,
			expected: "Gemini Advanced",
		},
		{
			name:     "default",
			html:     `<html><body>nothing here</body></html>`,
			expected: "Gemini",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			snap := mustSnapshot(t, tt.html, snapshot.PlatformGemini)
			if got := ModelName(snap); got != tt.expected {
				t.Errorf("ModelName() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestSlugToDisplayName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		slug     string
		expected string
	}{
		{"gpt-4o", "Gpt 4o"},
		{"gpt-4-turbo", "Gpt 4 Turbo"},
		{"o3-mini", "O3 Mini"},
	}

	for _, tt := range tests {
		tt := tt
		if got := slugToDisplayName(tt.slug); got != tt.expected {
			t.Errorf("slugToDisplayName(%q) = %q, want %q", tt.slug, got, tt.expected)
		}
	}
}
