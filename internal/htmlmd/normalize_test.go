package htmlmd

import "testing"

func TestNormalizeCodeFences(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "language header merged into fence",
			input:    "Python\n```\nprint(1)\n```",
			expected: "```{python}\nprint(1)\n```",
		},
		{
			name:     "indented language header keeps indent",
			input:    "intro\n\n    Go\n    ```\n    x := 1\n    ```",
			expected: "intro\n\n    ```{go}\n    x := 1\n    ```",
		},
		{
			name:     "standard fence gets brackets",
			input:    "text\n```python\ncode\n```",
			expected: "text\n\n```{python}\ncode\n```",
		},
		{
			name:     "language lowercased",
			input:    "```PYTHON\ncode\n```",
			expected: "```{python}\ncode\n```",
		},
		{
			name:     "markdown aliased to md",
			input:    "```markdown\n# h\n```",
			expected: "```{md}\n# h\n```",
		},
		{
			name:     "cpp alias",
			input:    "```c++\nint x;\n```",
			expected: "```{cpp}\nint x;\n```",
		},
		{
			name:     "extra blanks before opening fence collapsed",
			input:    "text\n\n\n\n```{go}\nx\n```",
			expected: "text\n\n```{go}\nx\n```",
		},
		{
			name:     "blanks before closing fence stripped",
			input:    "```{go}\nx\n\n\n```",
			expected: "```{go}\nx\n```",
		},
		{
			name:     "already normalized text unchanged",
			input:    "intro\n\n```{go}\nx := 1\n```\n\nafter",
			expected: "intro\n\n```{go}\nx := 1\n```\n\nafter",
		},
		{
			name:     "bare fences untouched",
			input:    "```\nraw\n```",
			expected: "```\nraw\n```",
		},
		{
			name:     "lone word before closing bare fence is code",
			input:    "before\n\n```\nmake build\nls\n```\n\nafter",
			expected: "before\n\n```\nmake build\nls\n```\n\nafter",
		},
		{
			name:     "lone word before closing tagged fence is code",
			input:    "```{sh}\ncd /tmp\nls\n```",
			expected: "```{sh}\ncd /tmp\nls\n```",
		},
		{
			name:     "single letter line before closing fence is code",
			input:    "```{cpp}\ny\n```",
			expected: "```{cpp}\ny\n```",
		},
		{
			name:     "stripped blanks do not expose code to merging",
			input:    "```{go}\ny\n\n\n```",
			expected: "```{go}\ny\n```",
		},
		{
			name:     "no fences is a no-op",
			input:    "just\nplain\ntext",
			expected: "just\nplain\ntext",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := NormalizeCodeFences(tt.input)
			if got != tt.expected {
				t.Errorf("got %q, expected %q", got, tt.expected)
			}
			again := NormalizeCodeFences(got)
			if again != got {
				t.Errorf("not idempotent: second pass gave %q", again)
			}
		})
	}
}
