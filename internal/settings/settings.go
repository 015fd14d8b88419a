// Package settings holds the rendering settings record and its persistent
// store. The record is loaded once per export and never mutated mid-render;
// any load failure falls back to compiled-in defaults.
package settings

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for settings operations.
var (
	ErrSettingsNotFound = errors.New("settings file not found")
	ErrSettingsParse    = errors.New("failed to parse settings")
)

// Page size constants.
const (
	PageSizeA4     = "a4"
	PageSizeLetter = "letter"
	PageSizeLegal  = "legal"
)

// Record holds every rendering parameter for PDF export.
// Field names and defaults mirror the extension's settings form.
type Record struct {
	// Page layout
	PageSize    string  `yaml:"pageSize"`    // "a4", "letter", "legal"
	PageMargins float64 `yaml:"pageMargins"` // points, applied to all sides

	// Font sizes in points
	FontTitle int `yaml:"fontTitle"`
	FontH1    int `yaml:"fontH1"`
	FontH2    int `yaml:"fontH2"`
	FontH3    int `yaml:"fontH3"`
	FontBody  int `yaml:"fontBody"`
	FontCode  int `yaml:"fontCode"`

	// Colors (hex)
	ColorTitle string `yaml:"colorTitle"`
	ColorH1    string `yaml:"colorH1"`
	ColorH2    string `yaml:"colorH2"`
	ColorBody  string `yaml:"colorBody"`
	ColorLink  string `yaml:"colorLink"`

	// Code blocks
	CodeBg          string `yaml:"codeBg"`
	SyntaxHighlight bool   `yaml:"syntaxHighlight"`

	// Table of contents
	TOCEnabled bool `yaml:"tocEnabled"`

	// Table styling
	TableLineWidth       float64 `yaml:"tableLineWidth"`       // points
	TableHeaderLineColor string  `yaml:"tableHeaderLineColor"` // header/body divider
	TableLineColor       string  `yaml:"tableLineColor"`       // all remaining lines
	TableHeaderFillColor string  `yaml:"tableHeaderFillColor"` // header row background
}

// Defaults returns the compiled-in settings record.
func Defaults() *Record {
	return &Record{
		PageSize:    PageSizeA4,
		PageMargins: 40,

		FontTitle: 26,
		FontH1:    22,
		FontH2:    18,
		FontH3:    15,
		FontBody:  11,
		FontCode:  10,

		ColorTitle: "#2c3e50",
		ColorH1:    "#2c3e50",
		ColorH2:    "#34495e",
		ColorBody:  "#212121",
		ColorLink:  "#1a0dab",

		CodeBg:          "#f8f8f8",
		SyntaxHighlight: true,

		TOCEnabled: true,

		TableLineWidth:       0.5,
		TableHeaderLineColor: "#000000",
		TableLineColor:       "#cccccc",
		TableHeaderFillColor: "#f5f5f5",
	}
}

// Validate checks that the record can be rendered.
func (r *Record) Validate() error {
	if r == nil {
		return nil
	}

	switch strings.ToLower(r.PageSize) {
	case PageSizeA4, PageSizeLetter, PageSizeLegal:
	default:
		return fmt.Errorf("pageSize: invalid value %q (must be a4, letter, or legal)", r.PageSize)
	}

	if r.PageMargins < 0 || r.PageMargins > 200 {
		return fmt.Errorf("pageMargins: must be between 0 and 200, got %.1f", r.PageMargins)
	}

	for _, f := range []struct {
		name string
		size int
	}{
		{"fontTitle", r.FontTitle},
		{"fontH1", r.FontH1},
		{"fontH2", r.FontH2},
		{"fontH3", r.FontH3},
		{"fontBody", r.FontBody},
		{"fontCode", r.FontCode},
	} {
		if f.size < 4 || f.size > 96 {
			return fmt.Errorf("%s: must be between 4 and 96, got %d", f.name, f.size)
		}
	}

	if r.TableLineWidth < 0 || r.TableLineWidth > 10 {
		return fmt.Errorf("tableLineWidth: must be between 0 and 10, got %.2f", r.TableLineWidth)
	}

	return nil
}
