package ui

import (
	"strings"
	"testing"
)

func TestDetectTheme(t *testing.T) {
	t.Setenv("COLORFGBG", "")
	t.Setenv("SPLTRACK_DARK_MODE", "1")
	dark := DetectTheme()
	if !dark.IsDark {
		t.Fatalf("expected dark theme when SPLTRACK_DARK_MODE=1")
	}

	t.Setenv("SPLTRACK_DARK_MODE", "")
	light := DetectTheme()
	if light.IsDark {
		t.Fatalf("expected light theme when SPLTRACK_DARK_MODE is unset")
	}
}

func TestDetectTheme_ColorFGBG(t *testing.T) {
	t.Setenv("SPLTRACK_DARK_MODE", "")

	t.Setenv("COLORFGBG", "15;0")
	if !DetectTheme().IsDark {
		t.Fatalf("expected dark theme for black background")
	}

	t.Setenv("COLORFGBG", "0;15")
	if DetectTheme().IsDark {
		t.Fatalf("expected light theme for white background")
	}
}

func TestThemeFor(t *testing.T) {
	t.Setenv("COLORFGBG", "")
	t.Setenv("SPLTRACK_DARK_MODE", "1")

	if ThemeFor("light").IsDark {
		t.Fatalf("light should override detection")
	}
	if !ThemeFor("Dark").IsDark {
		t.Fatalf("dark should be case-insensitive")
	}
	if !ThemeFor("auto").IsDark {
		t.Fatalf("auto should fall back to detection")
	}
}

func TestRenderDivider(t *testing.T) {
	s := NewStyles(LightTheme())
	if got := s.RenderDivider(5); !strings.Contains(got, "─────") {
		t.Fatalf("expected 5-wide divider, got %q", got)
	}
	if got := s.RenderDivider(-3); strings.Contains(got, "─") {
		t.Fatalf("negative width should render empty, got %q", got)
	}
}
