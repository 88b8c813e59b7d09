package config

import (
	"testing"
	"time"

	"fyne.io/fyne/v2/test"
)

func TestNewSettings(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.app != app {
		t.Error("Settings app reference should match provided app")
	}
}

func TestCanvasDimensions(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default values
	if settings.GetCanvasWidth() != DefaultCanvasWidth {
		t.Errorf("Expected default width %d, got %d", DefaultCanvasWidth, settings.GetCanvasWidth())
	}
	if settings.GetCanvasHeight() != DefaultCanvasHeight {
		t.Errorf("Expected default height %d, got %d", DefaultCanvasHeight, settings.GetCanvasHeight())
	}

	// Test setting custom values
	settings.SetCanvasWidth(1280)
	settings.SetCanvasHeight(720)
	if settings.GetCanvasWidth() != 1280 {
		t.Errorf("Expected width 1280, got %d", settings.GetCanvasWidth())
	}
	if settings.GetCanvasHeight() != 720 {
		t.Errorf("Expected height 720, got %d", settings.GetCanvasHeight())
	}

	// Test boundary values
	settings.SetCanvasWidth(10) // Should be clamped to 320
	if settings.GetCanvasWidth() != 320 {
		t.Errorf("Width should be clamped to 320, got %d", settings.GetCanvasWidth())
	}
	settings.SetCanvasHeight(10) // Should be clamped to 240
	if settings.GetCanvasHeight() != 240 {
		t.Errorf("Height should be clamped to 240, got %d", settings.GetCanvasHeight())
	}
}

func TestRefreshInterval(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	interval := settings.GetRefreshInterval()
	if interval != DefaultRefreshInterval*time.Second {
		t.Errorf("Expected default interval %ds, got %v", DefaultRefreshInterval, interval)
	}

	// Test setting custom value
	settings.SetRefreshInterval(30)
	if settings.GetRefreshInterval() != 30*time.Second {
		t.Errorf("Expected interval 30s, got %v", settings.GetRefreshInterval())
	}

	// Test boundary values
	settings.SetRefreshInterval(0) // Should be clamped to 1
	if settings.GetRefreshInterval() != 1*time.Second {
		t.Errorf("Interval should be clamped to 1s, got %v", settings.GetRefreshInterval())
	}
}

func TestSearchKeyword(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	if settings.GetSearchKeyword() != DefaultSearchKeyword {
		t.Errorf("Expected default keyword %q, got %q", DefaultSearchKeyword, settings.GetSearchKeyword())
	}

	// Test setting custom value
	settings.SetSearchKeyword("mountains")
	if settings.GetSearchKeyword() != "mountains" {
		t.Errorf("Expected keyword %q, got %q", "mountains", settings.GetSearchKeyword())
	}

	// Empty keyword falls back to default
	settings.SetSearchKeyword("")
	if settings.GetSearchKeyword() != DefaultSearchKeyword {
		t.Errorf("Empty keyword should fall back to %q, got %q", DefaultSearchKeyword, settings.GetSearchKeyword())
	}
}
