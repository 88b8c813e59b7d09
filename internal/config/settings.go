package config

import (
	"time"

	"fyne.io/fyne/v2"
)

// Settings keys for Fyne preferences
const (
	KeyCanvasWidth     = "canvas_width"
	KeyCanvasHeight    = "canvas_height"
	KeyRefreshInterval = "refresh_interval_seconds"
	KeySearchKeyword   = "search_keyword"
)

// Default values
const (
	DefaultCanvasWidth     = 900
	DefaultCanvasHeight    = 600
	DefaultRefreshInterval = 10 // seconds
	DefaultSearchKeyword   = "nature"
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetCanvasWidth returns the configured canvas width in pixels
func (s *Settings) GetCanvasWidth() int {
	value := s.app.Preferences().Int(KeyCanvasWidth)
	if value <= 0 {
		s.SetCanvasWidth(DefaultCanvasWidth)
		return DefaultCanvasWidth
	}
	return value
}

// SetCanvasWidth sets the canvas width
func (s *Settings) SetCanvasWidth(width int) {
	if width < 320 {
		width = 320
	}
	s.app.Preferences().SetInt(KeyCanvasWidth, width)
}

// GetCanvasHeight returns the configured canvas height in pixels
func (s *Settings) GetCanvasHeight() int {
	value := s.app.Preferences().Int(KeyCanvasHeight)
	if value <= 0 {
		s.SetCanvasHeight(DefaultCanvasHeight)
		return DefaultCanvasHeight
	}
	return value
}

// SetCanvasHeight sets the canvas height
func (s *Settings) SetCanvasHeight(height int) {
	if height < 240 {
		height = 240
	}
	s.app.Preferences().SetInt(KeyCanvasHeight, height)
}

// GetRefreshInterval returns the interval between refresh cycles
func (s *Settings) GetRefreshInterval() time.Duration {
	value := s.app.Preferences().Int(KeyRefreshInterval)
	if value <= 0 {
		s.SetRefreshInterval(DefaultRefreshInterval)
		return DefaultRefreshInterval * time.Second
	}
	return time.Duration(value) * time.Second
}

// SetRefreshInterval sets the refresh interval in whole seconds
func (s *Settings) SetRefreshInterval(seconds int) {
	if seconds < 1 {
		seconds = 1
	}
	s.app.Preferences().SetInt(KeyRefreshInterval, seconds)
}

// GetSearchKeyword returns the keyword used for the primary image source
func (s *Settings) GetSearchKeyword() string {
	keyword := s.app.Preferences().String(KeySearchKeyword)
	if keyword == "" {
		s.SetSearchKeyword(DefaultSearchKeyword)
		return DefaultSearchKeyword
	}
	return keyword
}

// SetSearchKeyword sets the image search keyword
func (s *Settings) SetSearchKeyword(keyword string) {
	if keyword == "" {
		keyword = DefaultSearchKeyword
	}
	s.app.Preferences().SetString(KeySearchKeyword, keyword)
}
