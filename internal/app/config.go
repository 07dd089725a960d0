package app

import (
	"fmt"
	"os"
	"strconv"

	"github.com/rook-computer/badgemaker/internal/badge"
)

const (
	EnvPreset         = "BADGEMAKER_PRESET"
	EnvOutput         = "BADGEMAKER_OUT"
	EnvGoFontFallback = "BADGEMAKER_GOFONT_FALLBACK"
	EnvPreviewFB      = "BADGEMAKER_PREVIEW_FB"
)

// Options selects what a run produces. Layout values are fixed by the
// preset; Options only picks between presets and destinations.
type Options struct {
	Preset string
	Output string

	// GoFontFallback appends the embedded Go Bold font to the
	// candidate list so text is never skipped.
	GoFontFallback bool

	// PreviewFB, when set, is a framebuffer device the finished badge
	// is also shown on.
	PreviewFB string
}

// DefaultOptionsFromEnv returns the defaults, overridden by any
// BADGEMAKER_* environment variables that are set.
func DefaultOptionsFromEnv() (Options, error) {
	opts := Options{Preset: "large", Output: badge.DefaultOutput}
	if v := os.Getenv(EnvPreset); v != "" {
		opts.Preset = v
	}
	if v := os.Getenv(EnvOutput); v != "" {
		opts.Output = v
	}
	if raw := os.Getenv(EnvGoFontFallback); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			return Options{}, fmt.Errorf("%s must be a boolean (got %q): %w", EnvGoFontFallback, raw, err)
		}
		opts.GoFontFallback = parsed
	}
	opts.PreviewFB = os.Getenv(EnvPreviewFB)
	return opts, nil
}
