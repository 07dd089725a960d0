package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/rook-computer/badgemaker/internal/badge"
	"github.com/rook-computer/badgemaker/internal/fonts"
	"github.com/rook-computer/badgemaker/internal/preview"
	"github.com/rook-computer/badgemaker/internal/render"
)

// Result summarises a finished run.
type Result struct {
	Path    string
	Preset  string
	Font    string // empty when no font loaded
	Skipped []string
}

type App struct {
	Options Options
	Logger  Logger

	// Candidates overrides the preset's font candidates when non-nil.
	Candidates []fonts.Source
}

func New(opts Options) *App {
	return &App{Options: opts, Logger: NoopLogger{}}
}

// Run renders the selected preset and writes it to Options.Output.
// Missing fonts only drop text; write failures are returned.
func (app *App) Run(ctx context.Context) (Result, error) {
	log := app.Logger
	if log == nil {
		log = NoopLogger{}
	}

	preset, err := badge.Lookup(app.Options.Preset)
	if err != nil {
		return Result{}, err
	}
	output := app.Options.Output
	if output == "" {
		output = badge.DefaultOutput
	}

	candidates := preset.Candidates
	if app.Candidates != nil {
		candidates = app.Candidates
	}
	if app.Options.GoFontFallback {
		candidates = append(append([]fonts.Source(nil), candidates...), fonts.GoBold)
	}

	loader := fonts.Loader{Candidates: candidates, Logger: log}
	faces, src, err := loader.LoadSet(preset.Sizes()...)
	if errors.Is(err, fonts.ErrNoFont) {
		log.Errorf("fonts", "no font candidate loaded, text will be omitted")
	}
	defer faces.Close()

	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	canvas := render.NewCanvas(render.CanvasWidth, render.CanvasHeight, preset.Palette.Background)
	drawn := badge.Render(canvas, preset, faces)
	for _, text := range drawn.Skipped {
		log.Errorf("badge", "skipped %q: no font", text)
	}

	if err := canvas.SavePNG(output); err != nil {
		return Result{}, fmt.Errorf("save badge: %w", err)
	}
	log.Infof("badge", "wrote %s (preset=%s)", output, preset.Name)

	res := Result{Path: output, Preset: preset.Name, Skipped: drawn.Skipped}
	if len(faces) > 0 {
		res.Font = src.String()
	}

	if app.Options.PreviewFB != "" {
		if err := preview.ToFramebuffer(app.Options.PreviewFB, canvas.Image()); err != nil {
			// The file is already written; a failed preview does not fail the run.
			log.Errorf("preview", "framebuffer %s: %v", app.Options.PreviewFB, err)
		} else {
			log.Infof("preview", "shown on %s", app.Options.PreviewFB)
		}
	}
	return res, nil
}
