package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/rook-computer/badgemaker/internal/app"
	"github.com/rook-computer/badgemaker/internal/badge"
)

func main() {
	defaults, err := app.DefaultOptionsFromEnv()
	if err != nil {
		fmt.Println("config error:", err)
		os.Exit(2)
	}

	// Flags
	preset := flag.String("preset", defaults.Preset, "badge layout: "+strings.Join(badge.Names(), " | ")+"; also configurable via "+app.EnvPreset)
	output := flag.String("out", defaults.Output, "output PNG path, parent directories are created; also configurable via "+app.EnvOutput)
	goFont := flag.Bool("gofont-fallback", defaults.GoFontFallback, "use the embedded Go Bold font when no system font loads; also configurable via "+app.EnvGoFontFallback)
	previewFB := flag.String("preview-fb", defaults.PreviewFB, "also show the badge on this framebuffer device, e.g. /dev/fb0; also configurable via "+app.EnvPreviewFB)
	debug := flag.Bool("debug", false, "enable debug logging to ./badgemaker-debug.log")
	stdioLog := flag.String("stdio-log", "", "redirect stdout+stderr (including panics) to this file; also configurable via "+envStdioLog)
	flag.Parse()

	// Best-effort: keep a record even when run unattended.
	if err := redirectStdIO(stdioLogPath(*stdioLog)); err != nil {
		fmt.Println("stdio log redirect error:", err)
	}

	loggers := app.MultiLogger{app.NewFileLogger(os.Stdout)}
	if *debug {
		f, err := os.OpenFile("./badgemaker-debug.log", os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err == nil {
			defer f.Close()
			loggers = append(loggers, app.NewFileLogger(f))
			loggers.Infof("main", "debug logging enabled")
		} else {
			fmt.Println("debug log open error:", err)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a := app.New(app.Options{
		Preset:         *preset,
		Output:         *output,
		GoFontFallback: *goFont,
		PreviewFB:      *previewFB,
	})
	a.Logger = loggers

	res, err := a.Run(ctx)
	if err != nil {
		loggers.Errorf("main", "%v", err)
		stop()
		os.Exit(1)
	}
	if len(res.Skipped) > 0 {
		fmt.Printf("Badge written without %d text line(s): %s\n", len(res.Skipped), res.Path)
		return
	}
	fmt.Println("Badge written:", res.Path)
}
