package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"time"

	"gioui.org/app"
	"gioui.org/op"
	"gioui.org/unit"
	"gioui.org/x/explorer"
	"git.sr.ht/~gioverse/skel/stream"
	"git.sr.ht/~whereswaldon/touchcharts/backend"
	"git.sr.ht/~whereswaldon/touchcharts/config"
	"git.sr.ht/~whereswaldon/touchcharts/logger"
	"github.com/rs/zerolog"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed loading configuration: %v\n", err)
		os.Exit(1)
	}
	flag.StringVar(&cfg.DataFile, "data", cfg.DataFile, "CSV dataset to display; it is reloaded whenever it changes")
	flag.StringVar(&cfg.Chart, "chart", cfg.Chart, "chart to show first: bar, line or pie")
	flag.StringVar(&cfg.Title, "title", cfg.Title, "title shown while the chart is idle")
	flag.StringVar(&cfg.LabelFormat, "format", cfg.LabelFormat, "value format: a printf verb or one of hhmmss, metricDist, imperialDist, metricElev, imperialElev, calories, joules, RHR")
	flag.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level: debug, info, warn or error")
	flag.Parse()
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "invalid configuration: %v\n", err)
		os.Exit(2)
	}

	log := logger.New(logger.Config{Level: cfg.LogLevel, Pretty: cfg.LogPretty})
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	mutator := stream.NewMutator(ctx, time.Second)
	bundle := backend.NewBundle(ctx, mutator, log)
	if cfg.DataFile != "" {
		if err := bundle.Datasource.WatchFile(cfg.DataFile); err != nil {
			log.Error().Err(err).Str("file", cfg.DataFile).Msg("loading dataset")
		}
	}

	go func() {
		w := app.NewWindow(app.Title("Touch Charts"), app.Size(unit.Dp(480), unit.Dp(640)))
		if err := loop(ctx, w, bundle, *cfg, log); err != nil {
			log.Fatal().Err(err).Msg("window closed")
		}
		os.Exit(0)
	}()
	app.Main()
}

func loop(ctx context.Context, w *app.Window, bundle backend.Bundle, cfg config.Config, log zerolog.Logger) error {
	expl := explorer.NewExplorer(w)
	ws := backend.NewWindowState(ctx, bundle, w)
	ui := NewUI(ws, expl, cfg, log)
	var ops op.Ops
	for {
		ev := w.NextEvent()
		expl.ListenEvents(ev)
		switch ev := ev.(type) {
		case app.DestroyEvent:
			return ev.Err
		case app.FrameEvent:
			gtx := app.NewContext(&ops, ev)
			ui.Layout(gtx)
			ev.Frame(gtx.Ops)
			ws.Controller.Sweep()
		}
	}
}
