package backend

import (
	"context"

	"gioui.org/app"
	"git.sr.ht/~gioverse/skel/stream"
	"github.com/rs/zerolog"
)

// WindowState is the per-window handle on the backend. Streams created from
// its Controller invalidate the window when new values arrive.
type WindowState struct {
	Bundle
	Controller *stream.Controller
}

func NewWindowState(ctx context.Context, bundle Bundle, win *app.Window) WindowState {
	return WindowState{
		Bundle:     bundle,
		Controller: stream.NewController(ctx, win.Invalidate),
	}
}

// Bundle groups the application-wide backend services.
type Bundle struct {
	Datasource *Datasource
}

func NewBundle(appCtx context.Context, mutator *stream.Mutator, log zerolog.Logger) Bundle {
	return Bundle{
		Datasource: NewDatasource(appCtx, mutator, log),
	}
}
