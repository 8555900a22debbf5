package fetch

import (
	"context"

	"github.com/rs/zerolog"

	"lexdesk/internal/identity"
	"lexdesk/internal/model"
	"lexdesk/internal/workspace"
)

// Loader serializes article loads per window: at most one outstanding load
// for a window, new requests while one is in flight are ignored (not
// queued). The split into Begin (mark + build the blocking work) and Apply
// (consume the result) keeps all model mutation on the caller's thread; the
// returned work function is safe to run from a goroutine or a TUI command.
type Loader struct {
	st       *workspace.State
	articles ArticleFetcher
	log      zerolog.Logger
}

func NewLoader(st *workspace.State, articles ArticleFetcher, logger zerolog.Logger) *Loader {
	return &Loader{st: st, articles: articles, log: logger}
}

// Result is what a finished load hands back to the UI thread.
type Result struct {
	WindowID string
	Act      model.ActRef
	Articles []model.Article
	Err      error
}

// Begin marks the window as loading and returns the blocking fetch. It
// returns ok=false — and no work — when the window is unknown or already
// loading; the request is dropped, matching the one-in-flight rule.
func (l *Loader) Begin(windowID string, act model.ActRef, number, annex string) (work func(context.Context) Result, ok bool) {
	uid := identity.UniqueID(model.Article{Number: number, Annex: annex})
	if !l.st.BeginArticleLoad(windowID, uid) {
		return nil, false
	}
	return func(ctx context.Context) Result {
		articles, err := l.articles.FetchArticle(ctx, act, number, annex)
		return Result{WindowID: windowID, Act: act, Articles: articles, Err: err}
	}, true
}

// Apply consumes a load result on the UI thread: the loading flag is always
// cleared; successes merge into the window's group block; failures are
// logged and otherwise leave the model untouched (non-fatal, no automatic
// retry). A result for a window that disappeared mid-flight is discarded.
func (l *Loader) Apply(res Result) {
	l.st.EndArticleLoad(res.WindowID)
	if res.Err != nil {
		l.log.Warn().Err(res.Err).Str("window", res.WindowID).Msg("article load failed")
		return
	}
	if len(res.Articles) == 0 {
		return
	}
	l.st.AddArticlesToGroup(res.WindowID, res.Act, res.Articles)
}
