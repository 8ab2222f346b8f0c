package app

import "github.com/vtorres/timeline-cli/internal/registry"

// Loader owns the timeline fetch lifecycle: the collection is requested
// exactly once per session unless a fetch fails or a refetch is asked
// for explicitly. It is a plain state machine driven from the UI event
// loop; the asynchronous fetch itself runs elsewhere and reports back
// through Finish.
//
// Every started fetch gets a generation number. A completion carrying a
// stale generation is discarded, so an abandoned fetch can never
// overwrite fresher state.
type Loader struct {
	assets     []registry.Asset
	loading    bool
	errMsg     string
	done       bool
	generation int
}

func NewLoader() *Loader {
	return &Loader{}
}

func (l *Loader) Assets() []registry.Asset { return l.assets }
func (l *Loader) Loading() bool            { return l.loading }
func (l *Loader) Err() string              { return l.errMsg }
func (l *Loader) Fetched() bool            { return l.done }

// SeedCached publishes a cached snapshot without marking the one-shot
// fetch as completed, so the real fetch still runs.
func (l *Loader) SeedCached(assets []registry.Asset) {
	if l.done || l.loading {
		return
	}
	l.assets = assets
}

// Start begins the one-shot fetch. It is idempotent: once a fetch has
// succeeded, or while one is in flight, it reports ok=false and no new
// fetch should be issued.
func (l *Loader) Start() (generation int, ok bool) {
	if l.done || l.loading {
		return 0, false
	}
	return l.begin(), true
}

// Refetch forces a new fetch even after success. Only an in-flight
// fetch blocks it.
func (l *Loader) Refetch() (generation int, ok bool) {
	if l.loading {
		return 0, false
	}
	return l.begin(), true
}

func (l *Loader) begin() int {
	l.loading = true
	l.errMsg = ""
	l.generation++
	return l.generation
}

// Finish applies a fetch result. Results from superseded generations
// are dropped. On failure the asset list is cleared and the one-shot
// flag stays unset so a later Refetch can retry.
func (l *Loader) Finish(generation int, assets []registry.Asset, err error) bool {
	if generation != l.generation {
		return false
	}
	l.loading = false
	if err != nil {
		l.assets = nil
		l.errMsg = err.Error()
		l.done = false
		return true
	}
	l.assets = assets
	l.errMsg = ""
	l.done = true
	return true
}
