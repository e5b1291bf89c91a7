// Package listing loads the motorcycle collection for the current filter.
// Results are applied in the order fetches were issued: a fetch overtaken
// by a newer one is cancelled and its result discarded.
package listing

import (
	"context"
	"errors"
	"sync"

	"github.com/MikeMC777/motoshop/internal/motorcycle"
)

// ErrSuperseded is returned by a fetch whose result was discarded because
// a newer fetch was issued (or the fetcher was closed) before it finished.
var ErrSuperseded = errors.New("listing fetch superseded")

// Lister is satisfied by *motorcycle.Client.
type Lister interface {
	List(ctx context.Context, f motorcycle.Filter) ([]motorcycle.Motorcycle, error)
}

// Snapshot is the visible state of the listing.
type Snapshot struct {
	Generation uint64
	Filter     motorcycle.Filter
	Items      []motorcycle.Motorcycle
	Loading    bool
	Err        error
}

type Fetcher struct {
	src Lister

	// OnChange, when set, receives every applied snapshot.
	OnChange func(Snapshot)

	mu     sync.Mutex
	gen    uint64
	cancel context.CancelFunc
	snap   Snapshot
}

func NewFetcher(src Lister) *Fetcher { return &Fetcher{src: src} }

// Fetch loads the listing for f. Only the most recently issued fetch may
// change the snapshot; older ones return ErrSuperseded.
func (fe *Fetcher) Fetch(ctx context.Context, f motorcycle.Filter) ([]motorcycle.Motorcycle, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	fe.mu.Lock()
	fe.gen++
	gen := fe.gen
	if fe.cancel != nil {
		fe.cancel()
	}
	fe.cancel = cancel
	loading := Snapshot{Generation: gen, Filter: f, Items: fe.snap.Items, Loading: true}
	fe.snap = loading
	fe.mu.Unlock()
	fe.notify(loading)

	items, err := fe.src.List(ctx, f)

	fe.mu.Lock()
	if gen != fe.gen {
		fe.mu.Unlock()
		return nil, ErrSuperseded
	}
	fe.cancel = nil
	done := Snapshot{Generation: gen, Filter: f, Items: items, Err: err}
	fe.snap = done
	fe.mu.Unlock()
	fe.notify(done)

	return items, err
}

// Refresh repeats the last fetch with the same filter.
func (fe *Fetcher) Refresh(ctx context.Context) ([]motorcycle.Motorcycle, error) {
	return fe.Fetch(ctx, fe.Snapshot().Filter)
}

// Close cancels the in-flight fetch and discards its result.
func (fe *Fetcher) Close() {
	fe.mu.Lock()
	defer fe.mu.Unlock()
	fe.gen++
	if fe.cancel != nil {
		fe.cancel()
		fe.cancel = nil
	}
	fe.snap.Loading = false
}

func (fe *Fetcher) Snapshot() Snapshot {
	fe.mu.Lock()
	defer fe.mu.Unlock()
	return fe.snap
}

func (fe *Fetcher) notify(s Snapshot) {
	if fe.OnChange != nil {
		fe.OnChange(s)
	}
}
