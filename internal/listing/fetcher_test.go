package listing

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/MikeMC777/motoshop/internal/api"
	"github.com/MikeMC777/motoshop/internal/motorcycle"
)

// gatedLister devuelve resultados por título y bloquea los títulos "slow"
// hasta que se libere el gate, ignorando la cancelación del contexto.
type gatedLister struct {
	mu        sync.Mutex
	started   chan string
	gate      chan struct{}
	cancelled map[string]bool
}

func newGatedLister() *gatedLister {
	return &gatedLister{started: make(chan string, 4), gate: make(chan struct{}), cancelled: map[string]bool{}}
}

func (g *gatedLister) List(ctx context.Context, f motorcycle.Filter) ([]motorcycle.Motorcycle, error) {
	title := ""
	if f.Title != nil {
		title = *f.Title
	}
	g.started <- title
	if title == "slow" {
		<-g.gate
		g.mu.Lock()
		g.cancelled[title] = ctx.Err() != nil
		g.mu.Unlock()
	}
	return []motorcycle.Motorcycle{{ID: title, Title: title}}, nil
}

func title(s string) motorcycle.Filter { return motorcycle.Filter{Title: &s} }

func TestFetch_LastIssuedWins(t *testing.T) {
	src := newGatedLister()
	fe := NewFetcher(src)

	slowDone := make(chan error, 1)
	go func() {
		_, err := fe.Fetch(context.Background(), title("slow"))
		slowDone <- err
	}()
	<-src.started // C1 en vuelo

	items, err := fe.Fetch(context.Background(), title("fast"))
	if err != nil || len(items) != 1 || items[0].ID != "fast" {
		t.Fatalf("C2: items=%+v err=%v", items, err)
	}
	<-src.started

	close(src.gate) // C1 resuelve después de C2
	select {
	case err := <-slowDone:
		if !errors.Is(err, ErrSuperseded) {
			t.Fatalf("C1 debía descartarse, err=%v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("C1 nunca terminó")
	}

	snap := fe.Snapshot()
	if snap.Loading || len(snap.Items) != 1 || snap.Items[0].ID != "fast" {
		t.Fatalf("snapshot final debe ser el de C2: %+v", snap)
	}
	src.mu.Lock()
	defer src.mu.Unlock()
	if !src.cancelled["slow"] {
		t.Fatal("el contexto de C1 debía cancelarse")
	}
}

type fixedLister struct {
	items []motorcycle.Motorcycle
	err   error
	calls []motorcycle.Filter
}

func (l *fixedLister) List(ctx context.Context, f motorcycle.Filter) ([]motorcycle.Motorcycle, error) {
	l.calls = append(l.calls, f)
	return l.items, l.err
}

func TestFetch_FormatErrorYieldsEmpty(t *testing.T) {
	fe := NewFetcher(&fixedLister{items: []motorcycle.Motorcycle{}, err: &api.FormatError{Path: "/motorcycles"}})

	items, err := fe.Fetch(context.Background(), motorcycle.Filter{})
	var formatErr *api.FormatError
	if !errors.As(err, &formatErr) {
		t.Fatalf("esperaba FormatError, got %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("esperaba colección vacía: %+v", items)
	}
	if snap := fe.Snapshot(); snap.Err == nil || snap.Loading {
		t.Fatalf("snapshot inesperado: %+v", snap)
	}
}

func TestFetch_NotifiesLoadingThenResult(t *testing.T) {
	src := &fixedLister{items: []motorcycle.Motorcycle{{ID: "1"}}}
	fe := NewFetcher(src)
	var seen []Snapshot
	fe.OnChange = func(s Snapshot) { seen = append(seen, s) }

	if _, err := fe.Fetch(context.Background(), title("honda")); err != nil {
		t.Fatal(err)
	}
	if len(seen) != 2 || !seen[0].Loading || seen[1].Loading || len(seen[1].Items) != 1 {
		t.Fatalf("notificaciones inesperadas: %+v", seen)
	}
}

func TestRefresh_ReusesFilter(t *testing.T) {
	src := &fixedLister{}
	fe := NewFetcher(src)
	_, _ = fe.Fetch(context.Background(), title("bmw"))
	_, _ = fe.Refresh(context.Background())
	if len(src.calls) != 2 || *src.calls[1].Title != "bmw" {
		t.Fatalf("refresh con filtro distinto: %+v", src.calls)
	}
}

func TestClose_DiscardsInFlight(t *testing.T) {
	src := newGatedLister()
	fe := NewFetcher(src)

	done := make(chan error, 1)
	go func() {
		_, err := fe.Fetch(context.Background(), title("slow"))
		done <- err
	}()
	<-src.started
	fe.Close()
	close(src.gate)

	if err := <-done; !errors.Is(err, ErrSuperseded) {
		t.Fatalf("err=%v", err)
	}
	if snap := fe.Snapshot(); len(snap.Items) != 0 {
		t.Fatalf("no debía aplicarse el resultado: %+v", snap)
	}
}

func TestClose_ClearsLoading(t *testing.T) {
	src := newGatedLister()
	fe := NewFetcher(src)

	done := make(chan error, 1)
	go func() {
		_, err := fe.Fetch(context.Background(), title("slow"))
		done <- err
	}()
	<-src.started
	if !fe.Snapshot().Loading {
		t.Fatal("esperaba loading durante el fetch")
	}
	fe.Close()
	if fe.Snapshot().Loading {
		t.Fatal("loading debe quedar en false tras Close")
	}
	close(src.gate)
	<-done
	if fe.Snapshot().Loading {
		t.Fatal("el resultado descartado no debe reactivar loading")
	}
}
