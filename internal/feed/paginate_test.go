package feed

import (
	"fmt"
	"testing"

	"github.com/vtorres/timeline-cli/internal/registry"
)

func assetsOfSize(n int) []registry.Asset {
	out := make([]registry.Asset, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, registry.Asset{ID: fmt.Sprintf("a%d", i)})
	}
	return out
}

func advance(t *testing.T, p *Paginator, total int) bool {
	t.Helper()
	if !p.Begin() {
		t.Fatal("expected advance to start")
	}
	return p.Complete(total)
}

func TestPaginator_WalksA25ItemList(t *testing.T) {
	filtered := assetsOfSize(25)
	p := NewPaginator()

	if got := len(Visible(filtered, p)); got != 10 {
		t.Fatalf("page 1: expected 10 visible, got %d", got)
	}

	if !advance(t, &p, len(filtered)) {
		t.Fatal("expected first advance to add items")
	}
	if got := len(Visible(filtered, p)); got != 20 {
		t.Fatalf("page 2: expected 20 visible, got %d", got)
	}

	if !advance(t, &p, len(filtered)) {
		t.Fatal("expected second advance to add items")
	}
	if got := len(Visible(filtered, p)); got != 25 {
		t.Fatalf("page 3: expected 25 visible, got %d", got)
	}
	if !p.HasMore() {
		t.Fatal("hasMore should still be true before the empty advance")
	}

	if advance(t, &p, len(filtered)) {
		t.Fatal("expected exhausted advance to add nothing")
	}
	if p.HasMore() {
		t.Fatal("hasMore should flip false once an advance yields nothing")
	}
	if got := len(Visible(filtered, p)); got != 25 {
		t.Fatalf("visible count changed on exhausted advance: %d", got)
	}
	if p.Page() != 3 {
		t.Fatalf("page count changed on exhausted advance: %d", p.Page())
	}

	if p.Begin() {
		t.Fatal("expected Begin to refuse once no pages remain")
	}
}

func TestPaginator_CoalescesConcurrentTriggers(t *testing.T) {
	p := NewPaginator()

	if !p.Begin() {
		t.Fatal("first trigger should start an advance")
	}
	for i := 0; i < 5; i++ {
		if p.Begin() {
			t.Fatal("trigger while in flight should be a no-op")
		}
	}
	p.Complete(25)

	if p.Page() != 2 {
		t.Fatalf("expected exactly one increment, got page %d", p.Page())
	}
}

func TestPaginator_Reset(t *testing.T) {
	p := NewPaginator()
	advance(t, &p, 25)
	advance(t, &p, 25)
	advance(t, &p, 25) // flips hasMore

	p.Reset()
	if p.Page() != 1 || !p.HasMore() || p.Advancing() {
		t.Fatalf("unexpected state after reset: %+v", p)
	}
}

func TestPaginator_CompleteAgainstShrunkenList(t *testing.T) {
	p := NewPaginator()
	advance(t, &p, 25) // page 2

	// The filtered set shrank below the revealed window before the
	// in-flight advance settled.
	if !p.Begin() {
		t.Fatal("expected advance to start")
	}
	if p.Complete(12) {
		t.Fatal("expected no increment when the window already covers the list")
	}
	if p.HasMore() {
		t.Fatal("expected hasMore false")
	}
	if p.Page() != 2 {
		t.Fatalf("page changed: %d", p.Page())
	}
}

func TestVisibleCount_CapsAtTotal(t *testing.T) {
	p := NewPaginator()
	if got := p.VisibleCount(4); got != 4 {
		t.Fatalf("expected cap at 4, got %d", got)
	}
	if got := p.VisibleCount(0); got != 0 {
		t.Fatalf("expected 0 for empty list, got %d", got)
	}
}

func TestNearEnd(t *testing.T) {
	if !NearEnd(3000, 800, 4500, 1000) {
		t.Fatal("expected near-end trigger within threshold")
	}
	if NearEnd(0, 800, 4500, 1000) {
		t.Fatal("did not expect trigger far from the end")
	}
	if !NearEnd(0, 10, 5, 1) {
		t.Fatal("expected trigger when content fits the viewport")
	}
}
