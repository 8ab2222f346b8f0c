package feed

import (
	"time"

	"github.com/vtorres/timeline-cli/internal/registry"
)

const (
	// PageSize is the fixed number of assets revealed per advance.
	PageSize = 10

	// SettleDelay is how long an advance waits before taking effect,
	// covering render latency so rapid triggers coalesce visibly.
	SettleDelay = 400 * time.Millisecond

	// BottomThreshold is the distance from the end of the content, in
	// host scroll units, at which an advance should be triggered.
	BottomThreshold = 1000
)

// Paginator tracks how much of the filtered list is revealed. Advancing
// is a two-step protocol: Begin marks an advance in flight (rejecting
// concurrent triggers), and Complete applies it after the settle delay.
type Paginator struct {
	page      int
	hasMore   bool
	advancing bool
}

func NewPaginator() Paginator {
	return Paginator{page: 1, hasMore: true}
}

func (p Paginator) Page() int       { return p.page }
func (p Paginator) HasMore() bool   { return p.hasMore }
func (p Paginator) Advancing() bool { return p.advancing }

// VisibleCount caps the revealed window at the filtered total.
func (p Paginator) VisibleCount(total int) int {
	count := p.page * PageSize
	if count > total {
		count = total
	}
	if count < 0 {
		count = 0
	}
	return count
}

// Begin reports whether a new advance may start. It returns false while
// one is already in flight or when no more pages remain.
func (p *Paginator) Begin() bool {
	if p.advancing || !p.hasMore {
		return false
	}
	p.advancing = true
	return true
}

// Complete finishes an in-flight advance against the current filtered
// total: the page count grows only if that reveals at least one new
// item, otherwise hasMore flips false. The in-flight flag always clears.
func (p *Paginator) Complete(total int) bool {
	p.advancing = false
	if p.page*PageSize >= total {
		p.hasMore = false
		return false
	}
	p.page++
	return true
}

// Reset returns to the first page. Called whenever the filter
// configuration changes, regardless of whether the result set did.
func (p *Paginator) Reset() {
	p.page = 1
	p.hasMore = true
	p.advancing = false
}

// Visible slices the filtered list down to the currently revealed window.
func Visible(filtered []registry.Asset, p Paginator) []registry.Asset {
	return filtered[:p.VisibleCount(len(filtered))]
}

// NearEnd reports whether a viewport scrolled to offset is within
// threshold units of the end of the content. Hosts that track rows
// instead of pixels pass row coordinates and a row threshold.
func NearEnd(offset, viewport, content, threshold int) bool {
	return offset+viewport >= content-threshold
}
