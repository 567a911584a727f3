package storefront

import (
	"sync"
	"time"

	"github.com/freshmartapp/freshmart-backend/internal/catalog"
)

// SearchBox models the header search field: it holds the live query
// and recomputes suggestions only after typing pauses, so a burst of
// keystrokes costs a single catalog scan.
type SearchBox struct {
	mu          sync.Mutex
	query       string
	suggestions []catalog.Entry

	catalog  *catalog.Service
	debounce *catalog.Debouncer
}

// NewSearchBox builds a search box over the catalog with the given
// debounce interval.
func NewSearchBox(svc *catalog.Service, delay time.Duration) *SearchBox {
	return &SearchBox{
		catalog:  svc,
		debounce: catalog.NewDebouncer(delay),
	}
}

// SetQuery records the latest keystroke state and schedules a
// suggestion recompute. Each call supersedes the pending recompute. A
// blank query clears suggestions immediately and cancels any pending
// work.
func (b *SearchBox) SetQuery(query string) {
	b.mu.Lock()
	b.query = query
	b.mu.Unlock()

	if query == "" {
		b.debounce.Stop()
		b.mu.Lock()
		b.suggestions = nil
		b.mu.Unlock()
		return
	}

	b.debounce.Schedule(func() {
		matches := b.catalog.Search(query)

		b.mu.Lock()
		defer b.mu.Unlock()
		// A newer query may have landed while this one was pending.
		if b.query == query {
			b.suggestions = matches
		}
	})
}

// Suggestions returns the current query and its computed suggestions.
func (b *SearchBox) Suggestions() (string, []catalog.Entry) {
	b.mu.Lock()
	defer b.mu.Unlock()

	out := make([]catalog.Entry, len(b.suggestions))
	copy(out, b.suggestions)
	return b.query, out
}

// Close cancels any pending recompute.
func (b *SearchBox) Close() {
	b.debounce.Stop()
}
