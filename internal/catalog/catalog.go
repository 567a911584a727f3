package catalog

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Entry is a static, read-only product record used for display and for
// pricing an add-to-cart action.
type Entry struct {
	ID           string           `json:"id"`
	Name         string           `json:"name"`
	ImageRef     string           `json:"image"`
	RegularPrice decimal.Decimal  `json:"regular_price"`
	PromoPrice   *decimal.Decimal `json:"promo_price,omitempty"`
	WeightLabel  string           `json:"weight_label"`
	Category     string           `json:"category"`
}

// OnPromo reports whether the entry carries a promotional price below
// the regular one.
func (e Entry) OnPromo() bool {
	return e.PromoPrice != nil && e.PromoPrice.LessThan(e.RegularPrice)
}

// CurrentPrice is the price charged per unit right now: the promo
// price when one applies, the regular price otherwise.
func (e Entry) CurrentPrice() decimal.Decimal {
	if e.OnPromo() {
		return *e.PromoPrice
	}
	return e.RegularPrice
}

// Offer is a catalog entry selected for the offers grid, tagged with
// its discount percentage and display label.
type Offer struct {
	Entry
	DiscountPercent int64
	Label           string
}

// Options configures the catalog projections.
type Options struct {
	// LabelOverrides maps product ids to a custom offer label that
	// replaces the computed "N% OFF" text.
	LabelOverrides  map[string]string
	OfferLimit      int
	SuggestionLimit int
}

// Service serves the static catalog and its projections.
type Service struct {
	entries         []Entry
	index           map[string]int
	overrides       map[string]string
	offerLimit      int
	suggestionLimit int
}

// NewService builds the catalog service over the provided entries.
func NewService(entries []Entry, opts Options) (*Service, error) {
	if len(entries) == 0 {
		return nil, fmt.Errorf("catalog entries required")
	}
	if opts.OfferLimit <= 0 {
		opts.OfferLimit = 6
	}
	if opts.SuggestionLimit <= 0 {
		opts.SuggestionLimit = 6
	}

	index := make(map[string]int, len(entries))
	for i, entry := range entries {
		if strings.TrimSpace(entry.ID) == "" {
			return nil, fmt.Errorf("catalog entry %d has no id", i)
		}
		if _, dup := index[entry.ID]; dup {
			return nil, fmt.Errorf("duplicate catalog id %q", entry.ID)
		}
		index[entry.ID] = i
	}

	return &Service{
		entries:         entries,
		index:           index,
		overrides:       opts.LabelOverrides,
		offerLimit:      opts.OfferLimit,
		suggestionLimit: opts.SuggestionLimit,
	}, nil
}

// All returns every catalog entry in display order.
func (s *Service) All() []Entry {
	out := make([]Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Get returns the entry with the given id.
func (s *Service) Get(id string) (Entry, bool) {
	i, ok := s.index[id]
	if !ok {
		return Entry{}, false
	}
	return s.entries[i], true
}

// Offers selects the entries currently on promotion, capped to the
// configured count. The label is the rounded discount percentage, or
// the configured override for that product.
func (s *Service) Offers() []Offer {
	offers := make([]Offer, 0, s.offerLimit)
	for _, entry := range s.entries {
		if !entry.OnPromo() {
			continue
		}
		pct := discountPercent(entry.RegularPrice, *entry.PromoPrice)
		label := fmt.Sprintf("%d%% OFF", pct)
		if override, ok := s.overrides[entry.ID]; ok {
			label = override
		}
		offers = append(offers, Offer{Entry: entry, DiscountPercent: pct, Label: label})
		if len(offers) == s.offerLimit {
			break
		}
	}
	return offers
}

// Search returns entries whose name or category contains the query,
// case-insensitively, capped to the configured count. An empty query
// matches nothing.
func (s *Service) Search(query string) []Entry {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}

	var matches []Entry
	for _, entry := range s.entries {
		if strings.Contains(strings.ToLower(entry.Name), q) ||
			strings.Contains(strings.ToLower(entry.Category), q) {
			matches = append(matches, entry)
			if len(matches) == s.suggestionLimit {
				break
			}
		}
	}
	return matches
}

func discountPercent(regular, promo decimal.Decimal) int64 {
	if regular.IsZero() {
		return 0
	}
	return regular.Sub(promo).
		Div(regular).
		Mul(decimal.NewFromInt(100)).
		Round(0).
		IntPart()
}
