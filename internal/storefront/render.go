package storefront

import (
	"github.com/shopspring/decimal"

	"github.com/freshmartapp/freshmart-backend/internal/cart"
	"github.com/freshmartapp/freshmart-backend/internal/catalog"
	"github.com/freshmartapp/freshmart-backend/internal/notices"
	"github.com/freshmartapp/freshmart-backend/internal/session"
)

// NoResultsLabel is the placeholder suggestion shown when a query
// matches nothing.
const NoResultsLabel = "No results found"

// CartLineView is one rendered cart row.
type CartLineView struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	ImageRef  string `json:"image"`
	Quantity  int    `json:"quantity"`
	UnitPrice string `json:"unit_price"`
	LineTotal string `json:"line_total"`
}

// CartView is the rendered cart panel: rows plus derived totals, all
// prices formatted to two decimal places.
type CartView struct {
	Items       []CartLineView `json:"items"`
	ItemCount   int            `json:"item_count"`
	Subtotal    string         `json:"subtotal"`
	DeliveryFee string         `json:"delivery_fee"`
	GrandTotal  string         `json:"grand_total"`
	IsEmpty     bool           `json:"is_empty"`
}

// ProductView is a rendered catalog card.
type ProductView struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	ImageRef     string `json:"image"`
	Price        string `json:"price"`
	RegularPrice string `json:"regular_price"`
	OnPromo      bool   `json:"on_promo"`
	WeightLabel  string `json:"weight_label"`
	Category     string `json:"category"`
}

// OfferView is a rendered offers-grid card.
type OfferView struct {
	ProductView
	Label           string `json:"label"`
	DiscountPercent int64  `json:"discount_percent"`
}

// SuggestionView is one search suggestion row. A placeholder row
// carries only the "no results" label.
type SuggestionView struct {
	ID          string `json:"id,omitempty"`
	Name        string `json:"name"`
	Price       string `json:"price,omitempty"`
	Placeholder bool   `json:"placeholder,omitempty"`
}

// SuggestionsView is the rendered suggestion dropdown for a query.
type SuggestionsView struct {
	Query string           `json:"query"`
	Items []SuggestionView `json:"items"`
}

// SessionView is the rendered header account state.
type SessionView struct {
	IsLoggedIn bool   `json:"is_logged_in"`
	Name       string `json:"name,omitempty"`
	Email      string `json:"email,omitempty"`
}

// ModalView is the rendered auth-modal state.
type ModalView struct {
	Pane     string        `json:"pane"`
	Login    LoginDraft    `json:"login"`
	Register RegisterDraft `json:"register"`
}

// PageView is the whole storefront page in one projection.
type PageView struct {
	Cart    CartView         `json:"cart"`
	Catalog []ProductView    `json:"catalog"`
	Offers  []OfferView      `json:"offers"`
	Session SessionView      `json:"session"`
	Modal   ModalView        `json:"modal"`
	Notices []notices.Notice `json:"notices"`
}

// Renderer projects domain state into view models. Every method is a
// pure function of its inputs plus the fixed delivery fee; rendering
// never mutates state.
type Renderer struct {
	deliveryFee decimal.Decimal
}

// NewRenderer builds a renderer with the flat delivery fee.
func NewRenderer(deliveryFee decimal.Decimal) *Renderer {
	return &Renderer{deliveryFee: deliveryFee}
}

// CartView renders the cart panel.
func (r *Renderer) CartView(c cart.Cart) CartView {
	items := make([]CartLineView, 0, len(c.Items))
	for _, item := range c.Items {
		items = append(items, CartLineView{
			ID:        item.ID,
			Name:      item.Name,
			ImageRef:  item.ImageRef,
			Quantity:  item.Quantity,
			UnitPrice: money(item.UnitPrice),
			LineTotal: money(item.LineTotal()),
		})
	}
	return CartView{
		Items:       items,
		ItemCount:   c.ItemCount(),
		Subtotal:    money(c.Subtotal()),
		DeliveryFee: money(r.deliveryFee),
		GrandTotal:  money(c.GrandTotal(r.deliveryFee)),
		IsEmpty:     c.IsEmpty(),
	}
}

// CatalogView renders the product grid.
func (r *Renderer) CatalogView(entries []catalog.Entry) []ProductView {
	out := make([]ProductView, 0, len(entries))
	for _, entry := range entries {
		out = append(out, productView(entry))
	}
	return out
}

// OffersView renders the offers grid.
func (r *Renderer) OffersView(offers []catalog.Offer) []OfferView {
	out := make([]OfferView, 0, len(offers))
	for _, offer := range offers {
		out = append(out, OfferView{
			ProductView:     productView(offer.Entry),
			Label:           offer.Label,
			DiscountPercent: offer.DiscountPercent,
		})
	}
	return out
}

// SuggestionsView renders the suggestion dropdown. A non-empty query
// with no matches yields the single "no results" placeholder row; an
// empty query yields no rows at all.
func (r *Renderer) SuggestionsView(query string, entries []catalog.Entry) SuggestionsView {
	view := SuggestionsView{Query: query}
	if len(entries) == 0 {
		if query != "" {
			view.Items = []SuggestionView{{Name: NoResultsLabel, Placeholder: true}}
		}
		return view
	}
	for _, entry := range entries {
		view.Items = append(view.Items, SuggestionView{
			ID:    entry.ID,
			Name:  entry.Name,
			Price: money(entry.CurrentPrice()),
		})
	}
	return view
}

// SessionView renders the header account state.
func (r *Renderer) SessionView(state session.State) SessionView {
	view := SessionView{IsLoggedIn: state.IsAuthenticated}
	if state.CurrentUser != nil {
		view.Name = state.CurrentUser.DisplayName
		view.Email = state.CurrentUser.Email
	}
	return view
}

// ModalView renders the auth-modal state.
func (r *Renderer) ModalView(state ModalState) ModalView {
	return ModalView{
		Pane:     string(state.Pane),
		Login:    state.Login,
		Register: state.Register,
	}
}

// PageView composes the full storefront page projection.
func (r *Renderer) PageView(
	c cart.Cart,
	entries []catalog.Entry,
	offers []catalog.Offer,
	sess session.State,
	modal ModalState,
	active []notices.Notice,
) PageView {
	return PageView{
		Cart:    r.CartView(c),
		Catalog: r.CatalogView(entries),
		Offers:  r.OffersView(offers),
		Session: r.SessionView(sess),
		Modal:   r.ModalView(modal),
		Notices: active,
	}
}

func productView(entry catalog.Entry) ProductView {
	return ProductView{
		ID:           entry.ID,
		Name:         entry.Name,
		ImageRef:     entry.ImageRef,
		Price:        money(entry.CurrentPrice()),
		RegularPrice: money(entry.RegularPrice),
		OnPromo:      entry.OnPromo(),
		WeightLabel:  entry.WeightLabel,
		Category:     entry.Category,
	}
}

func money(d decimal.Decimal) string {
	return d.StringFixed(2)
}
