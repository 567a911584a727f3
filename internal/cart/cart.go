package cart

import (
	"github.com/shopspring/decimal"
)

// LineItem is one product entry in the cart. The unit price is the
// price resolved at add time (promotional when one applied) and does
// not change on later quantity updates.
type LineItem struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"price"`
	ImageRef  string          `json:"image"`
	Quantity  int             `json:"quantity"`
}

// LineTotal returns unit price times quantity.
func (li LineItem) LineTotal() decimal.Decimal {
	return li.UnitPrice.Mul(decimal.NewFromInt(int64(li.Quantity)))
}

// Cart is an ordered sequence of line items, at most one per product
// id, insertion order preserved for display. All operations are pure:
// they return a new Cart and leave the receiver untouched.
type Cart struct {
	Items []LineItem
}

// Add increments the quantity of an existing line item by one, or
// appends a new line item with quantity one.
func (c Cart) Add(item LineItem) Cart {
	next := c.clone()
	for i := range next.Items {
		if next.Items[i].ID == item.ID {
			next.Items[i].Quantity++
			return next
		}
	}
	item.Quantity = 1
	next.Items = append(next.Items, item)
	return next
}

// ChangeQuantity adds delta (possibly negative) to the quantity of the
// item with the given id. An absent id is a no-op. A resulting
// quantity of zero or below removes the item entirely.
func (c Cart) ChangeQuantity(id string, delta int) Cart {
	next := c.clone()
	for i := range next.Items {
		if next.Items[i].ID != id {
			continue
		}
		next.Items[i].Quantity += delta
		if next.Items[i].Quantity <= 0 {
			next.Items = append(next.Items[:i], next.Items[i+1:]...)
		}
		return next
	}
	return next
}

// Remove deletes the matching item. An absent id is a no-op, not an
// error.
func (c Cart) Remove(id string) Cart {
	next := c.clone()
	for i := range next.Items {
		if next.Items[i].ID == id {
			next.Items = append(next.Items[:i], next.Items[i+1:]...)
			return next
		}
	}
	return next
}

// Clear empties the cart unconditionally.
func (c Cart) Clear() Cart {
	return Cart{}
}

// Find returns the line item with the given id.
func (c Cart) Find(id string) (LineItem, bool) {
	for _, item := range c.Items {
		if item.ID == id {
			return item, true
		}
	}
	return LineItem{}, false
}

// IsEmpty reports whether the cart holds no line items.
func (c Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

// ItemCount is the sum of quantities across line items.
func (c Cart) ItemCount() int {
	var count int
	for _, item := range c.Items {
		count += item.Quantity
	}
	return count
}

// Subtotal is the sum of unit price times quantity over line items.
func (c Cart) Subtotal() decimal.Decimal {
	total := decimal.Zero
	for _, item := range c.Items {
		total = total.Add(item.LineTotal())
	}
	return total
}

// GrandTotal is subtotal plus the flat delivery fee. An empty cart has
// a zero grand total; the fee applies only when there is something to
// deliver.
func (c Cart) GrandTotal(deliveryFee decimal.Decimal) decimal.Decimal {
	if c.IsEmpty() {
		return decimal.Zero
	}
	return c.Subtotal().Add(deliveryFee)
}

func (c Cart) clone() Cart {
	if len(c.Items) == 0 {
		return Cart{}
	}
	items := make([]LineItem, len(c.Items))
	copy(items, c.Items)
	return Cart{Items: items}
}
