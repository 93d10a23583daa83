package domain

import "github.com/shopspring/decimal"

// Pricing constants. DeliveryFee applies to any non-empty cart; TaxRate is
// applied to the subtotal and rounded to the nearest whole currency unit.
var (
	DeliveryFee = decimal.NewFromInt(29)
	TaxRate     = decimal.NewFromFloat(0.05)
)

// CartItem is one line of the in-progress order.
type CartItem struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Quantity int             `json:"quantity"`
}

// LineTotal is Price multiplied by Quantity.
func (i CartItem) LineTotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// PendingAddition holds an attempted addition from a restaurant other than
// the one the cart currently belongs to. It is UI-transient and never
// persisted.
type PendingAddition struct {
	Item           CartItem
	RestaurantID   string
	RestaurantName string
}

// Cart is the in-progress order. All items belong to RestaurantID; when the
// item list is empty the restaurant identity is cleared. Transitions are pure
// value-to-value functions so they can be tested without a storage
// dependency.
type Cart struct {
	Items          []CartItem
	RestaurantID   string
	RestaurantName string
	Pending        *PendingAddition
	ConflictOpen   bool
}

// Totals are the derived pricing values. They are recomputed on demand and
// never stored.
type Totals struct {
	TotalItems  int
	Subtotal    decimal.Decimal
	DeliveryFee decimal.Decimal
	Taxes       decimal.Decimal
	Total       decimal.Decimal
}

// Empty reports whether the cart holds no items.
func (c Cart) Empty() bool { return len(c.Items) == 0 }

// Quantity returns the quantity of the item with the given id, or 0 when the
// item is not in the cart.
func (c Cart) Quantity(itemID string) int {
	for _, it := range c.Items {
		if it.ID == itemID {
			return it.Quantity
		}
	}
	return 0
}

// Add inserts item at quantity 1, or bumps its quantity when already present.
// An addition from a different restaurant than the cart's current one does
// not touch the items; it parks the attempt in Pending and raises
// ConflictOpen so the caller can prompt the user. A cart can only be
// fulfilled by a single restaurant.
func (c Cart) Add(item CartItem, restaurantID, restaurantName string) Cart {
	if c.RestaurantID != "" && c.RestaurantID != restaurantID {
		c.Pending = &PendingAddition{Item: item, RestaurantID: restaurantID, RestaurantName: restaurantName}
		c.ConflictOpen = true
		return c
	}

	items := cloneItems(c.Items)
	found := false
	for i := range items {
		if items[i].ID == item.ID {
			items[i].Quantity++
			found = true
			break
		}
	}
	if !found {
		item.Quantity = 1
		items = append(items, item)
	}

	c.Items = items
	c.RestaurantID = restaurantID
	c.RestaurantName = restaurantName
	c.Pending = nil
	c.ConflictOpen = false
	return c
}

// ResolveConflict settles a pending cross-restaurant addition. Confirming
// discards the current items and starts a fresh cart holding only the pending
// item at quantity 1; rejecting leaves the cart untouched. Either way the
// conflict state is cleared.
func (c Cart) ResolveConflict(confirm bool) Cart {
	pending := c.Pending
	c.Pending = nil
	c.ConflictOpen = false
	if !confirm || pending == nil {
		return c
	}

	item := pending.Item
	item.Quantity = 1
	return Cart{
		Items:          []CartItem{item},
		RestaurantID:   pending.RestaurantID,
		RestaurantName: pending.RestaurantName,
	}
}

// Increase bumps the quantity of the matching item. Missing items are a
// no-op.
func (c Cart) Increase(itemID string) Cart {
	items := cloneItems(c.Items)
	for i := range items {
		if items[i].ID == itemID {
			items[i].Quantity++
			break
		}
	}
	c.Items = items
	return c
}

// Decrease lowers the quantity of the matching item, removing it when it
// reaches zero. Quantities never drop below 1 while an item is present.
func (c Cart) Decrease(itemID string) Cart {
	items := make([]CartItem, 0, len(c.Items))
	for _, it := range c.Items {
		if it.ID == itemID {
			it.Quantity--
			if it.Quantity <= 0 {
				continue
			}
		}
		items = append(items, it)
	}
	return c.withItems(items)
}

// Remove drops the matching item regardless of quantity.
func (c Cart) Remove(itemID string) Cart {
	items := make([]CartItem, 0, len(c.Items))
	for _, it := range c.Items {
		if it.ID != itemID {
			items = append(items, it)
		}
	}
	return c.withItems(items)
}

// Clear resets to the empty-cart state. Used after successful order
// placement and for the explicit clear action.
func (c Cart) Clear() Cart { return Cart{} }

// Totals derives item count and pricing. Taxes are TaxRate of the subtotal
// rounded half-up to a whole currency unit; the delivery fee applies only to
// non-empty carts.
func (c Cart) Totals() Totals {
	t := Totals{
		Subtotal:    decimal.Zero,
		DeliveryFee: decimal.Zero,
		Taxes:       decimal.Zero,
	}
	for _, it := range c.Items {
		t.TotalItems += it.Quantity
		t.Subtotal = t.Subtotal.Add(it.LineTotal())
	}
	if t.Subtotal.IsPositive() {
		t.DeliveryFee = DeliveryFee
		t.Taxes = t.Subtotal.Mul(TaxRate).Round(0)
	}
	t.Total = t.Subtotal.Add(t.DeliveryFee).Add(t.Taxes)
	return t
}

// withItems swaps the item list, clearing the restaurant identity when the
// list became empty.
func (c Cart) withItems(items []CartItem) Cart {
	c.Items = items
	if len(items) == 0 {
		c.RestaurantID = ""
		c.RestaurantName = ""
	}
	return c
}

func cloneItems(items []CartItem) []CartItem {
	out := make([]CartItem, len(items))
	copy(out, items)
	return out
}
