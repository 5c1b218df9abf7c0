// Package cart implements the visitor shopping cart as an immutable value.
// Every operation returns a new Cart and leaves the receiver untouched.
package cart

import (
	"math"
	"sort"

	"github.com/shopspring/decimal"

	domainErrors "github.com/polkiloo/storefront/internal/domain/errors"
)

// MaxQuantity bounds a single line so it fits the order_items.quantity column.
const MaxQuantity = math.MaxInt32

// Item is a single cart line keyed by product id.
type Item struct {
	ProductID string          `json:"product_id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Quantity  int             `json:"quantity"`
}

// Subtotal is price multiplied by quantity.
func (i Item) Subtotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Product is the catalog snapshot captured when a line is first added.
type Product struct {
	ID    string
	Name  string
	Price decimal.Decimal
}

// Cart maps product ids to lines.
type Cart struct {
	Items map[string]Item `json:"items"`
}

// Totals are the aggregates shown next to the cart icon.
type Totals struct {
	Count int
	Total decimal.Decimal
}

// New returns an empty cart.
func New() Cart {
	return Cart{Items: map[string]Item{}}
}

func (c Cart) clone() Cart {
	items := make(map[string]Item, len(c.Items)+1)
	for id, item := range c.Items {
		items[id] = item
	}
	return Cart{Items: items}
}

// Add accumulates quantity for a known product or inserts a new line with
// the product's current name and price. A line may not grow past MaxQuantity.
func (c Cart) Add(p Product, quantity int) (Cart, error) {
	if quantity <= 0 || quantity > MaxQuantity {
		return c, domainErrors.ErrInvalidQuantity
	}
	if item, ok := c.Items[p.ID]; ok && item.Quantity > MaxQuantity-quantity {
		return c, domainErrors.ErrInvalidQuantity
	}
	next := c.clone()
	if item, ok := next.Items[p.ID]; ok {
		item.Quantity += quantity
		next.Items[p.ID] = item
		return next, nil
	}
	next.Items[p.ID] = Item{ProductID: p.ID, Name: p.Name, Price: p.Price, Quantity: quantity}
	return next, nil
}

// Remove deletes the line if present. Removing a missing id is not an error.
func (c Cart) Remove(productID string) Cart {
	if _, ok := c.Items[productID]; !ok {
		return c
	}
	next := c.clone()
	delete(next.Items, productID)
	return next
}

// UpdateQuantity overwrites the quantity of an existing line. The cart is
// returned unchanged together with an error when the line is missing or the
// quantity is outside 1..MaxQuantity.
func (c Cart) UpdateQuantity(productID string, quantity int) (Cart, error) {
	item, ok := c.Items[productID]
	if !ok {
		return c, domainErrors.ErrItemNotInCart
	}
	if quantity <= 0 || quantity > MaxQuantity {
		return c, domainErrors.ErrInvalidQuantity
	}
	next := c.clone()
	item.Quantity = quantity
	next.Items[productID] = item
	return next, nil
}

// Clear returns an empty cart.
func (c Cart) Clear() Cart {
	return New()
}

// IsEmpty reports whether the cart has no lines.
func (c Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

// Get returns the line for productID.
func (c Cart) Get(productID string) (Item, bool) {
	item, ok := c.Items[productID]
	return item, ok
}

// Count is the sum of quantities.
func (c Cart) Count() int {
	var n int
	for _, item := range c.Items {
		n += item.Quantity
	}
	return n
}

// Total is the sum of price times quantity.
func (c Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, item := range c.Items {
		total = total.Add(item.Subtotal())
	}
	return total
}

// Totals returns count and total together.
func (c Cart) Totals() Totals {
	return Totals{Count: c.Count(), Total: c.Total()}
}

// Lines returns items ordered by product id.
func (c Cart) Lines() []Item {
	lines := make([]Item, 0, len(c.Items))
	for _, item := range c.Items {
		lines = append(lines, item)
	}
	sort.Slice(lines, func(i, j int) bool { return lines[i].ProductID < lines[j].ProductID })
	return lines
}
