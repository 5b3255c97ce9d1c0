package entity

// LineItem is one menu item in a cart or pending order: quantity plus a
// price snapshot taken at add time. Prices are never re-read from the menu
// once an item is in a cart.
type LineItem struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
	Image    string  `json:"image"`
}

// LineTotal sums price x quantity over items.
func LineTotal(items []LineItem) float64 {
	var total float64
	for _, it := range items {
		total += it.Price * float64(it.Quantity)
	}
	return total
}

// CopyLineItems returns an independent copy so cart edits never reach a
// stored snapshot.
func CopyLineItems(items []LineItem) []LineItem {
	out := make([]LineItem, len(items))
	copy(out, items)
	return out
}
