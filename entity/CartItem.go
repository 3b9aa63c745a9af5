package entity

// CartItem is a snapshot of the menu item at the time it was added,
// so later catalog edits never rewrite what the customer selected.
type CartItem struct {
	MenuItem
	Quantity int `json:"quantity"`
}
