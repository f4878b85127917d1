package model

// Item is a single purchasable entry within a shopping list. Optional
// fields are pointers so the persisted JSON matches the wire layout the
// mobile clients wrote: absent, not zero-valued.
type Item struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Category    string   `json:"category,omitempty"`
	Description *string  `json:"description,omitempty"`
	Price       *float64 `json:"price,omitempty"`
	PhotoURI    *string  `json:"photoUri,omitempty"`
	Quantity    int      `json:"quantity"`
	Checked     bool     `json:"checked"`
	CreatedAt   int64    `json:"createdAt"`
}

// ShoppingList is a named collection of items, newest-first. Items are
// embedded, not referenced: deleting a list deletes its items with it.
type ShoppingList struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	CreatedAt  int64  `json:"createdAt"`
	Items      []Item `json:"items"`
	IsFavorite bool   `json:"isFavorite,omitempty"`
}
