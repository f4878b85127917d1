// Package validate checks form input before it reaches the list store.
// Failures come back as a field-keyed map of human-readable messages
// for inline display; validation never mutates anything.
package validate

import (
	"math"
	"strconv"
	"strings"

	"github.com/mattjh/shoplist/internal/category"
)

// Errors maps a field name to its validation message.
type Errors map[string]string

// ListTitle validates a list title and returns it trimmed.
func ListTitle(title string) (string, Errors) {
	trimmed := strings.TrimSpace(title)
	switch {
	case trimmed == "":
		return "", Errors{"title": "List name is required"}
	case len([]rune(trimmed)) > 50:
		return "", Errors{"title": "List name must be 50 characters or less"}
	}
	return trimmed, nil
}

// ItemInput carries raw form values. Price and Quantity arrive as user
// text; empty strings mean "not provided".
type ItemInput struct {
	Name        string `json:"name"`
	Category    string `json:"category"`
	Description string `json:"description"`
	Price       string `json:"price"`
	Quantity    string `json:"quantity"`
	PhotoURI    string `json:"photoUri"`
}

// ItemFields is the normalized result of a successful validation.
// Optional fields are nil when absent; Quantity is always >= 1.
type ItemFields struct {
	Name        string
	Category    string
	Description *string
	Price       *float64
	Quantity    int
	PhotoURI    *string
}

// Item validates raw item input. Quantity policy is strict: an empty
// value coerces to 1, but a supplied value that is not an integer >= 1
// is rejected rather than silently coerced.
func Item(in ItemInput) (ItemFields, Errors) {
	errs := Errors{}
	var out ItemFields

	out.Name = strings.TrimSpace(in.Name)
	switch {
	case out.Name == "":
		errs["name"] = "Item name is required"
	case len([]rune(out.Name)) > 100:
		errs["name"] = "Item name must be 100 characters or less"
	}

	if !category.Valid(in.Category) {
		errs["category"] = "Category is required"
	} else {
		out.Category = in.Category
	}

	desc := strings.TrimSpace(in.Description)
	if len([]rune(desc)) > 500 {
		errs["description"] = "Description must be 500 characters or less"
	} else if desc != "" {
		out.Description = &desc
	}

	if price := strings.TrimSpace(in.Price); price != "" {
		n, err := strconv.ParseFloat(price, 64)
		// ParseFloat accepts "NaN" and "Inf"; neither survives
		// json.Marshal, so they must never reach the store.
		if err != nil || n < 0 || math.IsNaN(n) || math.IsInf(n, 0) {
			errs["price"] = "Price must be a valid positive number"
		} else {
			out.Price = &n
		}
	}

	out.Quantity = 1
	if qty := strings.TrimSpace(in.Quantity); qty != "" {
		n, err := strconv.Atoi(qty)
		if err != nil || n < 1 {
			errs["quantity"] = "Quantity must be a positive integer"
		} else {
			out.Quantity = n
		}
	}

	if uri := strings.TrimSpace(in.PhotoURI); uri != "" {
		out.PhotoURI = &uri
	}

	if len(errs) > 0 {
		return ItemFields{}, errs
	}
	return out, nil
}
