package mshop

// Product is one ordered product line. Read-only for providers.
type Product struct {
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Quantity    float64 `json:"quantity"`
	Price       Price   `json:"price"`
}
