package sales

import "strings"

// Seller is an immutable source record describing a party whose sales
// performance is measured.
type Seller struct {
	ID          string `json:"id"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	DisplayName string `json:"display_name,omitempty"`
	Position    string `json:"position,omitempty"`
}

// Name returns the seller's display name, falling back to "First Last"
// when no explicit display name is set.
func (s Seller) Name() string {
	if s.DisplayName != "" {
		return s.DisplayName
	}
	return strings.TrimSpace(s.FirstName + " " + s.LastName)
}
