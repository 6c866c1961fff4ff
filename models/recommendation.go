package models

// Recommendation sources, in ranking order
const (
	SourcePurchase = "purchase"
	SourceCart     = "cart"
	SourceSearch   = "search"
)

// Recommendation is one ranked suggestion. Purchase-backed entries rank
// highest, then cart intent, then raw search terms.
type Recommendation struct {
	Source    string  `json:"source"`
	Name      string  `json:"name"`
	ProductID string  `json:"productId,omitempty"`
	Price     float64 `json:"price,omitempty"`
}
