package dto

// SearchResult is a compact product hit.
type SearchResult struct {
	ID               string  `json:"id"`
	Name             string  `json:"name"`
	Price            float64 `json:"price"`
	ShortDescription string  `json:"short_description"`
	URL              string  `json:"url"`
}

// SearchResponse wraps search hits.
type SearchResponse struct {
	Results []SearchResult `json:"results"`
}
