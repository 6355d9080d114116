package models

type Category struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Slug         string `json:"slug"`
	Description  string `json:"description"`
	Icon         string `json:"icon"`
	ProductCount int    `json:"productCount"`
}

type Document struct {
	Name string `json:"name" mapstructure:"name"`
	Type string `json:"type" mapstructure:"type"`
	Size string `json:"size" mapstructure:"size"`
	URL  string `json:"url" mapstructure:"url"`
}

type Video struct {
	Title       string `json:"title" mapstructure:"title"`
	URL         string `json:"url" mapstructure:"url"`
	Thumbnail   string `json:"thumbnail" mapstructure:"thumbnail"`
	Duration    string `json:"duration" mapstructure:"duration"`
	Description string `json:"description,omitempty" mapstructure:"description"`
}

type Product struct {
	ID             string            `json:"id"`
	Name           string            `json:"name"`
	Category       Category          `json:"category"`
	Price          string            `json:"price"`
	Rating         float64           `json:"rating"`
	Image          string            `json:"image"`
	Gallery        []string          `json:"gallery"`
	Description    string            `json:"description"`
	Features       []string          `json:"features"`
	Specifications map[string]string `json:"specifications"`
	Popular        bool              `json:"popular"`
	InStock        bool              `json:"inStock"`
	Manufacturer   string            `json:"manufacturer"`
	Warranty       string            `json:"warranty"`
	Documents      []Document        `json:"documents"`
	Videos         []Video           `json:"videos"`
}

// ProductFilter holds the structured constraints of a product search.
// A nil pointer or empty string means "no constraint".
type ProductFilter struct {
	Category     string   `json:"category,omitempty"`
	Manufacturer string   `json:"manufacturer,omitempty"`
	InStock      *bool    `json:"inStock,omitempty"`
	Rating       *float64 `json:"rating,omitempty"`
}

type SortKey string

const (
	SortNone    SortKey = ""
	SortName    SortKey = "name"
	SortRating  SortKey = "rating"
	SortPopular SortKey = "popular"
)

type SearchParams struct {
	Query   string        `json:"query"`
	Filters ProductFilter `json:"filters"`
	Sort    SortKey       `json:"sort,omitempty"`
	Page    int           `json:"page"`
	Limit   int           `json:"limit"`
}

type SearchResponse struct {
	Query      string        `json:"query"`
	Products   []Product     `json:"products"`
	Total      int           `json:"total"`
	Page       int           `json:"page"`
	Limit      int           `json:"limit"`
	TotalPages int           `json:"total_pages"`
	Filters    ProductFilter `json:"filters"`
	Sort       SortKey       `json:"sort,omitempty"`
	Duration   string        `json:"duration"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Code    int    `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}
