package models

// Post is a WordPress post or page. Title, Excerpt and Content are rendered
// HTML and are passed through untouched.
type Post struct {
	ID            int     `json:"id"`
	Type          string  `json:"type"`
	Slug          string  `json:"slug"`
	Link          string  `json:"link"`
	Date          string  `json:"date"`
	Title         string  `json:"title"`
	Excerpt       string  `json:"excerpt"`
	Content       string  `json:"content"`
	FeaturedImage *string `json:"featuredImage"`
	Categories    []Term  `json:"categories"`
}

// Term is a WordPress taxonomy term such as a category.
type Term struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Count       int    `json:"count,omitempty"`
	Description string `json:"description,omitempty"`
	Taxonomy    string `json:"taxonomy,omitempty"`
}

type PostQuery struct {
	PerPage    int    `form:"per_page"`
	Page       int    `form:"page"`
	Categories string `form:"categories"`
	Search     string `form:"search"`
}
