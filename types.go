package citydesk

import (
	"time"
)

// Article is a stored news article. The content field holds the rendered
// document body produced by the ingestion pipeline. The slug is never stored,
// it is always derived from the title via Slugify.
type Article struct {
	Key           string `json:"key"`
	Title         string `json:"title"`
	Content       string `json:"content"`
	Excerpt       string `json:"excerpt,omitempty"`
	PublishedDate string `json:"publishedDate,omitempty"`
	Author        string `json:"author,omitempty"`
	SourceURL     string `json:"sourceUrl,omitempty"`
}

// Slug derives the URL identifier for the article from its title.
func (a Article) Slug() string {
	return Slugify(a.Title)
}

// ArticleSummary is the lightweight index entry for listing pages.
type ArticleSummary struct {
	Title         string `json:"title"`
	URL           string `json:"url"`
	Excerpt       string `json:"excerpt,omitempty"`
	PublishedDate string `json:"publishedDate,omitempty"`
}

// Business is a stored business-directory listing.
type Business struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Address     string   `json:"address,omitempty"`
	Phone       string   `json:"phone,omitempty"`
	Website     string   `json:"website,omitempty"`
	Email       string   `json:"email,omitempty"`
	Description string   `json:"description,omitempty"`
	Categories  []string `json:"categories,omitempty"`
}

// HasCategory reports whether the listing carries the given category.
func (b Business) HasCategory(category string) bool {
	for _, c := range b.Categories {
		if c == category {
			return true
		}
	}
	return false
}

// BusinessSummary is the subset of Business fields returned by listings.
// Fields are always serialized so consumers see a stable shape.
type BusinessSummary struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Address     string   `json:"address"`
	Phone       string   `json:"phone"`
	Website     string   `json:"website"`
	Email       string   `json:"email"`
	Description string   `json:"description"`
	Categories  []string `json:"categories"`
}

// Summary projects a Business into its listing form, applying the fallback
// title used whenever a stored record lacks one.
func (b Business) Summary() BusinessSummary {
	title := b.Title
	if title == "" {
		title = "Untitled Business"
	}
	return BusinessSummary{
		ID:          b.ID,
		Title:       title,
		Address:     b.Address,
		Phone:       b.Phone,
		Website:     b.Website,
		Email:       b.Email,
		Description: b.Description,
		Categories:  b.Categories,
	}
}

// Asset is a static document fetched from the backing origin. The content
// type is preserved from the origin's metadata.
type Asset struct {
	ContentType string `json:"contentType"`
	Body        []byte `json:"body"`
}

// Event notifies subscribers that a collection changed.
type Event struct {
	Type       string    `json:"type"`
	Collection string    `json:"collection"`
	Count      int       `json:"count"`
	Timestamp  time.Time `json:"timestamp"`
}
