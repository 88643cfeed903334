package domain

import "time"

// Sample is the stockable instance record derived from an Article.
// Exactly one sample exists per article; the samples table enforces this
// with a uniqueness constraint on article_id, and the directory resolves
// the existing record instead of creating a duplicate.
type Sample struct {
	ID          string    `json:"id"`
	ArticleID   string    `json:"article_id"`
	DisplayName string    `json:"display_name"`
	CreatedAt   time.Time `json:"created_at"`

	// Article is populated on read paths that join the catalog.
	Article *Article `json:"article,omitempty"`
}
