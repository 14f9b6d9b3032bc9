package models

import "time"

// Blog is a post. AuthorID is assigned once at creation from the
// authenticated caller and never reassigned.
type Blog struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Published bool      `json:"published"`
	AuthorID  string    `json:"authorId"`
	CreatedAt time.Time `json:"createdAt"`
}

// BlogSummary is the paginated-list projection: everything a feed needs,
// nothing it doesn't.
type BlogSummary struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	Published bool   `json:"published"`
}
