package domain

import "time"

// EBook is a downloadable PDF with an optional cover image.
type EBook struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Filename    string    `json:"filename"`
	CoverImage  *string   `json:"coverImage"`
	Description *string   `json:"description"`
	Pages       *int      `json:"pages"`
	CreatedBy   string    `json:"createdby"`
	CreatedDate time.Time `json:"createddate"`
}

// EBookInput is the payload for creating an e-book.
type EBookInput struct {
	Title       string  `json:"title"`
	Filename    string  `json:"filename"`
	CoverImage  *string `json:"cover_image"`
	Description *string `json:"description"`
	Pages       *int    `json:"pages"`
}

// EBookPatch carries a partial update; nil fields are left untouched.
type EBookPatch struct {
	Title       *string `json:"title"`
	CoverImage  *string `json:"cover_image"`
	Description *string `json:"description"`
	Pages       *int    `json:"pages"`
}

// EBookFilter controls e-book listing.
type EBookFilter struct {
	Sort  SortDirection
	Limit int // 0 = no limit
}
