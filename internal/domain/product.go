package domain

import "time"

// Product represents a catalog entry. The catalog is fixed at startup;
// the only runtime mutation is appending customer reviews.
type Product struct {
	ID          int      `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       int      `json:"price"` // whole rupees
	Category    string   `json:"category"`
	ImageURL    string   `json:"image_url"`
	Rating      float64  `json:"rating"`
	Reviews     int      `json:"reviews"` // base review count from the seed data
	UserReviews []Review `json:"user_reviews"`
}

// Review is a customer product review. Reviews are append-only: created on
// submission, never edited or deleted.
type Review struct {
	ID       string    `json:"id"`
	UserName string    `json:"user_name"`
	Rating   int       `json:"rating"` // 1 to 5
	Comment  string    `json:"comment"`
	Date     time.Time `json:"date"`
}
