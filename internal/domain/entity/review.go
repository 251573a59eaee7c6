package entity

import (
	"time"
)

// Review is one user's opinion on one product. At most one review exists
// per (UserID, ProductID) pair; a resubmission updates the existing row.
type Review struct {
	ID        string `json:"id" firestore:"id"`
	ProductID string `json:"product_id" firestore:"productId"`
	UserID    string `json:"user_id" firestore:"userId"`

	// Display-name snapshot taken at submission time.
	UserName string `json:"name" firestore:"name"`

	Rating  int    `json:"rating" firestore:"rating"`
	Comment string `json:"comment" firestore:"comment"`

	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}
