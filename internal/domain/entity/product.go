package entity

import (
	"time"
)

type Category string

const (
	CategoryClothes  Category = "Clothes"
	CategoryFood     Category = "Food"
	CategoryGrooming Category = "Grooming"
	CategoryToys     Category = "Toys"
	CategoryService  Category = "Service"
)

func ParseCategory(s string) (Category, bool) {
	switch Category(s) {
	case CategoryClothes, CategoryFood, CategoryGrooming, CategoryToys, CategoryService:
		return Category(s), true
	}
	return "", false
}

type ProductImage struct {
	AssetID string `json:"asset_id" firestore:"assetId"`
	URL     string `json:"url" firestore:"url"`
}

// Product is a catalog entry. Ratings and NumOfReviews are derived from
// the reviews collection and are only ever written by a full recompute,
// never edited independently.
type Product struct {
	ID          string         `json:"id" firestore:"id"`
	Name        string         `json:"name" firestore:"name"`
	Price       float64        `json:"price" firestore:"price"`
	Description string         `json:"description" firestore:"description"`
	Category    Category       `json:"category" firestore:"category"`
	Stock       int            `json:"stock" firestore:"stock"`
	Images      []ProductImage `json:"images" firestore:"images"`

	Ratings      float64 `json:"ratings" firestore:"ratings"`
	NumOfReviews int     `json:"num_of_reviews" firestore:"numOfReviews"`

	CreatedBy string    `json:"created_by" firestore:"createdBy"`
	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}
