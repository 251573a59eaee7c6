package repository

import (
	"context"

	"petpal/internal/domain/entity"
)

type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)

	// List returns one page of products matching filter, the count of all
	// matching products, and the count of all products regardless of filter.
	List(ctx context.Context, filter *entity.ProductFilter, limit, offset int) (items []*entity.Product, filteredCount, totalCount int64, err error)

	Update(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, id string) error

	// DeleteBulk removes the given ids and returns how many documents
	// actually existed.
	DeleteBulk(ctx context.Context, ids []string) (int, error)

	// UpdateAggregates writes the derived rating fields only.
	UpdateAggregates(ctx context.Context, id string, ratings float64, numOfReviews int) error

	// DecrementStock lowers stock by quantity as a single counter write.
	DecrementStock(ctx context.Context, id string, quantity int) error
}
