package repository

import (
	"context"

	"petpal/internal/domain/entity"
)

type ReviewRepository interface {
	Create(ctx context.Context, review *entity.Review) error
	GetByID(ctx context.Context, id string) (*entity.Review, error)

	// GetByProductAndUser returns the unique review for the pair, or a
	// NotFound error when none exists.
	GetByProductAndUser(ctx context.Context, productID, userID string) (*entity.Review, error)

	ListByProductID(ctx context.Context, productID string) ([]*entity.Review, error)
	ListAll(ctx context.Context) ([]*entity.Review, error)
	Update(ctx context.Context, review *entity.Review) error
	Delete(ctx context.Context, id string) error
}
