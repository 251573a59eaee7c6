package repository

import (
	"context"

	"petpal/internal/domain/entity"
)

type OrderRepository interface {
	Create(ctx context.Context, order *entity.Order) error
	GetByID(ctx context.Context, id string) (*entity.Order, error)
	ListByUserID(ctx context.Context, userID string) ([]*entity.Order, error)
	ListAll(ctx context.Context) ([]*entity.Order, error)

	// ListCompleted returns orders that have moved past Processing and
	// carry a paid timestamp, the population for sales reporting.
	ListCompleted(ctx context.Context) ([]*entity.Order, error)

	Update(ctx context.Context, order *entity.Order) error
	Delete(ctx context.Context, id string) error
	DeleteBulk(ctx context.Context, ids []string) (int, error)
}
