package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"petpal/internal/domain/entity"
	"petpal/internal/domain/repository"
	"petpal/pkg/errors"
)

type firestoreOrderRepository struct {
	client *firestore.Client
}

func NewFirestoreOrderRepository(client *firestore.Client) repository.OrderRepository {
	return &firestoreOrderRepository{
		client: client,
	}
}

func (r *firestoreOrderRepository) Create(ctx context.Context, order *entity.Order) error {
	if order.ID == "" {
		doc := r.client.Collection("orders").NewDoc()
		order.ID = doc.ID
	}

	if order.CreatedAt.IsZero() {
		order.CreatedAt = time.Now()
	}

	_, err := r.client.Collection("orders").Doc(order.ID).Set(ctx, order)
	if err != nil {
		return errors.Internal("Failed to create order", err)
	}

	return nil
}

func (r *firestoreOrderRepository) GetByID(ctx context.Context, id string) (*entity.Order, error) {
	doc, err := r.client.Collection("orders").Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Order", err)
		}
		return nil, errors.Internal("Failed to get order", err)
	}

	var order entity.Order
	if err := doc.DataTo(&order); err != nil {
		return nil, errors.Internal("Failed to parse order data", err)
	}

	return &order, nil
}

func (r *firestoreOrderRepository) ListByUserID(ctx context.Context, userID string) ([]*entity.Order, error) {
	query := r.client.Collection("orders").
		Where("userId", "==", userID).
		OrderBy("createdAt", firestore.Desc)

	return r.collect(query.Documents(ctx))
}

func (r *firestoreOrderRepository) ListAll(ctx context.Context) ([]*entity.Order, error) {
	query := r.client.Collection("orders").Query.OrderBy("createdAt", firestore.Desc)

	return r.collect(query.Documents(ctx))
}

// ListCompleted returns the sales-reporting population: everything past
// Processing. The paid-timestamp check happens client-side because
// Firestore rejects an inequality on a second field.
func (r *firestoreOrderRepository) ListCompleted(ctx context.Context) ([]*entity.Order, error) {
	query := r.client.Collection("orders").
		Where("orderStatus", "!=", string(entity.OrderProcessing))

	orders, err := r.collect(query.Documents(ctx))
	if err != nil {
		return nil, err
	}

	completed := make([]*entity.Order, 0, len(orders))
	for _, order := range orders {
		if !order.PaidAt.IsZero() {
			completed = append(completed, order)
		}
	}

	return completed, nil
}

func (r *firestoreOrderRepository) Update(ctx context.Context, order *entity.Order) error {
	_, err := r.client.Collection("orders").Doc(order.ID).Set(ctx, order)
	if err != nil {
		return errors.Internal("Failed to update order", err)
	}

	return nil
}

func (r *firestoreOrderRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.Collection("orders").Doc(id).Delete(ctx)
	if err != nil {
		return errors.Internal("Failed to delete order", err)
	}

	return nil
}

func (r *firestoreOrderRepository) DeleteBulk(ctx context.Context, ids []string) (int, error) {
	deleted := 0

	for _, id := range ids {
		_, err := r.client.Collection("orders").Doc(id).Get(ctx)
		if err != nil {
			if status.Code(err) == codes.NotFound {
				continue
			}
			return deleted, errors.Internal("Failed to check order", err)
		}

		if _, err := r.client.Collection("orders").Doc(id).Delete(ctx); err != nil {
			return deleted, errors.Internal("Failed to delete order", err)
		}
		deleted++
	}

	return deleted, nil
}

func (r *firestoreOrderRepository) collect(iter *firestore.DocumentIterator) ([]*entity.Order, error) {
	var orders []*entity.Order

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to iterate orders", err)
		}

		var order entity.Order
		if err := doc.DataTo(&order); err != nil {
			return nil, errors.Internal("Failed to parse order data", err)
		}
		orders = append(orders, &order)
	}

	return orders, nil
}
