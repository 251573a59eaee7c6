package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"petpal/internal/domain/entity"
	"petpal/internal/domain/repository"
	"petpal/pkg/errors"
)

type firestoreProductRepository struct {
	client *firestore.Client
}

func NewFirestoreProductRepository(client *firestore.Client) repository.ProductRepository {
	return &firestoreProductRepository{
		client: client,
	}
}

func (r *firestoreProductRepository) Create(ctx context.Context, product *entity.Product) error {
	if product.ID == "" {
		doc := r.client.Collection("products").NewDoc()
		product.ID = doc.ID
	}

	now := time.Now()
	if product.CreatedAt.IsZero() {
		product.CreatedAt = now
	}
	product.UpdatedAt = now

	_, err := r.client.Collection("products").Doc(product.ID).Set(ctx, product)
	if err != nil {
		return errors.Internal("Failed to create product", err)
	}

	return nil
}

func (r *firestoreProductRepository) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	doc, err := r.client.Collection("products").Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Product", err)
		}
		return nil, errors.Internal("Failed to get product", err)
	}

	var product entity.Product
	if err := doc.DataTo(&product); err != nil {
		return nil, errors.Internal("Failed to parse product data", err)
	}

	return &product, nil
}

// List fetches the catalog in insertion order and applies the filter in
// memory. Firestore has no substring search and cannot combine range
// filters across fields, so keyword and numeric conditions are evaluated
// client-side against the full set; the per-product volume makes this
// acceptable, the same trade-off the search endpoint already makes.
func (r *firestoreProductRepository) List(ctx context.Context, filter *entity.ProductFilter, limit, offset int) ([]*entity.Product, int64, int64, error) {
	query := r.client.Collection("products").Query.OrderBy("createdAt", firestore.Asc)

	docs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, 0, 0, errors.Internal("Failed to list products", err)
	}
	total := int64(len(docs))

	var matched []*entity.Product
	for _, doc := range docs {
		var product entity.Product
		if err := doc.DataTo(&product); err != nil {
			return nil, 0, 0, errors.Internal("Failed to parse product data", err)
		}
		if filter == nil || filter.Matches(&product) {
			matched = append(matched, &product)
		}
	}

	filteredCount := int64(len(matched))

	start := offset
	end := offset + limit
	if limit <= 0 {
		end = len(matched)
	}
	if start >= len(matched) {
		return []*entity.Product{}, filteredCount, total, nil
	}
	if end > len(matched) {
		end = len(matched)
	}

	return matched[start:end], filteredCount, total, nil
}

func (r *firestoreProductRepository) Update(ctx context.Context, product *entity.Product) error {
	product.UpdatedAt = time.Now()

	_, err := r.client.Collection("products").Doc(product.ID).Set(ctx, product)
	if err != nil {
		return errors.Internal("Failed to update product", err)
	}

	return nil
}

func (r *firestoreProductRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.Collection("products").Doc(id).Delete(ctx)
	if err != nil {
		return errors.Internal("Failed to delete product", err)
	}

	return nil
}

func (r *firestoreProductRepository) DeleteBulk(ctx context.Context, ids []string) (int, error) {
	deleted := 0

	for _, id := range ids {
		_, err := r.client.Collection("products").Doc(id).Get(ctx)
		if err != nil {
			if status.Code(err) == codes.NotFound {
				continue
			}
			return deleted, errors.Internal("Failed to check product", err)
		}

		if _, err := r.client.Collection("products").Doc(id).Delete(ctx); err != nil {
			return deleted, errors.Internal("Failed to delete product", err)
		}
		deleted++
	}

	return deleted, nil
}

func (r *firestoreProductRepository) UpdateAggregates(ctx context.Context, id string, ratings float64, numOfReviews int) error {
	_, err := r.client.Collection("products").Doc(id).Update(ctx, []firestore.Update{
		{Path: "ratings", Value: ratings},
		{Path: "numOfReviews", Value: numOfReviews},
		{Path: "updatedAt", Value: time.Now()},
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return errors.NotFound("Product", err)
		}
		return errors.Internal("Failed to update product aggregates", err)
	}

	return nil
}

func (r *firestoreProductRepository) DecrementStock(ctx context.Context, id string, quantity int) error {
	_, err := r.client.Collection("products").Doc(id).Update(ctx, []firestore.Update{
		{Path: "stock", Value: firestore.Increment(-quantity)},
		{Path: "updatedAt", Value: time.Now()},
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return errors.NotFound("Product", err)
		}
		return errors.Internal("Failed to decrement product stock", err)
	}

	return nil
}
