package usecase

import (
	"context"

	"petpal/internal/domain/entity"
	"petpal/internal/domain/repository"
	"petpal/pkg/errors"
	"petpal/pkg/logger"
)

type ReviewUseCase struct {
	reviewRepo  repository.ReviewRepository
	productRepo repository.ProductRepository
	userRepo    repository.UserRepository
}

func NewReviewUseCase(
	reviewRepo repository.ReviewRepository,
	productRepo repository.ProductRepository,
	userRepo repository.UserRepository,
) *ReviewUseCase {
	return &ReviewUseCase{
		reviewRepo:  reviewRepo,
		productRepo: productRepo,
		userRepo:    userRepo,
	}
}

type SubmitReviewInput struct {
	ProductID string
	Rating    int
	Comment   string
}

// SubmitReview upserts the caller's review for a product. A resubmission
// overwrites the existing review instead of creating a duplicate, then
// the product aggregate is recomputed.
func (uc *ReviewUseCase) SubmitReview(ctx context.Context, userID string, input SubmitReviewInput) (*entity.Review, error) {
	if input.Rating < 1 || input.Rating > 5 {
		return nil, errors.BadRequest("Rating must be between 1 and 5", nil)
	}
	if input.Comment == "" {
		return nil, errors.BadRequest("Comment is required", nil)
	}

	if _, err := uc.productRepo.GetByID(ctx, input.ProductID); err != nil {
		return nil, err
	}

	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	review, err := uc.reviewRepo.GetByProductAndUser(ctx, input.ProductID, userID)
	switch {
	case err == nil:
		review.Rating = input.Rating
		review.Comment = input.Comment
		if err := uc.reviewRepo.Update(ctx, review); err != nil {
			return nil, err
		}
	case errors.Is(err, "NOT_FOUND"):
		review = &entity.Review{
			ProductID: input.ProductID,
			UserID:    userID,
			UserName:  user.Name,
			Rating:    input.Rating,
			Comment:   input.Comment,
		}
		if err := uc.reviewRepo.Create(ctx, review); err != nil {
			return nil, err
		}
	default:
		return nil, err
	}

	if err := uc.recomputeProductRating(ctx, input.ProductID); err != nil {
		return nil, err
	}

	return review, nil
}

// DeleteReview removes a review when the requester owns it or is an
// admin, then recomputes the product aggregate.
func (uc *ReviewUseCase) DeleteReview(ctx context.Context, reviewID, requesterID string, requesterRole entity.Role) error {
	review, err := uc.reviewRepo.GetByID(ctx, reviewID)
	if err != nil {
		return err
	}

	if review.UserID != requesterID && requesterRole != entity.RoleAdmin {
		return errors.Forbidden("Not authorized to delete this review", nil)
	}

	if err := uc.reviewRepo.Delete(ctx, reviewID); err != nil {
		return err
	}

	return uc.recomputeProductRating(ctx, review.ProductID)
}

func (uc *ReviewUseCase) ListForProduct(ctx context.Context, productID string) ([]*entity.Review, error) {
	reviews, err := uc.reviewRepo.ListByProductID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if reviews == nil {
		reviews = []*entity.Review{}
	}
	return reviews, nil
}

// AdminReviewItem is a review with display names resolved for the admin
// table.
type AdminReviewItem struct {
	*entity.Review
	ProductName string `json:"product_name"`
	UserName    string `json:"user_name"`
}

func (uc *ReviewUseCase) ListAll(ctx context.Context) ([]AdminReviewItem, error) {
	reviews, err := uc.reviewRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	productNames := make(map[string]string)
	userNames := make(map[string]string)

	items := make([]AdminReviewItem, 0, len(reviews))
	for _, review := range reviews {
		productName, ok := productNames[review.ProductID]
		if !ok {
			if product, err := uc.productRepo.GetByID(ctx, review.ProductID); err == nil {
				productName = product.Name
			}
			productNames[review.ProductID] = productName
		}

		userName, ok := userNames[review.UserID]
		if !ok {
			if user, err := uc.userRepo.GetByID(ctx, review.UserID); err == nil {
				userName = user.Name
			} else {
				// Account deleted since; fall back to the snapshot.
				userName = review.UserName
			}
			userNames[review.UserID] = userName
		}

		items = append(items, AdminReviewItem{
			Review:      review,
			ProductName: productName,
			UserName:    userName,
		})
	}

	return items, nil
}

// recomputeProductRating rewrites the product's derived rating fields as
// a pure function of the current review rows. Recomputing in full rather
// than adjusting incrementally keeps the aggregate correct by
// construction; a missed update heals on the next write.
func (uc *ReviewUseCase) recomputeProductRating(ctx context.Context, productID string) error {
	reviews, err := uc.reviewRepo.ListByProductID(ctx, productID)
	if err != nil {
		return err
	}

	count := len(reviews)
	ratings := 0.0
	if count > 0 {
		sum := 0
		for _, review := range reviews {
			sum += review.Rating
		}
		ratings = float64(sum) / float64(count)
	}

	if err := uc.productRepo.UpdateAggregates(ctx, productID, ratings, count); err != nil {
		logger.Error("Failed to update aggregates for product %s: %v", productID, err)
		return err
	}

	return nil
}
