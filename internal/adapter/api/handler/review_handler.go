package handler

import (
	"github.com/labstack/echo/v4"

	"petpal/internal/domain/entity"
	"petpal/internal/usecase"
	"petpal/pkg/errors"
	"petpal/pkg/response"
)

type ReviewHandler struct {
	reviewUseCase *usecase.ReviewUseCase
}

func NewReviewHandler(reviewUseCase *usecase.ReviewUseCase) *ReviewHandler {
	return &ReviewHandler{
		reviewUseCase: reviewUseCase,
	}
}

type submitReviewRequest struct {
	ProductID string `json:"productId" validate:"required"`
	Rating    int    `json:"rating" validate:"required,gte=1,lte=5"`
	Comment   string `json:"comment" validate:"required"`
}

// SubmitReview creates or replaces the caller's review for a product and
// refreshes the product's rating aggregates.
func (h *ReviewHandler) SubmitReview(c echo.Context) error {
	var req submitReviewRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	uid := c.Get("uid").(string)

	review, err := h.reviewUseCase.SubmitReview(c.Request().Context(), uid, usecase.SubmitReviewInput{
		ProductID: req.ProductID,
		Rating:    req.Rating,
		Comment:   req.Comment,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, review)
}

func (h *ReviewHandler) ListProductReviews(c echo.Context) error {
	reviews, err := h.reviewUseCase.ListForProduct(c.Request().Context(), c.Param("productId"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, reviews)
}

func (h *ReviewHandler) DeleteReview(c echo.Context) error {
	user, ok := c.Get("user").(*entity.User)
	if !ok {
		return response.Error(c, errors.Unauthorized("Authentication required", nil))
	}

	reviewID := c.QueryParam("reviewId")
	if reviewID == "" {
		return response.Error(c, errors.BadRequest("reviewId query parameter is required", nil))
	}

	if err := h.reviewUseCase.DeleteReview(c.Request().Context(), reviewID, user.ID, user.Role); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{"message": "Review deleted successfully"})
}

func (h *ReviewHandler) ListAllReviews(c echo.Context) error {
	reviews, err := h.reviewUseCase.ListAll(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, reviews)
}
