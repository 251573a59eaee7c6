package router

import (
	"github.com/labstack/echo/v4"

	"petpal/internal/adapter/api/handler"
	"petpal/internal/adapter/api/middleware"
)

func SetupReviewRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware, rateLimitMiddleware *middleware.RateLimitMiddleware) {
	reviewHandler := handler.GetReviewHandler()

	e.GET("/v1/reviews/:productId", reviewHandler.ListProductReviews)

	reviews := e.Group("/v1")
	reviews.Use(authMiddleware.Authenticate)
	reviews.PUT("/review", reviewHandler.SubmitReview, rateLimitMiddleware.Limit("submit_review"))
	reviews.DELETE("/review", reviewHandler.DeleteReview)

	admin := e.Group("/v1/admin")
	admin.Use(authMiddleware.Authenticate)
	admin.Use(adminMiddleware.AdminOnly)
	admin.GET("/reviews/all", reviewHandler.ListAllReviews)
	admin.DELETE("/review", reviewHandler.DeleteReview)
}
