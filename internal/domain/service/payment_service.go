package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"petpal/internal/domain/entity"
	"petpal/pkg/errors"
	"petpal/pkg/logger"
)

// PaymentService settles a checkout payment and returns the snapshot to
// store on the order.
type PaymentService interface {
	Process(ctx context.Context, info entity.PaymentInfo, amount float64) (entity.PaymentInfo, error)
}

// simulatedPaymentService is a pass-through processor: it never talks to a
// gateway, it only normalizes the snapshot. Payment correctness is out of
// scope for the storefront.
type simulatedPaymentService struct{}

func NewSimulatedPaymentService() PaymentService {
	return &simulatedPaymentService{}
}

func (s *simulatedPaymentService) Process(ctx context.Context, info entity.PaymentInfo, amount float64) (entity.PaymentInfo, error) {
	if info.Method == "" {
		return entity.PaymentInfo{}, errors.BadRequest("Payment method is required", nil)
	}
	if amount < 0 {
		return entity.PaymentInfo{}, errors.BadRequest("Payment amount cannot be negative", nil)
	}

	if info.ID == "" {
		info.ID = fmt.Sprintf("sim_%s", uuid.New().String())
	}
	if info.Status == "" {
		info.Status = "Paid"
	}

	logger.Debug("Simulated payment %s settled: method=%s amount=%.2f", info.ID, info.Method, amount)
	return info, nil
}
