package usecase

import (
	"context"
	"sort"
	"time"

	"petpal/internal/domain/entity"
	"petpal/internal/domain/repository"
	"petpal/pkg/errors"
)

type SalesUseCase struct {
	orderRepo repository.OrderRepository
}

func NewSalesUseCase(orderRepo repository.OrderRepository) *SalesUseCase {
	return &SalesUseCase{orderRepo: orderRepo}
}

type MonthlySalesPoint struct {
	Year        int     `json:"year"`
	Month       int     `json:"month"`
	TotalSales  float64 `json:"totalSales"`
	TotalOrders int     `json:"totalOrders"`
}

type DailySalesPoint struct {
	Date        string  `json:"date"`
	TotalSales  float64 `json:"totalSales"`
	TotalOrders int     `json:"totalOrders"`
}

// MonthlySales aggregates completed orders by the calendar month in which
// they were paid, ascending. Orders still in Processing never count.
func (uc *SalesUseCase) MonthlySales(ctx context.Context) ([]MonthlySalesPoint, error) {
	orders, err := uc.orderRepo.ListCompleted(ctx)
	if err != nil {
		return nil, err
	}

	type key struct {
		year  int
		month int
	}
	buckets := map[key]*MonthlySalesPoint{}
	for _, order := range orders {
		k := key{year: order.PaidAt.Year(), month: int(order.PaidAt.Month())}
		point, ok := buckets[k]
		if !ok {
			point = &MonthlySalesPoint{Year: k.year, Month: k.month}
			buckets[k] = point
		}
		point.TotalSales += order.TotalPrice
		point.TotalOrders++
	}

	points := make([]MonthlySalesPoint, 0, len(buckets))
	for _, point := range buckets {
		points = append(points, *point)
	}
	sort.Slice(points, func(i, j int) bool {
		if points[i].Year != points[j].Year {
			return points[i].Year < points[j].Year
		}
		return points[i].Month < points[j].Month
	})

	return points, nil
}

const salesDateLayout = "2006-01-02"

// SalesByDateRange aggregates completed orders paid between startDate and
// endDate, grouped per day. The end date is inclusive of its whole day.
func (uc *SalesUseCase) SalesByDateRange(ctx context.Context, startStr, endStr string) ([]DailySalesPoint, error) {
	start, err := time.Parse(salesDateLayout, startStr)
	if err != nil {
		return nil, errors.BadRequest("Invalid startDate, expected YYYY-MM-DD", err)
	}
	end, err := time.Parse(salesDateLayout, endStr)
	if err != nil {
		return nil, errors.BadRequest("Invalid endDate, expected YYYY-MM-DD", err)
	}
	end = end.AddDate(0, 0, 1)

	orders, err := uc.orderRepo.ListCompleted(ctx)
	if err != nil {
		return nil, err
	}

	buckets := map[string]*DailySalesPoint{}
	for _, order := range orders {
		if !withinRange(order, start, end) {
			continue
		}
		day := order.PaidAt.Format(salesDateLayout)
		point, ok := buckets[day]
		if !ok {
			point = &DailySalesPoint{Date: day}
			buckets[day] = point
		}
		point.TotalSales += order.TotalPrice
		point.TotalOrders++
	}

	points := make([]DailySalesPoint, 0, len(buckets))
	for _, point := range buckets {
		points = append(points, *point)
	}
	sort.Slice(points, func(i, j int) bool { return points[i].Date < points[j].Date })

	return points, nil
}

func withinRange(order *entity.Order, start, end time.Time) bool {
	return !order.PaidAt.Before(start) && order.PaidAt.Before(end)
}
