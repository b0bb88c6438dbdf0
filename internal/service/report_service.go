package service

import (
	"context"
	"fmt"

	"mealbridge/internal/errors"
	"mealbridge/internal/model"
	"mealbridge/internal/repository"
)

// ReportService produces the donor insight report: how much of each listing
// name has been ordered away.
type ReportService interface {
	OrderedTotals(ctx context.Context, accountID uint, role model.Role) ([]repository.ListingTotal, error)
}

type reportService struct {
	orderRepo repository.OrderRepository
}

// NewReportService creates a new report service.
func NewReportService(orderRepo repository.OrderRepository) ReportService {
	return &reportService{orderRepo: orderRepo}
}

// OrderedTotals aggregates line-item quantities per listing name for the
// caller's own listings. Restaurant accounts only.
func (s *reportService) OrderedTotals(ctx context.Context, accountID uint, role model.Role) ([]repository.ListingTotal, error) {
	if role != model.RoleRestaurant {
		return nil, errors.ErrRoleNotAllowed
	}
	totals, err := s.orderRepo.OrderedTotalsByOwner(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("aggregate ordered totals: %w", err)
	}
	return totals, nil
}
