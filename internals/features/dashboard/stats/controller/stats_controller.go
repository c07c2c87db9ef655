package controller

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"mentoring_backend/internals/features/dashboard/stats/dto"
)

type StatsService interface {
	Stats(ctx context.Context) (*dto.StatsResponse, error)
	MonthlyGrowth(ctx context.Context) ([]dto.MonthlyGrowth, error)
	StatusDistribution(ctx context.Context) ([]dto.StatusSlice, error)
	RecentActivities(ctx context.Context) ([]dto.RecentActivity, error)
}

type StatsController struct {
	Service StatsService
}

func NewStatsController(svc StatsService) *StatsController {
	return &StatsController{Service: svc}
}

// GET /dashboard/stats
func (ctrl *StatsController) Stats(c *fiber.Ctx) error {
	res, err := ctrl.Service.Stats(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(res)
}

// GET /dashboard/monthly-growth
func (ctrl *StatsController) MonthlyGrowth(c *fiber.Ctx) error {
	res, err := ctrl.Service.MonthlyGrowth(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(res)
}

// GET /dashboard/status-distribution
func (ctrl *StatsController) StatusDistribution(c *fiber.Ctx) error {
	res, err := ctrl.Service.StatusDistribution(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(res)
}

// GET /dashboard/recent-activities
func (ctrl *StatsController) RecentActivities(c *fiber.Ctx) error {
	res, err := ctrl.Service.RecentActivities(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(res)
}
