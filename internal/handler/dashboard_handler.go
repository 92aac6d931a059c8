package handler

import (
	"time"

	"sitera-backend/internal/logger"
	"sitera-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

type DashboardHandler struct {
	uc *usecase.DashboardUsecase
}

func NewDashboardHandler(uc *usecase.DashboardUsecase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

func (h *DashboardHandler) GetStatistik(c *fiber.Ctx) error {
	stats, err := h.uc.Statistik(time.Now())
	if err != nil {
		logger.Log.WithError(err).Error("Gagal menghitung statistik dashboard")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil data dashboard"})
	}

	return c.JSON(fiber.Map{
		"message": "Berhasil mengambil statistik",
		"data":    stats,
	})
}
