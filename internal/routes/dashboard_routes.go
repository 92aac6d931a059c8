package routes

import (
	"sitera-backend/internal/handler"
	"sitera-backend/internal/middleware"
	"sitera-backend/internal/repository"
	"sitera-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupDashboardRoutes(app *fiber.App, db *gorm.DB, jwtSecret string) {
	uc := usecase.NewDashboardUsecase(
		repository.NewWajibTeraRepository(db),
		repository.NewUTTPRepository(db),
		repository.NewPermohonanRepository(db),
		repository.NewNotifikasiRepository(db),
	)
	hdl := handler.NewDashboardHandler(uc)

	api := app.Group("/api/admin/dashboard", middleware.Auth(jwtSecret))
	api.Get("/", hdl.GetStatistik)
}
