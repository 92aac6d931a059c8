package routes

import (
	"sitera-backend/internal/handler"
	"sitera-backend/internal/middleware"
	"sitera-backend/internal/repository"
	"sitera-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupTeraUlangRoutes(app *fiber.App, db *gorm.DB, jwtSecret string) {
	wajibRepo := repository.NewWajibTeraRepository(db)
	uttpRepo := repository.NewUTTPRepository(db)
	riwayatRepo := repository.NewRiwayatRepository(db)

	uc := usecase.NewTeraUlangUsecase(wajibRepo, uttpRepo, riwayatRepo)
	hdl := handler.NewTeraUlangHandler(uc, riwayatRepo)

	api := app.Group("/api/admin/tera-ulang", middleware.Auth(jwtSecret))
	api.Post("/", hdl.TeraUlang)
	api.Get("/riwayat", hdl.GetRiwayat)
}
