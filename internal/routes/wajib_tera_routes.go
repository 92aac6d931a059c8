package routes

import (
	"sitera-backend/internal/handler"
	"sitera-backend/internal/middleware"
	"sitera-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupWajibTeraRoutes(app *fiber.App, db *gorm.DB, jwtSecret string) {
	wajibRepo := repository.NewWajibTeraRepository(db)
	uttpRepo := repository.NewUTTPRepository(db)
	riwayatRepo := repository.NewRiwayatRepository(db)
	hdl := handler.NewWajibTeraHandler(wajibRepo, uttpRepo, riwayatRepo)

	api := app.Group("/api/admin/wajib-tera", middleware.Auth(jwtSecret))
	api.Get("/pasar", hdl.GetPasar)
	api.Get("/spbu", hdl.GetSPBU)
	api.Get("/umum", hdl.GetUmum)
	api.Get("/:kategori/:id", hdl.GetDetail)
}
