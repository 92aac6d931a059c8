package routes

import (
	"sitera-backend/internal/handler"
	"sitera-backend/internal/middleware"
	"sitera-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupNotifikasiRoutes(app *fiber.App, db *gorm.DB, jwtSecret string) {
	repo := repository.NewNotifikasiRepository(db)
	hdl := handler.NewNotifikasiHandler(repo)

	api := app.Group("/api/admin/notifikasi", middleware.Auth(jwtSecret))
	api.Get("/", hdl.GetAll)
	api.Patch("/baca-semua", hdl.MarkAllRead)
	api.Patch("/:id/baca", hdl.MarkRead)
}
