package routes

import (
	"sitera-backend/internal/handler"
	"sitera-backend/internal/middleware"
	"sitera-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupPermohonanRoutes(app *fiber.App, db *gorm.DB, jwtSecret string) {
	repo := repository.NewPermohonanRepository(db)
	notifRepo := repository.NewNotifikasiRepository(db)
	hdl := handler.NewPermohonanHandler(repo, notifRepo)

	// Pengajuan dari landing page, tanpa login
	app.Post("/api/permohonan", hdl.Create)

	api := app.Group("/api/admin/permohonan", middleware.Auth(jwtSecret))
	api.Get("/", hdl.GetAll)
	api.Patch("/:id/status", hdl.UpdateStatus)
}
