package routes

import (
	"sitera-backend/internal/handler"
	"sitera-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupArtikelRoutes(app *fiber.App, db *gorm.DB) {
	repo := repository.NewArtikelRepository(db)
	hdl := handler.NewArtikelHandler(repo)

	// Konten landing page, tanpa login
	api := app.Group("/api/artikel")
	api.Get("/", hdl.GetAll)
	api.Get("/:slug", hdl.GetBySlug)
}
