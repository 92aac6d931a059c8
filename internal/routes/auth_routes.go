package routes

import (
	"sitera-backend/internal/handler"
	"sitera-backend/internal/middleware"
	"sitera-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupAuthRoutes(app *fiber.App, db *gorm.DB, jwtSecret string) {
	repo := repository.NewUserRepository(db)
	hdl := handler.NewAuthHandler(repo, jwtSecret)

	api := app.Group("/api/auth")
	api.Post("/login", hdl.Login)

	profil := api.Group("/", middleware.Auth(jwtSecret))
	profil.Get("/profil", hdl.GetProfile)
	profil.Patch("/password", hdl.ChangePassword)
}
