package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/leandromunizdev/backend-gerenciamento-cultos/internals/features/auth/controller"
	"github.com/leandromunizdev/backend-gerenciamento-cultos/internals/middlewares"
)

// AuthPublicRoutes registra o login (com limiter próprio).
func AuthPublicRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := controller.NewAuthController(db)
	r.Post("/auth/login", middlewares.LoginRateLimiter(), ctrl.Login)
}

// AuthProtectedRoutes registra as rotas que exigem token válido.
func AuthProtectedRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := controller.NewAuthController(db)
	r.Get("/auth/me", ctrl.Me)
	r.Get("/auth/verify", ctrl.Verify)
	r.Post("/auth/logout", ctrl.Logout)
}
