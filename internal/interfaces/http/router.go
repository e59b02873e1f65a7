package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/restock-api/internal/application/auth"
	"github.com/jhoicas/restock-api/internal/application/merchants"
	"github.com/jhoicas/restock-api/internal/application/shipments"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC         *auth.AuthUseCase
	MerchantUC     *merchants.FetchUserMerchantUseCase
	CreateShipment *shipments.CreateShipmentUseCase
	FetchShipment  *shipments.FetchShipmentUseCase
	JWTSecret      string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Envíos de reabastecimiento (protegido, requiere Bearer Token)
	user := api.Group("/v1/user", AuthMiddleware(deps.JWTSecret))
	shipmentHandler := NewShipmentHandler(deps.MerchantUC, deps.CreateShipment, deps.FetchShipment)
	user.Post("/restocking_shipments", shipmentHandler.Create)
	user.Get("/restocking_shipments/:id", shipmentHandler.Show)
}
