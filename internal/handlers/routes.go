package handlers

import (
	"github.com/gofiber/fiber/v2"

	"ledger/internal/services/transaction"
)

// SetupRoutes registers the ledger endpoints on the app.
func SetupRoutes(app *fiber.App, svc transaction.Service) {
	healthz := app.Group("/healthz")
	healthz.Get("/up", UpCheck)
	healthz.Get("/ready", ReadyCheck)

	h := NewTransactionHandler(svc)
	api := app.Group("/api")
	api.Post("/create_transaction", h.CreateTransaction)
	api.Post("/create_report", h.CreateReport)
}
