package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/rishab4242/Expense-Tracker-App/internal/auth"
	"github.com/rishab4242/Expense-Tracker-App/internal/transaction"
)

type Router struct {
	AuthHandler *auth.Handler
	TxHandler   *transaction.Handler
	AuthMW      fiber.Handler
}

func (r *Router) RegisterRoutes(app *fiber.App) {
	if r.AuthHandler != nil {
		app.Post("/api/auth/signup", RateLimitAuth(), r.AuthHandler.Signup)
		app.Post("/api/auth/login", RateLimitAuth(), r.AuthHandler.Login)
	}

	if r.TxHandler != nil {
		app.Post("/api/transactions", RateLimitWrite(), r.AuthMW, r.TxHandler.Create)
		app.Get("/api/transactions", r.AuthMW, r.TxHandler.List)
		app.Get("/api/transactions/summary", r.AuthMW, r.TxHandler.Summary)
		app.Put("/api/transactions/:id", RateLimitWrite(), r.AuthMW, r.TxHandler.Update)
		app.Delete("/api/transactions/:id", RateLimitWrite(), r.AuthMW, r.TxHandler.Delete)
	}
}
