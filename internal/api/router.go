// internal/api/router.go
package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"peertrade/internal/api/handler"
	"peertrade/internal/api/middleware"
)

// Handlers groups the handler set mounted by NewRouter.
type Handlers struct {
	Trade        *handler.TradeHandler
	Wallet       *handler.WalletHandler
	Transaction  *handler.TransactionHandler
	Notification *handler.NotificationHandler
	Payments     *handler.PaymentsHandler
	User         *handler.UserHandler
}

// NewRouter sets up and returns a new HTTP router. All business routes sit
// behind bearer-token auth; health and metrics are open.
func NewRouter(h Handlers, jwtSecret string) http.Handler {
	r := chi.NewRouter()

	// Global middlewares
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(handler.DefaultTimeout))
	r.Use(middleware.Metrics)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})
	r.Handle("/metrics", promhttp.Handler())

	// Registration happens before the caller holds a token.
	r.Post("/users/register", h.User.Register)

	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(jwtSecret))

		r.Get("/users/me", h.User.Me)

		r.Route("/trade", func(r chi.Router) {
			r.Post("/create-trade", h.Trade.CreateTrade)
			r.Post("/buy-trade", h.Trade.BuyTrade)
			r.Get("/get-all-trades", h.Trade.GetAllTrades)
			r.Get("/get-mine", h.Trade.GetMyTrades)
			r.Get("/get-all-except-mine", h.Trade.GetAllExceptMine)
			r.Get("/get-trade/{tradeID}", h.Trade.GetTrade)
			r.Get("/bought-trades", h.Trade.GetBoughtTrades)
			r.Get("/bought-trade/{id}", h.Trade.GetBoughtTrade)
			r.Get("/my-bought-trades", h.Trade.GetMyBoughtTrades)
			r.Delete("/delete-a-trade/{tradeID}", h.Trade.DeleteTrade)
			r.Delete("/delete-all-trades", h.Trade.DeleteAllTrades)
			r.Delete("/delete-my-trades/user/{userID}", h.Trade.DeleteMyTrades)
			r.Post("/create-beneficiary", h.Trade.CreateBeneficiary)
			r.Get("/get-user-beneficiaries", h.Trade.GetUserBeneficiaries)
			r.Delete("/delete-beneficiary/{id}", h.Trade.DeleteBeneficiary)
			r.Delete("/delete-all-beneficiaries", h.Trade.DeleteAllBeneficiaries)
		})

		r.Route("/wallet", func(r chi.Router) {
			r.Post("/fund", h.Wallet.Fund)
			r.Get("/get-wallets", h.Wallet.GetWallets)
			r.Delete("/delete-all/user/{userID}", h.Wallet.DeleteAllForUser)
		})

		r.Route("/transactions", func(r chi.Router) {
			r.Get("/", h.Transaction.List)
			// Registered before {id} so "delete-all" is not parsed as an id.
			r.Delete("/delete-all", h.Transaction.DeleteAll)
			r.Get("/{id}", h.Transaction.Get)
			r.Put("/{id}", h.Transaction.Update)
			r.Delete("/{id}", h.Transaction.Delete)
		})

		r.Route("/notifications", func(r chi.Router) {
			r.Get("/", h.Notification.List)
			r.Post("/mark-all-read", h.Notification.MarkAllRead)
		})

		r.Route("/payments", func(r chi.Router) {
			r.Post("/card/initialize", h.Payments.InitializeCharge)
			r.Get("/card/verify/{reference}", h.Payments.VerifyCharge)
			r.Post("/open-banking/payment", h.Payments.InitiatePayment)
			r.Post("/open-banking/withdrawal", h.Payments.InitiateWithdrawal)
			r.Post("/asset/transfer", h.Payments.SubmitTransfer)
		})

		r.Route("/banking", func(r chi.Router) {
			r.Post("/exchange-token", h.Payments.ExchangeToken)
			r.Get("/account/{id}", h.Payments.GetAccount)
		})
	})

	return r
}
