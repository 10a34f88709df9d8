package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/julianaianov/rifamax/docs"
	authhandlers "github.com/julianaianov/rifamax/internal/handlers/auth"
	drawhandlers "github.com/julianaianov/rifamax/internal/handlers/draw"
	purchasehandlers "github.com/julianaianov/rifamax/internal/handlers/purchase"
	raffleshandlers "github.com/julianaianov/rifamax/internal/handlers/raffles"
	uploadhandlers "github.com/julianaianov/rifamax/internal/handlers/upload"
	"github.com/julianaianov/rifamax/internal/service"
	"github.com/julianaianov/rifamax/pkg/auth"
)

//go:generate mockgen -source=handlers.go -destination=handlers_mock.go -package=handlers
type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
	Me(w http.ResponseWriter, r *http.Request)
}

type RaffleHandler interface {
	CreateRaffle(w http.ResponseWriter, r *http.Request)
	GetRaffle(w http.ResponseWriter, r *http.Request)
	ListRaffles(w http.ResponseWriter, r *http.Request)
	UpdateRaffle(w http.ResponseWriter, r *http.Request)
	DeleteRaffle(w http.ResponseWriter, r *http.Request)
	AdminStats(w http.ResponseWriter, r *http.Request)
}

type PurchaseHandler interface {
	CreatePurchase(w http.ResponseWriter, r *http.Request)
	ListPurchases(w http.ResponseWriter, r *http.Request)
	PurchaseQR(w http.ResponseWriter, r *http.Request)
	GetNumbers(w http.ResponseWriter, r *http.Request)
	GetStats(w http.ResponseWriter, r *http.Request)
	ResetNumbers(w http.ResponseWriter, r *http.Request)
}

type DrawHandler interface {
	DrawRaffle(w http.ResponseWriter, r *http.Request)
}

type UploadHandler interface {
	UploadImage(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler     AuthHandler
	RaffleHandler   RaffleHandler
	PurchaseHandler PurchaseHandler
	DrawHandler     DrawHandler
	UploadHandler   UploadHandler

	uploadDir string
}

func New(s *service.Services, uploadDir string) *Handlers {
	return &Handlers{
		AuthHandler:     authhandlers.New(s.AuthService),
		RaffleHandler:   raffleshandlers.New(s.RaffleService),
		PurchaseHandler: purchasehandlers.New(s.LedgerService),
		DrawHandler:     drawhandlers.New(s.DrawService),
		UploadHandler:   uploadhandlers.New(uploadDir),
		uploadDir:       uploadDir,
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})
	r.Handle("/uploads/*", http.StripPrefix("/uploads/", http.FileServer(http.Dir(h.uploadDir))))

	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", h.AuthHandler.Register)
			r.Post("/login", h.AuthHandler.Login)

			r.Group(func(r chi.Router) {
				r.Use(auth.AuthMiddleware)
				r.Get("/me", h.AuthHandler.Me)
			})
		})

		r.Route("/raffles", func(r chi.Router) {
			r.Get("/", h.RaffleHandler.ListRaffles)
			r.Get("/{raffleID}", h.RaffleHandler.GetRaffle)
			r.Get("/{raffleID}/numbers", h.PurchaseHandler.GetNumbers)
			r.Get("/{raffleID}/stats", h.PurchaseHandler.GetStats)

			r.Group(func(r chi.Router) {
				r.Use(auth.AuthMiddleware)
				r.Post("/", h.RaffleHandler.CreateRaffle)
				r.Put("/{raffleID}", h.RaffleHandler.UpdateRaffle)
				r.Delete("/{raffleID}", h.RaffleHandler.DeleteRaffle)
				r.Post("/{raffleID}/draw", h.DrawHandler.DrawRaffle)
				r.Post("/{raffleID}/reset-numbers", h.PurchaseHandler.ResetNumbers)
			})
		})

		r.Post("/purchase", h.PurchaseHandler.CreatePurchase)
		r.Get("/purchases", h.PurchaseHandler.ListPurchases)
		r.Get("/purchases/{purchaseID}/qr", h.PurchaseHandler.PurchaseQR)

		r.Group(func(r chi.Router) {
			r.Use(auth.AuthMiddleware)
			r.Post("/upload-image", h.UploadHandler.UploadImage)
			r.Get("/admin/stats", h.RaffleHandler.AdminStats)
		})
	})

	return r
}
