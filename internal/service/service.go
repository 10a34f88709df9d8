package service

import (
	"github.com/julianaianov/rifamax/internal/handlers/auth"
	"github.com/julianaianov/rifamax/internal/handlers/draw"
	"github.com/julianaianov/rifamax/internal/handlers/purchase"
	"github.com/julianaianov/rifamax/internal/handlers/raffles"

	pkgauth "github.com/julianaianov/rifamax/pkg/auth"

	"github.com/julianaianov/rifamax/internal/pg"
	"github.com/julianaianov/rifamax/internal/repo"
	authservice "github.com/julianaianov/rifamax/internal/service/authservice"
	drawservice "github.com/julianaianov/rifamax/internal/service/drawservice"
	ledgerservice "github.com/julianaianov/rifamax/internal/service/ledgerservice"
	raffleservice "github.com/julianaianov/rifamax/internal/service/raffleservice"
)

type Services struct {
	AuthService   auth.Service
	RaffleService raffles.Service
	LedgerService purchase.Service
	DrawService   draw.Service
}

func New(repo *repo.Repositories, txManager pg.TXManager) *Services {
	raffleService := raffleservice.New(repo.RaffleRepo, repo.PurchaseRepo, repo.NumberRepo)
	ledgerService := ledgerservice.New(repo.RaffleRepo, repo.NumberRepo, repo.PurchaseRepo, txManager)
	drawService := drawservice.New(repo.RaffleRepo, repo.NumberRepo, txManager)
	authService := authservice.New(repo.UserRepo, &pkgauth.HashService{}, &pkgauth.JWTService{})

	return &Services{
		AuthService:   authService,
		RaffleService: raffleService,
		LedgerService: ledgerService,
		DrawService:   drawService,
	}
}
