package scheduler

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/julianaianov/rifamax/internal/config"
	"github.com/julianaianov/rifamax/internal/domain"
)

var drawingRaffles sync.Map

//go:generate mockgen -source=scheduler.go -destination=scheduler_mock.go -package=scheduler
type RaffleRepo interface {
	FindDueForDraw(ctx context.Context, limit uint32) ([]domain.Raffle, error)
}

type DrawService interface {
	Draw(ctx context.Context, raffleID string) (*domain.DrawResult, error)
}

// Service polls for active raffles whose draw date has passed and draws
// them automatically.
type Service struct {
	raffleRepo   RaffleRepo
	drawService  DrawService
	limit        uint32
	workerPool   WorkerPoolI
	pollInterval time.Duration
}

func New(cfg *config.Config, raffleRepo RaffleRepo, drawService DrawService) *Service {
	return &Service{
		raffleRepo:   raffleRepo,
		drawService:  drawService,
		limit:        1000,
		workerPool:   NewWorkerPool(10),
		pollInterval: cfg.DrawInterval,
	}
}

func (s *Service) Start(ctx context.Context) {
	zap.L().Info("Draw scheduler started", zap.Duration("pollInterval", s.pollInterval))
	go s.run(ctx)
}

func (s *Service) run(ctx context.Context) {
	ticker := time.NewTicker(s.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("Context canceled, stopping draw scheduler")
			s.workerPool.Close()
			return
		case <-ticker.C:
			s.processDueRaffles(ctx)
		}
	}
}

func (s *Service) processDueRaffles(ctx context.Context) {
	raffles, err := s.raffleRepo.FindDueForDraw(ctx, atomic.LoadUint32(&s.limit))
	if err != nil {
		zap.L().Error("Failed to fetch raffles due for draw", zap.Error(err))
		return
	}

	var g errgroup.Group
	for _, raffle := range raffles {
		raffle := raffle

		if _, loaded := drawingRaffles.LoadOrStore(raffle.ID, struct{}{}); loaded {
			continue
		}

		g.Go(func() error {
			err := s.workerPool.Submit(ctx, raffle.ID, func() error {
				defer drawingRaffles.Delete(raffle.ID)
				return s.drawRaffle(ctx, raffle)
			})
			if err != nil {
				drawingRaffles.Delete(raffle.ID)
				return err
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		zap.L().Error("Error scheduling draws", zap.Error(err))
	}
}

func (s *Service) drawRaffle(ctx context.Context, raffle domain.Raffle) error {
	result, err := s.drawService.Draw(ctx, raffle.ID)
	if err != nil {
		// A due raffle with no sales stays active until someone buys
		// or an operator resolves it by hand.
		if errors.Is(err, domain.ErrNoNumbersSold) {
			zap.L().Warn("Raffle past draw date has no sold numbers, skipping", zap.String("raffleID", raffle.ID))
			return nil
		}
		if errors.Is(err, domain.ErrRaffleNotActive) || errors.Is(err, domain.ErrRaffleNotFound) {
			return nil
		}
		return err
	}

	zap.L().Info("Raffle drawn automatically",
		zap.String("raffleID", result.RaffleID),
		zap.Int("winnerNumber", result.WinnerNumber),
	)
	return nil
}
