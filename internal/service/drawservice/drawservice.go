package drawservice

import (
	"context"
	"math/rand/v2"
	"time"

	"go.uber.org/zap"

	"github.com/julianaianov/rifamax/internal/domain"
	"github.com/julianaianov/rifamax/internal/pg"
)

type RaffleRepo interface {
	FindByIDForUpdate(ctx context.Context, raffleID string) (*domain.Raffle, error)
	SetWinner(ctx context.Context, raffleID string, winnerNumber int) error
}

type NumberRepo interface {
	FindByRaffleID(ctx context.Context, raffleID string) ([]domain.RaffleNumber, error)
}

// Service draws exactly one winner among a raffle's sold numbers and
// finalizes the raffle. Each sold number has equal probability, so a
// buyer holding k numbers has k times the chance of a single-number
// buyer.
type Service struct {
	raffleRepo RaffleRepo
	numberRepo NumberRepo
	txManager  pg.TXManager

	// intn must be uniform over [0, n); defaults to math/rand/v2.
	intn func(n int) int
}

func New(raffleRepo RaffleRepo, numberRepo NumberRepo, txManager pg.TXManager) *Service {
	return &Service{
		raffleRepo: raffleRepo,
		numberRepo: numberRepo,
		txManager:  txManager,
		intn:       rand.IntN,
	}
}

func (s *Service) Draw(ctx context.Context, raffleID string) (*domain.DrawResult, error) {
	var result *domain.DrawResult
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		raffle, err := s.raffleRepo.FindByIDForUpdate(ctx, raffleID)
		if err != nil {
			return err
		}
		if raffle == nil {
			return domain.ErrRaffleNotFound
		}
		// completed and cancelled are terminal for draws: a raffle can
		// only be drawn once
		if raffle.Status != domain.RaffleActive {
			return domain.ErrRaffleNotActive
		}

		numbers, err := s.numberRepo.FindByRaffleID(ctx, raffleID)
		if err != nil {
			return err
		}
		sold := make([]domain.RaffleNumber, 0, len(numbers))
		for _, n := range numbers {
			if n.Status == domain.NumberSold {
				sold = append(sold, n)
			}
		}
		if len(sold) == 0 {
			return domain.ErrNoNumbersSold
		}

		winner := sold[s.intn(len(sold))]
		if err := s.raffleRepo.SetWinner(ctx, raffleID, winner.Number); err != nil {
			return err
		}

		result = &domain.DrawResult{
			RaffleID:     raffleID,
			WinnerNumber: winner.Number,
			Winner:       winner.Buyer,
			DrawnAt:      time.Now(),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	zap.L().Info("raffle drawn",
		zap.String("raffleID", raffleID),
		zap.Int("winnerNumber", result.WinnerNumber),
	)
	return result, nil
}
