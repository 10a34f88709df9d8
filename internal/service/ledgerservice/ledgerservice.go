package ledgerservice

import (
	"context"
	"errors"
	"fmt"
	"math"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"

	"github.com/julianaianov/rifamax/internal/domain"
	"github.com/julianaianov/rifamax/internal/pg"
)

type RaffleRepo interface {
	FindByID(ctx context.Context, raffleID string) (*domain.Raffle, error)
	FindByIDForUpdate(ctx context.Context, raffleID string) (*domain.Raffle, error)
	Reactivate(ctx context.Context, raffleID string) error
}

type NumberRepo interface {
	FindByRaffleID(ctx context.Context, raffleID string) ([]domain.RaffleNumber, error)
	FindTaken(ctx context.Context, raffleID string, numbers []int) ([]int, error)
	CreateSold(ctx context.Context, raffleID string, numbers []int, buyer domain.Buyer, purchaseID string, soldAt time.Time) error
	FindNumbersByPurchaseID(ctx context.Context, purchaseID string) ([]int, error)
	CountByStatus(ctx context.Context, raffleID string) (sold, reserved int, err error)
	DeleteByRaffleID(ctx context.Context, raffleID string) (int, error)
}

type PurchaseRepo interface {
	Create(ctx context.Context, purchase *domain.Purchase) error
	FindByID(ctx context.Context, purchaseID string) (*domain.Purchase, error)
	FindAll(ctx context.Context, raffleID *string) ([]domain.Purchase, error)
}

// Service owns the number ledger: it validates and records purchases,
// reports per-raffle state and clears it on reset. Exclusivity of sold
// numbers is enforced inside one transaction per operation, with the
// (raffle_id, number) unique constraint as the final backstop.
type Service struct {
	raffleRepo   RaffleRepo
	numberRepo   NumberRepo
	purchaseRepo PurchaseRepo
	txManager    pg.TXManager
}

func New(raffleRepo RaffleRepo, numberRepo NumberRepo, purchaseRepo PurchaseRepo, txManager pg.TXManager) *Service {
	return &Service{
		raffleRepo:   raffleRepo,
		numberRepo:   numberRepo,
		purchaseRepo: purchaseRepo,
		txManager:    txManager,
	}
}

// PurchaseRecord pairs a purchase with the numbers it sold.
type PurchaseRecord struct {
	Purchase domain.Purchase
	Numbers  []int
}

func (s *Service) Purchase(ctx context.Context, raffleID string, numbers []int, buyer domain.Buyer) (*PurchaseRecord, error) {
	if len(numbers) == 0 {
		return nil, domain.ErrNoNumbers
	}
	sorted := slices.Clone(numbers)
	slices.Sort(sorted)
	for i := 1; i < len(sorted); i++ {
		if sorted[i] == sorted[i-1] {
			return nil, domain.ErrDuplicateNumbers
		}
	}

	var purchase *domain.Purchase
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		raffle, err := s.raffleRepo.FindByIDForUpdate(ctx, raffleID)
		if err != nil {
			return err
		}
		if raffle == nil {
			return domain.ErrRaffleNotFound
		}
		if raffle.Status != domain.RaffleActive {
			return domain.ErrRaffleNotActive
		}
		for _, n := range sorted {
			if n < 1 || n > raffle.TotalNumbers {
				return fmt.Errorf("%w: %d", domain.ErrNumberOutOfRange, n)
			}
		}

		taken, err := s.numberRepo.FindTaken(ctx, raffleID, sorted)
		if err != nil {
			return err
		}
		if len(taken) > 0 {
			return &domain.NumbersTakenError{Numbers: taken}
		}

		now := time.Now()
		purchase = &domain.Purchase{
			ID:          uuid.NewString(),
			RaffleID:    raffleID,
			Buyer:       buyer,
			TotalAmount: float64(len(sorted)) * raffle.Price,
			Status:      domain.PurchaseConfirmed,
			CreatedAt:   now,
		}
		if err := s.purchaseRepo.Create(ctx, purchase); err != nil {
			return err
		}
		return s.numberRepo.CreateSold(ctx, raffleID, sorted, buyer, purchase.ID, now)
	})
	if err != nil {
		// a concurrent purchase can slip past the pre-check; the unique
		// constraint rejects it and we report it as the same conflict
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			taken, findErr := s.numberRepo.FindTaken(ctx, raffleID, sorted)
			if findErr != nil || len(taken) == 0 {
				taken = sorted
			}
			return nil, &domain.NumbersTakenError{Numbers: taken}
		}
		return nil, err
	}

	zap.L().Info("purchase recorded",
		zap.String("raffleID", raffleID),
		zap.String("purchaseID", purchase.ID),
		zap.Ints("numbers", sorted),
	)
	return &PurchaseRecord{Purchase: *purchase, Numbers: sorted}, nil
}

// Numbers returns every recorded number row for the raffle; only sold
// numbers have rows, the rest are implicitly available.
func (s *Service) Numbers(ctx context.Context, raffleID string) ([]domain.RaffleNumber, error) {
	raffle, err := s.raffleRepo.FindByID(ctx, raffleID)
	if err != nil {
		return nil, err
	}
	if raffle == nil {
		return nil, domain.ErrRaffleNotFound
	}
	return s.numberRepo.FindByRaffleID(ctx, raffleID)
}

func (s *Service) Stats(ctx context.Context, raffleID string) (*domain.RaffleStats, error) {
	raffle, err := s.raffleRepo.FindByID(ctx, raffleID)
	if err != nil {
		return nil, err
	}
	if raffle == nil {
		return nil, domain.ErrRaffleNotFound
	}

	sold, reserved, err := s.numberRepo.CountByStatus(ctx, raffleID)
	if err != nil {
		return nil, err
	}

	progress := 0.0
	if raffle.TotalNumbers > 0 {
		progress = math.Round(float64(sold)/float64(raffle.TotalNumbers)*100*100) / 100
	}

	return &domain.RaffleStats{
		TotalNumbers:       raffle.TotalNumbers,
		Sold:               sold,
		Reserved:           reserved,
		Available:          raffle.TotalNumbers - sold - reserved,
		TotalRevenue:       float64(sold) * raffle.Price,
		ProgressPercentage: progress,
	}, nil
}

// Reset wipes every number row for the raffle and reopens it, clearing
// the winner. Callable on a completed raffle to relaunch it.
func (s *Service) Reset(ctx context.Context, raffleID string) (int, error) {
	var cleared int
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		raffle, err := s.raffleRepo.FindByIDForUpdate(ctx, raffleID)
		if err != nil {
			return err
		}
		if raffle == nil {
			return domain.ErrRaffleNotFound
		}

		cleared, err = s.numberRepo.DeleteByRaffleID(ctx, raffleID)
		if err != nil {
			return err
		}
		return s.raffleRepo.Reactivate(ctx, raffleID)
	})
	if err != nil {
		return 0, err
	}

	zap.L().Info("raffle numbers reset", zap.String("raffleID", raffleID), zap.Int("cleared", cleared))
	return cleared, nil
}

func (s *Service) GetPurchase(ctx context.Context, purchaseID string) (*PurchaseRecord, error) {
	purchase, err := s.purchaseRepo.FindByID(ctx, purchaseID)
	if err != nil {
		return nil, err
	}
	if purchase == nil {
		return nil, domain.ErrPurchaseNotFound
	}
	numbers, err := s.numberRepo.FindNumbersByPurchaseID(ctx, purchaseID)
	if err != nil {
		return nil, err
	}
	return &PurchaseRecord{Purchase: *purchase, Numbers: numbers}, nil
}

func (s *Service) ListPurchases(ctx context.Context, raffleID *string) ([]PurchaseRecord, error) {
	purchases, err := s.purchaseRepo.FindAll(ctx, raffleID)
	if err != nil {
		return nil, err
	}

	records := make([]PurchaseRecord, 0, len(purchases))
	for _, p := range purchases {
		numbers, err := s.numberRepo.FindNumbersByPurchaseID(ctx, p.ID)
		if err != nil {
			return nil, err
		}
		records = append(records, PurchaseRecord{Purchase: p, Numbers: numbers})
	}
	return records, nil
}
