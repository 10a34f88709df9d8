package raffleservice

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/julianaianov/rifamax/internal/domain"
)

type Repo interface {
	Create(ctx context.Context, raffle *domain.Raffle) error
	FindByID(ctx context.Context, raffleID string) (*domain.Raffle, error)
	FindAll(ctx context.Context, status *domain.RaffleStatus) ([]domain.Raffle, error)
	Update(ctx context.Context, raffle *domain.Raffle) error
	Delete(ctx context.Context, raffleID string) (bool, error)
	CountByStatus(ctx context.Context) (total, active, completed int, err error)
}

type PurchaseRepo interface {
	Aggregate(ctx context.Context) (count int, revenue float64, err error)
}

type NumberRepo interface {
	CountSoldAll(ctx context.Context) (int, error)
}

type Service struct {
	raffleRepo   Repo
	purchaseRepo PurchaseRepo
	numberRepo   NumberRepo
}

func New(raffleRepo Repo, purchaseRepo PurchaseRepo, numberRepo NumberRepo) *Service {
	return &Service{
		raffleRepo:   raffleRepo,
		purchaseRepo: purchaseRepo,
		numberRepo:   numberRepo,
	}
}

var (
	ErrInvalidPrice        = errors.New("price must be positive")
	ErrInvalidTotalNumbers = errors.New("total_numbers must be positive")
)

// CreateInput carries the operator-provided raffle fields; identity,
// status and timestamps are assigned here.
type CreateInput struct {
	Title        string
	Description  string
	Prize        string
	Price        float64
	TotalNumbers int
	ImageURL     *string
	DrawDate     time.Time
}

func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.Raffle, error) {
	if input.Price <= 0 {
		return nil, ErrInvalidPrice
	}
	if input.TotalNumbers <= 0 {
		return nil, ErrInvalidTotalNumbers
	}

	raffle := &domain.Raffle{
		ID:           uuid.NewString(),
		Title:        input.Title,
		Description:  input.Description,
		Prize:        input.Prize,
		Price:        input.Price,
		TotalNumbers: input.TotalNumbers,
		ImageURL:     input.ImageURL,
		DrawDate:     input.DrawDate,
		Status:       domain.RaffleActive,
		CreatedAt:    time.Now(),
	}
	if err := s.raffleRepo.Create(ctx, raffle); err != nil {
		zap.L().Error("can't create raffle", zap.Error(err))
		return nil, err
	}

	zap.L().Info("raffle created", zap.String("raffleID", raffle.ID), zap.String("title", raffle.Title))
	return raffle, nil
}

func (s *Service) Get(ctx context.Context, raffleID string) (*domain.Raffle, error) {
	raffle, err := s.raffleRepo.FindByID(ctx, raffleID)
	if err != nil {
		return nil, err
	}
	if raffle == nil {
		return nil, domain.ErrRaffleNotFound
	}
	return raffle, nil
}

func (s *Service) List(ctx context.Context, status *domain.RaffleStatus) ([]domain.Raffle, error) {
	raffles, err := s.raffleRepo.FindAll(ctx, status)
	if err != nil {
		zap.L().Error("failed to get raffles", zap.Error(err))
		return nil, err
	}
	return raffles, nil
}

// Update replaces the descriptive fields of an active raffle. Completed
// and cancelled raffles are frozen so the drawn outcome cannot drift.
func (s *Service) Update(ctx context.Context, raffleID string, input CreateInput) (*domain.Raffle, error) {
	if input.Price <= 0 {
		return nil, ErrInvalidPrice
	}
	if input.TotalNumbers <= 0 {
		return nil, ErrInvalidTotalNumbers
	}

	raffle, err := s.raffleRepo.FindByID(ctx, raffleID)
	if err != nil {
		return nil, err
	}
	if raffle == nil {
		return nil, domain.ErrRaffleNotFound
	}
	if raffle.Status != domain.RaffleActive {
		return nil, domain.ErrRaffleNotActive
	}

	raffle.Title = input.Title
	raffle.Description = input.Description
	raffle.Prize = input.Prize
	raffle.Price = input.Price
	raffle.TotalNumbers = input.TotalNumbers
	raffle.ImageURL = input.ImageURL
	raffle.DrawDate = input.DrawDate

	if err := s.raffleRepo.Update(ctx, raffle); err != nil {
		zap.L().Error("can't update raffle", zap.Error(err))
		return nil, err
	}
	return raffle, nil
}

func (s *Service) Delete(ctx context.Context, raffleID string) error {
	deleted, err := s.raffleRepo.Delete(ctx, raffleID)
	if err != nil {
		zap.L().Error("can't delete raffle", zap.Error(err))
		return err
	}
	if !deleted {
		return domain.ErrRaffleNotFound
	}
	zap.L().Info("raffle deleted", zap.String("raffleID", raffleID))
	return nil
}

func (s *Service) AdminStats(ctx context.Context) (*domain.AdminStats, error) {
	total, active, completed, err := s.raffleRepo.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}
	purchases, revenue, err := s.purchaseRepo.Aggregate(ctx)
	if err != nil {
		return nil, err
	}
	sold, err := s.numberRepo.CountSoldAll(ctx)
	if err != nil {
		return nil, err
	}

	return &domain.AdminStats{
		TotalRaffles:     total,
		ActiveRaffles:    active,
		CompletedRaffles: completed,
		TotalPurchases:   purchases,
		TotalRevenue:     revenue,
		TotalNumbersSold: sold,
	}, nil
}
