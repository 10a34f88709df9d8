package raffleservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/julianaianov/rifamax/internal/domain"
)

func NewMock(t *testing.T) (*Service, *MockRepo, *MockPurchaseRepo, *MockNumberRepo) {
	ctrl := gomock.NewController(t)
	raffleRepo := NewMockRepo(ctrl)
	purchaseRepo := NewMockPurchaseRepo(ctrl)
	numberRepo := NewMockNumberRepo(ctrl)

	service := New(raffleRepo, purchaseRepo, numberRepo)
	defer ctrl.Finish()
	return service, raffleRepo, purchaseRepo, numberRepo
}

func validInput() CreateInput {
	return CreateInput{
		Title:        "Smartphone",
		Description:  "Latest model",
		Prize:        "iPhone",
		Price:        5.0,
		TotalNumbers: 100,
		DrawDate:     time.Now().Add(24 * time.Hour),
	}
}

func TestCreate(t *testing.T) {
	t.Run("Assigns id and active status", func(t *testing.T) {
		service, raffleRepo, _, _ := NewMock(t)
		raffleRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

		raffle, err := service.Create(context.Background(), validInput())
		assert.NoError(t, err)
		assert.NotEmpty(t, raffle.ID)
		assert.Equal(t, domain.RaffleActive, raffle.Status)
		assert.Nil(t, raffle.WinnerNumber)
	})

	t.Run("Rejects non-positive price", func(t *testing.T) {
		service, _, _, _ := NewMock(t)
		input := validInput()
		input.Price = 0

		raffle, err := service.Create(context.Background(), input)
		assert.ErrorIs(t, err, ErrInvalidPrice)
		assert.Nil(t, raffle)
	})

	t.Run("Rejects non-positive total numbers", func(t *testing.T) {
		service, _, _, _ := NewMock(t)
		input := validInput()
		input.TotalNumbers = -1

		raffle, err := service.Create(context.Background(), input)
		assert.ErrorIs(t, err, ErrInvalidTotalNumbers)
		assert.Nil(t, raffle)
	})
}

func TestGet(t *testing.T) {
	t.Run("Raffle exists", func(t *testing.T) {
		service, raffleRepo, _, _ := NewMock(t)
		expected := &domain.Raffle{ID: "raffle-1", Status: domain.RaffleActive}
		raffleRepo.EXPECT().FindByID(gomock.Any(), "raffle-1").Return(expected, nil)

		raffle, err := service.Get(context.Background(), "raffle-1")
		assert.NoError(t, err)
		assert.Equal(t, expected, raffle)
	})

	t.Run("Raffle not found", func(t *testing.T) {
		service, raffleRepo, _, _ := NewMock(t)
		raffleRepo.EXPECT().FindByID(gomock.Any(), "missing").Return(nil, nil)

		raffle, err := service.Get(context.Background(), "missing")
		assert.ErrorIs(t, err, domain.ErrRaffleNotFound)
		assert.Nil(t, raffle)
	})
}

func TestUpdate(t *testing.T) {
	t.Run("Updates an active raffle", func(t *testing.T) {
		service, raffleRepo, _, _ := NewMock(t)
		raffleRepo.EXPECT().FindByID(gomock.Any(), "raffle-1").Return(&domain.Raffle{
			ID:     "raffle-1",
			Status: domain.RaffleActive,
		}, nil)
		raffleRepo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)

		input := validInput()
		raffle, err := service.Update(context.Background(), "raffle-1", input)
		assert.NoError(t, err)
		assert.Equal(t, input.Title, raffle.Title)
		assert.Equal(t, input.Price, raffle.Price)
	})

	t.Run("Completed raffle is frozen", func(t *testing.T) {
		service, raffleRepo, _, _ := NewMock(t)
		raffleRepo.EXPECT().FindByID(gomock.Any(), "raffle-1").Return(&domain.Raffle{
			ID:     "raffle-1",
			Status: domain.RaffleCompleted,
		}, nil)

		raffle, err := service.Update(context.Background(), "raffle-1", validInput())
		assert.ErrorIs(t, err, domain.ErrRaffleNotActive)
		assert.Nil(t, raffle)
	})

	t.Run("Raffle not found", func(t *testing.T) {
		service, raffleRepo, _, _ := NewMock(t)
		raffleRepo.EXPECT().FindByID(gomock.Any(), "missing").Return(nil, nil)

		raffle, err := service.Update(context.Background(), "missing", validInput())
		assert.ErrorIs(t, err, domain.ErrRaffleNotFound)
		assert.Nil(t, raffle)
	})
}

func TestDelete(t *testing.T) {
	t.Run("Raffle deleted", func(t *testing.T) {
		service, raffleRepo, _, _ := NewMock(t)
		raffleRepo.EXPECT().Delete(gomock.Any(), "raffle-1").Return(true, nil)

		assert.NoError(t, service.Delete(context.Background(), "raffle-1"))
	})

	t.Run("Raffle not found", func(t *testing.T) {
		service, raffleRepo, _, _ := NewMock(t)
		raffleRepo.EXPECT().Delete(gomock.Any(), "missing").Return(false, nil)

		err := service.Delete(context.Background(), "missing")
		assert.ErrorIs(t, err, domain.ErrRaffleNotFound)
	})
}

func TestAdminStats(t *testing.T) {
	t.Run("Composes counters", func(t *testing.T) {
		service, raffleRepo, purchaseRepo, numberRepo := NewMock(t)
		raffleRepo.EXPECT().CountByStatus(gomock.Any()).Return(10, 7, 3, nil)
		purchaseRepo.EXPECT().Aggregate(gomock.Any()).Return(12, 185.0, nil)
		numberRepo.EXPECT().CountSoldAll(gomock.Any()).Return(120, nil)

		stats, err := service.AdminStats(context.Background())
		assert.NoError(t, err)
		assert.Equal(t, &domain.AdminStats{
			TotalRaffles:     10,
			ActiveRaffles:    7,
			CompletedRaffles: 3,
			TotalPurchases:   12,
			TotalRevenue:     185.0,
			TotalNumbersSold: 120,
		}, stats)
	})

	t.Run("Counter failure propagates", func(t *testing.T) {
		service, raffleRepo, _, _ := NewMock(t)
		raffleRepo.EXPECT().CountByStatus(gomock.Any()).Return(0, 0, 0, errors.New("database error"))

		stats, err := service.AdminStats(context.Background())
		assert.Error(t, err)
		assert.Nil(t, stats)
	})
}

func TestList(t *testing.T) {
	service, raffleRepo, _, _ := NewMock(t)
	status := domain.RaffleActive
	raffleRepo.EXPECT().FindAll(gomock.Any(), &status).Return([]domain.Raffle{
		{ID: "raffle-1", Status: domain.RaffleActive},
	}, nil)

	raffles, err := service.List(context.Background(), &status)
	assert.NoError(t, err)
	assert.Len(t, raffles, 1)
}
