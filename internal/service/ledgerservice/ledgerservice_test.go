package ledgerservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/julianaianov/rifamax/internal/domain"
	"github.com/julianaianov/rifamax/internal/pg"
)

func NewMock(t *testing.T) (*Service, *MockRaffleRepo, *MockNumberRepo, *MockPurchaseRepo, *pg.MockTXManager) {
	ctrl := gomock.NewController(t)
	raffleRepo := NewMockRaffleRepo(ctrl)
	numberRepo := NewMockNumberRepo(ctrl)
	purchaseRepo := NewMockPurchaseRepo(ctrl)
	txManager := pg.NewMockTXManager(ctrl)

	service := New(raffleRepo, numberRepo, purchaseRepo, txManager)
	defer ctrl.Finish()
	return service, raffleRepo, numberRepo, purchaseRepo, txManager
}

func passThrough(txManager *pg.MockTXManager) {
	txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn pg.TransactionalFn) error {
			return fn(ctx)
		},
	)
}

func activeRaffle() *domain.Raffle {
	return &domain.Raffle{
		ID:           "raffle-1",
		Title:        "Smartphone",
		Prize:        "iPhone",
		Price:        5.0,
		TotalNumbers: 100,
		DrawDate:     time.Now().Add(24 * time.Hour),
		Status:       domain.RaffleActive,
	}
}

func TestPurchase(t *testing.T) {
	buyer := domain.Buyer{Name: "Maria", Phone: "11999999999", Email: "maria@example.com"}

	tests := []struct {
		name          string
		numbers       []int
		prepareMock   func(*MockRaffleRepo, *MockNumberRepo, *MockPurchaseRepo, *pg.MockTXManager)
		check         func(*testing.T, *PurchaseRecord, error)
		expectedError error
	}{
		{
			name:    "Successful purchase",
			numbers: []int{3, 1, 2},
			prepareMock: func(raffleRepo *MockRaffleRepo, numberRepo *MockNumberRepo, purchaseRepo *MockPurchaseRepo, txManager *pg.MockTXManager) {
				passThrough(txManager)
				raffleRepo.EXPECT().FindByIDForUpdate(gomock.Any(), "raffle-1").Return(activeRaffle(), nil)
				numberRepo.EXPECT().FindTaken(gomock.Any(), "raffle-1", []int{1, 2, 3}).Return(nil, nil)
				purchaseRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
				numberRepo.EXPECT().CreateSold(gomock.Any(), "raffle-1", []int{1, 2, 3}, buyer, gomock.Any(), gomock.Any()).Return(nil)
			},
			check: func(t *testing.T, record *PurchaseRecord, err error) {
				assert.NoError(t, err)
				assert.Equal(t, []int{1, 2, 3}, record.Numbers)
				assert.Equal(t, 15.0, record.Purchase.TotalAmount)
				assert.Equal(t, domain.PurchaseConfirmed, record.Purchase.Status)
				assert.NotEmpty(t, record.Purchase.ID)
			},
		},
		{
			name:          "Empty number list",
			numbers:       nil,
			prepareMock:   func(*MockRaffleRepo, *MockNumberRepo, *MockPurchaseRepo, *pg.MockTXManager) {},
			expectedError: domain.ErrNoNumbers,
		},
		{
			name:          "Duplicate numbers",
			numbers:       []int{5, 5},
			prepareMock:   func(*MockRaffleRepo, *MockNumberRepo, *MockPurchaseRepo, *pg.MockTXManager) {},
			expectedError: domain.ErrDuplicateNumbers,
		},
		{
			name:    "Raffle not found",
			numbers: []int{1},
			prepareMock: func(raffleRepo *MockRaffleRepo, numberRepo *MockNumberRepo, purchaseRepo *MockPurchaseRepo, txManager *pg.MockTXManager) {
				passThrough(txManager)
				raffleRepo.EXPECT().FindByIDForUpdate(gomock.Any(), "raffle-1").Return(nil, nil)
			},
			expectedError: domain.ErrRaffleNotFound,
		},
		{
			name:    "Raffle not active",
			numbers: []int{1},
			prepareMock: func(raffleRepo *MockRaffleRepo, numberRepo *MockNumberRepo, purchaseRepo *MockPurchaseRepo, txManager *pg.MockTXManager) {
				passThrough(txManager)
				raffle := activeRaffle()
				raffle.Status = domain.RaffleCompleted
				raffleRepo.EXPECT().FindByIDForUpdate(gomock.Any(), "raffle-1").Return(raffle, nil)
			},
			expectedError: domain.ErrRaffleNotActive,
		},
		{
			name:    "Number out of range",
			numbers: []int{1, 101},
			prepareMock: func(raffleRepo *MockRaffleRepo, numberRepo *MockNumberRepo, purchaseRepo *MockPurchaseRepo, txManager *pg.MockTXManager) {
				passThrough(txManager)
				raffleRepo.EXPECT().FindByIDForUpdate(gomock.Any(), "raffle-1").Return(activeRaffle(), nil)
			},
			expectedError: domain.ErrNumberOutOfRange,
		},
		{
			name:    "Numbers already sold",
			numbers: []int{3, 4},
			prepareMock: func(raffleRepo *MockRaffleRepo, numberRepo *MockNumberRepo, purchaseRepo *MockPurchaseRepo, txManager *pg.MockTXManager) {
				passThrough(txManager)
				raffleRepo.EXPECT().FindByIDForUpdate(gomock.Any(), "raffle-1").Return(activeRaffle(), nil)
				numberRepo.EXPECT().FindTaken(gomock.Any(), "raffle-1", []int{3, 4}).Return([]int{3}, nil)
			},
			check: func(t *testing.T, record *PurchaseRecord, err error) {
				var taken *domain.NumbersTakenError
				assert.ErrorAs(t, err, &taken)
				assert.Equal(t, []int{3}, taken.Numbers)
				assert.Equal(t, "numbers already sold: [3]", taken.Error())
				assert.Nil(t, record)
			},
		},
		{
			name:    "Unique violation after commit race",
			numbers: []int{7},
			prepareMock: func(raffleRepo *MockRaffleRepo, numberRepo *MockNumberRepo, purchaseRepo *MockPurchaseRepo, txManager *pg.MockTXManager) {
				txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).Return(&pgconn.PgError{Code: "23505"})
				numberRepo.EXPECT().FindTaken(gomock.Any(), "raffle-1", []int{7}).Return([]int{7}, nil)
			},
			check: func(t *testing.T, record *PurchaseRecord, err error) {
				var taken *domain.NumbersTakenError
				assert.ErrorAs(t, err, &taken)
				assert.Equal(t, []int{7}, taken.Numbers)
				assert.Nil(t, record)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, raffleRepo, numberRepo, purchaseRepo, txManager := NewMock(t)
			tt.prepareMock(raffleRepo, numberRepo, purchaseRepo, txManager)

			record, err := service.Purchase(context.Background(), "raffle-1", tt.numbers, buyer)
			if tt.check != nil {
				tt.check(t, record, err)
				return
			}
			assert.ErrorIs(t, err, tt.expectedError)
			assert.Nil(t, record)
		})
	}
}

func TestNumbers(t *testing.T) {
	t.Run("Returns sold rows", func(t *testing.T) {
		service, raffleRepo, numberRepo, _, _ := NewMock(t)
		raffleRepo.EXPECT().FindByID(gomock.Any(), "raffle-1").Return(activeRaffle(), nil)
		numberRepo.EXPECT().FindByRaffleID(gomock.Any(), "raffle-1").Return([]domain.RaffleNumber{
			{Number: 3, Status: domain.NumberSold},
			{Number: 7, Status: domain.NumberSold},
		}, nil)

		numbers, err := service.Numbers(context.Background(), "raffle-1")
		assert.NoError(t, err)
		assert.Len(t, numbers, 2)
	})

	t.Run("Raffle not found", func(t *testing.T) {
		service, raffleRepo, _, _, _ := NewMock(t)
		raffleRepo.EXPECT().FindByID(gomock.Any(), "missing").Return(nil, nil)

		numbers, err := service.Numbers(context.Background(), "missing")
		assert.ErrorIs(t, err, domain.ErrRaffleNotFound)
		assert.Nil(t, numbers)
	})
}

func TestStats(t *testing.T) {
	tests := []struct {
		name         string
		totalNumbers int
		sold         int
		price        float64
		expected     domain.RaffleStats
	}{
		{
			name:         "Rounds progress to two decimals",
			totalNumbers: 100,
			sold:         37,
			price:        5.0,
			expected: domain.RaffleStats{
				TotalNumbers:       100,
				Sold:               37,
				Available:          63,
				TotalRevenue:       185.0,
				ProgressPercentage: 37.0,
			},
		},
		{
			name:         "Fractional progress",
			totalNumbers: 8,
			sold:         3,
			price:        2.0,
			expected: domain.RaffleStats{
				TotalNumbers:       8,
				Sold:               3,
				Available:          5,
				TotalRevenue:       6.0,
				ProgressPercentage: 37.5,
			},
		},
		{
			name:         "Zero total numbers",
			totalNumbers: 0,
			sold:         0,
			price:        5.0,
			expected: domain.RaffleStats{
				TotalNumbers:       0,
				Sold:               0,
				Available:          0,
				TotalRevenue:       0,
				ProgressPercentage: 0,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, raffleRepo, numberRepo, _, _ := NewMock(t)
			raffle := activeRaffle()
			raffle.TotalNumbers = tt.totalNumbers
			raffle.Price = tt.price
			raffleRepo.EXPECT().FindByID(gomock.Any(), "raffle-1").Return(raffle, nil)
			numberRepo.EXPECT().CountByStatus(gomock.Any(), "raffle-1").Return(tt.sold, 0, nil)

			stats, err := service.Stats(context.Background(), "raffle-1")
			assert.NoError(t, err)
			assert.Equal(t, &tt.expected, stats)
		})
	}

	t.Run("Raffle not found", func(t *testing.T) {
		service, raffleRepo, _, _, _ := NewMock(t)
		raffleRepo.EXPECT().FindByID(gomock.Any(), "missing").Return(nil, nil)

		stats, err := service.Stats(context.Background(), "missing")
		assert.ErrorIs(t, err, domain.ErrRaffleNotFound)
		assert.Nil(t, stats)
	})
}

func TestReset(t *testing.T) {
	t.Run("Clears numbers and reactivates", func(t *testing.T) {
		service, raffleRepo, numberRepo, _, txManager := NewMock(t)
		passThrough(txManager)
		raffle := activeRaffle()
		raffle.Status = domain.RaffleCompleted
		raffleRepo.EXPECT().FindByIDForUpdate(gomock.Any(), "raffle-1").Return(raffle, nil)
		numberRepo.EXPECT().DeleteByRaffleID(gomock.Any(), "raffle-1").Return(37, nil)
		raffleRepo.EXPECT().Reactivate(gomock.Any(), "raffle-1").Return(nil)

		cleared, err := service.Reset(context.Background(), "raffle-1")
		assert.NoError(t, err)
		assert.Equal(t, 37, cleared)
	})

	t.Run("Raffle not found", func(t *testing.T) {
		service, raffleRepo, _, _, txManager := NewMock(t)
		passThrough(txManager)
		raffleRepo.EXPECT().FindByIDForUpdate(gomock.Any(), "missing").Return(nil, nil)

		cleared, err := service.Reset(context.Background(), "missing")
		assert.ErrorIs(t, err, domain.ErrRaffleNotFound)
		assert.Zero(t, cleared)
	})

	t.Run("dbError", func(t *testing.T) {
		service, raffleRepo, numberRepo, _, txManager := NewMock(t)
		passThrough(txManager)
		raffleRepo.EXPECT().FindByIDForUpdate(gomock.Any(), "raffle-1").Return(activeRaffle(), nil)
		numberRepo.EXPECT().DeleteByRaffleID(gomock.Any(), "raffle-1").Return(0, errors.New("database error"))

		cleared, err := service.Reset(context.Background(), "raffle-1")
		assert.Error(t, err)
		assert.Zero(t, cleared)
	})
}

func TestGetPurchase(t *testing.T) {
	t.Run("Purchase with numbers", func(t *testing.T) {
		service, _, numberRepo, purchaseRepo, _ := NewMock(t)
		purchaseRepo.EXPECT().FindByID(gomock.Any(), "purchase-1").Return(&domain.Purchase{ID: "purchase-1"}, nil)
		numberRepo.EXPECT().FindNumbersByPurchaseID(gomock.Any(), "purchase-1").Return([]int{1, 2}, nil)

		record, err := service.GetPurchase(context.Background(), "purchase-1")
		assert.NoError(t, err)
		assert.Equal(t, []int{1, 2}, record.Numbers)
	})

	t.Run("Purchase not found", func(t *testing.T) {
		service, _, _, purchaseRepo, _ := NewMock(t)
		purchaseRepo.EXPECT().FindByID(gomock.Any(), "missing").Return(nil, nil)

		record, err := service.GetPurchase(context.Background(), "missing")
		assert.ErrorIs(t, err, domain.ErrPurchaseNotFound)
		assert.Nil(t, record)
	})
}

func TestListPurchases(t *testing.T) {
	service, _, numberRepo, purchaseRepo, _ := NewMock(t)
	raffleID := "raffle-1"
	purchaseRepo.EXPECT().FindAll(gomock.Any(), &raffleID).Return([]domain.Purchase{
		{ID: "purchase-1"},
		{ID: "purchase-2"},
	}, nil)
	numberRepo.EXPECT().FindNumbersByPurchaseID(gomock.Any(), "purchase-1").Return([]int{1}, nil)
	numberRepo.EXPECT().FindNumbersByPurchaseID(gomock.Any(), "purchase-2").Return([]int{2, 3}, nil)

	records, err := service.ListPurchases(context.Background(), &raffleID)
	assert.NoError(t, err)
	assert.Len(t, records, 2)
	assert.Equal(t, []int{2, 3}, records[1].Numbers)
}
