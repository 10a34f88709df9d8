package numberrepo

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"

	"github.com/julianaianov/rifamax/internal/domain"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

func TestRepository_FindByRaffleID(t *testing.T) {
	repo, mock := NewMock(t)
	soldAt := time.Now()

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		count     int
	}{
		{
			name: "Numbers exist",
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{
					"id", "raffle_id", "number", "buyer_name", "buyer_phone",
					"buyer_email", "status", "reserved_at", "sold_at", "purchase_id",
				}).
					AddRow(1, "raffle-1", 3, "Maria", "11999999999", "maria@example.com", domain.NumberSold, nil, &soldAt, ptr("purchase-1")).
					AddRow(2, "raffle-1", 7, "Maria", "11999999999", "maria@example.com", domain.NumberSold, nil, &soldAt, ptr("purchase-1"))
				mock.ExpectQuery(`(?s)SELECT .+ FROM raffle_numbers.+WHERE raffle_id = \$1.+ORDER BY number ASC`).
					WithArgs("raffle-1").
					WillReturnRows(rows)
			},
			count: 2,
		},
		{
			name: "No numbers sold",
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{
					"id", "raffle_id", "number", "buyer_name", "buyer_phone",
					"buyer_email", "status", "reserved_at", "sold_at", "purchase_id",
				})
				mock.ExpectQuery(`(?s)SELECT .+ FROM raffle_numbers.+WHERE raffle_id = \$1`).
					WithArgs("raffle-1").
					WillReturnRows(rows)
			},
			count: 0,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(`(?s)SELECT .+ FROM raffle_numbers.+WHERE raffle_id = \$1`).
					WithArgs("raffle-1").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindByRaffleID(context.Background(), "raffle-1")
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Len(t, result, tt.count)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_FindTaken(t *testing.T) {
	repo, mock := NewMock(t)

	t.Run("Some numbers taken", func(t *testing.T) {
		rows := pgxmock.NewRows([]string{"number"}).AddRow(3).AddRow(4)
		mock.ExpectQuery(`(?s)SELECT number.+FROM raffle_numbers.+WHERE raffle_id = \$1 AND number = ANY\(\$2\)`).
			WithArgs("raffle-1", []int{3, 4, 5}).
			WillReturnRows(rows)

		taken, err := repo.FindTaken(context.Background(), "raffle-1", []int{3, 4, 5})
		assert.NoError(t, err)
		assert.Equal(t, []int{3, 4}, taken)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("No numbers taken", func(t *testing.T) {
		rows := pgxmock.NewRows([]string{"number"})
		mock.ExpectQuery(`(?s)SELECT number.+FROM raffle_numbers`).
			WithArgs("raffle-1", []int{1, 2}).
			WillReturnRows(rows)

		taken, err := repo.FindTaken(context.Background(), "raffle-1", []int{1, 2})
		assert.NoError(t, err)
		assert.Empty(t, taken)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRepository_CreateSold(t *testing.T) {
	repo, mock := NewMock(t)
	soldAt := time.Now()
	buyer := domain.Buyer{Name: "Maria", Phone: "11999999999", Email: "maria@example.com"}

	t.Run("Inserts one row per number", func(t *testing.T) {
		for _, number := range []int{1, 2, 3} {
			mock.ExpectExec(`(?s)INSERT INTO raffle_numbers`).
				WithArgs("raffle-1", number, buyer.Name, buyer.Phone, buyer.Email, domain.NumberSold, soldAt, "purchase-1").
				WillReturnResult(pgxmock.NewResult("INSERT", 1))
		}

		err := repo.CreateSold(context.Background(), "raffle-1", []int{1, 2, 3}, buyer, "purchase-1", soldAt)
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Unique violation stops the loop", func(t *testing.T) {
		mock.ExpectExec(`(?s)INSERT INTO raffle_numbers`).
			WithArgs("raffle-1", 1, buyer.Name, buyer.Phone, buyer.Email, domain.NumberSold, soldAt, "purchase-1").
			WillReturnError(errors.New("duplicate key value violates unique constraint"))

		err := repo.CreateSold(context.Background(), "raffle-1", []int{1, 2}, buyer, "purchase-1", soldAt)
		assert.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRepository_CountByStatus(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectQuery(`(?s)SELECT COUNT\(\*\) FILTER`).
		WithArgs("raffle-1").
		WillReturnRows(pgxmock.NewRows([]string{"sold", "reserved"}).AddRow(37, 0))

	sold, reserved, err := repo.CountByStatus(context.Background(), "raffle-1")
	assert.NoError(t, err)
	assert.Equal(t, 37, sold)
	assert.Equal(t, 0, reserved)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_DeleteByRaffleID(t *testing.T) {
	repo, mock := NewMock(t)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		cleared   int
	}{
		{
			name: "Rows deleted",
			mockSetup: func() {
				mock.ExpectExec(`(?s)DELETE FROM raffle_numbers`).
					WithArgs("raffle-1").
					WillReturnResult(pgxmock.NewResult("DELETE", 37))
			},
			cleared: 37,
		},
		{
			name: "Nothing to delete",
			mockSetup: func() {
				mock.ExpectExec(`(?s)DELETE FROM raffle_numbers`).
					WithArgs("raffle-1").
					WillReturnResult(pgxmock.NewResult("DELETE", 0))
			},
			cleared: 0,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectExec(`(?s)DELETE FROM raffle_numbers`).
					WithArgs("raffle-1").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			cleared, err := repo.DeleteByRaffleID(context.Background(), "raffle-1")
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.cleared, cleared)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_FindNumbersByPurchaseID(t *testing.T) {
	repo, mock := NewMock(t)

	rows := pgxmock.NewRows([]string{"number"}).AddRow(1).AddRow(2).AddRow(3)
	mock.ExpectQuery(`(?s)SELECT number.+FROM raffle_numbers.+WHERE purchase_id = \$1`).
		WithArgs("purchase-1").
		WillReturnRows(rows)

	numbers, err := repo.FindNumbersByPurchaseID(context.Background(), "purchase-1")
	assert.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, numbers)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_CountSoldAll(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectQuery(`(?s)SELECT COUNT\(\*\).+FROM raffle_numbers.+WHERE status = 'sold'`).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(120))

	sold, err := repo.CountSoldAll(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 120, sold)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func ptr(s string) *string { return &s }
