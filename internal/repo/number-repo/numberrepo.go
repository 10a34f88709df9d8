package numberrepo

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/julianaianov/rifamax/internal/domain"
	"github.com/julianaianov/rifamax/internal/pg"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) FindByRaffleID(ctx context.Context, raffleID string) ([]domain.RaffleNumber, error) {
	query := `
        SELECT id, raffle_id, number, buyer_name, buyer_phone, buyer_email, status, reserved_at, sold_at, purchase_id
        FROM raffle_numbers
        WHERE raffle_id = $1
        ORDER BY number ASC
    `
	rows, err := r.db.Query(ctx, query, raffleID)
	if err != nil {
		zap.L().Error("can't get raffle numbers", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var numbers []domain.RaffleNumber
	for rows.Next() {
		var n domain.RaffleNumber
		err := rows.Scan(
			&n.ID, &n.RaffleID, &n.Number,
			&n.Buyer.Name, &n.Buyer.Phone, &n.Buyer.Email,
			&n.Status, &n.ReservedAt, &n.SoldAt, &n.PurchaseID,
		)
		if err != nil {
			zap.L().Error("can't scan raffle number row", zap.Error(err))
			return nil, err
		}
		numbers = append(numbers, n)
	}
	return numbers, nil
}

// FindTaken returns the subset of the requested numbers that already
// have a row for the raffle, sorted ascending.
func (r *Repository) FindTaken(ctx context.Context, raffleID string, numbers []int) ([]int, error) {
	query := `
        SELECT number
        FROM raffle_numbers
        WHERE raffle_id = $1 AND number = ANY($2)
        ORDER BY number ASC
    `
	rows, err := r.db.Query(ctx, query, raffleID, numbers)
	if err != nil {
		zap.L().Error("can't check taken numbers", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var taken []int
	for rows.Next() {
		var n int
		if err := rows.Scan(&n); err != nil {
			zap.L().Error("can't scan taken number", zap.Error(err))
			return nil, err
		}
		taken = append(taken, n)
	}
	return taken, nil
}

func (r *Repository) CreateSold(ctx context.Context, raffleID string, numbers []int, buyer domain.Buyer, purchaseID string, soldAt time.Time) error {
	query := `
        INSERT INTO raffle_numbers (raffle_id, number, buyer_name, buyer_phone, buyer_email, status, sold_at, purchase_id)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
    `
	for _, number := range numbers {
		_, err := r.db.Exec(ctx, query,
			raffleID, number, buyer.Name, buyer.Phone, buyer.Email,
			domain.NumberSold, soldAt, purchaseID,
		)
		if err != nil {
			zap.L().Error("can't save sold number", zap.Int("number", number), zap.Error(err))
			return err
		}
	}
	return nil
}

func (r *Repository) FindNumbersByPurchaseID(ctx context.Context, purchaseID string) ([]int, error) {
	query := `
        SELECT number
        FROM raffle_numbers
        WHERE purchase_id = $1
        ORDER BY number ASC
    `
	rows, err := r.db.Query(ctx, query, purchaseID)
	if err != nil {
		zap.L().Error("can't get purchase numbers", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var numbers []int
	for rows.Next() {
		var n int
		if err := rows.Scan(&n); err != nil {
			zap.L().Error("can't scan purchase number", zap.Error(err))
			return nil, err
		}
		numbers = append(numbers, n)
	}
	return numbers, nil
}

func (r *Repository) CountByStatus(ctx context.Context, raffleID string) (sold, reserved int, err error) {
	query := `
        SELECT COUNT(*) FILTER (WHERE status = 'sold'),
               COUNT(*) FILTER (WHERE status = 'reserved')
        FROM raffle_numbers
        WHERE raffle_id = $1
    `
	err = r.db.QueryRow(ctx, query, raffleID).Scan(&sold, &reserved)
	if err != nil {
		zap.L().Error("can't count raffle numbers", zap.Error(err))
		return 0, 0, err
	}
	return sold, reserved, nil
}

func (r *Repository) CountSoldAll(ctx context.Context) (int, error) {
	query := `
        SELECT COUNT(*)
        FROM raffle_numbers
        WHERE status = 'sold'
    `
	var sold int
	if err := r.db.QueryRow(ctx, query).Scan(&sold); err != nil {
		zap.L().Error("can't count sold numbers", zap.Error(err))
		return 0, err
	}
	return sold, nil
}

func (r *Repository) DeleteByRaffleID(ctx context.Context, raffleID string) (int, error) {
	query := `
        DELETE FROM raffle_numbers
        WHERE raffle_id = $1
    `
	tag, err := r.db.Exec(ctx, query, raffleID)
	if err != nil {
		zap.L().Error("can't delete raffle numbers", zap.Error(err))
		return 0, err
	}
	return int(tag.RowsAffected()), nil
}
