package domain

import "time"

type RaffleStatus string

const (
	RaffleActive    RaffleStatus = "active"
	RaffleCompleted RaffleStatus = "completed"
	RaffleCancelled RaffleStatus = "cancelled"
)

type NumberStatus string

const (
	NumberAvailable NumberStatus = "available"
	// NumberReserved is declared in the schema but no operation produces it yet.
	NumberReserved NumberStatus = "reserved"
	NumberSold     NumberStatus = "sold"
)

type PurchaseStatus string

const (
	PurchasePending   PurchaseStatus = "pending"
	PurchaseConfirmed PurchaseStatus = "confirmed"
	PurchaseCancelled PurchaseStatus = "cancelled"
)

type User struct {
	ID           string    `db:"id"`
	Username     string    `db:"username"`
	PasswordHash string    `db:"password_hash"`
	Name         string    `db:"name"`
	CPF          string    `db:"cpf"`
	Address      string    `db:"address"`
	Phone        string    `db:"phone"`
	Email        string    `db:"email"`
	CreatedAt    time.Time `db:"created_at"`
}

type Raffle struct {
	ID           string       `db:"id"`
	Title        string       `db:"title"`
	Description  string       `db:"description"`
	Prize        string       `db:"prize"`
	Price        float64      `db:"price"`
	TotalNumbers int          `db:"total_numbers"`
	ImageURL     *string      `db:"image_url"`
	DrawDate     time.Time    `db:"draw_date"`
	Status       RaffleStatus `db:"status"`
	WinnerNumber *int         `db:"winner_number"`
	CreatedAt    time.Time    `db:"created_at"`
}

// Buyer is the identity snapshot copied onto purchases and sold numbers
// at sale time. It is never re-resolved against the users table.
type Buyer struct {
	Name  string `db:"buyer_name"`
	Phone string `db:"buyer_phone"`
	Email string `db:"buyer_email"`
}

// RaffleNumber exists only once a number has been sold; an absent row
// means the number is still available.
type RaffleNumber struct {
	ID         int          `db:"id"`
	RaffleID   string       `db:"raffle_id"`
	Number     int          `db:"number"`
	Buyer      Buyer        `db:"buyer"`
	Status     NumberStatus `db:"status"`
	ReservedAt *time.Time   `db:"reserved_at"`
	SoldAt     *time.Time   `db:"sold_at"`
	PurchaseID *string      `db:"purchase_id"`
}

type Purchase struct {
	ID          string         `db:"id"`
	RaffleID    string         `db:"raffle_id"`
	Buyer       Buyer          `db:"buyer"`
	TotalAmount float64        `db:"total_amount"`
	Status      PurchaseStatus `db:"status"`
	CreatedAt   time.Time      `db:"created_at"`
}

type RaffleStats struct {
	TotalNumbers       int     `json:"total_numbers"`
	Sold               int     `json:"sold"`
	Reserved           int     `json:"reserved"`
	Available          int     `json:"available"`
	TotalRevenue       float64 `json:"total_revenue"`
	ProgressPercentage float64 `json:"progress_percentage"`
}

type AdminStats struct {
	TotalRaffles     int     `json:"total_raffles"`
	ActiveRaffles    int     `json:"active_raffles"`
	CompletedRaffles int     `json:"completed_raffles"`
	TotalPurchases   int     `json:"total_purchases"`
	TotalRevenue     float64 `json:"total_revenue"`
	TotalNumbersSold int     `json:"total_numbers_sold"`
}

type DrawResult struct {
	RaffleID     string    `json:"raffle_id"`
	WinnerNumber int       `json:"winner_number"`
	Winner       Buyer     `json:"winner"`
	DrawnAt      time.Time `json:"drawn_at"`
}
