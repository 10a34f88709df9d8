package dto

type CreateRaffleRequestDTO struct {
	Title        string  `json:"title" validate:"required"`
	Description  string  `json:"description"`
	Prize        string  `json:"prize" validate:"required"`
	Price        float64 `json:"price" example:"5"`
	TotalNumbers int     `json:"total_numbers" example:"100"`
	ImageURL     *string `json:"image_url,omitempty"`
	DrawDate     string  `json:"draw_date" example:"2026-12-24T20:00:00Z"`
}

type RaffleResponseDTO struct {
	ID           string  `json:"id"`
	Title        string  `json:"title"`
	Description  string  `json:"description"`
	Prize        string  `json:"prize"`
	Price        float64 `json:"price" example:"5"`
	TotalNumbers int     `json:"total_numbers" example:"100"`
	ImageURL     *string `json:"image_url,omitempty"`
	DrawDate     string  `json:"draw_date" example:"2026-12-24T20:00:00Z"`
	Status       string  `json:"status" example:"active"`
	WinnerNumber *int    `json:"winner_number,omitempty"`
	CreatedAt    string  `json:"created_at"`
}

type RaffleNumberResponseDTO struct {
	Number     int     `json:"number" example:"42"`
	RaffleID   string  `json:"raffle_id"`
	BuyerName  string  `json:"buyer_name"`
	BuyerPhone string  `json:"buyer_phone"`
	BuyerEmail string  `json:"buyer_email"`
	Status     string  `json:"status" example:"sold"`
	ReservedAt *string `json:"reserved_at,omitempty"`
	SoldAt     *string `json:"sold_at,omitempty"`
}

type RaffleStatsResponseDTO struct {
	TotalNumbers       int     `json:"total_numbers" example:"100"`
	Sold               int     `json:"sold" example:"37"`
	Reserved           int     `json:"reserved" example:"0"`
	Available          int     `json:"available" example:"63"`
	TotalRevenue       float64 `json:"total_revenue" example:"185"`
	ProgressPercentage float64 `json:"progress_percentage" example:"37"`
}

type ResetNumbersResponseDTO struct {
	RaffleID       string `json:"raffle_id"`
	ClearedNumbers int    `json:"cleared_numbers" example:"37"`
	Status         string `json:"status" example:"active"`
}

type DrawResultResponseDTO struct {
	RaffleID     string `json:"raffle_id"`
	WinnerNumber int    `json:"winner_number" example:"42"`
	WinnerName   string `json:"winner_name"`
	WinnerPhone  string `json:"winner_phone"`
	WinnerEmail  string `json:"winner_email"`
	DrawnAt      string `json:"drawn_at"`
}

type AdminStatsResponseDTO struct {
	TotalRaffles     int     `json:"total_raffles"`
	ActiveRaffles    int     `json:"active_raffles"`
	CompletedRaffles int     `json:"completed_raffles"`
	TotalPurchases   int     `json:"total_purchases"`
	TotalRevenue     float64 `json:"total_revenue"`
	TotalNumbersSold int     `json:"total_numbers_sold"`
}
