package dto

type CreatePurchaseRequestDTO struct {
	RaffleID   string `json:"raffle_id" validate:"required"`
	Numbers    []int  `json:"numbers" validate:"required" example:"1,2,3"`
	BuyerName  string `json:"buyer_name" validate:"required"`
	BuyerPhone string `json:"buyer_phone" validate:"required"`
	BuyerEmail string `json:"buyer_email" validate:"required,email"`
}

type PurchaseResponseDTO struct {
	ID          string  `json:"id"`
	RaffleID    string  `json:"raffle_id"`
	Numbers     []int   `json:"numbers" example:"1,2,3"`
	BuyerName   string  `json:"buyer_name"`
	BuyerPhone  string  `json:"buyer_phone"`
	BuyerEmail  string  `json:"buyer_email"`
	TotalAmount float64 `json:"total_amount" example:"15"`
	Status      string  `json:"status" example:"confirmed"`
	CreatedAt   string  `json:"created_at"`
}

type UploadImageResponseDTO struct {
	URL string `json:"url"`
}
