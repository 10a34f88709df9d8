package qr

import (
	"encoding/json"
	"time"

	"github.com/skip2/go-qrcode"

	"github.com/julianaianov/rifamax/internal/domain"
)

type receiptPayload struct {
	PurchaseID  string    `json:"purchase_id"`
	RaffleID    string    `json:"raffle_id"`
	Numbers     []int     `json:"numbers"`
	BuyerName   string    `json:"buyer_name"`
	TotalAmount float64   `json:"total_amount"`
	CreatedAt   time.Time `json:"created_at"`
}

type Generator struct {
	size int
}

func NewGenerator() *Generator {
	return &Generator{size: 256}
}

// GenerateReceipt renders a purchase receipt as a PNG QR code.
func (g *Generator) GenerateReceipt(purchase domain.Purchase, numbers []int) ([]byte, error) {
	payload := receiptPayload{
		PurchaseID:  purchase.ID,
		RaffleID:    purchase.RaffleID,
		Numbers:     numbers,
		BuyerName:   purchase.Buyer.Name,
		TotalAmount: purchase.TotalAmount,
		CreatedAt:   purchase.CreatedAt,
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	return qrcode.Encode(string(data), qrcode.Medium, g.size)
}
