package qr

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/julianaianov/rifamax/internal/domain"
)

func TestGenerateReceipt(t *testing.T) {
	gen := NewGenerator()

	purchase := domain.Purchase{
		ID:          "b7f9d6f1-46ef-4a34-8df6-138eac37d23c",
		RaffleID:    "9e3ad210-7d09-4a46-9746-f0a2a5a7b970",
		Buyer:       domain.Buyer{Name: "Maria Silva", Phone: "11999999999", Email: "maria@example.com"},
		TotalAmount: 15.0,
		Status:      domain.PurchaseConfirmed,
		CreatedAt:   time.Now(),
	}

	png, err := gen.GenerateReceipt(purchase, []int{1, 2, 3})
	assert.NoError(t, err)
	assert.NotEmpty(t, png)
	assert.True(t, bytes.HasPrefix(png, []byte("\x89PNG")), "should be a PNG image")
}
