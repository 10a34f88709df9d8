package purchase

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/julianaianov/rifamax/internal/domain"
	"github.com/julianaianov/rifamax/internal/dto"
	"github.com/julianaianov/rifamax/internal/service/ledgerservice"
	"github.com/julianaianov/rifamax/pkg/qr"
	"github.com/julianaianov/rifamax/pkg/utils"
)

//go:generate mockgen -source=purchase.go -destination=purchase_mock.go -package=purchase
type Service interface {
	Purchase(ctx context.Context, raffleID string, numbers []int, buyer domain.Buyer) (*ledgerservice.PurchaseRecord, error)
	Numbers(ctx context.Context, raffleID string) ([]domain.RaffleNumber, error)
	Stats(ctx context.Context, raffleID string) (*domain.RaffleStats, error)
	Reset(ctx context.Context, raffleID string) (int, error)
	GetPurchase(ctx context.Context, purchaseID string) (*ledgerservice.PurchaseRecord, error)
	ListPurchases(ctx context.Context, raffleID *string) ([]ledgerservice.PurchaseRecord, error)
}

type PurchaseHandler struct {
	ledgerService Service
	qrGenerator   *qr.Generator
}

func New(ledgerService Service) *PurchaseHandler {
	return &PurchaseHandler{
		ledgerService: ledgerService,
		qrGenerator:   qr.NewGenerator(),
	}
}

func toPurchaseDTO(record *ledgerservice.PurchaseRecord) dto.PurchaseResponseDTO {
	return dto.PurchaseResponseDTO{
		ID:          record.Purchase.ID,
		RaffleID:    record.Purchase.RaffleID,
		Numbers:     record.Numbers,
		BuyerName:   record.Purchase.Buyer.Name,
		BuyerPhone:  record.Purchase.Buyer.Phone,
		BuyerEmail:  record.Purchase.Buyer.Email,
		TotalAmount: record.Purchase.TotalAmount,
		Status:      string(record.Purchase.Status),
		CreatedAt:   record.Purchase.CreatedAt.Format(time.RFC3339),
	}
}

// CreatePurchase godoc
//
//	@Summary		Buy raffle numbers
//	@Description	Atomically sell the requested numbers to the buyer; all numbers are sold or none are
//	@Tags			Purchases
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreatePurchaseRequestDTO	true	"Purchase request"
//	@Success		201		{object}	dto.PurchaseResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body or raffle is not active"
//	@Failure		404		{object}	utils.Response	"Raffle not found"
//	@Failure		409		{object}	utils.Response	"Numbers already sold"
//	@Failure		422		{object}	utils.Response	"Empty, duplicate or out-of-range numbers"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/purchase [post]
func (h *PurchaseHandler) CreatePurchase(w http.ResponseWriter, r *http.Request) {
	var req dto.CreatePurchaseRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.RaffleID == "" || req.BuyerName == "" || req.BuyerPhone == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "raffle_id, buyer_name and buyer_phone are required")
		return
	}
	if !strings.Contains(req.BuyerEmail, "@") {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid buyer_email")
		return
	}

	record, err := h.ledgerService.Purchase(r.Context(), req.RaffleID, req.Numbers, domain.Buyer{
		Name:  req.BuyerName,
		Phone: req.BuyerPhone,
		Email: req.BuyerEmail,
	})
	if err != nil {
		var taken *domain.NumbersTakenError
		switch {
		case errors.Is(err, domain.ErrRaffleNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, domain.ErrRaffleNotActive):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.As(err, &taken):
			utils.RespondWithError(w, http.StatusConflict, taken.Error())
		case errors.Is(err, domain.ErrNoNumbers),
			errors.Is(err, domain.ErrDuplicateNumbers),
			errors.Is(err, domain.ErrNumberOutOfRange):
			utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, toPurchaseDTO(record))
}

// ListPurchases godoc
//
//	@Summary		List purchases
//	@Description	List purchases newest first, optionally filtered by raffle
//	@Tags			Purchases
//	@Produce		json
//	@Param			raffle_id	query		string	false	"Filter by raffle ID"
//	@Success		200			{array}		dto.PurchaseResponseDTO
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Router			/api/purchases [get]
func (h *PurchaseHandler) ListPurchases(w http.ResponseWriter, r *http.Request) {
	var raffleID *string
	if raw := r.URL.Query().Get("raffle_id"); raw != "" {
		raffleID = &raw
	}

	records, err := h.ledgerService.ListPurchases(r.Context(), raffleID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := make([]dto.PurchaseResponseDTO, len(records))
	for i := range records {
		response[i] = toPurchaseDTO(&records[i])
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// PurchaseQR godoc
//
//	@Summary		Get a purchase receipt QR code
//	@Tags			Purchases
//	@Produce		png
//	@Param			purchaseID	path		string	true	"Purchase ID"
//	@Success		200			{string}	binary	"PNG image"
//	@Failure		404			{object}	utils.Response	"Purchase not found"
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Router			/api/purchases/{purchaseID}/qr [get]
func (h *PurchaseHandler) PurchaseQR(w http.ResponseWriter, r *http.Request) {
	purchaseID := chi.URLParam(r, "purchaseID")

	record, err := h.ledgerService.GetPurchase(r.Context(), purchaseID)
	if err != nil {
		if errors.Is(err, domain.ErrPurchaseNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	png, err := h.qrGenerator.GenerateReceipt(record.Purchase, record.Numbers)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to generate QR code")
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	w.Write(png)
}

// GetNumbers godoc
//
//	@Summary		Get raffle numbers
//	@Description	Return every sold number row for the raffle; absent numbers are available
//	@Tags			Numbers
//	@Produce		json
//	@Param			raffleID	path		string	true	"Raffle ID"
//	@Success		200			{array}		dto.RaffleNumberResponseDTO
//	@Failure		404			{object}	utils.Response	"Raffle not found"
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Router			/api/raffles/{raffleID}/numbers [get]
func (h *PurchaseHandler) GetNumbers(w http.ResponseWriter, r *http.Request) {
	raffleID := chi.URLParam(r, "raffleID")

	numbers, err := h.ledgerService.Numbers(r.Context(), raffleID)
	if err != nil {
		if errors.Is(err, domain.ErrRaffleNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := make([]dto.RaffleNumberResponseDTO, len(numbers))
	for i, n := range numbers {
		item := dto.RaffleNumberResponseDTO{
			Number:     n.Number,
			RaffleID:   n.RaffleID,
			BuyerName:  n.Buyer.Name,
			BuyerPhone: n.Buyer.Phone,
			BuyerEmail: n.Buyer.Email,
			Status:     string(n.Status),
		}
		if n.ReservedAt != nil {
			reservedAt := n.ReservedAt.Format(time.RFC3339)
			item.ReservedAt = &reservedAt
		}
		if n.SoldAt != nil {
			soldAt := n.SoldAt.Format(time.RFC3339)
			item.SoldAt = &soldAt
		}
		response[i] = item
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// GetStats godoc
//
//	@Summary		Get raffle sales stats
//	@Tags			Numbers
//	@Produce		json
//	@Param			raffleID	path		string	true	"Raffle ID"
//	@Success		200			{object}	dto.RaffleStatsResponseDTO
//	@Failure		404			{object}	utils.Response	"Raffle not found"
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Router			/api/raffles/{raffleID}/stats [get]
func (h *PurchaseHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	raffleID := chi.URLParam(r, "raffleID")

	stats, err := h.ledgerService.Stats(r.Context(), raffleID)
	if err != nil {
		if errors.Is(err, domain.ErrRaffleNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.RaffleStatsResponseDTO{
		TotalNumbers:       stats.TotalNumbers,
		Sold:               stats.Sold,
		Reserved:           stats.Reserved,
		Available:          stats.Available,
		TotalRevenue:       stats.TotalRevenue,
		ProgressPercentage: stats.ProgressPercentage,
	})
}

// ResetNumbers godoc
//
//	@Summary		Reset raffle numbers
//	@Description	Delete every number row for the raffle, reopen it and clear the winner; returns the cleared count
//	@Tags			Numbers
//	@Security		BearerAuth
//	@Produce		json
//	@Param			raffleID	path		string	true	"Raffle ID"
//	@Success		200			{object}	dto.ResetNumbersResponseDTO
//	@Failure		401			{object}	utils.Response	"User not authorized"
//	@Failure		404			{object}	utils.Response	"Raffle not found"
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Router			/api/raffles/{raffleID}/reset-numbers [post]
func (h *PurchaseHandler) ResetNumbers(w http.ResponseWriter, r *http.Request) {
	raffleID := chi.URLParam(r, "raffleID")

	cleared, err := h.ledgerService.Reset(r.Context(), raffleID)
	if err != nil {
		if errors.Is(err, domain.ErrRaffleNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.ResetNumbersResponseDTO{
		RaffleID:       raffleID,
		ClearedNumbers: cleared,
		Status:         string(domain.RaffleActive),
	})
}
