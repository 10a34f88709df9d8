package raffles

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/julianaianov/rifamax/internal/domain"
	"github.com/julianaianov/rifamax/internal/dto"
	"github.com/julianaianov/rifamax/internal/service/raffleservice"
	"github.com/julianaianov/rifamax/pkg/utils"
)

//go:generate mockgen -source=raffles.go -destination=raffles_mock.go -package=raffles
type Service interface {
	Create(ctx context.Context, input raffleservice.CreateInput) (*domain.Raffle, error)
	Get(ctx context.Context, raffleID string) (*domain.Raffle, error)
	List(ctx context.Context, status *domain.RaffleStatus) ([]domain.Raffle, error)
	Update(ctx context.Context, raffleID string, input raffleservice.CreateInput) (*domain.Raffle, error)
	Delete(ctx context.Context, raffleID string) error
	AdminStats(ctx context.Context) (*domain.AdminStats, error)
}

type RaffleHandler struct {
	raffleService Service
}

func New(raffleService Service) *RaffleHandler {
	return &RaffleHandler{
		raffleService: raffleService,
	}
}

func toRaffleDTO(raffle *domain.Raffle) dto.RaffleResponseDTO {
	return dto.RaffleResponseDTO{
		ID:           raffle.ID,
		Title:        raffle.Title,
		Description:  raffle.Description,
		Prize:        raffle.Prize,
		Price:        raffle.Price,
		TotalNumbers: raffle.TotalNumbers,
		ImageURL:     raffle.ImageURL,
		DrawDate:     raffle.DrawDate.Format(time.RFC3339),
		Status:       string(raffle.Status),
		WinnerNumber: raffle.WinnerNumber,
		CreatedAt:    raffle.CreatedAt.Format(time.RFC3339),
	}
}

func parseCreateInput(r *http.Request) (raffleservice.CreateInput, error) {
	var req dto.CreateRaffleRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return raffleservice.CreateInput{}, err
	}
	drawDate, err := time.Parse(time.RFC3339, req.DrawDate)
	if err != nil {
		return raffleservice.CreateInput{}, err
	}
	return raffleservice.CreateInput{
		Title:        req.Title,
		Description:  req.Description,
		Prize:        req.Prize,
		Price:        req.Price,
		TotalNumbers: req.TotalNumbers,
		ImageURL:     req.ImageURL,
		DrawDate:     drawDate,
	}, nil
}

// CreateRaffle godoc
//
//	@Summary		Create a new raffle
//	@Description	Create a raffle with a fixed number range 1..total_numbers; it starts active with no winner
//	@Tags			Raffles
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreateRaffleRequestDTO	true	"Raffle fields"
//	@Success		201		{object}	dto.RaffleResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		422		{object}	utils.Response	"Invalid price or total_numbers"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/raffles [post]
func (h *RaffleHandler) CreateRaffle(w http.ResponseWriter, r *http.Request) {
	input, err := parseCreateInput(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	raffle, err := h.raffleService.Create(r.Context(), input)
	if err != nil {
		switch {
		case errors.Is(err, raffleservice.ErrInvalidPrice),
			errors.Is(err, raffleservice.ErrInvalidTotalNumbers):
			utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, toRaffleDTO(raffle))
}

// GetRaffle godoc
//
//	@Summary		Get raffle details
//	@Tags			Raffles
//	@Produce		json
//	@Param			raffleID	path		string	true	"Raffle ID"
//	@Success		200			{object}	dto.RaffleResponseDTO
//	@Failure		404			{object}	utils.Response	"Raffle not found"
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Router			/api/raffles/{raffleID} [get]
func (h *RaffleHandler) GetRaffle(w http.ResponseWriter, r *http.Request) {
	raffleID := chi.URLParam(r, "raffleID")

	raffle, err := h.raffleService.Get(r.Context(), raffleID)
	if err != nil {
		if errors.Is(err, domain.ErrRaffleNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toRaffleDTO(raffle))
}

// ListRaffles godoc
//
//	@Summary		List raffles
//	@Description	List every raffle, optionally filtered by status
//	@Tags			Raffles
//	@Produce		json
//	@Param			status	query		string	false	"Filter by status"	Enums(active, completed, cancelled)
//	@Success		200		{array}		dto.RaffleResponseDTO
//	@Failure		400		{object}	utils.Response	"Unknown status"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/raffles [get]
func (h *RaffleHandler) ListRaffles(w http.ResponseWriter, r *http.Request) {
	var status *domain.RaffleStatus
	if raw := r.URL.Query().Get("status"); raw != "" {
		s := domain.RaffleStatus(raw)
		if s != domain.RaffleActive && s != domain.RaffleCompleted && s != domain.RaffleCancelled {
			utils.RespondWithError(w, http.StatusBadRequest, "unknown raffle status")
			return
		}
		status = &s
	}

	raffles, err := h.raffleService.List(r.Context(), status)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := make([]dto.RaffleResponseDTO, len(raffles))
	for i := range raffles {
		response[i] = toRaffleDTO(&raffles[i])
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// UpdateRaffle godoc
//
//	@Summary		Update raffle metadata
//	@Description	Replace the descriptive fields of an active raffle; completed and cancelled raffles are frozen
//	@Tags			Raffles
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			raffleID	path		string						true	"Raffle ID"
//	@Param			request		body		dto.CreateRaffleRequestDTO	true	"Raffle fields"
//	@Success		200			{object}	dto.RaffleResponseDTO
//	@Failure		400			{object}	utils.Response	"Raffle is not active"
//	@Failure		401			{object}	utils.Response	"User not authorized"
//	@Failure		404			{object}	utils.Response	"Raffle not found"
//	@Failure		422			{object}	utils.Response	"Invalid price or total_numbers"
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Router			/api/raffles/{raffleID} [put]
func (h *RaffleHandler) UpdateRaffle(w http.ResponseWriter, r *http.Request) {
	raffleID := chi.URLParam(r, "raffleID")

	input, err := parseCreateInput(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	raffle, err := h.raffleService.Update(r.Context(), raffleID, input)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRaffleNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, domain.ErrRaffleNotActive):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, raffleservice.ErrInvalidPrice),
			errors.Is(err, raffleservice.ErrInvalidTotalNumbers):
			utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toRaffleDTO(raffle))
}

// DeleteRaffle godoc
//
//	@Summary		Delete a raffle
//	@Description	Delete a raffle and, by cascade, its numbers and purchases
//	@Tags			Raffles
//	@Security		BearerAuth
//	@Produce		json
//	@Param			raffleID	path		string	true	"Raffle ID"
//	@Success		200			{object}	utils.Response
//	@Failure		401			{object}	utils.Response	"User not authorized"
//	@Failure		404			{object}	utils.Response	"Raffle not found"
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Router			/api/raffles/{raffleID} [delete]
func (h *RaffleHandler) DeleteRaffle(w http.ResponseWriter, r *http.Request) {
	raffleID := chi.URLParam(r, "raffleID")

	if err := h.raffleService.Delete(r.Context(), raffleID); err != nil {
		if errors.Is(err, domain.ErrRaffleNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "raffle deleted"})
}

// AdminStats godoc
//
//	@Summary		Get aggregate system stats
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.AdminStatsResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/stats [get]
func (h *RaffleHandler) AdminStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.raffleService.AdminStats(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.AdminStatsResponseDTO{
		TotalRaffles:     stats.TotalRaffles,
		ActiveRaffles:    stats.ActiveRaffles,
		CompletedRaffles: stats.CompletedRaffles,
		TotalPurchases:   stats.TotalPurchases,
		TotalRevenue:     stats.TotalRevenue,
		TotalNumbersSold: stats.TotalNumbersSold,
	})
}
