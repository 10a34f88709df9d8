package draw

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/julianaianov/rifamax/internal/domain"
	"github.com/julianaianov/rifamax/internal/dto"
	"github.com/julianaianov/rifamax/pkg/utils"
)

//go:generate mockgen -source=draw.go -destination=draw_mock.go -package=draw
type Service interface {
	Draw(ctx context.Context, raffleID string) (*domain.DrawResult, error)
}

type DrawHandler struct {
	drawService Service
}

func New(drawService Service) *DrawHandler {
	return &DrawHandler{drawService: drawService}
}

// DrawRaffle godoc
//
//	@Summary		Draw a raffle winner
//	@Description	Pick a uniformly random sold number and complete the raffle
//	@Tags			Draw
//	@Security		BearerAuth
//	@Produce		json
//	@Param			raffleID	path		string	true	"Raffle ID"
//	@Success		200			{object}	dto.DrawResultResponseDTO
//	@Failure		400			{object}	utils.Response	"Raffle is not active or has no sold numbers"
//	@Failure		401			{object}	utils.Response	"User not authorized"
//	@Failure		404			{object}	utils.Response	"Raffle not found"
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Router			/api/raffles/{raffleID}/draw [post]
func (h *DrawHandler) DrawRaffle(w http.ResponseWriter, r *http.Request) {
	raffleID := chi.URLParam(r, "raffleID")

	result, err := h.drawService.Draw(r.Context(), raffleID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRaffleNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, domain.ErrRaffleNotActive), errors.Is(err, domain.ErrNoNumbersSold):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.DrawResultResponseDTO{
		RaffleID:     result.RaffleID,
		WinnerNumber: result.WinnerNumber,
		WinnerName:   result.Winner.Name,
		WinnerPhone:  result.Winner.Phone,
		WinnerEmail:  result.Winner.Email,
		DrawnAt:      result.DrawnAt.Format(time.RFC3339),
	})
}
