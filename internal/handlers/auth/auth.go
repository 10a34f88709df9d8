package auth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/julianaianov/rifamax/internal/domain"
	"github.com/julianaianov/rifamax/internal/dto"
	"github.com/julianaianov/rifamax/internal/service/authservice"
	pkgauth "github.com/julianaianov/rifamax/pkg/auth"
	"github.com/julianaianov/rifamax/pkg/utils"
	"github.com/julianaianov/rifamax/pkg/validate"
)

//go:generate mockgen -source=auth.go -destination=auth_mock.go -package=auth
type Service interface {
	Register(ctx context.Context, input authservice.RegisterInput) (*domain.User, error)
	Authenticate(ctx context.Context, username, password string) (*domain.User, error)
	GetUser(ctx context.Context, userID string) (*domain.User, error)
	GenerateToken(userID string) (string, error)
}

type AuthHandler struct {
	authService Service
}

func New(authService Service) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

func toUserDTO(user *domain.User) dto.UserResponseDTO {
	return dto.UserResponseDTO{
		ID:        user.ID,
		Username:  user.Username,
		Name:      user.Name,
		CPF:       user.CPF,
		Address:   user.Address,
		Phone:     user.Phone,
		Email:     user.Email,
		CreatedAt: user.CreatedAt.Format(time.RFC3339),
	}
}

// Register godoc
//
//	@Summary		Register a new user
//	@Description	Create a new user account; username, email and CPF must be unique
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.RegisterRequestDTO	true	"Register request body"
//	@Success		200		{object}	dto.UserResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		409		{object}	utils.Response	"User already exists"
//	@Failure		422		{object}	utils.Response	"Invalid CPF"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/auth/register [post]
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Username == "" || req.Password == "" || req.Name == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "username, password and name are required")
		return
	}
	if !validate.IsCPF(req.CPF) {
		utils.RespondWithError(w, http.StatusUnprocessableEntity, "Invalid CPF")
		return
	}

	user, err := h.authService.Register(r.Context(), authservice.RegisterInput{
		Username: req.Username,
		Password: req.Password,
		Name:     req.Name,
		CPF:      req.CPF,
		Address:  req.Address,
		Phone:    req.Phone,
		Email:    req.Email,
	})
	if err != nil {
		if errors.Is(err, domain.ErrUserExists) {
			utils.RespondWithError(w, http.StatusConflict, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toUserDTO(user))
}

// Login godoc
//
//	@Summary		Authenticate user
//	@Description	Log in with a user account and get a JWT bearer token
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.LoginRequestDTO	true	"Login request body"
//	@Success		200		{object}	dto.TokenResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"Invalid credentials"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/auth/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	user, err := h.authService.Authenticate(r.Context(), req.Username, req.Password)
	if err != nil {
		utils.RespondWithError(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}
	token, err := h.authService.GenerateToken(user.ID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error generating token")
		return
	}
	w.Header().Set("Authorization", "Bearer "+token)
	utils.RespondWithJSON(w, http.StatusOK, dto.TokenResponseDTO{
		AccessToken: token,
		TokenType:   "bearer",
	})
}

// Me godoc
//
//	@Summary		Get current user
//	@Description	Return the profile of the authenticated user
//	@Tags			Auth
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.UserResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/auth/me [get]
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(pkgauth.UserIDKey).(string)

	user, err := h.authService.GetUser(r.Context(), userID)
	if err != nil {
		if errors.Is(err, authservice.ErrUserNotFound) {
			utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toUserDTO(user))
}
