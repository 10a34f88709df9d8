package authservice

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/julianaianov/rifamax/internal/domain"
	"github.com/julianaianov/rifamax/pkg/auth"
)

type Repo interface {
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	FindByID(ctx context.Context, userID string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}

type Service struct {
	userRepo    Repo
	hashService auth.HashServiceInterface
	jwtService  auth.JWTServiceInterface
}

func New(repo Repo, hashService auth.HashServiceInterface, jwtService auth.JWTServiceInterface) *Service {
	return &Service{
		userRepo:    repo,
		hashService: hashService,
		jwtService:  jwtService,
	}
}

var ErrUserNotFound = errors.New("user not found")

type RegisterInput struct {
	Username string
	Password string
	Name     string
	CPF      string
	Address  string
	Phone    string
	Email    string
}

func (s *Service) Register(ctx context.Context, input RegisterInput) (*domain.User, error) {
	existingUser, err := s.userRepo.FindByUsername(ctx, input.Username)
	if err != nil {
		zap.L().Error("can't find user: ", zap.Error(err))
		return nil, err
	}
	if existingUser != nil {
		zap.L().Info("user already exists", zap.String("username", input.Username))
		return nil, domain.ErrUserExists
	}

	hashedPassword, err := s.hashService.HashPassword(input.Password)
	if err != nil {
		zap.L().Error("can't hash password: ", zap.Error(err))
		return nil, err
	}

	user := &domain.User{
		ID:           uuid.NewString(),
		Username:     input.Username,
		PasswordHash: hashedPassword,
		Name:         input.Name,
		CPF:          input.CPF,
		Address:      input.Address,
		Phone:        input.Phone,
		Email:        input.Email,
	}
	newUser, err := s.userRepo.Create(ctx, user)
	if err != nil {
		if !errors.Is(err, domain.ErrUserExists) {
			zap.L().Error("can't create user: ", zap.Error(err))
		}
		return nil, err
	}

	zap.L().Info("user successfully registered", zap.String("username", input.Username))
	return newUser, nil
}

func (s *Service) Authenticate(ctx context.Context, username, password string) (*domain.User, error) {
	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil || user == nil {
		zap.L().Error("invalid credentials", zap.Error(err))
		return nil, errors.New("invalid credentials")
	}
	if ok := s.hashService.ComparePassword(user.PasswordHash, password); !ok {
		zap.L().Error("invalid credentials", zap.String("username", username))
		return nil, errors.New("invalid credentials")
	}
	zap.L().Info("user successfully authenticated", zap.String("username", username))
	return user, nil
}

func (s *Service) GetUser(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

func (s *Service) GenerateToken(userID string) (string, error) {
	expirationTime := time.Now().Add(15 * time.Minute)

	token, err := s.jwtService.GenerateJWT(userID, expirationTime)
	if err != nil {
		zap.L().Error("can't generate token: ", zap.Error(err))
		return "", err
	}
	return token, nil
}
