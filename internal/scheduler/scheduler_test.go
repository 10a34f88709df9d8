package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/julianaianov/rifamax/internal/config"
	"github.com/julianaianov/rifamax/internal/domain"
)

func NewMock(t *testing.T) (*Service, *MockRaffleRepo, *MockDrawService) {
	ctrl := gomock.NewController(t)
	raffleRepo := NewMockRaffleRepo(ctrl)
	drawService := NewMockDrawService(ctrl)
	s := New(&config.Config{DrawInterval: time.Minute}, raffleRepo, drawService)
	t.Cleanup(ctrl.Finish)
	return s, raffleRepo, drawService
}

func dueRaffle(id string) domain.Raffle {
	return domain.Raffle{
		ID:       id,
		Status:   domain.RaffleActive,
		DrawDate: time.Now().Add(-time.Hour),
	}
}

func TestProcessDueRaffles(t *testing.T) {
	t.Run("Draws every due raffle", func(t *testing.T) {
		s, raffleRepo, drawService := NewMock(t)

		raffleRepo.EXPECT().FindDueForDraw(gomock.Any(), uint32(1000)).
			Return([]domain.Raffle{dueRaffle("raffle-1"), dueRaffle("raffle-2")}, nil)
		drawService.EXPECT().Draw(gomock.Any(), "raffle-1").
			Return(&domain.DrawResult{RaffleID: "raffle-1", WinnerNumber: 7, DrawnAt: time.Now()}, nil)
		drawService.EXPECT().Draw(gomock.Any(), "raffle-2").
			Return(&domain.DrawResult{RaffleID: "raffle-2", WinnerNumber: 3, DrawnAt: time.Now()}, nil)

		s.processDueRaffles(context.Background())
		s.workerPool.Close()

		_, stillMarked := drawingRaffles.Load("raffle-1")
		assert.False(t, stillMarked)
	})

	t.Run("Repo error skips the cycle", func(t *testing.T) {
		s, raffleRepo, _ := NewMock(t)

		raffleRepo.EXPECT().FindDueForDraw(gomock.Any(), uint32(1000)).
			Return(nil, errors.New("database error"))

		s.processDueRaffles(context.Background())
		s.workerPool.Close()
	})

	t.Run("Raffle already being drawn is skipped", func(t *testing.T) {
		s, raffleRepo, _ := NewMock(t)

		drawingRaffles.Store("raffle-1", struct{}{})
		defer drawingRaffles.Delete("raffle-1")

		raffleRepo.EXPECT().FindDueForDraw(gomock.Any(), uint32(1000)).
			Return([]domain.Raffle{dueRaffle("raffle-1")}, nil)

		s.processDueRaffles(context.Background())
		s.workerPool.Close()
	})
}

func TestDrawRaffle(t *testing.T) {
	tests := []struct {
		name    string
		drawErr error
		wantErr bool
	}{
		{name: "No numbers sold is skipped", drawErr: domain.ErrNoNumbersSold},
		{name: "Already completed is skipped", drawErr: domain.ErrRaffleNotActive},
		{name: "Deleted raffle is skipped", drawErr: domain.ErrRaffleNotFound},
		{name: "Unexpected error propagates", drawErr: errors.New("database error"), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, _, drawService := NewMock(t)
			raffle := dueRaffle("raffle-1")

			drawService.EXPECT().Draw(gomock.Any(), "raffle-1").Return(nil, tt.drawErr)

			err := s.drawRaffle(context.Background(), raffle)
			if tt.wantErr {
				assert.ErrorContains(t, err, "database error")
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSchedulerRun(t *testing.T) {
	s, raffleRepo, _ := NewMock(t)
	s.pollInterval = 10 * time.Millisecond

	raffleRepo.EXPECT().FindDueForDraw(gomock.Any(), uint32(1000)).Return(nil, nil).MinTimes(1)

	ctx, cancel := context.WithCancel(context.Background())
	s.Start(ctx)

	time.Sleep(50 * time.Millisecond)
	cancel()
	time.Sleep(20 * time.Millisecond)
}
