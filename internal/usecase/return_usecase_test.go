package usecase

import (
	"context"
	"errors"
	"testing"

	"boomerang/internal/domain/entities"
	mock_interfaces "boomerang/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestReturnUseCase_GetByID(t *testing.T) {
	t.Run("empty id", func(t *testing.T) {
		uc := NewReturnUseCase(nil)
		_, err := uc.GetByID(context.Background(), "  ")
		if !errors.Is(err, ErrInvalidReturnID) {
			t.Fatalf("expected ErrInvalidReturnID, got %v", err)
		}
	})

	t.Run("repo error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIReturnRepository(ctrl)
		uc := NewReturnUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "ret-1").Return(entities.ReturnRecord{}, errors.New("db"))

		_, err := uc.GetByID(context.Background(), "ret-1")
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIReturnRepository(ctrl)
		uc := NewReturnUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "ret-1").Return(entities.ReturnRecord{}, nil)

		_, err := uc.GetByID(context.Background(), "ret-1")
		if !errors.Is(err, ErrReturnNotFound) {
			t.Fatalf("expected ErrReturnNotFound, got %v", err)
		}
	})

	t.Run("found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIReturnRepository(ctrl)
		uc := NewReturnUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "ret-1").Return(entities.ReturnRecord{ID: "ret-1", Status: entities.ReturnStatusScheduled}, nil)

		rec, err := uc.GetByID(context.Background(), "ret-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if rec.ID != "ret-1" {
			t.Fatalf("expected ret-1, got %s", rec.ID)
		}
	})
}

func TestReturnUseCase_ListByUserID(t *testing.T) {
	t.Run("empty user id", func(t *testing.T) {
		uc := NewReturnUseCase(nil)
		_, err := uc.ListByUserID(context.Background(), " ")
		if !errors.Is(err, ErrInvalidUserID) {
			t.Fatalf("expected ErrInvalidUserID, got %v", err)
		}
	})

	t.Run("lists", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIReturnRepository(ctrl)
		uc := NewReturnUseCase(repo)

		repo.EXPECT().ListByUserID(gomock.Any(), "user-1").Return([]entities.ReturnRecord{{ID: "ret-1"}, {ID: "ret-2"}}, nil)

		recs, err := uc.ListByUserID(context.Background(), "user-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(recs) != 2 {
			t.Fatalf("expected 2 records, got %d", len(recs))
		}
	})
}

func TestReturnUseCase_UpdateStatus(t *testing.T) {
	t.Run("invalid status", func(t *testing.T) {
		uc := NewReturnUseCase(nil)
		_, err := uc.UpdateStatus(context.Background(), "ret-1", "archived", "")
		if !errors.Is(err, ErrInvalidReturnStatus) {
			t.Fatalf("expected ErrInvalidReturnStatus, got %v", err)
		}
	})

	t.Run("allowed transition", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIReturnRepository(ctrl)
		uc := NewReturnUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "ret-1").Return(entities.ReturnRecord{ID: "ret-1", Status: entities.ReturnStatusScheduled}, nil)
		repo.EXPECT().UpdateStatus(gomock.Any(), "ret-1", entities.ReturnStatusPickupReady, "driver assigned").
			Return(entities.ReturnRecord{ID: "ret-1", Status: entities.ReturnStatusPickupReady}, nil)

		rec, err := uc.UpdateStatus(context.Background(), "ret-1", entities.ReturnStatusPickupReady, "driver assigned")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if rec.Status != entities.ReturnStatusPickupReady {
			t.Fatalf("expected pickup_ready, got %s", rec.Status)
		}
	})

	t.Run("blocked transition never reaches the repository", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIReturnRepository(ctrl)
		uc := NewReturnUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "ret-1").Return(entities.ReturnRecord{ID: "ret-1", Status: entities.ReturnStatusCompleted}, nil)

		_, err := uc.UpdateStatus(context.Background(), "ret-1", entities.ReturnStatusScheduled, "")
		if !errors.Is(err, ErrStatusTransitionBlocked) {
			t.Fatalf("expected ErrStatusTransitionBlocked, got %v", err)
		}
	})

	t.Run("transition table", func(t *testing.T) {
		cases := []struct {
			from    entities.ReturnStatus
			to      entities.ReturnStatus
			allowed bool
		}{
			{entities.ReturnStatusScheduled, entities.ReturnStatusPickupReady, true},
			{entities.ReturnStatusScheduled, entities.ReturnStatusCancelled, true},
			{entities.ReturnStatusScheduled, entities.ReturnStatusRejected, true},
			{entities.ReturnStatusScheduled, entities.ReturnStatusCompleted, false},
			{entities.ReturnStatusPickupReady, entities.ReturnStatusProcessing, true},
			{entities.ReturnStatusPickupReady, entities.ReturnStatusCancelled, true},
			{entities.ReturnStatusPickupReady, entities.ReturnStatusRejected, false},
			{entities.ReturnStatusProcessing, entities.ReturnStatusCompleted, true},
			{entities.ReturnStatusProcessing, entities.ReturnStatusRejected, true},
			{entities.ReturnStatusProcessing, entities.ReturnStatusCancelled, false},
			{entities.ReturnStatusCompleted, entities.ReturnStatusProcessing, false},
			{entities.ReturnStatusCancelled, entities.ReturnStatusScheduled, false},
		}
		for _, tc := range cases {
			if got := tc.from.CanTransitionTo(tc.to); got != tc.allowed {
				t.Errorf("%s -> %s: expected allowed=%v, got %v", tc.from, tc.to, tc.allowed, got)
			}
		}
	})
}
