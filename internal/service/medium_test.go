package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"bibliothek-backend/internal/domain"
)

func TestMediumService_GetMedium(t *testing.T) {
	ctx := context.Background()

	t.Run("StatusRecomputedFromBorrowings", func(t *testing.T) {
		mediumRepo := new(MockMediumRepo)
		borrowingRepo := new(MockBorrowingRepo)
		svc := NewMediumService(mediumRepo, borrowingRepo)

		mediumRepo.On("GetByID", ctx, int32(7)).Return(&domain.Medium{ID: 7, Title: "Der Prozess"}, nil)
		borrowingRepo.On("List", ctx).Return([]domain.Borrowing{{ID: 1, MediumID: 7}}, nil)

		m, err := svc.GetMedium(ctx, 7)
		assert.NoError(t, err)
		assert.Equal(t, domain.MediumStatusBorrowed, m.Status)
	})

	t.Run("AvailableWhenNoActiveBorrowing", func(t *testing.T) {
		mediumRepo := new(MockMediumRepo)
		borrowingRepo := new(MockBorrowingRepo)
		svc := NewMediumService(mediumRepo, borrowingRepo)

		mediumRepo.On("GetByID", ctx, int32(7)).Return(&domain.Medium{ID: 7, Title: "Der Prozess"}, nil)
		borrowingRepo.On("List", ctx).Return([]domain.Borrowing{{ID: 1, MediumID: 8}}, nil)

		m, err := svc.GetMedium(ctx, 7)
		assert.NoError(t, err)
		assert.Equal(t, domain.MediumStatusAvailable, m.Status)
	})
}

func TestMediumService_UpdateMedium(t *testing.T) {
	ctx := context.Background()

	t.Run("PatchOnlyTouchesPresentFields", func(t *testing.T) {
		mediumRepo := new(MockMediumRepo)
		borrowingRepo := new(MockBorrowingRepo)
		svc := NewMediumService(mediumRepo, borrowingRepo)

		mediumRepo.On("GetByID", ctx, int32(7)).
			Return(&domain.Medium{ID: 7, Title: "Der Prozess", Author: "Kafka", Rating: 4}, nil)
		borrowingRepo.On("List", ctx).Return([]domain.Borrowing{}, nil)

		newRating := int32(5)
		mediumRepo.On("Update", ctx, mock.MatchedBy(func(m *domain.Medium) bool {
			return m.Title == "Der Prozess" && m.Author == "Kafka" && m.Rating == 5
		})).Return(nil)

		m, err := svc.UpdateMedium(ctx, 7, &domain.MediumPatch{Rating: &newRating})
		assert.NoError(t, err)
		assert.Equal(t, int32(5), m.Rating)
		assert.Equal(t, "Kafka", m.Author)
	})
}

func TestMediumService_DeleteMedium(t *testing.T) {
	ctx := context.Background()

	t.Run("RefusesBorrowedMedium", func(t *testing.T) {
		mediumRepo := new(MockMediumRepo)
		borrowingRepo := new(MockBorrowingRepo)
		svc := NewMediumService(mediumRepo, borrowingRepo)

		borrowingRepo.On("GetByMedium", ctx, int32(7)).Return(&domain.Borrowing{ID: 1, MediumID: 7}, nil)

		err := svc.DeleteMedium(ctx, 7)
		assert.ErrorIs(t, err, domain.ErrMediumUnavailable)
		mediumRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("DeletesAvailableMedium", func(t *testing.T) {
		mediumRepo := new(MockMediumRepo)
		borrowingRepo := new(MockBorrowingRepo)
		svc := NewMediumService(mediumRepo, borrowingRepo)

		borrowingRepo.On("GetByMedium", ctx, int32(7)).Return(nil, domain.ErrNotFound)
		mediumRepo.On("Delete", ctx, int32(7)).Return(nil)

		assert.NoError(t, svc.DeleteMedium(ctx, 7))
	})
}

func TestMediumService_SearchMedia(t *testing.T) {
	ctx := context.Background()

	t.Run("AvailableOnlyDropsBorrowed", func(t *testing.T) {
		mediumRepo := new(MockMediumRepo)
		borrowingRepo := new(MockBorrowingRepo)
		svc := NewMediumService(mediumRepo, borrowingRepo)

		mediumRepo.On("SearchByTitle", ctx, "der").Return([]domain.Medium{
			{ID: 7, Title: "Der Prozess", Author: "Kafka"},
			{ID: 8, Title: "Der Steppenwolf", Author: "Hesse"},
		}, nil)
		borrowingRepo.On("List", ctx).Return([]domain.Borrowing{{ID: 1, MediumID: 7}}, nil)

		media, err := svc.SearchMedia(ctx, "der", true)
		assert.NoError(t, err)
		assert.Len(t, media, 1)
		assert.Equal(t, int32(8), media[0].ID)
	})
}

func TestCustomerService_DeleteCustomer(t *testing.T) {
	ctx := context.Background()

	t.Run("RefusedWithActiveBorrowings", func(t *testing.T) {
		customerRepo := new(MockCustomerRepo)
		borrowingRepo := new(MockBorrowingRepo)
		svc := NewCustomerService(customerRepo, borrowingRepo)

		borrowingRepo.On("ListByCustomer", ctx, int32(3)).Return([]domain.Borrowing{{ID: 1, CustomerID: 3}}, nil)

		err := svc.DeleteCustomer(ctx, 3)
		var verr *domain.ValidationError
		assert.ErrorAs(t, err, &verr)
		customerRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("DeletedWithoutBorrowings", func(t *testing.T) {
		customerRepo := new(MockCustomerRepo)
		borrowingRepo := new(MockBorrowingRepo)
		svc := NewCustomerService(customerRepo, borrowingRepo)

		borrowingRepo.On("ListByCustomer", ctx, int32(3)).Return([]domain.Borrowing{}, nil)
		customerRepo.On("Delete", ctx, int32(3)).Return(nil)

		assert.NoError(t, svc.DeleteCustomer(ctx, 3))
	})
}
