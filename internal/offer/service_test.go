package offer

import (
	"context"
	"errors"
	"testing"
	"time"

	"gallery-be/internal/artwork"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Create(ctx context.Context, rec Record) (Record, error) {
	args := m.Called(ctx, rec)
	return args.Get(0).(Record), args.Error(1)
}

func validInput() SubmitOfferInput {
	return SubmitOfferInput{
		ArtworkID:   "1",
		Name:        "A",
		Email:       "a@b.com",
		Phone:       "1234567890",
		OfferAmount: 500,
		Currency:    artwork.CurrencyUSD,
	}
}

func TestService_Submit(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)

		input := validInput()
		stored := recordFromInput(input)
		stored.ID = "o1"
		stored.Status = string(StatusPending)
		stored.CreatedAt = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

		mockRepo.On("Create", ctx, recordFromInput(input)).Return(stored, nil).Once()

		offer, err := svc.Submit(ctx, input)
		require.NoError(t, err)
		assert.Equal(t, "o1", offer.ID)
		assert.Equal(t, StatusPending, offer.Status)
		assert.Equal(t, 500.0, offer.OfferAmount)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Caller can never supply a status", func(t *testing.T) {
		rec := recordFromInput(validInput())
		assert.Empty(t, rec.Status)
	})

	t.Run("Repository failure surfaces", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)

		mockRepo.On("Create", ctx, mock.AnythingOfType("offer.Record")).
			Return(Record{}, errors.New("network error")).Once()

		_, err := svc.Submit(ctx, validInput())
		assert.Error(t, err)
	})

	t.Run("Structural validation", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)

		cases := []func(*SubmitOfferInput){
			func(in *SubmitOfferInput) { in.ArtworkID = "" },
			func(in *SubmitOfferInput) { in.Name = "" },
			func(in *SubmitOfferInput) { in.Email = "" },
			func(in *SubmitOfferInput) { in.OfferAmount = 0 },
			func(in *SubmitOfferInput) { in.Currency = "EUR" },
		}
		for _, mutate := range cases {
			in := validInput()
			mutate(&in)
			_, err := svc.Submit(ctx, in)
			assert.ErrorIs(t, err, ErrInvalidInput)
		}
		mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}
