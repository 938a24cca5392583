package offer

import (
	"context"
	"fmt"

	"gallery-be/internal/logger"

	"go.uber.org/zap"
)

type Service interface {
	Submit(ctx context.Context, input SubmitOfferInput) (Offer, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Submit(ctx context.Context, input SubmitOfferInput) (Offer, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "SubmitOffer"),
	)

	if input.ArtworkID == "" {
		return Offer{}, fmt.Errorf("%w: artwork id is required", ErrInvalidInput)
	}
	if input.Name == "" {
		return Offer{}, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if input.Email == "" {
		return Offer{}, fmt.Errorf("%w: email is required", ErrInvalidInput)
	}
	if input.OfferAmount <= 0 {
		return Offer{}, fmt.Errorf("%w: offer amount must be positive", ErrInvalidInput)
	}
	if input.Currency != "" && !input.Currency.Valid() {
		return Offer{}, fmt.Errorf("%w: unknown currency %q", ErrInvalidInput, input.Currency)
	}

	rec, err := s.repo.Create(ctx, recordFromInput(input))
	if err != nil {
		log.Error("failed to submit offer",
			zap.String("artwork_id", input.ArtworkID),
			zap.Error(err),
		)
		return Offer{}, fmt.Errorf("submit offer: %w", err)
	}

	log.Info("offer submitted",
		zap.String("id", rec.ID),
		zap.String("artwork_id", rec.ArtworkID),
		zap.Float64("offer_amount", rec.OfferAmount),
	)
	return rec.toOffer(), nil
}
