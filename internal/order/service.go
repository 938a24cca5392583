package order

import (
	"context"
	"fmt"

	"gallery-be/internal/logger"

	"go.uber.org/zap"
)

type Service interface {
	Submit(ctx context.Context, input SubmitOrderInput) (Order, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Submit(ctx context.Context, input SubmitOrderInput) (Order, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "SubmitOrder"),
	)

	if input.ArtworkID == "" {
		return Order{}, fmt.Errorf("%w: artwork id is required", ErrInvalidInput)
	}
	if input.Name == "" {
		return Order{}, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if input.Email == "" {
		return Order{}, fmt.Errorf("%w: email is required", ErrInvalidInput)
	}

	rec, err := s.repo.Create(ctx, recordFromInput(input))
	if err != nil {
		log.Error("failed to submit order",
			zap.String("artwork_id", input.ArtworkID),
			zap.Error(err),
		)
		return Order{}, fmt.Errorf("submit order: %w", err)
	}

	log.Info("order submitted",
		zap.String("id", rec.ID),
		zap.String("artwork_id", rec.ArtworkID),
	)
	return rec.toOrder(), nil
}
