package service

import (
	"context"
	"testing"
	"time"

	"github.com/managejob/backend/internal/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubReviewRepo struct {
	reviews map[uuid.UUID]*domain.Review
}

func newStubReviewRepo() *stubReviewRepo {
	return &stubReviewRepo{reviews: make(map[uuid.UUID]*domain.Review)}
}

func (r *stubReviewRepo) Create(_ context.Context, review *domain.Review) error {
	stored := *review
	r.reviews[review.ID] = &stored
	return nil
}

func (r *stubReviewRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.Review, error) {
	review, ok := r.reviews[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return review, nil
}

func (r *stubReviewRepo) ListAll(_ context.Context) ([]domain.Review, error) {
	return nil, nil
}

func (r *stubReviewRepo) SearchByCompany(_ context.Context, _ string) ([]domain.Review, error) {
	return nil, nil
}

func (r *stubReviewRepo) IncrementVote(_ context.Context, id uuid.UUID, like bool) (*domain.Review, error) {
	review, ok := r.reviews[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	if like {
		review.Likes++
	} else {
		review.Dislikes++
	}
	return review, nil
}

func TestReviewService_Create_SetsTimestamp(t *testing.T) {
	repo := newStubReviewRepo()
	svc := newReviewService(repo)

	before := time.Now()
	review, err := svc.Create(context.Background(), CreateReviewInput{
		Company: "Acme",
		Rating:  4,
		Review:  "Decent place to work",
	})
	require.NoError(t, err)

	// the timestamp column is written on insert, so a zero time must
	// never reach the database
	stored := repo.reviews[review.ID]
	require.NotNil(t, stored)
	assert.False(t, stored.Timestamp.IsZero())
	assert.False(t, stored.Timestamp.Before(before))

	assert.Equal(t, int64(0), stored.Likes)
	assert.Equal(t, int64(0), stored.Dislikes)
}

func TestReviewService_Vote(t *testing.T) {
	repo := newStubReviewRepo()
	svc := newReviewService(repo)

	created, err := svc.Create(context.Background(), CreateReviewInput{
		Company: "Acme",
		Rating:  4,
		Review:  "Decent place to work",
	})
	require.NoError(t, err)

	review, err := svc.Vote(context.Background(), created.ID, true)
	require.NoError(t, err)
	assert.Equal(t, int64(1), review.Likes)

	review, err = svc.Vote(context.Background(), created.ID, false)
	require.NoError(t, err)
	assert.Equal(t, int64(1), review.Dislikes)

	missing, err := uuid.NewV7()
	require.NoError(t, err)
	_, err = svc.Vote(context.Background(), missing, true)
	assert.ErrorIs(t, err, ErrReviewNotFound)
}
