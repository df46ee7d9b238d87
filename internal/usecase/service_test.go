package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gridsolve/sudoku/internal/domain"
)

type fakeStore struct {
	saved *domain.Puzzle
}

func (f *fakeStore) Save(_ context.Context, p *domain.Puzzle) error { f.saved = p; return nil }
func (f *fakeStore) Load(_ context.Context, _ string) (*domain.Puzzle, error) {
	return f.saved, nil
}
func (f *fakeStore) List(_ context.Context) ([]domain.PuzzleMeta, error) { return nil, nil }

func TestSaveMintsIDAndTimestamp(t *testing.T) {
	store := &fakeStore{}
	uc := NewService(nil, nil, nil, nil, store)

	p := &domain.Puzzle{}
	require.NoError(t, uc.Save(context.Background(), p))
	assert.NotEmpty(t, p.ID)
	assert.NotZero(t, p.CreatedAt)
	assert.Same(t, p, store.saved)
}

func TestSaveKeepsExistingID(t *testing.T) {
	uc := NewService(nil, nil, nil, nil, &fakeStore{})
	p := &domain.Puzzle{ID: "keep-me", CreatedAt: 7}
	require.NoError(t, uc.Save(context.Background(), p))
	assert.Equal(t, "keep-me", p.ID)
	assert.EqualValues(t, 7, p.CreatedAt)
}

func TestUnconfiguredDependenciesError(t *testing.T) {
	uc := &Service{}
	ctx := context.Background()

	_, _, err := uc.Solve(ctx, &domain.Board{})
	assert.ErrorIs(t, err, errNotConfigured)
	_, _, err = uc.Generate(ctx, 1, domain.Easy)
	assert.ErrorIs(t, err, errNotConfigured)
	_, _, err = uc.Analyze(ctx, &domain.Board{})
	assert.ErrorIs(t, err, errNotConfigured)
	_, _, err = uc.Validate(ctx, &domain.Board{})
	assert.ErrorIs(t, err, errNotConfigured)
	err = uc.Save(ctx, &domain.Puzzle{})
	assert.ErrorIs(t, err, errNotConfigured)
}
