package owners

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// -------------------------
// Test repo (in-memory)
// -------------------------

type testRepo struct {
	items []Owner
	err   error
}

func (r *testRepo) Create(ctx context.Context, o Owner) error {
	if r.err != nil {
		return r.err
	}
	for _, existing := range r.items {
		if existing.TaxID == o.TaxID {
			return ErrDuplicate
		}
	}
	r.items = append(r.items, o)
	return nil
}

func (r *testRepo) List(ctx context.Context) ([]Owner, error) {
	return r.items, r.err
}

// -------------------------
// Tests
// -------------------------

func TestService_Create_TrimsAndStamps(t *testing.T) {
	repo := &testRepo{}
	svc := NewService(repo)

	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	o, err := svc.Create(context.Background(), CreateInput{
		Name:  "  Ana  ",
		TaxID: " 123.456.789-00 ",
		Email: "ana@example.com ",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, o.ID)
	assert.Equal(t, "Ana", o.Name)
	assert.Equal(t, "123.456.789-00", o.TaxID)
	assert.Equal(t, "ana@example.com", o.Email)
	assert.Equal(t, now, o.CreatedAt)
	assert.Len(t, repo.items, 1)
}

func TestService_Create_RequiresNameAndTaxID(t *testing.T) {
	svc := NewService(&testRepo{})

	_, err := svc.Create(context.Background(), CreateInput{Name: "Ana"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Create(context.Background(), CreateInput{TaxID: "1"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_Create_DuplicateTaxIDLeavesCountUnchanged(t *testing.T) {
	repo := &testRepo{}
	svc := NewService(repo)

	_, err := svc.Create(context.Background(), CreateInput{Name: "Ana", TaxID: "1"})
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), CreateInput{Name: "Bia", TaxID: "1"})
	assert.ErrorIs(t, err, ErrDuplicate)
	assert.Len(t, repo.items, 1)
}

func TestService_Create_PropagatesStoreError(t *testing.T) {
	boom := errors.New("store down")
	svc := NewService(&testRepo{err: boom})

	_, err := svc.Create(context.Background(), CreateInput{Name: "Ana", TaxID: "1"})
	assert.ErrorIs(t, err, boom)
}
