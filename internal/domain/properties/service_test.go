package properties

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testRepo struct {
	items  []Property
	owners map[string]bool
}

func (r *testRepo) Create(ctx context.Context, p Property) error {
	if !r.owners[p.OwnerID] {
		return ErrOwnerNotFound
	}
	r.items = append(r.items, p)
	return nil
}

func (r *testRepo) List(ctx context.Context) ([]Listing, error) {
	out := make([]Listing, 0, len(r.items))
	for _, p := range r.items {
		out = append(out, Listing{Property: p})
	}
	return out, nil
}

func area(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func TestService_Create_RoundsAreaToTwoDecimals(t *testing.T) {
	repo := &testRepo{owners: map[string]bool{"o1": true}}
	svc := NewService(repo)

	p, err := svc.Create(context.Background(), CreateInput{
		Name:         "Fazenda Boa Vista",
		Municipality: "Sorriso",
		State:        "MT",
		AreaHectares: area("10.505"),
		OwnerID:      "o1",
	})
	require.NoError(t, err)
	assert.Equal(t, "10.51", p.AreaHectares.StringFixed(2))
	assert.NotEmpty(t, p.ID)
}

func TestService_Create_Validation(t *testing.T) {
	svc := NewService(&testRepo{owners: map[string]bool{"o1": true}})

	cases := []struct {
		name string
		in   CreateInput
		want error
	}{
		{"missing area", CreateInput{Name: "A", Municipality: "B", State: "MT", OwnerID: "o1"}, ErrInvalidInput},
		{"blank state", CreateInput{Name: "A", Municipality: "B", State: "  ", AreaHectares: area("1"), OwnerID: "o1"}, ErrInvalidInput},
		{"missing owner", CreateInput{Name: "A", Municipality: "B", State: "MT", AreaHectares: area("1")}, ErrInvalidInput},
		{"negative area", CreateInput{Name: "A", Municipality: "B", State: "MT", AreaHectares: area("-1"), OwnerID: "o1"}, ErrNegativeArea},
		{"area too large", CreateInput{Name: "A", Municipality: "B", State: "MT", AreaHectares: area("10000000000"), OwnerID: "o1"}, ErrAreaTooLarge},
		{"area rounds up past limit", CreateInput{Name: "A", Municipality: "B", State: "MT", AreaHectares: area("99999999.999"), OwnerID: "o1"}, ErrAreaTooLarge},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), tc.in)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestService_Create_LargestAreaAllowed(t *testing.T) {
	repo := &testRepo{owners: map[string]bool{"o1": true}}
	svc := NewService(repo)

	p, err := svc.Create(context.Background(), CreateInput{Name: "A", Municipality: "B", State: "MT", AreaHectares: area("99999999.99"), OwnerID: "o1"})
	require.NoError(t, err)
	assert.Equal(t, "99999999.99", p.AreaHectares.StringFixed(2))
}

func TestService_Create_ZeroAreaAllowed(t *testing.T) {
	svc := NewService(&testRepo{owners: map[string]bool{"o1": true}})

	p, err := svc.Create(context.Background(), CreateInput{
		Name: "A", Municipality: "B", State: "MT", AreaHectares: area("0"), OwnerID: "o1",
	})
	require.NoError(t, err)
	assert.True(t, p.AreaHectares.IsZero())
}

func TestService_Create_UnknownOwner(t *testing.T) {
	svc := NewService(&testRepo{owners: map[string]bool{}})

	_, err := svc.Create(context.Background(), CreateInput{
		Name: "A", Municipality: "B", State: "MT", AreaHectares: area("1"), OwnerID: "ghost",
	})
	assert.ErrorIs(t, err, ErrOwnerNotFound)
}
