package postgres

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"progest/internal/domain/accounts"
	"progest/internal/domain/animals"
	"progest/internal/domain/batches"
	"progest/internal/domain/owners"
	"progest/internal/domain/properties"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMock(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		_ = db.Close()
	})
	return db, mock
}

func TestOwnersRepo_Create(t *testing.T) {
	db, mock := newMock(t)
	now := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)

	mock.ExpectExec("INSERT INTO owners").
		WithArgs("o1", "Ana", "123", "ana@x.com", "", now).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := NewOwnersRepo(db).Create(context.Background(), owners.Owner{
		ID: "o1", Name: "Ana", TaxID: "123", Email: "ana@x.com", CreatedAt: now,
	})
	require.NoError(t, err)
}

func TestOwnersRepo_Create_DuplicateTaxID(t *testing.T) {
	db, mock := newMock(t)

	mock.ExpectExec("INSERT INTO owners").
		WillReturnError(&pgconn.PgError{Code: codeUniqueViolation, ConstraintName: "owners_tax_id_key"})

	err := NewOwnersRepo(db).Create(context.Background(), owners.Owner{ID: "o1", Name: "Ana", TaxID: "123"})
	assert.ErrorIs(t, err, owners.ErrDuplicate)
}

func TestOwnersRepo_Create_StoreFailure(t *testing.T) {
	db, mock := newMock(t)
	boom := errors.New("connection reset")

	mock.ExpectExec("INSERT INTO owners").WillReturnError(boom)

	err := NewOwnersRepo(db).Create(context.Background(), owners.Owner{ID: "o1"})
	assert.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, owners.ErrDuplicate)
}

func TestOwnersRepo_List(t *testing.T) {
	db, mock := newMock(t)
	now := time.Now().UTC()

	mock.ExpectQuery("SELECT id, name, tax_id, email, phone, created_at FROM owners").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "tax_id", "email", "phone", "created_at"}).
			AddRow("o2", "Bia", "2", "", "", now).
			AddRow("o1", "Ana", "1", "", "", now.Add(-time.Hour)))

	list, err := NewOwnersRepo(db).List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Bia", list[0].Name)
}

func TestPropertiesRepo_Create_MissingOwner(t *testing.T) {
	db, mock := newMock(t)

	mock.ExpectExec("INSERT INTO properties").
		WillReturnError(&pgconn.PgError{Code: codeForeignKeyViolation, ConstraintName: "properties_owner_id_fkey"})

	err := NewPropertiesRepo(db).Create(context.Background(), properties.Property{
		ID: "p1", Name: "Santa Rita", OwnerID: "nope", AreaHectares: decimal.RequireFromString("10.00"),
	})
	assert.ErrorIs(t, err, properties.ErrOwnerNotFound)
}

func TestPropertiesRepo_List(t *testing.T) {
	db, mock := newMock(t)
	now := time.Now().UTC()

	mock.ExpectQuery("FROM properties p").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "municipality", "state", "area_hectares", "owner_id", "created_at", "owner_name"}).
			AddRow("p1", "Santa Rita", "Sinop", nil, "5.50", "o1", now, "Ana"))

	list, err := NewPropertiesRepo(db).List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Ana", list[0].OwnerName)
	assert.Equal(t, "", list[0].State)
	assert.True(t, decimal.RequireFromString("5.5").Equal(list[0].AreaHectares))
}

func TestAnimalsRepo_CreateAndList(t *testing.T) {
	db, mock := newMock(t)
	now := time.Now().UTC()

	mock.ExpectExec("INSERT INTO animal_kinds").
		WithArgs("k1", "Equino", sql.NullString{}, now).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("FROM animal_kinds").
		WillReturnRows(sqlmock.NewRows([]string{"id", "kind", "breed", "created_at"}).
			AddRow("k2", "Bovino", "Nelore", now).
			AddRow("k1", "Equino", nil, now))

	repo := NewAnimalsRepo(db)
	require.NoError(t, repo.Create(context.Background(), animals.Kind{ID: "k1", Kind: "Equino", CreatedAt: now}))

	list, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Bovino - Nelore", list[0].Label())
	assert.Nil(t, list[1].Breed)
}

func TestBatchesRepo_Create_MissingReferences(t *testing.T) {
	cases := []struct {
		constraint string
		want       error
	}{
		{"batches_property_id_fkey", batches.ErrPropertyNotFound},
		{"batches_animal_kind_id_fkey", batches.ErrAnimalKindNotFound},
	}

	for _, tc := range cases {
		t.Run(tc.constraint, func(t *testing.T) {
			db, mock := newMock(t)
			mock.ExpectExec("INSERT INTO batches").
				WillReturnError(&pgconn.PgError{Code: codeForeignKeyViolation, ConstraintName: tc.constraint})

			err := NewBatchesRepo(db).Create(context.Background(), batches.Batch{ID: "b1", PropertyID: "p", AnimalKindID: "k"})
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestBatchesRepo_List(t *testing.T) {
	db, mock := newMock(t)
	now := time.Now().UTC()
	on := time.Date(2025, 2, 10, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery("FROM batches b").
		WillReturnRows(sqlmock.NewRows([]string{"id", "property_id", "animal_kind_id", "count", "registered_on", "created_at", "pname", "kind", "breed"}).
			AddRow("b1", "p1", "k1", int64(20), on, now, "Santa Rita", "Bovino", "Nelore").
			AddRow("b2", "p1", "k2", int64(3), nil, now, "Santa Rita", "Equino", nil))

	list, err := NewBatchesRepo(db).List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 2)
	require.NotNil(t, list[0].RegisteredOn)
	assert.True(t, on.Equal(*list[0].RegisteredOn))
	assert.Nil(t, list[1].RegisteredOn)
	assert.Nil(t, list[1].Breed)
	assert.Equal(t, 20, list[0].Count)
}

func TestUsersRepo(t *testing.T) {
	db, mock := newMock(t)
	now := time.Now().UTC()

	mock.ExpectExec("INSERT INTO users").
		WillReturnError(&pgconn.PgError{Code: codeUniqueViolation})
	mock.ExpectQuery("FROM users").
		WithArgs("ana").
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "password_hash", "created_at"}).
			AddRow("u1", "ana", "$2a$hash", now))
	mock.ExpectQuery("FROM users").
		WithArgs("bia").
		WillReturnError(sql.ErrNoRows)

	repo := NewUsersRepo(db)
	ctx := context.Background()

	assert.ErrorIs(t, repo.Create(ctx, accounts.User{ID: "u2", Username: "ana"}), accounts.ErrDuplicate)

	u, err := repo.GetByUsername(ctx, " ana ")
	require.NoError(t, err)
	assert.Equal(t, "u1", u.ID)

	_, err = repo.GetByUsername(ctx, "bia")
	assert.ErrorIs(t, err, accounts.ErrNotFound)
}

func TestEnsureSchema(t *testing.T) {
	db, mock := newMock(t)

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS owners").WillReturnResult(sqlmock.NewResult(0, 0))
	require.NoError(t, EnsureSchema(context.Background(), db))
}
