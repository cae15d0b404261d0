package postgres

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newExactMock(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		_ = db.Close()
	})
	return db, mock
}

func TestAnalyticsReader_AnimalsPerOwner(t *testing.T) {
	db, mock := newExactMock(t)
	mock.ExpectQuery(sqlAnimalsPerOwner).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "total"}).
			AddRow("o1", "Ana", int64(20)).
			AddRow("o2", "Bia", int64(7)))

	rows, err := NewAnalyticsReader(db).AnimalsPerOwner(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Ana", rows[0].OwnerName)
	assert.Equal(t, int64(20), rows[0].TotalAnimals)
}

func TestAnalyticsReader_AnimalsPerBreed_NullGroup(t *testing.T) {
	db, mock := newExactMock(t)
	mock.ExpectQuery(sqlAnimalsPerBreed).
		WillReturnRows(sqlmock.NewRows([]string{"breed", "total"}).
			AddRow("Nelore", int64(15)).
			AddRow(nil, int64(5)))

	rows, err := NewAnalyticsReader(db).AnimalsPerBreed(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Nelore", *rows[0].Breed)
	assert.Nil(t, rows[1].Breed)
}

func TestAnalyticsReader_AreaPerOwner_KeepsDecimals(t *testing.T) {
	db, mock := newExactMock(t)
	mock.ExpectQuery(sqlAreaPerOwner).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "total"}).
			AddRow("o1", "Ana", "15.50"))

	rows, err := NewAnalyticsReader(db).AreaPerOwner(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.True(t, decimal.RequireFromString("15.50").Equal(rows[0].TotalHectares))
}

func TestAnalyticsReader_FarmsPerState(t *testing.T) {
	db, mock := newExactMock(t)
	mock.ExpectQuery(sqlFarmsPerState).
		WillReturnRows(sqlmock.NewRows([]string{"state", "farms"}).
			AddRow("MT", int64(2)).
			AddRow(nil, int64(1)))

	rows, err := NewAnalyticsReader(db).FarmsPerState(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, int64(2), rows[0].FarmCount)
	assert.Nil(t, rows[1].State)
}

func TestAnalyticsReader_SummaryCounts(t *testing.T) {
	db, mock := newExactMock(t)
	mock.ExpectQuery(sqlSummaryCounts).
		WillReturnRows(sqlmock.NewRows([]string{"a", "b", "c", "d", "e", "f", "g"}).
			AddRow(int64(1), int64(2), int64(3), int64(4), int64(50), int64(2), int64(1)))

	c, err := NewAnalyticsReader(db).SummaryCounts(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(50), c.TotalAnimals)
	assert.Equal(t, int64(1), c.DistinctBreeds)
}

func TestAnalyticsReader_SummaryCounts_Error(t *testing.T) {
	db, mock := newExactMock(t)
	boom := errors.New("timeout")
	mock.ExpectQuery(sqlSummaryCounts).WillReturnError(boom)

	_, err := NewAnalyticsReader(db).SummaryCounts(context.Background())
	assert.ErrorIs(t, err, boom)
}

func TestAnalyticsReader_RecentBatches(t *testing.T) {
	db, mock := newExactMock(t)
	on := time.Date(2025, 2, 10, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery(sqlRecentBatches).
		WillReturnRows(sqlmock.NewRows([]string{"id", "pname", "kind", "breed", "count", "registered_on"}).
			AddRow("b1", "Santa Rita", "Bovino", "Nelore", int64(20), on).
			AddRow("b2", "Santa Rita", "Equino", nil, int64(3), nil))

	rows, err := NewAnalyticsReader(db).RecentBatches(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 2)
	require.NotNil(t, rows[0].RegisteredOn)
	assert.Nil(t, rows[1].RegisteredOn)
	assert.Nil(t, rows[1].Breed)
}

func TestAnalyticsReader_QueryError(t *testing.T) {
	db, mock := newExactMock(t)
	boom := errors.New("store unreachable")
	mock.ExpectQuery(sqlFarmsPerState).WillReturnError(boom)

	_, err := NewAnalyticsReader(db).FarmsPerState(context.Background())
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "farms per state")
}
