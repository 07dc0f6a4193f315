package order

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"

	"github.com/Additional-Code/orderdesk/internal/database"
	"github.com/Additional-Code/orderdesk/internal/entity"
)

func newTestRepo(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()
	sqldb, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqldb.Close() })

	db := bun.NewDB(sqldb, pgdialect.New())
	return NewRepository(&database.Connections{Writer: db, Reader: db}), mock
}

func orderRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "customer_name", "product", "quantity", "amount", "status", "order_date", "created_at",
	})
}

func TestFilterConjuncts(t *testing.T) {
	min, max := 10.0, 100.0

	full := Filter{
		Status:    entity.StatusPending,
		MinAmount: &min,
		MaxAmount: &max,
		StartDate: "2026-01-01",
		EndDate:   "2026-12-31",
	}
	conds := full.conjuncts()
	require.Len(t, conds, 5)
	assert.Equal(t, "status = ?", conds[0].expr)
	assert.Equal(t, "amount >= ?", conds[1].expr)
	assert.Equal(t, "amount <= ?", conds[2].expr)
	assert.Equal(t, "order_date >= ?", conds[3].expr)
	assert.Equal(t, "order_date <= ?", conds[4].expr)

	assert.Empty(t, Filter{Page: 1, Limit: 10}.conjuncts(), "absent filters contribute no conjunct")

	partial := Filter{MinAmount: &min, EndDate: "2026-12-31"}
	conds = partial.conjuncts()
	require.Len(t, conds, 2)
	assert.Equal(t, "amount >= ?", conds[0].expr)
	assert.Equal(t, "order_date <= ?", conds[1].expr)
}

func TestFilterOffset(t *testing.T) {
	assert.Equal(t, 0, Filter{Page: 1, Limit: 10}.Offset())
	assert.Equal(t, 10, Filter{Page: 2, Limit: 10}.Offset())
	assert.Equal(t, 40, Filter{Page: 5, Limit: 10}.Offset())
}

func TestRepositoryList(t *testing.T) {
	repo, mock := newTestRepo(t)
	min := 10.0

	mock.ExpectQuery(`SELECT count\(\*\) FROM "orders"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))
	mock.ExpectQuery(`SELECT .+ FROM "orders" AS "order" WHERE \(status = 'pending'\) AND \(amount >= 10\) ORDER BY order_date DESC, id DESC LIMIT 2 OFFSET 2`).
		WillReturnRows(orderRows().
			AddRow(5, "Alice", "Mouse", 1, 50.0, "pending", "2026-01-03", time.Now()).
			AddRow(2, "Bob", "Keyboard", 2, 20.0, "pending", "2026-01-02", time.Now()))

	orders, total, err := repo.List(context.Background(), Filter{
		Page:      2,
		Limit:     2,
		Status:    entity.StatusPending,
		MinAmount: &min,
	})
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	require.Len(t, orders, 2)
	assert.Equal(t, int64(5), orders[0].ID)
	assert.Equal(t, int64(2), orders[1].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepositoryList_NoFilters(t *testing.T) {
	repo, mock := newTestRepo(t)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "orders"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery(`SELECT .+ FROM "orders" AS "order" ORDER BY order_date DESC, id DESC LIMIT 10`).
		WillReturnRows(orderRows())

	orders, total, err := repo.List(context.Background(), Filter{Page: 1, Limit: 10})
	require.NoError(t, err)
	assert.Zero(t, total)
	assert.Empty(t, orders)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepositoryGetByID_NotFound(t *testing.T) {
	repo, mock := newTestRepo(t)

	mock.ExpectQuery(`SELECT .+ FROM "orders" AS "order" WHERE \(id = 42\)`).
		WillReturnRows(orderRows())

	_, err := repo.GetByID(context.Background(), 42)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepositoryUpdate(t *testing.T) {
	repo, mock := newTestRepo(t)

	mock.ExpectExec(`UPDATE "orders" .*SET "status" = 'completed', "quantity" = 3 WHERE \(id = 7\)`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Update(context.Background(), 7, []Assignment{
		{Column: "status", Value: "completed"},
		{Column: "quantity", Value: 3},
	})
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepositoryUpdate_NotFound(t *testing.T) {
	repo, mock := newTestRepo(t)

	mock.ExpectExec(`UPDATE "orders" .*SET "status" = 'completed' WHERE \(id = 99\)`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Update(context.Background(), 99, []Assignment{{Column: "status", Value: "completed"}})
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepositoryDelete_Idempotence(t *testing.T) {
	repo, mock := newTestRepo(t)

	mock.ExpectExec(`DELETE FROM "orders" AS "order" WHERE \(id = 7\)`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`DELETE FROM "orders" AS "order" WHERE \(id = 7\)`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, repo.Delete(context.Background(), 7))
	assert.ErrorIs(t, repo.Delete(context.Background(), 7), ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
