package service

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shop-service/internal/entity"
	"shop-service/internal/repository"
)

func newOrderService(t *testing.T) (*OrderService, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	repo := repository.NewOrderRepository(db)
	return NewOrderService(*repo, nil), mock
}

func TestCreateOrderWithoutKafkaWriter(t *testing.T) {
	svc, mock := newOrderService(t)

	mock.ExpectExec("INSERT INTO orders").
		WithArgs(42, 7).
		WillReturnResult(sqlmock.NewResult(5, 1))

	order, err := svc.CreateOrder(context.Background(), &entity.OrderCreate{UserID: 42, ProductID: 7})
	require.NoError(t, err)

	assert.Equal(t, 5, order.ID)
	assert.Equal(t, 42, order.UserID)
	assert.Equal(t, 7, order.ProductID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestListOrdersPassesThrough(t *testing.T) {
	svc, mock := newOrderService(t)

	rows := sqlmock.NewRows([]string{"id", "user_id", "product_id"}).
		AddRow(5, 42, 7)
	mock.ExpectQuery("SELECT id, user_id, product_id FROM orders").WillReturnRows(rows)

	orders, err := svc.ListOrders(context.Background())
	require.NoError(t, err)

	require.Len(t, orders, 1)
	assert.Equal(t, 5, orders[0].ID)
}
