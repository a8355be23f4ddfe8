package repository

import (
	"context"
	"database/sql"
	"shop-service/internal/entity"
)

type OrderRepository struct {
	db *sql.DB
}

func NewOrderRepository(db *sql.DB) *OrderRepository {
	return &OrderRepository{db}
}

// CreateOrder inserts the order as submitted. The user_id and product_id
// references are not validated against the users or products tables.
func (r *OrderRepository) CreateOrder(ctx context.Context, order *entity.Order) (*entity.Order, error) {
	query := `INSERT INTO orders (user_id, product_id) VALUES (?, ?)`
	res, err := r.db.ExecContext(ctx, query, order.UserID, order.ProductID)
	if err != nil {
		return nil, err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}

	order.ID = int(id)
	return order, nil
}

func (r *OrderRepository) ListOrders(ctx context.Context) ([]entity.Order, error) {
	query := `SELECT id, user_id, product_id FROM orders`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := []entity.Order{}
	for rows.Next() {
		order := entity.Order{}
		if err := rows.Scan(&order.ID, &order.UserID, &order.ProductID); err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}

	return orders, rows.Err()
}
