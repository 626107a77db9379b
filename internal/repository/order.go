// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/fashionshop/api/internal/models"
)

// orderRow is the flat row shape for the orders table. Items live in a JSON
// column; the address is stored in dedicated columns.
type orderRow struct { //nolint:govet // fieldalignment: readability over optimization
	ID              string    `db:"id"`
	UserID          string    `db:"user_id"`
	OrderDate       time.Time `db:"order_date"`
	TotalPrice      float64   `db:"total_price"`
	Note            string    `db:"note"`
	Items           string    `db:"items"`
	City            string    `db:"city"`
	District        string    `db:"district"`
	Ward            string    `db:"ward"`
	StreetAndNumber string    `db:"street_and_number"`
	Status          string    `db:"status"`
	IsDeleted       bool      `db:"is_deleted"`
}

func (row *orderRow) toModel() (*models.Order, error) {
	var items []models.OrderItem
	if err := json.Unmarshal([]byte(row.Items), &items); err != nil {
		return nil, fmt.Errorf("decoding order items: %w", err)
	}
	return &models.Order{
		ID:         row.ID,
		UserID:     row.UserID,
		OrderDate:  row.OrderDate,
		TotalPrice: row.TotalPrice,
		Note:       row.Note,
		Items:      items,
		Address: models.OrderAddress{
			City:            row.City,
			District:        row.District,
			Ward:            row.Ward,
			StreetAndNumber: row.StreetAndNumber,
		},
		Status:    models.OrderStatus(row.Status),
		IsDeleted: row.IsDeleted,
	}, nil
}

// CreateOrder inserts a new order.
func (r *Repository) CreateOrder(ctx context.Context, o *models.Order) error {
	if o.OrderDate.IsZero() {
		o.OrderDate = time.Now().UTC()
	}
	items, err := json.Marshal(o.Items)
	if err != nil {
		return fmt.Errorf("encoding order items: %w", err)
	}
	_, err = r.db.ExecContext(ctx,
		`INSERT INTO orders (id, user_id, order_date, total_price, note, items, city, district, ward, street_and_number, status, is_deleted)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		o.ID, o.UserID, o.OrderDate, o.TotalPrice, o.Note, string(items),
		o.Address.City, o.Address.District, o.Address.Ward, o.Address.StreetAndNumber,
		o.Status, o.IsDeleted)
	return wrapError(err)
}

// GetOrderByID retrieves a single order.
func (r *Repository) GetOrderByID(ctx context.Context, id string) (*models.Order, error) {
	var row orderRow
	if err := r.db.GetContext(ctx, &row, `SELECT * FROM orders WHERE id = ?`, id); err != nil {
		return nil, wrapError(err)
	}
	return row.toModel()
}

// ListOrders returns all non-deleted orders, newest first. When status is
// non-empty the listing is filtered to that state.
func (r *Repository) ListOrders(ctx context.Context, status models.OrderStatus) ([]models.Order, error) {
	var rows []orderRow
	var err error
	if status != "" {
		err = r.db.SelectContext(ctx, &rows,
			`SELECT * FROM orders WHERE is_deleted = 0 AND status = ? ORDER BY order_date DESC`, status)
	} else {
		err = r.db.SelectContext(ctx, &rows,
			`SELECT * FROM orders WHERE is_deleted = 0 ORDER BY order_date DESC`)
	}
	if err != nil {
		return nil, wrapError(err)
	}
	return rowsToOrders(rows)
}

// GetOrdersByUserID returns a user's non-deleted orders.
func (r *Repository) GetOrdersByUserID(ctx context.Context, userID string) ([]models.Order, error) {
	var rows []orderRow
	err := r.db.SelectContext(ctx, &rows,
		`SELECT * FROM orders WHERE user_id = ? AND is_deleted = 0 ORDER BY order_date DESC`, userID)
	if err != nil {
		return nil, wrapError(err)
	}
	return rowsToOrders(rows)
}

// UpdateOrderStatus moves an order to the given state.
func (r *Repository) UpdateOrderStatus(ctx context.Context, id string, status models.OrderStatus) error {
	res, err := r.db.ExecContext(ctx, `UPDATE orders SET status = ? WHERE id = ?`, status, id)
	if err != nil {
		return wrapError(err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}

func rowsToOrders(rows []orderRow) ([]models.Order, error) {
	orders := make([]models.Order, 0, len(rows))
	for i := range rows {
		o, err := rows[i].toModel()
		if err != nil {
			return nil, err
		}
		orders = append(orders, *o)
	}
	return orders, nil
}
