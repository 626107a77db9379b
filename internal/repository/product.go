// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

package repository

import (
	"context"
	"time"

	"github.com/fashionshop/api/internal/models"
)

// CreateProduct inserts a new catalog entry.
func (r *Repository) CreateProduct(ctx context.Context, p *models.Product) error {
	now := time.Now().UTC()
	p.CreatedAt = now
	p.UpdatedAt = now
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO products (id, name, description, price, category, is_deleted, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		p.ID, p.Name, p.Description, p.Price, p.Category, p.IsDeleted, p.CreatedAt, p.UpdatedAt)
	return wrapError(err)
}

// GetProductByID retrieves a product regardless of its deletion state.
func (r *Repository) GetProductByID(ctx context.Context, id string) (*models.Product, error) {
	var p models.Product
	if err := r.db.GetContext(ctx, &p, `SELECT * FROM products WHERE id = ?`, id); err != nil {
		return nil, wrapError(err)
	}
	return &p, nil
}

// ListProducts returns all non-deleted products, newest first.
func (r *Repository) ListProducts(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	err := r.db.SelectContext(ctx, &products,
		`SELECT * FROM products WHERE is_deleted = 0 ORDER BY created_at DESC`)
	if err != nil {
		return nil, wrapError(err)
	}
	return products, nil
}

// ListDeletedProducts returns soft-deleted products.
func (r *Repository) ListDeletedProducts(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	err := r.db.SelectContext(ctx, &products,
		`SELECT * FROM products WHERE is_deleted = 1 ORDER BY updated_at DESC`)
	if err != nil {
		return nil, wrapError(err)
	}
	return products, nil
}

// RandomProducts returns up to n random non-deleted products.
func (r *Repository) RandomProducts(ctx context.Context, n int) ([]models.Product, error) {
	var products []models.Product
	err := r.db.SelectContext(ctx, &products,
		`SELECT * FROM products WHERE is_deleted = 0 ORDER BY RANDOM() LIMIT ?`, n)
	if err != nil {
		return nil, wrapError(err)
	}
	return products, nil
}

// UpdateProduct updates a product's mutable fields.
func (r *Repository) UpdateProduct(ctx context.Context, p *models.Product) error {
	p.UpdatedAt = time.Now().UTC()
	res, err := r.db.ExecContext(ctx,
		`UPDATE products SET name = ?, description = ?, price = ?, category = ?, updated_at = ? WHERE id = ?`,
		p.Name, p.Description, p.Price, p.Category, p.UpdatedAt, p.ID)
	if err != nil {
		return wrapError(err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}

// SoftDeleteProduct marks a product deleted without removing the row.
func (r *Repository) SoftDeleteProduct(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE products SET is_deleted = 1, updated_at = ? WHERE id = ?`,
		time.Now().UTC(), id)
	if err != nil {
		return wrapError(err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}
