// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/fashionshop/api/internal/apperr"
	"github.com/fashionshop/api/internal/models"
	"github.com/fashionshop/api/internal/repository"
)

// ProductRequest is the request body for creating or updating a product.
type ProductRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
}

func (req *ProductRequest) validate() error {
	if strings.TrimSpace(req.Name) == "" {
		return apperr.BadRequest("Product name is required!")
	}
	if req.Price < 0 {
		return apperr.BadRequest("Product price must not be negative!")
	}
	return nil
}

// ListProducts returns the catalog without soft-deleted entries.
func (h *Handlers) ListProducts(c echo.Context) error {
	products, err := h.repo.ListProducts(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, products)
}

// ListDeletedProducts returns the soft-deleted part of the catalog.
func (h *Handlers) ListDeletedProducts(c echo.Context) error {
	products, err := h.repo.ListDeletedProducts(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, products)
}

// RandomProducts returns a random sample of the catalog. The sample size
// defaults to 10 and is capped at 50.
func (h *Handlers) RandomProducts(c echo.Context) error {
	n := 10
	if raw := c.QueryParam("count"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			return apperr.BadRequest("count must be a positive number!")
		}
		n = parsed
	}
	if n > 50 {
		n = 50
	}

	products, err := h.repo.RandomProducts(c.Request().Context(), n)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, products)
}

// GetProduct returns a single product by id, deleted or not.
func (h *Handlers) GetProduct(c echo.Context) error {
	product, err := h.repo.GetProductByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperr.NotFound("Product not found!")
		}
		return err
	}
	return c.JSON(http.StatusOK, product)
}

// CreateProduct adds a catalog entry.
func (h *Handlers) CreateProduct(c echo.Context) error {
	var req ProductRequest
	if err := c.Bind(&req); err != nil {
		return apperr.BadRequest("invalid request body")
	}
	if err := req.validate(); err != nil {
		return err
	}

	product := &models.Product{
		ID:          uuid.NewString(),
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Category,
	}
	if err := h.repo.CreateProduct(c.Request().Context(), product); err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, product)
}

// UpdateProduct replaces a product's mutable fields.
func (h *Handlers) UpdateProduct(c echo.Context) error {
	var req ProductRequest
	if err := c.Bind(&req); err != nil {
		return apperr.BadRequest("invalid request body")
	}
	if err := req.validate(); err != nil {
		return err
	}

	product := &models.Product{
		ID:          c.Param("id"),
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Category,
	}
	if err := h.repo.UpdateProduct(c.Request().Context(), product); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperr.NotFound("Product not found!")
		}
		return err
	}
	return c.JSON(http.StatusOK, product)
}

// DeleteProduct soft-deletes a product.
func (h *Handlers) DeleteProduct(c echo.Context) error {
	if err := h.repo.SoftDeleteProduct(c.Request().Context(), c.Param("id")); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperr.NotFound("Product not found!")
		}
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"Status": "Success"})
}
