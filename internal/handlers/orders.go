// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

package handlers

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/fashionshop/api/internal/apperr"
	"github.com/fashionshop/api/internal/middleware"
	"github.com/fashionshop/api/internal/models"
	"github.com/fashionshop/api/internal/repository"
)

// OrderRequest is the request body for placing an order.
type OrderRequest struct {
	TotalPrice float64             `json:"orderTotalPrice"`
	Note       string              `json:"note"`
	Items      []models.OrderItem  `json:"productDetails"`
	Address    models.OrderAddress `json:"address"`
}

// ChangeOrderStatusRequest is the request body for moving an order to a new
// state.
type ChangeOrderStatusRequest struct {
	Status models.OrderStatus `json:"orderStatus"`
}

// ListOrders returns all orders, optionally filtered by state via the
// orderStatus query parameter.
func (h *Handlers) ListOrders(c echo.Context) error {
	status := models.OrderStatus(c.QueryParam("orderStatus"))
	if status != "" && !models.ValidOrderStatus(status) {
		return apperr.BadRequest("Invalid order status!")
	}

	orders, err := h.repo.ListOrders(c.Request().Context(), status)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, orders)
}

// MyOrders returns the authenticated user's orders.
func (h *Handlers) MyOrders(c echo.Context) error {
	userID := middleware.UserID(c.Request().Context())
	orders, err := h.repo.GetOrdersByUserID(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, orders)
}

// CreateOrder places a new order for the authenticated user.
func (h *Handlers) CreateOrder(c echo.Context) error {
	var req OrderRequest
	if err := c.Bind(&req); err != nil {
		return apperr.BadRequest("invalid request body")
	}
	if len(req.Items) == 0 {
		return apperr.BadRequest("Order must contain at least one product!")
	}
	if req.TotalPrice < 0 {
		return apperr.BadRequest("Order total must not be negative!")
	}
	if len(req.Note) > models.MaxOrderNoteLength {
		return apperr.BadRequest("Order note is too long!")
	}
	for _, item := range req.Items {
		if item.Quantity < 1 {
			return apperr.BadRequest("Product quantity must be at least 1!")
		}
	}

	order := &models.Order{
		ID:         uuid.NewString(),
		UserID:     middleware.UserID(c.Request().Context()),
		TotalPrice: req.TotalPrice,
		Note:       req.Note,
		Items:      req.Items,
		Address:    req.Address,
		Status:     models.OrderStatusNew,
	}
	if err := h.repo.CreateOrder(c.Request().Context(), order); err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, order)
}

// CancelOrder moves the authenticated user's own order into the cancel
// state. Only orders that have not shipped can be cancelled.
func (h *Handlers) CancelOrder(c echo.Context) error {
	ctx := c.Request().Context()
	order, err := h.repo.GetOrderByID(ctx, c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperr.NotFound("Order not found!")
		}
		return err
	}
	if order.UserID != middleware.UserID(ctx) {
		return apperr.Forbidden("You can only cancel your own orders!")
	}
	if order.Status != models.OrderStatusNew && order.Status != models.OrderStatusInProgress {
		return apperr.BadRequest("This order can no longer be cancelled!")
	}

	if err := h.repo.UpdateOrderStatus(ctx, order.ID, models.OrderStatusCancel); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"Status": "Success"})
}

// ChangeOrderStatus moves an order into an arbitrary valid state.
func (h *Handlers) ChangeOrderStatus(c echo.Context) error {
	var req ChangeOrderStatusRequest
	if err := c.Bind(&req); err != nil {
		return apperr.BadRequest("invalid request body")
	}
	if !models.ValidOrderStatus(req.Status) {
		return apperr.BadRequest("Invalid order status!")
	}
	if _, err := uuid.Parse(c.Param("id")); err != nil {
		return apperr.BadRequest("Invalid order id!")
	}

	if err := h.repo.UpdateOrderStatus(c.Request().Context(), c.Param("id"), req.Status); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperr.NotFound("Order not found!")
		}
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"Status": "Success"})
}
