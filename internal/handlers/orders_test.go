// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fashionshop/api/internal/apperr"
	"github.com/fashionshop/api/internal/ctxkeys"
	"github.com/fashionshop/api/internal/handlers"
	"github.com/fashionshop/api/internal/models"
	"github.com/fashionshop/api/internal/testutil"
)

// asUser attaches an authenticated user id to the request, the way the auth
// middleware does.
func asUser(c echo.Context, userID string) {
	ctx := context.WithValue(c.Request().Context(), ctxkeys.UserID{}, userID)
	c.SetRequest(c.Request().WithContext(ctx))
}

func TestCreateOrder(t *testing.T) {
	_, repo := testutil.NewTestDB(t)
	h := handlers.New(repo)
	e := echo.New()
	user := testutil.NewTestUser(t, repo, "jane@example.com", "Password1")

	body := `{"orderTotalPrice":42.5,"note":"leave at the door","productDetails":[{"productDetailId":"pd-1","quantity":2}],"address":{"city":"Hanoi","district":"Ba Dinh","ward":"Truc Bach","streetAndNumber":"1 Main St"}}`
	c, rec := testutil.NewEchoContext(e, http.MethodPost, "/api/orders", strings.NewReader(body))
	asUser(c, user.ID)
	require.NoError(t, h.CreateOrder(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	var order models.Order
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &order))
	assert.Equal(t, user.ID, order.UserID)
	assert.Equal(t, models.OrderStatusNew, order.Status)
	assert.Equal(t, "Hanoi", order.Address.City)
	require.Len(t, order.Items, 1)
	assert.Equal(t, 2, order.Items[0].Quantity)
}

func TestCreateOrderWithoutItems(t *testing.T) {
	_, repo := testutil.NewTestDB(t)
	h := handlers.New(repo)
	e := echo.New()

	body := `{"orderTotalPrice":10,"productDetails":[]}`
	c, _ := testutil.NewEchoContext(e, http.MethodPost, "/api/orders", strings.NewReader(body))
	asUser(c, "user-1")
	err := h.CreateOrder(c)

	var appErr *apperr.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperr.KindBadRequest, appErr.Kind)
	assert.Equal(t, "Order must contain at least one product!", appErr.Message)
}

func TestCreateOrderNoteTooLong(t *testing.T) {
	_, repo := testutil.NewTestDB(t)
	h := handlers.New(repo)
	e := echo.New()

	note := strings.Repeat("x", models.MaxOrderNoteLength+1)
	body := `{"orderTotalPrice":10,"note":"` + note + `","productDetails":[{"productDetailId":"pd-1","quantity":1}]}`
	c, _ := testutil.NewEchoContext(e, http.MethodPost, "/api/orders", strings.NewReader(body))
	asUser(c, "user-1")
	err := h.CreateOrder(c)

	var appErr *apperr.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "Order note is too long!", appErr.Message)
}

func TestMyOrders(t *testing.T) {
	_, repo := testutil.NewTestDB(t)
	h := handlers.New(repo)
	e := echo.New()
	user := testutil.NewTestUser(t, repo, "jane@example.com", "Password1")
	other := testutil.NewTestUser(t, repo, "john@example.com", "Password1")

	for _, uid := range []string{user.ID, other.ID} {
		body := `{"orderTotalPrice":10,"productDetails":[{"productDetailId":"pd-1","quantity":1}]}`
		c, _ := testutil.NewEchoContext(e, http.MethodPost, "/api/orders", strings.NewReader(body))
		asUser(c, uid)
		require.NoError(t, h.CreateOrder(c))
	}

	c, rec := testutil.NewEchoContext(e, http.MethodGet, "/api/orders/my", nil)
	asUser(c, user.ID)
	require.NoError(t, h.MyOrders(c))

	var orders []models.Order
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &orders))
	require.Len(t, orders, 1)
	assert.Equal(t, user.ID, orders[0].UserID)
}

func TestCancelOrder(t *testing.T) {
	_, repo := testutil.NewTestDB(t)
	h := handlers.New(repo)
	e := echo.New()
	user := testutil.NewTestUser(t, repo, "jane@example.com", "Password1")

	body := `{"orderTotalPrice":10,"productDetails":[{"productDetailId":"pd-1","quantity":1}]}`
	c, rec := testutil.NewEchoContext(e, http.MethodPost, "/api/orders", strings.NewReader(body))
	asUser(c, user.ID)
	require.NoError(t, h.CreateOrder(c))

	var order models.Order
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &order))

	c, rec = testutil.NewEchoContext(e, http.MethodPost, "/api/orders/"+order.ID+"/cancel", nil)
	c.SetParamNames("id")
	c.SetParamValues(order.ID)
	asUser(c, user.ID)
	require.NoError(t, h.CancelOrder(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	cancelled, err := repo.GetOrderByID(context.Background(), order.ID)
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusCancel, cancelled.Status)

	// A cancelled order cannot be cancelled again.
	c, _ = testutil.NewEchoContext(e, http.MethodPost, "/api/orders/"+order.ID+"/cancel", nil)
	c.SetParamNames("id")
	c.SetParamValues(order.ID)
	asUser(c, user.ID)
	err = h.CancelOrder(c)

	var appErr *apperr.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperr.KindBadRequest, appErr.Kind)
}

func TestCancelOrderOfAnotherUser(t *testing.T) {
	_, repo := testutil.NewTestDB(t)
	h := handlers.New(repo)
	e := echo.New()
	user := testutil.NewTestUser(t, repo, "jane@example.com", "Password1")

	body := `{"orderTotalPrice":10,"productDetails":[{"productDetailId":"pd-1","quantity":1}]}`
	c, rec := testutil.NewEchoContext(e, http.MethodPost, "/api/orders", strings.NewReader(body))
	asUser(c, user.ID)
	require.NoError(t, h.CreateOrder(c))

	var order models.Order
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &order))

	c, _ = testutil.NewEchoContext(e, http.MethodPost, "/api/orders/"+order.ID+"/cancel", nil)
	c.SetParamNames("id")
	c.SetParamValues(order.ID)
	asUser(c, "someone-else")
	err := h.CancelOrder(c)

	var appErr *apperr.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperr.KindForbidden, appErr.Kind)
}

func TestChangeOrderStatus(t *testing.T) {
	_, repo := testutil.NewTestDB(t)
	h := handlers.New(repo)
	e := echo.New()
	user := testutil.NewTestUser(t, repo, "jane@example.com", "Password1")

	body := `{"orderTotalPrice":10,"productDetails":[{"productDetailId":"pd-1","quantity":1}]}`
	c, rec := testutil.NewEchoContext(e, http.MethodPost, "/api/orders", strings.NewReader(body))
	asUser(c, user.ID)
	require.NoError(t, h.CreateOrder(c))

	var order models.Order
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &order))

	c, _ = testutil.NewEchoContext(e, http.MethodPut, "/api/orders/"+order.ID+"/status",
		strings.NewReader(`{"orderStatus":"shipping"}`))
	c.SetParamNames("id")
	c.SetParamValues(order.ID)
	require.NoError(t, h.ChangeOrderStatus(c))

	updated, err := repo.GetOrderByID(context.Background(), order.ID)
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusShipping, updated.Status)
}

func TestChangeOrderStatusInvalid(t *testing.T) {
	_, repo := testutil.NewTestDB(t)
	h := handlers.New(repo)
	e := echo.New()

	c, _ := testutil.NewEchoContext(e, http.MethodPut, "/api/orders/some-id/status",
		strings.NewReader(`{"orderStatus":"teleported"}`))
	c.SetParamNames("id")
	c.SetParamValues("some-id")
	err := h.ChangeOrderStatus(c)

	var appErr *apperr.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperr.KindBadRequest, appErr.Kind)
	assert.Equal(t, "Invalid order status!", appErr.Message)
}

func TestListOrdersFilteredByStatus(t *testing.T) {
	_, repo := testutil.NewTestDB(t)
	h := handlers.New(repo)
	e := echo.New()
	user := testutil.NewTestUser(t, repo, "jane@example.com", "Password1")

	var ids []string
	for i := 0; i < 2; i++ {
		body := `{"orderTotalPrice":10,"productDetails":[{"productDetailId":"pd-1","quantity":1}]}`
		c, rec := testutil.NewEchoContext(e, http.MethodPost, "/api/orders", strings.NewReader(body))
		asUser(c, user.ID)
		require.NoError(t, h.CreateOrder(c))
		var order models.Order
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &order))
		ids = append(ids, order.ID)
	}
	require.NoError(t, repo.UpdateOrderStatus(context.Background(), ids[0], models.OrderStatusComplete))

	c, rec := testutil.NewEchoContext(e, http.MethodGet, "/api/orders?orderStatus=complete", nil)
	require.NoError(t, h.ListOrders(c))

	var orders []models.Order
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &orders))
	require.Len(t, orders, 1)
	assert.Equal(t, ids[0], orders[0].ID)
}
