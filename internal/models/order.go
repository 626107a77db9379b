// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

package models

import "time"

// OrderStatus enumerates the allowed order states.
type OrderStatus string

const (
	OrderStatusNew        OrderStatus = "new"
	OrderStatusInProgress OrderStatus = "in progress"
	OrderStatusShipping   OrderStatus = "shipping"
	OrderStatusComplete   OrderStatus = "complete"
	OrderStatusCancel     OrderStatus = "cancel"
	OrderStatusReturn     OrderStatus = "return"
)

// ValidOrderStatus reports whether s is one of the allowed order states.
func ValidOrderStatus(s OrderStatus) bool {
	switch s {
	case OrderStatusNew, OrderStatusInProgress, OrderStatusShipping,
		OrderStatusComplete, OrderStatusCancel, OrderStatusReturn:
		return true
	}
	return false
}

// MaxOrderNoteLength caps the free-text note on an order.
const MaxOrderNoteLength = 500

// OrderItem is one product line on an order.
type OrderItem struct {
	ProductDetailID string `json:"productDetailId"`
	Quantity        int    `json:"quantity"`
}

// OrderAddress is the shipping address embedded in an order.
type OrderAddress struct {
	City            string `json:"city"`
	District        string `json:"district"`
	Ward            string `json:"ward"`
	StreetAndNumber string `json:"streetAndNumber"`
}

// Order is a customer order. Items are persisted as a JSON document in a
// single column; the repository handles the row mapping. Deletion is soft.
type Order struct { //nolint:govet // fieldalignment: readability over optimization
	ID         string       `json:"id"`
	UserID     string       `json:"userId"`
	OrderDate  time.Time    `json:"orderDate"`
	TotalPrice float64      `json:"orderTotalPrice"`
	Note       string       `json:"note"`
	Items      []OrderItem  `json:"productDetails"`
	Address    OrderAddress `json:"address"`
	Status     OrderStatus  `json:"orderStatus"`
	IsDeleted  bool         `json:"isDeleted"`
}
