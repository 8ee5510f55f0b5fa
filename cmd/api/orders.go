package main

import (
	"net/http"

	"github.com/go-chi/chi"

	"github.com/shadow1264/freshbite-delivery/internal/domain"
)

type PlaceOrderRequest struct {
	Address       string `json:"address" validate:"required"`
	PaymentMethod string `json:"payment_method" validate:"required,oneof=cash_on_delivery online"`
}

type SetOrderStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending processing delivered"`
}

// placeOrderHandler godoc
//
//	@Summary		Check out the current cart
//	@Tags			orders
//	@Accept			json
//	@Produce		json
//	@Param			request	body		PlaceOrderRequest	true	"Delivery details"
//	@Success		201		{object}	domain.Order
//	@Failure		401		{object}	map[string]string
//	@Failure		422		{object}	map[string]string
//	@Router			/orders [post]
func (app *application) placeOrderHandler(w http.ResponseWriter, r *http.Request) {
	var req PlaceOrderRequest
	if err := readJSON(w, r, &req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	order, err := app.service.PlaceOrder(req.Address, domain.PaymentMethod(req.PaymentMethod))
	if err != nil {
		app.operationError(w, r, err)
		return
	}

	if err := app.jsonResponse(w, http.StatusCreated, order); err != nil {
		app.internalServerError(w, r, err)
	}
}

// listOrdersHandler godoc
//
//	@Summary		Order history, newest first
//	@Tags			orders
//	@Produce		json
//	@Success		200	{array}	domain.Order
//	@Router			/orders [get]
func (app *application) listOrdersHandler(w http.ResponseWriter, r *http.Request) {
	if err := app.jsonResponse(w, http.StatusOK, app.service.Orders()); err != nil {
		app.internalServerError(w, r, err)
	}
}

// setOrderStatusHandler godoc
//
//	@Summary		Overwrite an order's status
//	@Tags			admin
//	@Accept			json
//	@Produce		json
//	@Param			order_id	path		string					true	"Order ID"
//	@Param			request		body		SetOrderStatusRequest	true	"New status"
//	@Success		204
//	@Failure		403	{object}	map[string]string
//	@Failure		404	{object}	map[string]string
//	@Router			/admin/orders/{order_id}/status [patch]
func (app *application) setOrderStatusHandler(w http.ResponseWriter, r *http.Request) {
	orderID := chi.URLParam(r, "order_id")
	if orderID == "" {
		app.badRequestResponse(w, r, ErrInvalidID)
		return
	}

	var req SetOrderStatusRequest
	if err := readJSON(w, r, &req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := app.service.SetOrderStatus(orderID, domain.OrderStatus(req.Status)); err != nil {
		app.operationError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// orderAuditHandler godoc
//
//	@Summary		Status change history for an order
//	@Tags			admin
//	@Produce		json
//	@Param			order_id	path	string	true	"Order ID"
//	@Success		200	{array}		domain.OrderStatusAudit
//	@Failure		403	{object}	map[string]string
//	@Failure		404	{object}	map[string]string
//	@Router			/admin/orders/{order_id}/audit [get]
func (app *application) orderAuditHandler(w http.ResponseWriter, r *http.Request) {
	orderID := chi.URLParam(r, "order_id")
	if orderID == "" {
		app.badRequestResponse(w, r, ErrInvalidID)
		return
	}

	audits, err := app.service.OrderAudit(orderID)
	if err != nil {
		app.operationError(w, r, err)
		return
	}

	if err := app.jsonResponse(w, http.StatusOK, audits); err != nil {
		app.internalServerError(w, r, err)
	}
}
