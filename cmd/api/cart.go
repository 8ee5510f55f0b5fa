package main

import (
	"net/http"

	"github.com/go-chi/chi"

	"github.com/shadow1264/freshbite-delivery/internal/whatsapp"
)

type AddToCartRequest struct {
	ItemID string `json:"item_id" validate:"required"`
}

type UpdateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// getCartHandler godoc
//
//	@Summary		Current cart with totals
//	@Tags			cart
//	@Produce		json
//	@Success		200	{object}	service.CartSummary
//	@Router			/cart [get]
func (app *application) getCartHandler(w http.ResponseWriter, r *http.Request) {
	if err := app.jsonResponse(w, http.StatusOK, app.service.Cart()); err != nil {
		app.internalServerError(w, r, err)
	}
}

// addToCartHandler godoc
//
//	@Summary		Add one unit of an item to the cart
//	@Tags			cart
//	@Accept			json
//	@Produce		json
//	@Param			request	body		AddToCartRequest	true	"Item to add"
//	@Success		200		{object}	service.CartSummary
//	@Failure		404		{object}	map[string]string
//	@Router			/cart/items [post]
func (app *application) addToCartHandler(w http.ResponseWriter, r *http.Request) {
	var req AddToCartRequest
	if err := readJSON(w, r, &req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := app.service.AddToCart(req.ItemID); err != nil {
		app.operationError(w, r, err)
		return
	}

	if err := app.jsonResponse(w, http.StatusOK, app.service.Cart()); err != nil {
		app.internalServerError(w, r, err)
	}
}

// updateQuantityHandler godoc
//
//	@Summary		Set a cart line's quantity
//	@Description	A quantity of zero or less removes the line
//	@Tags			cart
//	@Accept			json
//	@Produce		json
//	@Param			item_id	path		string					true	"Item ID"
//	@Param			request	body		UpdateQuantityRequest	true	"New quantity"
//	@Success		200		{object}	service.CartSummary
//	@Router			/cart/items/{item_id} [put]
func (app *application) updateQuantityHandler(w http.ResponseWriter, r *http.Request) {
	itemID := chi.URLParam(r, "item_id")
	if itemID == "" {
		app.badRequestResponse(w, r, ErrInvalidID)
		return
	}

	var req UpdateQuantityRequest
	if err := readJSON(w, r, &req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	app.service.UpdateQuantity(itemID, req.Quantity)

	if err := app.jsonResponse(w, http.StatusOK, app.service.Cart()); err != nil {
		app.internalServerError(w, r, err)
	}
}

// removeFromCartHandler godoc
//
//	@Summary		Remove a line from the cart
//	@Tags			cart
//	@Produce		json
//	@Param			item_id	path		string	true	"Item ID"
//	@Success		200		{object}	service.CartSummary
//	@Router			/cart/items/{item_id} [delete]
func (app *application) removeFromCartHandler(w http.ResponseWriter, r *http.Request) {
	itemID := chi.URLParam(r, "item_id")
	if itemID == "" {
		app.badRequestResponse(w, r, ErrInvalidID)
		return
	}

	app.service.RemoveFromCart(itemID)

	if err := app.jsonResponse(w, http.StatusOK, app.service.Cart()); err != nil {
		app.internalServerError(w, r, err)
	}
}

// cartWhatsAppLinkHandler returns the checkout deep link serializing the
// whole cart for WhatsApp.
func (app *application) cartWhatsAppLinkHandler(w http.ResponseWriter, r *http.Request) {
	summary := app.service.Cart()
	number := app.service.SiteConfig().WhatsAppNumber

	link := whatsapp.CheckoutLink(number, summary.Lines, summary.Subtotal)
	if err := app.jsonResponse(w, http.StatusOK, map[string]string{"link": link}); err != nil {
		app.internalServerError(w, r, err)
	}
}
