package main

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi"

	"github.com/shadow1264/freshbite-delivery/internal/domain"
	"github.com/shadow1264/freshbite-delivery/internal/service"
	"github.com/shadow1264/freshbite-delivery/internal/whatsapp"
)

var ErrInvalidID = errors.New("invalid ID format")

type MenuItemRequest struct {
	Name        string  `json:"name" validate:"required"`
	Category    string  `json:"category" validate:"required"`
	Price       float64 `json:"price" validate:"gte=0"`
	Description string  `json:"description" validate:"required"`
	Image       string  `json:"image"`
}

func (req MenuItemRequest) fields() service.MenuItemFields {
	return service.MenuItemFields{
		Name:        req.Name,
		Category:    domain.Category(req.Category),
		Price:       req.Price,
		Description: req.Description,
		Image:       req.Image,
	}
}

// listMenuHandler godoc
//
//	@Summary		List the catalog
//	@Description	Lists menu items, optionally filtered by category
//	@Tags			menu
//	@Produce		json
//	@Param			category	query		string	false	"Category filter"
//	@Success		200			{array}		domain.MenuItem
//	@Router			/menu [get]
func (app *application) listMenuHandler(w http.ResponseWriter, r *http.Request) {
	category := domain.Category(r.URL.Query().Get("category"))
	if category != "" && !category.Valid() {
		app.badRequestResponse(w, r, errors.New("unknown category"))
		return
	}

	items := app.service.Catalog(category)
	if err := app.jsonResponse(w, http.StatusOK, items); err != nil {
		app.internalServerError(w, r, err)
	}
}

// itemWhatsAppLinkHandler returns the deep link for ordering a single
// item over WhatsApp.
func (app *application) itemWhatsAppLinkHandler(w http.ResponseWriter, r *http.Request) {
	itemID := chi.URLParam(r, "item_id")
	if itemID == "" {
		app.badRequestResponse(w, r, ErrInvalidID)
		return
	}

	var found *domain.MenuItem
	for _, item := range app.service.Catalog("") {
		if item.ID == itemID {
			found = &item
			break
		}
	}
	if found == nil {
		app.notFoundError(w, r, domain.ErrUnknownItem)
		return
	}

	link := whatsapp.ItemLink(app.service.SiteConfig().WhatsAppNumber, found.Name)
	if err := app.jsonResponse(w, http.StatusOK, map[string]string{"link": link}); err != nil {
		app.internalServerError(w, r, err)
	}
}

// addMenuItemHandler godoc
//
//	@Summary		Add a menu item
//	@Tags			admin
//	@Accept			json
//	@Produce		json
//	@Param			request	body		MenuItemRequest	true	"Item fields"
//	@Success		201		{object}	domain.MenuItem
//	@Failure		400		{object}	map[string]string
//	@Failure		403		{object}	map[string]string
//	@Router			/admin/menu [post]
func (app *application) addMenuItemHandler(w http.ResponseWriter, r *http.Request) {
	var req MenuItemRequest
	if err := readJSON(w, r, &req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	item, err := app.service.AddMenuItem(req.fields())
	if err != nil {
		app.operationError(w, r, err)
		return
	}

	if err := app.jsonResponse(w, http.StatusCreated, item); err != nil {
		app.internalServerError(w, r, err)
	}
}

// editMenuItemHandler godoc
//
//	@Summary		Edit a menu item
//	@Tags			admin
//	@Accept			json
//	@Produce		json
//	@Param			item_id	path		string			true	"Item ID"
//	@Param			request	body		MenuItemRequest	true	"Item fields"
//	@Success		200		{object}	domain.MenuItem
//	@Failure		403		{object}	map[string]string
//	@Failure		404		{object}	map[string]string
//	@Router			/admin/menu/{item_id} [put]
func (app *application) editMenuItemHandler(w http.ResponseWriter, r *http.Request) {
	itemID := chi.URLParam(r, "item_id")
	if itemID == "" {
		app.badRequestResponse(w, r, ErrInvalidID)
		return
	}

	var req MenuItemRequest
	if err := readJSON(w, r, &req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	item, err := app.service.EditMenuItem(itemID, req.fields())
	if err != nil {
		app.operationError(w, r, err)
		return
	}

	if err := app.jsonResponse(w, http.StatusOK, item); err != nil {
		app.internalServerError(w, r, err)
	}
}

// deleteMenuItemHandler godoc
//
//	@Summary		Delete a menu item
//	@Tags			admin
//	@Produce		json
//	@Param			item_id	path	string	true	"Item ID"
//	@Success		204
//	@Failure		403	{object}	map[string]string
//	@Router			/admin/menu/{item_id} [delete]
func (app *application) deleteMenuItemHandler(w http.ResponseWriter, r *http.Request) {
	itemID := chi.URLParam(r, "item_id")
	if itemID == "" {
		app.badRequestResponse(w, r, ErrInvalidID)
		return
	}

	if err := app.service.DeleteMenuItem(itemID); err != nil {
		app.operationError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
