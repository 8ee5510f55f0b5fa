package main

import (
	"net/http"

	"github.com/shadow1264/freshbite-delivery/internal/domain"
)

type NavigateRequest struct {
	Page string `json:"page" validate:"required"`
}

type SelectCategoryRequest struct {
	Category string `json:"category"`
}

type SwitchAdminTabRequest struct {
	Tab string `json:"tab" validate:"required"`
}

func (app *application) getSessionHandler(w http.ResponseWriter, r *http.Request) {
	if err := app.jsonResponse(w, http.StatusOK, app.service.Session()); err != nil {
		app.internalServerError(w, r, err)
	}
}

func (app *application) navigateHandler(w http.ResponseWriter, r *http.Request) {
	var req NavigateRequest
	if err := readJSON(w, r, &req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := app.service.Navigate(req.Page); err != nil {
		app.operationError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (app *application) selectCategoryHandler(w http.ResponseWriter, r *http.Request) {
	var req SelectCategoryRequest
	if err := readJSON(w, r, &req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := app.service.SelectCategory(domain.Category(req.Category)); err != nil {
		app.operationError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (app *application) switchAdminTabHandler(w http.ResponseWriter, r *http.Request) {
	var req SwitchAdminTabRequest
	if err := readJSON(w, r, &req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := app.service.SwitchAdminTab(req.Tab); err != nil {
		app.operationError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
