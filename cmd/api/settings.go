package main

import (
	"net/http"

	"github.com/shadow1264/freshbite-delivery/internal/domain"
)

type SaveSettingsRequest struct {
	Name           string  `json:"name" validate:"required"`
	Logo           string  `json:"logo"`
	Tagline        string  `json:"tagline"`
	DeliveryFee    float64 `json:"delivery_fee" validate:"gte=0"`
	WhatsAppNumber string  `json:"whatsapp_number" validate:"required"`
}

// getSettingsHandler godoc
//
//	@Summary		Current site configuration
//	@Tags			settings
//	@Produce		json
//	@Success		200	{object}	domain.SiteConfig
//	@Router			/settings [get]
func (app *application) getSettingsHandler(w http.ResponseWriter, r *http.Request) {
	if err := app.jsonResponse(w, http.StatusOK, app.service.SiteConfig()); err != nil {
		app.internalServerError(w, r, err)
	}
}

// saveSettingsHandler godoc
//
//	@Summary		Overwrite site configuration
//	@Description	The new delivery fee applies to future orders only
//	@Tags			admin
//	@Accept			json
//	@Produce		json
//	@Param			request	body		SaveSettingsRequest	true	"Site configuration"
//	@Success		200		{object}	domain.SiteConfig
//	@Failure		400		{object}	map[string]string
//	@Failure		403		{object}	map[string]string
//	@Router			/admin/settings [put]
func (app *application) saveSettingsHandler(w http.ResponseWriter, r *http.Request) {
	var req SaveSettingsRequest
	if err := readJSON(w, r, &req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	cfg := domain.SiteConfig{
		Name:           req.Name,
		Logo:           req.Logo,
		Tagline:        req.Tagline,
		DeliveryFee:    req.DeliveryFee,
		WhatsAppNumber: req.WhatsAppNumber,
	}

	if err := app.service.SaveSiteConfig(cfg); err != nil {
		app.operationError(w, r, err)
		return
	}

	if err := app.jsonResponse(w, http.StatusOK, app.service.SiteConfig()); err != nil {
		app.internalServerError(w, r, err)
	}
}
