package main

import (
	"net/http"
	"strconv"

	"github.com/shadow1264/freshbite-delivery/internal/domain"
)

type BroadcastRequest struct {
	Title    string `json:"title" validate:"required"`
	Message  string `json:"message" validate:"required"`
	Audience string `json:"audience" validate:"required,oneof=all online"`
}

// broadcastHandler godoc
//
//	@Summary		Broadcast a notification
//	@Tags			admin
//	@Accept			json
//	@Produce		json
//	@Param			request	body		BroadcastRequest	true	"Notification"
//	@Success		201		{object}	domain.Notification
//	@Failure		400		{object}	map[string]string
//	@Failure		403		{object}	map[string]string
//	@Router			/admin/notifications [post]
func (app *application) broadcastHandler(w http.ResponseWriter, r *http.Request) {
	var req BroadcastRequest
	if err := readJSON(w, r, &req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	notification, err := app.service.Broadcast(req.Title, req.Message, domain.Audience(req.Audience))
	if err != nil {
		app.operationError(w, r, err)
		return
	}

	if err := app.jsonResponse(w, http.StatusCreated, notification); err != nil {
		app.internalServerError(w, r, err)
	}
}

// listNotificationsHandler godoc
//
//	@Summary		Recent broadcasts, newest first
//	@Tags			notifications
//	@Produce		json
//	@Param			limit	query	int	false	"Max entries to return"
//	@Success		200	{array}	domain.Notification
//	@Router			/notifications [get]
func (app *application) listNotificationsHandler(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			app.badRequestResponse(w, r, err)
			return
		}
		limit = parsed
	}

	if err := app.jsonResponse(w, http.StatusOK, app.service.Notifications(limit)); err != nil {
		app.internalServerError(w, r, err)
	}
}
