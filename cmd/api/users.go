package main

import "net/http"

// listUsersHandler godoc
//
//	@Summary		All registered users with presence
//	@Tags			admin
//	@Produce		json
//	@Success		200	{array}		domain.User
//	@Failure		403	{object}	map[string]string
//	@Router			/admin/users [get]
func (app *application) listUsersHandler(w http.ResponseWriter, r *http.Request) {
	users, err := app.service.Users()
	if err != nil {
		app.operationError(w, r, err)
		return
	}

	if err := app.jsonResponse(w, http.StatusOK, users); err != nil {
		app.internalServerError(w, r, err)
	}
}

// listOnlineUsersHandler godoc
//
//	@Summary		Currently online users
//	@Tags			admin
//	@Produce		json
//	@Success		200	{array}		domain.User
//	@Failure		403	{object}	map[string]string
//	@Router			/admin/users/online [get]
func (app *application) listOnlineUsersHandler(w http.ResponseWriter, r *http.Request) {
	users, err := app.service.OnlineUsers()
	if err != nil {
		app.operationError(w, r, err)
		return
	}

	if err := app.jsonResponse(w, http.StatusOK, users); err != nil {
		app.internalServerError(w, r, err)
	}
}
