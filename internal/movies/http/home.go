package http

import (
	"net/http"

	"github.com/aussiebroadwan/movies/pkg/httpx"
)

// HomeHandler godoc
//
//	@Summary	Ping
//	@Tags		Home
//	@Produce	html
//	@Success	200	{string}	string	"<b>Pong🥎!</b>"
//	@Router		/ [get].
func HomeHandler(w http.ResponseWriter, r *http.Request) {
	httpx.WriteHTML(w, http.StatusOK, "<b>Pong🥎!</b>")
}
