package moviesdk

// TokenResponse is returned by POST /login.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// User is returned by GET /movies/me.
type User struct {
	Username string `json:"username"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Disabled bool   `json:"disabled"`
}

type Movie struct {
	ID       int      `json:"id"`
	Title    string   `json:"title"`
	Overview string   `json:"overview"`
	Year     int      `json:"year"`
	Rating   *float64 `json:"rating"`
	Category string   `json:"category"`
}

// DeleteResponse is returned by DELETE /movies/{id}.
type DeleteResponse struct {
	Message string `json:"message" example:"The movie with the id '1', has been successfully deleted"`
}

// ErrorResponse is the envelope of every error: detail is a message, an
// ErrorDetail, or a list of ValidationIssue.
type ErrorResponse struct {
	Detail any `json:"detail" swaggertype:"string" example:"Could not validate credentials"`
}

// ErrorDetail is the object form of detail used by the catalog endpoints.
type ErrorDetail struct {
	Error string `json:"error" example:"Movie not found"`
}

// NotFoundResponse documents {"detail": {"error": "..."}}.
type NotFoundResponse struct {
	Detail ErrorDetail `json:"detail"`
}

// ValidationIssue is one entry of a 422 response.
type ValidationIssue struct {
	Location []string `json:"loc"`
	Message  string   `json:"msg"`
	Type     string   `json:"type"`
}

// ValidationErrorResponse documents a 422 body.
type ValidationErrorResponse struct {
	Detail []ValidationIssue `json:"detail"`
}

// HealthResponse is returned by /livez and /readyz. Checks is only set by
// /readyz.
type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime,omitempty"`
	Version string        `json:"version,omitempty"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}

type HealthChecks struct {
	Store  string `json:"store"`
	Signer string `json:"signer"`
}
