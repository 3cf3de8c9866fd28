package domain

// TokenTypeBearer is the token_type returned by the login endpoint.
const TokenTypeBearer = "bearer"

// AccessToken is the login response body.
type AccessToken struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}
