package rentms

import (
	"context"
	"net/http"

	"backoffice-service/internal/model"
)

// LoginRequest is the credential payload for POST /auth/login.
type LoginRequest struct {
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

// LoginResult is the data block of a successful login.
type LoginResult struct {
	User  model.User `json:"user"`
	Token string     `json:"token"`
}

// Login authenticates the operator against the upstream API.
func (c *Client) Login(ctx context.Context, phone, password string) (*LoginResult, error) {
	var result LoginResult
	_, err := c.do(ctx, http.MethodPost, "/auth/login", nil, LoginRequest{Phone: phone, Password: password}, &result)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// Profile fetches the authenticated operator's profile.
func (c *Client) Profile(ctx context.Context) (*model.User, error) {
	var user model.User
	_, err := c.do(ctx, http.MethodGet, "/auth/profile", nil, nil, &user)
	if err != nil {
		return nil, err
	}
	return &user, nil
}
