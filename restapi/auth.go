package restapi

import (
	"context"
	"net/http"
)

// UserSummary is the backend's view of an account.
type UserSummary struct {
	ID       int    `json:"id,omitempty"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// LoginResponse carries the issued credential and the account it belongs to.
// Hand Token to Session.Login; the decoded identity drives post-login routing.
type LoginResponse struct {
	Token string      `json:"token"`
	User  UserSummary `json:"user"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type registerRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// Login exchanges username and password for a bearer credential.
func (c *Client) Login(ctx context.Context, username, password string) (*LoginResponse, error) {
	var resp LoginResponse
	err := c.do(ctx, http.MethodPost, "/auth/login", nil, loginRequest{
		Username: username,
		Password: password,
	}, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// Register creates a new staff account with the given role.
func (c *Client) Register(ctx context.Context, username, password, role string) (*UserSummary, error) {
	var resp UserSummary
	err := c.do(ctx, http.MethodPost, "/auth/register", nil, registerRequest{
		Username: username,
		Password: password,
		Role:     role,
	}, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}
