package backend

import (
	"context"
	"errors"
	"net/http"
)

// ErrLoginRejected means the backend did not accept the admin password.
var ErrLoginRejected = errors.New("admin login rejected")

type loginRequest struct {
	Password string `json:"password"`
}

// AdminLogin checks the admin password against the backend. It returns
// no session artifact: the gate is cosmetic and later requests carry no
// credentials.
func (c *Client) AdminLogin(ctx context.Context, password string) error {
	res, err := c.sendJSON(ctx, http.MethodPost, "/api/admin/login", loginRequest{Password: password})
	if err != nil {
		return err
	}
	defer drain(res)

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return ErrLoginRejected
	}
	return nil
}
