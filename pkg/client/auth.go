package client

import (
	"context"
	"encoding/json"
	"fmt"
)

type Credentials struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Login authenticates against the backend and returns the issued token.
// When the client session is a TokenSetter the token is stored there.
func (c *Client) Login(ctx context.Context, creds Credentials) (string, error) {
	body, err := c.call(ctx, Login, creds)
	if err != nil {
		return "", err
	}

	var result struct {
		Success bool   `json:"success"`
		Token   string `json:"token"`
		Message string `json:"message"`
		Data    struct {
			Token string `json:"token"`
		} `json:"data"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return "", &MalformedResponseError{Endpoint: Login.Name, Reason: fmt.Sprintf("invalid JSON: %v", err)}
	}
	if !result.Success {
		return "", &RejectedError{Endpoint: Login.Name, Message: result.Message}
	}

	token := result.Token
	if token == "" {
		token = result.Data.Token
	}
	if token == "" {
		return "", &MalformedResponseError{Endpoint: Login.Name, Reason: "missing token"}
	}

	if ts, ok := c.session.(TokenSetter); ok {
		if err := ts.Set(ctx, token); err != nil {
			return "", fmt.Errorf("failed to store token: %w", err)
		}
	}
	return token, nil
}

// Logout ends the backend session and clears the local token
func (c *Client) Logout(ctx context.Context) error {
	_, err := c.call(ctx, Logout, struct{}{})
	if cerr := c.session.Clear(ctx); cerr != nil && err == nil {
		err = cerr
	}
	return err
}

// Profile returns the authenticated user's profile document
func (c *Client) Profile(ctx context.Context) (map[string]any, error) {
	body, err := c.call(ctx, Profile, nil)
	if err != nil {
		return nil, err
	}
	return decodeOneMap(Profile.Name, body)
}

func decodeOneMap(name string, body []byte) (map[string]any, error) {
	doc, err := decodeOne[map[string]any](name, body)
	if err != nil {
		return nil, err
	}
	return *doc, nil
}
