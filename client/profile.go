package client

import "context"

// UserData is the canonical user profile shape used everywhere inside
// the process. Wire responses are normalized into it at the boundary.
type UserData struct {
	ID        string   `json:"id"`
	Email     string   `json:"email"`
	FirstName string   `json:"firstName"`
	LastName  string   `json:"lastName"`
	IsPremium bool     `json:"isPremium"`
	Roles     []string `json:"roles,omitempty"`
}

// ProfileResponse is the normalized result of the profile endpoint.
// Token and ExpiresIn are only set when the backend rotated the token.
type ProfileResponse struct {
	User      UserData
	Token     string
	ExpiresIn int64
}

// wireUser accepts both the current and the legacy identifier field.
type wireUser struct {
	ID        string   `json:"id"`
	LegacyID  string   `json:"_id"`
	Email     string   `json:"email"`
	FirstName string   `json:"firstName"`
	LastName  string   `json:"lastName"`
	IsPremium bool     `json:"isPremium"`
	Roles     []string `json:"roles"`
}

// wireProfile tolerates both shapes the backend has used: user fields
// nested under "user", or inlined at the top level.
type wireProfile struct {
	wireUser
	User      *wireUser `json:"user"`
	Token     string    `json:"token"`
	ExpiresIn int64     `json:"expiresIn"`
}

func normalizeUser(w wireUser) UserData {
	id := w.ID
	if id == "" {
		id = w.LegacyID
	}
	return UserData{
		ID:        id,
		Email:     w.Email,
		FirstName: w.FirstName,
		LastName:  w.LastName,
		IsPremium: w.IsPremium,
		Roles:     w.Roles,
	}
}

func normalizeProfile(w wireProfile) *ProfileResponse {
	u := w.wireUser
	if w.User != nil {
		u = *w.User
	}
	return &ProfileResponse{
		User:      normalizeUser(u),
		Token:     w.Token,
		ExpiresIn: w.ExpiresIn,
	}
}

// Profile calls the backend profile endpoint. The error, if any, is
// already classified: errors.Is(err, ErrAuthInvalid) for a 401,
// ErrForbidden for a 403, ErrTransient for connectivity problems.
func (c *Client) Profile(ctx context.Context) (*ProfileResponse, error) {
	var w wireProfile
	if err := c.Get(ctx, "/api/v1/auth/profile", &w); err != nil {
		return nil, err
	}
	return normalizeProfile(w), nil
}

// LoginRequest is the JSON body for the login exchange.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login exchanges credentials for a token. The caller is expected to
// hand the result to the session manager.
func (c *Client) Login(ctx context.Context, email, password string) (*ProfileResponse, error) {
	var w wireProfile
	req := LoginRequest{Email: email, Password: password}
	if err := c.Post(ctx, "/api/v1/auth/login", req, &w); err != nil {
		return nil, err
	}
	return normalizeProfile(w), nil
}
