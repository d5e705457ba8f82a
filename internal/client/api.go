// Package client is the terminal client for the expense tracker: a thin
// API client plus a page controller that keeps a local mirror of the
// transaction list and its derived summary, rendered by three views
// (dashboard, form, list).
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/rishab4242/Expense-Tracker-App/internal/transaction"
)

// APIError is a non-2xx response from the server.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api: %d %s", e.Status, e.Message)
}

// IsNotFound reports whether err is a 404 from the server.
func IsNotFound(err error) bool {
	apiErr, ok := err.(*APIError)
	return ok && apiErr.Status == http.StatusNotFound
}

// API talks to the backend. Once a token is set it is attached to every
// request as a bearer credential.
type API struct {
	baseURL string
	token   string
	client  *http.Client
}

func NewAPI(baseURL string) *API {
	return &API{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{},
	}
}

func (a *API) SetToken(token string) {
	a.token = token
}

func (a *API) Token() string {
	return a.token
}

type credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"fullName,omitempty"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

// Signup registers a new account and stores the returned token.
func (a *API) Signup(ctx context.Context, email, password, fullName string) error {
	var resp tokenResponse
	err := a.do(ctx, http.MethodPost, "/api/auth/signup", credentials{Email: email, Password: password, FullName: fullName}, &resp)
	if err != nil {
		return err
	}
	a.token = resp.Token
	return nil
}

// Login exchanges credentials for a token and stores it.
func (a *API) Login(ctx context.Context, email, password string) error {
	var resp tokenResponse
	err := a.do(ctx, http.MethodPost, "/api/auth/login", credentials{Email: email, Password: password}, &resp)
	if err != nil {
		return err
	}
	a.token = resp.Token
	return nil
}

func (a *API) Create(ctx context.Context, req transaction.CreateRequest) (transaction.Transaction, error) {
	var t transaction.Transaction
	err := a.do(ctx, http.MethodPost, "/api/transactions", req, &t)
	return t, err
}

func (a *API) List(ctx context.Context) ([]transaction.Transaction, error) {
	var items []transaction.Transaction
	err := a.do(ctx, http.MethodGet, "/api/transactions", nil, &items)
	return items, err
}

func (a *API) Summary(ctx context.Context) (transaction.Summary, error) {
	var s transaction.Summary
	err := a.do(ctx, http.MethodGet, "/api/transactions/summary", nil, &s)
	return s, err
}

func (a *API) Update(ctx context.Context, id string, req transaction.UpdateRequest) (transaction.Transaction, error) {
	var t transaction.Transaction
	err := a.do(ctx, http.MethodPut, "/api/transactions/"+id, req, &t)
	return t, err
}

func (a *API) Delete(ctx context.Context, id string) error {
	return a.do(ctx, http.MethodDelete, "/api/transactions/"+id, nil, nil)
}

func (a *API) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader *bytes.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(encoded)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, a.baseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if a.token != "" {
		req.Header.Set("Authorization", "Bearer "+a.token)
	}

	resp, err := a.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var errBody struct {
			Error string `json:"error"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&errBody)
		if errBody.Error == "" {
			errBody.Error = http.StatusText(resp.StatusCode)
		}
		return &APIError{Status: resp.StatusCode, Message: errBody.Error}
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
