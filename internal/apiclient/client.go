// Package apiclient talks JSON to the member API.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/kravdojo/gym-api/internal/domain"
)

// Error is a non-2xx answer from the API.
type Error struct {
	StatusCode int
	Message    string
}

func (e *Error) Error() string {
	return fmt.Sprintf("api error (%d): %s", e.StatusCode, e.Message)
}

// TokenSource returns the bearer token to send, or "" for none.
type TokenSource func() string

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

func WithTokenSource(ts TokenSource) Option {
	return func(c *Client) { c.token = ts }
}

type Client struct {
	httpClient *http.Client
	baseURL    string
	token      TokenSource
}

// New returns a client for the API rooted at baseURL, e.g.
// http://localhost:8080/api/v1.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: 20 * time.Second},
		baseURL:    strings.TrimRight(baseURL, "/"),
		token:      func() string { return "" },
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type AuthResult struct {
	User  domain.User `json:"user"`
	Token string      `json:"token"`
}

// SignUpRequest is the registration payload. The API expects PascalCase keys.
type SignUpRequest struct {
	Nome      string `json:"Nome"`
	Sobrenome string `json:"Sobrenome"`
	Email     string `json:"Email"`
	Password  string `json:"Password"`
	Faixa     string `json:"Faixa"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (c *Client) Login(ctx context.Context, email, password string) (AuthResult, error) {
	var out AuthResult
	err := c.request(ctx, http.MethodPost, "/login", loginRequest{Email: email, Password: password}, &out)
	return out, err
}

func (c *Client) SignUp(ctx context.Context, req SignUpRequest) (AuthResult, error) {
	var out AuthResult
	err := c.request(ctx, http.MethodPost, "/Users", req, &out)
	return out, err
}

func (c *Client) ListUsers(ctx context.Context) ([]domain.User, error) {
	out := []domain.User{}
	if err := c.request(ctx, http.MethodGet, "/Users", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateUser registers user through the sign-up endpoint and returns the
// stored record. The token issued alongside it is discarded.
func (c *Client) CreateUser(ctx context.Context, user domain.User) (domain.User, error) {
	res, err := c.SignUp(ctx, SignUpRequest{
		Nome:      user.Name,
		Sobrenome: user.Surname,
		Email:     user.Email,
		Password:  user.Password,
		Faixa:     user.Belt,
	})
	if err != nil {
		return domain.User{}, err
	}
	return res.User, nil
}

func (c *Client) UpdateUser(ctx context.Context, id string, update domain.UserUpdate) (domain.User, error) {
	var out domain.User
	err := c.request(ctx, http.MethodPut, "/Users/"+url.PathEscape(id), update, &out)
	return out, err
}

func (c *Client) DeleteUser(ctx context.Context, id string) error {
	return c.request(ctx, http.MethodDelete, "/Users/"+url.PathEscape(id), nil, nil)
}

// ListProducts fetches the catalog, filtered server-side.
func (c *Client) ListProducts(ctx context.Context, q string, f domain.ProductFilter) ([]domain.Product, error) {
	params := url.Values{}
	if q != "" {
		params.Set("q", q)
	}
	if f.Category != "" {
		params.Set("category", f.Category)
	}
	if f.Type != "" {
		params.Set("type", f.Type)
	}
	if f.PriceRange != nil {
		params.Set("min_price", strconv.FormatFloat(f.PriceRange.Min, 'f', -1, 64))
		params.Set("max_price", strconv.FormatFloat(f.PriceRange.Max, 'f', -1, 64))
	}
	if f.InStock != nil {
		params.Set("in_stock", strconv.FormatBool(*f.InStock))
	}

	path := "/products"
	if len(params) > 0 {
		path += "?" + params.Encode()
	}

	out := []domain.Product{}
	if err := c.request(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) request(ctx context.Context, method, path string, in any, out any) error {
	var body io.Reader
	if in != nil {
		buf := &bytes.Buffer{}
		if err := json.NewEncoder(buf).Encode(in); err != nil {
			return fmt.Errorf("json.Encode -> %w", err)
		}
		body = buf
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("http.NewRequestWithContext -> %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("c.httpClient.Do -> %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 400 {
		payload, _ := io.ReadAll(resp.Body)
		return &Error{StatusCode: resp.StatusCode, Message: errorMessage(payload)}
	}
	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("json.Decode -> %w", err)
	}
	return nil
}

// errorMessage pulls "error" out of a JSON error body, falling back to the
// raw text.
func errorMessage(payload []byte) string {
	var body struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(payload, &body); err == nil && body.Error != "" {
		return body.Error
	}
	return strings.TrimSpace(string(payload))
}
