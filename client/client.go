// Package client talks to the MemEmage HTTP API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"mememage-web/models"
)

// ErrTransport wraps every failure that happened before a usable envelope
// was received: connection errors, timeouts and undecodable bodies.
var ErrTransport = errors.New("transport error")

// APIError is an API-reported failure.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("api error (status %d)", e.Status)
	}
	return fmt.Sprintf("api error (status %d): %s", e.Status, e.Message)
}

type Client struct {
	baseURL string
	http    *http.Client
}

func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

func (c *Client) BaseURL() string {
	return c.baseURL
}

func (c *Client) Signup(ctx context.Context, req models.SignupRequest) (*models.AuthResponse, error) {
	var out models.AuthResponse
	if err := c.do(ctx, http.MethodPost, "/auth/signup", "", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error) {
	var out models.AuthResponse
	if err := c.do(ctx, http.MethodPost, "/auth/login", "", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListMemes returns the most recent public memes. An offset of zero is not
// sent.
func (c *Client) ListMemes(ctx context.Context, limit, offset int) ([]models.Meme, error) {
	q := url.Values{}
	q.Set("limit", strconv.Itoa(limit))
	if offset > 0 {
		q.Set("offset", strconv.Itoa(offset))
	}
	var out []models.Meme
	if err := c.do(ctx, http.MethodGet, "/memes?"+q.Encode(), "", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) MyMemes(ctx context.Context, token string) ([]models.Meme, error) {
	var out []models.Meme
	if err := c.do(ctx, http.MethodGet, "/memes/user/my-memes", token, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateMeme succeeds whenever the API reports success. The created meme is
// returned only when the reply carries one that decodes; it may be nil.
func (c *Client) CreateMeme(ctx context.Context, token string, req models.CreateMemeRequest) (*models.Meme, error) {
	env, err := c.send(ctx, http.MethodPost, "/memes", token, req)
	if err != nil {
		return nil, err
	}
	if !env.HasData() {
		return nil, nil
	}
	var out models.Meme
	if err := json.Unmarshal(env.Data, &out); err != nil {
		return nil, nil
	}
	return &out, nil
}

func (c *Client) GetMeme(ctx context.Context, id string) (*models.Meme, error) {
	var out models.Meme
	if err := c.do(ctx, http.MethodGet, "/memes/"+url.PathEscape(id), "", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) LikeMeme(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodPost, "/memes/"+url.PathEscape(id)+"/like", "", nil, nil)
}

// Health returns the message of the API's health endpoint.
func (c *Client) Health(ctx context.Context) (string, error) {
	var out string
	if err := c.do(ctx, http.MethodGet, "/health", "", nil, &out); err != nil {
		return "", err
	}
	return out, nil
}

// ResolveURL makes a server-relative path such as /uploads/memes/x.jpg
// absolute against the API's origin. Absolute and data URLs pass through.
func (c *Client) ResolveURL(ref string) string {
	if ref == "" || !strings.HasPrefix(ref, "/") || strings.HasPrefix(ref, "//") {
		return ref
	}
	base, err := url.Parse(c.baseURL)
	if err != nil || base.Host == "" {
		return ref
	}
	return base.Scheme + "://" + base.Host + ref
}

// do sends one request and decodes the envelope's data into out. out may be
// nil when the data is unused. A success envelope without data is only an
// error when out is non-nil.
func (c *Client) do(ctx context.Context, method, path, token string, body, out any) error {
	env, err := c.send(ctx, method, path, token, body)
	if err != nil {
		return err
	}

	if out == nil {
		return nil
	}
	if !env.HasData() {
		return &APIError{Status: env.status, Message: env.Error}
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("%w: decode %s %s data: %v", ErrTransport, method, path, err)
	}
	return nil
}

type envelope struct {
	models.Envelope
	status int
}

// send performs the request and returns the envelope of a successful reply.
func (c *Client) send(ctx context.Context, method, path, token string, body any) (*envelope, error) {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTransport, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %s %s: %v", ErrTransport, method, path, err)
	}
	defer resp.Body.Close()

	env := &envelope{status: resp.StatusCode}
	if err := json.NewDecoder(resp.Body).Decode(&env.Envelope); err != nil {
		return nil, fmt.Errorf("%w: decode %s %s (status %d): %v", ErrTransport, method, path, resp.StatusCode, err)
	}

	if !env.Success || resp.StatusCode >= http.StatusBadRequest {
		return nil, &APIError{Status: resp.StatusCode, Message: env.Error}
	}
	return env, nil
}
