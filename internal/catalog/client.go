package catalog

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
)

var (
	ErrClientNotFound    = errors.New("catalog product not found")
	ErrClientBadStatus   = errors.New("catalog bad status")
	ErrClientUnavailable = errors.New("catalog unavailable")
)

// Client talks to a catalog served by NewHandler. Token is sent as a bearer
// token and is only needed for mutations.
type Client struct {
	BaseURL string
	Token   string
	Client  *http.Client
}

func NewClient(baseURL, token string) *Client {
	if u, err := url.Parse(baseURL); err == nil && u.Scheme != "" && u.Host != "" {
		baseURL = strings.TrimRight(baseURL, "/")
	}
	return &Client{
		BaseURL: baseURL,
		Token:   token,
		Client:  &http.Client{Timeout: 3 * time.Second},
	}
}

func (c *Client) Add(ctx context.Context, name string, price float64) (Product, error) {
	var p Product
	err := c.do(ctx, http.MethodPost, "/products", createReq{Name: name, Price: price}, http.StatusCreated, &p)
	return p, err
}

func (c *Client) List(ctx context.Context) ([]Product, error) {
	var out []Product
	err := c.do(ctx, http.MethodGet, "/products", nil, http.StatusOK, &out)
	return out, err
}

func (c *Client) Get(ctx context.Context, id uint64) (Product, error) {
	var p Product
	err := c.do(ctx, http.MethodGet, "/products/"+strconv.FormatUint(id, 10), nil, http.StatusOK, &p)
	return p, err
}

func (c *Client) FindByName(ctx context.Context, name string) (Product, error) {
	var p Product
	err := c.do(ctx, http.MethodGet, "/products/search?name="+url.QueryEscape(name), nil, http.StatusOK, &p)
	return p, err
}

func (c *Client) Deactivate(ctx context.Context, id uint64) (Product, error) {
	var p Product
	err := c.do(ctx, http.MethodPost, "/products/"+strconv.FormatUint(id, 10)+"/deactivate", nil, http.StatusOK, &p)
	return p, err
}

// Remove reports false, without error, when the product does not exist.
func (c *Client) Remove(ctx context.Context, id uint64) (bool, error) {
	err := c.do(ctx, http.MethodDelete, "/products/"+strconv.FormatUint(id, 10), nil, http.StatusNoContent, nil)
	if errors.Is(err, ErrClientNotFound) {
		return false, nil
	}
	return err == nil, err
}

func (c *Client) do(ctx context.Context, method, path string, body any, want int, out any) error {
	var r io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return err
		}
		r = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, r)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}

	resp, err := c.Client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrClientUnavailable, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case want:
	case http.StatusNotFound:
		return ErrClientNotFound
	default:
		_, _ = io.Copy(io.Discard, resp.Body)
		return fmt.Errorf("%w: status=%d", ErrClientBadStatus, resp.StatusCode)
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
