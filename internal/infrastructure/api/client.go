package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"

	"github.com/sellerdash/client/internal/domain/seller"
)

// maxResponseSize is the maximum allowed response size from the backend (10MB)
const maxResponseSize = 10 * 1024 * 1024

// Backend endpoint paths. The mixed casing and the Analitics spelling are
// the backend's; changing them here breaks the wire contract.
const (
	pathListProducts      = "/api/Seller/list_Product"
	pathListOrders        = "/api/Seller/Order_list"
	pathListInventory     = "/api/Seller/list_inventory_product"
	pathSellerProfile     = "/api/Seller/Seller_Profile"
	pathUpdateProfile     = "/api/Seller/update_profileSeller"
	pathRevenue           = "/api/Seller/Analitics"
	pathAddProduct        = "/api/Seller/add_Product"
	pathRegister          = "/api/seller/register"
	pathOrderStatusFormat = "/api/orders/%s/status"
)

// TokenSource supplies the current session bearer token. An empty string
// means no session.
type TokenSource interface {
	Token() string
}

// Client talks to the seller backend REST API. It owns no state beyond
// the HTTP client; authentication comes from the TokenSource on every
// call, so a token change takes effect on the next request.
type Client struct {
	config     *Config
	tokens     TokenSource
	httpClient *http.Client
}

// NewClient creates a backend API client with the given configuration.
func NewClient(config *Config, tokens TokenSource) (*Client, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &Client{
		config:     config,
		tokens:     tokens,
		httpClient: &http.Client{Timeout: config.Timeout},
	}, nil
}

// ---------------------------------------------------------------------------
// Read Operations
// ---------------------------------------------------------------------------

// ListProducts fetches the full product list.
func (c *Client) ListProducts(ctx context.Context) ([]seller.Product, error) {
	// The backend exposes the product list behind a POST with an empty body.
	body, err := c.doJSON(ctx, http.MethodPost, pathListProducts, struct{}{}, true)
	if err != nil {
		return nil, err
	}
	var resp productListResponse
	if err := decodeEnvelope(body, &resp, &resp.Envelope); err != nil {
		return nil, err
	}
	return resp.Products, nil
}

// ListOrders fetches the full order list.
func (c *Client) ListOrders(ctx context.Context) ([]seller.Order, error) {
	body, err := c.doJSON(ctx, http.MethodGet, pathListOrders, nil, true)
	if err != nil {
		return nil, err
	}
	var resp orderListResponse
	if err := decodeEnvelope(body, &resp, &resp.Envelope); err != nil {
		return nil, err
	}
	return resp.Orders, nil
}

// ListInventory fetches the inventory view. This is a distinct endpoint
// from ListProducts and the two are never reconciled client-side.
func (c *Client) ListInventory(ctx context.Context) ([]seller.InventoryItem, error) {
	body, err := c.doJSON(ctx, http.MethodGet, pathListInventory, nil, true)
	if err != nil {
		return nil, err
	}
	var resp inventoryListResponse
	if err := decodeEnvelope(body, &resp, &resp.Envelope); err != nil {
		return nil, err
	}
	return resp.ProductInventory, nil
}

// GetProfile fetches the authenticated seller's account record.
func (c *Client) GetProfile(ctx context.Context) (*seller.Profile, error) {
	body, err := c.doJSON(ctx, http.MethodGet, pathSellerProfile, nil, true)
	if err != nil {
		return nil, err
	}
	var resp profileResponse
	if err := decodeEnvelope(body, &resp, &resp.Envelope); err != nil {
		return nil, err
	}
	if resp.Profile == nil {
		return nil, fmt.Errorf("%w: missing profile payload", seller.ErrInvalidResponse)
	}
	return resp.Profile, nil
}

// GetRevenue fetches the backend-computed revenue snapshot.
func (c *Client) GetRevenue(ctx context.Context) (*seller.RevenueSummary, error) {
	body, err := c.doJSON(ctx, http.MethodGet, pathRevenue, nil, true)
	if err != nil {
		return nil, err
	}
	var resp revenueResponse
	if err := decodeEnvelope(body, &resp, &resp.Envelope); err != nil {
		return nil, err
	}
	if resp.Revenue == nil {
		return nil, fmt.Errorf("%w: missing revenue payload", seller.ErrInvalidResponse)
	}
	return resp.Revenue, nil
}

// ---------------------------------------------------------------------------
// Write Operations
// ---------------------------------------------------------------------------

// UpdateProfile sends the full edited profile record. The response payload
// is intentionally discarded; callers refetch when they need the
// authoritative post-write state.
func (c *Client) UpdateProfile(ctx context.Context, update seller.ProfileUpdate) error {
	body, err := c.doJSON(ctx, http.MethodPut, pathUpdateProfile, update, true)
	if err != nil {
		return err
	}
	return checkWriteEnvelope(body)
}

// UpdateOrderStatus submits a status change for one order. The cached
// order list goes stale until the caller refetches it.
func (c *Client) UpdateOrderStatus(ctx context.Context, orderID string, status seller.OrderStatus) error {
	if orderID == "" {
		return fmt.Errorf("%w: empty order id", seller.ErrValidation)
	}
	if !status.Valid() {
		return fmt.Errorf("%w: unknown order status %q", seller.ErrValidation, status)
	}
	path := fmt.Sprintf(pathOrderStatusFormat, url.PathEscape(orderID))
	body, err := c.doJSON(ctx, http.MethodPut, path, orderStatusUpdateRequest{Status: status}, true)
	if err != nil {
		return err
	}
	return checkWriteEnvelope(body)
}

// AddProduct creates a catalog entry via multipart upload with up to 4
// images. Fashion products carry a per-size quantity list; every other
// category a flat quantity.
func (c *Client) AddProduct(ctx context.Context, input seller.NewProduct) error {
	if len(input.Images) > seller.MaxProductImages {
		return fmt.Errorf("%w: at most %d images", seller.ErrValidation, seller.MaxProductImages)
	}
	contentType, body, err := encodeProductForm(input)
	if err != nil {
		return err
	}
	respBody, err := c.doMultipart(ctx, pathAddProduct, contentType, body, true)
	if err != nil {
		return err
	}
	return checkWriteEnvelope(respBody)
}

// Register submits a new seller signup. Registration is unauthenticated;
// client-side field validation must already have passed.
func (c *Client) Register(ctx context.Context, form seller.Registration) error {
	contentType, body, err := encodeRegistrationForm(form)
	if err != nil {
		return err
	}
	respBody, err := c.doMultipart(ctx, pathRegister, contentType, body, false)
	if err != nil {
		return err
	}
	return checkWriteEnvelope(respBody)
}

// ---------------------------------------------------------------------------
// Internal Helpers
// ---------------------------------------------------------------------------

// doJSON performs a JSON request against the backend. A nil body sends no
// payload. authenticated requests fail fast with ErrAuthMissing when the
// token source holds no session.
func (c *Client) doJSON(ctx context.Context, method, path string, body any, authenticated bool) ([]byte, error) {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("api: failed to encode request: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := c.newRequest(ctx, method, path, reader, authenticated)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return c.send(req)
}

// doMultipart performs a multipart form upload.
func (c *Client) doMultipart(ctx context.Context, path, contentType string, body io.Reader, authenticated bool) ([]byte, error) {
	req, err := c.newRequest(ctx, http.MethodPost, path, body, authenticated)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", contentType)
	return c.send(req)
}

func (c *Client) newRequest(ctx context.Context, method, path string, body io.Reader, authenticated bool) (*http.Request, error) {
	token := c.tokens.Token()
	if authenticated && token == "" {
		return nil, seller.ErrAuthMissing
	}

	u := strings.TrimSuffix(c.config.BaseURL, "/") + path
	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return nil, fmt.Errorf("api: failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.config.UserAgent)
	req.Header.Set("X-Request-ID", uuid.NewString())
	if authenticated {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req, nil
}

func (c *Client) send(req *http.Request) ([]byte, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", seller.ErrUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, fmt.Errorf("api: failed to read response: %w", err)
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return nil, fmt.Errorf("%w: HTTP %d", seller.ErrAuthRejected, resp.StatusCode)
	case resp.StatusCode >= 400:
		return nil, fmt.Errorf("%w: HTTP %d", seller.ErrRequestFailed, resp.StatusCode)
	}
	return body, nil
}

// decodeEnvelope parses a read response and enforces the success flag.
func decodeEnvelope(body []byte, out any, env *Envelope) error {
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("%w: failed to parse response: %v", seller.ErrInvalidResponse, err)
	}
	if !env.IsSuccess() {
		return fmt.Errorf("%w: %s", seller.ErrRequestFailed, env.Message)
	}
	return nil
}

// checkWriteEnvelope parses a write response. A success=false envelope on
// a write is the backend rejecting the submission, surfaced as a
// validation failure carrying the backend's message.
func checkWriteEnvelope(body []byte) error {
	var env Envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return fmt.Errorf("%w: failed to parse response: %v", seller.ErrInvalidResponse, err)
	}
	if !env.IsSuccess() {
		return fmt.Errorf("%w: %s", seller.ErrValidation, env.Message)
	}
	return nil
}
