package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/it23631960/pearl-logistics-admin/internal/models"
)

// Client is the typed HTTP client for the store backend
type Client struct {
	client  *http.Client
	baseURL string
}

// NewClient creates new Client instance
func NewClient(baseURL string) *Client {
	return &Client{
		client: &http.Client{
			Timeout: 5 * time.Second,
		},
		baseURL: baseURL,
	}
}

func (c *Client) get(ctx context.Context, dst any, elem ...string) error {
	url, err := url.JoinPath(c.baseURL, elem...)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}

	resp, err := c.client.Do(req)
	if resp != nil {
		defer resp.Body.Close()
	}
	if err != nil {
		return err
	}

	switch {
	case resp.StatusCode == http.StatusOK:
		return json.NewDecoder(resp.Body).Decode(dst)
	case resp.StatusCode >= http.StatusInternalServerError:
		return models.ErrBackendInternal
	default:
		return fmt.Errorf("unexpected status %d from %s", resp.StatusCode, url)
	}
}

// ListOrders returns the full order collection
// GET /api/orders
func (c *Client) ListOrders(ctx context.Context) ([]models.Order, error) {
	var orders []models.Order
	if err := c.get(ctx, &orders, "api", "orders"); err != nil {
		return nil, err
	}
	return orders, nil
}

// ListUsers returns the full customer collection
// GET /api/auth/get-users
func (c *Client) ListUsers(ctx context.Context) ([]models.Customer, error) {
	var users []models.Customer
	if err := c.get(ctx, &users, "api", "auth", "get-users"); err != nil {
		return nil, err
	}
	return users, nil
}

// item details arrive wrapped in an envelope
type itemResponse struct {
	Item models.Item `json:"item"`
}

// GetItem returns catalog details for a single item
// 200 — item found;
// 404 — item is not in the catalog, mapped to models.ErrItemNotFound;
// 500 — backend internal error.
func (c *Client) GetItem(ctx context.Context, itemID int64) (*models.Item, error) {
	url, err := url.JoinPath(c.baseURL, "api", "items", "get", strconv.FormatInt(itemID, 10))
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.client.Do(req)
	if resp != nil {
		defer resp.Body.Close()
	}
	if err != nil {
		return nil, err
	}

	switch resp.StatusCode {
	case http.StatusOK:
		itemResp := itemResponse{}
		if err := json.NewDecoder(resp.Body).Decode(&itemResp); err != nil {
			return nil, err
		}
		return &itemResp.Item, nil
	case http.StatusNotFound:
		return nil, models.ErrItemNotFound
	case http.StatusInternalServerError:
		return nil, models.ErrBackendInternal
	default:
		return nil, fmt.Errorf("unexpected status %d for item %d", resp.StatusCode, itemID)
	}
}

type statusRequest struct {
	Status string `json:"status"`
}

// UpdateOrderStatus sets the status of a single order
// PUT /api/orders/{orderId}/status
// Any non-2xx response is a failure, the caller must not patch local state.
func (c *Client) UpdateOrderStatus(ctx context.Context, orderID int64, status string) error {
	url, err := url.JoinPath(c.baseURL, "api", "orders", strconv.FormatInt(orderID, 10), "status")
	if err != nil {
		return err
	}

	body, err := json.Marshal(statusRequest{Status: status})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if resp != nil {
		defer resp.Body.Close()
	}
	if err != nil {
		return err
	}

	switch {
	case resp.StatusCode >= http.StatusOK && resp.StatusCode < http.StatusMultipleChoices:
		return nil
	case resp.StatusCode == http.StatusNotFound:
		return models.ErrOrderNotFound
	case resp.StatusCode >= http.StatusInternalServerError:
		return models.ErrBackendInternal
	default:
		return fmt.Errorf("unexpected status %d updating order %d", resp.StatusCode, orderID)
	}
}

// ListCategories returns all product categories
func (c *Client) ListCategories(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	if err := c.get(ctx, &categories, "api", "categories"); err != nil {
		return nil, err
	}
	return categories, nil
}

type categoryRequest struct {
	Name string `json:"name"`
}

// CreateCategory adds a new product category
func (c *Client) CreateCategory(ctx context.Context, name string) (*models.Category, error) {
	url, err := url.JoinPath(c.baseURL, "api", "categories")
	if err != nil {
		return nil, err
	}

	body, err := json.Marshal(categoryRequest{Name: name})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if resp != nil {
		defer resp.Body.Close()
	}
	if err != nil {
		return nil, err
	}

	switch {
	case resp.StatusCode == http.StatusOK || resp.StatusCode == http.StatusCreated:
		category := models.Category{}
		if err := json.NewDecoder(resp.Body).Decode(&category); err != nil {
			return nil, err
		}
		return &category, nil
	case resp.StatusCode >= http.StatusInternalServerError:
		return nil, models.ErrBackendInternal
	default:
		return nil, fmt.Errorf("unexpected status %d creating category", resp.StatusCode)
	}
}

// DeleteCategory removes a product category
func (c *Client) DeleteCategory(ctx context.Context, categoryID int64) error {
	url, err := url.JoinPath(c.baseURL, "api", "categories", strconv.FormatInt(categoryID, 10))
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, url, nil)
	if err != nil {
		return err
	}

	resp, err := c.client.Do(req)
	if resp != nil {
		defer resp.Body.Close()
	}
	if err != nil {
		return err
	}

	switch {
	case resp.StatusCode >= http.StatusOK && resp.StatusCode < http.StatusMultipleChoices:
		return nil
	case resp.StatusCode >= http.StatusInternalServerError:
		return models.ErrBackendInternal
	default:
		return fmt.Errorf("unexpected status %d deleting category %d", resp.StatusCode, categoryID)
	}
}
