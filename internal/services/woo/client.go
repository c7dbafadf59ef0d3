package woo

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// Client talks to the WooCommerce REST API (wp-json/wc/v3) with consumer
// key/secret basic auth.
type Client struct {
	StoreURL       string
	ConsumerKey    string
	ConsumerSecret string
	HttpClient     *http.Client
}

// NewClient creates a new WooCommerce client
func NewClient(storeURL, key, secret string) *Client {
	return &Client{
		StoreURL:       storeURL,
		ConsumerKey:    key,
		ConsumerSecret: secret,
		HttpClient:     &http.Client{Timeout: 30 * time.Second},
	}
}

// WooOrder is the subset of a WooCommerce order the mirror cares about
type WooOrder struct {
	ID       int64          `json:"id"`
	Number   string         `json:"number"`
	Status   string         `json:"status"`
	Total    string         `json:"total"`
	Billing  WooBilling     `json:"billing"`
	Items    []WooLineItem  `json:"line_items"`
	MetaData []WooMetaEntry `json:"meta_data"`
	Created  string         `json:"date_created_gmt"`
	Modified string         `json:"date_modified_gmt"`
}

// WooBilling holds customer contact fields
type WooBilling struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

// WooLineItem is one purchased product
type WooLineItem struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	ProductID int64   `json:"product_id"`
	Quantity  int     `json:"quantity"`
	Total     string  `json:"total"`
	Price     float64 `json:"price"`
}

// WooMetaEntry is a Woo meta_data key/value pair
type WooMetaEntry struct {
	Key   string      `json:"key"`
	Value interface{} `json:"value"`
}

// ListOrders fetches orders modified after the given time, newest first.
func (c *Client) ListOrders(ctx context.Context, modifiedAfter time.Time, perPage int) ([]WooOrder, error) {
	if perPage <= 0 {
		perPage = 100
	}

	q := url.Values{}
	q.Set("per_page", strconv.Itoa(perPage))
	q.Set("orderby", "modified")
	q.Set("order", "desc")
	if !modifiedAfter.IsZero() {
		q.Set("modified_after", modifiedAfter.UTC().Format("2006-01-02T15:04:05"))
	}

	var orders []WooOrder
	if err := c.get(ctx, "/wp-json/wc/v3/orders?"+q.Encode(), &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// GetOrder fetches one order by its Woo ID
func (c *Client) GetOrder(ctx context.Context, id int64) (*WooOrder, error) {
	var order WooOrder
	if err := c.get(ctx, fmt.Sprintf("/wp-json/wc/v3/orders/%d", id), &order); err != nil {
		return nil, err
	}
	return &order, nil
}

func (c *Client) get(ctx context.Context, path string, result interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.StoreURL+path, nil)
	if err != nil {
		return err
	}
	req.SetBasicAuth(c.ConsumerKey, c.ConsumerSecret)

	resp, err := c.HttpClient.Do(req)
	if err != nil {
		return fmt.Errorf("woo request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("woo returned %d: %s", resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return fmt.Errorf("woo response decode failed: %w", err)
	}
	return nil
}
