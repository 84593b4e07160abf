// Package sheets posts completed order summaries to an external spreadsheet
// endpoint. The sync is best-effort and at-most-once: failures are logged and
// never retried, surfaced, or allowed to block order completion.
package sheets

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"sjsm-storefront/internal/domain"

	"go.uber.org/zap"
)

// OrderSummary is the flattened payload the endpoint expects.
type OrderSummary struct {
	OrderID       string `json:"order_id"`
	CustomerName  string `json:"customer_name"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	StreetAddress string `json:"street_address"`
	City          string `json:"city"`
	Zipcode       string `json:"zipcode"`
	OrderedItem   string `json:"ordered_item"`
	PaymentAmount string `json:"payment_amount"`
	PaymentMode   string `json:"payment_mode"`
	DeliveryDate  string `json:"delivery_date"`
}

// Client posts order summaries. A zero URL disables the sync entirely.
type Client struct {
	url        string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewClient creates a sync client with the given endpoint and per-request
// timeout.
func NewClient(url string, timeout time.Duration, logger *zap.Logger) *Client {
	return &Client{
		url:        url,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

// Summarize flattens an order into the sync payload.
func Summarize(order domain.Order, email string, addr domain.Address) OrderSummary {
	lines := make([]string, 0, len(order.Items))
	for _, item := range order.Items {
		lines = append(lines, fmt.Sprintf("%s (x%d)", item.Name, item.Quantity))
	}

	return OrderSummary{
		OrderID:       order.ID,
		CustomerName:  addr.FullName,
		Email:         email,
		Phone:         addr.Phone,
		StreetAddress: addr.Street,
		City:          addr.City,
		Zipcode:       addr.Zip,
		OrderedItem:   strings.Join(lines, ", "),
		PaymentAmount: fmt.Sprintf("%d", order.Total),
		PaymentMode:   string(order.PaymentMode),
		DeliveryDate:  order.DeliveryDate.Format("2006-01-02"),
	}
}

// Sync posts the summary once. The response body is discarded; a non-2xx
// status is treated the same as a transport failure.
func (c *Client) Sync(ctx context.Context, summary OrderSummary) error {
	if c.url == "" {
		return nil
	}

	body, err := json.Marshal(summary)
	if err != nil {
		return fmt.Errorf("marshal order summary: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build sync request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("post order summary: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("sync endpoint returned %d", resp.StatusCode)
	}
	return nil
}

// SyncAsync fires Sync on its own goroutine with a detached context. Errors
// are logged only.
func (c *Client) SyncAsync(summary OrderSummary) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), c.httpClient.Timeout)
		defer cancel()

		if err := c.Sync(ctx, summary); err != nil {
			c.logger.Warn("Order sheet sync failed",
				zap.String("order_id", summary.OrderID),
				zap.Error(err),
			)
		}
	}()
}
