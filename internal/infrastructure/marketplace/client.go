package marketplace

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/ashobox/backoffice/internal/domain/activity"
	"github.com/ashobox/backoffice/internal/domain/catalog"
	"github.com/ashobox/backoffice/internal/domain/finance"
	"github.com/ashobox/backoffice/internal/domain/report"
	"github.com/ashobox/backoffice/internal/domain/shared"
	"github.com/ashobox/backoffice/internal/infrastructure/config"
)

// maxResponseSize is the maximum allowed response size from the marketplace (10MB)
const maxResponseSize = 10 * 1024 * 1024

var (
	_ report.SnapshotSource     = (*Client)(nil)
	_ catalog.ProductSource     = (*Client)(nil)
	_ catalog.ModerationGateway = (*Client)(nil)
	_ activity.LogSource        = (*Client)(nil)
	_ finance.PayoutSource      = (*Client)(nil)
	_ finance.PayoutGateway     = (*Client)(nil)
)

// Client talks to the marketplace data service. It is the single outbound
// adapter: snapshot reads, moderation writes and payout writes all go
// through it. Requests are not retried; a failure is the caller's to
// handle.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient creates a marketplace client from configuration.
func NewClient(cfg config.MarketplaceConfig) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:  cfg.APIKey,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

type dataEnvelope struct {
	Data json.RawMessage `json:"data"`
}

type errorEnvelope struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding %s %s request: %w", method, path, err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("building %s %s request: %w", method, path, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("calling %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return fmt.Errorf("reading %s %s response: %w", method, path, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return shared.NewRemoteError(resp.StatusCode, remoteMessage(payload))
	}

	if out == nil {
		return nil
	}

	var envelope dataEnvelope
	if err := json.Unmarshal(payload, &envelope); err != nil {
		return fmt.Errorf("decoding %s %s response: %w", method, path, err)
	}
	if err := json.Unmarshal(envelope.Data, out); err != nil {
		return fmt.Errorf("decoding %s %s data: %w", method, path, err)
	}
	return nil
}

// remoteMessage pulls the human message out of an error body, falling back
// to the raw body when it is not the expected JSON shape.
func remoteMessage(payload []byte) string {
	var envelope errorEnvelope
	if err := json.Unmarshal(payload, &envelope); err == nil {
		if envelope.Message != "" {
			return envelope.Message
		}
		if envelope.Error != "" {
			return envelope.Error
		}
	}
	return strings.TrimSpace(string(payload))
}

// FetchOrders returns the full order set.
func (c *Client) FetchOrders(ctx context.Context) ([]report.Order, error) {
	var orders []report.Order
	if err := c.do(ctx, http.MethodGet, "/orders", nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// FetchLedgerEntries returns the full ledger.
func (c *Client) FetchLedgerEntries(ctx context.Context) ([]report.LedgerEntry, error) {
	var entries []report.LedgerEntry
	if err := c.do(ctx, http.MethodGet, "/ledger-entries", nil, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// FetchVendorStats returns the per-vendor aggregates.
func (c *Client) FetchVendorStats(ctx context.Context) ([]report.VendorStat, error) {
	var vendors []report.VendorStat
	if err := c.do(ctx, http.MethodGet, "/vendors/stats", nil, &vendors); err != nil {
		return nil, err
	}
	return vendors, nil
}

// FetchProducts returns the full listing set.
func (c *Client) FetchProducts(ctx context.Context) ([]catalog.Product, error) {
	var products []catalog.Product
	if err := c.do(ctx, http.MethodGet, "/products", nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// FetchActivityLogs returns the audit trail.
func (c *Client) FetchActivityLogs(ctx context.Context) ([]activity.Log, error) {
	var logs []activity.Log
	if err := c.do(ctx, http.MethodGet, "/activity-logs", nil, &logs); err != nil {
		return nil, err
	}
	return logs, nil
}

// FetchPayouts returns the payout history.
func (c *Client) FetchPayouts(ctx context.Context) ([]finance.Payout, error) {
	var payouts []finance.Payout
	if err := c.do(ctx, http.MethodGet, "/payouts", nil, &payouts); err != nil {
		return nil, err
	}
	return payouts, nil
}

type statusUpdateBody struct {
	Status string `json:"status"`
	Reason string `json:"reason,omitempty"`
}

// UpdateProductStatus pushes a moderation decision.
func (c *Client) UpdateProductStatus(ctx context.Context, productID int64, status catalog.ProductStatus, reason string) error {
	path := fmt.Sprintf("/products/%d/status", productID)
	return c.do(ctx, http.MethodPatch, path, statusUpdateBody{Status: string(status), Reason: reason}, nil)
}

type tagsUpdateBody struct {
	Tags []string `json:"tags"`
}

// UpdateProductTags replaces a product's tag set.
func (c *Client) UpdateProductTags(ctx context.Context, productID int64, tags []string) error {
	if tags == nil {
		tags = []string{}
	}
	path := fmt.Sprintf("/products/%d/tags", productID)
	return c.do(ctx, http.MethodPut, path, tagsUpdateBody{Tags: tags}, nil)
}

type recordPayoutBody struct {
	VendorID   int64  `json:"vendorId"`
	Amount     string `json:"amount"`
	Reference  string `json:"reference"`
	ReceiptURL string `json:"receiptUrl,omitempty"`
	Notes      string `json:"notes,omitempty"`
}

type recordPayoutResponse struct {
	Reference string `json:"reference"`
}

// RecordPayout records a disbursement and returns the stored reference.
func (c *Client) RecordPayout(ctx context.Context, req finance.PayoutRequest) (string, error) {
	body := recordPayoutBody{
		VendorID:   req.VendorID,
		Amount:     req.Amount.String(),
		Reference:  req.Reference,
		ReceiptURL: req.ReceiptURL,
		Notes:      req.Notes,
	}

	var out recordPayoutResponse
	if err := c.do(ctx, http.MethodPost, "/payouts", body, &out); err != nil {
		return "", err
	}
	return out.Reference, nil
}

// Ping checks marketplace reachability with a short deadline, used by the
// health endpoint.
func (c *Client) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	return c.do(ctx, http.MethodGet, "/health", nil, nil)
}
