// Package gateway is the HTTP adapter for the external payment gateway.
// It knows the wire protocol of the three request types (ready, approve,
// cancel) and nothing else; business rules live in the service layer.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"
)

// DefaultBaseURL is the production endpoint of the gateway's online
// payment API. Overridable through configuration for sandboxes and tests.
const DefaultBaseURL = "https://open-api.kakaopay.com/online/v1/payment"

// Config carries everything the adapter needs to talk to the gateway.
// Two secrets exist because the gateway issues distinct credentials for
// its test and production modes; Mode selects which one is sent.
type Config struct {
	BaseURL      string        // gateway API root, DefaultBaseURL when empty
	CID          string        // merchant code registered with the gateway
	SecretKey    string        // production secret
	SecretKeyDev string        // test-mode secret
	Mode         string        // "test" or "prod"
	ApprovalURL  string        // redirect target after user authorization
	CancelURL    string        // redirect target when the user aborts
	FailURL      string        // redirect target on gateway-side failure
	Timeout      time.Duration // per-request timeout, 10s when zero
}

// Client sends prepare/approve/cancel requests to the gateway over HTTP.
type Client struct {
	cfg  Config
	http *http.Client
}

// NewClient builds a gateway client with a bounded request timeout.
func NewClient(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	return &Client{cfg: cfg, http: &http.Client{Timeout: cfg.Timeout}}
}

// Error is returned when the gateway answers with a non-2xx status or the
// request cannot be completed. Status is 0 for transport-level failures
// such as timeouts.
type Error struct {
	Op     string // "ready", "approve" or "cancel"
	Status int    // HTTP status, 0 when the request never completed
	Body   string // raw response body, truncated
	Err    error  // underlying transport error, if any
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("gateway %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("gateway %s: status %d: %s", e.Op, e.Status, e.Body)
}

func (e *Error) Unwrap() error { return e.Err }

// PrepareRequest is the payload for the ready call. Quantity is always 1:
// one reservation equals one order.
type PrepareRequest struct {
	PartnerOrderID string // merchant-side order id
	PartnerUserID  string // merchant-side user id
	ItemName       string // human-readable description shown to the payer
	TotalAmount    int    // full amount to authorize
	TaxFreeAmount  int    // tax-exempt part of the amount
}

// PrepareResponse carries the gateway transaction id and the redirect
// payload the caller forwards verbatim to the client.
type PrepareResponse struct {
	TID                   string `json:"tid"`
	NextRedirectPCURL     string `json:"next_redirect_pc_url"`
	NextRedirectMobileURL string `json:"next_redirect_mobile_url"`
	NextRedirectAppURL    string `json:"next_redirect_app_url"`
	CreatedAt             string `json:"created_at"`
}

// ApproveRequest finalizes an authorized transaction.
type ApproveRequest struct {
	TID            string // gateway transaction id from prepare
	PartnerOrderID string // must match the value sent at prepare
	PartnerUserID  string // must match the value sent at prepare
	PGToken        string // authorization token from the redirect
}

// Amount is the gateway's breakdown of a settled amount.
type Amount struct {
	Total   int `json:"total"`
	TaxFree int `json:"tax_free"`
	Vat     int `json:"vat"`
	Point   int `json:"point"`
}

// ApproveResponse is the gateway's approval confirmation.
type ApproveResponse struct {
	AID            string `json:"aid"`
	TID            string `json:"tid"`
	PartnerOrderID string `json:"partner_order_id"`
	PartnerUserID  string `json:"partner_user_id"`
	PaymentMethod  string `json:"payment_method_type"`
	Amount         Amount `json:"amount"`
	ItemName       string `json:"item_name"`
	ApprovedAt     string `json:"approved_at"`
}

// CancelRequest refunds (part of) a settled transaction.
type CancelRequest struct {
	TID                 string // gateway transaction id of the settled payment
	CancelAmount        int    // amount to refund
	CancelTaxFreeAmount int    // tax-exempt part of the refund
}

// CancelResponse is the gateway's cancellation confirmation.
type CancelResponse struct {
	AID             string `json:"aid"`
	TID             string `json:"tid"`
	Status          string `json:"status"`
	Amount          Amount `json:"amount"`
	CanceledAmount  Amount `json:"canceled_amount"`
	CanceledAt      string `json:"canceled_at"`
	ApprovedCancelAt string `json:"approved_cancel_at"`
}

// Prepare quotes a payment to the gateway and returns the transaction id
// plus the redirect payload.
func (c *Client) Prepare(ctx context.Context, req PrepareRequest) (*PrepareResponse, error) {
	body := map[string]string{
		"cid":              c.cfg.CID,
		"partner_order_id": req.PartnerOrderID,
		"partner_user_id":  req.PartnerUserID,
		"item_name":        req.ItemName,
		"quantity":         "1",
		"total_amount":     strconv.Itoa(req.TotalAmount),
		"tax_free_amount":  strconv.Itoa(req.TaxFreeAmount),
		"approval_url":     c.cfg.ApprovalURL,
		"cancel_url":       c.cfg.CancelURL,
		"fail_url":         c.cfg.FailURL,
	}
	var out PrepareResponse
	if err := c.post(ctx, "ready", "/ready", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Approve finalizes an authorized transaction after the user redirect.
func (c *Client) Approve(ctx context.Context, req ApproveRequest) (*ApproveResponse, error) {
	body := map[string]string{
		"cid":              c.cfg.CID,
		"tid":              req.TID,
		"partner_order_id": req.PartnerOrderID,
		"partner_user_id":  req.PartnerUserID,
		"pg_token":         req.PGToken,
	}
	var out ApproveResponse
	if err := c.post(ctx, "approve", "/approve", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Cancel refunds the given amount of a settled transaction.
func (c *Client) Cancel(ctx context.Context, req CancelRequest) (*CancelResponse, error) {
	body := map[string]string{
		"cid":                    c.cfg.CID,
		"tid":                    req.TID,
		"cancel_amount":          strconv.Itoa(req.CancelAmount),
		"cancel_tax_free_amount": strconv.Itoa(req.CancelTaxFreeAmount),
	}
	var out CancelResponse
	if err := c.post(ctx, "cancel", "/cancel", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// secret returns the credential matching the configured mode.
func (c *Client) secret() string {
	if c.cfg.Mode == "test" {
		return c.cfg.SecretKeyDev
	}
	return c.cfg.SecretKey
}

// post sends one JSON request and decodes the JSON response into out.
func (c *Client) post(ctx context.Context, op, path string, body map[string]string, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return &Error{Op: op, Err: err}
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL+path, bytes.NewReader(payload))
	if err != nil {
		return &Error{Op: op, Err: err}
	}
	req.Header.Set("Authorization", "SECRET_KEY "+c.secret())
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return &Error{Op: op, Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
	if err != nil {
		return &Error{Op: op, Status: resp.StatusCode, Err: err}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &Error{Op: op, Status: resp.StatusCode, Body: string(raw)}
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return &Error{Op: op, Status: resp.StatusCode, Body: string(raw), Err: err}
	}
	return nil
}
