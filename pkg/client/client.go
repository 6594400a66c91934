// Package client es el cliente Go de la API de prepperstore. Mantiene la cookie de
// sesión en un cookie jar, igual que el navegador con credentials: 'include'.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"strings"
	"time"
)

// Modos de escaneo.
const (
	ModeIn     = "IN"
	ModeOut    = "OUT"
	ModeStatus = "STATUS"
)

// Item resumen de un item.
type Item struct {
	ID        int64    `json:"id"`
	Name      string   `json:"name"`
	Threshold *float64 `json:"threshold"`
}

// StockLevel cantidad de un item en una ubicación.
type StockLevel struct {
	LocationID   int64  `json:"locationId"`
	LocationName string `json:"locationName"`
	Amount       int64  `json:"amount"`
}

// Change mutación aplicada por un escaneo.
type Change struct {
	Action         string `json:"action"`
	Quantity       int64  `json:"quantity"`
	LocationID     int64  `json:"locationId"`
	LocationName   string `json:"locationName"`
	PreviousAmount int64  `json:"previousAmount"`
	NewAmount      int64  `json:"newAmount"`
}

// ScanResult respuesta de /api/scan. Item es nil cuando Status es "unknown_identifier".
type ScanResult struct {
	Status    string       `json:"status"`
	Mode      string       `json:"mode"`
	Barcode   string       `json:"barcode"`
	Item      *Item        `json:"item,omitempty"`
	Locations []StockLevel `json:"locations,omitempty"`
	Change    *Change      `json:"change,omitempty"`
	Warning   string       `json:"warning,omitempty"`
}

// Known indica si el código está vinculado a un item.
func (r ScanResult) Known() bool { return r.Status == "known" }

// ItemStock respuesta de /api/stock/adjust.
type ItemStock struct {
	Item      Item         `json:"item"`
	Locations []StockLevel `json:"locations"`
}

// StatusError respuesta no 2xx.
type StatusError struct {
	Op     string
	Status int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s failed: %d", e.Op, e.Status)
}

// Client cliente HTTP con sesión.
type Client struct {
	base string
	http *http.Client
}

// Option configura el cliente.
type Option func(*Client)

// WithHTTPClient sustituye el http.Client. Si no trae Jar se le asigna uno.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// New crea un cliente contra baseURL (p. ej. http://localhost:3000).
func New(baseURL string, opts ...Option) (*Client, error) {
	c := &Client{
		base: strings.TrimRight(baseURL, "/"),
		http: &http.Client{Timeout: 15 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.http.Jar == nil {
		jar, err := cookiejar.New(nil)
		if err != nil {
			return nil, err
		}
		c.http.Jar = jar
	}
	return c, nil
}

// Login abre sesión con la contraseña compartida.
func (c *Client) Login(ctx context.Context, password string) error {
	resp, err := c.do(ctx, http.MethodPost, "/api/login", map[string]string{"password": password})
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	return expectOK("Login", resp)
}

// Logout cierra la sesión.
func (c *Client) Logout(ctx context.Context) error {
	resp, err := c.do(ctx, http.MethodPost, "/api/logout", nil)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	return expectOK("Logout", resp)
}

// AuthCheck devuelve false (sin error) ante 401.
func (c *Client) AuthCheck(ctx context.Context) (bool, error) {
	resp, err := c.do(ctx, http.MethodGet, "/api/auth-check", nil)
	if err != nil {
		return false, err
	}
	defer resp.Body.Close()
	if resp.StatusCode == http.StatusUnauthorized {
		return false, nil
	}
	var out struct {
		Authenticated bool `json:"authenticated"`
	}
	if err := decode("Auth check", resp, &out); err != nil {
		return false, err
	}
	return out.Authenticated, nil
}

// FetchAllItems lista los items.
func (c *Client) FetchAllItems(ctx context.Context) ([]Item, error) {
	resp, err := c.do(ctx, http.MethodGet, "/api/items", nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	var out struct {
		Items []Item `json:"items"`
	}
	if err := decode("Fetch items", resp, &out); err != nil {
		return nil, err
	}
	return out.Items, nil
}

// CreateItem crea un item; threshold nil se envía como null.
func (c *Client) CreateItem(ctx context.Context, name string, threshold *float64) (*Item, error) {
	resp, err := c.do(ctx, http.MethodPost, "/api/items", map[string]any{"name": name, "threshold": threshold})
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	var out Item
	if err := decode("Create item", resp, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// LinkIdentifier vincula un código de barras a un item.
func (c *Client) LinkIdentifier(ctx context.Context, itemID int64, identifier string) error {
	resp, err := c.do(ctx, http.MethodPost, "/api/item-identifiers", map[string]any{"itemId": itemID, "identifier": identifier})
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	return expectOK("Link identifier", resp)
}

// AdjustStock aplica delta en una ubicación.
func (c *Client) AdjustStock(ctx context.Context, itemID, locationID, delta int64) (*ItemStock, error) {
	resp, err := c.do(ctx, http.MethodPost, "/api/stock/adjust", map[string]any{
		"itemId": itemID, "locationId": locationID, "delta": delta,
	})
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	var out ItemStock
	if err := decode("Adjust stock", resp, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SendScan envía un escaneo; preferredLocationID nil = selección automática.
func (c *Client) SendScan(ctx context.Context, barcode, mode string, preferredLocationID *int64) (*ScanResult, error) {
	resp, err := c.do(ctx, http.MethodPost, "/api/scan", map[string]any{
		"barcode": barcode, "mode": mode, "preferredLocationId": preferredLocationID,
	})
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	var out ScanResult
	if err := decode("Scan", resp, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) do(ctx context.Context, method, path string, body any) (*http.Response, error) {
	var r io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		r = bytes.NewReader(raw)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.base+path, r)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return c.http.Do(req)
}

func expectOK(op string, resp *http.Response) error {
	_, _ = io.Copy(io.Discard, resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &StatusError{Op: op, Status: resp.StatusCode}
	}
	return nil
}

func decode(op string, resp *http.Response, out any) error {
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return &StatusError{Op: op, Status: resp.StatusCode}
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%s: decode response: %w", op, err)
	}
	return nil
}
