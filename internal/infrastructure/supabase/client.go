package supabase

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/Sekhard17/inventario-surinnova/internal/domain"
	"github.com/Sekhard17/inventario-surinnova/pkg/config"
)

// Client cliente HTTP contra la API de tablas del servicio remoto
// (PostgREST, /rest/v1). Expone las cuatro operaciones del contrato:
// select, insert, update y delete. El servicio se trata como opaco: los
// errores no se interpretan más allá de éxito/fracaso.
type Client struct {
	http *resty.Client
}

// NewClient construye el cliente REST con las credenciales del proyecto.
func NewClient(cfg config.SupabaseConfig) *Client {
	base := strings.TrimSuffix(cfg.URL, "/")

	rc := resty.New()
	rc.
		SetBaseURL(base+"/rest/v1").
		SetHeader("apikey", cfg.AnonKey).
		SetHeader("Authorization", "Bearer "+cfg.AnonKey).
		SetHeader("Content-Type", "application/json").
		SetTimeout(time.Duration(cfg.TimeoutSec) * time.Second)

	return &Client{http: rc}
}

// apiError payload de error de PostgREST.
type apiError struct {
	Message string `json:"message"`
	Code    string `json:"code"`
	Details string `json:"details"`
	Hint    string `json:"hint"`
}

// Select consulta filas de una tabla. query lleva los parámetros PostgREST
// (select, order, filtros eq.*); dest recibe el slice decodificado.
func (c *Client) Select(ctx context.Context, table string, query url.Values, dest any) error {
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParamsFromValues(query).
		SetResult(dest).
		SetError(&apiError{}).
		Get("/" + table)
	return c.check(table, "select", resp, err)
}

// Insert crea una fila y decodifica en dest la representación devuelta por
// el servicio (Prefer: return=representation).
func (c *Client) Insert(ctx context.Context, table string, row any, dest any) error {
	var rows json.RawMessage
	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Prefer", "return=representation").
		SetBody(row).
		SetResult(&rows).
		SetError(&apiError{}).
		Post("/" + table)
	if err := c.check(table, "insert", resp, err); err != nil {
		return err
	}
	// PostgREST devuelve un arreglo aun insertando una sola fila.
	var items []json.RawMessage
	if err := json.Unmarshal(rows, &items); err != nil || len(items) == 0 {
		return fmt.Errorf("%w: %s insert sin representación", domain.ErrRemoteUnavailable, table)
	}
	return json.Unmarshal(items[0], dest)
}

// Update aplica una actualización parcial a la fila con el id indicado.
func (c *Client) Update(ctx context.Context, table, id string, partial any) error {
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParam("id", "eq."+id).
		SetBody(partial).
		SetError(&apiError{}).
		Patch("/" + table)
	return c.check(table, "update", resp, err)
}

// Delete elimina la fila con el id indicado.
func (c *Client) Delete(ctx context.Context, table, id string) error {
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParam("id", "eq."+id).
		SetError(&apiError{}).
		Delete("/" + table)
	return c.check(table, "delete", resp, err)
}

// check normaliza transporte y respuesta no-2xx a ErrRemoteUnavailable.
func (c *Client) check(table, op string, resp *resty.Response, err error) error {
	if err != nil {
		return fmt.Errorf("%w: %s %s: %v", domain.ErrRemoteUnavailable, table, op, err)
	}
	if resp.IsError() {
		if apiErr, ok := resp.Error().(*apiError); ok && apiErr.Message != "" {
			return fmt.Errorf("%w: %s %s: %s", domain.ErrRemoteUnavailable, table, op, apiErr.Message)
		}
		return fmt.Errorf("%w: %s %s: HTTP %d", domain.ErrRemoteUnavailable, table, op, resp.StatusCode())
	}
	return nil
}
