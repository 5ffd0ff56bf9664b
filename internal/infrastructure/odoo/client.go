package odoo

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/ithesk/odoo-scanner/internal/domain"
	"github.com/ithesk/odoo-scanner/pkg/config"
)

const (
	commonEndpoint = "/xmlrpc/2/common"
	objectEndpoint = "/xmlrpc/2/object"
)

// Client cliente XML-RPC de bajo nivel contra Odoo. La configuración se toma
// como snapshot en cada llamada para que una reconfiguración del operador
// aplique sin reiniciar.
type Client struct {
	httpClient *http.Client
	snapshot   func() config.OdooConfig
}

// NewClient construye el cliente. El timeout es generoso (60 s) porque un
// Odoo cargado puede tardar varios segundos en responder un create en lote.
func NewClient(snapshot func() config.OdooConfig) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 60 * time.Second},
		snapshot:   snapshot,
	}
}

// call ejecuta un methodCall contra el endpoint indicado.
func (c *Client) call(ctx context.Context, endpoint, method string, params []any) (any, error) {
	body, err := encodeMethodCall(method, params)
	if err != nil {
		return nil, err
	}

	cfg := c.snapshot()
	url := strings.TrimRight(cfg.URL, "/") + endpoint
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("odoo: preparar petición: %w", err)
	}
	req.Header.Set("Content-Type", "text/xml")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrConnection, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: leer respuesta: %v", domain.ErrConnection, err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: HTTP %d", domain.ErrConnection, resp.StatusCode)
	}

	return decodeMethodResponse(raw)
}

// Authenticate abre sesión y devuelve el uid. Odoo responde boolean false
// cuando las credenciales son inválidas.
func (c *Client) Authenticate(ctx context.Context) (int64, error) {
	cfg := c.snapshot()
	result, err := c.call(ctx, commonEndpoint, "authenticate",
		[]any{cfg.DB, cfg.Username, cfg.Password, map[string]any{}})
	if err != nil {
		return 0, err
	}
	uid, ok := result.(int64)
	if !ok || uid <= 0 {
		return 0, fmt.Errorf("%w: credenciales inválidas", domain.ErrConnection)
	}
	return uid, nil
}

// ExecuteKw invoca model.method(args, kwargs) vía execute_kw.
func (c *Client) ExecuteKw(ctx context.Context, uid int64, model, method string, args []any, kwargs map[string]any) (any, error) {
	cfg := c.snapshot()
	params := []any{cfg.DB, uid, cfg.Password, model, method, args}
	if kwargs != nil {
		params = append(params, kwargs)
	}
	return c.call(ctx, objectEndpoint, "execute_kw", params)
}
