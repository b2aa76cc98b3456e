package billogram

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/tu-usuario/billogram-batch/internal/application/dto"
	"github.com/tu-usuario/billogram-batch/internal/domain"
	"github.com/tu-usuario/billogram-batch/pkg/config"
)

// Client implementa billing.BillogramGateway contra el API HTTP v2 de
// Billogram. Todas las operaciones son POST con basic auth; las respuestas
// vienen en un sobre {"status": ..., "data": ...} y los errores traen el
// mensaje en data.message.
type Client struct {
	httpClient *http.Client
	baseURL    string
	creds      config.Credentials
}

// NewClient construye el cliente con el timeout de la configuración; el API
// sandbox puede tardar varios segundos en responder.
func NewClient(api config.APIConfig, creds config.Credentials) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: api.Timeout},
		baseURL:    strings.TrimRight(api.BaseURL, "/"),
		creds:      creds,
	}
}

// CreateCustomer registra el cliente en Billogram (POST /customer).
func (c *Client) CreateCustomer(ctx context.Context, payload dto.CustomerPayload) error {
	_, err := c.post(ctx, "/customer", payload)
	return err
}

// CreateInvoice crea la factura (POST /billogram) y devuelve el id asignado.
func (c *Client) CreateInvoice(ctx context.Context, payload dto.BillogramPayload) (string, error) {
	data, err := c.post(ctx, "/billogram", payload)
	if err != nil {
		return "", err
	}
	if data.ID == "" {
		return "", fmt.Errorf("respuesta sin id de factura: %w", domain.ErrAPIRejected)
	}
	return data.ID, nil
}

// SendInvoice ordena el envío de la factura por el método indicado
// (POST /billogram/{id}/command/send).
func (c *Client) SendInvoice(ctx context.Context, billogramID, method string) error {
	_, err := c.post(ctx, "/billogram/"+billogramID+"/command/send", dto.SendPayload{Method: method})
	return err
}

// post serializa el body, hace la llamada autenticada y decodifica el sobre
// de respuesta. Un status HTTP distinto de 200 se traduce a ErrAPIRejected
// con el mensaje que reportó el API.
func (c *Client) post(ctx context.Context, path string, body any) (*dto.EnvelopeData, error) {
	raw, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("serializar body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(raw))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.SetBasicAuth(c.creds.Login, c.creds.Password)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("POST %s: %w", path, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("leer respuesta de %s: %w", path, err)
	}

	var envelope dto.Envelope
	var data dto.EnvelopeData
	if err := json.Unmarshal(respBody, &envelope); err == nil && len(envelope.Data) > 0 {
		// El mensaje de error (o el id) viene dentro de data; si data no es
		// un objeto se ignora sin fallar.
		_ = json.Unmarshal(envelope.Data, &data)
	}

	if resp.StatusCode != http.StatusOK {
		msg := data.Message
		if msg == "" {
			msg = resp.Status
		}
		return nil, fmt.Errorf("%s: %s: %w", path, msg, domain.ErrAPIRejected)
	}
	return &data, nil
}
