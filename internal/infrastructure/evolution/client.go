package evolution

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/artistai/backend/internal/domain/channel"
	"github.com/artistai/backend/internal/domain/shared"
	"github.com/artistai/backend/internal/infrastructure/config"
	"go.uber.org/zap"
)

const serviceName = "evolution"

// Client talks to the Evolution API to provision and manage WhatsApp
// instances. All requests carry the global apikey header; per-instance
// credentials come back in the create response.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewClient creates an Evolution API client from configuration
func NewClient(cfg config.EvolutionConfig, logger *zap.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:  cfg.APIKey,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		logger: logger,
	}
}

type createInstanceRequest struct {
	InstanceName string         `json:"instanceName"`
	QRCode       bool           `json:"qrcode"`
	Integration  string         `json:"integration"`
	Webhook      *webhookConfig `json:"webhook,omitempty"`
}

type webhookConfig struct {
	URL    string   `json:"url"`
	Events []string `json:"events"`
}

type createInstanceResponse struct {
	Hash   string `json:"hash"`
	QRCode struct {
		Base64 string `json:"base64"`
	} `json:"qrcode"`
}

type connectResponse struct {
	Base64 string `json:"base64"`
	QRCode struct {
		Base64 string `json:"base64"`
	} `json:"qrcode"`
}

type connectionStateResponse struct {
	Instance struct {
		State string `json:"state"`
	} `json:"instance"`
	State string `json:"state"`
}

// CreateInstance provisions a named instance and returns its credential
// and, when the provider includes one, an initial pairing QR code.
func (c *Client) CreateInstance(ctx context.Context, instanceName string) (*channel.ProvisionResult, error) {
	payload := createInstanceRequest{
		InstanceName: instanceName,
		QRCode:       true,
		Integration:  "WHATSAPP-BAILEYS",
	}

	body, status, err := c.do(ctx, http.MethodPost, "/instance/create", payload)
	if err != nil {
		return nil, shared.NewExternalServiceError(serviceName, err)
	}
	if status != http.StatusCreated && status != http.StatusOK {
		return nil, shared.NewExternalServiceError(serviceName,
			fmt.Errorf("create instance returned status %d: %s", status, truncate(body)))
	}

	var resp createInstanceResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, shared.NewExternalServiceError(serviceName,
			fmt.Errorf("decode create instance response: %w", err))
	}
	if resp.Hash == "" {
		return nil, shared.NewExternalServiceError(serviceName,
			fmt.Errorf("create instance response missing credential"))
	}

	c.logger.Info("whatsapp instance created",
		zap.String("instance_name", instanceName),
		zap.Bool("qr_code_included", resp.QRCode.Base64 != ""))

	return &channel.ProvisionResult{
		APIKey: resp.Hash,
		QRCode: resp.QRCode.Base64,
	}, nil
}

// FetchQRCode requests a fresh pairing QR code for the instance
func (c *Client) FetchQRCode(ctx context.Context, instanceName string) (string, error) {
	body, status, err := c.do(ctx, http.MethodGet, "/instance/connect/"+instanceName, nil)
	if err != nil {
		return "", shared.NewExternalServiceError(serviceName, err)
	}
	if status != http.StatusOK {
		return "", shared.NewExternalServiceError(serviceName,
			fmt.Errorf("connect returned status %d: %s", status, truncate(body)))
	}

	var resp connectResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", shared.NewExternalServiceError(serviceName,
			fmt.Errorf("decode connect response: %w", err))
	}

	// The provider has returned the code at the top level or nested
	// depending on version.
	if resp.Base64 != "" {
		return resp.Base64, nil
	}
	if resp.QRCode.Base64 != "" {
		return resp.QRCode.Base64, nil
	}
	return "", shared.NewExternalServiceError(serviceName,
		fmt.Errorf("connect response carried no QR code"))
}

// ConnectionState reports the provider-side session state
func (c *Client) ConnectionState(ctx context.Context, instanceName string) (string, error) {
	body, status, err := c.do(ctx, http.MethodGet, "/instance/connectionState/"+instanceName, nil)
	if err != nil {
		return "", shared.NewExternalServiceError(serviceName, err)
	}
	if status != http.StatusOK {
		return "", shared.NewExternalServiceError(serviceName,
			fmt.Errorf("connectionState returned status %d: %s", status, truncate(body)))
	}

	var resp connectionStateResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", shared.NewExternalServiceError(serviceName,
			fmt.Errorf("decode connectionState response: %w", err))
	}

	if resp.Instance.State != "" {
		return resp.Instance.State, nil
	}
	return resp.State, nil
}

// DeleteInstance tears the instance down at the provider. A remote 404
// counts as success since the desired state is "gone".
func (c *Client) DeleteInstance(ctx context.Context, instanceName string) error {
	body, status, err := c.do(ctx, http.MethodDelete, "/instance/delete/"+instanceName, nil)
	if err != nil {
		return shared.NewExternalServiceError(serviceName, err)
	}
	switch status {
	case http.StatusOK, http.StatusNoContent, http.StatusNotFound:
		return nil
	default:
		return shared.NewExternalServiceError(serviceName,
			fmt.Errorf("delete instance returned status %d: %s", status, truncate(body)))
	}
}

func (c *Client) do(ctx context.Context, method, path string, payload any) ([]byte, int, error) {
	var reqBody io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return nil, 0, fmt.Errorf("encode request body: %w", err)
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return nil, 0, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("apikey", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, fmt.Errorf("read response body: %w", err)
	}
	return body, resp.StatusCode, nil
}

func truncate(body []byte) string {
	const max = 256
	if len(body) > max {
		return string(body[:max]) + "..."
	}
	return string(body)
}

var _ channel.Provisioner = (*Client)(nil)
