package channel

import "context"

// ProvisionResult is what the provider returns when an instance is created
type ProvisionResult struct {
	// APIKey is the per-instance credential issued by the provider
	APIKey string
	// QRCode is the base64 pairing code, when the create response
	// already carries one.
	QRCode string
}

// Provisioner manages WhatsApp instances at the external messaging
// provider. Implementations translate provider failures to
// shared.NewExternalServiceError; DeleteInstance treats a missing
// remote instance as success.
type Provisioner interface {
	// CreateInstance provisions a named instance and returns its
	// credential and, when available, an initial pairing QR code.
	CreateInstance(ctx context.Context, instanceName string) (*ProvisionResult, error)

	// FetchQRCode requests a fresh pairing QR code for the instance
	FetchQRCode(ctx context.Context, instanceName string) (string, error)

	// ConnectionState reports the provider-side session state
	// ("open", "connecting", "close", ...).
	ConnectionState(ctx context.Context, instanceName string) (string, error)

	// DeleteInstance tears the instance down at the provider
	DeleteInstance(ctx context.Context, instanceName string) error
}
