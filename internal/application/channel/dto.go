package channel

// ConnectResponse is returned when a WhatsApp connection is initiated
type ConnectResponse struct {
	QRCode       string `json:"qr_code"`
	InstanceName string `json:"instance_name"`
	Message      string `json:"message"`
}

// StatusResponse reports the reconciled connection state
type StatusResponse struct {
	InstanceName string `json:"instance_name"`
	Status       string `json:"status"`
	Connected    bool   `json:"connected"`
}

// DisconnectResponse confirms an instance teardown
type DisconnectResponse struct {
	Message string `json:"message"`
}
