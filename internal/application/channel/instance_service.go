package channel

import (
	"context"
	"errors"

	"github.com/artistai/backend/internal/domain/channel"
	"github.com/artistai/backend/internal/domain/shared"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// InstanceService drives the WhatsApp instance lifecycle against the
// external provisioning API, keeping the local record reconciled with
// the provider-side session.
type InstanceService struct {
	instanceRepo channel.InstanceRepository
	provisioner  channel.Provisioner
	logger       *zap.Logger
}

// NewInstanceService creates a new InstanceService
func NewInstanceService(
	instanceRepo channel.InstanceRepository,
	provisioner channel.Provisioner,
	logger *zap.Logger,
) *InstanceService {
	return &InstanceService{
		instanceRepo: instanceRepo,
		provisioner:  provisioner,
		logger:       logger,
	}
}

// Connect tears down any previous instance, provisions a fresh one and
// returns the pairing QR code. The local record is persisted in
// pending state until the status endpoint observes an open session.
func (s *InstanceService) Connect(ctx context.Context, userID uuid.UUID) (*ConnectResponse, error) {
	instanceName := channel.InstanceNameFor(userID)

	// Teardown first so a half-paired session never lingers at the
	// provider under the same name.
	if err := s.instanceRepo.DeleteByUser(ctx, userID); err != nil {
		return nil, err
	}
	if err := s.provisioner.DeleteInstance(ctx, instanceName); err != nil {
		s.logger.Warn("stale instance teardown failed",
			zap.String("instance_name", instanceName), zap.Error(err))
	}

	result, err := s.provisioner.CreateInstance(ctx, instanceName)
	if err != nil {
		return nil, err
	}

	qrCode := result.QRCode
	if qrCode == "" {
		qrCode, err = s.provisioner.FetchQRCode(ctx, instanceName)
		if err != nil {
			return nil, err
		}
	}

	var apiKey *string
	if result.APIKey != "" {
		apiKey = &result.APIKey
	}
	instance := channel.NewInstance(userID, apiKey)
	if err := s.instanceRepo.Save(ctx, instance); err != nil {
		return nil, err
	}

	s.logger.Info("whatsapp connection initiated",
		zap.String("instance_name", instanceName))

	return &ConnectResponse{
		QRCode:       qrCode,
		InstanceName: instanceName,
		Message:      "QR code generated, scan to pair",
	}, nil
}

// Status reconciles the stored instance with the provider session
// state. When the provider is unreachable the stored state is answered
// instead of an error.
func (s *InstanceService) Status(ctx context.Context, userID uuid.UUID) (*StatusResponse, error) {
	instance, err := s.instanceRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	state, err := s.provisioner.ConnectionState(ctx, instance.InstanceName)
	if err != nil {
		s.logger.Warn("connection state check failed, answering stored state",
			zap.String("instance_name", instance.InstanceName), zap.Error(err))
		return &StatusResponse{
			InstanceName: instance.InstanceName,
			Status:       string(instance.Status),
			Connected:    instance.Status == channel.InstanceConnected,
		}, nil
	}

	connected := state == "open"
	newStatus := channel.InstanceDisconnected
	if connected {
		newStatus = channel.InstanceConnected
	}

	if instance.Status != newStatus {
		if connected {
			instance.MarkConnected()
		} else {
			instance.MarkDisconnected()
		}
		if err := s.instanceRepo.Save(ctx, instance); err != nil {
			return nil, err
		}
	}

	return &StatusResponse{
		InstanceName: instance.InstanceName,
		Status:       string(newStatus),
		Connected:    connected,
	}, nil
}

// Reconnect drops the current instance everywhere and connects again
func (s *InstanceService) Reconnect(ctx context.Context, userID uuid.UUID) (*ConnectResponse, error) {
	instance, err := s.instanceRepo.FindByUser(ctx, userID)
	if err == nil {
		if err := s.provisioner.DeleteInstance(ctx, instance.InstanceName); err != nil {
			s.logger.Warn("instance teardown failed during reconnect",
				zap.String("instance_name", instance.InstanceName), zap.Error(err))
		}
		if err := s.instanceRepo.DeleteByUser(ctx, userID); err != nil {
			return nil, err
		}
	} else if !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}

	return s.Connect(ctx, userID)
}

// Disconnect removes the instance at the provider and locally. The
// provider call is best effort; the local record always goes.
func (s *InstanceService) Disconnect(ctx context.Context, userID uuid.UUID) (*DisconnectResponse, error) {
	instance, err := s.instanceRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	if err := s.provisioner.DeleteInstance(ctx, instance.InstanceName); err != nil {
		s.logger.Warn("provider teardown failed, removing local record anyway",
			zap.String("instance_name", instance.InstanceName), zap.Error(err))
	}

	if err := s.instanceRepo.DeleteByUser(ctx, userID); err != nil {
		return nil, err
	}

	return &DisconnectResponse{Message: "WhatsApp instance disconnected"}, nil
}
