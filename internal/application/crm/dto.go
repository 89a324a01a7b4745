package crm

import (
	"time"

	"github.com/artistai/backend/internal/domain/crm"
	"github.com/google/uuid"
)

// CreateContractorRequest represents a request to create a contractor
type CreateContractorRequest struct {
	Name    string     `json:"name" binding:"required,min=1,max=255"`
	Phone   string     `json:"phone" binding:"required,min=1,max=20"`
	CpfCnpj *string    `json:"cpf_cnpj" binding:"omitempty,max=18"`
	Email   *string    `json:"email" binding:"omitempty,email"`
	StageID *uuid.UUID `json:"stage_id"`
}

// UpdateContractorRequest represents a partial update to a contractor
type UpdateContractorRequest struct {
	Name    *string `json:"name" binding:"omitempty,min=1,max=255"`
	Phone   *string `json:"phone" binding:"omitempty,min=1,max=20"`
	CpfCnpj *string `json:"cpf_cnpj" binding:"omitempty,max=18"`
	Email   *string `json:"email" binding:"omitempty,email"`
}

// AssignStageRequest moves a contractor into a pipeline stage
type AssignStageRequest struct {
	StageID *uuid.UUID `json:"stage_id"`
}

// ContractorResponse represents a contractor in API responses
type ContractorResponse struct {
	ID        uuid.UUID  `json:"id"`
	Name      string     `json:"name"`
	Phone     string     `json:"phone"`
	CpfCnpj   *string    `json:"cpf_cnpj"`
	Email     *string    `json:"email"`
	StageID   *uuid.UUID `json:"stage_id"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// ToContractorResponse converts a domain contractor to a response DTO
func ToContractorResponse(contractor *crm.Contractor) *ContractorResponse {
	return &ContractorResponse{
		ID:        contractor.ID,
		Name:      contractor.Name,
		Phone:     contractor.Phone,
		CpfCnpj:   contractor.CpfCnpj,
		Email:     contractor.Email,
		StageID:   contractor.StageID,
		CreatedAt: contractor.CreatedAt,
		UpdatedAt: contractor.UpdatedAt,
	}
}

// CreateStageRequest represents a request to create a pipeline stage
type CreateStageRequest struct {
	Name  string `json:"name" binding:"required,min=1,max=100"`
	Order *int   `json:"order"`
}

// UpdateStageRequest represents a partial update to a stage
type UpdateStageRequest struct {
	Name  *string `json:"name" binding:"omitempty,min=1,max=100"`
	Order *int    `json:"order"`
}

// ReorderStagesRequest applies a new ordering to several stages at once
type ReorderStagesRequest struct {
	Stages []StageOrderItem `json:"stages" binding:"required,min=1,dive"`
}

// StageOrderItem is one (id, order) pair of a reorder request
type StageOrderItem struct {
	ID    uuid.UUID `json:"id" binding:"required"`
	Order int       `json:"order"`
}

// StageResponse represents a stage in API responses
type StageResponse struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	Order           int       `json:"order"`
	ContractorCount int64     `json:"contractor_count"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// ToStageResponse converts a domain stage to a response DTO
func ToStageResponse(stage *crm.PipelineStage, contractorCount int64) *StageResponse {
	return &StageResponse{
		ID:              stage.ID,
		Name:            stage.Name,
		Order:           stage.Order,
		ContractorCount: contractorCount,
		CreatedAt:       stage.CreatedAt,
		UpdatedAt:       stage.UpdatedAt,
	}
}

// CreateNoteRequest represents a request to attach a note to a contractor
type CreateNoteRequest struct {
	ContractorID uuid.UUID `json:"contractor_id" binding:"required"`
	Content      string    `json:"content" binding:"required,min=1"`
}

// UpdateNoteRequest replaces a note's content
type UpdateNoteRequest struct {
	Content string `json:"content" binding:"required,min=1"`
}

// NoteResponse represents a note in API responses
type NoteResponse struct {
	ID           uuid.UUID `json:"id"`
	ContractorID uuid.UUID `json:"contractor_id"`
	Content      string    `json:"content"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// ToNoteResponse converts a domain note to a response DTO
func ToNoteResponse(note *crm.Note) *NoteResponse {
	return &NoteResponse{
		ID:           note.ID,
		ContractorID: note.ContractorID,
		Content:      note.Content,
		CreatedAt:    note.CreatedAt,
		UpdatedAt:    note.UpdatedAt,
	}
}
