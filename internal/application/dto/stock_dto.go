package dto

import "time"

// CreateStockInRequest entrada para registrar una entrada de mercancía.
type CreateStockInRequest struct {
	ProductID     string `json:"product_id" validate:"required"`
	Quantity      int    `json:"quantity" validate:"required,min=1"`
	Supplier      string `json:"supplier" validate:"required,min=1"`
	Notes         string `json:"notes"`
	AttachmentURL string `json:"attachment_url"`
}

// StockInResponse salida de una entrada de mercancía.
type StockInResponse struct {
	ID            string    `json:"id"`
	ProductID     string    `json:"product_id"`
	Quantity      int       `json:"quantity"`
	Supplier      string    `json:"supplier"`
	Notes         string    `json:"notes,omitempty"`
	AttachmentURL string    `json:"attachment_url,omitempty"`
	CreatedBy     string    `json:"created_by"`
	CreatedAt     time.Time `json:"created_at"`
}

// CreateStockOutRequest entrada para crear una solicitud de salida.
type CreateStockOutRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Quantity  int    `json:"quantity" validate:"required,min=1"`
	Purpose   string `json:"purpose" validate:"required,min=1"`
}

// RejectStockOutRequest entrada para rechazar una solicitud (motivo obligatorio).
type RejectStockOutRequest struct {
	RejectionReason string `json:"rejection_reason" validate:"required,min=1"`
}

// StockOutResponse salida de una solicitud de salida de stock.
type StockOutResponse struct {
	ID              string     `json:"id"`
	ProductID       string     `json:"product_id"`
	RequesterID     string     `json:"requester_id"`
	Quantity        int        `json:"quantity"`
	Purpose         string     `json:"purpose"`
	Status          string     `json:"status"`
	ReviewedBy      string     `json:"reviewed_by,omitempty"`
	ReviewedAt      *time.Time `json:"reviewed_at,omitempty"`
	FulfilledBy     string     `json:"fulfilled_by,omitempty"`
	FulfilledAt     *time.Time `json:"fulfilled_at,omitempty"`
	RejectionReason string     `json:"rejection_reason,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

// MovementResponse salida de un movimiento de auditoría.
type MovementResponse struct {
	ID          string    `json:"id"`
	ProductID   string    `json:"product_id"`
	Type        string    `json:"type"`
	Quantity    int       `json:"quantity"`
	ReferenceID string    `json:"reference_id,omitempty"`
	UserID      string    `json:"user_id"`
	Notes       string    `json:"notes,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}
