package entity

import "time"

// Estados del ciclo de vida de una solicitud de salida.
const (
	StatusPending   = "pending"
	StatusApproved  = "approved"
	StatusRejected  = "rejected"
	StatusFulfilled = "fulfilled"
)

// ValidStatus indica si s es un estado conocido del ciclo de vida.
func ValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected, StatusFulfilled:
		return true
	}
	return false
}

// CanTransition valida una transición del ciclo de vida:
// pending → approved | rejected; approved → fulfilled.
// rejected y fulfilled son terminales.
func CanTransition(from, to string) bool {
	switch from {
	case StatusPending:
		return to == StatusApproved || to == StatusRejected
	case StatusApproved:
		return to == StatusFulfilled
	}
	return false
}

// StockOutRequest representa una solicitud de salida de stock.
// La aprobación NO reserva inventario; la suficiencia se verifica al despachar.
type StockOutRequest struct {
	ID              string
	ProductID       string
	RequesterID     string
	Quantity        int // >= 1
	Purpose         string
	Status          string // pending, approved, rejected, fulfilled
	ReviewedBy      string // UserID del revisor (aprobación o rechazo)
	ReviewedAt      *time.Time
	FulfilledBy     string // UserID de quien despacha; distinto del solicitante
	FulfilledAt     *time.Time
	RejectionReason string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
