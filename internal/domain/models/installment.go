// internal/domain/models/installment.go
package models

import (
	"fmt"
	"time"
)

// InstallmentStatus is the payment state of a single installment.
type InstallmentStatus string

const (
	InstallmentPending InstallmentStatus = "pendente"
	InstallmentPaid    InstallmentStatus = "paga"
)

// Valid reports whether s is one of the known installment statuses.
func (s InstallmentStatus) Valid() bool {
	switch s {
	case InstallmentPending, InstallmentPaid:
		return true
	}
	return false
}

// Installment is one scheduled payment of a financial record ("parcela").
// Installments are added, edited, and removed independently of the record's
// declared installment count.
type Installment struct {
	ID        string            `bson:"_id" json:"parcela_id"`
	RecordID  string            `bson:"financeiro_id" json:"financeiro_id"`
	Number    int               `bson:"numero_parcela" json:"numero_parcela"`
	Amount    float64           `bson:"valor" json:"valor"`
	DueDate   time.Time         `bson:"data_vencimento" json:"data_vencimento"`
	Status    InstallmentStatus `bson:"status" json:"status"`
	PaidDate  *time.Time        `bson:"data_pagamento,omitempty" json:"data_pagamento,omitempty"`
	CreatedAt time.Time         `bson:"created_at" json:"created_at"`
}

// Validate enforces the installment invariants: a known status and a paid
// date set if and only if the installment is paid.
func (p *Installment) Validate() error {
	if !p.Status.Valid() {
		return fmt.Errorf("parcela: status %q inválido", p.Status)
	}
	if p.Status == InstallmentPaid && p.PaidDate == nil {
		return fmt.Errorf("parcela: data_pagamento obrigatória quando status é %q", InstallmentPaid)
	}
	if p.Status == InstallmentPending && p.PaidDate != nil {
		return fmt.Errorf("parcela: data_pagamento não permitida quando status é %q", InstallmentPending)
	}
	return nil
}
