// internal/domain/models/financial.go
package models

import "time"

// PaymentMethod is how an enrollment is being paid for.
type PaymentMethod string

const (
	PaymentCreditCard  PaymentMethod = "cartao_credito"
	PaymentBankDeposit PaymentMethod = "deposito_bancario"
	PaymentPix         PaymentMethod = "pix"
	PaymentPayPal      PaymentMethod = "paypal"
	PaymentSpecialPlan PaymentMethod = "parcelamento_especial"
)

// Valid reports whether m is one of the known payment methods.
func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentCreditCard, PaymentBankDeposit, PaymentPix, PaymentPayPal, PaymentSpecialPlan:
		return true
	}
	return false
}

// FinancialRecord holds the agreed payment terms for one enrollment
// ("financeiro"). By convention there is at most one per enrollment, but that
// is not enforced.
//
// TotalAmount and InstallmentCount are the declared terms; the live
// installment collection is the source of truth for what was actually billed
// and paid. The two are never reconciled — the ledger keeps the declared
// total when computing outstanding amounts.
type FinancialRecord struct {
	ID               string        `bson:"_id" json:"financeiro_id"`
	EnrollmentID     string        `bson:"mentorada_mentoria_id" json:"mentorada_mentoria_id"`
	TotalAmount      float64       `bson:"valor_total" json:"valor_total"`
	PaymentMethod    PaymentMethod `bson:"forma_pagamento" json:"forma_pagamento"`
	InstallmentCount int           `bson:"numero_parcelas" json:"numero_parcelas"`
	Notes            string        `bson:"observacoes,omitempty" json:"observacoes,omitempty"`
	CreatedAt        time.Time     `bson:"created_at" json:"created_at"`
}
