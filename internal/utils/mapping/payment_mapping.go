package mapping

import (
	"time"

	"github.com/SscSPs/payment_voucher_app/internal/core/domain"
	"github.com/SscSPs/payment_voucher_app/internal/models"
	"github.com/google/uuid"
)

// ToModelPayment converts a domain PaymentVoucher to a model Payment
func ToModelPayment(d domain.PaymentVoucher) models.Payment {
	m := models.Payment{
		PaymentID:          d.PaymentID,
		PaymentDate:        d.PaymentDate,
		PartyID:            d.PartyAccountID,
		PaymentAccountID:   d.PaymentAccountID,
		Amount:             d.Amount,
		Discount:           d.Discount,
		NetAmount:          d.NetAmount,
		PaymentType:        string(d.PaymentType),
		PaymentMethod:      string(d.PaymentMethod),
		Remarks:            d.Remarks,
		MessageLineID:      d.MessageLineID,
		AppliedFromAdvance: d.AppliedFromAdvance,
		UnallocatedAmount:  d.UnallocatedAmount,
		AuditFields:        ToModelAuditFields(d.AuditFields),
	}
	if d.Cheque != nil {
		chequeNo := d.Cheque.ChequeNo
		chequeDate := d.Cheque.ChequeDate
		m.ChequeNo = &chequeNo
		m.ChequeDate = &chequeDate
		m.ChequeClearDate = d.Cheque.ChequeClearDate
	}
	return m
}

// ToDomainPayment converts a model Payment and its allocation rows to a domain PaymentVoucher
func ToDomainPayment(m models.Payment, allocations []models.PaymentAllocation) domain.PaymentVoucher {
	d := domain.PaymentVoucher{
		PaymentID: m.PaymentID,
		PaymentSubmission: domain.PaymentSubmission{
			PaymentDate:        m.PaymentDate,
			PartyAccountID:     m.PartyID,
			PaymentAccountID:   m.PaymentAccountID,
			Amount:             m.Amount,
			Discount:           m.Discount,
			NetAmount:          m.NetAmount,
			PaymentType:        domain.PaymentType(m.PaymentType),
			PaymentMethod:      domain.PaymentMethod(m.PaymentMethod),
			Remarks:            m.Remarks,
			MessageLineID:      m.MessageLineID,
			Allocations:        make([]domain.AllocationLine, len(allocations)),
			AppliedFromAdvance: m.AppliedFromAdvance,
			UnallocatedAmount:  m.UnallocatedAmount,
		},
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
	if m.ChequeNo != nil && m.ChequeDate != nil {
		d.Cheque = &domain.ChequeDetails{
			ChequeNo:        *m.ChequeNo,
			ChequeDate:      *m.ChequeDate,
			ChequeClearDate: m.ChequeClearDate,
		}
	}
	for i, a := range allocations {
		d.Allocations[i] = domain.AllocationLine{
			BillID:   a.BillID,
			BillType: domain.BillType(a.BillType),
			Amount:   a.Amount,
		}
	}
	return d
}

// ToModelAllocations converts the lines of a voucher to allocation rows with fresh IDs
func ToModelAllocations(d domain.PaymentVoucher, createdAt time.Time) []models.PaymentAllocation {
	rows := make([]models.PaymentAllocation, len(d.Allocations))
	for i, line := range d.Allocations {
		rows[i] = models.PaymentAllocation{
			AllocationID: uuid.NewString(),
			PaymentID:    d.PaymentID,
			BillID:       line.BillID,
			BillType:     string(line.BillType),
			Amount:       line.Amount,
			CreatedAt:    createdAt,
		}
	}
	return rows
}
