package mapping

import (
	"github.com/SscSPs/payment_voucher_app/internal/core/domain"
	"github.com/SscSPs/payment_voucher_app/internal/models"
	"github.com/SscSPs/payment_voucher_app/internal/utils/accounting"
)

// ToDomainBill converts a model Bill to a domain Bill.
// The remaining amount is what is left of the net total after earlier payments.
func ToDomainBill(m models.Bill) domain.Bill {
	return domain.Bill{
		BillID:          m.BillID,
		BillType:        domain.BillType(m.BillType),
		InvoiceNo:       m.InvoiceNo,
		BillDate:        m.BillDate,
		NetTotal:        m.NetTotal,
		RemainingAmount: accounting.FloorAtZero(m.NetTotal.Sub(m.PaidAmount)),
	}
}

// ToDomainBills converts a slice of model Bills to domain Bills
func ToDomainBills(ms []models.Bill) []domain.Bill {
	bills := make([]domain.Bill, len(ms))
	for i, m := range ms {
		bills[i] = ToDomainBill(m)
	}
	return bills
}

// ToDomainPartyBalance converts a model Party's signed balance to a domain PartyBalance
func ToDomainPartyBalance(m models.Party) domain.PartyBalance {
	magnitude, orientation := accounting.OrientBalance(m.Balance)
	return domain.PartyBalance{
		PartyID:        m.PartyID,
		CurrentBalance: magnitude,
		Orientation:    orientation,
		AdvanceAmount:  accounting.FloorAtZero(m.AdvanceBalance),
	}
}
