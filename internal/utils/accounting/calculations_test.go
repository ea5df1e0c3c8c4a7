package accounting

import (
	"testing"

	"github.com/SscSPs/payment_voucher_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestRoundMoney(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"10.005", "10.01"},
		{"10.004", "10"},
		{"-10.005", "-10.01"},
		{"99.999", "100"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.True(t, d(tt.want).Equal(RoundMoney(d(tt.in))), "got %s", RoundMoney(d(tt.in)))
		})
	}
}

func TestFloorAtZero(t *testing.T) {
	assert.True(t, FloorAtZero(d("-0.01")).IsZero())
	assert.True(t, d("5").Equal(FloorAtZero(d("5"))))
}

func TestSumAmounts(t *testing.T) {
	assert.True(t, SumAmounts(nil).IsZero())
	assert.True(t, d("800").Equal(SumAmounts(map[string]decimal.Decimal{"1": d("500"), "2": d("300")})))
}

func TestOrientBalance_RoundTrip(t *testing.T) {
	for _, in := range []string{"250.50", "-250.50", "0"} {
		mag, orientation := OrientBalance(d(in))
		assert.False(t, mag.IsNegative())

		signed, err := SignedBalance(mag, orientation)
		require.NoError(t, err)
		assert.True(t, d(in).Equal(signed))
	}
	_, orientation := OrientBalance(d("-1"))
	assert.Equal(t, domain.OrientationCredit, orientation)
}

func TestSignedBalance_UnknownOrientation(t *testing.T) {
	_, err := SignedBalance(d("1"), domain.Orientation("XX"))
	assert.Error(t, err)
}

func TestSettlementDelta(t *testing.T) {
	in, err := SettlementDelta(domain.PaymentTypeInbound, d("100"))
	require.NoError(t, err)
	assert.True(t, d("-100").Equal(in))

	out, err := SettlementDelta(domain.PaymentTypeOutbound, d("100"))
	require.NoError(t, err)
	assert.True(t, d("100").Equal(out))

	_, err = SettlementDelta(domain.PaymentType("SIDEWAYS"), d("100"))
	assert.Error(t, err)
}

func TestNextAdvance(t *testing.T) {
	next, err := NextAdvance(d("200"), d("150"), d("0"))
	require.NoError(t, err)
	assert.True(t, d("50").Equal(next))

	next, err = NextAdvance(d("0"), d("0"), d("75"))
	require.NoError(t, err)
	assert.True(t, d("75").Equal(next))

	_, err = NextAdvance(d("100"), d("100.01"), d("0"))
	assert.Error(t, err)
}
