package pagination

import (
	"encoding/base64"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeToken(t *testing.T) {
	cursor := Cursor{
		PaymentDate: time.Date(2023, 5, 15, 0, 0, 0, 0, time.UTC),
		CreatedAt:   time.Date(2023, 5, 15, 14, 30, 45, 123456789, time.UTC),
		PaymentID:   "6b1f0b7e-9d3a-4a55-9c57-1f6f6c1d2e9a",
	}

	token := EncodeToken(cursor)
	assert.NotEmpty(t, token)
	assert.NotContains(t, token, "=")
	assert.NotContains(t, token, "/")

	decoded, err := DecodeToken(token)
	require.NoError(t, err)
	assert.True(t, cursor.PaymentDate.Equal(decoded.PaymentDate))
	assert.True(t, cursor.CreatedAt.Equal(decoded.CreatedAt))
	assert.Equal(t, cursor.PaymentID, decoded.PaymentID)

	// Zero time values survive as well
	decodedZero, err := DecodeToken(EncodeToken(Cursor{PaymentID: "p"}))
	require.NoError(t, err)
	assert.True(t, decodedZero.PaymentDate.IsZero())
	assert.True(t, decodedZero.CreatedAt.IsZero())
}

func TestDecodeTokenError(t *testing.T) {
	encode := func(s string) string { return base64.RawURLEncoding.EncodeToString([]byte(s)) }

	tests := []struct {
		name    string
		token   string
		wantErr string
	}{
		{"not base64", "this is not base64!", "base64 decode"},
		{"missing separator", encode("2023-05-15T00:00:00Z"), "split"},
		{"missing id", encode("2023-05-15T00:00:00Z|2023-05-15T00:00:00Z|"), "split"},
		{"bad payment date", encode("notadate|2023-05-15T14:30:45Z|p1"), "payment date parse"},
		{"bad created at", encode("2023-05-15T00:00:00Z|notatime|p1"), "created_at parse"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeToken(tt.token)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
