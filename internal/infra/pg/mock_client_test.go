package pg

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMockClient_Approve(t *testing.T) {
	tests := []struct {
		name        string
		paymentKey  string
		amount      int64
		wantSuccess bool
		wantCode    string
	}{
		{name: "plain key approves", paymentKey: "pay_abc123", amount: 258000, wantSuccess: true, wantCode: "0000"},
		{name: "zero amount approves", paymentKey: "pay_abc123", amount: 0, wantSuccess: true, wantCode: "0000"},
		{name: "fail prefix declines", paymentKey: "FAIL-pay_abc123", amount: 258000, wantSuccess: false, wantCode: "PG_INVALID_KEY"},
		{name: "bare fail prefix declines", paymentKey: "FAIL", amount: 258000, wantSuccess: false, wantCode: "PG_INVALID_KEY"},
		{name: "negative amount declines", paymentKey: "pay_abc123", amount: -1, wantSuccess: false, wantCode: "PG_INVALID_AMOUNT"},
		{name: "fail prefix wins over negative amount", paymentKey: "FAIL-x", amount: -1, wantSuccess: false, wantCode: "PG_INVALID_KEY"},
	}

	client := NewMockClient()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := client.Approve(context.Background(), tt.paymentKey, "ORD-20260831-deadbeef", tt.amount)

			assert.NoError(t, err)
			assert.Equal(t, tt.wantSuccess, result.Success)
			assert.Equal(t, tt.wantCode, result.ResultCode)
			assert.NotEmpty(t, result.ResultMessage)
		})
	}
}
