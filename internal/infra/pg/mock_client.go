package pg

import (
	"context"
	"log/slog"
	"strings"
)

// FailKeyPrefix marks a payment key the mock gateway always declines.
const FailKeyPrefix = "FAIL"

// MockClient simulates the gateway deterministically: keys starting with
// FailKeyPrefix and negative amounts are declined, everything else approved.
type MockClient struct{}

func NewMockClient() *MockClient {
	return &MockClient{}
}

func (c *MockClient) Approve(ctx context.Context, paymentKey, orderID string, amount int64) (*ApprovalResult, error) {
	if strings.HasPrefix(paymentKey, FailKeyPrefix) {
		slog.Warn("pg approval declined", "orderId", orderID, "reason", "invalid key")
		return Declined("PG_INVALID_KEY", "invalid payment key"), nil
	}

	if amount < 0 {
		slog.Warn("pg approval declined", "orderId", orderID, "reason", "invalid amount", "amount", amount)
		return Declined("PG_INVALID_AMOUNT", "invalid payment amount"), nil
	}

	return Approved(), nil
}

var _ ClientInterface = (*MockClient)(nil)
