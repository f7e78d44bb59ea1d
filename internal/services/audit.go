package services

import (
	"context"
	"encoding/json"

	"commerce-api/internal/apperr"
	"commerce-api/internal/domain"
	"commerce-api/internal/repository"
)

// recordHistory appends one audit row inside the caller's transaction. A
// payload that cannot be serialized aborts the whole unit of work.
func recordHistory(ctx context.Context, histories repository.OrderHistoryRepository, orderID string, eventType domain.OrderEventType, payload any) error {
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return apperr.Internal("failed to serialize history payload", err)
	}

	return histories.Save(ctx, &domain.OrderHistory{
		OrderID:     orderID,
		EventType:   eventType,
		PayloadJSON: string(payloadJSON),
	})
}
