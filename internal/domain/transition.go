package domain

import (
	"fmt"

	"commerce-api/internal/apperr"
)

// Order and Payment share the same state machine shape: one pending state
// and two terminal states. The transition functions are pure; callers decide
// what to do with the returned value.

func TransitionOrder(o Order, next OrderStatus) (Order, error) {
	if next != StatusPaid && next != StatusPaymentFailed {
		return Order{}, apperr.Invariant("illegal order transition",
			fmt.Sprintf("Order ID: %s, Target Status: %s", o.OrderID, next))
	}
	if o.Status != StatusPendingPayment {
		return Order{}, apperr.Invariant("order is not pending payment",
			fmt.Sprintf("Order ID: %s, Current Status: %s", o.OrderID, o.Status))
	}
	o.Status = next
	return o, nil
}

func TransitionPayment(p Payment, next PaymentStatus, resultCode, resultMessage string) (Payment, error) {
	if next != PaymentApproved && next != PaymentDeclined {
		return Payment{}, apperr.Invariant("illegal payment transition",
			fmt.Sprintf("Order ID: %s, Target Status: %s", p.OrderID, next))
	}
	if p.Status != PaymentRequested {
		return Payment{}, apperr.Invariant("payment is not in requested state",
			fmt.Sprintf("Order ID: %s, Current Status: %s", p.OrderID, p.Status))
	}
	p.Status = next
	p.PGResultCode = resultCode
	p.PGResultMessage = resultMessage
	return p, nil
}
