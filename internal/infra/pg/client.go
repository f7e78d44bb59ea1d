// Package pg talks to the external payment gateway. The gateway is a pure
// verdict service: it never touches local state.
package pg

import "context"

type ApprovalResult struct {
	Success       bool   `json:"success"`
	ResultCode    string `json:"resultCode"`
	ResultMessage string `json:"resultMessage"`
}

func Approved() *ApprovalResult {
	return &ApprovalResult{Success: true, ResultCode: "0000", ResultMessage: "approved"}
}

func Declined(resultCode, resultMessage string) *ApprovalResult {
	return &ApprovalResult{Success: false, ResultCode: resultCode, ResultMessage: resultMessage}
}

type ClientInterface interface {
	Approve(ctx context.Context, paymentKey, orderID string, amount int64) (*ApprovalResult, error)
}
