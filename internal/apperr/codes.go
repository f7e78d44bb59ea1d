package apperr

const (
	CodeProductNotFound        = "PRODUCT_NOT_FOUND"
	CodeProductNotAvailable    = "PRODUCT_NOT_AVAILABLE"
	CodeOutOfStock             = "OUT_OF_STOCK"
	CodeQuantityInvalid        = "QUANTITY_INVALID"
	CodeOrderNotFound          = "ORDER_NOT_FOUND"
	CodeOrderNotPayable        = "ORDER_NOT_PAYABLE"
	CodePaymentAlreadyApproved = "PAYMENT_ALREADY_APPROVED"
	CodeAmountMismatch         = "AMOUNT_MISMATCH"
	CodePGApprovalFailed       = "PG_APPROVAL_FAILED"
	CodeIllegalState           = "ILLEGAL_STATE"
	CodeInternal               = "INTERNAL_SERVER_ERROR"
)
