package request

type VerifyPaymentRequest struct {
	Reference string `json:"reference" binding:"required,max=128"`
}
