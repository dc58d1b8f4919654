package request

type BookingLookupRequest struct {
	BookingID string `json:"bookingId" binding:"required"`
}

// Code length is checked by the use case so the error wording stays uniform.
type ConfirmCheckInRequest struct {
	BookingID    string `json:"bookingId" binding:"required"`
	Code         string `json:"code" binding:"required"`
	Instructions string `json:"instructions" binding:"max=4000"`
}

type ResendCodeRequest struct {
	BookingID string `json:"bookingId" binding:"required"`
}

type CheckOutRequest struct {
	BookingID string `json:"bookingId" binding:"required"`
}
