package errs

import "errors"

// Error classes shared by every layer. Concrete errors are marked with one of these.
var (
	// 入力検証エラー。ネットワーク呼び出しの前に検出される
	ErrValidation = errors.New("validation error")

	// Unlock errors
	ErrUnlockNotFound = errors.New("unlock record not found")

	// Check-in errors
	ErrSessionNotFound = errors.New("check-in session not found")

	// Payment gate errors
	ErrGateNotFound = errors.New("payment gate not found")
)

// Validation wraps a plain error as a validation error.
func Validation(err error) error {
	return Mark(err, ErrValidation)
}
