package notify

import (
	"context"

	"guest-conversion/internal/pkg/errs"
	"guest-conversion/internal/usecase/shared"
)

// Multi fans a notification out to every target. All targets are tried even
// when one fails; the joined error is returned.
type Multi []shared.Notifier

func (m Multi) Notify(ctx context.Context, msg shared.Notification) error {
	var errList []error
	for _, target := range m {
		if target == nil {
			continue
		}
		if err := target.Notify(ctx, msg); err != nil {
			errList = append(errList, err)
		}
	}
	return errs.Join(errList...)
}
