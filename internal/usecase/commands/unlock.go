package commands

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"guest-conversion/internal/domain/appreciation"
	"guest-conversion/internal/domain/dealcode"
	"guest-conversion/internal/domain/paymentgate"
	"guest-conversion/internal/domain/unlock"
	"guest-conversion/internal/pkg/errs"
	"guest-conversion/internal/pkg/money"
	"guest-conversion/internal/usecase/queries"
	"guest-conversion/internal/usecase/shared"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

type CancelResult struct {
	Message  string
	Snapshot *unlock.Snapshot
}

type AppreciationRequest struct {
	UnlockID   string
	PropertyID string
	Level      string
	Feedback   string
}

// AppreciationResult.DealCode is empty when no code was minted; success and
// "code present" are independent.
type AppreciationResult struct {
	DealCode string
	Outcome  appreciation.Outcome
	Message  string
	Snapshot *unlock.Snapshot
	Ledger   *dealcode.Ledger
}

type BookingRequest struct {
	CheckIn         time.Time
	CheckOut        time.Time
	Guests          int
	SpecialRequests string
	TotalPrice      money.Amount
}

type BookingResult struct {
	BookingID string
	Message   string
	Gate      *paymentgate.State
	Snapshot  *unlock.Snapshot
}

type UnlockCommands interface {
	Cancel(ctx context.Context, guest uuid.UUID, unlockID, reason string) (*CancelResult, error)
	SubmitAppreciation(ctx context.Context, guest uuid.UUID, req AppreciationRequest) (*AppreciationResult, error)
	ConvertToBooking(ctx context.Context, guest uuid.UUID, unlockID string, req BookingRequest) (*BookingResult, error)
}

type unlockCommandsImpl struct {
	gateway   shared.MarketplaceGateway
	unlocks   queries.UnlockQueries
	dealCodes queries.DealCodeQueries
	engine    *appreciation.Engine
	inflight  *InFlight
	gates     gateOpener
	notify    notifier
	logger    *slog.Logger
}

func NewUnlockCommands(
	gateway shared.MarketplaceGateway,
	unlocks queries.UnlockQueries,
	dealCodes queries.DealCodeQueries,
	engine *appreciation.Engine,
	inflight *InFlight,
	registry *paymentgate.Registry,
	trigger string,
	n shared.Notifier,
	logger *slog.Logger,
) UnlockCommands {
	nt := notifier{target: n, logger: logger}
	return &unlockCommandsImpl{
		gateway:   gateway,
		unlocks:   unlocks,
		dealCodes: dealCodes,
		engine:    engine,
		inflight:  inflight,
		gates:     gateOpener{registry: registry, trigger: trigger, notify: nt},
		notify:    nt,
		logger:    logger,
	}
}

func (c *unlockCommandsImpl) Cancel(ctx context.Context, guest uuid.UUID, unlockID, reason string) (*CancelResult, error) {
	unlockID = strings.TrimSpace(unlockID)
	if unlockID == "" {
		return nil, errs.Validation(ErrEmptyUnlockID)
	}
	if strings.TrimSpace(reason) == "" {
		return nil, errs.Validation(ErrEmptyReason)
	}

	release, err := c.inflight.Acquire(unlockKey(unlockID))
	if err != nil {
		return nil, err
	}
	defer release()

	record, err := c.unlocks.Find(ctx, guest, unlockID)
	if err != nil {
		return nil, err
	}
	if err := record.CheckCancel(); err != nil {
		return nil, guardRefused(err)
	}

	mctx := context.WithoutCancel(ctx)
	ack, err := c.gateway.CancelUnlock(mctx, unlockID, reason)
	if err != nil {
		c.notify.failure(mctx, guest, err)
		return nil, err
	}
	c.logger.Info("アンロックをキャンセルしました", "guest_id", guest, "unlock_id", unlockID)
	c.notify.send(mctx, guest, shared.LevelSuccess, shared.TopicUnlockCancelled, ack.Message,
		map[string]string{"unlock_id": unlockID})

	return &CancelResult{
		Message:  ack.Message,
		Snapshot: c.refreshUnlocks(mctx, guest),
	}, nil
}

func (c *unlockCommandsImpl) SubmitAppreciation(ctx context.Context, guest uuid.UUID, req AppreciationRequest) (*AppreciationResult, error) {
	unlockID := strings.TrimSpace(req.UnlockID)
	if unlockID == "" {
		return nil, errs.Validation(ErrEmptyUnlockID)
	}
	if strings.TrimSpace(req.Level) == "" {
		return nil, errs.Validation(ErrAppreciationNoLevel)
	}
	level, err := unlock.NewAppreciationLevel(req.Level)
	if err != nil {
		return nil, errs.Validation(err)
	}

	release, err := c.inflight.Acquire(unlockKey(unlockID))
	if err != nil {
		return nil, err
	}
	defer release()

	record, err := c.unlocks.Find(ctx, guest, unlockID)
	if err != nil {
		return nil, err
	}
	if err := record.CheckAppreciation(); err != nil {
		return nil, guardRefused(err)
	}

	propertyID := strings.TrimSpace(req.PropertyID)
	if propertyID == "" {
		propertyID = record.PropertyID()
	}

	mctx := context.WithoutCancel(ctx)
	resp, err := c.gateway.SubmitAppreciation(mctx, shared.AppreciationInput{
		UnlockID:   unlockID,
		PropertyID: propertyID,
		Level:      level,
		Feedback:   req.Feedback,
	})
	if err != nil {
		c.notify.failure(mctx, guest, err)
		return nil, err
	}

	outcome := c.engine.Decide(level, *resp)
	if outcome.ExpectedCodeMissing {
		c.logger.Error("ディールコード生成済みと応答されたがコードが含まれていません",
			"guest_id", guest, "unlock_id", unlockID)
	}

	result := &AppreciationResult{
		DealCode: outcome.DealCode,
		Outcome:  outcome,
		Message:  outcome.UserMessage,
	}
	// 報酬によってガードが変わるため、アンロックとディールコードの両方を取り直す
	result.Snapshot, result.Ledger = c.refreshAll(mctx, guest)

	c.logger.Info("評価を送信しました",
		"guest_id", guest, "unlock_id", unlockID, "level", level, "reward", outcome.Reward)
	if outcome.HasDealCode() {
		c.notify.send(mctx, guest, shared.LevelSuccess, shared.TopicDealCodeIssued, outcome.UserMessage,
			map[string]string{"unlock_id": unlockID, "deal_code": outcome.DealCode})
	} else {
		c.notify.send(mctx, guest, shared.LevelInfo, shared.TopicAppreciationSubmitted, outcome.UserMessage,
			map[string]string{"unlock_id": unlockID})
	}
	return result, nil
}

func (c *unlockCommandsImpl) ConvertToBooking(ctx context.Context, guest uuid.UUID, unlockID string, req BookingRequest) (*BookingResult, error) {
	unlockID = strings.TrimSpace(unlockID)
	if unlockID == "" {
		return nil, errs.Validation(ErrEmptyUnlockID)
	}
	if req.CheckIn.IsZero() || req.CheckOut.IsZero() || !req.CheckOut.After(req.CheckIn) {
		return nil, errs.Validation(ErrInvalidStayDates)
	}
	if req.Guests < 1 {
		return nil, errs.Validation(ErrInvalidGuestCount)
	}

	release, err := c.inflight.Acquire(unlockKey(unlockID))
	if err != nil {
		return nil, err
	}
	defer release()

	record, err := c.unlocks.Find(ctx, guest, unlockID)
	if err != nil {
		return nil, err
	}
	if err := record.CheckBooking(); err != nil {
		return nil, guardRefused(err)
	}

	mctx := context.WithoutCancel(ctx)
	created, callErr := c.gateway.CreateBooking(mctx, unlockID, shared.BookingInput{
		CheckIn:         req.CheckIn,
		CheckOut:        req.CheckOut,
		Guests:          req.Guests,
		SpecialRequests: req.SpecialRequests,
		TotalPrice:      req.TotalPrice,
	})

	var ack *shared.Ack
	if created != nil {
		ack = &created.Ack
	}
	subject := paymentgate.Subject{Kind: paymentgate.SubjectUnlock, ID: unlockID}
	gate, gated := c.gates.open(mctx, guest, subject, ack, callErr, func(ctx context.Context) error {
		_, err := c.unlocks.Reload(ctx, guest)
		return err
	})

	if callErr != nil && !gated {
		c.notify.failure(mctx, guest, callErr)
		return nil, callErr
	}

	result := &BookingResult{Gate: gate}
	if created != nil {
		result.BookingID = created.BookingID
		result.Message = created.Message
	} else {
		result.Message, _ = paymentSignal(nil, callErr)
	}
	if gated {
		c.logger.Info("予約に現地払いが必要です", "guest_id", guest, "unlock_id", unlockID)
	}
	if result.BookingID != "" {
		c.logger.Info("アンロックから予約を作成しました",
			"guest_id", guest, "unlock_id", unlockID, "booking_id", result.BookingID)
		c.notify.send(mctx, guest, shared.LevelSuccess, shared.TopicBookingCreated, result.Message,
			map[string]string{"unlock_id": unlockID, "booking_id": result.BookingID})
	}

	// 完了フラグはローカルで立てず、リフレッシュで確認する
	result.Snapshot = c.refreshUnlocks(mctx, guest)
	return result, nil
}

// refreshUnlocks replaces the cached set; on failure the cache is dropped so
// the next read goes to the marketplace.
func (c *unlockCommandsImpl) refreshUnlocks(ctx context.Context, guest uuid.UUID) *unlock.Snapshot {
	snap, err := c.unlocks.Reload(ctx, guest)
	if err != nil {
		c.logger.Warn("操作後のアンロック再取得に失敗しました", "guest_id", guest, "error", err)
		c.unlocks.Invalidate(guest)
		return nil
	}
	return snap
}

func (c *unlockCommandsImpl) refreshAll(ctx context.Context, guest uuid.UUID) (*unlock.Snapshot, *dealcode.Ledger) {
	var (
		snap   *unlock.Snapshot
		ledger *dealcode.Ledger
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		snap = c.refreshUnlocks(gctx, guest)
		return nil
	})
	g.Go(func() error {
		l, err := c.dealCodes.Reload(gctx, guest)
		if err != nil {
			c.logger.Warn("操作後のディールコード再取得に失敗しました", "guest_id", guest, "error", err)
			c.dealCodes.Invalidate(guest)
			return nil
		}
		ledger = l
		return nil
	})
	_ = g.Wait()
	return snap, ledger
}
