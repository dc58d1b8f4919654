package paymentgate

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"guest-conversion/internal/pkg/clock"
	"guest-conversion/internal/pkg/fingerprint"

	"github.com/google/uuid"
)

const redirectTimeout = 5 * time.Second

type Gate struct {
	mu sync.Mutex

	id         uuid.UUID
	owner      uuid.UUID
	subject    Subject
	paymentURL string
	countdown  int
	phase      Phase
	verified   bool
	verifying  bool
	refFP      string
	openedAt   time.Time

	redirected   bool
	redirectedAt *time.Time

	clock      clock.Clock
	redirector Redirector
	onVerified RefetchFunc
	logger     *slog.Logger

	ticker   clock.Ticker
	done     chan struct{}
	stopOnce sync.Once
}

// VerifyResult.Dismissed is true when the gate was closed while the payment
// was being confirmed; the parent record is then not re-fetched.
type VerifyResult struct {
	State      State
	Dismissed  bool
	RefetchErr error
}

func newGate(owner uuid.UUID, subject Subject, paymentURL string, countdown int, clk clock.Clock, redirector Redirector, onVerified RefetchFunc, logger *slog.Logger) *Gate {
	if countdown < 0 {
		countdown = 0
	}
	return &Gate{
		id:         uuid.New(),
		owner:      owner,
		subject:    subject,
		paymentURL: strings.TrimSpace(paymentURL),
		countdown:  countdown,
		phase:      PhaseHidden,
		openedAt:   clk.Now(),
		clock:      clk,
		redirector: redirector,
		onVerified: onVerified,
		logger:     logger,
		done:       make(chan struct{}),
	}
}

// start enters Shown and launches the countdown owned by this gate.
func (g *Gate) start() {
	g.mu.Lock()
	g.phase = PhaseShown
	if g.countdown == 0 {
		fire := g.markRedirectedLocked()
		g.mu.Unlock()
		if fire {
			g.redirect()
		}
		return
	}
	g.ticker = g.clock.NewTicker(TickInterval)
	ticks := g.ticker.C()
	g.mu.Unlock()

	go g.run(ticks)
}

func (g *Gate) run(ticks <-chan time.Time) {
	for {
		select {
		case <-g.done:
			return
		case <-ticks:
			if g.tick() {
				g.redirect()
				return
			}
		}
	}
}

// tick reports true exactly once: when the countdown reaches zero.
func (g *Gate) tick() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.phase != PhaseShown {
		return false
	}
	if g.countdown > 0 {
		g.countdown--
	}
	if g.countdown > 0 {
		return false
	}
	return g.markRedirectedLocked()
}

func (g *Gate) markRedirectedLocked() bool {
	if g.redirected {
		return false
	}
	g.redirected = true
	now := g.clock.Now()
	g.redirectedAt = &now
	g.phase = PhaseAutoRedirected
	g.stopLocked()
	return true
}

func (g *Gate) redirect() {
	ctx, cancel := context.WithTimeout(context.Background(), redirectTimeout)
	defer cancel()
	if err := g.redirector.Redirect(ctx, g.owner, g.subject, g.paymentURL); err != nil {
		g.logger.Warn("支払いページへのリダイレクトに失敗しました",
			"gate_id", g.id, "subject", g.subject.String(), "error", err)
		return
	}
	g.logger.Info("支払いページへ自動リダイレクトしました", "gate_id", g.id, "subject", g.subject.String())
}

// Verify confirms payment with the collector. A failure leaves the gate as it was.
func (g *Gate) Verify(ctx context.Context, reference string, collector Collector) (VerifyResult, error) {
	reference = strings.TrimSpace(reference)
	if reference == "" {
		return VerifyResult{}, ErrEmptyReference
	}

	g.mu.Lock()
	switch {
	case g.phase == PhaseVerified:
		g.mu.Unlock()
		return VerifyResult{}, ErrAlreadyVerified
	case !g.phase.IsOpen():
		g.mu.Unlock()
		return VerifyResult{}, ErrGateClosed
	case g.verifying:
		g.mu.Unlock()
		return VerifyResult{}, ErrVerificationInFlight
	}
	g.verifying = true
	g.mu.Unlock()

	err := collector.CollectPayment(ctx, reference)

	g.mu.Lock()
	g.verifying = false
	if err != nil {
		g.mu.Unlock()
		return VerifyResult{}, err
	}
	if g.phase == PhaseClosed {
		state := g.stateLocked()
		g.mu.Unlock()
		g.logger.Info("ゲートが閉じられた後に支払いが確認されました", "gate_id", g.id, "subject", g.subject.String())
		return VerifyResult{State: state, Dismissed: true}, nil
	}
	g.phase = PhaseVerified
	g.verified = true
	g.refFP = fingerprint.Reference(reference)
	g.stopLocked()
	state := g.stateLocked()
	onVerified := g.onVerified
	g.mu.Unlock()

	res := VerifyResult{State: state}
	if onVerified != nil {
		res.RefetchErr = onVerified(ctx)
	}
	return res, nil
}

// Close dismisses the gate; the countdown stops and no redirect follows.
func (g *Gate) Close() {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.phase == PhaseVerified || g.phase == PhaseClosed {
		return
	}
	g.phase = PhaseClosed
	g.stopLocked()
}

func (g *Gate) stopLocked() {
	g.stopOnce.Do(func() {
		if g.ticker != nil {
			g.ticker.Stop()
		}
		close(g.done)
	})
}

func (g *Gate) State() State {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.stateLocked()
}

func (g *Gate) stateLocked() State {
	s := State{
		ID:                   g.id,
		Owner:                g.owner,
		Subject:              g.subject,
		PaymentURL:           g.paymentURL,
		Countdown:            g.countdown,
		Phase:                g.phase,
		Verified:             g.verified,
		ReferenceFingerprint: g.refFP,
		OpenedAt:             g.openedAt,
	}
	if g.redirectedAt != nil {
		t := *g.redirectedAt
		s.RedirectedAt = &t
	}
	return s
}

func (g *Gate) ID() uuid.UUID    { return g.id }
func (g *Gate) Owner() uuid.UUID { return g.owner }
func (g *Gate) Subject() Subject { return g.subject }
