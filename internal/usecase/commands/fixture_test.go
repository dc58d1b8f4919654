//go:build unit

package commands_test

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"time"

	"guest-conversion/internal/domain/paymentgate"
	"guest-conversion/internal/domain/unlock"
	"guest-conversion/internal/infra/cache"
	"guest-conversion/internal/pkg/clock"
	"guest-conversion/internal/usecase/queries"
	"guest-conversion/internal/usecase/shared"
	sharedmock "guest-conversion/tests/mock/shared"

	"github.com/google/uuid"
	"go.uber.org/mock/gomock"
)

const paymentMessage = "This booking requires payment at the property"

var fixedNow = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

type redirectCall struct {
	owner   uuid.UUID
	subject paymentgate.Subject
	url     string
}

type recordingRedirector struct {
	mu    sync.Mutex
	calls []redirectCall
}

func (r *recordingRedirector) Redirect(_ context.Context, owner uuid.UUID, subject paymentgate.Subject, url string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, redirectCall{owner: owner, subject: subject, url: url})
	return nil
}

// sentNotifications collects what the notifier mock received.
type sentNotifications struct {
	mu  sync.Mutex
	all []shared.Notification
}

func (s *sentNotifications) record(n *sharedmock.MockNotifier) {
	n.EXPECT().Notify(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, msg shared.Notification) error {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.all = append(s.all, msg)
		return nil
	}).AnyTimes()
}

func (s *sentNotifications) topics() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, 0, len(s.all))
	for _, n := range s.all {
		out = append(out, n.Topic)
	}
	return out
}

func (s *sentNotifications) last() shared.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.all) == 0 {
		return shared.Notification{}
	}
	return s.all[len(s.all)-1]
}

func silentLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type queryDeps struct {
	unlocks   queries.UnlockQueries
	dealCodes queries.DealCodeQueries
}

func newQueryDeps(gateway shared.MarketplaceGateway, clk clock.Clock, logger *slog.Logger) queryDeps {
	unlockStore, err := cache.NewUnlockRecordStore(16)
	if err != nil {
		panic(err)
	}
	ledgerStore, err := cache.NewDealCodeLedger(16)
	if err != nil {
		panic(err)
	}
	return queryDeps{
		unlocks:   queries.NewUnlockQueries(gateway, unlockStore, clk, logger),
		dealCodes: queries.NewDealCodeQueries(gateway, ledgerStore, clk, logger),
	}
}

func statsOf(specs ...unlock.RecordSpec) *shared.UnlockStats {
	return &shared.UnlockStats{Records: specs, Stats: unlock.Stats{Total: len(specs)}}
}
