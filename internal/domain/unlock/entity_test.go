//go:build unit

package unlock_test

import (
	"testing"

	"guest-conversion/internal/domain/unlock"
	"guest-conversion/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.UnlockBuilder)
	errIs  error
}

func TestNewRecord(t *testing.T) {
	t.Run("基本成功ケース", func(t *testing.T) {
		r, err := builder.NewUnlockBuilder().BuildDomain()
		require.NoError(t, err)

		assert.Equal(t, "U1", r.ID())
		assert.Equal(t, unlock.PaymentMonthlyBooking, r.PaymentMethod())
		assert.Equal(t, "25.00", r.AmountPaid().String())
		assert.Equal(t, unlock.PhaseFeedbackPending, r.Phase())
	})

	t.Run("入力検証", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "ID空NG",
				mutate: func(b *builder.UnlockBuilder) { b.WithID("  ") },
				errIs:  unlock.ErrMissingID,
			},
			{
				name:   "不明な支払い方法NG",
				mutate: func(b *builder.UnlockBuilder) { b.Spec.PaymentMethod = "card" },
				errIs:  unlock.ErrInvalidPaymentMethod,
			},
			{
				name:   "不明なステータスNG",
				mutate: func(b *builder.UnlockBuilder) { b.Spec.Status = "pending" },
				errIs:  unlock.ErrInvalidStatus,
			},
			{
				name:   "不明な評価レベルNG",
				mutate: func(b *builder.UnlockBuilder) { b.Appreciated("loved") },
				errIs:  unlock.ErrInvalidAppreciationLevel,
			},
		})
	})

	t.Run("整合性検証", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "予約完了なのに予約IDなしNG",
				mutate: func(b *builder.UnlockBuilder) { b.Booked("") },
				errIs:  unlock.ErrInconsistentRecord,
			},
			{
				name: "評価済みなのにレベルなしNG",
				mutate: func(b *builder.UnlockBuilder) {
					b.Spec.AppreciationSubmitted = true
				},
				errIs: unlock.ErrInconsistentRecord,
			},
			{
				name: "キャンセル済みかつ予約済みNG",
				mutate: func(b *builder.UnlockBuilder) {
					b.Booked("B1")
					b.Spec.Status = unlock.StatusCancelled
				},
				errIs: unlock.ErrInconsistentRecord,
			},
			{
				name: "non_refundable で canCancel NG",
				mutate: func(b *builder.UnlockBuilder) {
					b.NonRefundable()
					b.Spec.Guards.CanCancel = true
				},
				errIs: unlock.ErrInconsistentRecord,
			},
			{
				name: "キャンセル済みで canCancel NG",
				mutate: func(b *builder.UnlockBuilder) {
					b.Cancelled()
					b.Spec.Guards.CanCancel = true
				},
				errIs: unlock.ErrInconsistentRecord,
			},
			{
				name: "予約済みで canBook NG",
				mutate: func(b *builder.UnlockBuilder) {
					b.Booked("B1")
					b.Spec.Guards.CanBook = true
				},
				errIs: unlock.ErrInconsistentRecord,
			},
			{
				name:   "appreciated で canBook OK",
				mutate: func(b *builder.UnlockBuilder) { b.Appreciated(unlock.LevelAppreciated) },
			},
		})
	})
}

func TestRecordGuards(t *testing.T) {
	t.Run("キャンセル", func(t *testing.T) {
		cases := []struct {
			name  string
			b     *builder.UnlockBuilder
			errIs error
		}{
			{name: "monthly_booking 未予約OK", b: builder.NewUnlockBuilder()},
			{name: "キャンセル済みNG", b: builder.NewUnlockBuilder().Cancelled(), errIs: unlock.ErrAlreadyCancelled},
			{name: "予約済みNG", b: builder.NewUnlockBuilder().Booked("B1"), errIs: unlock.ErrAlreadyBooked},
			{name: "non_refundable NG", b: builder.NewUnlockBuilder().NonRefundable(), errIs: unlock.ErrCancelNotAllowed},
		}
		for _, c := range cases {
			t.Run(c.name, func(t *testing.T) {
				err := c.b.MustBuild().CheckCancel()
				if c.errIs == nil {
					assert.NoError(t, err)
					return
				}
				assert.ErrorIs(t, err, c.errIs)
			})
		}
	})

	t.Run("評価", func(t *testing.T) {
		assert.NoError(t, builder.NewUnlockBuilder().MustBuild().CheckAppreciation())

		rated := builder.NewUnlockBuilder().Appreciated(unlock.LevelNeutral).MustBuild()
		assert.ErrorIs(t, rated.CheckAppreciation(), unlock.ErrAppreciationAlreadySubmitted)

		nonRefundable := builder.NewUnlockBuilder().NonRefundable().MustBuild()
		assert.ErrorIs(t, nonRefundable.CheckAppreciation(), unlock.ErrAppreciationNotApplicable)
	})

	t.Run("予約転換", func(t *testing.T) {
		ok := builder.NewUnlockBuilder().Appreciated(unlock.LevelAppreciated).MustBuild()
		assert.NoError(t, ok.CheckBooking())

		notRated := builder.NewUnlockBuilder().MustBuild()
		assert.ErrorIs(t, notRated.CheckBooking(), unlock.ErrBookingNotAllowed)

		// サーバーが canBook を返しても評価が appreciated でなければ拒否
		neutral := builder.NewUnlockBuilder().Appreciated(unlock.LevelNeutral).With(func(b *builder.UnlockBuilder) {
			b.Spec.Guards.CanBook = true
		}).MustBuild()
		assert.ErrorIs(t, neutral.CheckBooking(), unlock.ErrBookingRequiresAppreciation)

		booked := builder.NewUnlockBuilder().Appreciated(unlock.LevelAppreciated).Booked("B1").MustBuild()
		assert.ErrorIs(t, booked.CheckBooking(), unlock.ErrAlreadyBooked)
	})
}

func TestRecordPhase(t *testing.T) {
	cases := []struct {
		name string
		b    *builder.UnlockBuilder
		want unlock.Phase
	}{
		{name: "non_refundable は unlocked", b: builder.NewUnlockBuilder().NonRefundable(), want: unlock.PhaseUnlocked},
		{name: "未評価は feedback_pending", b: builder.NewUnlockBuilder(), want: unlock.PhaseFeedbackPending},
		{
			name: "コード発行済み",
			b: builder.NewUnlockBuilder().Appreciated(unlock.LevelNotAppreciated).With(func(b *builder.UnlockBuilder) {
				b.Spec.DealCodeIssued = true
			}),
			want: unlock.PhaseDealCodeIssued,
		},
		{
			name: "返金済み",
			b: builder.NewUnlockBuilder().Appreciated(unlock.LevelNeutral).With(func(b *builder.UnlockBuilder) {
				b.Spec.RefundIssued = true
			}),
			want: unlock.PhaseRefundIssued,
		},
		{name: "報酬なし", b: builder.NewUnlockBuilder().Appreciated(unlock.LevelAppreciated), want: unlock.PhaseNoReward},
		{name: "予約転換済み", b: builder.NewUnlockBuilder().Appreciated(unlock.LevelAppreciated).Booked("B1"), want: unlock.PhaseBookingConverted},
		{name: "キャンセル済み", b: builder.NewUnlockBuilder().Cancelled(), want: unlock.PhaseCancelled},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			phase := c.b.MustBuild().Phase()
			assert.Equal(t, c.want, phase)
		})
	}
	assert.True(t, unlock.PhaseCancelled.IsTerminal())
	assert.False(t, unlock.PhaseFeedbackPending.IsTerminal())
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {

			actual, err := builder.NewUnlockBuilder().With(c.mutate).BuildDomain()

			if c.errIs == nil {
				require.NoError(t, err)
				require.NotNil(t, actual)
			} else {
				require.Nil(t, actual)
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}
