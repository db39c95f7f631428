package escrow

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"auction-engine/internal/auctionerrors"
	"auction-engine/internal/money"

	"github.com/stretchr/testify/require"
)

func newTestLedger(bidderID string, purse int64) *Ledger {
	l := NewLedger()
	l.Register(bidderID, money.FromInt64(purse))
	return l
}

// Test Lock
func TestLedger_Lock(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		purse         int64
		setup         func(l *Ledger)
		amount        int64
		wantError     bool
		expectedError error
	}{
		{
			name:   "lock_within_purse",
			purse:  2_000_000,
			amount: 1_000_000,
		},
		{
			name:          "lock_exceeds_purse",
			purse:         2_000_000,
			amount:        3_000_000,
			wantError:     true,
			expectedError: auctionerrors.ErrInsufficientFunds,
		},
		{
			name:   "lock_full_purse",
			purse:  2_000_000,
			amount: 2_000_000,
		},
		{
			name:  "raise_charges_only_delta",
			purse: 2_000_000,
			setup: func(l *Ledger) {
				require.NoError(t, l.Lock("bidder1", "item1", money.FromInt64(1_500_000)))
			},
			// a fresh lock of 2M would not fit next to the prior 1.5M,
			// but replacing the bidder's own lock only charges the delta
			amount: 2_000_000,
		},
		{
			name:  "other_items_reduce_available",
			purse: 2_000_000,
			setup: func(l *Ledger) {
				require.NoError(t, l.Lock("bidder1", "item2", money.FromInt64(1_500_000)))
			},
			amount:        1_000_000,
			wantError:     true,
			expectedError: auctionerrors.ErrInsufficientFunds,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ledger := newTestLedger("bidder1", tc.purse)
			if tc.setup != nil {
				tc.setup(ledger)
			}

			err := ledger.Lock("bidder1", "item1", money.FromInt64(tc.amount))
			if tc.wantError {
				require.Error(t, err)
				require.True(t, errors.Is(err, tc.expectedError))
			} else {
				require.NoError(t, err)
				require.True(t, ledger.LockedOn("bidder1", "item1").Equal(money.FromInt64(tc.amount)))
			}

			// money is conserved either way
			state, err := ledger.State("bidder1")
			require.NoError(t, err)
			require.True(t, state.Available.Add(state.Locked).Equal(money.FromInt64(tc.purse)))
		})
	}

	t.Run("unknown_bidder", func(t *testing.T) {
		t.Parallel()

		ledger := NewLedger()
		err := ledger.Lock("ghost", "item1", money.FromInt64(100))
		require.True(t, errors.Is(err, auctionerrors.ErrBidderNotFound))
	})
}

// Test Unlock
func TestLedger_Unlock(t *testing.T) {
	t.Parallel()

	ledger := newTestLedger("bidder1", 2_000_000)
	require.NoError(t, ledger.Lock("bidder1", "item1", money.FromInt64(1_200_000)))

	released := ledger.Unlock("bidder1", "item1")
	require.True(t, released.Equal(money.FromInt64(1_200_000)))

	state, err := ledger.State("bidder1")
	require.NoError(t, err)
	require.True(t, state.Available.Equal(money.FromInt64(2_000_000)))
	require.True(t, state.Locked.IsZero())

	// second unlock is a no-op
	require.True(t, ledger.Unlock("bidder1", "item1").IsZero())
	require.True(t, ledger.Unlock("ghost", "item1").IsZero())
}

// Test Transfer
func TestLedger_Transfer(t *testing.T) {
	t.Parallel()

	t.Run("settles_locked_amount", func(t *testing.T) {
		t.Parallel()

		ledger := newTestLedger("bidder1", 5_000_000)
		require.NoError(t, ledger.Lock("bidder1", "item1", money.FromInt64(2_000_000)))

		require.NoError(t, ledger.Transfer("bidder1", "item1", money.FromInt64(2_000_000)))

		state, err := ledger.State("bidder1")
		require.NoError(t, err)
		require.True(t, state.Available.Equal(money.FromInt64(3_000_000)))
		require.True(t, state.Locked.IsZero())
	})

	t.Run("insufficient_coverage", func(t *testing.T) {
		t.Parallel()

		ledger := newTestLedger("bidder1", 2_000_000)
		require.NoError(t, ledger.Lock("bidder1", "item1", money.FromInt64(2_000_000)))

		err := ledger.Transfer("bidder1", "item1", money.FromInt64(3_000_000))
		require.True(t, errors.Is(err, auctionerrors.ErrInsufficientFunds))

		// failed transfer mutates nothing
		require.True(t, ledger.LockedOn("bidder1", "item1").Equal(money.FromInt64(2_000_000)))
	})

	t.Run("unknown_bidder", func(t *testing.T) {
		t.Parallel()

		ledger := NewLedger()
		err := ledger.Transfer("ghost", "item1", money.FromInt64(100))
		require.True(t, errors.Is(err, auctionerrors.ErrBidderNotFound))
	})
}

// Test Credit
func TestLedger_Credit(t *testing.T) {
	t.Parallel()

	ledger := newTestLedger("bidder1", 1_000_000)
	require.NoError(t, ledger.Credit("bidder1", money.FromInt64(500_000)))

	state, err := ledger.State("bidder1")
	require.NoError(t, err)
	require.True(t, state.Available.Equal(money.FromInt64(1_500_000)))

	require.True(t, errors.Is(ledger.Credit("ghost", money.FromInt64(1)), auctionerrors.ErrBidderNotFound))
}

// Escrow conserves money across a full lock/transfer/credit cycle.
func TestLedger_Conservation(t *testing.T) {
	t.Parallel()

	ledger := newTestLedger("bidder1", 10_000_000)

	require.NoError(t, ledger.Lock("bidder1", "item1", money.FromInt64(2_000_000)))
	require.NoError(t, ledger.Lock("bidder1", "item2", money.FromInt64(3_000_000)))
	require.NoError(t, ledger.Lock("bidder1", "item1", money.FromInt64(4_000_000))) // raise

	state, err := ledger.State("bidder1")
	require.NoError(t, err)
	require.True(t, state.Locked.Equal(money.FromInt64(7_000_000)))
	require.True(t, state.Available.Equal(money.FromInt64(3_000_000)))

	// item1 is won, item2 exited, then the item1 sale is reversed
	require.NoError(t, ledger.Transfer("bidder1", "item1", money.FromInt64(4_000_000)))
	ledger.Unlock("bidder1", "item2")
	require.NoError(t, ledger.Credit("bidder1", money.FromInt64(4_000_000)))

	state, err = ledger.State("bidder1")
	require.NoError(t, err)
	require.True(t, state.Available.Equal(money.FromInt64(10_000_000)))
	require.True(t, state.Locked.IsZero())
}

// concurrency test
func TestLedger_ConcurrentLocks(t *testing.T) {
	t.Parallel()

	concurrentCount := 50
	ledger := newTestLedger("bidder1", int64(concurrentCount))

	var wg sync.WaitGroup
	for i := 0; i < concurrentCount; i++ {
		wg.Add(1)
		i := i
		go func() {
			defer wg.Done()
			itemID := fmt.Sprintf("item-%d", i)
			require.NoError(t, ledger.Lock("bidder1", itemID, money.FromInt64(1)))
		}()
	}
	wg.Wait()

	state, err := ledger.State("bidder1")
	require.NoError(t, err)
	require.True(t, state.Locked.Equal(money.FromInt64(int64(concurrentCount))))
	require.True(t, state.Available.IsZero())
	require.Equal(t, concurrentCount, ledger.LockCount("bidder1"))
}
