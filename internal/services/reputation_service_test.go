package services

import (
	"context"
	"math"
	"testing"

	"github.com/alimgiray/contributor-registry/internal/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyReputationDelta(t *testing.T) {
	testCases := []struct {
		name        string
		score       uint64
		delta       int64
		expected    uint64
		expectedErr error
	}{
		{
			name:     "Simple increase",
			score:    10,
			delta:    5,
			expected: 15,
		},
		{
			name:     "Zero delta is a no-op",
			score:    10,
			delta:    0,
			expected: 10,
		},
		{
			name:     "Simple decrease",
			score:    10,
			delta:    -4,
			expected: 6,
		},
		{
			name:     "Decrease to exactly zero",
			score:    10,
			delta:    -10,
			expected: 0,
		},
		{
			name:     "Decrease past zero clamps",
			score:    10,
			delta:    -1000,
			expected: 0,
		},
		{
			name:     "Increase to the ceiling",
			score:    math.MaxUint64 - 5,
			delta:    5,
			expected: math.MaxUint64,
		},
		{
			name:        "Increase past the ceiling fails",
			score:       math.MaxUint64 - 4,
			delta:       5,
			expectedErr: ErrReputationOverflow,
		},
		{
			name:        "Increase from the ceiling fails",
			score:       math.MaxUint64,
			delta:       1,
			expectedErr: ErrReputationOverflow,
		},
		{
			name:     "Max positive delta",
			score:    0,
			delta:    math.MaxInt64,
			expected: math.MaxInt64,
		},
		{
			name:     "MinInt64 has no magnitude and is a no-op decrease",
			score:    10,
			delta:    math.MinInt64,
			expected: 10,
		},
		{
			name:     "MinInt64 plus one drains any smaller score to zero",
			score:    10,
			delta:    math.MinInt64 + 1,
			expected: 0,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result, err := applyReputationDelta(tc.score, tc.delta)
			if tc.expectedErr != nil {
				assert.ErrorIs(t, err, tc.expectedErr)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.expected, result)
		})
	}
}

func TestUpdateReputation(t *testing.T) {
	t.Run("Admin adjusts a score", func(t *testing.T) {
		r := newInitializedRegistry("admin1")
		require.NoError(t, r.contributor.Register(context.Background(), "addr1", "alice"))

		assert.NoError(t, r.reputation.UpdateReputation(context.Background(), "admin1", "addr1", 50))

		score, err := r.reputation.GetReputation("addr1")
		assert.NoError(t, err)
		assert.Equal(t, uint64(50), score)

		assert.NoError(t, r.reputation.UpdateReputation(context.Background(), "admin1", "addr1", -20))
		score, _ = r.reputation.GetReputation("addr1")
		assert.Equal(t, uint64(30), score)
	})

	t.Run("Non-admin caller is rejected", func(t *testing.T) {
		r := newInitializedRegistry("admin1")
		require.NoError(t, r.contributor.Register(context.Background(), "addr1", "alice"))

		err := r.reputation.UpdateReputation(context.Background(), "addr1", "addr1", 50)
		assert.ErrorIs(t, err, ErrUnauthorized)

		score, _ := r.reputation.GetReputation("addr1")
		assert.Equal(t, uint64(0), score, "unauthorized call must not mutate")
	})

	t.Run("Before initialize fails", func(t *testing.T) {
		r := newTestRegistry()

		err := r.reputation.UpdateReputation(context.Background(), "admin1", "addr1", 1)
		assert.ErrorIs(t, err, ErrNotInitialized)
	})

	t.Run("Unknown target fails", func(t *testing.T) {
		r := newInitializedRegistry("admin1")

		err := r.reputation.UpdateReputation(context.Background(), "admin1", "ghost", 1)
		assert.ErrorIs(t, err, ErrContributorNotFound)
	})

	t.Run("Overflow leaves the score unchanged", func(t *testing.T) {
		r := newInitializedRegistry("admin1")
		require.NoError(t, r.contributor.Register(context.Background(), "addr1", "alice"))
		require.NoError(t, r.reputation.UpdateReputation(context.Background(), "admin1", "addr1", math.MaxInt64))
		require.NoError(t, r.reputation.UpdateReputation(context.Background(), "admin1", "addr1", math.MaxInt64))

		// Score is now 2*MaxInt64; two more would pass the ceiling
		err := r.reputation.UpdateReputation(context.Background(), "admin1", "addr1", 2)
		assert.ErrorIs(t, err, ErrReputationOverflow)

		score, _ := r.reputation.GetReputation("addr1")
		assert.Equal(t, uint64(math.MaxInt64)*2, score)
	})

	t.Run("Proof failure aborts before mutation", func(t *testing.T) {
		r := newInitializedRegistry("admin1")
		require.NoError(t, r.contributor.Register(context.Background(), "addr1", "alice"))
		r.reputation.oracle = auth.NewContextOracle()

		err := r.reputation.UpdateReputation(context.Background(), "admin1", "addr1", 50)
		assert.ErrorIs(t, err, auth.ErrProofRequired)

		score, _ := r.reputation.GetReputation("addr1")
		assert.Equal(t, uint64(0), score)
	})
}

func TestGetReputation(t *testing.T) {
	r := newInitializedRegistry("admin1")

	_, err := r.reputation.GetReputation("ghost")
	assert.ErrorIs(t, err, ErrContributorNotFound)
}
