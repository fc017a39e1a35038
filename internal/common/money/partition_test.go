package money_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/safafin/go-loan-api/internal/common"
	"github.com/safafin/go-loan-api/internal/common/money"
)

func TestPartition(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		amount string
		parts  int
		want   []string
	}{
		{
			name:   "exact division",
			amount: "100.00",
			parts:  4,
			want:   []string{"25.00", "25.00", "25.00", "25.00"},
		},
		{
			name:   "with remainder, lows precede highs",
			amount: "100.00",
			parts:  3,
			want:   []string{"33.33", "33.33", "33.34"},
		},
		{
			name:   "single cent",
			amount: "0.01",
			parts:  3,
			want:   []string{"0.00", "0.00", "0.01"},
		},
		{
			name:   "zero amount",
			amount: "0.00",
			parts:  5,
			want:   []string{"0.00", "0.00", "0.00", "0.00", "0.00"},
		},
		{
			name:   "single part",
			amount: "50.00",
			parts:  1,
			want:   []string{"50.00"},
		},
		{
			name:   "negative amount, exact division",
			amount: "-100.00",
			parts:  4,
			want:   []string{"-25.00", "-25.00", "-25.00", "-25.00"},
		},
		{
			name:   "typical six installment principal",
			amount: "1000.00",
			parts:  6,
			want:   []string{"166.66", "166.66", "166.67", "166.67", "166.67", "166.67"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			amount, err := decimal.NewFromString(tt.amount)
			require.NoError(t, err)

			got, err := money.Partition(amount, tt.parts)
			require.NoError(t, err)
			require.Len(t, got, tt.parts)

			gotStrings := make([]string, len(got))
			for i, part := range got {
				gotStrings[i] = part.StringFixed(2)
			}
			if diff := cmp.Diff(tt.want, gotStrings); diff != "" {
				t.Errorf("unexpected parts (-want +got):\n%s", diff)
			}

			sum := decimal.Zero
			for _, part := range got {
				sum = sum.Add(part)
			}
			assert.True(t, sum.Equal(amount), "sum %s != amount %s", sum, amount)
		})
	}
}

func TestPartition_InvalidDivisor(t *testing.T) {
	t.Parallel()

	for _, parts := range []int{0, -1} {
		_, err := money.Partition(decimal.NewFromInt(100), parts)
		assert.ErrorIs(t, err, common.ErrInvalidDivisor)
	}
}

func TestPartition_SumAlwaysExact(t *testing.T) {
	t.Parallel()

	// sweep cent values across every allowed installment count
	for _, parts := range []int{6, 9, 12, 24} {
		for cents := int64(0); cents < 500; cents += 7 {
			amount := decimal.New(cents, -2)

			got, err := money.Partition(amount, parts)
			require.NoError(t, err)
			require.Len(t, got, parts)

			sum := decimal.Zero
			for i, part := range got {
				sum = sum.Add(part)
				if i > 0 {
					assert.True(t, got[i-1].LessThanOrEqual(part), "parts must be non-decreasing")
				}
			}
			assert.True(t, sum.Equal(amount))
		}
	}
}

func TestRoundBank2(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{"1.005", "1.00"},
		{"1.015", "1.02"},
		{"1.004", "1.00"},
		{"1.006", "1.01"},
		{"100.125", "100.12"},
	}

	for _, tt := range tests {
		in, err := decimal.NewFromString(tt.in)
		require.NoError(t, err)
		assert.Equal(t, tt.want, money.RoundBank2(in).StringFixed(2), "round %s", tt.in)
	}
}
