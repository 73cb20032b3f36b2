package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"travelwise/pkg/utils"
)

func TestAllocateComputesTotalsAndRemainder(t *testing.T) {
	svc := NewBudgetService()

	plan, err := svc.Allocate(30000, map[string]float64{
		"Accommodation / Hotels": 10000,
		"Food & Dining":          5000,
	}, 7)
	require.NoError(t, err)

	assert.Equal(t, 15000.0, plan.TotalAllocated)
	assert.Equal(t, 15000.0, plan.Remaining)
	assert.False(t, plan.OverBudget)
	assert.InDelta(t, 4285.71, plan.DailyAllowance, 0.01)
	assert.Equal(t, TierBalanced, plan.AllowanceTier)
}

func TestAllocateSingleDayTrip(t *testing.T) {
	svc := NewBudgetService()

	plan, err := svc.Allocate(30000, map[string]float64{
		"Accommodation / Hotels": 10000,
		"Food & Dining":          5000,
	}, 1)
	require.NoError(t, err)

	assert.Equal(t, 30000.0, plan.DailyAllowance)
	assert.NotEqual(t, TierLow, plan.AllowanceTier, "30000/day is far above the low threshold")
	assert.Equal(t, TierGenerous, plan.AllowanceTier)
}

func TestAllowanceTierThresholds(t *testing.T) {
	svc := NewBudgetService()

	tests := []struct {
		name     string
		total    float64
		days     int
		wantTier string
	}{
		{"below 2000 per day is low", 13999, 7, TierLow},
		{"exactly 2000 per day is not low", 14000, 7, TierBalanced},
		{"5000 per day is balanced", 5000, 1, TierBalanced},
		{"above 5000 per day is generous", 30000, 5, TierGenerous},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan, err := svc.Allocate(tt.total, map[string]float64{}, tt.days)
			require.NoError(t, err)
			assert.Equal(t, tt.wantTier, plan.AllowanceTier)
		})
	}
}

func TestAllocateOverBudget(t *testing.T) {
	svc := NewBudgetService()

	plan, err := svc.Allocate(10000, map[string]float64{
		"Accommodation / Hotels": 8000,
		"Shopping":               5000,
	}, 5)
	require.NoError(t, err)

	assert.Equal(t, -3000.0, plan.Remaining)
	assert.True(t, plan.OverBudget)
}

func TestAllocatePercentages(t *testing.T) {
	svc := NewBudgetService()

	plan, err := svc.Allocate(20000, map[string]float64{
		"Food & Dining": 5000,
		"Shopping":      2500,
	}, 4)
	require.NoError(t, err)

	require.Len(t, plan.Allocations, 2)
	// Categories come back in stable sorted order.
	assert.Equal(t, "Food & Dining", plan.Allocations[0].Category)
	assert.Equal(t, 25.0, plan.Allocations[0].Percentage)
	assert.Equal(t, "Shopping", plan.Allocations[1].Category)
	assert.Equal(t, 12.5, plan.Allocations[1].Percentage)
}

func TestAllocateRejectsBadInputs(t *testing.T) {
	svc := NewBudgetService()

	_, err := svc.Allocate(30000, nil, 0)
	assert.ErrorIs(t, err, utils.ErrInvalidDuration)

	_, err = svc.Allocate(30000, nil, 31)
	assert.ErrorIs(t, err, utils.ErrInvalidDuration)

	_, err = svc.Allocate(999, nil, 7)
	assert.ErrorIs(t, err, utils.ErrInvalidBudget)
}
