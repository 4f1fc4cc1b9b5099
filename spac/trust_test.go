package spac_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spacdesk/filing-engine/spac"
)

func TestRedemptionPrice_EvenSplit(t *testing.T) {
	trust, err := spac.NewTrustAccount("230000000.00", 23000000)
	require.NoError(t, err)

	price, err := trust.RedemptionPrice()
	require.NoError(t, err)
	assert.True(t, price.Equal(decimal.RequireFromString("10.00")), "got %s", price)
}

func TestRedemptionPrice_RoundsDownToCent(t *testing.T) {
	// 100,000,000 / 3,000,000 = 33.3333...: truncated, never rounded up,
	// so the aggregate payout cannot exceed the trust.
	trust, err := spac.NewTrustAccount("100000000.00", 3000000)
	require.NoError(t, err)

	price, err := trust.RedemptionPrice()
	require.NoError(t, err)
	assert.True(t, price.Equal(decimal.RequireFromString("33.33")), "got %s", price)
}

func TestRedemptionPrice_Errors(t *testing.T) {
	trust, err := spac.NewTrustAccount("1000000.00", 0)
	require.NoError(t, err)
	_, err = trust.RedemptionPrice()
	assert.ErrorIs(t, err, spac.ErrInvalidShareCount)

	trust, err = spac.NewTrustAccount("-5.00", 100)
	require.NoError(t, err)
	_, err = trust.RedemptionPrice()
	assert.ErrorIs(t, err, spac.ErrNegativeTrustBalance)
}

func TestRedemptionCost(t *testing.T) {
	trust, err := spac.NewTrustAccount("230000000.00", 23000000)
	require.NoError(t, err)

	cost, err := trust.RedemptionCost(1000000)
	require.NoError(t, err)
	assert.True(t, cost.Equal(decimal.RequireFromString("10000000.00")), "got %s", cost)

	_, err = trust.RedemptionCost(-1)
	assert.ErrorIs(t, err, spac.ErrInvalidShareCount)

	_, err = trust.RedemptionCost(23000001)
	assert.ErrorIs(t, err, spac.ErrInvalidShareCount)
}

func TestNewTrustAccount_RejectsMalformedBalance(t *testing.T) {
	_, err := spac.NewTrustAccount("not-a-number", 100)
	assert.Error(t, err)
}
