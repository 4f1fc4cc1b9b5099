/*
trust.go - Trust account economics

PURPOSE:

	SPAC redemptions pay shareholders their pro-rata share of the trust.
	Money math uses decimal.Decimal throughout: redemption prices are quoted
	to the cent and a float-rounding error across tens of millions of shares
	is real money.
*/
package spac

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// TrustAccount holds the trust balance and the public share count it backs.
type TrustAccount struct {
	Balance      decimal.Decimal
	PublicShares int64
}

// NewTrustAccount builds a trust account from a decimal string balance
// (e.g. "230000000.00").
func NewTrustAccount(balance string, publicShares int64) (TrustAccount, error) {
	b, err := decimal.NewFromString(balance)
	if err != nil {
		return TrustAccount{}, fmt.Errorf("invalid trust balance %q: %w", balance, err)
	}
	return TrustAccount{Balance: b, PublicShares: publicShares}, nil
}

// RedemptionPrice returns the pro-rata per-share payout, rounded down to
// the cent. Rounding down keeps the aggregate payout within the trust.
func (t TrustAccount) RedemptionPrice() (decimal.Decimal, error) {
	if t.PublicShares <= 0 {
		return decimal.Zero, &SharesError{Shares: t.PublicShares}
	}
	if t.Balance.IsNegative() {
		return decimal.Zero, ErrNegativeTrustBalance
	}
	return t.Balance.Div(decimal.NewFromInt(t.PublicShares)).RoundDown(2), nil
}

// RedemptionCost returns the cash leaving the trust if the given number of
// shares redeem at the current price.
func (t TrustAccount) RedemptionCost(shares int64) (decimal.Decimal, error) {
	if shares < 0 || shares > t.PublicShares {
		return decimal.Zero, &SharesError{Shares: shares}
	}
	price, err := t.RedemptionPrice()
	if err != nil {
		return decimal.Zero, err
	}
	return price.Mul(decimal.NewFromInt(shares)), nil
}
