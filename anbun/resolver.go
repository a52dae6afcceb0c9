// Package anbun resolves and applies 按分 (business/private
// apportionment) ratios to expense amounts.
package anbun

import (
	"fmt"

	"github.com/komu10/keiri_service/keiri_core"
	"github.com/shopspring/decimal"
)

const DefaultRatio int64 = 100

// Resolver answers ratio lookups from a settings snapshot. Missing
// settings default to 100%, apportionment is opt-in per pair.
type Resolver struct {
	settings map[string]*keiri_core.AnbunSetting
}

func NewResolver(settings []*keiri_core.AnbunSetting) *Resolver {
	index := map[string]*keiri_core.AnbunSetting{}
	for _, s := range settings {
		index[pairKey(s.Kamoku, s.Owner)] = s
	}
	return &Resolver{settings: index}
}

func pairKey(kamoku keiri_core.KamokuID, owner keiri_core.OwnerKey) string {
	return fmt.Sprintf("%s/%s", kamoku, owner)
}

// Ratio returns the configured business-use percentage for the pair.
// The kamoku's anbun eligibility flag is a UI hint only, a configured
// ratio applies either way.
func (r *Resolver) Ratio(kamoku keiri_core.KamokuID, owner keiri_core.OwnerKey) int64 {
	if s, ok := r.settings[pairKey(kamoku, owner)]; ok {
		return s.Ratio
	}
	return DefaultRatio
}

// Amount applies the pair's ratio to the transaction amount.
func (r *Resolver) Amount(tx *keiri_core.Transaction) int64 {
	return Apply(tx.Amount, r.Ratio(tx.Kamoku, tx.Owner))
}

// Apply computes round(amount * ratio / 100) with round-half-up. The
// half-up rounding is deliberate and differs from the floor rounding
// the depreciation engine uses.
func Apply(amount int64, ratio int64) int64 {
	return decimal.NewFromInt(amount).
		Mul(decimal.NewFromInt(ratio)).
		Div(decimal.NewFromInt(100)).
		Round(0).
		IntPart()
}
