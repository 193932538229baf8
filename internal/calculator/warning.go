package calculator

import "github.com/shopspring/decimal"

// Level is the cash-buffer health of a category.
type Level string

const (
	Green  Level = "green"
	Yellow Level = "yellow"
	Red    Level = "red"
)

// yellowThreshold is the share of the remaining payment below which the
// buffer is considered thin.
var yellowThreshold = decimal.RequireFromString("0.20")

// WarningLevel classifies a buffer against what is still owed to a
// subcontractor.
//
// Rules, in order:
//   - nothing left to pay: green
//   - buffer below zero: red (collected funds can't cover the rest)
//   - buffer at most 20% of what's still owed: yellow
//   - otherwise: green
func WarningLevel(buffer, remainingToPay decimal.Decimal) Level {
	if remainingToPay.LessThanOrEqual(decimal.Zero) {
		return Green
	}
	if buffer.IsNegative() {
		return Red
	}
	if buffer.LessThanOrEqual(remainingToPay.Mul(yellowThreshold)) {
		return Yellow
	}
	return Green
}
