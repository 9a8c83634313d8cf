package shared

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

// Money represents an exact-decimal monetary amount, cents-precision.
// Wrapping decimal.Decimal (rather than float64) avoids the rounding
// drift that accumulates across aggregation windows and keeps every
// amount invariant (positive, cents-precision) resting on exact
// arithmetic instead of float comparisons.
type Money struct {
	decimal.Decimal
}

// NewMoney constructs a Money from a float64, rounded to 2 decimal places.
func NewMoney(f float64) Money {
	return Money{decimal.NewFromFloat(f).Round(2)}
}

// NewMoneyFromString parses a decimal string into Money.
func NewMoneyFromString(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, fmt.Errorf("invalid money value %q: %w", s, err)
	}
	return Money{d.Round(2)}, nil
}

// Zero is the additive identity.
func Zero() Money { return Money{decimal.Zero} }

// Add returns m + other.
func (m Money) Add(other Money) Money { return Money{m.Decimal.Add(other.Decimal)} }

// Sub returns m - other.
func (m Money) Sub(other Money) Money { return Money{m.Decimal.Sub(other.Decimal)} }

// Mul returns m * factor.
func (m Money) Mul(factor float64) Money {
	return Money{m.Decimal.Mul(decimal.NewFromFloat(factor)).Round(2)}
}

// Div returns m / divisor. Returns Zero when divisor is zero.
func (m Money) Div(divisor float64) Money {
	if divisor == 0 {
		return Zero()
	}
	return Money{m.Decimal.Div(decimal.NewFromFloat(divisor)).Round(2)}
}

// Neg returns -m.
func (m Money) Neg() Money { return Money{m.Decimal.Neg()} }

// IsPositive reports whether m > 0.
func (m Money) IsPositive() bool { return m.Decimal.IsPositive() }

// IsZero reports whether m == 0.
func (m Money) IsZero() bool { return m.Decimal.IsZero() }

// IsNegative reports whether m < 0.
func (m Money) IsNegative() bool { return m.Decimal.IsNegative() }

// GreaterThan reports whether m > other.
func (m Money) GreaterThan(other Money) bool { return m.Decimal.GreaterThan(other.Decimal) }

// LessThan reports whether m < other.
func (m Money) LessThan(other Money) bool { return m.Decimal.LessThan(other.Decimal) }

// Cents returns the amount as an integer number of cents.
func (m Money) Cents() int64 {
	return m.Decimal.Mul(decimal.NewFromInt(100)).Round(0).IntPart()
}

// Float64 returns the amount as a float64, for use in statistical
// calculators (stdev, regression) where exact decimal arithmetic isn't
// load-bearing and float64 is both faster and what math.Sqrt etc. need.
func (m Money) Float64() float64 {
	f, _ := m.Decimal.Float64()
	return f
}

// PercentageOf returns (m / of) * 100, or 0 when of is zero.
func (m Money) PercentageOf(of Money) float64 {
	if of.IsZero() {
		return 0
	}
	return m.Float64() / of.Float64() * 100
}

// Scan implements sql.Scanner so Money can be read directly from a GORM
// decimal column, delegating to decimal.Decimal's own Scan.
func (m *Money) Scan(value interface{}) error {
	return m.Decimal.Scan(value)
}

// Value implements driver.Valuer, delegating to decimal.Decimal.
func (m Money) Value() (driver.Value, error) {
	return m.Decimal.Value()
}

// MarshalJSON renders Money as a plain decimal string, matching the
// teacher's float64 JSON shape closely enough for API compatibility.
func (m Money) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.Decimal.String())
}

// UnmarshalJSON accepts either a JSON number or a JSON string.
func (m *Money) UnmarshalJSON(data []byte) error {
	var asString string
	if err := json.Unmarshal(data, &asString); err == nil {
		d, err := decimal.NewFromString(asString)
		if err != nil {
			return err
		}
		m.Decimal = d
		return nil
	}

	var asFloat float64
	if err := json.Unmarshal(data, &asFloat); err != nil {
		return fmt.Errorf("money: %w", err)
	}
	m.Decimal = decimal.NewFromFloat(asFloat)
	return nil
}

// GormDataType tells GORM which generic data type to use for Money
// columns when auto-migrating.
func (Money) GormDataType() string {
	return "decimal(15,2)"
}
