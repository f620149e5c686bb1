package redeem

import (
	"math"

	"github.com/iov-one/redeem/errors"
)

// MaxAmount is the highest value an input or output may carry, the total
// supply expressed in the smallest unit.
const MaxAmount int64 = 21000000 * 100000000

// Deduct subtracts every fee from value. It fails if value or any of the
// fees is negative, or if the fees together exceed value. The result is
// never negative.
func Deduct(value int64, fees ...int64) (int64, error) {
	if value < 0 || value > MaxAmount {
		return 0, errors.Wrapf(errors.ErrAmount, "value %d out of range", value)
	}
	remaining := value
	for _, fee := range fees {
		if fee < 0 {
			return 0, errors.Wrapf(errors.ErrAmount, "negative fee %d", fee)
		}
		if fee > remaining {
			return 0, errors.Wrapf(errors.ErrInsufficientAmount,
				"value %d cannot cover fees %v", value, fees)
		}
		remaining -= fee
	}
	return remaining, nil
}

// Add returns a + b or an error if the sum overflows.
func Add(a, b int64) (int64, error) {
	if (b > 0 && a > math.MaxInt64-b) || (b < 0 && a < math.MinInt64-b) {
		return 0, errors.Wrapf(errors.ErrAmount, "%d + %d overflows", a, b)
	}
	return a + b, nil
}
