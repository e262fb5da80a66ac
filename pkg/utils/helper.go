package utils

import (
	"math"
	"strings"

	"github.com/google/uuid"
)

// ParseID converts a path identifier into the store's native id.
func ParseID(value string) (uuid.UUID, error) {
	return uuid.Parse(strings.TrimSpace(value))
}

// ToCents converts a decimal price into the smallest currency unit,
// truncating fractions of a cent. The price is first rounded to a tenth of a
// cent so binary float error cannot drop a whole cent (19.99 is 1998.999...).
func ToCents(price float64) int64 {
	return int64(math.Round(price*1000) / 10)
}
