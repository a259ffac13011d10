// Package refid generates human-readable reference tokens for orders, quotes
// and lease decisions. Tokens are display references, not security credentials:
// the time component changes every millisecond and the random suffix keeps the
// same-millisecond collision odds around 1/36^5.
package refid

import (
	"math/rand"
	"strconv"
	"strings"
	"time"
)

const base36 = "0123456789abcdefghijklmnopqrstuvwxyz"

// New returns "PREFIX-<base36 epoch millis>-<5 random base36 chars>", upper-cased.
func New(prefix string) string {
	ts := strconv.FormatInt(time.Now().UnixMilli(), 36)
	return strings.ToUpper(prefix + "-" + ts + "-" + randomBase36(5))
}

// Short returns "PREFIX-<6 random base36 chars>", upper-cased. Used for quote
// and pre-qualification references, which never need to sort by time.
func Short(prefix string) string {
	return strings.ToUpper(prefix + "-" + randomBase36(6))
}

func randomBase36(n int) string {
	var sb strings.Builder
	sb.Grow(n)
	for i := 0; i < n; i++ {
		sb.WriteByte(base36[rand.Intn(len(base36))])
	}
	return sb.String()
}
