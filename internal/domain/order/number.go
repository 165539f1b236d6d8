package order

import (
	"crypto/rand"
	"strconv"
	"strings"
	"time"
)

// OrderNumberPrefix is the stable prefix of every generated order number.
// Order numbers are persisted and displayed, so the format must not change.
const OrderNumberPrefix = "JF"

const base36Alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// GenerateOrderNumber produces a human-readable, globally unique order
// number of the form JF-<base36 timestamp>-<base36 4-char random>. The
// timestamp component makes numbers sort roughly by creation time; the
// random suffix disambiguates concurrent generations. Collisions are treated
// as statistically negligible and are not defended against with a retry
// loop; the unique index on order_number is the final safety net.
func GenerateOrderNumber() string {
	ts := strings.ToUpper(strconv.FormatInt(time.Now().UnixNano(), 36))
	return OrderNumberPrefix + "-" + ts + "-" + randomBase36(4)
}

// randomBase36 returns n random characters from the base36 alphabet
func randomBase36(n int) string {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand never fails on supported platforms; fall back to a
		// time-derived suffix rather than panicking in the checkout path.
		ts := strings.ToUpper(strconv.FormatInt(time.Now().UnixNano(), 36))
		return ts[len(ts)-n:]
	}
	out := make([]byte, n)
	for i, b := range buf {
		out[i] = base36Alphabet[int(b)%len(base36Alphabet)]
	}
	return string(out)
}
