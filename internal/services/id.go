package services

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"
)

// newRecordID builds ids like "tx_1714412345678_9f2c41ab07": a millisecond
// timestamp for rough ordering plus a random suffix so rapid calls in the
// same millisecond never collide. Not cryptographically unique, but the
// collision probability is negligible for a single-device store.
func newRecordID(prefix string) string {
	suffix := make([]byte, 5)
	if _, err := rand.Read(suffix); err != nil {
		// Fall back to nanosecond time if the RNG is unavailable.
		return fmt.Sprintf("%s_%d", prefix, time.Now().UnixNano())
	}
	return fmt.Sprintf("%s_%d_%s", prefix, time.Now().UnixMilli(), hex.EncodeToString(suffix))
}
