package domain

import (
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

var lastTimestamp int64

// NextTimestamp returns a strictly increasing unix-nano timestamp even when
// the clock does not advance between calls.
func NextTimestamp() int64 {
	for {
		now := time.Now().UnixNano()
		last := atomic.LoadInt64(&lastTimestamp)
		if now <= last {
			now = last + 1
		}
		if atomic.CompareAndSwapInt64(&lastTimestamp, last, now) {
			return now
		}
	}
}

// NewID returns a fresh unique id carrying an entity prefix, e.g. "card-…".
func NewID(prefix string) string {
	return prefix + "-" + uuid.NewString()
}
