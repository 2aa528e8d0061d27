// Package logging provides structured logging for asnber tools.
package logging

import (
	"crypto/rand"
	"encoding/hex"
	"strconv"
	"sync/atomic"
	"time"
)

// runIDCounter is used for generating sequential run IDs.
var runIDCounter uint64

// GenerateRunID generates an ID that correlates the log entries of one
// command invocation. The format is timestamp-counter-random,
// e.g. "1708425600-1-a1b2c3d4".
func GenerateRunID() string {
	n := atomic.AddUint64(&runIDCounter, 1)

	var b [4]byte
	if _, err := rand.Read(b[:]); err != nil {
		// Fall back to the counter alone
		return strconv.FormatInt(time.Now().Unix(), 10) + "-" + strconv.FormatUint(n, 10)
	}

	return strconv.FormatInt(time.Now().Unix(), 10) + "-" + strconv.FormatUint(n, 10) + "-" + hex.EncodeToString(b[:])
}
