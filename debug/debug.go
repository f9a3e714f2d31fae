// Package debug holds opt-in diagnostic channels.
//
// Each channel is enabled by an environment variable read once at init, for
// example VT_DEBUG_MERGE=true. Enabled channels log through a *slog.Logger
// at debug level.
package debug

import (
	"log/slog"
	"os"
	"strconv"
	"sync/atomic"
)

type debug struct {
	Set    bool
	Merge  bool
	Encode bool
	Decode bool
	Eval   bool
}

var (
	d       *debug
	theLog  atomic.Pointer[slog.Logger]
	logOpts = &slog.HandlerOptions{Level: slog.LevelDebug}
)

func init() {
	d = &debug{}
	d.Set = boolEnv("VT_DEBUG_SET")
	d.Merge = boolEnv("VT_DEBUG_MERGE")
	d.Encode = boolEnv("VT_DEBUG_ENCODE")
	d.Decode = boolEnv("VT_DEBUG_DECODE")
	d.Eval = boolEnv("VT_DEBUG_EVAL")
	theLog.Store(slog.New(slog.NewTextHandler(os.Stderr, logOpts)))
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Set() bool {
	return d.Set
}
func Merge() bool {
	return d.Merge
}
func Encode() bool {
	return d.Encode
}
func Decode() bool {
	return d.Decode
}
func Eval() bool {
	return d.Eval
}

// Enable turns channels on or off at runtime, mostly for tests.
func Enable(set, merge, encode, decode, eval bool) {
	d = &debug{Set: set, Merge: merge, Encode: encode, Decode: decode, Eval: eval}
}

// SetLogger replaces the logger used by Log. A nil logger restores the
// default stderr logger.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(slog.NewTextHandler(os.Stderr, logOpts))
	}
	theLog.Store(l)
}

func Logger() *slog.Logger {
	return theLog.Load()
}

// Log emits msg with structured attributes at debug level.
func Log(msg string, args ...any) {
	theLog.Load().Debug(msg, args...)
}
