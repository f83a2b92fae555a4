// Package format renders chain values for terminal display.
package format

import (
	"fmt"
	"time"
)

const lamportsPerSol = 1_000_000_000

// Lamports renders a lamport amount as a ◎-prefixed SOL value.
func Lamports(v uint64) string {
	return fmt.Sprintf("◎ %.9f", float64(v)/lamportsPerSol)
}

// LamportsDelta renders a signed lamport difference.
func LamportsDelta(v int64) string {
	return fmt.Sprintf("Δ %+.9f", float64(v)/lamportsPerSol)
}

// Timestamp renders a block time in UTC, or a dash when unset.
func Timestamp(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.UTC().Format("2006-01-02 15:04:05 UTC")
}

// Age renders how long ago t was relative to now, in the largest
// whole unit up to days.
func Age(now, t time.Time) string {
	if t.IsZero() || now.Before(t) {
		return "-"
	}
	d := now.Sub(t)
	switch {
	case d < time.Minute:
		return fmt.Sprintf("%ds", int(d.Seconds()))
	case d < time.Hour:
		return fmt.Sprintf("%dm", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh", int(d.Hours()))
	default:
		return fmt.Sprintf("%dd", int(d.Hours()/24))
	}
}

// TruncateMiddle shortens long hashes to max runes, keeping both ends.
func TruncateMiddle(s string, max int) string {
	r := []rune(s)
	if max <= 0 || len(r) <= max {
		return s
	}
	if max <= 1 {
		return "…"
	}
	head := (max - 1) / 2
	tail := max - 1 - head
	return string(r[:head]) + "…" + string(r[len(r)-tail:])
}
