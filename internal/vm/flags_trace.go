//go:build debugtrace

package vm

func init() { DebugTrace = true }
