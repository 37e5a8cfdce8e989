//go:build debugstack

package vm

func init() { DebugStack = true }
