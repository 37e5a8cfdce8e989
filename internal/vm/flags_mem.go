//go:build debugmem

package vm

func init() { DebugMem = true }
