//go:build debugdis

package vm

func init() { DebugDis = true }
