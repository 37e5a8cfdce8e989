package vm

// Debug* are compile-time-selected tracing switches (spec §1's
// DEBUG_TRACE/DEBUG_STACK/DEBUG_MEM/DEBUG_DIS). Each defaults to false here;
// the matching flags_*.go file, built only under its own build tag, flips
// one to true via init(). This mirrors the teacher's own debug.go/
// debug_trace.go split (funvibe-funxy) rather than a runtime flag. The
// switches are package variables, so the tracing calls stay in every
// build and are skipped at run time when their tag is absent.
var (
	DebugTrace = false
	DebugStack = false
	DebugMem   = false
	DebugDis   = false
)
