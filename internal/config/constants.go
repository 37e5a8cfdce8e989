// Package config centralizes constants shared across the CLI and VM
// layers, the way the teacher's own internal/config does for its source
// file extensions.
package config

// ModuleFileExt is the extension appended to the positional module path
// argument the CLI accepts (spec §6.2 / original_source/ClearVM main.c).
const ModuleFileExt = ".clr.b"

// DiagnosticPrefix is prepended to every line of VM/loader diagnostic
// output, matching ClearVM's original C sources.
const DiagnosticPrefix = "|| "

// DisassemblingBanner and RunningBanner head the two CLI output framings.
const (
	DisassemblingBanner = "Disassembling:"
	RunningBanner       = "Running:"
)

// ConfigFileName is the launcher's optional TOML config file, looked up
// first in the current directory then under the user config directory.
const ConfigFileName = "clearvm.toml"
