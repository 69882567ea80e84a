// Package ui provides theme and color support for the drills user interface.
// It defines color schemes and provides ANSI escape code functions for consistent
// styling across the CLI, the REPL and the TUI viewer.
//
// Exercise output (carol verses, conversion results) is printed uncolored so
// that it stays byte-identical to the plain exercise; colors decorate prompts,
// banners and diagnostics only.
package ui
