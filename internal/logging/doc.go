// Package logging provides the structured diagnostic logger of the drills
// binaries, backed by zerolog. Exercise output never goes through it.
package logging
