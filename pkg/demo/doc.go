// Package demo holds the terminal output demonstrations: ten short,
// independent routines that each exercise one write pattern, from
// plain unbuffered writes through carriage-return overwrites and ANSI
// cursor movement to a background spinner goroutine.
//
// Demos never talk to the terminal directly. Everything flows through
// the console.Writer in the Session, and every delay goes through the
// Session's Pacer, so a run against a buffer with an immediate pacer
// produces the full byte stream instantly for tests.
package demo
