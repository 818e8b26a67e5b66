// Package tone turns frequencies into audible beeps.
// Backends share the Emitter interface so callers can swap the real speaker
// for the system bell, a text printer, or a test recorder.
package tone
