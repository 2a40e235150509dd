// Package ui renders the date picker as a Bubble Tea program.
//
// DatePicker wraps the controller from internal/ui/state with a text input
// and a bordered calendar popup drawn at an origin on screen. Key presses
// reach it only while the input has focus; mouse presses are first fanned
// out through a pointer.Registry so a mounted picker can react to clicks
// that land outside it, then routed to the picker when they land inside.
//
// Model hosts one picker and plays the caller's part: it owns the selected
// date, receives commits through the change callback and feeds them back.
// Harness drives a Model in tests without a terminal.
package ui
