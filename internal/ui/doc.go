// Package ui renders the greeting card with Bubble Tea.
//
// Core abstractions:
//   - View: one screen with its own model, update and view (Elm-style)
//   - AppModel: root model that owns the step controller and swaps views
//   - scheduler: view-owned timers that die with the view
//
// Every view gets a token when it is built. Messages a view schedules for
// itself carry that token, and advance requests from anything but the
// current view are dropped.
package ui
