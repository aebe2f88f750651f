// Package card holds the session model of the greeting card: the immutable
// session input, the five screens and the step controller that walks them.
//
// The controller owns the only cross-screen mutable state, the step
// counter. Screen-local state (countdown value, gift flag) lives in the
// views in package ui and dies with them.
package card
