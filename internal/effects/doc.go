// Package effects implements the decorative layer of the card: spring
// driven entrance offsets and a falling-confetti field composed around the
// screen content. Effects are stepped by the app-level frame ticker and
// never change session state.
package effects
