package card

import (
	"strings"

	"github.com/google/uuid"
)

// Default card content, used when no configuration source sets a field.
const (
	DefaultName    = "Anjali"
	DefaultImage   = "my_photo.jpeg"
	DefaultMessage = "🎉🎂 Happy Birthday Anjali!!! 🎂🎉\n" +
		"You're an amazing person 🌟, and I'm so lucky to know you 🤗.\n" +
		"Wishing you a day filled with joy 😄, laughter , and everything you wished for ✨.\n" +
		"Cheers to another fantastic year! 🥳💖\n" +
		"Many more birthdays to celebrate together 🥂🎈\n" +
		"Stay Blessed 🙏💫\n" +
		"Our childhood friendship has grown into a Treasure 💛\n" +
		"HAPPY 20th 🎊🎁🎉"
)

// Session is the immutable input of one run of the card.
type Session struct {
	ID       string // correlates logs and traces; not shown
	Name     string
	Message  string
	ImageRef string
}

// NewSession creates a session with a fresh id. Windows line endings in the
// message are normalised so line breaks render as written.
func NewSession(name, message, imageRef string) Session {
	return Session{
		ID:       uuid.NewString(),
		Name:     name,
		Message:  strings.ReplaceAll(message, "\r\n", "\n"),
		ImageRef: imageRef,
	}
}

// CakeGreeting is the headline of the cake screen.
func (s Session) CakeGreeting() string {
	return "Happy Birthday, " + s.Name + "!"
}

// Letter is the body of the message screen.
func (s Session) Letter() string {
	return "Dear " + s.Name + ", " + s.Message
}
