// Package identicon renders a short glyph fingerprint of an identity and a
// secret. Users learn their fingerprint and notice a mistyped secret when it
// changes. It plays no part in credential derivation.
package identicon

import (
	"crypto/hmac"
	"crypto/sha256"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/masterpassword/mpw-go/internal/crypto"
)

var (
	leftArms  = []string{"╔", "╚", "╰", "═"}
	rightArms = []string{"╗", "╝", "╯", "═"}
	bodies    = []string{"█", "░", "▒", "▓", "☺", "☻"}
	accessory = []string{
		"◈", "◎", "◐", "◑", "◒", "◓", "☀", "☁", "☂", "☃", "☄", "★", "☆", "☎",
		"☏", "⎈", "⌂", "☘", "☢", "☣", "☕", "⌚", "⌛", "⏰", "⚡", "⛄", "⛅", "☔",
		"♔", "♕", "♖", "♗", "♘", "♙", "♚", "♛", "♜", "♝", "♞", "♟", "♨", "♩",
		"♪", "♫", "⚐", "⚑", "⚔", "⚖", "⚙", "⚠", "⌘", "⏎", "✄", "✆", "✈", "✉",
		"✌",
	}
)

// Color is an ANSI colour number from 1 (red) to 7 (white).
type Color uint8

const (
	ColorRed Color = iota + 1
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
)

// Identicon is the fingerprint of one identity and secret.
type Identicon struct {
	LeftArm   string
	Body      string
	RightArm  string
	Accessory string
	Color     Color
}

// Generate computes the identicon from HMAC-SHA-256(secret, identity).
// secret is not modified.
func Generate(identity string, secret []byte) Identicon {
	mac := hmac.New(sha256.New, secret)
	mac.Write([]byte(identity))
	seed := mac.Sum(nil)
	defer crypto.Wipe(seed)

	return Identicon{
		LeftArm:   leftArms[int(seed[0])%len(leftArms)],
		Body:      bodies[int(seed[1])%len(bodies)],
		RightArm:  rightArms[int(seed[2])%len(rightArms)],
		Accessory: accessory[int(seed[3])%len(accessory)],
		Color:     Color(int(seed[4])%int(ColorWhite) + int(ColorRed)),
	}
}

// String returns the four glyphs without colour.
func (i Identicon) String() string {
	return i.LeftArm + i.Body + i.RightArm + i.Accessory
}

// Render returns the glyphs coloured for w. Colour is dropped when w does not
// support it.
func (i Identicon) Render(w io.Writer) string {
	style := lipgloss.NewRenderer(w).NewStyle().
		Foreground(lipgloss.ANSIColor(i.Color))
	return style.Render(i.String())
}
