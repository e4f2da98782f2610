package summary

import (
	"regexp"
	"strings"
)

// thinkBlock matches a model's reasoning section, across lines and in any letter case.
var thinkBlock = regexp.MustCompile(`(?is)<think>.*?</think>`)

// Sanitize strips reasoning blocks and "**" emphasis, swaps every "$" for symbol and trims
// surrounding whitespace.
func Sanitize(text, symbol string) string {
	text = thinkBlock.ReplaceAllString(text, "")
	text = strings.ReplaceAll(text, "**", "")
	text = strings.ReplaceAll(text, "$", symbol)
	return strings.TrimSpace(text)
}
