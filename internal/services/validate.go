package services

import (
	"math/rand/v2"
	"regexp"
	"strings"
)

var emailPattern = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)

func validEmail(s string) bool {
	return emailPattern.MatchString(s)
}

const tokenAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

// randToken returns n characters from [a-z0-9]. Object keys already embed a
// millisecond timestamp; the token only has to break ties within the same
// millisecond.
func randToken(n int) string {
	var b strings.Builder
	b.Grow(n)
	for i := 0; i < n; i++ {
		b.WriteByte(tokenAlphabet[rand.IntN(len(tokenAlphabet))])
	}
	return b.String()
}
