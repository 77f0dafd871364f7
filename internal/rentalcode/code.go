// Package rentalcode generates the short tokens customers present at the
// counter to confirm pickup and return.
package rentalcode

import "crypto/rand"

// Length of every generated code.
const Length = 6

const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// Generate returns a Length-character uppercase alphanumeric token with no
// embedded structure. It makes no uniqueness guarantee against persisted
// rentals; collision detection is the caller's job.
func Generate() (string, error) {
	buf := make([]byte, Length)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	for i := range buf {
		buf[i] = alphabet[int(buf[i])%len(alphabet)]
	}
	return string(buf), nil
}
