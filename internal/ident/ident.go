// Package ident generates the short opaque identifiers used for orders and
// order files.
package ident

import (
	"crypto/rand"
	"fmt"
)

// Lowercase alphanumerics only, so IDs are safe in URLs and storage keys.
const alphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// Length of every generated identifier.
const Length = 12

// New returns a fresh 12-character identifier. Collision probability is
// negligible at expected order volumes (36^12 keyspace).
func New() string {
	buf := make([]byte, Length)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand failing means the platform entropy source is broken;
		// nothing sensible can continue.
		panic(fmt.Sprintf("ident: reading random bytes: %v", err))
	}
	for i, b := range buf {
		buf[i] = alphabet[int(b)%len(alphabet)]
	}
	return string(buf)
}
