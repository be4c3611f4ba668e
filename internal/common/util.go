package common

// WipeByteArray zeroes the buffer in place. Use it to drop plaintext
// passwords from memory as soon as they have been hashed.
func WipeByteArray(buf []byte) {
	for i := range buf {
		buf[i] = 0
	}
}
