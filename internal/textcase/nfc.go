package textcase

import "golang.org/x/text/unicode/norm"

// NFC returns s in Unicode normalization form C.
func NFC(s string) string {
	// Fast path: most dictionary text is already composed.
	if norm.NFC.IsNormalString(s) {
		return s
	}
	return norm.NFC.String(s)
}
