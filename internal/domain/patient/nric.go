package patient

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// NormalizeNRIC trims and uppercases the raw identifier before hashing or
// masking, so the same NRIC always produces the same hash.
func NormalizeNRIC(raw string) string {
	return strings.ToUpper(strings.TrimSpace(raw))
}

// HashNRIC returns the hex HMAC-SHA256 of the normalized NRIC under the
// server-held secret. The raw value must not outlive the calling operation:
// it is never stored, logged, or returned.
func HashNRIC(nric, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(nric))
	return hex.EncodeToString(mac.Sum(nil))
}

// MaskNRIC keeps the first and last character with a fixed six-asterisk
// middle, e.g. "S1234567A" → "S******A". Inputs of four characters or fewer
// are masked entirely.
func MaskNRIC(nric string) string {
	if len(nric) <= 4 {
		return "****"
	}
	return nric[:1] + "******" + nric[len(nric)-1:]
}
