package validators

// IsNRICShaped checks the boundary shape of a normalized NRIC-like
// identifier: 5–32 characters, letters and digits only. Checksum validation
// is intentionally out of scope; the clinic serves FIN and passport holders
// whose formats vary.
func IsNRICShaped(nric string) bool {
	if len(nric) < 5 || len(nric) > 32 {
		return false
	}
	for _, r := range nric {
		switch {
		case r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
		default:
			return false
		}
	}
	return true
}
