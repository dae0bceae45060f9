// File: angle.go
// Role: Signed-byte azimuth encoding ("brads") for StreetEdge.InAngle/OutAngle.
//
// This trades precision for space: 256 units per full turn packed into
// a single signed byte. The 180°-is-negative quirk (the encoded value
// wrapping past int8's range) is an accepted artifact of the encoding,
// preserved here to keep compact serialization byte-identical with
// upstream graph dumps rather than "fixed" into a wider type.
package core

import "math"

// EncodeAngle converts radians to the signed-byte brad encoding:
// byte = round(radians * 128/pi) + 128, stored as an int8 (the
// addition intentionally overflows int8's range for angles near pi).
func EncodeAngle(radians float64) int8 {
	b := int(math.Round(radians*128/math.Pi)) + 128
	return int8(b)
}

// DecodeAngleDegrees returns the integer-degree azimuth for an encoded
// brad value: degrees = byte * 180/128.
func DecodeAngleDegrees(b int8) int {
	return int(b) * 180 / 128
}
