//go:build go1.18

package domain

import (
	"testing"
	"unicode/utf8"
)

// FuzzParseClaimID checks parsing never panics and accepted IDs round-trip.
func FuzzParseClaimID(f *testing.F) {
	f.Add("")
	f.Add("550e8400-e29b-41d4-a716-446655440000")
	f.Add("00000000-0000-0000-0000-000000000000")
	f.Add("not-a-uuid")
	f.Add(string([]byte{0x00, 0x01, 0x02}))

	f.Fuzz(func(t *testing.T, input string) {
		id, err := ParseClaimID(input)
		if err == nil {
			roundTrip, err2 := ParseClaimID(id.String())
			if err2 != nil {
				t.Errorf("valid ID failed round-trip: %v", err2)
			}
			if roundTrip != id {
				t.Error("round-trip changed ID value")
			}
			if id.IsNil() {
				t.Error("nil UUID was accepted")
			}
		}
		if !utf8.ValidString(input) && err == nil {
			t.Error("non-UTF8 input was accepted")
		}
	})
}

// FuzzParseAllIDs keeps every ID type on the same validation path.
func FuzzParseAllIDs(f *testing.F) {
	f.Add("550e8400-e29b-41d4-a716-446655440000")
	f.Add("")
	f.Add("invalid")

	f.Fuzz(func(t *testing.T, input string) {
		_, errHolder := ParsePolicyholderID(input)
		_, errPolicy := ParsePolicyID(input)
		_, errClaim := ParseClaimID(input)
		_, errDoc := ParseDocumentID(input)

		if (errHolder == nil) != (errPolicy == nil) ||
			(errHolder == nil) != (errClaim == nil) ||
			(errHolder == nil) != (errDoc == nil) {
			t.Error("inconsistent parsing across ID types")
		}
	})
}
