package contact

import "strings"

// NormalizeEmail canonicalizes an email address for matching: trims
// whitespace, lowercases, and strips dots from the local part only
// (Gmail treats john.doe and johndoe as the same mailbox, and attendee
// lists routinely disagree with the roster on dotting). Dots in the
// domain are significant and preserved.
//
// Callers must guard against empty addresses; "" normalizes to "@".
func NormalizeEmail(email string) string {
	email = strings.ToLower(strings.TrimSpace(email))
	local, domain, _ := strings.Cut(email, "@")
	return strings.ReplaceAll(local, ".", "") + "@" + domain
}

// MatchEmail reports whether two addresses identify the same person
// under NormalizeEmail equivalence.
func MatchEmail(a, b string) bool {
	return NormalizeEmail(a) == NormalizeEmail(b)
}
