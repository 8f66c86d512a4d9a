package auditlog

import (
	"math/rand"
	"strings"
)

// Obfuscate scrambles one log line for the shadow trail. The transform
// is fixed by the existing stamp.log format and is deliberately not an
// encryption scheme: after every input character one uniformly random
// lowercase letter is inserted, then every character of the doubled
// sequence is shifted to (code point + 7) mod 255. The mapping is lossy
// and has no decoder anywhere; the shadow log is write-only.
func Obfuscate(s string, rng *rand.Rand) string {
	shift := func(r rune) rune { return (r + 7) % 255 }

	var b strings.Builder
	b.Grow(2 * len(s))
	for _, r := range s {
		pad := rune('a' + rng.Intn(26))
		b.WriteRune(shift(r))
		b.WriteRune(shift(pad))
	}
	return b.String()
}
