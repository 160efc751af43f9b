// Package params implements the parameter context lifecycle and the
// twelve stable curve identifiers, per spec.md §3 and §6: a params.Ctx
// bundles the active field polynomial, curve family/coefficients, and
// the cached tables every fb/eb/pb call reads, built once by Set and
// torn down by Clean.
package params

// ID names one of the twelve stable curve identifiers this build ships
// presets for: five ordinary (NIST B-) curves, five Koblitz (NIST K-)
// curves, and two supersingular (pairing-friendly) curves.
type ID int

// Values match spec.md §6's wire-visible identifier table exactly:
// B-/K-curves interleaved by size, then the two supersingular curves.
const (
	NISTB163 ID = 1
	NISTK163 ID = 2
	NISTB233 ID = 3
	NISTK233 ID = 4
	NISTB283 ID = 5
	NISTK283 ID = 6
	NISTB409 ID = 7
	NISTK409 ID = 8
	NISTB571 ID = 9
	NISTK571 ID = 10
	ETAS271  ID = 11
	ETAS1223 ID = 12
)

// String names an ID, used in lifecycle log fields.
func (id ID) String() string {
	switch id {
	case NISTB163:
		return "NIST-B163"
	case NISTB233:
		return "NIST-B233"
	case NISTB283:
		return "NIST-B283"
	case NISTB409:
		return "NIST-B409"
	case NISTB571:
		return "NIST-B571"
	case NISTK163:
		return "NIST-K163"
	case NISTK233:
		return "NIST-K233"
	case NISTK283:
		return "NIST-K283"
	case NISTK409:
		return "NIST-K409"
	case NISTK571:
		return "NIST-K571"
	case ETAS271:
		return "ETA-S271"
	case ETAS1223:
		return "ETA-S1223"
	default:
		return "unknown"
	}
}
