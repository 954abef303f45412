package menu

import "strings"

// Selection is a parsed menu choice.
type Selection int

// Menu choices. Anything unrecognised parses to SelectInvalid.
const (
	SelectInvalid Selection = iota
	SelectDirect
	SelectSumDiff
	SelectProductQuotient
	SelectExit
)

// ParseSelection trims the token and maps "1" through "4" to a Selection.
func ParseSelection(token string) Selection {
	switch strings.TrimSpace(token) {
	case "1":
		return SelectDirect
	case "2":
		return SelectSumDiff
	case "3":
		return SelectProductQuotient
	case "4":
		return SelectExit
	default:
		return SelectInvalid
	}
}

func (s Selection) String() string {
	switch s {
	case SelectDirect:
		return "direct"
	case SelectSumDiff:
		return "sum-difference"
	case SelectProductQuotient:
		return "product-quotient"
	case SelectExit:
		return "exit"
	default:
		return "invalid"
	}
}
