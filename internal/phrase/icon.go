package phrase

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

const (
	iconPrefix = "U"
	groupLen   = 4
	// Groups at or below planeMax never encode a visible character; they
	// carry the plane of the scalar spelled by the next group.
	planeMax = 0x10
)

// DecodeIcon turns an icon code into the characters it stands for. Codes
// without the leading "U" are already literal and are returned as is.
func DecodeIcon(code string) (string, error) {
	if !strings.HasPrefix(code, iconPrefix) {
		return code, nil
	}

	digits := code[len(iconPrefix):]
	if len(digits) == 0 || len(digits)%groupLen != 0 {
		return "", &IconCodeError{Code: code, Reason: fmt.Sprintf("expected groups of %d hex digits", groupLen)}
	}

	var sb strings.Builder
	plane := rune(-1)
	for i := 0; i < len(digits); i += groupLen {
		group := digits[i : i+groupLen]
		v, err := strconv.ParseUint(group, 16, 16)
		if err != nil {
			return "", &IconCodeError{Code: code, Reason: fmt.Sprintf("invalid hex group %q", group)}
		}

		if plane < 0 && v <= planeMax {
			plane = rune(v)
			continue
		}

		r := rune(v)
		if plane >= 0 {
			r |= plane << 16
			plane = -1
		}
		if !utf8.ValidRune(r) {
			return "", &IconCodeError{Code: code, Reason: fmt.Sprintf("U+%04X is not a valid scalar value", r)}
		}
		sb.WriteRune(r)
	}
	if plane >= 0 {
		return "", &IconCodeError{Code: code, Reason: "plane group without a following group"}
	}

	return sb.String(), nil
}
