package geo

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"
)

var (
	// ErrCoordinateGroups is returned when the input does not hold exactly
	// one latitude and one longitude group.
	ErrCoordinateGroups = errors.New("expected exactly two coordinate groups")

	ErrMalformedCoordinate = errors.New("malformed coordinate")
)

// Fix is a decimal-degree position, latitude first.
type Fix struct {
	Latitude  float64
	Longitude float64
}

func (f Fix) String() string {
	return formatDegrees(f.Latitude) + ", " + formatDegrees(f.Longitude)
}

// separators split DMS text into numeric and direction tokens.
var separators = strings.NewReplacer(
	"deg", " ",
	"°", " ",
	"'", " ",
	"′", " ",
	"\"", " ",
	"″", " ",
	",", " ",
)

type group struct {
	direction byte
	value     float64
}

// ToDecimalDegrees converts a position such as
// `40 deg 26' 46.00" N, 79 deg 58' 56.00" W` to decimal degrees. Input with
// no direction letter is taken as already decimal ("lat, lon"). Input that
// starts with the longitude is swapped so the result is always (lat, lon).
func ToDecimalDegrees(input string) (Fix, error) {
	cleaned := separators.Replace(input)
	if !strings.ContainsAny(strings.ToUpper(cleaned), "NSEW") {
		return parseDecimal(input)
	}

	var (
		groups []group
		acc    float64
		terms  int
	)

	addTerm := func(tok string) error {
		v, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			return fmt.Errorf("%w: %q is not a number", ErrMalformedCoordinate, tok)
		}
		if terms > 2 {
			return fmt.Errorf("%w: too many terms before direction", ErrMalformedCoordinate)
		}
		acc += v / math.Pow(60, float64(terms))
		terms++
		return nil
	}

	for _, tok := range strings.Fields(cleaned) {
		if isNumeric(tok) {
			if err := addTerm(tok); err != nil {
				return Fix{}, err
			}
			continue
		}

		dir := byte(unicode.ToUpper(rune(tok[0])))
		if !strings.ContainsRune("NSEW", rune(dir)) {
			return Fix{}, fmt.Errorf("%w: unexpected token %q", ErrMalformedCoordinate, tok)
		}
		if terms == 0 {
			return Fix{}, fmt.Errorf("%w: direction %c without degrees", ErrMalformedCoordinate, dir)
		}

		value := acc
		if dir == 'S' || dir == 'W' {
			value = -value
		}
		groups = append(groups, group{direction: dir, value: value})
		acc, terms = 0, 0

		// a direction fused with the next group's degrees, e.g. "N79"
		if rest := tok[1:]; rest != "" {
			if err := addTerm(rest); err != nil {
				return Fix{}, err
			}
		}
	}

	if terms > 0 {
		return Fix{}, fmt.Errorf("%w: trailing value without direction", ErrMalformedCoordinate)
	}
	if len(groups) != 2 {
		return Fix{}, fmt.Errorf("%w: got %d", ErrCoordinateGroups, len(groups))
	}

	fix := Fix{Latitude: groups[0].value, Longitude: groups[1].value}
	if first := groups[0].direction; first == 'E' || first == 'W' {
		fix.Latitude, fix.Longitude = fix.Longitude, fix.Latitude
	}
	return fix, nil
}

func parseDecimal(input string) (Fix, error) {
	parts := strings.Split(input, ",")
	if len(parts) != 2 {
		return Fix{}, fmt.Errorf("%w: %q is not \"lat, lon\"", ErrMalformedCoordinate, input)
	}

	lat, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return Fix{}, fmt.Errorf("%w: latitude %q", ErrMalformedCoordinate, parts[0])
	}
	lon, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return Fix{}, fmt.Errorf("%w: longitude %q", ErrMalformedCoordinate, parts[1])
	}
	return Fix{Latitude: lat, Longitude: lon}, nil
}

func isNumeric(tok string) bool {
	_, err := strconv.ParseFloat(tok, 64)
	return err == nil
}

func formatDegrees(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
