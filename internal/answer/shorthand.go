package answer

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseShorthand parses the compact text form of a value, the way a learner
// would type it:
//
//	NORMALIZED_STRING            any text
//	SIGNED_INT                   -12
//	NON_NEGATIVE_INT             007
//	REAL                         3.50
//	BOOL_VALUE                   true
//	FRACTION                     -1 2/3, 3/4 or 5
//	RATIO_EXPRESSION             1:2:3
//	SET_OF_HTML_STRING           a, b, c
//	LIST_OF_SETS_OF_HTML_STRING  a, b; c; d
//	NUMBER_WITH_UNITS            2.5 km s^-1 or 1/2 m^2
//	CLICK_ON_IMAGE               0.25,0.5 @ A, B
//
// IMAGE_WITH_REGIONS has no shorthand; use the JSON encoding.
func ParseShorthand(tag Tag, s string) (Value, error) {
	v, err := parseShorthand(tag, strings.TrimSpace(s))
	if err != nil {
		return Value{}, fmt.Errorf("parse %s %q: %w", tag, s, err)
	}
	return v, nil
}

func parseShorthand(tag Tag, s string) (Value, error) {
	switch tag {
	case TagNormalizedString:
		return NewNormalizedString(s), nil

	case TagSignedInt:
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return Value{}, fmt.Errorf("invalid integer: %w", err)
		}
		return NewSignedInt(n), nil

	case TagNonNegativeInt:
		n, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			return Value{}, fmt.Errorf("invalid non-negative integer: %w", err)
		}
		return NewNonNegativeInt(n), nil

	case TagReal:
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return Value{}, fmt.Errorf("invalid decimal: %w", err)
		}
		return NewReal(f), nil

	case TagBool:
		b, err := strconv.ParseBool(s)
		if err != nil {
			return Value{}, fmt.Errorf("invalid boolean: %w", err)
		}
		return NewBool(b), nil

	case TagFraction:
		f, err := parseFraction(s)
		if err != nil {
			return Value{}, err
		}
		return NewFraction(f), nil

	case TagRatioExpression:
		r, err := parseRatio(s)
		if err != nil {
			return Value{}, err
		}
		return NewRatioExpression(r), nil

	case TagSetOfHTMLString:
		return NewSetOfHTMLString(splitList(s, ",")), nil

	case TagListOfSetsOfHTMLString:
		var list ListOfSetsOfHTMLString
		for _, group := range splitList(s, ";") {
			list = append(list, splitList(group, ","))
		}
		return NewListOfSetsOfHTMLString(list), nil

	case TagNumberWithUnits:
		n, err := parseNumberWithUnits(s)
		if err != nil {
			return Value{}, err
		}
		return NewNumberWithUnits(n), nil

	case TagClickOnImage:
		c, err := parseClick(s)
		if err != nil {
			return Value{}, err
		}
		return NewClickOnImage(c), nil

	default:
		return Value{}, fmt.Errorf("no shorthand form, use the JSON encoding")
	}
}

// parseFraction parses "[-][whole ]num/den" or a bare whole number.
func parseFraction(s string) (Fraction, error) {
	var f Fraction
	if rest, ok := strings.CutPrefix(s, "-"); ok {
		f.IsNegative = true
		s = strings.TrimSpace(rest)
	}

	fields := strings.Fields(s)
	switch len(fields) {
	case 1:
		if !strings.Contains(fields[0], "/") {
			whole, err := parseUint32(fields[0])
			if err != nil {
				return Fraction{}, fmt.Errorf("invalid whole number: %w", err)
			}
			f.WholeNumber, f.Denominator = whole, 1
			return f, nil
		}
	case 2:
		whole, err := parseUint32(fields[0])
		if err != nil {
			return Fraction{}, fmt.Errorf("invalid whole number: %w", err)
		}
		f.WholeNumber = whole
	default:
		return Fraction{}, fmt.Errorf("invalid fraction format")
	}

	numText, denText, ok := strings.Cut(fields[len(fields)-1], "/")
	if !ok {
		return Fraction{}, fmt.Errorf("invalid fraction format")
	}
	num, err := parseUint32(numText)
	if err != nil {
		return Fraction{}, fmt.Errorf("invalid numerator: %w", err)
	}
	den, err := parseUint32(denText)
	if err != nil {
		return Fraction{}, fmt.Errorf("invalid denominator: %w", err)
	}
	if den == 0 {
		return Fraction{}, fmt.Errorf("zero denominator")
	}
	f.Numerator, f.Denominator = num, den
	return f, nil
}

func parseRatio(s string) (RatioExpression, error) {
	parts := strings.Split(s, ":")
	if len(parts) < 2 {
		return nil, fmt.Errorf("a ratio needs at least two terms")
	}
	r := make(RatioExpression, len(parts))
	for i, p := range parts {
		term, err := parseUint32(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("invalid term %d: %w", i+1, err)
		}
		r[i] = term
	}
	return r, nil
}

// parseNumberWithUnits reads a magnitude followed by unit[^exponent] tokens.
// A magnitude containing "/" is a fraction, anything else a real.
func parseNumberWithUnits(s string) (NumberWithUnits, error) {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return NumberWithUnits{}, fmt.Errorf("missing magnitude")
	}

	var n NumberWithUnits
	if strings.Contains(fields[0], "/") {
		f, err := parseFraction(fields[0])
		if err != nil {
			return NumberWithUnits{}, err
		}
		n.Kind, n.Fraction = NumberKindFraction, f
	} else {
		r, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			return NumberWithUnits{}, fmt.Errorf("invalid magnitude: %w", err)
		}
		n.Kind, n.Real = NumberKindReal, r
	}

	for _, tok := range fields[1:] {
		name, expText, hasExp := strings.Cut(tok, "^")
		if name == "" {
			return NumberWithUnits{}, fmt.Errorf("invalid unit %q", tok)
		}
		unit := NumberUnit{Unit: name, Exponent: 1}
		if hasExp {
			exp, err := strconv.ParseInt(expText, 10, 32)
			if err != nil {
				return NumberWithUnits{}, fmt.Errorf("invalid exponent in %q: %w", tok, err)
			}
			unit.Exponent = int32(exp)
		}
		n.Units = append(n.Units, unit)
	}
	return n, nil
}

// parseClick reads "x,y" optionally followed by "@ region, region".
func parseClick(s string) (ClickOnImage, error) {
	pos, regions, _ := strings.Cut(s, "@")
	xText, yText, ok := strings.Cut(pos, ",")
	if !ok {
		return ClickOnImage{}, fmt.Errorf("click position must be x,y")
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(xText), 32)
	if err != nil {
		return ClickOnImage{}, fmt.Errorf("invalid x: %w", err)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(yText), 32)
	if err != nil {
		return ClickOnImage{}, fmt.Errorf("invalid y: %w", err)
	}
	return ClickOnImage{
		ClickPosition:  Point2D{X: float32(x), Y: float32(y)},
		ClickedRegions: splitList(regions, ","),
	}, nil
}

// splitList splits on sep, trims each item and drops empty ones.
func splitList(s, sep string) []string {
	var out []string
	for _, item := range strings.Split(s, sep) {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

func parseUint32(s string) (uint32, error) {
	n, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, err
	}
	return uint32(n), nil
}
