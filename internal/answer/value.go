package answer

import (
	"fmt"
	"slices"
	"sort"
)

// Value is a learner answer or rule parameter. Exactly one variant is
// populated, identified by Tag. The zero Value has TagUnset.
//
// Values are built only through the New* constructors, which keep the
// tag and the populated field in sync.
type Value struct {
	tag Tag

	normalizedString       string
	signedInt              int64
	nonNegativeInt         uint64
	real                   float64
	boolValue              bool
	numberWithUnits        NumberWithUnits
	setOfHTMLString        SetOfHTMLString
	fraction               Fraction
	listOfSetsOfHTMLString ListOfSetsOfHTMLString
	imageWithRegions       ImageWithRegions
	clickOnImage           ClickOnImage
	ratioExpression        RatioExpression
}

func NewNormalizedString(s string) Value {
	return Value{tag: TagNormalizedString, normalizedString: s}
}

func NewSignedInt(i int64) Value {
	return Value{tag: TagSignedInt, signedInt: i}
}

func NewNonNegativeInt(n uint64) Value {
	return Value{tag: TagNonNegativeInt, nonNegativeInt: n}
}

func NewReal(f float64) Value {
	return Value{tag: TagReal, real: f}
}

func NewBool(b bool) Value {
	return Value{tag: TagBool, boolValue: b}
}

func NewNumberWithUnits(n NumberWithUnits) Value {
	n.Units = slices.Clone(n.Units)
	return Value{tag: TagNumberWithUnits, numberWithUnits: n}
}

func NewSetOfHTMLString(s SetOfHTMLString) Value {
	return Value{tag: TagSetOfHTMLString, setOfHTMLString: cloneNonNil(s)}
}

func NewFraction(f Fraction) Value {
	return Value{tag: TagFraction, fraction: f}
}

func NewListOfSetsOfHTMLString(l ListOfSetsOfHTMLString) Value {
	out := make(ListOfSetsOfHTMLString, len(l))
	for i, s := range l {
		out[i] = cloneNonNil(s)
	}
	return Value{tag: TagListOfSetsOfHTMLString, listOfSetsOfHTMLString: out}
}

func NewImageWithRegions(img ImageWithRegions) Value {
	img.LabeledRegions = slices.Clone(img.LabeledRegions)
	return Value{tag: TagImageWithRegions, imageWithRegions: img}
}

func NewClickOnImage(c ClickOnImage) Value {
	c.ClickedRegions = slices.Clone(c.ClickedRegions)
	return Value{tag: TagClickOnImage, clickOnImage: c}
}

func NewRatioExpression(r RatioExpression) Value {
	return Value{tag: TagRatioExpression, ratioExpression: cloneNonNil(r)}
}

// cloneNonNil copies s; a nil slice becomes empty so it encodes as [].
func cloneNonNil[S ~[]E, E any](s S) S {
	if s == nil {
		return S{}
	}
	return slices.Clone(s)
}

// Tag returns the discriminant of the populated variant.
func (v Value) Tag() Tag { return v.tag }

// The accessors below return the payload of one variant. They do not check
// the tag: a mismatched accessor returns the zero payload. Callers that
// receive values from outside should compare Tag first.

func (v Value) NormalizedString() string                       { return v.normalizedString }
func (v Value) SignedInt() int64                               { return v.signedInt }
func (v Value) NonNegativeInt() uint64                         { return v.nonNegativeInt }
func (v Value) Real() float64                                  { return v.real }
func (v Value) Bool() bool                                     { return v.boolValue }
func (v Value) NumberWithUnits() NumberWithUnits               { return v.numberWithUnits }
func (v Value) SetOfHTMLString() SetOfHTMLString               { return v.setOfHTMLString }
func (v Value) Fraction() Fraction                             { return v.fraction }
func (v Value) ListOfSetsOfHTMLString() ListOfSetsOfHTMLString { return v.listOfSetsOfHTMLString }
func (v Value) ImageWithRegions() ImageWithRegions             { return v.imageWithRegions }
func (v Value) ClickOnImage() ClickOnImage                     { return v.clickOnImage }
func (v Value) RatioExpression() RatioExpression               { return v.ratioExpression }

// payload returns the populated variant as an untyped value.
func (v Value) payload() any {
	switch v.tag {
	case TagNormalizedString:
		return v.normalizedString
	case TagSignedInt:
		return v.signedInt
	case TagNonNegativeInt:
		return v.nonNegativeInt
	case TagReal:
		return v.real
	case TagBool:
		return v.boolValue
	case TagNumberWithUnits:
		return v.numberWithUnits
	case TagSetOfHTMLString:
		return v.setOfHTMLString
	case TagFraction:
		return v.fraction
	case TagListOfSetsOfHTMLString:
		return v.listOfSetsOfHTMLString
	case TagImageWithRegions:
		return v.imageWithRegions
	case TagClickOnImage:
		return v.clickOnImage
	case TagRatioExpression:
		return v.ratioExpression
	default:
		return nil
	}
}

func (v Value) String() string {
	if v.tag == TagUnset {
		return v.tag.String()
	}
	return fmt.Sprintf("%s(%v)", v.tag, v.payload())
}

// Parameters maps rule parameter names to their values.
type Parameters map[string]Value

// Names returns the parameter names in sorted order.
func (p Parameters) Names() []string {
	names := make([]string, 0, len(p))
	for name := range p {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
