package classifier

import (
	"errors"
	"fmt"
	"testing"

	"github.com/abhisek/answerclass/internal/answer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetExtractor_RoundTrip(t *testing.T) {
	fraction := answer.Fraction{IsNegative: true, WholeNumber: 1, Numerator: 2, Denominator: 3}

	tests := []struct {
		name  string
		value answer.Value
		check func(t *testing.T)
	}{
		{"normalized string", answer.NewNormalizedString("abc"), func(t *testing.T) {
			assertRoundTrip(t, answer.TagNormalizedString, answer.NewNormalizedString, "abc")
		}},
		{"signed int", answer.NewSignedInt(-7), func(t *testing.T) {
			assertRoundTrip(t, answer.TagSignedInt, answer.NewSignedInt, int64(-7))
		}},
		{"non-negative int", answer.NewNonNegativeInt(7), func(t *testing.T) {
			assertRoundTrip(t, answer.TagNonNegativeInt, answer.NewNonNegativeInt, uint64(7))
		}},
		{"real", answer.NewReal(2.5), func(t *testing.T) {
			assertRoundTrip(t, answer.TagReal, answer.NewReal, 2.5)
		}},
		{"bool", answer.NewBool(true), func(t *testing.T) {
			assertRoundTrip(t, answer.TagBool, answer.NewBool, true)
		}},
		{"fraction", answer.NewFraction(fraction), func(t *testing.T) {
			assertRoundTrip(t, answer.TagFraction, answer.NewFraction, fraction)
		}},
		{"number with units", answer.NewNumberWithUnits(answer.NumberWithUnits{}), func(t *testing.T) {
			assertRoundTrip(t, answer.TagNumberWithUnits, answer.NewNumberWithUnits, answer.NumberWithUnits{
				Kind:  answer.NumberKindReal,
				Real:  9.8,
				Units: []answer.NumberUnit{{Unit: "m", Exponent: 1}, {Unit: "s", Exponent: -2}},
			})
		}},
		{"set of html", answer.NewSetOfHTMLString(nil), func(t *testing.T) {
			assertRoundTrip(t, answer.TagSetOfHTMLString, answer.NewSetOfHTMLString, answer.SetOfHTMLString{"a", "b"})
		}},
		{"list of sets", answer.NewListOfSetsOfHTMLString(nil), func(t *testing.T) {
			assertRoundTrip(t, answer.TagListOfSetsOfHTMLString, answer.NewListOfSetsOfHTMLString,
				answer.ListOfSetsOfHTMLString{{"a"}, {"b", "c"}})
		}},
		{"image with regions", answer.NewImageWithRegions(answer.ImageWithRegions{}), func(t *testing.T) {
			assertRoundTrip(t, answer.TagImageWithRegions, answer.NewImageWithRegions, answer.ImageWithRegions{
				ImagePath:      "map.png",
				LabeledRegions: []answer.LabeledRegion{{Label: "lake"}},
			})
		}},
		{"click on image", answer.NewClickOnImage(answer.ClickOnImage{}), func(t *testing.T) {
			assertRoundTrip(t, answer.TagClickOnImage, answer.NewClickOnImage, answer.ClickOnImage{
				ClickPosition:  answer.Point2D{X: 0.25, Y: 0.5},
				ClickedRegions: []string{"lake"},
			})
		}},
		{"ratio expression", answer.NewRatioExpression(nil), func(t *testing.T) {
			assertRoundTrip(t, answer.TagRatioExpression, answer.NewRatioExpression, answer.RatioExpression{1, 2, 3})
		}},
	}

	covered := make(map[answer.Tag]bool)
	for _, tt := range tests {
		covered[tt.value.Tag()] = true
		t.Run(tt.name, tt.check)
	}
	for _, tag := range RegisteredTags() {
		assert.True(t, covered[tag], "no round-trip case for %s", tag)
	}
}

func assertRoundTrip[T any](t *testing.T, tag answer.Tag, wrap func(T) answer.Value, v T) {
	t.Helper()
	extract, err := GetExtractor[T](tag)
	require.NoError(t, err)
	assert.Equal(t, v, extract(wrap(v)))
}

func TestGetExtractor_Unregistered(t *testing.T) {
	_, err := GetExtractor[string](answer.TagUnset)
	require.Error(t, err)

	var unregistered *UnregisteredTagError
	require.ErrorAs(t, err, &unregistered)
	assert.Equal(t, answer.TagUnset, unregistered.Tag)
	assert.True(t, errors.Is(err, ErrMiswired))
}

func TestGetExtractor_TypeMismatch(t *testing.T) {
	_, err := GetExtractor[string](answer.TagRatioExpression)
	require.Error(t, err)

	var mismatch *ExtractorTypeMismatchError
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, "string", mismatch.Requested)
	assert.Equal(t, "answer.RatioExpression", mismatch.Registered)
	assert.Contains(t, err.Error(), "string")
	assert.Contains(t, err.Error(), "answer.RatioExpression")
	assert.ErrorIs(t, err, ErrMiswired)
}

func TestGetExtractor_InterfaceTarget(t *testing.T) {
	extract, err := GetExtractor[any](answer.TagNonNegativeInt)
	require.NoError(t, err)
	assert.Equal(t, uint64(4), extract(answer.NewNonNegativeInt(4)))

	// Fraction does not implement fmt.Stringer.
	_, err = GetExtractor[fmt.Stringer](answer.TagFraction)
	var mismatch *ExtractorTypeMismatchError
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, "fmt.Stringer", mismatch.Requested)
}

func TestRegisteredTags_CoversAllVariants(t *testing.T) {
	assert.Equal(t, answer.AllTags(), RegisteredTags())
}
