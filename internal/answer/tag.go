package answer

import "fmt"

// Tag identifies which variant of a Value is populated.
type Tag uint8

const (
	TagUnset Tag = iota
	TagNormalizedString
	TagSignedInt
	TagNonNegativeInt
	TagReal
	TagBool
	TagNumberWithUnits
	TagSetOfHTMLString
	TagFraction
	TagListOfSetsOfHTMLString
	TagImageWithRegions
	TagClickOnImage
	TagRatioExpression
)

var tagNames = [...]string{
	TagUnset:                  "OBJECTTYPE_NOT_SET",
	TagNormalizedString:       "NORMALIZED_STRING",
	TagSignedInt:              "SIGNED_INT",
	TagNonNegativeInt:         "NON_NEGATIVE_INT",
	TagReal:                   "REAL",
	TagBool:                   "BOOL_VALUE",
	TagNumberWithUnits:        "NUMBER_WITH_UNITS",
	TagSetOfHTMLString:        "SET_OF_HTML_STRING",
	TagFraction:               "FRACTION",
	TagListOfSetsOfHTMLString: "LIST_OF_SETS_OF_HTML_STRING",
	TagImageWithRegions:       "IMAGE_WITH_REGIONS",
	TagClickOnImage:           "CLICK_ON_IMAGE",
	TagRatioExpression:        "RATIO_EXPRESSION",
}

func (t Tag) String() string {
	if int(t) < len(tagNames) {
		return tagNames[t]
	}
	return fmt.Sprintf("Tag(%d)", uint8(t))
}

// AllTags returns every populated variant tag in declaration order.
// TagUnset is not included.
func AllTags() []Tag {
	tags := make([]Tag, 0, len(tagNames)-1)
	for t := TagNormalizedString; int(t) < len(tagNames); t++ {
		tags = append(tags, t)
	}
	return tags
}

// ParseTag returns the tag whose name is s, e.g. "RATIO_EXPRESSION".
func ParseTag(s string) (Tag, error) {
	for i, name := range tagNames {
		if i == int(TagUnset) {
			continue
		}
		if name == s {
			return Tag(i), nil
		}
	}
	return TagUnset, fmt.Errorf("unknown answer type %q", s)
}
