package answer

// NumberKind says which numeric part of a NumberWithUnits is meaningful.
type NumberKind string

const (
	NumberKindReal     NumberKind = "real"
	NumberKindFraction NumberKind = "fraction"
)

// NumberUnit is one unit factor, e.g. {"m", 1} or {"s", -2}.
type NumberUnit struct {
	Unit     string `json:"unit"`
	Exponent int32  `json:"exponent"`
}

// NumberWithUnits is a real or fractional magnitude with a list of units.
type NumberWithUnits struct {
	Kind     NumberKind   `json:"kind"`
	Real     float64      `json:"real,omitempty"`
	Fraction Fraction     `json:"fraction,omitempty"`
	Units    []NumberUnit `json:"units,omitempty"`
}

// Fraction is a mixed number: [-]WholeNumber Numerator/Denominator.
type Fraction struct {
	IsNegative  bool   `json:"is_negative,omitempty"`
	WholeNumber uint32 `json:"whole_number,omitempty"`
	Numerator   uint32 `json:"numerator"`
	Denominator uint32 `json:"denominator"`
}

// SetOfHTMLString is an unordered collection of HTML content ids.
type SetOfHTMLString []string

// ListOfSetsOfHTMLString is an ordered list of sets, as produced by
// drag-and-drop sorting where several items may share a position.
type ListOfSetsOfHTMLString []SetOfHTMLString

// Point2D is a position normalized to the image dimensions.
type Point2D struct {
	X float32 `json:"x"`
	Y float32 `json:"y"`
}

// NormalizedRectangle2D is an axis-aligned rectangle in normalized coordinates.
type NormalizedRectangle2D struct {
	UpperLeft  Point2D `json:"upper_left"`
	LowerRight Point2D `json:"lower_right"`
}

// LabeledRegion is a named rectangular area of an image.
type LabeledRegion struct {
	Label string                `json:"label"`
	Area  NormalizedRectangle2D `json:"area"`
}

// ImageWithRegions describes an image and its clickable regions.
type ImageWithRegions struct {
	ImagePath      string          `json:"image_path"`
	LabeledRegions []LabeledRegion `json:"labeled_regions,omitempty"`
}

// ClickOnImage is where a learner clicked and which regions contained the click.
type ClickOnImage struct {
	ClickPosition  Point2D  `json:"click_position"`
	ClickedRegions []string `json:"clicked_regions,omitempty"`
}

// RatioExpression is an ordered list of ratio terms, e.g. 1:2:3.
type RatioExpression []uint32
