package answer

import (
	"encoding/json"
	"fmt"
)

// envelope is the wire form of a Value.
type envelope struct {
	Type  string          `json:"type"`
	Value json.RawMessage `json:"value"`
}

// InvalidValueError reports a JSON document that does not describe a Value.
type InvalidValueError struct {
	Err error
}

func (e *InvalidValueError) Error() string {
	return fmt.Sprintf("invalid answer value: %v", e.Err)
}

func (e *InvalidValueError) Unwrap() error { return e.Err }

func (v Value) MarshalJSON() ([]byte, error) {
	if v.tag == TagUnset {
		return nil, fmt.Errorf("marshal answer value: no variant set")
	}
	raw, err := json.Marshal(v.payload())
	if err != nil {
		return nil, fmt.Errorf("marshal %s payload: %w", v.tag, err)
	}
	return json.Marshal(envelope{Type: v.tag.String(), Value: raw})
}

func (v *Value) UnmarshalJSON(data []byte) error {
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return &InvalidValueError{Err: fmt.Errorf("invalid JSON: %w", err)}
	}
	if err := validateDocument(doc); err != nil {
		return &InvalidValueError{Err: err}
	}

	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return &InvalidValueError{Err: err}
	}
	tag, err := ParseTag(env.Type)
	if err != nil {
		return &InvalidValueError{Err: err}
	}
	decoded, err := decodePayload(tag, env.Value)
	if err != nil {
		return &InvalidValueError{Err: fmt.Errorf("decode %s: %w", tag, err)}
	}
	*v = decoded
	return nil
}

func decodePayload(tag Tag, raw json.RawMessage) (Value, error) {
	switch tag {
	case TagNormalizedString:
		var s string
		err := json.Unmarshal(raw, &s)
		return NewNormalizedString(s), err
	case TagSignedInt:
		var i int64
		err := json.Unmarshal(raw, &i)
		return NewSignedInt(i), err
	case TagNonNegativeInt:
		var n uint64
		err := json.Unmarshal(raw, &n)
		return NewNonNegativeInt(n), err
	case TagReal:
		var f float64
		err := json.Unmarshal(raw, &f)
		return NewReal(f), err
	case TagBool:
		var b bool
		err := json.Unmarshal(raw, &b)
		return NewBool(b), err
	case TagNumberWithUnits:
		var n NumberWithUnits
		err := json.Unmarshal(raw, &n)
		return NewNumberWithUnits(n), err
	case TagSetOfHTMLString:
		var s SetOfHTMLString
		err := json.Unmarshal(raw, &s)
		return NewSetOfHTMLString(s), err
	case TagFraction:
		var f Fraction
		err := json.Unmarshal(raw, &f)
		return NewFraction(f), err
	case TagListOfSetsOfHTMLString:
		var l ListOfSetsOfHTMLString
		err := json.Unmarshal(raw, &l)
		return NewListOfSetsOfHTMLString(l), err
	case TagImageWithRegions:
		var img ImageWithRegions
		err := json.Unmarshal(raw, &img)
		return NewImageWithRegions(img), err
	case TagClickOnImage:
		var c ClickOnImage
		err := json.Unmarshal(raw, &c)
		return NewClickOnImage(c), err
	case TagRatioExpression:
		var r RatioExpression
		err := json.Unmarshal(raw, &r)
		return NewRatioExpression(r), err
	default:
		return Value{}, fmt.Errorf("unsupported answer type %s", tag)
	}
}

// ParseValue decodes a single encoded Value.
func ParseValue(data []byte) (Value, error) {
	var v Value
	if err := json.Unmarshal(data, &v); err != nil {
		return Value{}, err
	}
	return v, nil
}

// ParseParameters decodes a JSON object of name → encoded Value.
func ParseParameters(data []byte) (Parameters, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, &InvalidValueError{Err: fmt.Errorf("invalid parameters JSON: %w", err)}
	}
	params := make(Parameters, len(raw))
	for name, msg := range raw {
		v, err := ParseValue(msg)
		if err != nil {
			return nil, fmt.Errorf("parameter %q: %w", name, err)
		}
		params[name] = v
	}
	return params, nil
}
