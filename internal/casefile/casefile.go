// Package casefile loads classification cases from YAML or JSON files.
//
// A case file looks like:
//
//	cases:
//	  - name: reduced ratio
//	    interaction: RatioExpressionInput
//	    rule: IsEquivalent
//	    answer: {type: RATIO_EXPRESSION, value: [2, 4, 6]}
//	    inputs:
//	      x: {type: RATIO_EXPRESSION, value: [1, 2, 3]}
//	    expect: true
//
// Answers and inputs use the same {"type", "value"} encoding as the answer
// package and are schema-checked on load.
package casefile

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/abhisek/answerclass/internal/answer"
	"gopkg.in/yaml.v3"
)

// Case is one answer to evaluate against one rule.
type Case struct {
	Name        string
	Interaction string
	Rule        string
	Answer      answer.Value
	Inputs      answer.Parameters

	// Expect is the verdict the case author expects, if stated.
	Expect *bool
}

type rawCase struct {
	Name        string         `yaml:"name"`
	Interaction string         `yaml:"interaction"`
	Rule        string         `yaml:"rule"`
	Answer      any            `yaml:"answer"`
	Inputs      map[string]any `yaml:"inputs"`
	Expect      *bool          `yaml:"expect"`
}

type rawFile struct {
	Cases []rawCase `yaml:"cases"`
}

// Load reads and parses a case file.
func Load(path string) ([]Case, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read case file: %w", err)
	}
	cases, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cases, nil
}

// Parse decodes case file content. JSON input is accepted since it is
// valid YAML.
func Parse(data []byte) ([]Case, error) {
	var f rawFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse cases: %w", err)
	}
	if len(f.Cases) == 0 {
		return nil, fmt.Errorf("no cases defined")
	}

	out := make([]Case, 0, len(f.Cases))
	for i, rc := range f.Cases {
		c, err := rc.decode()
		if err != nil {
			return nil, fmt.Errorf("case %d (%s): %w", i+1, rc.label(), err)
		}
		out = append(out, c)
	}
	return out, nil
}

func (rc rawCase) label() string {
	if rc.Name != "" {
		return rc.Name
	}
	return rc.Interaction + "." + rc.Rule
}

func (rc rawCase) decode() (Case, error) {
	if rc.Interaction == "" {
		return Case{}, fmt.Errorf("interaction is required")
	}
	if rc.Rule == "" {
		return Case{}, fmt.Errorf("rule is required")
	}
	if rc.Answer == nil {
		return Case{}, fmt.Errorf("answer is required")
	}

	ans, err := decodeValue(rc.Answer)
	if err != nil {
		return Case{}, fmt.Errorf("answer: %w", err)
	}
	params := make(answer.Parameters, len(rc.Inputs))
	for name, raw := range rc.Inputs {
		v, err := decodeValue(raw)
		if err != nil {
			return Case{}, fmt.Errorf("input %q: %w", name, err)
		}
		params[name] = v
	}

	return Case{
		Name:        rc.label(),
		Interaction: rc.Interaction,
		Rule:        rc.Rule,
		Answer:      ans,
		Inputs:      params,
		Expect:      rc.Expect,
	}, nil
}

// decodeValue re-encodes a YAML-decoded tree as JSON so it goes through the
// same schema check as any other encoded value.
func decodeValue(raw any) (answer.Value, error) {
	data, err := json.Marshal(raw)
	if err != nil {
		return answer.Value{}, fmt.Errorf("encode: %w", err)
	}
	return answer.ParseValue(data)
}
