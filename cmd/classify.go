package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/abhisek/answerclass/internal/answer"
	"github.com/abhisek/answerclass/internal/casefile"
	"github.com/abhisek/answerclass/internal/classifier"
	"github.com/abhisek/answerclass/internal/rules"
	"github.com/abhisek/answerclass/internal/store"
	"github.com/abhisek/answerclass/internal/ui/theme"
	"github.com/spf13/cobra"
)

var classifyCmd = &cobra.Command{
	Use:   "classify",
	Short: "Check answers against a rule",
	Long: `Evaluate one answer given with flags, or every case in a YAML/JSON case file.

Answers and inputs are encoded as {"type": "<ANSWER_TYPE>", "value": ...}, e.g.
  answerclass classify --interaction RatioExpressionInput --rule IsEquivalent \
    --answer '{"type":"RATIO_EXPRESSION","value":[2,4,6]}' \
    --inputs '{"x":{"type":"RATIO_EXPRESSION","value":[1,2,3]}}'

or, using the shorthand typed forms (types come from the rule definition):
  answerclass classify --interaction RatioExpressionInput --rule IsEquivalent \
    --answer-text 2:4:6 --arg x=1:2:3`,
	RunE: runClassify,
}

func init() {
	classifyCmd.Flags().StringP("file", "f", "", "Case file (YAML or JSON)")
	classifyCmd.Flags().String("interaction", "", "Interaction ID, e.g. RatioExpressionInput")
	classifyCmd.Flags().String("rule", "", "Rule type, e.g. IsEquivalent")
	classifyCmd.Flags().String("answer", "", "Encoded answer value (JSON)")
	classifyCmd.Flags().String("inputs", "{}", "Encoded rule inputs (JSON object of name to value)")
	classifyCmd.Flags().String("answer-text", "", "Answer in shorthand form, e.g. 2:4:6 or \"-1 2/3\"")
	classifyCmd.Flags().StringArray("arg", nil, "Rule input in shorthand form as name=text (repeatable)")
	classifyCmd.Flags().Bool("no-record", false, "Do not append verdicts to the verdict log")
	classifyCmd.MarkFlagsMutuallyExclusive("file", "interaction")
	classifyCmd.MarkFlagsMutuallyExclusive("answer", "answer-text")
	classifyCmd.MarkFlagsMutuallyExclusive("inputs", "arg")
}

func runClassify(cmd *cobra.Command, args []string) error {
	catalog, err := rules.NewCatalog()
	if err != nil {
		return fmt.Errorf("build rule catalog: %w", err)
	}

	cases, err := casesFromFlags(cmd, catalog)
	if err != nil {
		return err
	}

	var repo store.VerdictRepo
	noRecord, _ := cmd.Flags().GetBool("no-record")
	if cfg.RecordHistory && !noRecord {
		st, err := openStore(cmd)
		if err != nil {
			// The verdict log is optional; classification still runs.
			slog.Warn("verdict log unavailable", "error", err)
		} else {
			defer st.Close()
			repo = st.VerdictRepo()
		}
	}

	failed, err := classifyCases(cmd.Context(), cmd.OutOrStdout(), catalog, cases, repo)
	if err != nil {
		return err
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d cases failed", failed, len(cases))
	}
	return nil
}

func casesFromFlags(cmd *cobra.Command, catalog *rules.Catalog) ([]casefile.Case, error) {
	if path, _ := cmd.Flags().GetString("file"); path != "" {
		return casefile.Load(path)
	}

	interaction, _ := cmd.Flags().GetString("interaction")
	rule, _ := cmd.Flags().GetString("rule")
	rawAnswer, _ := cmd.Flags().GetString("answer")
	rawInputs, _ := cmd.Flags().GetString("inputs")
	answerText, _ := cmd.Flags().GetString("answer-text")
	args, _ := cmd.Flags().GetStringArray("arg")
	if interaction == "" || rule == "" || (rawAnswer == "" && answerText == "") {
		return nil, fmt.Errorf("either --file or all of --interaction, --rule and --answer (or --answer-text) are required")
	}

	c := casefile.Case{Name: interaction + "." + rule, Interaction: interaction, Rule: rule}

	if answerText != "" || len(args) > 0 {
		rc, err := catalog.Lookup(interaction, rule)
		if err != nil {
			return nil, err
		}
		c.Answer, c.Inputs, err = parseShorthandCase(rc.Definition(), answerText, args)
		if err != nil {
			return nil, err
		}
	}

	if rawAnswer != "" {
		ans, err := answer.ParseValue([]byte(rawAnswer))
		if err != nil {
			return nil, fmt.Errorf("--answer: %w", err)
		}
		c.Answer = ans
	}
	if len(args) == 0 {
		params, err := answer.ParseParameters([]byte(rawInputs))
		if err != nil {
			return nil, fmt.Errorf("--inputs: %w", err)
		}
		c.Inputs = params
	}
	return []casefile.Case{c}, nil
}

// parseShorthandCase reads the answer and name=text arguments using the
// types the rule declares. An empty answerText leaves the answer unset.
func parseShorthandCase(def classifier.Definition, answerText string, args []string) (answer.Value, answer.Parameters, error) {
	var ans answer.Value
	if answerText != "" {
		v, err := answer.ParseShorthand(def.AnswerTag, answerText)
		if err != nil {
			return answer.Value{}, nil, fmt.Errorf("--answer-text: %w", err)
		}
		ans = v
	}

	tags := make(map[string]answer.Tag, len(def.Parameters))
	for _, p := range def.Parameters {
		tags[p.Name] = p.Tag
	}

	params := make(answer.Parameters, len(args))
	for _, arg := range args {
		name, text, ok := strings.Cut(arg, "=")
		if !ok {
			return answer.Value{}, nil, fmt.Errorf("--arg %q: expected name=text", arg)
		}
		tag, ok := tags[name]
		if !ok {
			return answer.Value{}, nil, fmt.Errorf("--arg %q: rule has no parameter %q", arg, name)
		}
		v, err := answer.ParseShorthand(tag, text)
		if err != nil {
			return answer.Value{}, nil, fmt.Errorf("--arg %s: %w", name, err)
		}
		params[name] = v
	}
	return ans, params, nil
}

// classifyCases evaluates every case, prints one line per case and records
// verdicts when repo is non-nil. It returns how many cases failed: either
// the rule could not be evaluated or the verdict differed from Expect.
func classifyCases(ctx context.Context, out io.Writer, catalog *rules.Catalog, cases []casefile.Case, repo store.VerdictRepo) (int, error) {
	var failed int
	for _, c := range cases {
		matched, err := catalog.Classify(c.Interaction, c.Rule, c.Answer, c.Inputs)

		switch {
		case err == nil:
			line := fmt.Sprintf("%s  %s", theme.Verdict(matched), c.Name)
			if c.Expect != nil && *c.Expect != matched {
				failed++
				line += "  " + theme.Invalid.Render(fmt.Sprintf("(expected %v)", *c.Expect))
			}
			fmt.Fprintln(out, line)
		case errors.Is(err, classifier.ErrInvalidInput):
			failed++
			slog.Debug("invalid rule input", "case", c.Name, "error", err)
			fmt.Fprintf(out, "%s  %s: rule specification invalid for this answer type: %v\n",
				theme.Invalid.Render("! invalid"), c.Name, err)
		default:
			var unknown *rules.UnknownRuleError
			if !errors.As(err, &unknown) {
				return failed, fmt.Errorf("classify %s: %w", c.Name, err)
			}
			failed++
			fmt.Fprintf(out, "%s  %s: %v\n", theme.Invalid.Render("! unknown"), c.Name, err)
		}

		if repo != nil {
			if recErr := repo.Append(ctx, newVerdict(c, matched, err)); recErr != nil {
				slog.Warn("failed to record verdict", "case", c.Name, "error", recErr)
			}
		}
	}
	return failed, nil
}

func newVerdict(c casefile.Case, matched bool, err error) *store.Verdict {
	v := &store.Verdict{
		Interaction: c.Interaction,
		Rule:        c.Rule,
		Answer:      encodeForLog(c.Answer),
		Inputs:      encodeForLog(c.Inputs),
		Matched:     matched,
	}
	if err != nil {
		v.Error = err.Error()
	}
	return v
}

func encodeForLog(v any) string {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%q", fmt.Sprint(v))
	}
	return string(data)
}
