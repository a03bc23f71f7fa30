package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/abhisek/answerclass/internal/classifier"
	"github.com/abhisek/answerclass/internal/rules"
	"github.com/abhisek/answerclass/internal/ui/theme"
	"github.com/spf13/cobra"
)

var rulesCmd = &cobra.Command{
	Use:   "rules [interaction]",
	Short: "List interactions and their rules",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		catalog, err := rules.NewCatalog()
		if err != nil {
			return fmt.Errorf("build rule catalog: %w", err)
		}

		interactions := catalog.Interactions()
		if len(args) == 1 {
			if catalog.Rules(args[0]) == nil {
				return &rules.UnknownRuleError{Interaction: args[0]}
			}
			interactions = args[:1]
		}
		return printRules(cmd.OutOrStdout(), catalog, interactions)
	},
}

func printRules(out io.Writer, catalog *rules.Catalog, interactions []string) error {
	for i, id := range interactions {
		if i > 0 {
			fmt.Fprintln(out)
		}
		fmt.Fprintln(out, theme.Title.Render(id))
		for _, name := range catalog.Rules(id) {
			rc, err := catalog.Lookup(id, name)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "  %-48s %s\n", name+describeParams(rc.Definition()), theme.Hint.Render(rc.Definition().Kind.String()))
		}
	}
	return nil
}

// describeParams renders a definition as "(x RATIO_EXPRESSION, y NON_NEGATIVE_INT)".
func describeParams(def classifier.Definition) string {
	parts := make([]string, len(def.Parameters))
	for i, p := range def.Parameters {
		parts[i] = p.Name + " " + p.Tag.String()
	}
	return "(" + strings.Join(parts, ", ") + ")"
}
