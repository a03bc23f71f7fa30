package cmd

import (
	"fmt"
	"io"

	"github.com/abhisek/answerclass/internal/store"
	"github.com/abhisek/answerclass/internal/ui/theme"
	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recently recorded verdicts",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		if !cmd.Flags().Changed("limit") {
			limit = cfg.HistoryLimit
		}
		interaction, _ := cmd.Flags().GetString("interaction")
		rule, _ := cmd.Flags().GetString("rule")

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		verdicts, err := st.VerdictRepo().Recent(cmd.Context(), store.QueryOpts{
			Limit:       limit,
			Interaction: interaction,
			Rule:        rule,
		})
		if err != nil {
			return err
		}
		printHistory(cmd.OutOrStdout(), verdicts)
		return nil
	},
}

func init() {
	historyCmd.Flags().IntP("limit", "n", 20, "Maximum number of verdicts to show (0 for all)")
	historyCmd.Flags().String("interaction", "", "Only show verdicts for this interaction")
	historyCmd.Flags().String("rule", "", "Only show verdicts for this rule type")
}

func printHistory(out io.Writer, verdicts []store.Verdict) {
	if len(verdicts) == 0 {
		fmt.Fprintln(out, theme.Hint.Render("No verdicts recorded yet."))
		return
	}
	for _, v := range verdicts {
		outcome := theme.Verdict(v.Matched)
		if v.Error != "" {
			outcome = theme.Invalid.Render("! error")
		}
		fmt.Fprintf(out, "%s  %s  %s.%s\n", v.CreatedAt.Local().Format("2006-01-02 15:04:05"), outcome, v.Interaction, v.Rule)
		details := []string{"    answer: " + v.Answer}
		if v.Inputs != "" && v.Inputs != "{}" {
			details = append(details, "    inputs: "+v.Inputs)
		}
		if v.Error != "" {
			details = append(details, "    error:  "+v.Error)
		}
		for _, line := range details {
			fmt.Fprintln(out, theme.Body.Render(line))
		}
	}
}
