package cmd

import (
	"github.com/spf13/cobra"

	"github.com/spacesedan/newslens/internal/models"
)

var analyzeLang string

var analyzeCmd = &cobra.Command{
	Use:   "analyze [text...]",
	Short: "Score the sentiment of text from args or stdin",
	RunE:  runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVar(&analyzeLang, "lang", string(models.LanguageAuto), "declared language (auto, en, ko, ja, de, fr, es)")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	text, err := readInput(args, cmd.InOrStdin())
	if err != nil {
		return err
	}

	a, err := buildApp(cmd.Context())
	if err != nil {
		return err
	}
	defer a.Close()

	result := a.Engine.Analyze(cmd.Context(), text, models.ParseLanguage(analyzeLang))
	return printJSON(cmd.OutOrStdout(), result)
}
