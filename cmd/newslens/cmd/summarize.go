package cmd

import (
	"github.com/spf13/cobra"

	"github.com/spacesedan/newslens/internal/models"
	"github.com/spacesedan/newslens/internal/summarizer"
)

var (
	summarizeLang      string
	summarizeSentences int
)

var summarizeCmd = &cobra.Command{
	Use:   "summarize [text...]",
	Short: "Extract the most central sentences of text from args or stdin",
	RunE:  runSummarize,
}

func init() {
	summarizeCmd.Flags().StringVar(&summarizeLang, "lang", string(models.LanguageEnglish), "text language (en, ja, de, fr, es)")
	summarizeCmd.Flags().IntVarP(&summarizeSentences, "sentences", "n", summarizer.DefaultSentenceCount, "number of sentences to keep")
}

func runSummarize(cmd *cobra.Command, args []string) error {
	text, err := readInput(args, cmd.InOrStdin())
	if err != nil {
		return err
	}

	summary := summarizer.Summarize(text, summarizeSentences, models.ParseLanguage(summarizeLang))
	return printJSON(cmd.OutOrStdout(), models.SummarizeResponse{Summary: summary})
}
