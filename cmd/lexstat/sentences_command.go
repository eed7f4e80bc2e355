package main

import (
	"io"
	"strings"

	"github.com/spf13/cobra"

	"lexstat/internal/analysis"
)

type sentencesOutput struct {
	Sentences []analysis.Sentence `json:"sentences"`
	Longest   *analysis.Sentence  `json:"longest,omitempty"`
}

func newSentencesCommand(ctx *commandContext) *cobra.Command {
	var input inputFlags
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "sentences [text...]",
		Short: "Split text into sentences and find the longest one",
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := ctx.ensureConfig(); err != nil {
				return err
			}
			docs, err := input.collectDocuments(cmd, args)
			if err != nil {
				return err
			}
			sentences := analysis.Sentences(strings.Join(docs, " "))
			out := sentencesOutput{Sentences: sentences}
			if longest, ok := analysis.LongestSentence(sentences); ok {
				out.Longest = &longest
			}
			if jsonOutput {
				return writeJSON(cmd, out)
			}

			w := cmd.OutOrStdout()
			var b strings.Builder
			writeLines(&b, newPainter(w).header("Sentences"))
			writeLines(&b, sentenceLines(sentences))
			_, err = io.WriteString(w, b.String())
			return err
		},
	}

	input.register(cmd)
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit sentences as JSON")
	return cmd
}
