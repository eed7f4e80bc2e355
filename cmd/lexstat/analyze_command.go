package main

import (
	"github.com/spf13/cobra"

	"lexstat/internal/analysis"
	"lexstat/internal/config"
	"lexstat/internal/resources"
)

type analyzeFlags struct {
	input          inputFlags
	language       string
	stopwords      bool
	extraStopwords []string
	keepCase       bool
	minLength      int
	top            int
	jsonOutput     bool
	sentences      bool
}

func newAnalyzeCommand(ctx *commandContext) *cobra.Command {
	flags := &analyzeFlags{}

	cmd := &cobra.Command{
		Use:   "analyze [text...]",
		Short: "Report word frequencies and text statistics",
		Long: `Tokenize the input, count word frequencies, and report the most frequent
words together with entropy and frequency dispersion statistics.

Text comes from positional arguments, --file (repeatable), or --stdin. Every
source is a document; documents are joined with a space before analysis.`,
		Example: `  lexstat analyze "Python es genial. Me encanta Python porque Python es fácil."
  lexstat analyze --stopwords --top 10 --file comments.txt
  cat article.txt | lexstat analyze --stdin --language en --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			docs, err := flags.input.collectDocuments(cmd, args)
			if err != nil {
				return err
			}
			opts := flags.options(cmd, cfg)

			var provider resources.Provider
			if opts.RemoveStopwords {
				provider, err = ctx.provider()
				if err != nil {
					return err
				}
			}
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}
			analyzer, err := analysis.NewAnalyzer(provider, opts, logger)
			if err != nil {
				return err
			}
			result, err := analyzer.AnalyzeDocuments(cmd.Context(), docs)
			if err != nil {
				return err
			}

			if flags.jsonOutput {
				return writeJSON(cmd, result)
			}
			report := analysisReport{
				Result:        result,
				LanguageName:  analyzer.Language().Display,
				StopWords:     analyzer.Options().RemoveStopwords,
				ShowSentences: flags.sentences,
			}
			return report.write(cmd.OutOrStdout(), newPainter(cmd.OutOrStdout()))
		},
	}

	flags.input.register(cmd)
	cmd.Flags().StringVarP(&flags.language, "language", "l", "", "Language of the text (ISO code, English name, or BCP 47 tag)")
	cmd.Flags().BoolVar(&flags.stopwords, "stopwords", false, "Remove the language's stop words")
	cmd.Flags().StringSliceVar(&flags.extraStopwords, "extra-stopwords", nil, "Additional words to remove with --stopwords (comma separated)")
	cmd.Flags().BoolVar(&flags.keepCase, "keep-case", false, "Count words case-sensitively")
	cmd.Flags().IntVar(&flags.minLength, "min-length", 0, "Drop words shorter than this many letters")
	cmd.Flags().IntVarP(&flags.top, "top", "n", analysis.DefaultTopN, "Number of most frequent words to show")
	cmd.Flags().BoolVar(&flags.jsonOutput, "json", false, "Emit the full result as JSON")
	cmd.Flags().BoolVar(&flags.sentences, "sentences", false, "List sentences and the longest one")
	return cmd
}

// options starts from the configured analysis defaults and applies the flags
// the user set explicitly.
func (f *analyzeFlags) options(cmd *cobra.Command, cfg *config.Config) analysis.Options {
	opts := analysis.Options{
		Language:        cfg.Analysis.Language,
		Lowercase:       cfg.Analysis.Lowercase,
		RemoveStopwords: cfg.Analysis.RemoveStopwords,
		ExtraStopwords:  append([]string(nil), cfg.Analysis.ExtraStopwords...),
		MinTokenLength:  cfg.Analysis.MinTokenLength,
		TopN:            cfg.Analysis.TopN,
	}
	changed := cmd.Flags().Changed
	if changed("language") {
		opts.Language = f.language
	}
	if changed("stopwords") {
		opts.RemoveStopwords = f.stopwords
	}
	if changed("extra-stopwords") {
		opts.ExtraStopwords = append(opts.ExtraStopwords, f.extraStopwords...)
	}
	if changed("keep-case") {
		opts.Lowercase = !f.keepCase
	}
	if changed("min-length") {
		opts.MinTokenLength = f.minLength
	}
	if changed("top") {
		opts.TopN = f.top
	}
	return opts
}
