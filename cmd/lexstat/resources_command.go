package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"lexstat/internal/language"
	"lexstat/internal/resources"
)

func newResourcesCommand(ctx *commandContext) *cobra.Command {
	resourcesCmd := &cobra.Command{
		Use:   "resources",
		Short: "Manage stop-word resources",
	}

	resourcesCmd.AddCommand(newResourcesFetchCommand(ctx))
	resourcesCmd.AddCommand(newResourcesListCommand(ctx))

	return resourcesCmd
}

func newResourcesFetchCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "fetch [language...]",
		Short: "Download stop-word lists into the resource cache",
		Long: `Make sure the stop-word lists for the given languages are present in the
resource cache directory, downloading the stop-word archive once if needed.
Without arguments the configured analysis language is fetched.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			catalog, err := ctx.catalog()
			if err != nil {
				return err
			}

			codes := language.NormalizeList(args)
			if len(codes) == 0 {
				codes = []string{cfg.Analysis.Language}
			}

			out := cmd.OutOrStdout()
			p := newPainter(out)
			var failed []string
			for _, code := range codes {
				entry, ok := language.Resolve(code)
				if !ok {
					fmt.Fprintln(out, p.status(language.DisplayName(code), toneError, "unknown language"))
					failed = append(failed, code)
					continue
				}
				if entry.Resource == "" {
					fmt.Fprintln(out, p.status(entry.Display, toneWarn, "no stop-word list published"))
					continue
				}
				if err := catalog.Ensure(cmd.Context(), resources.StopWordsName(entry.Resource)); err != nil {
					fmt.Fprintln(out, p.status(entry.Display, toneError, err.Error()))
					failed = append(failed, entry.Code2)
					continue
				}
				fmt.Fprintln(out, p.status(entry.Display, toneOK, catalog.Path(entry.Resource)))
			}
			if len(failed) > 0 {
				return fmt.Errorf("fetch stop words for %s: %w", strings.Join(failed, ", "), resources.ErrUnavailable)
			}
			return nil
		},
	}
}

func newResourcesListCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Show supported languages and where their stop words come from",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			catalog, err := ctx.catalog()
			if err != nil {
				return err
			}
			bundled := resources.NewBundled()

			rows := make([][]string, 0, len(language.All()))
			for _, entry := range language.All() {
				resource, inBundle, cached := "-", "-", "-"
				if entry.Resource != "" {
					resource = entry.Resource
					inBundle = yesNo(bundled.Has(entry.Resource))
					cached = yesNo(catalog.Cached(entry.Resource))
				}
				rows = append(rows, []string{entry.Code2, entry.Display, resource, inBundle, cached})
			}

			out := cmd.OutOrStdout()
			p := newPainter(out)
			for _, line := range p.header("Stop-word resources") {
				fmt.Fprintln(out, line)
			}
			fmt.Fprintln(out, keyValue("Source", cfg.Resources.Source))
			fmt.Fprintln(out, keyValue("Cache", catalog.Dir()))
			fmt.Fprintln(out, keyValue("Downloads", yesNo(cfg.Resources.Download)))
			fmt.Fprintln(out, tableSpec{
				Headers: []string{"Code", "Language", "Resource", "Bundled", "Cached"},
				Rows:    rows,
			}.render())
			return nil
		},
	}
}
