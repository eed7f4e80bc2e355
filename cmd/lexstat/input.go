package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"lexstat/internal/analysis"
	"lexstat/internal/config"
	"lexstat/internal/fileutil"
	"lexstat/internal/textutil"
)

var errNoInput = errors.New("no input text provided")

type inputFlags struct {
	files []string
	stdin bool
}

func (f *inputFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringArrayVarP(&f.files, "file", "f", nil, "Read a UTF-8 text file (repeatable; each file is one document)")
	cmd.Flags().BoolVar(&f.stdin, "stdin", false, "Read text from standard input")
}

// collectDocuments gathers the text sources of a command in a fixed order:
// positional arguments (joined as one document), files, then stdin.
func (f *inputFlags) collectDocuments(cmd *cobra.Command, args []string) ([]string, error) {
	var docs []string
	if len(args) > 0 {
		docs = append(docs, strings.Join(args, " "))
	}
	for _, path := range f.files {
		expanded, err := config.ExpandPath(path)
		if err != nil {
			return nil, fmt.Errorf("resolve %s: %w", path, err)
		}
		text, err := fileutil.ReadText(expanded)
		if err != nil {
			return nil, inputError(fmt.Errorf("read input file: %w", err))
		}
		docs = append(docs, text)
	}
	if f.stdin {
		text, err := fileutil.ReadAllText(cmd.InOrStdin(), "stdin")
		if err != nil {
			return nil, inputError(err)
		}
		docs = append(docs, text)
	}

	for _, doc := range docs {
		if !textutil.IsBlank(doc) {
			return docs, nil
		}
	}
	return nil, errNoInput
}

// inputError marks undecodable text as invalid input, the same way the
// analyzer reports it for positional text.
func inputError(err error) error {
	if errors.Is(err, fileutil.ErrInvalidUTF8) && !errors.Is(err, analysis.ErrInvalidInput) {
		return fmt.Errorf("%w: %w", analysis.ErrInvalidInput, err)
	}
	return err
}
