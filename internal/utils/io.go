package utils

import (
	"fmt"
	"io"
	"os"
)

// ReadStdin reads all content from in.
// Returns an error if in is a terminal (no piped data) or cannot be read.
func ReadStdin(in io.Reader) ([]byte, error) {
	if f, ok := in.(*os.File); ok && IsTerminal(f) {
		return nil, fmt.Errorf("no data provided on stdin (hint: pass --text or --file, or pipe the text to this command)")
	}

	data, err := io.ReadAll(in)
	if err != nil {
		return nil, fmt.Errorf("failed to read from stdin: %w", err)
	}

	return data, nil
}

// ReadInput returns text when set, otherwise the contents of file when set,
// otherwise everything on in.
func ReadInput(text, file string, textSet bool, in io.Reader) ([]byte, error) {
	switch {
	case textSet && file != "":
		return nil, fmt.Errorf("--text and --file cannot be used together")
	case textSet:
		return []byte(text), nil
	case file != "":
		data, err := os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", file, err)
		}
		return data, nil
	default:
		return ReadStdin(in)
	}
}

// WriteOutput writes data to file, or to out when file is empty. Files are
// created readable by the owner only.
func WriteOutput(data, file string, out io.Writer) error {
	if file == "" {
		_, err := fmt.Fprintln(out, data)
		return err
	}
	if err := os.WriteFile(file, []byte(data), 0600); err != nil {
		return fmt.Errorf("failed to write %s: %w", file, err)
	}
	return nil
}
