// Package output writes converted text to its destination.
package output

import (
	"errors"
	"fmt"
	"io"
	"os"
)

// ErrDestinationExists is returned when the destination file exists and
// overwriting was not requested.
var ErrDestinationExists = errors.New("destination file exists")

// Write stores content at dest. An empty dest or "-" writes to stdout.
func Write(dest, content string, overwrite bool, stdout io.Writer) error {
	if dest == "" || dest == "-" {
		if _, err := io.WriteString(stdout, content); err != nil {
			return fmt.Errorf("writing output: %w", err)
		}
		return nil
	}

	flags := os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	if !overwrite {
		flags |= os.O_EXCL
	}
	f, err := os.OpenFile(dest, flags, 0o644)
	if err != nil {
		if errors.Is(err, os.ErrExist) {
			return fmt.Errorf("%s: %w (use --overwrite)", dest, ErrDestinationExists)
		}
		return fmt.Errorf("creating output file: %w", err)
	}

	if _, err := io.WriteString(f, content); err != nil {
		f.Close()
		return fmt.Errorf("writing output: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing output: %w", err)
	}
	return nil
}
