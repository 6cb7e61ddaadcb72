package clipboard

import (
	"errors"
	"fmt"

	"github.com/atotto/clipboard"
)

var ErrUnsupported = errors.New("no clipboard utility available (install xclip, xsel or wl-clipboard)")

// writeAll is swapped in tests.
var writeAll = clipboard.WriteAll

func Copy(text string) error {
	if clipboard.Unsupported {
		return ErrUnsupported
	}
	if text == "" {
		return errors.New("refusing to copy empty text")
	}
	if err := writeAll(text); err != nil {
		return fmt.Errorf("copying to clipboard: %w", err)
	}
	return nil
}
