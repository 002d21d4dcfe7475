package views

import (
	"fmt"

	"github.com/eringen/folio/content"
)

// FormatDate turns a 2006-01-02 or RFC3339 date into "January 02, 2006".
func FormatDate(s string) (string, error) {
	t, err := content.ParseDate(s)
	if err != nil {
		return "", fmt.Errorf("format date %q: %w", s, err)
	}
	return t.Format("January 02, 2006"), nil
}
