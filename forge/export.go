package forge

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// unsafeNameChars matches everything not allowed in an export filename.
var unsafeNameChars = regexp.MustCompile(`[^\w\-. ]`)

// Export writes the rule's wire JSON to <name>-Generated.rbx under dir,
// creating the directory if needed. Unsafe filename characters and spaces in
// the rule name become underscores. When the file already exists a _N suffix
// is appended until the name is free; the path actually written is returned.
func (r *Rule) Export(dir string) (string, error) {
	data, err := r.ToJSON()
	if err != nil {
		return "", err
	}

	base := unsafeNameChars.ReplaceAllString(r.name, "_")
	base = strings.ReplaceAll(base, " ", "_")

	if dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", fmt.Errorf("creating export directory: %w", err)
		}
	}

	path := filepath.Join(dir, base+"-Generated.rbx")
	for counter := 1; ; counter++ {
		if _, err := os.Stat(path); os.IsNotExist(err) {
			break
		}
		path = filepath.Join(dir, fmt.Sprintf("%s-Generated_%d.rbx", base, counter))
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("writing %s: %w", path, err)
	}
	return path, nil
}
