package fulcrum

import (
	"fmt"
	"os"
	"strings"
)

// ReadToken loads the API token from path, trimming surrounding whitespace.
// A missing file or blank content is an error: no call can succeed without
// credentials, so callers should treat this as fatal.
func ReadToken(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("API token file %q not found: %w", path, err)
	}
	token := strings.TrimSpace(string(b))
	if token == "" {
		return "", fmt.Errorf("API token file %q is empty", path)
	}
	return token, nil
}
