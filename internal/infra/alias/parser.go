package alias

import (
	"bufio"
	"io"
	"strings"

	"github.com/pkg/errors"
)

// ParseAliases reads a line-oriented "key = value" table. Blank lines and lines
// starting with ';' or '#' are skipped. Keys are trimmed and lowercased; the
// key ends at the first '='. Entries with an empty key or value are dropped.
func ParseAliases(r io.Reader) (map[string]string, error) {
	aliases := make(map[string]string)

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, ";") || strings.HasPrefix(line, "#") {
			continue
		}

		key, value, found := strings.Cut(line, "=")
		if !found {
			continue
		}

		key = normalize(key)
		value = strings.TrimSpace(value)
		if key == "" || value == "" {
			continue
		}

		aliases[key] = value
	}

	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "read alias table")
	}

	return aliases, nil
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
