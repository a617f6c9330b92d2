// Package frontmatter splits a leading metadata block from template text.
// A block opens with a line containing only "---" and closes with the next
// such line; the content between parses as YAML. Text without an opening
// delimiter, or with an unterminated block, passes through unchanged.
package frontmatter

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

const delimiter = "---"

// Parse returns the metadata mapping and the remaining body. The body is the
// original text when no frontmatter block is present. Metadata values are
// flattened to strings; composite YAML values are dropped.
func Parse(raw []byte) (map[string]string, []byte) {
	text := string(raw)

	first, rest, _ := cutLine(text)
	if strings.TrimRight(first, "\r") != delimiter {
		return map[string]string{}, raw
	}

	offset := 0
	remaining := rest
	for {
		line, tail, ok := cutLine(remaining)
		if strings.TrimRight(line, "\r") == delimiter {
			block := rest[:offset]
			body := tail
			if !ok {
				body = ""
			}
			return parseBlock(block), []byte(body)
		}
		if !ok {
			// Unterminated block: treat the whole input as body.
			return map[string]string{}, raw
		}
		offset += len(line) + 1
		remaining = tail
	}
}

// cutLine splits off the first line. found is false when no newline remains.
func cutLine(s string) (line, rest string, found bool) {
	return strings.Cut(s, "\n")
}

// parseBlock decodes the metadata block. The block is tried as YAML first;
// when that fails, each line is split on the first colon and malformed lines
// are skipped.
func parseBlock(block string) map[string]string {
	meta := map[string]string{}

	var decoded map[string]any
	if err := yaml.Unmarshal([]byte(block), &decoded); err == nil {
		for key, value := range decoded {
			if s, ok := scalarString(value); ok {
				meta[key] = s
			}
		}
		return meta
	}

	for _, line := range strings.Split(block, "\n") {
		key, value, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		if key == "" {
			continue
		}
		meta[key] = strings.TrimSpace(value)
	}
	return meta
}

func scalarString(value any) (string, bool) {
	switch v := value.(type) {
	case nil:
		return "", true
	case string:
		return v, true
	case bool, int, int64, uint64, float64:
		return fmt.Sprintf("%v", v), true
	default:
		return "", false
	}
}
