package payload

import (
	"encoding/json"
	"fmt"
	"net/url"
	"sort"
	"strings"
)

// Format selects a payload serialisation.
type Format string

const (
	// FormatJSON emits application/json.
	FormatJSON Format = "json"
	// FormatForm emits application/x-www-form-urlencoded with dotted keys.
	FormatForm Format = "form"
	// FormatPretty emits sorted path=value lines.
	FormatPretty Format = "pretty"
)

// ContentType reports the media type produced by Encode for f.
func (f Format) ContentType() string {
	switch f {
	case FormatForm:
		return "application/x-www-form-urlencoded"
	case FormatPretty:
		return "text/plain"
	default:
		return "application/json"
	}
}

// ParseFormat resolves a format name. An empty name selects JSON.
func ParseFormat(raw string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(raw))) {
	case "", FormatJSON:
		return FormatJSON, nil
	case FormatForm:
		return FormatForm, nil
	case FormatPretty:
		return FormatPretty, nil
	default:
		return "", fmt.Errorf("payload: unknown format %q", raw)
	}
}

// Encode serialises p in the requested format.
func Encode(p Payload, format Format) ([]byte, error) {
	switch format {
	case FormatForm:
		return []byte(flattenForm(p.Values())), nil
	case FormatPretty:
		return []byte(prettyPrint(p.Values())), nil
	case FormatJSON, "":
		return json.MarshalIndent(p, "", "  ")
	default:
		return nil, fmt.Errorf("payload: unknown format %q", format)
	}
}

func flattenForm(values map[string]any) string {
	flattened := url.Values{}
	flatten("", values, flattened)
	return flattened.Encode()
}

func flatten(prefix string, value any, out url.Values) {
	switch v := value.(type) {
	case map[string]any:
		for key, val := range v {
			flatten(joinKey(prefix, key), val, out)
		}
	default:
		out.Set(prefix, fmt.Sprint(v))
	}
}

func prettyPrint(values map[string]any) string {
	lines := make([]string, 0, 32)
	collectPretty(&lines, "", values)
	sort.Strings(lines)
	var b strings.Builder
	for _, line := range lines {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	return b.String()
}

func collectPretty(lines *[]string, prefix string, value any) {
	switch v := value.(type) {
	case map[string]any:
		for key, val := range v {
			collectPretty(lines, joinKey(prefix, key), val)
		}
	default:
		if prefix != "" {
			*lines = append(*lines, fmt.Sprintf("%s=%v", prefix, v))
		}
	}
}

func joinKey(prefix, key string) string {
	if prefix == "" {
		return key
	}
	return prefix + "." + key
}
