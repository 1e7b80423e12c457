package config

import (
	"errors"
	"io"
	"strings"

	"github.com/joho/godotenv"
)

// errNoPlaceholder is returned when every private-use rune already appears in
// the input, leaving nothing to stand in for '$'.
var errNoPlaceholder = errors.New("dotenv: no free placeholder rune for '$'")

// ParseDotenv parses KEY=VALUE data. Quoting, comments and export prefixes
// follow godotenv, but values are kept literally: "$VAR" and "${VAR}" are
// never expanded, from the file or from the process environment.
func ParseDotenv(r io.Reader) (map[string]string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	src := string(data)
	if !strings.Contains(src, "$") {
		return godotenv.Unmarshal(src)
	}

	// godotenv expands every '$' outside single quotes, so hide them behind
	// a rune that does not occur in the input and put them back afterwards.
	ph, ok := placeholder(src)
	if !ok {
		return nil, errNoPlaceholder
	}
	values, err := godotenv.Unmarshal(strings.ReplaceAll(src, "$", ph))
	if err != nil {
		return nil, err
	}

	out := make(map[string]string, len(values))
	for k, v := range values {
		out[strings.ReplaceAll(k, ph, "$")] = strings.ReplaceAll(v, ph, "$")
	}
	return out, nil
}

func placeholder(src string) (string, bool) {
	for r := rune(0xE000); r <= 0xF8FF; r++ {
		if !strings.ContainsRune(src, r) {
			return string(r), true
		}
	}
	return "", false
}
