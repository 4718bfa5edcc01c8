package wordlist

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// yamlList is the YAML word list layout:
//
//	words:
//	  - apple
//	  - banana
type yamlList struct {
	Words []string `yaml:"words"`
}

// Load reads a word list file and builds a Dictionary from it. Files ending in
// .yaml or .yml are parsed as YAML; anything else is read as plain text with
// one word per line.
func Load(path string) (*Dictionary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("load word list %q: %w", path, err)
	}
	defer f.Close()

	var words []string
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		words, err = ParseYAML(f)
	default:
		words, err = ParseText(f)
	}
	if err != nil {
		return nil, fmt.Errorf("load word list %q: %w", path, err)
	}

	d, err := New(words)
	if err != nil {
		return nil, fmt.Errorf("load word list %q: %w", path, err)
	}
	return d, nil
}

// ParseText reads one word per line. Blank lines and lines starting with '#'
// are skipped; everything else is kept verbatim for New to validate.
func ParseText(r io.Reader) ([]string, error) {
	var words []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		words = append(words, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan text word list: %w", err)
	}
	return words, nil
}

// ParseYAML decodes a document with a top-level "words" sequence.
func ParseYAML(r io.Reader) ([]string, error) {
	var doc yamlList
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, fmt.Errorf("decode yaml word list: %w", err)
	}
	return doc.Words, nil
}
