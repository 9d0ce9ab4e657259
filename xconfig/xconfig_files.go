package xconfig

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

func isConfigFile(filename string) bool {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".json", ".yaml", ".yml":
		return true
	default:
		return false
	}
}

// loadFromFile decodes a JSON or YAML file into config. JSON documents are
// valid YAML, so both go through the YAML decoder and share its duration
// handling and `yaml` tags.
func loadFromFile(config any, filename string, strict bool) error {
	if !isConfigFile(filename) {
		return fmt.Errorf("unsupported file extension %s", filepath.Ext(filename))
	}

	data, err := os.ReadFile(filename)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(strict)

	if err := dec.Decode(config); err != nil && !errors.Is(err, io.EOF) {
		return err
	}

	return nil
}
