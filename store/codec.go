package store

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// codec translates between on-disk bytes and the contents map.
type codec interface {
	Decode(data []byte) (map[string]any, error)
	Encode(contents map[string]any) ([]byte, error)
}

// codecFor picks a codec by file extension. JSON is the default.
func codecFor(path string) codec {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yamlCodec{}
	case ".toml":
		return tomlCodec{}
	default:
		return jsonCodec{}
	}
}

type jsonCodec struct{}

// Decode parses a JSON document. Comments have already been blanked by
// the JSONC pass in Read, so a comment-only file arrives as whitespace
// and reads as empty rather than erroring.
func (jsonCodec) Decode(data []byte) (map[string]any, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return make(map[string]any), nil
	}
	var contents map[string]any
	if err := json.Unmarshal(data, &contents); err != nil {
		return nil, err
	}
	return contents, nil
}

func (jsonCodec) Encode(contents map[string]any) ([]byte, error) {
	data, err := json.MarshalIndent(contents, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

type yamlCodec struct{}

func (yamlCodec) Decode(data []byte) (map[string]any, error) {
	var contents map[string]any
	if err := yaml.Unmarshal(data, &contents); err != nil {
		return nil, err
	}
	return contents, nil
}

func (yamlCodec) Encode(contents map[string]any) ([]byte, error) {
	return yaml.Marshal(contents)
}

type tomlCodec struct{}

func (tomlCodec) Decode(data []byte) (map[string]any, error) {
	var contents map[string]any
	if err := toml.Unmarshal(data, &contents); err != nil {
		return nil, err
	}
	return contents, nil
}

func (tomlCodec) Encode(contents map[string]any) ([]byte, error) {
	return toml.Marshal(contents)
}
