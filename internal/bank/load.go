package bank

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// bankSchema constrains external bank files before decoding. Keeping
// the definition as a Go literal avoids shipping a separate schema
// file with the binary.
var bankSchema = map[string]any{
	"type":     "object",
	"required": []any{"lang", "questions"},
	"properties": map[string]any{
		"lang": map[string]any{"type": "string", "minLength": 2},
		"questions": map[string]any{
			"type":     "array",
			"minItems": 1,
			"items": map[string]any{
				"type":     "object",
				"required": []any{"prompt", "encoding"},
				"properties": map[string]any{
					"prompt":   map[string]any{"type": "string", "minLength": 1},
					"encoding": map[string]any{"type": "string", "enum": []any{"fixed", "tagged", "likert"}},
					"answers": map[string]any{
						"type":                 "object",
						"additionalProperties": map[string]any{"type": "string"},
					},
					"options": map[string]any{
						"type": "array",
						"items": map[string]any{
							"type":     "object",
							"required": []any{"label"},
							"properties": map[string]any{
								"label":  map[string]any{"type": "string", "minLength": 1},
								"chakra": map[string]any{"type": "integer", "minimum": 1, "maximum": 7},
								"weight": map[string]any{"type": "integer", "minimum": 0},
							},
						},
					},
					"chakra": map[string]any{"type": "integer", "minimum": 1, "maximum": 7},
				},
			},
		},
	},
}

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

func schema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		c := jsonschema.NewCompiler()
		// The compiler wants a parsed JSON value; round-trip the Go
		// literal to strip Go-specific types.
		b, err := json.Marshal(bankSchema)
		if err != nil {
			compileErr = fmt.Errorf("marshal bank schema: %w", err)
			return
		}
		var parsed any
		if err := json.Unmarshal(b, &parsed); err != nil {
			compileErr = fmt.Errorf("parse bank schema: %w", err)
			return
		}
		if err := c.AddResource("schema://bank.json", parsed); err != nil {
			compileErr = fmt.Errorf("add schema resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile("schema://bank.json")
	})
	return compiledSchema, compileErr
}

// Validate checks raw JSON against the bank schema without decoding
// it into Go types.
func Validate(data []byte) error {
	var parsed any
	if err := json.Unmarshal(data, &parsed); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}
	s, err := schema()
	if err != nil {
		return err
	}
	if err := s.Validate(parsed); err != nil {
		return fmt.Errorf("bank schema validation failed: %w", err)
	}
	return nil
}

// Load reads, validates and normalizes a bank file.
func Load(path string) (*Bank, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read bank file: %w", err)
	}
	return Parse(data)
}

// Parse validates and normalizes raw bank JSON.
func Parse(data []byte) (*Bank, error) {
	if err := Validate(data); err != nil {
		return nil, err
	}
	var raw RawBank
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode bank: %w", err)
	}
	return Normalize(raw)
}
