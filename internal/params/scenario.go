package params

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/theirongolddev/greenscore/internal/model"
)

// DefaultProjectName is used when a scenario does not name its project.
const DefaultProjectName = "Secure GPT Assistant"

// Scenario is a named parameter set stored on disk.
type Scenario struct {
	Project string                `json:"project" yaml:"project"`
	Usage   model.UsageParameters `json:"usage" yaml:"usage"`
}

// LoadScenario reads a YAML or JSON scenario file. Fields missing from the
// file keep the values of base.
func LoadScenario(path string, base model.UsageParameters) (Scenario, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is supplied by the local user
	if err != nil {
		return Scenario{}, fmt.Errorf("reading scenario: %w", err)
	}
	return DecodeScenario(data, filepath.Ext(path), base)
}

// DecodeScenario decodes a scenario document. ext selects the format
// (".json" for JSON, anything else for YAML, which also accepts JSON).
func DecodeScenario(data []byte, ext string, base model.UsageParameters) (Scenario, error) {
	sc := Scenario{Usage: base}

	switch strings.ToLower(ext) {
	case ".json":
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&sc); err != nil {
			return Scenario{}, fmt.Errorf("parsing scenario json: %w", err)
		}
	default:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&sc); err != nil && !errors.Is(err, io.EOF) {
			return Scenario{}, fmt.Errorf("parsing scenario yaml: %w", err)
		}
	}

	if strings.TrimSpace(sc.Project) == "" {
		sc.Project = DefaultProjectName
	}
	return sc, nil
}

// WriteScenario stores sc as YAML at path.
func WriteScenario(path string, sc Scenario) error {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(sc); err != nil {
		return fmt.Errorf("encoding scenario: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("encoding scenario: %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o600); err != nil {
		return fmt.Errorf("writing scenario: %w", err)
	}
	return nil
}
