package ingest

import (
	"fmt"
	"os"

	"github.com/hyeonwoos/marketlens/internal/model"
	"gopkg.in/yaml.v3"
)

// LoadSpec reads a product SpecRecord from a YAML file. Optional physical
// fields may be absent; a missing product name is the one hard failure.
func LoadSpec(path string) (model.SpecRecord, error) {
	var spec model.SpecRecord

	data, err := os.ReadFile(path)
	if err != nil {
		return spec, fmt.Errorf("read spec file: %w", err)
	}

	if err := yaml.Unmarshal(data, &spec); err != nil {
		return spec, fmt.Errorf("parse spec file: %w", err)
	}

	if spec.ProductName == "" {
		return spec, fmt.Errorf("spec file %s is missing product_name", path)
	}

	return spec, nil
}
