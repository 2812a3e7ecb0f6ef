package prefabs

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/milk9111/mood/common"
)

func LoadSpec[T any](filename string) (T, error) {
	var spec T
	if err := LoadSpecInto(filename, &spec); err != nil {
		var zero T
		return zero, err
	}
	return spec, nil
}

// LoadSpecInto decodes filename over spec, so fields the file leaves out keep
// the values spec already holds.
func LoadSpecInto[T any](filename string, spec *T) error {
	data, err := Load(filename)
	if err != nil {
		return fmt.Errorf("prefabs: load %s: %w", filename, err)
	}
	if err := yaml.Unmarshal(data, spec); err != nil {
		return fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}
	return nil
}

type Vec3Spec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	Z float64 `yaml:"z"`
}

func (v Vec3Spec) Vec3() common.Vec3 { return common.Vec3{X: v.X, Y: v.Y, Z: v.Z} }

// OffsetSpec is a local offset: x along the actor's forward vector, z up.
type OffsetSpec struct {
	X float64 `yaml:"x"`
	Z float64 `yaml:"z"`
}
