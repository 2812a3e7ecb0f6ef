package prefabs

import (
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
)

// LevelSpec is one arena layout. Solids are axis-aligned boxes; the floor is
// implicit at z=0.
type LevelSpec struct {
	Name    string            `yaml:"name"`
	Spawn   SpawnSpec         `yaml:"spawn"`
	Solids  []SolidSpec       `yaml:"solids"`
	Enemies []EnemyPlacement  `yaml:"enemies"`
	Pickups []PickupPlacement `yaml:"pickups"`
}

type SpawnSpec struct {
	Location Vec3Spec `yaml:"location"`
	Yaw      float64  `yaml:"yaw"`
}

type SolidSpec struct {
	Min       Vec3Spec `yaml:"min"`
	Max       Vec3Spec `yaml:"max"`
	Climbable bool     `yaml:"climbable"`
}

type EnemyPlacement struct {
	Type     string   `yaml:"type"`
	Location Vec3Spec `yaml:"location"`
	Yaw      float64  `yaml:"yaw"`
}

type PickupPlacement struct {
	Kind       string   `yaml:"kind"`
	Location   Vec3Spec `yaml:"location"`
	HealAmount int      `yaml:"heal_amount"`
	Radius     float64  `yaml:"radius"`
	Sound      string   `yaml:"sound"`
}

// LevelFile maps a level name to its prefab file name.
func LevelFile(name string) string {
	if strings.HasSuffix(name, ".yaml") {
		return name
	}
	return "levels/" + name + ".yaml"
}

func LoadLevelSpec(name string) (LevelSpec, error) {
	spec, err := LoadSpec[LevelSpec](LevelFile(name))
	if err != nil {
		return LevelSpec{}, err
	}
	if err := spec.Validate(); err != nil {
		return LevelSpec{}, fmt.Errorf("prefabs: level %s: %w", name, err)
	}
	if spec.Name == "" {
		spec.Name = name
	}
	return spec, nil
}

// Validate rejects inverted solids.
func (s LevelSpec) Validate() error {
	for i, solid := range s.Solids {
		if solid.Min.X > solid.Max.X || solid.Min.Y > solid.Max.Y || solid.Min.Z > solid.Max.Z {
			return fmt.Errorf("solid %d: min exceeds max", i)
		}
	}
	return nil
}

// LevelNames lists the embedded levels in name order.
func LevelNames() ([]string, error) {
	entries, err := fs.ReadDir(PrefabsFS, "levels")
	if err != nil {
		return nil, fmt.Errorf("prefabs: list levels: %w", err)
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() || !isSpecFile(e.Name()) {
			continue
		}
		names = append(names, strings.TrimSuffix(e.Name(), path.Ext(e.Name())))
	}
	sort.Strings(names)
	return names, nil
}
