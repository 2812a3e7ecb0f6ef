package prefabs

// ShakesSpec is shakes.yaml: named camera shakes.
type ShakesSpec struct {
	Shakes map[string]ShakeSpec `yaml:"shakes"`
}

type ShakeSpec struct {
	Amplitude float64 `yaml:"amplitude"`
	Frequency float64 `yaml:"frequency"`
	Duration  float64 `yaml:"duration"`
	Fade      bool    `yaml:"fade"`
}

func LoadShakesSpec() (ShakesSpec, error) {
	return LoadSpec[ShakesSpec]("shakes.yaml")
}

// SoundsSpec is sounds.yaml. A sound with a file plays that wav; otherwise
// it is synthesized from its tone.
type SoundsSpec struct {
	Sounds map[string]SoundSpec `yaml:"sounds"`
}

type SoundSpec struct {
	File      string  `yaml:"file"`
	Frequency float64 `yaml:"frequency"`
	Slide     float64 `yaml:"slide"`
	Duration  float64 `yaml:"duration"`
	Volume    float64 `yaml:"volume"`
	Noise     bool    `yaml:"noise"`
}

func LoadSoundsSpec() (SoundsSpec, error) {
	return LoadSpec[SoundsSpec]("sounds.yaml")
}
