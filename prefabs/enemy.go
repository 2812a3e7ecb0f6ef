package prefabs

// EnemySpec is enemy.yaml: enemy archetypes by name.
type EnemySpec struct {
	Sounds struct {
		Attack string `yaml:"attack"`
		Death  string `yaml:"death"`
	} `yaml:"sounds"`
	Types map[string]EnemyTypeSpec `yaml:"types"`
}

type EnemyTypeSpec struct {
	Health         int     `yaml:"health"`
	Speed          float64 `yaml:"speed"`
	SightRange     float64 `yaml:"sight_range"`
	AttackRange    float64 `yaml:"attack_range"`
	AttackDamage   int     `yaml:"attack_damage"`
	AttackInterval float64 `yaml:"attack_interval"`
	Radius         float64 `yaml:"radius"`
	HalfHeight     float64 `yaml:"half_height"`
	Script         string  `yaml:"script"`
}

func LoadEnemySpec() (EnemySpec, error) {
	return LoadSpec[EnemySpec]("enemy.yaml")
}
