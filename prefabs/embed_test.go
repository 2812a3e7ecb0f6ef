package prefabs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanPaths(t *testing.T) {
	assert.Equal(t, "player.yaml", cleanPrefabPath("prefabs/player.yaml"))
	assert.Equal(t, "levels/level1.yaml", cleanPrefabPath("levels/level1.yaml"))
	assert.Empty(t, cleanPrefabPath(""))

	for _, in := range []string{"enemy.tengo", "scripts/enemy.tengo", "prefabs/scripts/enemy.tengo"} {
		assert.Equal(t, "scripts/enemy.tengo", cleanScriptPath(in), in)
	}
}

func TestDiskOverridesEmbedded(t *testing.T) {
	dir := t.TempDir()
	old := Dir
	Dir = dir
	t.Cleanup(func() { Dir = old })

	require.NoError(t, os.WriteFile(filepath.Join(dir, "mood.yaml"), []byte("max_mood: 42\n"), 0o644))
	spec, err := LoadMoodSpec()
	require.NoError(t, err)
	assert.Equal(t, 42, spec.MaxMood)

	require.NoError(t, os.MkdirAll(filepath.Join(dir, "scripts"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "scripts", "enemy.tengo"), []byte("x := 1"), 0o644))
	src, err := LoadScript("enemy.tengo")
	require.NoError(t, err)
	assert.Equal(t, "x := 1", string(src))

	// files absent on disk still come from the embedded copy
	_, err = LoadWeaponsSpec()
	assert.NoError(t, err)
}
