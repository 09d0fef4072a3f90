package discover

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFiles(t *testing.T, dir string, names ...string) {
	t.Helper()
	for _, name := range names {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte{}, 0o644))
	}
}

func TestModuleFiles_OrderAndFiltering(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir,
		"main.tf",
		"variables.tf",
		"config.tf.json",
		"override.tf",
		"main_override.tf.json",
		"README.md",
		".hidden.tf",
		"#editor.tf",
		"backup.tf~",
	)
	require.NoError(t, os.Mkdir(filepath.Join(dir, "modules"), 0o755))

	files, err := ModuleFiles(dir)
	require.NoError(t, err)

	want := []string{
		// Primary files sorted by name, then override files sorted by name.
		filepath.Join(dir, "config.tf.json"),
		filepath.Join(dir, "main.tf"),
		filepath.Join(dir, "variables.tf"),
		filepath.Join(dir, "main_override.tf.json"),
		filepath.Join(dir, "override.tf"),
	}
	assert.Equal(t, want, files)
}

func TestModuleFiles_MissingDirectory(t *testing.T) {
	_, err := ModuleFiles(filepath.Join(t.TempDir(), "nope"))
	assert.Error(t, err)
}

func TestIsConfigFile(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"main.tf", true},
		{"main.tf.json", true},
		{"main.json", false},
		{"main.tfvars", false},
		{".main.tf", false},
		{"#main.tf", false},
		{"main.tf~", false},
		{"main.tf#", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsConfigFile(tt.name))
		})
	}
}

func TestIsJSONFile(t *testing.T) {
	assert.True(t, IsJSONFile("main.tf.json"))
	assert.False(t, IsJSONFile("main.tf"))
}

func TestIsModuleDir(t *testing.T) {
	dir := t.TempDir()
	assert.False(t, IsModuleDir(dir))

	writeFiles(t, dir, "main.tf")
	assert.True(t, IsModuleDir(dir))
}

func TestIsOverrideFile(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"override.tf", true},
		{"override.tf.json", true},
		{"resources_override.tf", true},
		{"main.tf", false},
		{"my_override_stuff.tf", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsOverrideFile(tt.name))
		})
	}
}
