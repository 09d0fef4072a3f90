// Package discover decides which files in a directory belong to a
// configuration module. Extraction itself never touches the filesystem; this
// package supplies the ordered file list it works from.
package discover

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ModuleFiles lists the configuration files of the module directory at dir.
// Primary files come first and override files last, each group sorted by
// name, so overrides merge after the declarations they replace. Hidden files
// and editor temp files are skipped.
func ModuleFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading module directory %s: %w", dir, err)
	}

	var primary, overrides []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !IsConfigFile(name) {
			continue
		}
		if IsOverrideFile(name) {
			overrides = append(overrides, filepath.Join(dir, name))
		} else {
			primary = append(primary, filepath.Join(dir, name))
		}
	}

	sort.Strings(primary)
	sort.Strings(overrides)
	return append(primary, overrides...), nil
}

// IsConfigFile reports whether the file name looks like a configuration
// file in either surface syntax.
func IsConfigFile(name string) bool {
	if strings.HasPrefix(name, ".") || strings.HasPrefix(name, "#") {
		return false
	}
	if strings.HasSuffix(name, "~") || strings.HasSuffix(name, "#") {
		return false
	}
	return strings.HasSuffix(name, ".tf") || strings.HasSuffix(name, ".tf.json")
}

// IsJSONFile reports whether the file uses the JSON surface syntax.
func IsJSONFile(name string) bool {
	return strings.HasSuffix(name, ".tf.json")
}

// IsModuleDir reports whether dir contains at least one configuration file.
func IsModuleDir(dir string) bool {
	files, err := ModuleFiles(dir)
	return err == nil && len(files) > 0
}

// IsOverrideFile reports whether the base file name participates in override
// merging: override.tf, override.tf.json, or any *_override variant. Override
// files always merge after the primary files of their directory.
func IsOverrideFile(name string) bool {
	base := name
	base = strings.TrimSuffix(base, ".tf.json")
	base = strings.TrimSuffix(base, ".tf")
	return base == "override" || strings.HasSuffix(base, "_override")
}
