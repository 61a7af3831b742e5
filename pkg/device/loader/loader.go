// Package loader reads spreader calibration charts from the files that
// manufacturers and our data team publish them in.
package loader

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"spreadcal/entities"
)

// LoadFromFiles reads every file and merges the devices. A device id defined
// by two files is an error rather than a silent override.
func LoadFromFiles(paths ...string) ([]entities.Device, error) {
	var out []entities.Device
	seen := map[string]string{}
	for _, p := range paths {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		ds, err := LoadFile(p)
		if err != nil {
			return nil, err
		}
		for _, d := range ds {
			if prev, ok := seen[d.ID]; ok {
				return nil, fmt.Errorf("device %q defined in both %s and %s", d.ID, prev, p)
			}
			seen[d.ID] = p
			out = append(out, d)
		}
	}
	return out, nil
}

// LoadFile picks a reader by file extension.
func LoadFile(path string) ([]entities.Device, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	src := filepath.Base(path)
	var ds []entities.Device
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		ds, err = ReadCSV(f, src)
	case ".xlsx":
		ds, err = ReadXLSX(f, src)
	case ".yaml", ".yml":
		ds, err = ReadYAML(f, src)
	case ".html", ".htm":
		ds, err = ReadHTML(f, src)
	default:
		return nil, fmt.Errorf("%s: unsupported calibration file type", path)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return ds, nil
}
