package loader

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"spreadcal/entities"
	"spreadcal/pkg/calibration"
)

// yamlDevice is one entry of a charts file:
//
//	devices:
//	  - id: scotts-edgeguard-mini
//	    name: Scotts EdgeGuard Mini
//	    settings:
//	      2: 4
//	      2.5: "5 1/2"
type yamlDevice struct {
	ID       string    `yaml:"id"`
	Name     string    `yaml:"name"`
	Brand    string    `yaml:"brand"`
	Kind     string    `yaml:"kind"`
	Settings yaml.Node `yaml:"settings"`
}

func ReadYAML(r io.Reader, source string) ([]entities.Device, error) {
	var doc struct {
		Devices []yamlDevice `yaml:"devices"`
	}
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, err
	}

	out := make([]entities.Device, 0, len(doc.Devices))
	for i, yd := range doc.Devices {
		id := strings.TrimSpace(yd.ID)
		if id == "" {
			id = Slug(yd.Name)
		}
		if id == "" {
			return nil, fmt.Errorf("device #%d has neither id nor name", i+1)
		}
		table, err := settingsFromNode(&yd.Settings)
		if err != nil {
			return nil, fmt.Errorf("device %s: %w", id, err)
		}
		if err := table.Validate(); err != nil {
			return nil, fmt.Errorf("device %s: %w", id, err)
		}
		out = append(out, entities.Device{
			ID:          id,
			DisplayName: strings.TrimSpace(yd.Name),
			Brand:       strings.TrimSpace(yd.Brand),
			Kind:        strings.TrimSpace(yd.Kind),
			Settings:    table,
			Source:      source,
		})
	}
	return out, nil
}

// settingsFromNode walks the mapping by hand so unquoted numeric keys (2.5:)
// keep their original text and values keep their YAML type.
func settingsFromNode(n *yaml.Node) (calibration.Table, error) {
	table := calibration.Table{}
	if n.Kind == 0 {
		return table, nil
	}
	if n.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("line %d: settings must be a mapping", n.Line)
	}
	for i := 0; i+1 < len(n.Content); i += 2 {
		k, v := n.Content[i], n.Content[i+1]
		var raw any
		if err := v.Decode(&raw); err != nil {
			return nil, fmt.Errorf("line %d: %w", v.Line, err)
		}
		s, err := calibration.FromValue(raw)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", v.Line, err)
		}
		key := strings.TrimSpace(k.Value)
		if _, dup := table[key]; dup {
			return nil, fmt.Errorf("line %d: rate %q: %w", k.Line, key, calibration.ErrDuplicateKey)
		}
		table[key] = s
	}
	return table, nil
}
