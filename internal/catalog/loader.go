package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/zanzibar/internal/models"
)

// itemFile is the on-disk representation of a static item list
type itemFile struct {
	Items []itemEntry `yaml:"items"`
}

type itemEntry struct {
	ID          string   `yaml:"id"`
	Name        string   `yaml:"name"`
	Type        string   `yaml:"type"`
	Description string   `yaml:"description"`
	Energy      int      `yaml:"energy"`
	Effects     []string `yaml:"effects"`
	Duration    int      `yaml:"duration"`
	Cost        int      `yaml:"cost"`
}

// Load builds a registry from YAML item list data
func Load(data []byte) (*Registry, error) {
	var file itemFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse item list: %w", err)
	}

	if len(file.Items) == 0 {
		return nil, fmt.Errorf("item list contains no items")
	}

	r := NewRegistry()
	for _, entry := range file.Items {
		effects := make([]models.EffectKind, 0, len(entry.Effects))
		for _, e := range entry.Effects {
			effects = append(effects, models.EffectKind(e))
		}

		item := &models.Item{
			ID:          entry.ID,
			Name:        entry.Name,
			Type:        models.ItemType(entry.Type),
			Description: entry.Description,
			EnergyValue: entry.Energy,
			Effects:     effects,
			Duration:    entry.Duration,
			Cost:        entry.Cost,
		}

		if err := r.Add(item); err != nil {
			return nil, fmt.Errorf("invalid item list: %w", err)
		}
	}

	return r, nil
}

// LoadFile builds a registry from a YAML item list on disk
func LoadFile(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read item list %s: %w", path, err)
	}
	return Load(data)
}
