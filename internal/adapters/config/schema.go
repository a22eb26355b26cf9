package config

import (
	"gopkg.in/yaml.v3"

	"go.trai.ch/zerr"

	"github.com/ktmlm/RUC/internal/core/domain"
)

// Rucfile represents the structure of the ruc.yaml overlay file.
type Rucfile struct {
	Version string    `yaml:"version"`
	Targets yaml.Node `yaml:"targets"`
}

// TargetDTO represents a target definition in the overlay file.
type TargetDTO struct {
	Prerequisites []string   `yaml:"prerequisites"`
	Commands      [][]string `yaml:"commands"`
}

// TargetEntry pairs an overlay target name with its definition.
type TargetEntry struct {
	Name string
	DTO  *TargetDTO
}

// TargetEntries decodes the targets mapping into entries that keep the
// document order of the file. Declaration order matters downstream: it is
// the tie-break during resolution and the order listings use, so the usual
// map decoding is not enough here.
func (f *Rucfile) TargetEntries() ([]TargetEntry, error) {
	if f.Targets.Kind == 0 || f.Targets.Tag == "!!null" {
		return nil, nil
	}
	if f.Targets.Kind != yaml.MappingNode {
		return nil, zerr.Wrap(domain.ErrConfigParseFailed, "targets must be a mapping")
	}

	entries := make([]TargetEntry, 0, len(f.Targets.Content)/2)
	for i := 0; i+1 < len(f.Targets.Content); i += 2 {
		keyNode := f.Targets.Content[i]
		valueNode := f.Targets.Content[i+1]

		dto := &TargetDTO{}
		if err := valueNode.Decode(dto); err != nil {
			return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "target", keyNode.Value)
		}
		entries = append(entries, TargetEntry{Name: keyNode.Value, DTO: dto})
	}
	return entries, nil
}
