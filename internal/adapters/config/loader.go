// Package config provides the target registry loader.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"

	"github.com/ktmlm/RUC/internal/core/domain"
	"github.com/ktmlm/RUC/internal/core/ports"
)

// Loader implements ports.RegistryLoader. The registry always starts from
// the built-in table; an optional ruc.yaml overlay contributes additional
// targets.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// supportedVersion is the overlay schema version this build understands.
const supportedVersion = "1"

var validTargetNameRegex = regexp.MustCompile("^[a-zA-Z0-9_-]+$")

// Load builds the registry for cwd and validates it. A broken overlay or an
// inconsistent registry fails the load as a whole, before anything runs.
func (l *Loader) Load(cwd string) (*domain.Registry, error) {
	reg := domain.NewRegistry()
	builtins := make(map[string]bool)
	for _, target := range domain.BuiltinTargets() {
		builtins[target.Name.String()] = true
		if err := reg.Add(&target); err != nil {
			return nil, err
		}
	}

	if overlayPath, found := l.findOverlay(cwd); found {
		if err := l.applyOverlay(reg, builtins, overlayPath); err != nil {
			return nil, err
		}
	}

	if err := reg.Validate(); err != nil {
		return nil, err
	}
	return reg, nil
}

// DiscoverRoot returns the directory holding the overlay file, or cwd itself
// when no overlay exists between cwd and the filesystem root.
func (l *Loader) DiscoverRoot(cwd string) (string, error) {
	if overlayPath, found := l.findOverlay(cwd); found {
		return filepath.Dir(overlayPath), nil
	}
	return cwd, nil
}

func (l *Loader) findOverlay(cwd string) (string, bool) {
	currentDir := cwd
	for {
		overlayPath := filepath.Join(currentDir, domain.ConfigFileName)
		if _, err := os.Stat(overlayPath); err == nil {
			return overlayPath, true
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached root
			return "", false
		}
		currentDir = parentDir
	}
}

func (l *Loader) applyOverlay(reg *domain.Registry, builtins map[string]bool, overlayPath string) error {
	var rucfile Rucfile
	if err := readAndUnmarshalYAML(overlayPath, &rucfile); err != nil {
		return err
	}

	if rucfile.Version != "" && rucfile.Version != supportedVersion {
		l.Logger.Warn(fmt.Sprintf(
			"%s declares version %q, this build understands version %q",
			domain.ConfigFileName, rucfile.Version, supportedVersion,
		))
	}

	entries, err := rucfile.TargetEntries()
	if err != nil {
		return err
	}

	for _, entry := range entries {
		if err := validateTargetName(entry.Name, builtins); err != nil {
			return err
		}

		target, err := buildTarget(entry)
		if err != nil {
			return err
		}

		if err := reg.Add(target); err != nil {
			return err
		}
	}
	return nil
}

// buildTarget creates a domain.Target from an overlay entry.
func buildTarget(entry TargetEntry) (*domain.Target, error) {
	commands := make([]domain.Command, 0, len(entry.DTO.Commands))
	for _, argv := range entry.DTO.Commands {
		if len(argv) == 0 {
			return nil, zerr.With(domain.ErrEmptyCommand, "target", entry.Name)
		}
		commands = append(commands, domain.Command(argv))
	}

	return &domain.Target{
		Name:          domain.NewInternedString(entry.Name),
		Prerequisites: domain.NewInternedStrings(entry.DTO.Prerequisites),
		Commands:      commands,
	}, nil
}

// readAndUnmarshalYAML reads a YAML file and unmarshals it into the target struct.
func readAndUnmarshalYAML[T any](configPath string, target *T) error {
	// #nosec G304 -- configPath is validated by caller
	configFile, err := os.ReadFile(configPath)
	if err != nil {
		return zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
	}

	if parseErr := yaml.Unmarshal(configFile, target); parseErr != nil {
		return zerr.Wrap(parseErr, domain.ErrConfigParseFailed.Error())
	}

	return nil
}

// validateTargetName checks if the target name is reserved or contains
// invalid characters.
func validateTargetName(name string, builtins map[string]bool) error {
	if builtins[name] {
		return zerr.With(domain.ErrReservedTargetName, "target_name", name)
	}
	if !validTargetNameRegex.MatchString(name) {
		return zerr.With(domain.ErrInvalidTargetName, "target_name", name)
	}
	return nil
}
