package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// sectionDecoder decodes one top-level YAML section onto a fresh value and
// stores it in cfg, replacing whatever was there.
type sectionDecoder func(cfg *Config, node *yaml.Node) error

func replaceWith[S any](field func(*Config) *S) sectionDecoder {
	return func(cfg *Config, node *yaml.Node) error {
		var section S
		if err := node.Decode(&section); err != nil {
			return err
		}
		*field(cfg) = section
		return nil
	}
}

// sections maps the top-level keys of config.yaml to their Config fields.
// Other keys are ignored.
//
//nolint:gochecknoglobals // Fixed lookup table.
var sections = map[string]sectionDecoder{
	"version":   replaceWith(func(c *Config) *string { return &c.Version }),
	"dashboard": replaceWith(func(c *Config) *DashboardConfig { return &c.Dashboard }),
	"output":    replaceWith(func(c *Config) *OutputConfig { return &c.Output }),
	"logging":   replaceWith(func(c *Config) *LoggingConfig { return &c.Logging }),
	"profile":   replaceWith(func(c *Config) *ProfileConfig { return &c.Profile }),
}

// ShallowMergeYAML applies the YAML file at overlayPath onto target. Every
// top-level section present in the file replaces the matching section of
// target as a whole; absent sections are left as they are.
func ShallowMergeYAML(target *Config, overlayPath string) error {
	if target == nil {
		return errors.New("nil target *Config in ShallowMergeYAML")
	}

	data, err := os.ReadFile(overlayPath)
	if err != nil {
		return fmt.Errorf("reading overlay file %s: %w", overlayPath, err)
	}

	var overlay map[string]yaml.Node
	if err = yaml.Unmarshal(data, &overlay); err != nil {
		return fmt.Errorf("parsing overlay YAML from %s: %w", overlayPath, err)
	}

	for key, node := range overlay {
		decode, ok := sections[key]
		if !ok {
			continue
		}
		if err = decode(target, &node); err != nil {
			return fmt.Errorf("applying overlay section %q: %w", key, err)
		}
	}
	return nil
}
