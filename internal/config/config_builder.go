package config

import (
	"errors"
	"fmt"

	"dario.cat/mergo"
)

// Names of the configuration sources, used in error messages.
const (
	sourceEnv      = "env"
	sourceFlags    = "flags"
	sourceJSON     = "json"
	sourceDefaults = "defaults"
)

// layer is one configuration source. Layers are merged in the order they
// were added; a field set by an earlier layer is never overwritten.
type layer struct {
	source string
	cfg    *StructuredConfig
}

type configBuilder struct {
	layers []layer
	err    error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{
		layers: make([]layer, 0, 4),
	}
}

func (b *configBuilder) add(source string, cfgs ...*StructuredConfig) {
	for _, cfg := range cfgs {
		b.layers = append(b.layers, layer{source: source, cfg: cfg})
	}
}

func (b *configBuilder) fail(source string, err error) {
	b.err = errors.Join(b.err, fmt.Errorf("%s source: %w", source, err))
}

func (b *configBuilder) build() (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error loading config sources: %w", b.err)
	}

	merged := new(StructuredConfig)
	for _, l := range b.layers {
		if err := mergo.Merge(merged, l.cfg); err != nil {
			return nil, fmt.Errorf("error merging %s config: %w", l.source, err)
		}
	}

	if err := merged.validate(); err != nil {
		return nil, err
	}

	return merged, nil
}

func (b *configBuilder) withEnv() *configBuilder {
	envCfg := &StructuredConfig{}
	if err := parseEnv(envCfg); err != nil {
		b.fail(sourceEnv, err)
		return b
	}

	b.add(sourceEnv, envCfg)
	return b
}

func (b *configBuilder) withFlags() *configBuilder {
	b.add(sourceFlags, ParseFlags())
	return b
}

// withJSON loads the file named by the latest layer that sets
// JSONFilePath. It does nothing once a source has failed.
func (b *configBuilder) withJSON() *configBuilder {
	if b.err != nil {
		return b
	}

	path := b.jsonPath()
	if path == "" {
		return b
	}

	jsonCfg, err := parseJSON(path)
	if err != nil {
		b.fail(sourceJSON, err)
		return b
	}

	b.add(sourceJSON, jsonCfg)
	return b
}

func (b *configBuilder) jsonPath() string {
	for i := len(b.layers) - 1; i >= 0; i-- {
		if p := b.layers[i].cfg.JSONFilePath; p != "" {
			return p
		}
	}
	return ""
}

// withDefaults appends the built-in defaults. It must be the last source:
// mergo only fills fields that are still zero.
func (b *configBuilder) withDefaults() *configBuilder {
	b.add(sourceDefaults, defaultConfig())
	return b
}
