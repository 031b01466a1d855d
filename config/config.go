// Package config loads the YAML run description used by the subiso CLI.
package config

import (
	"log/slog"
	"os"
	"slices"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/orazve/subiso"
	"github.com/orazve/subiso/builder"
	"github.com/orazve/subiso/core"
	"github.com/orazve/subiso/match"
)

// ErrInvalid marks a configuration value that failed validation.
var ErrInvalid = errors.New("config: invalid value")

// Attribute modes for generated graphs.
const (
	AttributesCyclic = "cyclic"
	AttributesRandom = "random"
)

// Log formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Config captures one CLI run: how to generate the target and pattern, how to
// match, and how to log and report.
type Config struct {
	Target  GraphSpec `yaml:"target"`
	Pattern GraphSpec `yaml:"pattern"`
	Match   Match     `yaml:"match"`
	Logging Logging   `yaml:"logging"`
	Output  Output    `yaml:"output"`
}

// GraphSpec describes a generated graph.
type GraphSpec struct {
	Topology string  `yaml:"topology"`
	N        int     `yaml:"n"`
	M        int     `yaml:"m"`
	D        int     `yaml:"d"`
	P        float64 `yaml:"p"`
	Seed     int64   `yaml:"seed"`
	// Attributes is the number of distinct vertex labels; 0 leaves every
	// vertex at attribute 0.
	Attributes     int    `yaml:"attributes"`
	AttributeMode  string `yaml:"attribute_mode"`
	Representation string `yaml:"representation"`
}

// Match mirrors subiso.Descriptor.
type Match struct {
	Induced    bool `yaml:"induced"`
	Semantic   bool `yaml:"semantic"`
	MaxMatches int  `yaml:"max_matches"`
	Workers    int  `yaml:"workers"`
}

// Logging selects the slog handler.
type Logging struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Output controls the report.
type Output struct {
	// Show is the number of embeddings printed.
	Show int `yaml:"show"`
}

// Load reads path over the defaults and validates the result.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrap(err, "read config")
	}
	return Parse(data)
}

// Parse decodes YAML data over the defaults and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, errors.Wrap(err, "decode config")
	}
	normalize(&cfg)
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Default returns a small random-graph run looking for 4-cycles.
func Default() Config {
	return Config{
		Target: GraphSpec{
			Topology:       builder.TopologyRandom,
			N:              200,
			P:              0.05,
			Seed:           7,
			AttributeMode:  AttributesCyclic,
			Representation: core.Auto.String(),
		},
		Pattern: GraphSpec{
			Topology:       builder.TopologyCycle,
			N:              4,
			AttributeMode:  AttributesCyclic,
			Representation: core.Sparse.String(),
		},
		Match:   Match{Induced: true},
		Logging: Logging{Level: "info", Format: FormatText},
		Output:  Output{Show: 10},
	}
}

func normalize(cfg *Config) {
	for _, g := range []*GraphSpec{&cfg.Target, &cfg.Pattern} {
		g.Topology = strings.ToLower(strings.TrimSpace(g.Topology))
		g.AttributeMode = strings.ToLower(strings.TrimSpace(g.AttributeMode))
		g.Representation = strings.ToLower(strings.TrimSpace(g.Representation))
		if g.AttributeMode == "" {
			g.AttributeMode = AttributesCyclic
		}
		if g.Representation == "" {
			g.Representation = core.Auto.String()
		}
	}
	cfg.Logging.Level = strings.ToLower(strings.TrimSpace(cfg.Logging.Level))
	cfg.Logging.Format = strings.ToLower(strings.TrimSpace(cfg.Logging.Format))
}

// Validate reports the first invalid field.
func (c Config) Validate() error {
	if err := c.Target.validate("target"); err != nil {
		return err
	}
	if err := c.Pattern.validate("pattern"); err != nil {
		return err
	}
	switch {
	case c.Match.MaxMatches < 0:
		return errors.Wrapf(ErrInvalid, "match.max_matches=%d", c.Match.MaxMatches)
	case c.Match.Workers < 0:
		return errors.Wrapf(ErrInvalid, "match.workers=%d", c.Match.Workers)
	case c.Output.Show < 0:
		return errors.Wrapf(ErrInvalid, "output.show=%d", c.Output.Show)
	case c.Logging.Format != FormatText && c.Logging.Format != FormatJSON:
		return errors.Wrapf(ErrInvalid, "logging.format=%q", c.Logging.Format)
	}
	if _, err := c.Logging.SlogLevel(); err != nil {
		return err
	}
	return nil
}

func (g GraphSpec) validate(section string) error {
	if !slices.Contains(builder.Topologies(), g.Topology) {
		return errors.Wrapf(ErrInvalid, "%s.topology=%q (want one of %s)",
			section, g.Topology, strings.Join(builder.Topologies(), ", "))
	}
	if g.N <= 0 {
		return errors.Wrapf(ErrInvalid, "%s.n=%d", section, g.N)
	}
	if g.Attributes < 0 {
		return errors.Wrapf(ErrInvalid, "%s.attributes=%d", section, g.Attributes)
	}
	if g.AttributeMode != AttributesCyclic && g.AttributeMode != AttributesRandom {
		return errors.Wrapf(ErrInvalid, "%s.attribute_mode=%q", section, g.AttributeMode)
	}
	if _, err := core.ParseRepresentation(g.Representation); err != nil {
		return errors.Wrapf(ErrInvalid, "%s.representation=%q", section, g.Representation)
	}
	return nil
}

// Snapshot generates the graph described by g.
func (g GraphSpec) Snapshot() (*core.Snapshot, error) {
	cons, err := builder.FromSpec(builder.Spec{Topology: g.Topology, N: g.N, M: g.M, D: g.D, P: g.P})
	if err != nil {
		return nil, errors.Wrap(err, "resolve topology")
	}
	repr, err := core.ParseRepresentation(g.Representation)
	if err != nil {
		return nil, errors.Wrap(err, "resolve representation")
	}

	bopts := []builder.BuilderOption{builder.WithSeed(g.Seed)}
	if g.Attributes > 0 {
		if g.AttributeMode == AttributesRandom {
			bopts = append(bopts, builder.WithRandomLabels(g.Attributes))
		} else {
			bopts = append(bopts, builder.WithCyclicLabels(g.Attributes))
		}
	}

	s, err := builder.BuildSnapshot(bopts, []core.SnapshotOption{core.WithRepresentation(repr)}, cons)
	if err != nil {
		return nil, errors.Wrapf(err, "build %s graph", g.Topology)
	}
	return s, nil
}

// Descriptor converts the match section.
func (m Match) Descriptor() subiso.Descriptor {
	kind := match.NonInduced
	if m.Induced {
		kind = match.Induced
	}
	return subiso.Descriptor{
		Kind:          kind,
		Semantic:      m.Semantic,
		MaxMatchCount: m.MaxMatches,
		Workers:       m.Workers,
	}
}

// SlogLevel parses Level.
func (l Logging) SlogLevel() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(l.Level)); err != nil {
		return 0, errors.Wrapf(ErrInvalid, "logging.level=%q", l.Level)
	}
	return lvl, nil
}
