package config

import (
	"io/ioutil"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v2"
)

const (
	DefaultSplitThreshold     = 4.0
	DefaultDefaultStrokeWidth = 0.0
)

// Defaults are processing settings. Every station set may override any of
// them; unset fields fall back to the top level defaults.
type Defaults struct {
	SplitThreshold     *float64 `yaml:"split_threshold"`
	DefaultStrokeWidth *float64 `yaml:"default_stroke_width"`
	BakeTransforms     *bool    `yaml:"bake_transforms"`
	AssignIds          *bool    `yaml:"assign_ids"`
}

// Split names a track element and the point to cut it at. X and Y are
// document coordinates, as measured on the drawing with every transform
// applied; split_threshold is in the same units.
type Split struct {
	Id string  `yaml:"id"`
	X  float64 `yaml:"x"`
	Y  float64 `yaml:"y"`
}

type StationSet struct {
	InputFile  string   `yaml:"infile"`
	OutputFile string   `yaml:"outfile"`
	InfoFile   string   `yaml:"infofile"`
	Splits     []Split  `yaml:"splits"`
	Overrides  Defaults `yaml:",inline"`
}

type Config struct {
	General  map[string]string
	Defaults Defaults                `yaml:"defaults"`
	Stations map[string][]StationSet `yaml:"stations"`
	DbParam  map[string]string       `yaml:"database"`
}

// Settings are the effective values for one station set.
type Settings struct {
	SplitThreshold     float64
	DefaultStrokeWidth float64
	BakeTransforms     bool
	AssignIds          bool
}

func pickFloat(def float64, vals ...*float64) float64 {
	for _, v := range vals {
		if v != nil {
			def = *v
		}
	}
	return def
}

func pickBool(vals ...*bool) bool {
	b := false
	for _, v := range vals {
		if v != nil {
			b = *v
		}
	}
	return b
}

// Settings resolves set overrides over the configured defaults over the
// built-in ones.
func (c *Config) Settings(set StationSet) Settings {
	d, o := c.Defaults, set.Overrides
	return Settings{
		SplitThreshold:     pickFloat(DefaultSplitThreshold, d.SplitThreshold, o.SplitThreshold),
		DefaultStrokeWidth: pickFloat(DefaultDefaultStrokeWidth, d.DefaultStrokeWidth, o.DefaultStrokeWidth),
		BakeTransforms:     pickBool(d.BakeTransforms, o.BakeTransforms),
		AssignIds:          pickBool(d.AssignIds, o.AssignIds),
	}
}

func Parse(yamlcfg []byte) (*Config, error) {
	config := &Config{}
	if err := yaml.Unmarshal(yamlcfg, config); err != nil {
		return nil, errors.Wrap(err, "yaml.Unmarshal()")
	}
	for name, sets := range config.Stations {
		for i, set := range sets {
			if set.InputFile == "" {
				return nil, errors.Errorf("station '%s' set %d: no infile", name, i)
			}
			if set.Overrides.SplitThreshold != nil && *set.Overrides.SplitThreshold <= 0 {
				return nil, errors.Errorf("station '%s' set %d: split_threshold must be positive", name, i)
			}
		}
	}
	if t := config.Defaults.SplitThreshold; t != nil && *t <= 0 {
		return nil, errors.New("defaults: split_threshold must be positive")
	}
	return config, nil
}

func Load(configFile string) (*Config, error) {
	yamlcfg, err := ioutil.ReadFile(configFile)
	if err != nil {
		return nil, errors.Wrapf(err, "read config file '%s'", configFile)
	}
	config, err := Parse(yamlcfg)
	if err != nil {
		return nil, errors.Wrapf(err, "config file '%s'", configFile)
	}
	return config, nil
}

func New(configFile string) *Config {
	config, err := Load(configFile)
	if err != nil {
		log.Fatal(err)
	}
	return config
}
