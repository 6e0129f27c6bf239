package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/philipparndt/meshbake/pkg/bake"
	"github.com/philipparndt/meshbake/pkg/dataset"
	"github.com/philipparndt/meshbake/pkg/graphgen"
	"gopkg.in/yaml.v3"
)

// DefaultFile is read from the working directory when no --config is given
const DefaultFile = "meshbake.yaml"

// Defaults for fields left empty
const (
	DefaultDatasetDir  = "Dataset"
	DefaultTexture     = "./cupe_uv.png"
	DefaultSample      = "airplane_0001"
	DefaultRenderSize  = 800
	DefaultSupersample = 2
)

// Config holds dataset locations and viewer settings
type Config struct {
	// Paths
	DatasetDir  string `yaml:"dataset_dir"`
	DatasetName string `yaml:"dataset_name"`
	Metadata    string `yaml:"metadata"`
	Generator   string `yaml:"generator"`
	Texture     string `yaml:"texture"`

	// Bake settings
	Order string `yaml:"order"`

	// View settings
	Sample      string `yaml:"sample"`
	RenderSize  int    `yaml:"render_size"`
	Supersample int    `yaml:"supersample"`
}

// Flags holds CLI flag values that override config file settings
type Flags struct {
	DatasetDir  string
	DatasetName string
	Metadata    string
	Generator   string
	Texture     string
	Order       string
	RenderSize  int
	Supersample int
}

// Load reads a YAML config file. Unknown keys are rejected and fields not
// set in the file keep their zero values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}

// LoadOrDefault loads path, or DefaultFile in the working directory when
// path is empty. A missing DefaultFile yields an empty Config.
func LoadOrDefault(path string) (Config, error) {
	if path != "" {
		return Load(path)
	}
	if _, err := os.Stat(DefaultFile); errors.Is(err, os.ErrNotExist) {
		return Config{}, nil
	}
	return Load(DefaultFile)
}

// Resolve applies flag overrides and fills empty fields with defaults.
// A relative metadata path is taken relative to the dataset directory.
func (c *Config) Resolve(flags Flags) {
	// CLI flags override config file
	if flags.DatasetDir != "" {
		c.DatasetDir = flags.DatasetDir
	}
	if flags.DatasetName != "" {
		c.DatasetName = flags.DatasetName
	}
	if flags.Metadata != "" {
		c.Metadata = flags.Metadata
	}
	if flags.Generator != "" {
		c.Generator = flags.Generator
	}
	if flags.Texture != "" {
		c.Texture = flags.Texture
	}
	if flags.Order != "" {
		c.Order = flags.Order
	}
	if flags.RenderSize > 0 {
		c.RenderSize = flags.RenderSize
	}
	if flags.Supersample > 0 {
		c.Supersample = flags.Supersample
	}

	if c.DatasetDir == "" {
		c.DatasetDir = DefaultDatasetDir
	}
	if c.DatasetName == "" {
		c.DatasetName = bake.DefaultDatasetName
	}

	if c.Metadata == "" {
		c.Metadata = filepath.Join(c.DatasetDir, dataset.DefaultFile)
	} else if flags.Metadata == "" && !filepath.IsAbs(c.Metadata) {
		c.Metadata = filepath.Join(c.DatasetDir, c.Metadata)
	}

	if c.Generator == "" {
		c.Generator = graphgen.DefaultExecutable
	}
	if c.Texture == "" {
		c.Texture = DefaultTexture
	}
	if c.Order == "" {
		c.Order = bake.OrderNative.String()
	}
	if c.Sample == "" {
		c.Sample = DefaultSample
	}
	if c.RenderSize <= 0 {
		c.RenderSize = DefaultRenderSize
	}
	if c.Supersample <= 0 {
		c.Supersample = DefaultSupersample
	}
}

// DatasetRoot returns the directory holding the class folders,
// e.g. Dataset/ModelNet40
func (c *Config) DatasetRoot() string {
	return filepath.Join(c.DatasetDir, c.DatasetName)
}
