package config

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"strings"

	yaml "gopkg.in/yaml.v3"

	"github.com/rupor-github/gencfg"
)

//go:embed config.yaml.tmpl
var ConfigTmpl []byte

type (
	TemplateFieldName string

	PageConfig struct {
		// Size is a name of standard paper size, explicit Width and Height
		// take precedence.
		Size      string  `yaml:"size" validate:"omitempty,oneof=a3 a4 a5 a6 b5 letter legal"`
		Landscape bool    `yaml:"landscape"`
		Width     float64 `yaml:"width" validate:"gte=0"`
		Height    float64 `yaml:"height" validate:"gte=0"`
		// Scale is number of pixels per millimeter for named sizes.
		Scale float64 `yaml:"scale" validate:"gt=0"`
	}

	FontsConfig struct {
		Dirs    []string `yaml:"dirs" validate:"dive,required"`
		Default string   `yaml:"default" validate:"required"`
		Size    float64  `yaml:"size" validate:"gt=0"`
		DPI     float64  `yaml:"dpi" validate:"gte=0"`
	}

	ImagesConfig struct {
		Dir       string `yaml:"dir" sanitize:"path_clean"`
		UseBroken bool   `yaml:"use_broken"`
	}

	PagingConfig struct {
		MaxPages int  `yaml:"max_pages" validate:"gte=0"`
		Debug    bool `yaml:"debug"`
	}

	RenderConfig struct {
		Format             ImageFmt `yaml:"format"`
		JPEGQuality        int      `yaml:"jpeg_quality" validate:"min=40,max=100"`
		DPI                int      `yaml:"dpi" validate:"min=1,max=65535"`
		Background         string   `yaml:"background" validate:"required"`
		Grayscale          bool     `yaml:"grayscale"`
		OutputNameTemplate string   `yaml:"output_name_template" validate:"required"`

		// FileNameTransliterate turns every output path segment into slug.
		FileNameTransliterate bool `yaml:"file_name_transliterate"`
	}

	DocumentConfig struct {
		Title string `yaml:"title"`
		// Numbering lists styles of section numbers by level: 1, a, A, I, i.
		Numbering []string `yaml:"numbering" validate:"max=8,dive,oneof=1 a A I i"`
	}

	Config struct {
		Version   int            `yaml:"version" validate:"eq=1"`
		Page      PageConfig     `yaml:"page"`
		Fonts     FontsConfig    `yaml:"fonts"`
		Images    ImagesConfig   `yaml:"images"`
		Paging    PagingConfig   `yaml:"paging"`
		Render    RenderConfig   `yaml:"render"`
		Document  DocumentConfig `yaml:"document"`
		Logging   LoggingConfig  `yaml:"logging"`
		Reporting ReporterConfig `yaml:"reporting"`
	}
)

const (
	// NOTE: must match yaml field name above
	OutputNameTemplateFieldName TemplateFieldName = "output_name_template"
)

var requiredOptions = append([]func(*gencfg.ProcessingOptions){},
	gencfg.WithDoNotExpandField(string(OutputNameTemplateFieldName)),
)

// paperSizes in millimeters, portrait.
var paperSizes = map[string][2]float64{
	"a3":     {297, 420},
	"a4":     {210, 297},
	"a5":     {148, 210},
	"a6":     {105, 148},
	"b5":     {176, 250},
	"letter": {215.9, 279.4},
	"legal":  {215.9, 355.6},
}

// Dimensions returns page size in pixels.
func (conf *PageConfig) Dimensions() (width, height float64, err error) {
	switch {
	case conf.Width > 0 && conf.Height > 0:
		width, height = conf.Width, conf.Height
	case len(conf.Size) > 0:
		mm, ok := paperSizes[strings.ToLower(conf.Size)]
		if !ok {
			return 0, 0, fmt.Errorf("unknown page size %q", conf.Size)
		}
		scale := conf.Scale
		if scale <= 0 {
			scale = 1
		}
		width, height = mm[0]*scale, mm[1]*scale
	default:
		return 0, 0, fmt.Errorf("page size is not specified")
	}
	if conf.Landscape {
		width, height = height, width
	}
	return width, height, nil
}

func unmarshalConfig(data []byte, cfg *Config, process bool) (*Config, error) {
	// We want to use only fields we defined so we cannot use yaml.Unmarshal
	// directly here
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode configuration data: %w", err)
	}
	if process {
		if err := gencfg.Sanitize(cfg); err != nil {
			return nil, fmt.Errorf("configuration sanitizing failed: %w", err)
		}
		if err := gencfg.Validate(cfg); err != nil {
			return nil, fmt.Errorf("configuration validation failed: %w", err)
		}
	}
	return cfg, nil
}

// LoadConfiguration reads the configuration from the file at the given path,
// superimposes its values on top of expanded configuration tamplate to provide
// sane defaults and performs validation.
func LoadConfiguration(path string, options ...func(*gencfg.ProcessingOptions)) (*Config, error) {
	haveFile := len(path) > 0

	data, err := gencfg.Process(ConfigTmpl, append(requiredOptions, options...)...)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration template: %w", err)
	}
	cfg, err := unmarshalConfig(data, &Config{}, !haveFile)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration template: %w", err)
	}
	if !haveFile {
		return cfg, nil
	}

	// overwrite cfg values with values from the file
	data, err = os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	cfg, err = unmarshalConfig(data, cfg, haveFile)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration file: %w", err)
	}
	return cfg, nil
}

// Prepare generates configuration file from template and returns it as a byte
// slice.
func Prepare() ([]byte, error) {
	return gencfg.Process(ConfigTmpl, requiredOptions...)
}

func Dump(cfg *Config) ([]byte, error) {
	data, err := yaml.Marshal(*cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config to yaml: %w", err)
	}
	return data, nil
}
