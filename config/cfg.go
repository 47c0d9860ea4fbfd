package config

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"unicode/utf8"

	yaml "gopkg.in/yaml.v3"

	"github.com/rupor-github/gencfg"
)

//go:embed config.yaml.tmpl
var ConfigTmpl []byte

// badFileName replaces file names with nothing usable left.
const badFileName = "_bad_file_name_"

type (
	FontConfig struct {
		Name string  `yaml:"name" validate:"required"`
		Size float64 `yaml:"size" validate:"gt=0"`
	}

	// PageConfig is the page template every document starts with, in points.
	PageConfig struct {
		Width        float64 `yaml:"width" validate:"gt=0"`
		Height       float64 `yaml:"height" validate:"gt=0"`
		MarginTop    float64 `yaml:"margin_top" validate:"gte=0"`
		MarginBottom float64 `yaml:"margin_bottom" validate:"gte=0"`
		MarginLeft   float64 `yaml:"margin_left" validate:"gte=0"`
		MarginRight  float64 `yaml:"margin_right" validate:"gte=0"`
		Landscape    bool    `yaml:"landscape"`
	}

	MetadataConfig struct {
		Author   string `yaml:"author"`
		Language string `yaml:"language"`
	}

	XHTMLConfig struct {
		StylesheetPath string `yaml:"stylesheet_path" sanitize:"assure_file_access"`
		PageGeometry   bool   `yaml:"page_geometry"`
	}

	CSVConfig struct {
		Comma  string `yaml:"comma" validate:"required"`
		Header bool   `yaml:"header"`
		// SheetSeparator joins document and sheet names of multi sheet output.
		SheetSeparator string `yaml:"sheet_separator"`
	}

	DocumentConfig struct {
		SourceCharset         string         `yaml:"source_charset"`
		ArchiveNamesCharset   string         `yaml:"archive_names_charset"`
		SmallPictureLimit     int            `yaml:"small_picture_limit" validate:"gte=0"`
		FileNameTransliterate bool           `yaml:"file_name_transliterate"`
		DefaultFont           FontConfig     `yaml:"default_font"`
		Page                  PageConfig     `yaml:"page"`
		Metadata              MetadataConfig `yaml:"metadata"`
		XHTML                 XHTMLConfig    `yaml:"xhtml"`
		CSV                   CSVConfig      `yaml:"csv"`
	}

	Config struct {
		Version   int            `yaml:"version" validate:"eq=1"`
		Document  DocumentConfig `yaml:"document"`
		Logging   LoggingConfig  `yaml:"logging"`
		Reporting ReporterConfig `yaml:"reporting"`
	}
)

// CommaRune returns the csv field separator.
func (c *CSVConfig) CommaRune() rune {
	r, _ := utf8.DecodeRuneInString(c.Comma)
	if r == utf8.RuneError {
		return ','
	}
	return r
}

func unmarshalConfig(data []byte, cfg *Config, process bool) (*Config, error) {
	// only fields we defined are allowed, so no yaml.Unmarshal here
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode configuration data: %w", err)
	}
	if process {
		if err := gencfg.Sanitize(cfg); err != nil {
			return nil, err
		}
		if err := gencfg.Validate(cfg); err != nil {
			return nil, err
		}
		if utf8.RuneCountInString(cfg.Document.CSV.Comma) != 1 {
			return nil, fmt.Errorf("csv comma must be a single character, got %q", cfg.Document.CSV.Comma)
		}
	}
	return cfg, nil
}

// LoadConfiguration reads the configuration from the file at the given path,
// superimposes its values on top of expanded configuration template to
// provide sane defaults and performs validation.
func LoadConfiguration(path string, options ...func(*gencfg.ProcessingOptions)) (*Config, error) {
	haveFile := len(path) > 0

	data, err := gencfg.Process(ConfigTmpl, options...)
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
	return gencfg.Process(ConfigTmpl)
}

func Dump(cfg *Config) ([]byte, error) {
	data, err := yaml.Marshal(*cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config to yaml: %w", err)
	}
	return data, nil
}
