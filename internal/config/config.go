// Package config loads projct settings from the TOML config file and the command line
package config

import (
	"fmt"
	"os"

	"github.com/bethropolis/projct/internal/printer"
	"github.com/mattn/go-isatty"
	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	// DefaultConfigFile is read from the working directory unless --config says otherwise.
	DefaultConfigFile = "projct.toml"
	// DefaultOutputFile is the dump written when neither flags nor config name one.
	DefaultOutputFile = "output.txt"
	// DefaultMaxFileSize is the content cutoff in bytes.
	DefaultMaxFileSize = printer.DefaultMaxFileSize
)

// Version is reported by --version.
var Version = "0.1.0"

// GeneralConfig is the [general] table
type GeneralConfig struct {
	Path string `mapstructure:"path"`
	// MaxDepth is nil when no limit is configured
	MaxDepth     *int `mapstructure:"max_depth"`
	UseGitignore bool `mapstructure:"use_gitignore"`
	ShowIgnored  bool `mapstructure:"show_ignored"`
	ShowBinary   bool `mapstructure:"show_binary"`
}

// OutputConfig is the [output] table
type OutputConfig struct {
	Filename        string `mapstructure:"filename"`
	MaxFileSize     int64  `mapstructure:"max_file_size"`
	ShowLineNumbers bool   `mapstructure:"show_line_numbers"`
}

// FiltersConfig is the [filters] table
type FiltersConfig struct {
	IncludePatterns []string `mapstructure:"include_patterns"`
	ExcludePatterns []string `mapstructure:"exclude_patterns"`
	// IgnorePatterns are extra gitignore-syntax rules relative to the root
	IgnorePatterns []string `mapstructure:"ignore_patterns"`
}

// Config holds all application configuration settings
type Config struct {
	General GeneralConfig `mapstructure:"general"`
	Output  OutputConfig  `mapstructure:"output"`
	Filters FiltersConfig `mapstructure:"filters"`

	// Logging settings, command line only
	Verbose     bool   `mapstructure:"-"`
	Quiet       bool   `mapstructure:"-"`
	LogLevel    string `mapstructure:"-"`
	NoColor     bool   `mapstructure:"-"`
	UseColors   bool   `mapstructure:"-"`
	ShowSkipped bool   `mapstructure:"-"`

	// ConfigPath is the file the settings were read from
	ConfigPath string `mapstructure:"-"`
}

// Default returns the settings used when no config file exists
func Default() *Config {
	return &Config{
		General: GeneralConfig{
			Path:         ".",
			UseGitignore: true,
		},
		Output: OutputConfig{
			Filename:    DefaultOutputFile,
			MaxFileSize: DefaultMaxFileSize,
		},
		ConfigPath: DefaultConfigFile,
	}
}

func setDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("general.path", d.General.Path)
	v.SetDefault("general.use_gitignore", d.General.UseGitignore)
	v.SetDefault("general.show_ignored", d.General.ShowIgnored)
	v.SetDefault("general.show_binary", d.General.ShowBinary)
	v.SetDefault("output.filename", d.Output.Filename)
	v.SetDefault("output.max_file_size", d.Output.MaxFileSize)
	v.SetDefault("output.show_line_numbers", d.Output.ShowLineNumbers)
	v.SetDefault("filters.include_patterns", []string{})
	v.SetDefault("filters.exclude_patterns", []string{})
	v.SetDefault("filters.ignore_patterns", []string{})
}

// Load reads the TOML file at path. A missing file yields the defaults. A file
// that cannot be read or parsed also yields the defaults, together with an
// error the caller is expected to report as a warning.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultConfigFile
	}
	cfg := Default()
	cfg.ConfigPath = path

	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("config: stat %s: %w", path, err)
	}
	if info.IsDir() {
		return cfg, fmt.Errorf("config: %s is a directory", path)
	}

	v := viper.New()
	setDefaults(v)
	v.SetConfigFile(path)
	v.SetConfigType("toml")
	if err := v.ReadInConfig(); err != nil {
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}

	loaded := Default()
	if err := v.Unmarshal(loaded); err != nil {
		return cfg, fmt.Errorf("config: decode %s: %w", path, err)
	}
	if !v.IsSet("general.max_depth") {
		loaded.General.MaxDepth = nil
	}
	loaded.ConfigPath = path
	return loaded, nil
}

// RegisterFlags declares every command-line setting on fs
func RegisterFlags(fs *pflag.FlagSet) {
	fs.Int("max-depth", -1, "Maximum depth to traverse (negative = no limit)")
	fs.Int64("max-size", DefaultMaxFileSize, "Maximum file size in bytes to display (0 = no limit)")
	fs.Bool("line-numbers", false, "Show line numbers")
	fs.Bool("no-gitignore", false, "Ignore .gitignore files")
	fs.Bool("show-ignored", false, "List entries excluded by ignore rules")
	fs.Bool("show-binary", false, "List binary files")
	fs.StringP("output", "o", DefaultOutputFile, "Output filename")
	fs.StringSlice("ignore", nil, "Extra ignore patterns (gitignore syntax, comma-separated)")
	fs.StringSlice("include", nil, "Only dump files whose name matches one of these globs")
	fs.StringSlice("exclude", nil, "Do not dump files whose name matches one of these globs")
	fs.Bool("show-skipped", false, "Show a list of skipped files/directories and reasons at the end")
	fs.BoolP("verbose", "v", false, "Enable verbose logging (DEBUG, WARN, ERROR)")
	fs.BoolP("quiet", "q", false, "Suppress INFO messages (only show WARN, ERROR)")
	fs.String("log-level", "", "Set the logging level (DEBUG, INFO, WARN, ERROR)")
	fs.Bool("no-color", false, "Disable color output")
}

// ApplyFlags overrides cfg with every flag the user set explicitly and then
// decides whether log output is colored.
func ApplyFlags(cfg *Config, fs *pflag.FlagSet) error {
	var err error
	changed := func(name string) bool {
		return err == nil && fs.Changed(name)
	}

	if changed("max-depth") {
		var depth int
		if depth, err = fs.GetInt("max-depth"); err == nil {
			if depth < 0 {
				cfg.General.MaxDepth = nil
			} else {
				cfg.General.MaxDepth = &depth
			}
		}
	}
	if changed("max-size") {
		cfg.Output.MaxFileSize, err = fs.GetInt64("max-size")
	}
	if changed("line-numbers") {
		cfg.Output.ShowLineNumbers, err = fs.GetBool("line-numbers")
	}
	if changed("no-gitignore") {
		var off bool
		if off, err = fs.GetBool("no-gitignore"); err == nil && off {
			cfg.General.UseGitignore = false
		}
	}
	if changed("show-ignored") {
		cfg.General.ShowIgnored, err = fs.GetBool("show-ignored")
	}
	if changed("show-binary") {
		cfg.General.ShowBinary, err = fs.GetBool("show-binary")
	}
	if changed("output") {
		cfg.Output.Filename, err = fs.GetString("output")
	}
	if changed("ignore") {
		cfg.Filters.IgnorePatterns, err = fs.GetStringSlice("ignore")
	}
	if changed("include") {
		cfg.Filters.IncludePatterns, err = fs.GetStringSlice("include")
	}
	if changed("exclude") {
		cfg.Filters.ExcludePatterns, err = fs.GetStringSlice("exclude")
	}
	if changed("show-skipped") {
		cfg.ShowSkipped, err = fs.GetBool("show-skipped")
	}
	if changed("verbose") {
		cfg.Verbose, err = fs.GetBool("verbose")
	}
	if changed("quiet") {
		cfg.Quiet, err = fs.GetBool("quiet")
	}
	if changed("log-level") {
		cfg.LogLevel, err = fs.GetString("log-level")
	}
	if changed("no-color") {
		cfg.NoColor, err = fs.GetBool("no-color")
	}
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	// Determine if colors should be used
	cfg.UseColors = !cfg.NoColor && isatty.IsTerminal(os.Stderr.Fd())
	return nil
}

// MaxDepth returns the configured depth limit, or -1 when there is none.
func (c *Config) MaxDepth() int {
	if c.General.MaxDepth == nil || *c.General.MaxDepth < 0 {
		return -1
	}
	return *c.General.MaxDepth
}

// initTemplate is what `projct init` writes.
type initTemplate struct {
	General struct {
		Path string `toml:"path"`
	} `toml:"general"`
	Output struct {
		Filename string `toml:"filename"`
	} `toml:"output"`
}

// WriteDefault writes a minimal config file to path, replacing any existing one.
func WriteDefault(path string) error {
	if path == "" {
		path = DefaultConfigFile
	}
	var tmpl initTemplate
	tmpl.General.Path = "."
	tmpl.Output.Filename = DefaultOutputFile

	data, err := toml.Marshal(tmpl)
	if err != nil {
		return fmt.Errorf("config: encode template: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("config: write %s: %w", path, err)
	}
	return nil
}
