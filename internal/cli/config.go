package cli

import (
	stderrors "errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/matzehuels/framer/pkg/errors"
	"github.com/matzehuels/framer/pkg/frame"
	"github.com/matzehuels/framer/pkg/units"
)

// Setting keys. Nested keys map to TOML tables in the config file and to
// underscored environment variables (stock.width -> FRAMER_STOCK_WIDTH).
const (
	keyPresets     = "presets"
	keyStockWidth  = "stock.width"
	keyStockHeight = "stock.height"
	keyUnits       = "units"
	keyDenominator = "tape.denominator"
	keyRounding    = "tape.rounding"
	keyPNGZoom     = "render.png_zoom"
)

const defaultPNGZoom = 2.0

// flagKeys binds persistent flags to setting keys.
var flagKeys = map[string]string{
	keyPresets:     "presets",
	keyStockWidth:  "stock-width",
	keyStockHeight: "stock-height",
	keyUnits:       "units",
	keyDenominator: "denominator",
	keyRounding:    "rounding",
}

func newViper() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix("FRAMER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(keyStockWidth, "2")
	v.SetDefault(keyStockHeight, "1")
	v.SetDefault(keyUnits, units.ModeCM.String())
	v.SetDefault(keyDenominator, int(units.DefaultDenominator))
	v.SetDefault(keyRounding, units.Ceiling.String())
	v.SetDefault(keyPNGZoom, defaultPNGZoom)
}

// bindFlags registers the global settings flags.
func (c *CLI) bindFlags(flags *pflag.FlagSet) {
	flags.String("presets", "", "TOML file with additional presets")
	flags.String("stock-width", "2", `moulding width in inches, decimal or tape ("1 3/4")`)
	flags.String("stock-height", "1", "moulding depth in inches")
	flags.String("units", "cm", "display units: cm, in, tape")
	flags.Int("denominator", int(units.DefaultDenominator), "tape resolution: 1, 2, 4, 8, 16, 32, 64")
	flags.String("rounding", "ceiling", "tape rounding: ceiling, floor, nearest")

	for key, name := range flagKeys {
		if err := c.v.BindPFlag(key, flags.Lookup(name)); err != nil {
			panic(err)
		}
	}
}

// readConfig merges the config file into the settings. An explicit path
// must exist; the default location is optional.
func (c *CLI) readConfig(path string) error {
	if path != "" {
		c.v.SetConfigFile(path)
	} else {
		dir, err := configDir()
		if err != nil {
			return nil
		}
		c.v.SetConfigName("config")
		c.v.SetConfigType("toml")
		c.v.AddConfigPath(dir)
	}

	if err := c.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		missing := stderrors.As(err, &notFound) || stderrors.Is(err, fs.ErrNotExist)
		switch {
		case missing && path == "":
			return nil
		case missing:
			return errors.Wrap(errors.ErrCodeFileNotFound, err, "config file %s", path)
		default:
			return errors.Wrap(errors.ErrCodeInvalidInput, err, "read config")
		}
	}
	c.Logger.Debugf("Using config %s", c.v.ConfigFileUsed())
	return nil
}

// configDir returns the config directory ($XDG_CONFIG_HOME/framer or
// ~/.config/framer).
func configDir() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName), nil
}

// settings are the resolved, validated global options.
type settings struct {
	presets string
	stock   frame.FrameStock
	mode    units.DisplayMode
	tape    []units.TapeOption
	pngZoom float64
}

func (c *CLI) settings() (settings, error) {
	s := settings{presets: c.v.GetString(keyPresets)}

	width, err := units.ParseTapeMeasure(c.v.GetString(keyStockWidth))
	if err != nil {
		return s, errors.Wrap(errors.ErrCodeInvalidUnits, err, "stock width")
	}
	height, err := units.ParseTapeMeasure(c.v.GetString(keyStockHeight))
	if err != nil {
		return s, errors.Wrap(errors.ErrCodeInvalidUnits, err, "stock height")
	}
	s.stock = frame.FrameStock{WidthIn: width, HeightIn: height}
	if err := s.stock.Validate(); err != nil {
		return s, err
	}

	if s.mode, err = units.ParseDisplayMode(c.v.GetString(keyUnits)); err != nil {
		return s, err
	}
	den, err := units.ParseDenominator(c.v.GetInt(keyDenominator))
	if err != nil {
		return s, err
	}
	rounding, err := units.ParseRoundingMode(c.v.GetString(keyRounding))
	if err != nil {
		return s, err
	}
	s.tape = []units.TapeOption{units.WithDenominator(den), units.WithRounding(rounding)}

	s.pngZoom = c.v.GetFloat64(keyPNGZoom)
	if s.pngZoom <= 0 {
		s.pngZoom = defaultPNGZoom
	}
	return s, nil
}

// format prints v in the configured display units.
func (s settings) format(v units.Value) string { return v.Format(s.mode, s.tape...) }
