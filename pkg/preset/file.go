package preset

import (
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"

	"github.com/matzehuels/framer/pkg/errors"
	"github.com/matzehuels/framer/pkg/frame"
)

type presetFile struct {
	Presets map[string]presetEntry `toml:"presets" validate:"required,min=1,dive"`
}

type presetEntry struct {
	Name       string  `toml:"name" validate:"required,max=128"`
	WidthMin   float64 `toml:"width_min_cm" validate:"gt=0"`
	WidthMax   float64 `toml:"width_max_cm" validate:"gt=0,gtefield=WidthMin"`
	HeightMin  float64 `toml:"height_min_cm" validate:"gt=0"`
	HeightMax  float64 `toml:"height_max_cm" validate:"gt=0,gtefield=HeightMin"`
	HideLeft   float64 `toml:"hide_left_cm" validate:"gte=0"`
	HideTop    float64 `toml:"hide_top_cm" validate:"gte=0"`
	HideRight  float64 `toml:"hide_right_cm" validate:"gte=0"`
	HideBottom float64 `toml:"hide_bottom_cm" validate:"gte=0"`
}

func (e presetEntry) spec() frame.PaintingSpec {
	return frame.PaintingSpec{
		Name:       e.Name,
		WidthMin:   e.WidthMin,
		WidthMax:   e.WidthMax,
		HeightMin:  e.HeightMin,
		HeightMax:  e.HeightMax,
		HideLeft:   e.HideLeft,
		HideTop:    e.HideTop,
		HideRight:  e.HideRight,
		HideBottom: e.HideBottom,
	}
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Load returns the built-in catalog extended with the presets in path.
func Load(path string) (*Catalog, error) {
	c := Builtin()
	if err := c.LoadFile(path); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadFile decodes a TOML preset file into c.
func (c *Catalog) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return errors.Wrap(errors.ErrCodeFileNotFound, err, "preset file %s", path)
		}
		return errors.Wrap(errors.ErrCodeInvalidPreset, err, "read %s", path)
	}
	return c.decode(string(data), path)
}

func (c *Catalog) decode(data, source string) error {
	var f presetFile
	md, err := toml.Decode(data, &f)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidPreset, err, "decode %s", source)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return errors.New(errors.ErrCodeInvalidPreset, "%s: unknown keys: %s", source, strings.Join(keys, ", "))
	}
	if err := validate.Struct(f); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidPreset, describe(err), "validate %s", source)
	}

	keys := make([]string, 0, len(f.Presets))
	for k := range f.Presets {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	for _, k := range keys {
		if err := c.Add(k, source, f.Presets[k].spec()); err != nil {
			return err
		}
	}
	return nil
}

// describe flattens validator errors into one readable line.
func describe(err error) error {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}
	msgs := make([]string, len(verrs))
	for i, fe := range verrs {
		field := strings.TrimPrefix(fe.Namespace(), "presetFile.")
		if fe.Param() != "" {
			msgs[i] = fmt.Sprintf("%s failed %s=%s", field, fe.Tag(), fe.Param())
		} else {
			msgs[i] = fmt.Sprintf("%s failed %s", field, fe.Tag())
		}
	}
	return fmt.Errorf("%s", strings.Join(msgs, "; "))
}
