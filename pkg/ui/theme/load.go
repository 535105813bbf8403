package theme

import (
	stderrors "errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/odvcencio/marquee/pkg/errors"
)

// fileTheme is the on-disk shape shared by TOML and YAML themes.
// Every field is optional; missing fields keep the default value.
type fileTheme struct {
	Shadow  *bool             `toml:"shadow" yaml:"shadow"`
	Borders string            `toml:"borders" yaml:"borders"`
	Colors  map[string]string `toml:"colors" yaml:"colors"`
}

// LoadFile reads a theme file. The format is chosen by extension:
// .yaml and .yml are YAML, anything else is TOML.
func LoadFile(path string) (*Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeThemeRead, "failed to read theme file").
			WithContext("path", path)
	}

	var th *Theme
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		th, err = LoadYAML(string(data))
	default:
		th, err = LoadTOML(string(data))
	}
	if err != nil {
		return nil, withPath(err, path)
	}
	return th, nil
}

// withPath records path on the first *errors.Error in err's chain. Errors
// without one are reported as parse failures.
func withPath(err error, path string) error {
	var e *errors.Error
	if stderrors.As(err, &e) {
		e.WithContext("path", path)
		return err
	}
	return errors.Wrap(err, errors.ErrCodeThemeParse, "invalid theme").WithContext("path", path)
}

// LoadTOML parses a TOML theme on top of Default().
func LoadTOML(content string) (*Theme, error) {
	var ft fileTheme
	if _, err := toml.Decode(content, &ft); err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeThemeParse, "invalid TOML theme")
	}
	return ft.apply(Default())
}

// LoadYAML parses a YAML theme on top of Default().
func LoadYAML(content string) (*Theme, error) {
	var ft fileTheme
	if err := yaml.Unmarshal([]byte(content), &ft); err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeThemeParse, "invalid YAML theme")
	}
	return ft.apply(Default())
}

func (ft fileTheme) apply(base *Theme) (*Theme, error) {
	th := base.Clone()
	if ft.Shadow != nil {
		th.Shadow = *ft.Shadow
	}
	if ft.Borders != "" {
		b, err := ParseBorderStyle(ft.Borders)
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrCodeThemeParse, "invalid borders")
		}
		th.Borders = b
	}
	for name, value := range ft.Colors {
		role, ok := ParsePaletteColor(name)
		if !ok {
			return nil, errors.New(errors.ErrCodeThemeParse, "unknown palette color").
				WithContext("name", name)
		}
		c, err := ParseColor(value)
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrCodeThemeParse, "invalid color").
				WithContext("name", name)
		}
		th.Palette.Set(role, c)
	}
	return th, nil
}
