package tui

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Style is the presentation of one kind of fragment.
// Color is an ANSI index ("1") or a hex value ("#ff5f87").
type Style struct {
	Color string `yaml:"color" json:"color"`
	Bold  bool   `yaml:"bold" json:"bold"`
}

// Theme assigns a Style to each decorated fragment.
type Theme struct {
	TagName   Style `yaml:"tag" json:"tag"`
	AttrKey   Style `yaml:"key" json:"key"`
	AttrValue Style `yaml:"value" json:"value"`
}

// DefaultTheme paints tag names red, attribute keys green and quoted values yellow.
func DefaultTheme() Theme {
	return Theme{
		TagName:   Style{Color: "1"},
		AttrKey:   Style{Color: "2"},
		AttrValue: Style{Color: "3"},
	}
}

// LoadTheme reads a theme file (YAML, or JSON by extension) on top of DefaultTheme, so a
// file only needs the styles it changes. A missing file yields DefaultTheme.
func LoadTheme(path string) (Theme, error) {
	theme := DefaultTheme()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return theme, nil
		}
		return theme, fmt.Errorf("failed to read theme: %w", err)
	}

	if strings.ToLower(filepath.Ext(path)) == ".json" {
		if err := json.Unmarshal(data, &theme); err != nil {
			return DefaultTheme(), fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
		}
		return theme, nil
	}

	if err := yaml.Unmarshal(data, &theme); err != nil {
		return DefaultTheme(), fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
	}
	return theme, nil
}
