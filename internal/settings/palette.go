package settings

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"mapdraw/internal/mapstore"
)

//go:embed palettes.yaml
var palettesYAML []byte

// Palette is the set of canvas colours for one theme, as hex strings.
type Palette struct {
	Background string                        `yaml:"background"`
	Grid       string                        `yaml:"grid"`
	Stroke     string                        `yaml:"stroke"`
	Points     map[mapstore.PointType]string `yaml:"points"`
}

// Color returns the fill colour for a point type, falling back to the
// stroke colour for types the palette does not name.
func (p Palette) Color(t mapstore.PointType) string {
	if c, ok := p.Points[t]; ok {
		return c
	}
	return p.Stroke
}

var palettes map[Theme]Palette

func init() {
	var err error
	palettes, err = ParsePalettes(palettesYAML)
	if err != nil {
		panic(err)
	}
}

// ParsePalettes decodes a theme -> palette document and checks that every
// point type has a colour.
func ParsePalettes(data []byte) (map[Theme]Palette, error) {
	out := map[Theme]Palette{}
	if err := yaml.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("palettes: %w", err)
	}
	for theme, p := range out {
		for _, t := range mapstore.PointTypes {
			if p.Points[t] == "" {
				return nil, fmt.Errorf("palettes: theme %q has no colour for %s", theme, t)
			}
		}
	}
	return out, nil
}

// PaletteFor returns the palette of a theme; unknown themes get light.
func PaletteFor(t Theme) Palette {
	if p, ok := palettes[t]; ok {
		return p
	}
	return palettes[Light]
}
