package mythoji

import "fmt"

// glyphTable describes a generated glyph table, see glyphs.go.
type glyphTable struct {
	category string
	glyphs   []string
	name     func(int) string
	neutral  int // the single member rendering nothing, or -1
}

// check makes sure that every member of a category has a glyph. Only the
// neutral member, if any, renders as the empty string.
func (t glyphTable) check() error {
	for n, glyph := range t.glyphs {
		if n == t.neutral {
			if glyph != "" {
				return fmt.Errorf("neutral member %s%s must not render a glyph", t.category, t.name(n))
			}
			continue
		}
		if glyph == "" {
			return fmt.Errorf("member %s%s has no glyph", t.category, t.name(n))
		}
	}
	return nil
}

func init() {
	for _, t := range glyphTables {
		if err := t.check(); err != nil {
			panic(err)
		}
	}
}
