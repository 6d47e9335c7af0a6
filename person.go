package mythoji

import "strings"

// Code-points used to compose person glyphs.
const (
	ZWJ                 = '\u200d' // ZERO WIDTH JOINER
	VariationSelector16 = '\ufe0f' // VARIATION SELECTOR-16, emoji presentation
)

// RenderPerson composes the glyph of a person.
//
// The result is the base glyph, followed by the gender and then the skin tone,
// each preceded by a ZWJ. A trailing VariationSelector16 is appended if
// at least one of gender and skin tone is not neutral. For neutral gender and
// skin tone the base glyph is returned unchanged.
//
// RenderPerson panics with an *InvalidValueError if any argument is not a
// member of its category.
func RenderPerson(base Person, skin SkinTone, gender Gender) string {
	glyph := base.String()
	if gender == GenderNeutral && skin == SkinToneNeutral {
		return glyph
	}
	var b strings.Builder
	b.Grow(len(glyph) + 16)
	b.WriteString(glyph)
	if gender != GenderNeutral {
		b.WriteRune(ZWJ)
		b.WriteString(gender.String())
	}
	if skin != SkinToneNeutral {
		b.WriteRune(ZWJ)
		b.WriteString(skin.String())
	}
	b.WriteRune(VariationSelector16)
	return b.String()
}

// PersonEmoji is a Person together with its modifiers. The zero value is an
// artist with neutral skin tone and gender.
type PersonEmoji struct {
	Base   Person
	Skin   SkinTone
	Gender Gender
}

// NewPerson creates a person emoji.
func NewPerson(base Person, skin SkinTone, gender Gender) PersonEmoji {
	return PersonEmoji{Base: base, Skin: skin, Gender: gender}
}

// String renders p, see RenderPerson.
func (p PersonEmoji) String() string {
	return RenderPerson(p.Base, p.Skin, p.Gender)
}

// Kind is KindPerson.
func (p PersonEmoji) Kind() Kind {
	return KindPerson
}

// Valid reports whether base, skin tone and gender are all valid.
func (p PersonEmoji) Valid() bool {
	return p.Base.Valid() && p.Skin.Valid() && p.Gender.Valid()
}

// check returns the first invalid component of p, if any.
func (p PersonEmoji) check() error {
	if _, err := p.Base.Glyph(); err != nil {
		return err
	}
	if _, err := p.Skin.Glyph(); err != nil {
		return err
	}
	_, err := p.Gender.Glyph()
	return err
}
