package mythoji

import (
	"errors"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestRenderPersonScenarios(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mythoji")
	defer teardown()
	//
	scenarios := []struct {
		name   string
		base   Person
		skin   SkinTone
		gender Gender
		glyph  string
	}{
		{"default person", PersonPerson, SkinToneNeutral, GenderNeutral, "\U0001f9d1"},
		{"female elf", PersonElf, SkinToneNeutral, GenderFemale, "\U0001f9dd\u200d\u2640\ufe0f"},
		{"light zombie", PersonZombie, SkinToneLight, GenderNeutral, "\U0001f9df\u200d\U0001f3fb\ufe0f"},
		{"dark male mage", PersonMage, SkinToneDark, GenderMale, "\U0001f9d9\u200d\u2642\u200d\U0001f3ff\ufe0f"},
		{"medium female artist", PersonArtist, SkinToneMedium, GenderFemale,
			"\U0001f9d1\u200d\U0001f3a8\u200d\u2640\u200d\U0001f3fd\ufe0f"},
	}
	for _, s := range scenarios {
		if glyph := RenderPerson(s.base, s.skin, s.gender); glyph != s.glyph {
			t.Errorf("expected %s to be %+q, is %+q", s.name, s.glyph, glyph)
		}
	}
}

func TestRenderPersonNeutral(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mythoji")
	defer teardown()
	//
	for _, p := range Persons() {
		if glyph := RenderPerson(p, SkinToneNeutral, GenderNeutral); glyph != p.String() {
			t.Errorf("expected neutral %s to be the base glyph %+q, is %+q", p.Name(), p.String(), glyph)
		}
	}
}

func TestRenderPersonComposition(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mythoji")
	defer teardown()
	//
	zwj, vs16 := string(ZWJ), string(VariationSelector16)
	for _, p := range Persons() {
		base := p.String()
		for _, g := range Genders()[1:] {
			want := base + zwj + g.String() + vs16
			if glyph := RenderPerson(p, SkinToneNeutral, g); glyph != want {
				t.Errorf("expected %s/%s to be %+q, is %+q", p.Name(), g.Name(), want, glyph)
			}
		}
		for _, s := range SkinTones()[1:] {
			want := base + zwj + s.String() + vs16
			if glyph := RenderPerson(p, s, GenderNeutral); glyph != want {
				t.Errorf("expected %s/%s to be %+q, is %+q", p.Name(), s.Name(), want, glyph)
			}
			for _, g := range Genders()[1:] {
				want := base + zwj + g.String() + zwj + s.String() + vs16
				if glyph := RenderPerson(p, s, g); glyph != want {
					t.Errorf("expected %s/%s/%s to be %+q, is %+q", p.Name(), s.Name(), g.Name(), want, glyph)
				}
			}
		}
	}
}

func TestRenderPersonVariationSelector(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mythoji")
	defer teardown()
	//
	for _, p := range Persons() {
		for _, s := range SkinTones() {
			for _, g := range Genders() {
				glyph := RenderPerson(p, s, g)
				modified := s != SkinToneNeutral || g != GenderNeutral
				if strings.HasSuffix(glyph, string(VariationSelector16)) != modified {
					t.Errorf("expected %s/%s/%s to end with VS16 = %v, glyph is %+q",
						p.Name(), s.Name(), g.Name(), modified, glyph)
				}
				joiners := strings.Count(glyph, string(ZWJ)) - strings.Count(p.String(), string(ZWJ))
				want := 0
				if s != SkinToneNeutral {
					want++
				}
				if g != GenderNeutral {
					want++
				}
				if joiners != want {
					t.Errorf("expected %s/%s/%s to add %d joiners, adds %d", p.Name(), s.Name(), g.Name(), want, joiners)
				}
			}
		}
	}
}

func TestRenderPersonPanics(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mythoji")
	defer teardown()
	//
	defer func() {
		r := recover()
		if r == nil {
			t.Fatalf("expected invalid skin tone to panic")
		}
		err, ok := r.(error)
		if !ok || !errors.Is(err, ErrInvalidValue) {
			t.Errorf("expected panic with ErrInvalidValue, is %v", r)
		}
	}()
	_ = RenderPerson(PersonElf, SkinTone(17), GenderMale)
}

func TestPersonEmoji(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mythoji")
	defer teardown()
	//
	p := NewPerson(PersonVampire, SkinToneMediumDark, GenderMale)
	if p.String() != RenderPerson(PersonVampire, SkinToneMediumDark, GenderMale) {
		t.Errorf("expected person emoji to render like RenderPerson, is %+q", p.String())
	}
	if p.Kind() != KindPerson {
		t.Errorf("expected kind to be person, is %s", p.Kind())
	}
	if !p.Valid() {
		t.Errorf("expected %v to be valid", p)
	}
	var zero PersonEmoji
	if zero.Base != PersonArtist || zero.String() != PersonArtist.String() {
		t.Errorf("expected zero person emoji to be a neutral artist, is %+q", zero.String())
	}
	broken := PersonEmoji{Base: PersonElf, Gender: Gender(5)}
	if broken.Valid() {
		t.Errorf("expected person with gender 5 to be invalid")
	}
	if err := broken.check(); !errors.Is(err, ErrInvalidValue) {
		t.Errorf("expected check to fail with ErrInvalidValue, error is %v", err)
	}
}
