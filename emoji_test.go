package mythoji

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestKinds(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mythoji")
	defer teardown()
	//
	emojis := []Emoji{
		NewPerson(PersonGenie, SkinToneNeutral, GenderNeutral),
		CreatureDragon,
		LocationCastle,
		ItemAmulet,
		SymbolSparkles,
	}
	for i, e := range emojis {
		if e.Kind() != Kinds()[i] {
			t.Errorf("expected %s to be of kind %s, is %s", e, Kinds()[i], e.Kind())
		}
	}
	if Kind(9).String() != "Kind(9)" {
		t.Errorf("expected invalid kind to be named Kind(9), is %q", Kind(9).String())
	}
}

func TestKindByName(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mythoji")
	defer teardown()
	//
	for _, k := range Kinds() {
		if l, err := KindByName(k.String()); err != nil || l != k {
			t.Errorf("expected KindByName(%q) to be %d, is %d (%v)", k.String(), k, l, err)
		}
	}
	if k, err := KindByName("Location"); err != nil || k != KindLocation {
		t.Errorf("expected \"Location\" to be KindLocation, is %s (%v)", k, err)
	}
	if _, err := KindByName("weapon"); !errors.Is(err, ErrUnknownName) {
		t.Errorf("expected weapon to be an unknown kind, error is %v", err)
	}
}

func TestRender(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mythoji")
	defer teardown()
	//
	valid := []struct {
		e     Emoji
		glyph string
	}{
		{CreatureDragon, "\U0001f409"},
		{LocationCastle, "\U0001f3f0"},
		{ItemAmulet, "\U0001f9ff"},
		{SymbolFire, "\U0001f525"},
		{NewPerson(PersonElf, SkinToneNeutral, GenderFemale), "\U0001f9dd\u200d\u2640\ufe0f"},
	}
	for _, x := range valid {
		glyph, err := Render(x.e)
		if err != nil {
			t.Errorf("expected %+q to render, error is %v", x.glyph, err)
		}
		if glyph != x.glyph {
			t.Errorf("expected emoji to render as %+q, is %+q", x.glyph, glyph)
		}
	}
	invalid := []Emoji{
		nil,
		Creature(100),
		Location(-3),
		Item(53),
		Symbol(18),
		NewPerson(Person(18), SkinToneNeutral, GenderNeutral),
		NewPerson(PersonMage, SkinTone(6), GenderNeutral),
		NewPerson(PersonMage, SkinToneDark, Gender(3)),
	}
	for i, e := range invalid {
		glyph, err := Render(e)
		if !errors.Is(err, ErrInvalidValue) {
			t.Errorf("expected invalid emoji #%d to fail with ErrInvalidValue, error is %v", i, err)
		}
		if glyph != "" {
			t.Errorf("expected invalid emoji #%d to render nothing, is %+q", i, glyph)
		}
	}
}

func TestDefault(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mythoji")
	defer teardown()
	//
	e := Default()
	if e.Kind() != KindPerson {
		t.Fatalf("expected default emoji to be a person, is %s", e.Kind())
	}
	p := e.(PersonEmoji)
	if p.Base != DefaultPerson || p.Skin != DefaultSkinTone || p.Gender != DefaultGender {
		t.Errorf("expected default emoji to be a neutral default person, is %+v", p)
	}
	if glyph, err := Render(e); err != nil || glyph != "\U0001f9d1" {
		t.Errorf("expected default emoji to render as ADULT, is %+q (%v)", glyph, err)
	}
}
