package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/npillmayer/mythoji"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestSelectKinds(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mythoji.cmd")
	defer teardown()
	//
	kinds, err := selectKinds("all")
	if err != nil || len(kinds) != 5 {
		t.Errorf("expected 'all' to select 5 kinds, selects %v (%v)", kinds, err)
	}
	kinds, err = selectKinds("Creature")
	if err != nil || len(kinds) != 1 || kinds[0] != mythoji.KindCreature {
		t.Errorf("expected 'Creature' to select creatures, selects %v (%v)", kinds, err)
	}
	if _, err = selectKinds("monsters"); !errors.Is(err, mythoji.ErrUnknownName) {
		t.Errorf("expected 'monsters' to be rejected, error is %v", err)
	}
}

func TestTraceLevel(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mythoji.cmd")
	defer teardown()
	//
	levels := map[string]tracing.TraceLevel{
		"D": tracing.LevelDebug,
		"I": tracing.LevelInfo,
		"E": tracing.LevelError,
	}
	for code, want := range levels {
		if l, err := traceLevel(code); err != nil || l != want {
			t.Errorf("expected -trace %s to select level %d, selects %d (%v)", code, want, l, err)
		}
	}
	for _, code := range []string{"X", "", "debug", "d"} {
		l, err := traceLevel(code)
		if err == nil {
			t.Errorf("expected -trace %q to be rejected", code)
		}
		if l != tracing.LevelError {
			t.Errorf("expected unknown level %q to keep error level, is %d", code, l)
		}
	}
}

func TestListLocations(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mythoji.cmd")
	defer teardown()
	//
	var buf bytes.Buffer
	list(&buf, mythoji.KindLocation, options{})
	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if lines[0] != "mythoji.Location" || lines[1] != "" {
		t.Errorf("expected heading 'mythoji.Location', is %q", lines[0])
	}
	if len(lines) != 2+len(mythoji.Locations()) {
		t.Fatalf("expected %d lines, have %d", 2+len(mythoji.Locations()), len(lines))
	}
	want := "Castle                    = \U0001f3f0"
	if lines[2+int(mythoji.LocationCastle)] != want {
		t.Errorf("expected row %q, is %q", want, lines[2+int(mythoji.LocationCastle)])
	}
}

func TestListPersons(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mythoji.cmd")
	defer teardown()
	//
	var buf bytes.Buffer
	list(&buf, mythoji.KindPerson, options{modifiers: true})
	out := buf.String()
	variants := len(mythoji.SkinTones()) * len(mythoji.Genders())
	if n := strings.Count(out, "\n"); n != 2+len(mythoji.Persons())*(1+variants) {
		t.Errorf("expected %d lines, have %d", 2+len(mythoji.Persons())*(1+variants), n)
	}
	elf := "  Dark + Female           = " + mythoji.RenderPerson(mythoji.PersonElf, mythoji.SkinToneDark, mythoji.GenderFemale)
	if !strings.Contains(out, elf+"\n") {
		t.Errorf("expected listing to contain %q", elf)
	}
	buf.Reset()
	list(&buf, mythoji.KindPerson, options{})
	if n := strings.Count(buf.String(), "\n"); n != 2+len(mythoji.Persons()) {
		t.Errorf("expected %d lines without modifiers, have %d", 2+len(mythoji.Persons()), n)
	}
}

func TestListCodepoints(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mythoji.cmd")
	defer teardown()
	//
	var buf bytes.Buffer
	list(&buf, mythoji.KindCreature, options{codepoints: true})
	want := "Dragon                    = \U0001f409 U+1F409 DRAGON\n"
	if !strings.Contains(buf.String(), want) {
		t.Errorf("expected listing to contain %q", want)
	}
	names := codepointNames(mythoji.RenderPerson(mythoji.PersonElf, mythoji.SkinToneNeutral, mythoji.GenderFemale))
	if names != "U+1F9DD ELF, U+200D ZERO WIDTH JOINER, U+2640 FEMALE SIGN, U+FE0F VARIATION SELECTOR-16" {
		t.Errorf("unexpected code-point names for female elf: %q", names)
	}
}
