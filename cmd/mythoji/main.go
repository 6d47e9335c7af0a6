/*
Mythoji lists the glyphs of package mythoji.

Usage

   mythoji [-category person|creature|location|item|symbol|all] [-modifiers]
           [-codepoints] [-trace D|I|E]

For every member of the selected categories a line "Name = glyph" is printed.
Persons are followed by all of their skin tone and gender combinations, unless
-modifiers=false is given. With -codepoints, every glyph is followed by the
names of its code-points, which helps to find out why a terminal shows a
combination as more than one glyph.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/npillmayer/mythoji"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/rivo/uniseg"
	"golang.org/x/text/unicode/runenames"
)

// T traces to the CLI tracer.
func T() tracing.Trace {
	return tracing.Select("mythoji.cmd")
}

type options struct {
	modifiers  bool // list skin tone and gender combinations of persons
	codepoints bool // append code-point names
}

func main() {
	category := flag.String("category", "all", "Category to list (person, creature, location, item, symbol, all)")
	modifiers := flag.Bool("modifiers", true, "List all skin tones and genders of persons")
	codepoints := flag.Bool("codepoints", false, "Show code-point names of glyphs")
	tlevel := flag.String("trace", "E", "Trace level [D|I|E]")
	flag.Parse()
	trace := gologadapter.New()
	level, err := traceLevel(*tlevel)
	trace.SetTraceLevel(level)
	tracing.SetTraceSelector(tracing.SelectorForAdapter(func() tracing.Trace { return trace }))
	if err != nil {
		T().Errorf("%v", err)
		os.Exit(2)
	}
	//
	kinds, err := selectKinds(*category)
	if err != nil {
		T().Errorf("%v", err)
		os.Exit(2)
	}
	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()
	opts := options{modifiers: *modifiers, codepoints: *codepoints}
	for i, k := range kinds {
		if i > 0 {
			fmt.Fprintln(out)
		}
		list(out, k, opts)
	}
}

// selectKinds interprets the -category flag.
func selectKinds(category string) ([]mythoji.Kind, error) {
	if strings.EqualFold(category, "all") {
		return mythoji.Kinds(), nil
	}
	k, err := mythoji.KindByName(category)
	if err != nil {
		return nil, err
	}
	return []mythoji.Kind{k}, nil
}

// list writes all members of a kind to w.
func list(w io.Writer, kind mythoji.Kind, opts options) {
	T().Infof("listing category %s", kind)
	fmt.Fprintf(w, "mythoji.%s\n\n", typeName(kind))
	for _, e := range members(kind) {
		writeRow(w, "", nameOf(e), e.String(), opts)
		p, ok := e.(mythoji.PersonEmoji)
		if !ok || !opts.modifiers {
			continue
		}
		for _, skin := range mythoji.SkinTones() {
			for _, gender := range mythoji.Genders() {
				variant := mythoji.NewPerson(p.Base, skin, gender)
				label := skin.Name() + " + " + gender.Name()
				writeRow(w, "  ", label, variant.String(), opts)
			}
		}
	}
}

// writeRow prints a "name = glyph" line. Names are padded to 25 columns,
// including indentation.
func writeRow(w io.Writer, indent, name, glyph string, opts options) {
	fmt.Fprintf(w, "%s%-*s = %s", indent, 25-len(indent), name, glyph)
	if opts.codepoints {
		// glyphs are 1 or 2 cells wide
		pad := 3 - uniseg.StringWidth(glyph)
		if pad < 1 {
			pad = 1
		}
		fmt.Fprintf(w, "%s%s", strings.Repeat(" ", pad), codepointNames(glyph))
	}
	fmt.Fprintln(w)
}

func codepointNames(glyph string) string {
	var names []string
	for _, r := range glyph {
		names = append(names, fmt.Sprintf("%U %s", r, runenames.Name(r)))
	}
	return strings.Join(names, ", ")
}

func members(kind mythoji.Kind) []mythoji.Emoji {
	var all []mythoji.Emoji
	switch kind {
	case mythoji.KindPerson:
		for _, p := range mythoji.Persons() {
			all = append(all, mythoji.NewPerson(p, mythoji.DefaultSkinTone, mythoji.DefaultGender))
		}
	case mythoji.KindCreature:
		for _, c := range mythoji.Creatures() {
			all = append(all, c)
		}
	case mythoji.KindLocation:
		for _, l := range mythoji.Locations() {
			all = append(all, l)
		}
	case mythoji.KindItem:
		for _, i := range mythoji.Items() {
			all = append(all, i)
		}
	case mythoji.KindSymbol:
		for _, s := range mythoji.Symbols() {
			all = append(all, s)
		}
	}
	return all
}

func nameOf(e mythoji.Emoji) string {
	switch x := e.(type) {
	case mythoji.PersonEmoji:
		return x.Base.Name()
	case mythoji.Creature:
		return x.Name()
	case mythoji.Location:
		return x.Name()
	case mythoji.Item:
		return x.Name()
	case mythoji.Symbol:
		return x.Name()
	}
	return "?"
}

func typeName(kind mythoji.Kind) string {
	s := kind.String()
	return strings.ToUpper(s[:1]) + s[1:]
}

// --- Tracing ----------------------------------------------------------

// traceLevel interprets the -trace flag. Unknown levels are rejected and
// tracing stays at error level.
func traceLevel(l string) (tracing.TraceLevel, error) {
	switch l {
	case "D":
		return tracing.LevelDebug, nil
	case "I":
		return tracing.LevelInfo, nil
	case "E":
		return tracing.LevelError, nil
	}
	return tracing.LevelError, fmt.Errorf("unknown trace level %q, expected one of D, I, E", l)
}
