/*
Package main is a generator for the glyph tables of package mythoji.

Content

Glyph data for all categories is kept in a companion file "glyphs.txt",
one category member per line. The format is modelled after the Unicode
emoji data files (see for example
https://www.unicode.org/Public/emoji/latest/emoji-zwj-sequences.txt):

   1F9D1 200D 1F3A8 ; Person   ; Artist       # is an artist

Code points are a blank-separated sequence of hex numbers. An empty code-point
field denotes a neutral modifier, which renders nothing. Members are
enumerated in file order.

Usage

The generator has three flags:

   generator [-v] [-data glyphs.txt] [-o glyphs.go]

This creates a file "glyphs.go", containing the enumeration constants,
glyph tables and accessors for every category. It is designed to be called
from the module root via `go generate`.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package main

import (
	"bufio"
	"bytes"
	"errors"
	"flag"
	"fmt"
	"go/format"
	"io"
	"os"
	"runtime"
	"strconv"
	"strings"
	"text/template"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/emirpasic/gods/lists/arraylist"
	"github.com/emirpasic/gods/maps/linkedhashmap"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"golang.org/x/text/unicode/runenames"
)

// T traces to the generator's tracer.
func T() tracing.Trace {
	return tracing.Select("mythoji.generator")
}

// flag: verbose output ?
var verbose bool

// entry is a single data line of glyphs.txt.
type entry struct {
	line        int
	category    string
	name        string
	codepoints  []rune
	description string
}

// parseLine splits a data line into an entry. Comment-only and empty lines
// yield (nil, nil).
func parseLine(line string, lineno int) (*entry, error) {
	data, comment := line, ""
	if i := strings.IndexByte(line, '#'); i >= 0 {
		data, comment = line[:i], line[i+1:]
	}
	if strings.TrimSpace(data) == "" {
		return nil, nil
	}
	fields := strings.Split(data, ";")
	if len(fields) != 3 {
		return nil, fmt.Errorf("line %d: expected 3 fields, have %d", lineno, len(fields))
	}
	e := &entry{
		line:        lineno,
		category:    strings.TrimSpace(fields[1]),
		name:        strings.TrimSpace(fields[2]),
		description: strings.TrimSpace(comment),
	}
	if !isIdentifier(e.category) || !isIdentifier(e.name) {
		return nil, fmt.Errorf("line %d: category and name must be Go identifiers", lineno)
	}
	for _, hex := range strings.Fields(fields[0]) {
		n, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return nil, fmt.Errorf("line %d: hex decoding error: %w", lineno, err)
		}
		if n > unicode.MaxRune {
			return nil, fmt.Errorf("line %d: %s is not a code point", lineno, hex)
		}
		e.codepoints = append(e.codepoints, rune(n))
	}
	return e, nil
}

func isIdentifier(s string) bool {
	first, _ := utf8.DecodeRuneInString(s)
	if s == "" || !unicode.IsUpper(first) {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// loadGlyphData reads glyphs.txt and collects entries per category, with
// categories in order of first appearance.
func loadGlyphData(r io.Reader) (*linkedhashmap.Map, error) {
	defer timeTrack(time.Now(), "loading glyph data")
	categories := linkedhashmap.New()
	seen := make(map[string]int)
	scanner := bufio.NewScanner(r)
	lineno := 0
	for scanner.Scan() {
		lineno++
		e, err := parseLine(scanner.Text(), lineno)
		if err != nil {
			return nil, err
		}
		if e == nil {
			continue
		}
		key := e.category + "." + e.name
		if first, dup := seen[key]; dup {
			return nil, fmt.Errorf("line %d: %s already defined in line %d", lineno, key, first)
		}
		seen[key] = lineno
		list, found := categories.Get(e.category)
		if !found {
			list = arraylist.New()
			categories.Put(e.category, list)
		}
		list.(*arraylist.List).Add(e)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if categories.Empty() {
		return nil, errors.New("no glyph data found")
	}
	return categories, nil
}

// --- Template data ----------------------------------------------------

type member struct {
	Const   string // PersonArtist
	Name    string // Artist
	Doc     string // is an artist
	Literal string // Go string literal of the glyph
	Pad     string // aligns the trailing comment
	Comment string // code-point names
	End     int    // end index into the name string
}

type category struct {
	Type        string // Person
	Var         string // person
	Recv        string // p
	Plural      string // Persons
	NeutralExpr string // ordinal allowed to render nothing, or -1
	Members     []member
}

// neutralAllowed lists the modifier categories, the only ones which may have
// a member rendering nothing.
var neutralAllowed = map[string]bool{
	"SkinTone": true,
	"Gender":   true,
}

func makeCategory(name string, entries *arraylist.List) (*category, error) {
	cat := &category{
		Type:        name,
		Var:         strings.ToLower(name[:1]) + name[1:],
		Recv:        strings.ToLower(name[:1]),
		Plural:      name + "s",
		NeutralExpr: "-1",
	}
	end, width := 0, 0
	it := entries.Iterator()
	for it.Next() {
		e := it.Value().(*entry)
		if len(e.codepoints) == 0 {
			if !neutralAllowed[name] {
				return nil, fmt.Errorf("line %d: %s.%s has no glyph", e.line, name, e.name)
			}
			if cat.NeutralExpr != "-1" {
				return nil, fmt.Errorf("line %d: %s has more than one neutral member", e.line, name)
			}
			cat.NeutralExpr = "int(" + name + e.name + ")"
		}
		end += len(e.name)
		m := member{
			Const:   name + e.name,
			Name:    e.name,
			Doc:     e.description,
			Literal: strconv.QuoteToASCII(string(e.codepoints)),
			Comment: codepointNames(e.codepoints),
			End:     end,
		}
		if len(m.Literal) > width {
			width = len(m.Literal)
		}
		cat.Members = append(cat.Members, m)
	}
	for i := range cat.Members {
		cat.Members[i].Pad = strings.Repeat(" ", width-len(cat.Members[i].Literal))
	}
	if verbose {
		T().Infof("category %s has %d members", name, len(cat.Members))
	}
	return cat, nil
}

func codepointNames(cps []rune) string {
	if len(cps) == 0 {
		return "renders nothing"
	}
	names := make([]string, len(cps))
	for i, r := range cps {
		names[i] = runenames.Name(r)
		if names[i] == "" {
			names[i] = fmt.Sprintf("%U", r)
		}
	}
	return strings.Join(names, ", ")
}

// --- Templates --------------------------------------------------------

var header = `package mythoji

// This file has been generated from internal/generator/glyphs.txt
// -- you probably should NOT EDIT IT !
//
// BSD License, Copyright (c) 2021, Norbert Pillmayer (norbert@pillmayer.com)

import (
	"strconv"
	"strings"
)
`

var templateCategory = `
// --- {{.Type}} {{rule .Type}}

// Members of {{.Type}}, in declaration order.
const (
{{- range $i, $m := .Members}}
	// {{$m.Const}} {{$m.Doc}}.
	{{$m.Const}}{{if eq $i 0}} {{$.Type}} = iota{{end}}
{{- end}}
)

const {{.Var}}Count = {{len .Members}}

var {{.Var}}Glyphs = [...]string{
{{- range .Members}}
	{{.Literal}},{{.Pad}} // {{.Comment}}
{{- end}}
}

// Tables must cover every member of {{.Type}}.
var _ = [1]struct{}{}[len({{.Var}}Glyphs)-{{.Var}}Count]

const _{{.Type}}_name = "{{range .Members}}{{.Name}}{{end}}"

var _{{.Type}}_index = [...]uint16{0{{range .Members}}, {{.End}}{{end}}}

// String returns the glyph for {{.Recv}}.
// It panics with an *InvalidValueError if {{.Recv}} is not a member of {{.Type}}.
func ({{.Recv}} {{.Type}}) String() string {
	glyph, err := {{.Recv}}.Glyph()
	if err != nil {
		panic(err)
	}
	return glyph
}

// Glyph returns the glyph for {{.Recv}}, or an error wrapping ErrInvalidValue
// if {{.Recv}} is not a member of {{.Type}}.
func ({{.Recv}} {{.Type}}) Glyph() (string, error) {
	if !{{.Recv}}.Valid() {
		return "", invalidValue("{{.Type}}", int({{.Recv}}))
	}
	return {{.Var}}Glyphs[{{.Recv}}], nil
}

// Name returns the name of {{.Recv}} without the {{.Type}} prefix.
func ({{.Recv}} {{.Type}}) Name() string {
	if !{{.Recv}}.Valid() {
		return "{{.Type}}(" + strconv.FormatInt(int64({{.Recv}}), 10) + ")"
	}
	return _{{.Type}}_name[_{{.Type}}_index[{{.Recv}}]:_{{.Type}}_index[{{.Recv}}+1]]
}

// Valid reports whether {{.Recv}} is a member of {{.Type}}.
func ({{.Recv}} {{.Type}}) Valid() bool {
	return {{.Recv}} >= 0 && int({{.Recv}}) < {{.Var}}Count
}

// {{.Plural}} returns all members of {{.Type}} in declaration order.
func {{.Plural}}() []{{.Type}} {
	all := make([]{{.Type}}, {{.Var}}Count)
	for n := range all {
		all[n] = {{.Type}}(n)
	}
	return all
}

// {{.Type}}ByName returns the member of {{.Type}} called name, ignoring case.
func {{.Type}}ByName(name string) ({{.Type}}, error) {
	for n := 0; n < {{.Var}}Count; n++ {
		if strings.EqualFold({{.Type}}(n).Name(), name) {
			return {{.Type}}(n), nil
		}
	}
	return 0, unknownName("{{.Type}}", name)
}

// {{.Type}}FromOrdinal converts n to a {{.Type}}, checking its range.
func {{.Type}}FromOrdinal(n int) ({{.Type}}, error) {
	if n < 0 || n >= {{.Var}}Count {
		return 0, invalidValue("{{.Type}}", n)
	}
	return {{.Type}}(n), nil
}
`

var templateTables = `
// glyphTables lists the tables checked for totality at initialization time.
var glyphTables = [...]glyphTable{
{{- range .}}
	{category: "{{.Type}}", glyphs: {{.Var}}Glyphs[:], name: func(n int) string { return {{.Type}}(n).Name() }, neutral: {{.NeutralExpr}}},
{{- end}}
}
`

// Helper functions for templates
var funcMap = template.FuncMap{
	"rule": func(name string) string {
		return strings.Repeat("-", 76-len("// --- "+name+" "))
	},
}

func makeTemplate(name string, templString string) *template.Template {
	if verbose {
		T().Infof("creating %s", name)
	}
	return template.Must(template.New(name).Funcs(funcMap).Parse(templString))
}

// --- Main -------------------------------------------------------------

// generate writes the Go source for all categories to w.
func generate(w io.Writer, categories *linkedhashmap.Map) error {
	defer timeTrack(time.Now(), "generate tables")
	var buf bytes.Buffer
	buf.WriteString(header)
	var cats []*category
	it := categories.Iterator()
	for it.Next() {
		cat, err := makeCategory(it.Key().(string), it.Value().(*arraylist.List))
		if err != nil {
			return err
		}
		cats = append(cats, cat)
	}
	t := makeTemplate("category", templateCategory)
	for _, cat := range cats {
		if err := t.Execute(&buf, cat); err != nil {
			return err
		}
	}
	if err := makeTemplate("tables", templateTables).Execute(&buf, cats); err != nil {
		return err
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		return fmt.Errorf("generated code does not parse: %w", err)
	}
	_, err = w.Write(src)
	return err
}

func main() {
	doVerbose := flag.Bool("v", false, "verbose output mode")
	dataFile := flag.String("data", "internal/generator/glyphs.txt", "Glyph data file")
	outFile := flag.String("o", "glyphs.go", "Output file name")
	flag.Parse()
	verbose = *doVerbose
	trace := gologadapter.New()
	if verbose {
		trace.SetTraceLevel(tracing.LevelInfo)
	}
	tracing.SetTraceSelector(tracing.SelectorForAdapter(func() tracing.Trace { return trace }))
	//
	f, err := os.Open(*dataFile)
	checkFatal(err)
	categories, err := loadGlyphData(f)
	f.Close()
	checkFatal(err)
	T().Infof("loaded %d glyph categories", categories.Size())
	var out bytes.Buffer
	checkFatal(generate(&out, categories))
	checkFatal(os.WriteFile(*outFile, out.Bytes(), 0644))
}

// --- Util -------------------------------------------------------------

// Little helper for testing
func timeTrack(start time.Time, name string) {
	if verbose {
		elapsed := time.Since(start)
		T().Infof("timing: %s took %s", name, elapsed)
	}
}

func checkFatal(err error) {
	_, file, line, _ := runtime.Caller(1)
	if err != nil {
		T().Errorf("%s:%d - %v", file, line, err)
		os.Exit(1)
	}
}
