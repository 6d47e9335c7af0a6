/*
Package mythoji is a collection of emoji glyphs for fantasy text-based games.

Description

Every glyph belongs to one of a small number of closed categories: persons,
creatures, locations, items and symbols. Categories are Go integer types with
one constant per member, and every member renders to exactly one glyph.

	castle := mythoji.LocationCastle
	fmt.Println(castle)                  // => 🏰

Persons may additionally carry a gender and a skin tone. These are rendered
as a zero width joiner sequence:

	elf := mythoji.NewPerson(mythoji.PersonElf, mythoji.SkinToneNeutral, mythoji.GenderFemale)
	fmt.Println(elf)                     // => 🧝‍♀️

The base glyph comes first, followed by the gender and then the skin tone,
each introduced by U+200D ZERO WIDTH JOINER. If at least one modifier has been
appended, the sequence is terminated by U+FE0F VARIATION SELECTOR-16.
Neutral modifiers render nothing at all.

Tables

Glyph tables are generated from internal/generator/glyphs.txt. Every table
covers all members of its category; this is checked by the compiler for the
table length and at package initialization for the entries. Values outside
of a category are not silently rendered: String() will panic, Glyph() and
Render() return an error wrapping ErrInvalidValue.

Limitations

Not all terminals support all emoji combinations. Clients should try the
demo program in cmd/mythoji and be prepared to fall back to a less fancy
representation if the specific glyphs do not work.

____________________________________________________________________________

BSD License

Copyright © 2021, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions
are met:

1. Redistributions of source code must retain the above copyright
notice, this list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright
notice, this list of conditions and the following disclaimer in the
documentation and/or other materials provided with the distribution.

3. Neither the name of this software nor the names of its contributors
may be used to endorse or promote products derived from this software
without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS
"AS IS" AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT
LIMITED TO, THE IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR
A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT
HOLDER OR CONTRIBUTORS BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL,
SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT
LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE,
DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY
THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT
(INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE. */
package mythoji

import (
	"github.com/npillmayer/schuko/tracing"
)

//go:generate go run ./internal/generator

// tracer traces to mythoji .
func tracer() tracing.Trace {
	return tracing.Select("mythoji")
}
