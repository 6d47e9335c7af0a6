package mythoji

// Person is a base glyph for people. Persons may be combined with a
// SkinTone and a Gender, see RenderPerson.
//
// The zero value is PersonArtist; the designated default is DefaultPerson.
type Person int8

// SkinTone modifies the skin color of a Person.
type SkinTone int8

// Gender modifies the gender of a Person.
type Gender int8

// Creature is any living thing which is not a Person.
//
// All glyphs are meant to show the side view of a creature, not its face,
// wherever such a glyph exists.
type Creature int8

// Location is a place or landmark.
type Location int8

// Item is a thing to carry, use or find.
type Item int8

// Symbol is a pictographic sign.
type Symbol int8

// Default members of the categories. SkinTone, Gender and Creature default to
// their zero values.
const (
	DefaultPerson   = PersonPerson
	DefaultSkinTone = SkinToneNeutral
	DefaultGender   = GenderNeutral
	DefaultCreature = CreatureAnt
)
