package mythoji

import (
	"fmt"
	"strings"
)

// Emoji is any glyph of this package: a PersonEmoji, Creature, Location,
// Item or Symbol. The set of implementations is closed.
type Emoji interface {
	fmt.Stringer
	Kind() Kind
	Valid() bool
	check() error
}

// Kind tells the category of an Emoji.
type Kind int8

// Kinds of emojis.
const (
	KindPerson Kind = iota
	KindCreature
	KindLocation
	KindItem
	KindSymbol
)

var kindNames = [...]string{"person", "creature", "location", "item", "symbol"}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", k)
	}
	return kindNames[k]
}

// Kinds returns all kinds in declaration order.
func Kinds() []Kind {
	return []Kind{KindPerson, KindCreature, KindLocation, KindItem, KindSymbol}
}

// KindByName returns the kind called name ("person", "item", …), ignoring case.
func KindByName(name string) (Kind, error) {
	for k, n := range kindNames {
		if strings.EqualFold(n, name) {
			return Kind(k), nil
		}
	}
	return 0, unknownName("Kind", name)
}

// Default returns the default emoji, a person of neutral skin tone and gender.
func Default() Emoji {
	return NewPerson(DefaultPerson, DefaultSkinTone, DefaultGender)
}

// Render returns the glyph of e. Unlike e.String(), Render does not panic
// for invalid values, but returns an error wrapping ErrInvalidValue.
func Render(e Emoji) (string, error) {
	if e == nil {
		return "", fmt.Errorf("%w: nil emoji", ErrInvalidValue)
	}
	if err := e.check(); err != nil {
		return "", err
	}
	return e.String(), nil
}

// Members of all single-glyph categories are emojis.

// Kind is KindCreature.
func (c Creature) Kind() Kind { return KindCreature }

// Kind is KindLocation.
func (l Location) Kind() Kind { return KindLocation }

// Kind is KindItem.
func (i Item) Kind() Kind { return KindItem }

// Kind is KindSymbol.
func (s Symbol) Kind() Kind { return KindSymbol }

func (c Creature) check() error {
	_, err := c.Glyph()
	return err
}

func (l Location) check() error {
	_, err := l.Glyph()
	return err
}

func (i Item) check() error {
	_, err := i.Glyph()
	return err
}

func (s Symbol) check() error {
	_, err := s.Glyph()
	return err
}

var (
	_ Emoji = PersonEmoji{}
	_ Emoji = CreatureAnt
	_ Emoji = LocationCastle
	_ Emoji = ItemAmulet
	_ Emoji = SymbolFire
)
