package mythoji

// This file has been generated from internal/generator/glyphs.txt
// -- you probably should NOT EDIT IT !
//
// BSD License, Copyright (c) 2021, Norbert Pillmayer (norbert@pillmayer.com)

import (
	"strconv"
	"strings"
)

// --- Person --------------------------------------------------------------

// Members of Person, in declaration order.
const (
	// PersonArtist is an artist.
	PersonArtist Person = iota
	// PersonBaby is a baby.
	PersonBaby
	// PersonBaldPerson is a bald person.
	PersonBaldPerson
	// PersonBeardedPerson is a person with a beard.
	PersonBeardedPerson
	// PersonChild is a child.
	PersonChild
	// PersonFairy is a fairy.
	PersonFairy
	// PersonElf is an elf.
	PersonElf
	// PersonGenie is a genie.
	PersonGenie
	// PersonHeadScarfPerson is a person with a head scarf.
	PersonHeadScarfPerson
	// PersonMage is a mage.
	PersonMage
	// PersonMerPerson is a mer-person.
	PersonMerPerson
	// PersonOldPerson is an old person.
	PersonOldPerson
	// PersonPerson is a person.
	PersonPerson
	// PersonRoyalty is a person of royalty.
	PersonRoyalty
	// PersonSkullCapPerson is a person with a skull cap.
	PersonSkullCapPerson
	// PersonTurbanPerson is a person with a turban.
	PersonTurbanPerson
	// PersonVampire is a vampire.
	PersonVampire
	// PersonZombie is a zombie.
	PersonZombie
)

const personCount = 18

var personGlyphs = [...]string{
	"\U0001f9d1\u200d\U0001f3a8", // ADULT, ZERO WIDTH JOINER, ARTIST PALETTE
	"\U0001f476",                 // BABY
	"\U0001f9d1\u200d\U0001f9b2", // ADULT, ZERO WIDTH JOINER, EMOJI COMPONENT BALD
	"\U0001f9d4",                 // BEARDED PERSON
	"\U0001f9d2",                 // CHILD
	"\U0001f9da",                 // FAIRY
	"\U0001f9dd",                 // ELF
	"\U0001f9de",                 // GENIE
	"\U0001f9d5",                 // PERSON WITH HEADSCARF
	"\U0001f9d9",                 // MAGE
	"\U0001f9dc",                 // MERPERSON
	"\U0001f9d3",                 // OLDER ADULT
	"\U0001f9d1",                 // ADULT
	"\U0001f934",                 // PRINCE
	"\U0001f472",                 // MAN WITH GUA PI MAO
	"\U0001f473",                 // MAN WITH TURBAN
	"\U0001f9db",                 // VAMPIRE
	"\U0001f9df",                 // ZOMBIE
}

// Tables must cover every member of Person.
var _ = [1]struct{}{}[len(personGlyphs)-personCount]

const _Person_name = "ArtistBabyBaldPersonBeardedPersonChildFairyElfGenieHeadScarfPersonMageMerPersonOldPersonPersonRoyaltySkullCapPersonTurbanPersonVampireZombie"

var _Person_index = [...]uint16{0, 6, 10, 20, 33, 38, 43, 46, 51, 66, 70, 79, 88, 94, 101, 115, 127, 134, 140}

// String returns the glyph for p.
// It panics with an *InvalidValueError if p is not a member of Person.
func (p Person) String() string {
	glyph, err := p.Glyph()
	if err != nil {
		panic(err)
	}
	return glyph
}

// Glyph returns the glyph for p, or an error wrapping ErrInvalidValue
// if p is not a member of Person.
func (p Person) Glyph() (string, error) {
	if !p.Valid() {
		return "", invalidValue("Person", int(p))
	}
	return personGlyphs[p], nil
}

// Name returns the name of p without the Person prefix.
func (p Person) Name() string {
	if !p.Valid() {
		return "Person(" + strconv.FormatInt(int64(p), 10) + ")"
	}
	return _Person_name[_Person_index[p]:_Person_index[p+1]]
}

// Valid reports whether p is a member of Person.
func (p Person) Valid() bool {
	return p >= 0 && int(p) < personCount
}

// Persons returns all members of Person in declaration order.
func Persons() []Person {
	all := make([]Person, personCount)
	for n := range all {
		all[n] = Person(n)
	}
	return all
}

// PersonByName returns the member of Person called name, ignoring case.
func PersonByName(name string) (Person, error) {
	for n := 0; n < personCount; n++ {
		if strings.EqualFold(Person(n).Name(), name) {
			return Person(n), nil
		}
	}
	return 0, unknownName("Person", name)
}

// PersonFromOrdinal converts n to a Person, checking its range.
func PersonFromOrdinal(n int) (Person, error) {
	if n < 0 || n >= personCount {
		return 0, invalidValue("Person", n)
	}
	return Person(n), nil
}

// --- SkinTone ------------------------------------------------------------

// Members of SkinTone, in declaration order.
const (
	// SkinToneNeutral leaves a skin toned emoji with a neutral skin tone, often "Simpsons yellow".
	SkinToneNeutral SkinTone = iota
	// SkinToneLight makes a skin toned emoji appear with a light skin tone.
	SkinToneLight
	// SkinToneMediumLight makes a skin toned emoji appear with a medium light skin tone.
	SkinToneMediumLight
	// SkinToneMedium makes a skin toned emoji appear with a medium skin tone.
	SkinToneMedium
	// SkinToneMediumDark makes a skin toned emoji appear with a medium dark skin tone.
	SkinToneMediumDark
	// SkinToneDark makes a skin toned emoji appear with a dark skin tone.
	SkinToneDark
)

const skinToneCount = 6

var skinToneGlyphs = [...]string{
	"",           // renders nothing
	"\U0001f3fb", // EMOJI MODIFIER FITZPATRICK TYPE-1-2
	"\U0001f3fc", // EMOJI MODIFIER FITZPATRICK TYPE-3
	"\U0001f3fd", // EMOJI MODIFIER FITZPATRICK TYPE-4
	"\U0001f3fe", // EMOJI MODIFIER FITZPATRICK TYPE-5
	"\U0001f3ff", // EMOJI MODIFIER FITZPATRICK TYPE-6
}

// Tables must cover every member of SkinTone.
var _ = [1]struct{}{}[len(skinToneGlyphs)-skinToneCount]

const _SkinTone_name = "NeutralLightMediumLightMediumMediumDarkDark"

var _SkinTone_index = [...]uint16{0, 7, 12, 23, 29, 39, 43}

// String returns the glyph for s.
// It panics with an *InvalidValueError if s is not a member of SkinTone.
func (s SkinTone) String() string {
	glyph, err := s.Glyph()
	if err != nil {
		panic(err)
	}
	return glyph
}

// Glyph returns the glyph for s, or an error wrapping ErrInvalidValue
// if s is not a member of SkinTone.
func (s SkinTone) Glyph() (string, error) {
	if !s.Valid() {
		return "", invalidValue("SkinTone", int(s))
	}
	return skinToneGlyphs[s], nil
}

// Name returns the name of s without the SkinTone prefix.
func (s SkinTone) Name() string {
	if !s.Valid() {
		return "SkinTone(" + strconv.FormatInt(int64(s), 10) + ")"
	}
	return _SkinTone_name[_SkinTone_index[s]:_SkinTone_index[s+1]]
}

// Valid reports whether s is a member of SkinTone.
func (s SkinTone) Valid() bool {
	return s >= 0 && int(s) < skinToneCount
}

// SkinTones returns all members of SkinTone in declaration order.
func SkinTones() []SkinTone {
	all := make([]SkinTone, skinToneCount)
	for n := range all {
		all[n] = SkinTone(n)
	}
	return all
}

// SkinToneByName returns the member of SkinTone called name, ignoring case.
func SkinToneByName(name string) (SkinTone, error) {
	for n := 0; n < skinToneCount; n++ {
		if strings.EqualFold(SkinTone(n).Name(), name) {
			return SkinTone(n), nil
		}
	}
	return 0, unknownName("SkinTone", name)
}

// SkinToneFromOrdinal converts n to a SkinTone, checking its range.
func SkinToneFromOrdinal(n int) (SkinTone, error) {
	if n < 0 || n >= skinToneCount {
		return 0, invalidValue("SkinTone", n)
	}
	return SkinTone(n), nil
}

// --- Gender --------------------------------------------------------------

// Members of Gender, in declaration order.
const (
	// GenderNeutral leaves a gendered emoji gender neutral.
	GenderNeutral Gender = iota
	// GenderMale makes a gendered emoji appear male.
	GenderMale
	// GenderFemale makes a gendered emoji appear female.
	GenderFemale
)

const genderCount = 3

var genderGlyphs = [...]string{
	"",       // renders nothing
	"\u2642", // MALE SIGN
	"\u2640", // FEMALE SIGN
}

// Tables must cover every member of Gender.
var _ = [1]struct{}{}[len(genderGlyphs)-genderCount]

const _Gender_name = "NeutralMaleFemale"

var _Gender_index = [...]uint16{0, 7, 11, 17}

// String returns the glyph for g.
// It panics with an *InvalidValueError if g is not a member of Gender.
func (g Gender) String() string {
	glyph, err := g.Glyph()
	if err != nil {
		panic(err)
	}
	return glyph
}

// Glyph returns the glyph for g, or an error wrapping ErrInvalidValue
// if g is not a member of Gender.
func (g Gender) Glyph() (string, error) {
	if !g.Valid() {
		return "", invalidValue("Gender", int(g))
	}
	return genderGlyphs[g], nil
}

// Name returns the name of g without the Gender prefix.
func (g Gender) Name() string {
	if !g.Valid() {
		return "Gender(" + strconv.FormatInt(int64(g), 10) + ")"
	}
	return _Gender_name[_Gender_index[g]:_Gender_index[g+1]]
}

// Valid reports whether g is a member of Gender.
func (g Gender) Valid() bool {
	return g >= 0 && int(g) < genderCount
}

// Genders returns all members of Gender in declaration order.
func Genders() []Gender {
	all := make([]Gender, genderCount)
	for n := range all {
		all[n] = Gender(n)
	}
	return all
}

// GenderByName returns the member of Gender called name, ignoring case.
func GenderByName(name string) (Gender, error) {
	for n := 0; n < genderCount; n++ {
		if strings.EqualFold(Gender(n).Name(), name) {
			return Gender(n), nil
		}
	}
	return 0, unknownName("Gender", name)
}

// GenderFromOrdinal converts n to a Gender, checking its range.
func GenderFromOrdinal(n int) (Gender, error) {
	if n < 0 || n >= genderCount {
		return 0, invalidValue("Gender", n)
	}
	return Gender(n), nil
}

// --- Creature ------------------------------------------------------------

// Members of Creature, in declaration order.
const (
	// CreatureAnt is an ant.
	CreatureAnt Creature = iota
	// CreatureBat is a bat.
	CreatureBat
	// CreatureBeetle is a beetle.
	CreatureBeetle
	// CreatureBison is a bison.
	CreatureBison
	// CreatureBoar is a boar.
	CreatureBoar
	// CreatureBug is a bug.
	CreatureBug
	// CreatureButterfly is a butterfly.
	CreatureButterfly
	// CreatureCamel is a camel.
	CreatureCamel
	// CreatureCat is a cat.
	CreatureCat
	// CreatureCockroach is a cockroach.
	CreatureCockroach
	// CreatureCow is a cow.
	CreatureCow
	// CreatureCrab is a crab.
	CreatureCrab
	// CreatureCrocodile is a crocodile.
	CreatureCrocodile
	// CreatureDeer is a deer.
	CreatureDeer
	// CreatureDog is a dog.
	CreatureDog
	// CreatureDragon is a dragon.
	CreatureDragon
	// CreatureEagle is an eagle.
	CreatureEagle
	// CreatureElephant is an elephant.
	CreatureElephant
	// CreatureFish is a fish.
	CreatureFish
	// CreatureGhost is a ghost.
	CreatureGhost
	// CreatureGoat is a goat.
	CreatureGoat
	// CreatureGoblin is a goblin.
	CreatureGoblin
	// CreatureHoneybee is a honeybee.
	CreatureHoneybee
	// CreatureHorse is a horse.
	CreatureHorse
	// CreatureLeopard is a leopard.
	CreatureLeopard
	// CreatureLlama is a llama.
	CreatureLlama
	// CreatureMammoth is a mammoth.
	CreatureMammoth
	// CreatureMouse is a mouse.
	CreatureMouse
	// CreatureOgre is an ogre.
	CreatureOgre
	// CreaturePig is a pig.
	CreaturePig
	// CreatureRabbit is a rabbit.
	CreatureRabbit
	// CreatureRam is a ram.
	CreatureRam
	// CreatureRat is a rat.
	CreatureRat
	// CreatureRhinoceros is a rhinoceros.
	CreatureRhinoceros
	// CreatureScorpion is a scorpion.
	CreatureScorpion
	// CreatureShark is a shark.
	CreatureShark
	// CreatureSnake is a snake.
	CreatureSnake
	// CreatureSpider is a spider.
	CreatureSpider
	// CreatureTiger is a tiger.
	CreatureTiger
	// CreatureTropicalFish is a tropical fish.
	CreatureTropicalFish
	// CreatureWaterBuffalo is a water buffalo.
	CreatureWaterBuffalo
	// CreatureWolf is a wolf.
	CreatureWolf
)

const creatureCount = 42

var creatureGlyphs = [...]string{
	"\U0001f41c", // ANT
	"\U0001f987", // BAT
	"\U0001f41e", // LADY BEETLE
	"\U0001f9ac", // BISON
	"\U0001f417", // BOAR
	"\U0001f41b", // BUG
	"\U0001f98b", // BUTTERFLY
	"\U0001f42b", // BACTRIAN CAMEL
	"\U0001f408", // CAT
	"\U0001fab3", // COCKROACH
	"\U0001f404", // COW
	"\U0001f980", // CRAB
	"\U0001f40a", // CROCODILE
	"\U0001f98c", // DEER
	"\U0001f415", // DOG
	"\U0001f409", // DRAGON
	"\U0001f985", // EAGLE
	"\U0001f418", // ELEPHANT
	"\U0001f41f", // FISH
	"\U0001f47b", // GHOST
	"\U0001f410", // GOAT
	"\U0001f47a", // JAPANESE GOBLIN
	"\U0001f41d", // HONEYBEE
	"\U0001f40e", // HORSE
	"\U0001f406", // LEOPARD
	"\U0001f999", // LLAMA
	"\U0001f9a3", // MAMMOTH
	"\U0001f401", // MOUSE
	"\U0001f479", // JAPANESE OGRE
	"\U0001f416", // PIG
	"\U0001f407", // RABBIT
	"\U0001f40f", // RAM
	"\U0001f400", // RAT
	"\U0001f98f", // RHINOCEROS
	"\U0001f982", // SCORPION
	"\U0001f988", // SHARK
	"\U0001f40d", // SNAKE
	"\U0001f577", // SPIDER
	"\U0001f405", // TIGER
	"\U0001f420", // TROPICAL FISH
	"\U0001f403", // WATER BUFFALO
	"\U0001f43a", // WOLF FACE
}

// Tables must cover every member of Creature.
var _ = [1]struct{}{}[len(creatureGlyphs)-creatureCount]

const _Creature_name = "AntBatBeetleBisonBoarBugButterflyCamelCatCockroachCowCrabCrocodileDeerDogDragonEagleElephantFishGhostGoatGoblinHoneybeeHorseLeopardLlamaMammothMouseOgrePigRabbitRamRatRhinocerosScorpionSharkSnakeSpiderTigerTropicalFishWaterBuffaloWolf"

var _Creature_index = [...]uint16{0, 3, 6, 12, 17, 21, 24, 33, 38, 41, 50, 53, 57, 66, 70, 73, 79, 84, 92, 96, 101, 105, 111, 119, 124, 131, 136, 143, 148, 152, 155, 161, 164, 167, 177, 185, 190, 195, 201, 206, 218, 230, 234}

// String returns the glyph for c.
// It panics with an *InvalidValueError if c is not a member of Creature.
func (c Creature) String() string {
	glyph, err := c.Glyph()
	if err != nil {
		panic(err)
	}
	return glyph
}

// Glyph returns the glyph for c, or an error wrapping ErrInvalidValue
// if c is not a member of Creature.
func (c Creature) Glyph() (string, error) {
	if !c.Valid() {
		return "", invalidValue("Creature", int(c))
	}
	return creatureGlyphs[c], nil
}

// Name returns the name of c without the Creature prefix.
func (c Creature) Name() string {
	if !c.Valid() {
		return "Creature(" + strconv.FormatInt(int64(c), 10) + ")"
	}
	return _Creature_name[_Creature_index[c]:_Creature_index[c+1]]
}

// Valid reports whether c is a member of Creature.
func (c Creature) Valid() bool {
	return c >= 0 && int(c) < creatureCount
}

// Creatures returns all members of Creature in declaration order.
func Creatures() []Creature {
	all := make([]Creature, creatureCount)
	for n := range all {
		all[n] = Creature(n)
	}
	return all
}

// CreatureByName returns the member of Creature called name, ignoring case.
func CreatureByName(name string) (Creature, error) {
	for n := 0; n < creatureCount; n++ {
		if strings.EqualFold(Creature(n).Name(), name) {
			return Creature(n), nil
		}
	}
	return 0, unknownName("Creature", name)
}

// CreatureFromOrdinal converts n to a Creature, checking its range.
func CreatureFromOrdinal(n int) (Creature, error) {
	if n < 0 || n >= creatureCount {
		return 0, invalidValue("Creature", n)
	}
	return Creature(n), nil
}

// --- Location ------------------------------------------------------------

// Members of Location, in declaration order.
const (
	// LocationBoatSail is a sailboat.
	LocationBoatSail Location = iota
	// LocationBuildingClassic is a classic building.
	LocationBuildingClassic
	// LocationCampsite is a campsite.
	LocationCampsite
	// LocationCanoe is a canoe.
	LocationCanoe
	// LocationCastle is a castle.
	LocationCastle
	// LocationCastleJapanese is a Japanese-style castle.
	LocationCastleJapanese
	// LocationCave is a cave.
	LocationCave
	// LocationDesert is a desert.
	LocationDesert
	// LocationHut is a hut.
	LocationHut
	// LocationMountain is a mountain.
	LocationMountain
	// LocationMountainSnow is a mountain in the snow.
	LocationMountainSnow
	// LocationOasis is an oasis.
	LocationOasis
	// LocationPalace is a palace.
	LocationPalace
	// LocationTent is a tent.
	LocationTent
	// LocationTreeDeciduous is a deciduous tree.
	LocationTreeDeciduous
	// LocationTreeEvergreen is an evergreen tree.
	LocationTreeEvergreen
	// LocationTreePalm is a palm tree.
	LocationTreePalm
	// LocationVolcano is a volcano.
	LocationVolcano
)

const locationCount = 18

var locationGlyphs = [...]string{
	"\u26f5",     // SAILBOAT
	"\U0001f3db", // CLASSICAL BUILDING
	"\U0001f3d5", // CAMPING
	"\U0001f6f6", // CANOE
	"\U0001f3f0", // EUROPEAN CASTLE
	"\U0001f3ef", // JAPANESE CASTLE
	"\U0001f573", // HOLE
	"\U0001f3dc", // DESERT
	"\U0001f6d6", // HUT
	"\u26f0",     // MOUNTAIN
	"\U0001f3d4", // SNOW CAPPED MOUNTAIN
	"\U0001f3dc", // DESERT
	"\U0001f3ef", // JAPANESE CASTLE
	"\u26fa",     // TENT
	"\U0001f333", // DECIDUOUS TREE
	"\U0001f332", // EVERGREEN TREE
	"\U0001f334", // PALM TREE
	"\U0001f30b", // VOLCANO
}

// Tables must cover every member of Location.
var _ = [1]struct{}{}[len(locationGlyphs)-locationCount]

const _Location_name = "BoatSailBuildingClassicCampsiteCanoeCastleCastleJapaneseCaveDesertHutMountainMountainSnowOasisPalaceTentTreeDeciduousTreeEvergreenTreePalmVolcano"

var _Location_index = [...]uint16{0, 8, 23, 31, 36, 42, 56, 60, 66, 69, 77, 89, 94, 100, 104, 117, 130, 138, 145}

// String returns the glyph for l.
// It panics with an *InvalidValueError if l is not a member of Location.
func (l Location) String() string {
	glyph, err := l.Glyph()
	if err != nil {
		panic(err)
	}
	return glyph
}

// Glyph returns the glyph for l, or an error wrapping ErrInvalidValue
// if l is not a member of Location.
func (l Location) Glyph() (string, error) {
	if !l.Valid() {
		return "", invalidValue("Location", int(l))
	}
	return locationGlyphs[l], nil
}

// Name returns the name of l without the Location prefix.
func (l Location) Name() string {
	if !l.Valid() {
		return "Location(" + strconv.FormatInt(int64(l), 10) + ")"
	}
	return _Location_name[_Location_index[l]:_Location_index[l+1]]
}

// Valid reports whether l is a member of Location.
func (l Location) Valid() bool {
	return l >= 0 && int(l) < locationCount
}

// Locations returns all members of Location in declaration order.
func Locations() []Location {
	all := make([]Location, locationCount)
	for n := range all {
		all[n] = Location(n)
	}
	return all
}

// LocationByName returns the member of Location called name, ignoring case.
func LocationByName(name string) (Location, error) {
	for n := 0; n < locationCount; n++ {
		if strings.EqualFold(Location(n).Name(), name) {
			return Location(n), nil
		}
	}
	return 0, unknownName("Location", name)
}

// LocationFromOrdinal converts n to a Location, checking its range.
func LocationFromOrdinal(n int) (Location, error) {
	if n < 0 || n >= locationCount {
		return 0, invalidValue("Location", n)
	}
	return Location(n), nil
}

// --- Item ----------------------------------------------------------------

// Members of Item, in declaration order.
const (
	// ItemAmulet is an amulet.
	ItemAmulet Item = iota
	// ItemAxe is an axe.
	ItemAxe
	// ItemBag is a bag.
	ItemBag
	// ItemBandage is a bandage.
	ItemBandage
	// ItemBed is a bed.
	ItemBed
	// ItemBeer is a beer.
	ItemBeer
	// ItemBloodDrop is a drop of blood.
	ItemBloodDrop
	// ItemBomb is a bomb.
	ItemBomb
	// ItemBookClosed is a closed book.
	ItemBookClosed
	// ItemBookOpen is an open book.
	ItemBookOpen
	// ItemBoomerang is a boomerang.
	ItemBoomerang
	// ItemBowAndArrow is a bow and an arrow.
	ItemBowAndArrow
	// ItemBrick is a brick.
	ItemBrick
	// ItemCandle is a candle.
	ItemCandle
	// ItemCoat is a coat.
	ItemCoat
	// ItemCoffin is a coffin.
	ItemCoffin
	// ItemCoin is a coin.
	ItemCoin
	// ItemCrown is a crown.
	ItemCrown
	// ItemCrystalBall is a crystal ball.
	ItemCrystalBall
	// ItemDagger is a dagger.
	ItemDagger
	// ItemDart is a dart.
	ItemDart
	// ItemDoor is a door.
	ItemDoor
	// ItemFlagBlack is a black flag.
	ItemFlagBlack
	// ItemFlagTriangle is a triangular flag.
	ItemFlagTriangle
	// ItemFirecracker is a firecracker.
	ItemFirecracker
	// ItemGemStone is a gemstone.
	ItemGemStone
	// ItemGrave is a grave.
	ItemGrave
	// ItemHammer is a hammer.
	ItemHammer
	// ItemHammerAndPick is a hammer and a pick.
	ItemHammerAndPick
	// ItemHeartRed is a red heart.
	ItemHeartRed
	// ItemHourglassDone is an hourglass that is done.
	ItemHourglassDone
	// ItemHourglassNotDone is an hourglass that is not done.
	ItemHourglassNotDone
	// ItemJar is a jar.
	ItemJar
	// ItemKey is a key.
	ItemKey
	// ItemLeaf is a leaf.
	ItemLeaf
	// ItemLeafFallen is a fallen leaf.
	ItemLeafFallen
	// ItemLeafMaple is a maple leaf.
	ItemLeafMaple
	// ItemMap is a map.
	ItemMap
	// ItemMeatOnBone is a piece of meat on a bone.
	ItemMeatOnBone
	// ItemMeatCut is a cut of meat.
	ItemMeatCut
	// ItemPick is a pickaxe.
	ItemPick
	// ItemPoultryLeg is a poultry leg.
	ItemPoultryLeg
	// ItemPrayerBeads is a string of prayer beads.
	ItemPrayerBeads
	// ItemRedEnvelope is a red envelope.
	ItemRedEnvelope
	// ItemRedLantern is a red lantern.
	ItemRedLantern
	// ItemRock is a rock.
	ItemRock
	// ItemScroll is a scroll.
	ItemScroll
	// ItemShield is a shield.
	ItemShield
	// ItemSwordsCrossed is a pair of crossed swords.
	ItemSwordsCrossed
	// ItemTrident is a trident.
	ItemTrident
	// ItemUrn is an urn.
	ItemUrn
	// ItemWand is a wand.
	ItemWand
	// ItemWaterDrop is a water drop.
	ItemWaterDrop
)

const itemCount = 53

var itemGlyphs = [...]string{
	"\U0001f9ff",       // NAZAR AMULET
	"\U0001fa93",       // AXE
	"\U0001f392",       // SCHOOL SATCHEL
	"\U0001fa79",       // ADHESIVE BANDAGE
	"\U0001f6cf",       // BED
	"\U0001f37a",       // BEER MUG
	"\U0001fa78",       // DROP OF BLOOD
	"\U0001f4a3",       // BOMB
	"\U0001f4d5",       // CLOSED BOOK
	"\U0001f4d6",       // OPEN BOOK
	"\U0001fa83",       // BOOMERANG
	"\U0001f3f9",       // BOW AND ARROW
	"\U0001f9f1",       // BRICK
	"\U0001f56f",       // CANDLE
	"\U0001f9e5",       // COAT
	"\u26b0\ufe0f",     // COFFIN, VARIATION SELECTOR-16
	"\U0001fa99",       // COIN
	"\U0001f451",       // CROWN
	"\U0001f52e",       // CRYSTAL BALL
	"\U0001f5e1",       // DAGGER KNIFE
	"\U0001f3af",       // DIRECT HIT
	"\U0001f6aa",       // DOOR
	"\U0001f3f4",       // WAVING BLACK FLAG
	"\U0001f6a9",       // TRIANGULAR FLAG ON POST
	"\U0001f9e8",       // FIRECRACKER
	"\U0001f48e",       // GEM STONE
	"\U0001faa6",       // HEADSTONE
	"\U0001f528",       // HAMMER
	"\u2692\ufe0f",     // HAMMER AND PICK, VARIATION SELECTOR-16
	"\u2764\ufe0f",     // HEAVY BLACK HEART, VARIATION SELECTOR-16
	"\u231b",           // HOURGLASS
	"\u23f3",           // HOURGLASS WITH FLOWING SAND
	"\U0001f3fa",       // AMPHORA
	"\U0001f5dd\ufe0f", // OLD KEY, VARIATION SELECTOR-16
	"\U0001f343",       // LEAF FLUTTERING IN WIND
	"\U0001f342",       // FALLEN LEAF
	"\U0001f341",       // MAPLE LEAF
	"\U0001f5fa",       // WORLD MAP
	"\U0001f356",       // MEAT ON BONE
	"\U0001f969",       // CUT OF MEAT
	"\u26cf",           // PICK
	"\U0001f357",       // POULTRY LEG
	"\U0001f4ff",       // PRAYER BEADS
	"\U0001f9e7",       // RED GIFT ENVELOPE
	"\U0001f3ee",       // IZAKAYA LANTERN
	"\U0001faa8",       // ROCK
	"\U0001f4dc",       // SCROLL
	"\U0001f6e1",       // SHIELD
	"\u2694\ufe0f",     // CROSSED SWORDS, VARIATION SELECTOR-16
	"\U0001f531",       // TRIDENT EMBLEM
	"\u26b1\ufe0f",     // FUNERAL URN, VARIATION SELECTOR-16
	"\U0001fa84",       // MAGIC WAND
	"\U0001f4a7",       // DROPLET
}

// Tables must cover every member of Item.
var _ = [1]struct{}{}[len(itemGlyphs)-itemCount]

const _Item_name = "AmuletAxeBagBandageBedBeerBloodDropBombBookClosedBookOpenBoomerangBowAndArrowBrickCandleCoatCoffinCoinCrownCrystalBallDaggerDartDoorFlagBlackFlagTriangleFirecrackerGemStoneGraveHammerHammerAndPickHeartRedHourglassDoneHourglassNotDoneJarKeyLeafLeafFallenLeafMapleMapMeatOnBoneMeatCutPickPoultryLegPrayerBeadsRedEnvelopeRedLanternRockScrollShieldSwordsCrossedTridentUrnWandWaterDrop"

var _Item_index = [...]uint16{0, 6, 9, 12, 19, 22, 26, 35, 39, 49, 57, 66, 77, 82, 88, 92, 98, 102, 107, 118, 124, 128, 132, 141, 153, 164, 172, 177, 183, 196, 204, 217, 233, 236, 239, 243, 253, 262, 265, 275, 282, 286, 296, 307, 318, 328, 332, 338, 344, 357, 364, 367, 371, 380}

// String returns the glyph for i.
// It panics with an *InvalidValueError if i is not a member of Item.
func (i Item) String() string {
	glyph, err := i.Glyph()
	if err != nil {
		panic(err)
	}
	return glyph
}

// Glyph returns the glyph for i, or an error wrapping ErrInvalidValue
// if i is not a member of Item.
func (i Item) Glyph() (string, error) {
	if !i.Valid() {
		return "", invalidValue("Item", int(i))
	}
	return itemGlyphs[i], nil
}

// Name returns the name of i without the Item prefix.
func (i Item) Name() string {
	if !i.Valid() {
		return "Item(" + strconv.FormatInt(int64(i), 10) + ")"
	}
	return _Item_name[_Item_index[i]:_Item_index[i+1]]
}

// Valid reports whether i is a member of Item.
func (i Item) Valid() bool {
	return i >= 0 && int(i) < itemCount
}

// Items returns all members of Item in declaration order.
func Items() []Item {
	all := make([]Item, itemCount)
	for n := range all {
		all[n] = Item(n)
	}
	return all
}

// ItemByName returns the member of Item called name, ignoring case.
func ItemByName(name string) (Item, error) {
	for n := 0; n < itemCount; n++ {
		if strings.EqualFold(Item(n).Name(), name) {
			return Item(n), nil
		}
	}
	return 0, unknownName("Item", name)
}

// ItemFromOrdinal converts n to a Item, checking its range.
func ItemFromOrdinal(n int) (Item, error) {
	if n < 0 || n >= itemCount {
		return 0, invalidValue("Item", n)
	}
	return Item(n), nil
}

// --- Symbol --------------------------------------------------------------

// Members of Symbol, in declaration order.
const (
	// SymbolAnger is a symbol of anger.
	SymbolAnger Symbol = iota
	// SymbolComet is a symbol of a comet.
	SymbolComet
	// SymbolCyclone is a symbol of a cyclone.
	SymbolCyclone
	// SymbolFire is a symbol of fire.
	SymbolFire
	// SymbolElectricity is a symbol of electricity.
	SymbolElectricity
	// SymbolExclamationDouble is a symbol of two exclamations.
	SymbolExclamationDouble
	// SymbolExclamationWithQuestion is a symbol of an exclamation and a question mark.
	SymbolExclamationWithQuestion
	// SymbolExclamationRed is a symbol of a red exclamation.
	SymbolExclamationRed
	// SymbolExclamationWhite is a symbol of a white exclamation.
	SymbolExclamationWhite
	// SymbolGenderFemale is a symbol of a female.
	SymbolGenderFemale
	// SymbolGenderMale is a symbol of a male.
	SymbolGenderMale
	// SymbolQuestionRed is a symbol of a red question.
	SymbolQuestionRed
	// SymbolQuestionWhite is a symbol of a white question.
	SymbolQuestionWhite
	// SymbolSparkles is a symbol of sparkles.
	SymbolSparkles
	// SymbolSpeechBubble is a speech bubble.
	SymbolSpeechBubble
	// SymbolSpeechBubbleAngry is a speech bubble with an angry face.
	SymbolSpeechBubbleAngry
	// SymbolSnowflake is a snowflake.
	SymbolSnowflake
	// SymbolZzz is a "zzz" symbol.
	SymbolZzz
)

const symbolCount = 18

var symbolGlyphs = [...]string{
	"\U0001f4a2",       // ANGER SYMBOL
	"\u2604\ufe0f",     // COMET, VARIATION SELECTOR-16
	"\U0001f300",       // CYCLONE
	"\U0001f525",       // FIRE
	"\u26a1",           // HIGH VOLTAGE SIGN
	"\u203c\ufe0f",     // DOUBLE EXCLAMATION MARK, VARIATION SELECTOR-16
	"\u2049\ufe0f",     // EXCLAMATION QUESTION MARK, VARIATION SELECTOR-16
	"\u2757",           // HEAVY EXCLAMATION MARK SYMBOL
	"\u2755",           // WHITE EXCLAMATION MARK ORNAMENT
	"\u2640\ufe0f",     // FEMALE SIGN, VARIATION SELECTOR-16
	"\u2642\ufe0f",     // MALE SIGN, VARIATION SELECTOR-16
	"\u2753",           // BLACK QUESTION MARK ORNAMENT
	"\u2754",           // WHITE QUESTION MARK ORNAMENT
	"\u2728",           // SPARKLES
	"\U0001f4ac",       // SPEECH BALLOON
	"\U0001f5ef\ufe0f", // RIGHT ANGER BUBBLE, VARIATION SELECTOR-16
	"\u2744\ufe0f",     // SNOWFLAKE, VARIATION SELECTOR-16
	"\U0001f4a4",       // SLEEPING SYMBOL
}

// Tables must cover every member of Symbol.
var _ = [1]struct{}{}[len(symbolGlyphs)-symbolCount]

const _Symbol_name = "AngerCometCycloneFireElectricityExclamationDoubleExclamationWithQuestionExclamationRedExclamationWhiteGenderFemaleGenderMaleQuestionRedQuestionWhiteSparklesSpeechBubbleSpeechBubbleAngrySnowflakeZzz"

var _Symbol_index = [...]uint16{0, 5, 10, 17, 21, 32, 49, 72, 86, 102, 114, 124, 135, 148, 156, 168, 185, 194, 197}

// String returns the glyph for s.
// It panics with an *InvalidValueError if s is not a member of Symbol.
func (s Symbol) String() string {
	glyph, err := s.Glyph()
	if err != nil {
		panic(err)
	}
	return glyph
}

// Glyph returns the glyph for s, or an error wrapping ErrInvalidValue
// if s is not a member of Symbol.
func (s Symbol) Glyph() (string, error) {
	if !s.Valid() {
		return "", invalidValue("Symbol", int(s))
	}
	return symbolGlyphs[s], nil
}

// Name returns the name of s without the Symbol prefix.
func (s Symbol) Name() string {
	if !s.Valid() {
		return "Symbol(" + strconv.FormatInt(int64(s), 10) + ")"
	}
	return _Symbol_name[_Symbol_index[s]:_Symbol_index[s+1]]
}

// Valid reports whether s is a member of Symbol.
func (s Symbol) Valid() bool {
	return s >= 0 && int(s) < symbolCount
}

// Symbols returns all members of Symbol in declaration order.
func Symbols() []Symbol {
	all := make([]Symbol, symbolCount)
	for n := range all {
		all[n] = Symbol(n)
	}
	return all
}

// SymbolByName returns the member of Symbol called name, ignoring case.
func SymbolByName(name string) (Symbol, error) {
	for n := 0; n < symbolCount; n++ {
		if strings.EqualFold(Symbol(n).Name(), name) {
			return Symbol(n), nil
		}
	}
	return 0, unknownName("Symbol", name)
}

// SymbolFromOrdinal converts n to a Symbol, checking its range.
func SymbolFromOrdinal(n int) (Symbol, error) {
	if n < 0 || n >= symbolCount {
		return 0, invalidValue("Symbol", n)
	}
	return Symbol(n), nil
}

// glyphTables lists the tables checked for totality at initialization time.
var glyphTables = [...]glyphTable{
	{category: "Person", glyphs: personGlyphs[:], name: func(n int) string { return Person(n).Name() }, neutral: -1},
	{category: "SkinTone", glyphs: skinToneGlyphs[:], name: func(n int) string { return SkinTone(n).Name() }, neutral: int(SkinToneNeutral)},
	{category: "Gender", glyphs: genderGlyphs[:], name: func(n int) string { return Gender(n).Name() }, neutral: int(GenderNeutral)},
	{category: "Creature", glyphs: creatureGlyphs[:], name: func(n int) string { return Creature(n).Name() }, neutral: -1},
	{category: "Location", glyphs: locationGlyphs[:], name: func(n int) string { return Location(n).Name() }, neutral: -1},
	{category: "Item", glyphs: itemGlyphs[:], name: func(n int) string { return Item(n).Name() }, neutral: -1},
	{category: "Symbol", glyphs: symbolGlyphs[:], name: func(n int) string { return Symbol(n).Name() }, neutral: -1},
}
