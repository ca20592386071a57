package raiderio

// Guild is the guild a character belongs to
type Guild struct {
	Name  string `json:"name"`
	Realm string `json:"realm"`
}

// Gender of a character
type Gender string

// genders
const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

var genders = []Gender{GenderMale, GenderFemale}

// UnmarshalJSON rejects unknown genders
func (g *Gender) UnmarshalJSON(data []byte) error {
	v, err := unmarshalEnum("gender", data, genders)
	if err != nil {
		return err
	}
	*g = v

	return nil
}

// Faction of a character
type Faction string

// factions
const (
	FactionHorde    Faction = "horde"
	FactionAlliance Faction = "alliance"
)

var factions = []Faction{FactionHorde, FactionAlliance}

// UnmarshalJSON rejects unknown factions
func (f *Faction) UnmarshalJSON(data []byte) error {
	v, err := unmarshalEnum("faction", data, factions)
	if err != nil {
		return err
	}
	*f = v

	return nil
}

// Race of a character
type Race string

// races
const (
	RaceHuman              Race = "Human"
	RaceDwarf              Race = "Dwarf"
	RaceGnome              Race = "Gnome"
	RaceDraenei            Race = "Draenei"
	RaceWorgen             Race = "Worgen"
	RacePandaren           Race = "Pandaren"
	RaceOrc                Race = "Orc"
	RaceUndead             Race = "Undead"
	RaceTauren             Race = "Tauren"
	RaceTroll              Race = "Troll"
	RaceGoblin             Race = "Goblin"
	RaceMechagnome         Race = "Mechagnome"
	RaceNightborne         Race = "Nightborne"
	RaceVulpera            Race = "Vulpera"
	RaceNightElf           Race = "Night Elf"
	RaceBloodElf           Race = "Blood Elf"
	RaceVoidElf            Race = "Void Elf"
	RaceLightforgedDraenei Race = "Lightforged Draenei"
	RaceDarkIronDwarf      Race = "Dark Iron Dwarf"
	RaceKulTiran           Race = "Kul Tiran"
	RaceHighmountainTauren Race = "Highmountain Tauren"
	RaceMagharOrc          Race = "Mag'har Orc"
	RaceZandalariTroll     Race = "Zandalari Troll"
)

var races = []Race{
	RaceHuman, RaceDwarf, RaceGnome, RaceDraenei, RaceWorgen, RacePandaren,
	RaceOrc, RaceUndead, RaceTauren, RaceTroll, RaceGoblin, RaceMechagnome,
	RaceNightborne, RaceVulpera, RaceNightElf, RaceBloodElf, RaceVoidElf,
	RaceLightforgedDraenei, RaceDarkIronDwarf, RaceKulTiran,
	RaceHighmountainTauren, RaceMagharOrc, RaceZandalariTroll,
}

// UnmarshalJSON rejects unknown races
func (r *Race) UnmarshalJSON(data []byte) error {
	v, err := unmarshalEnum("race", data, races)
	if err != nil {
		return err
	}
	*r = v

	return nil
}

// Class of a character
type Class string

// classes
const (
	ClassRogue       Class = "Rogue"
	ClassWarrior     Class = "Warrior"
	ClassPaladin     Class = "Paladin"
	ClassHunter      Class = "Hunter"
	ClassPriest      Class = "Priest"
	ClassShaman      Class = "Shaman"
	ClassMage        Class = "Mage"
	ClassWarlock     Class = "Warlock"
	ClassMonk        Class = "Monk"
	ClassDruid       Class = "Druid"
	ClassDemonHunter Class = "Demon Hunter"
	ClassDeathKnight Class = "Death Knight"
)

var classes = []Class{
	ClassRogue, ClassWarrior, ClassPaladin, ClassHunter, ClassPriest,
	ClassShaman, ClassMage, ClassWarlock, ClassMonk, ClassDruid,
	ClassDemonHunter, ClassDeathKnight,
}

// UnmarshalJSON rejects unknown classes
func (c *Class) UnmarshalJSON(data []byte) error {
	v, err := unmarshalEnum("class", data, classes)
	if err != nil {
		return err
	}
	*c = v

	return nil
}

// Spec is a class specialization
type Spec string

// specs
const (
	SpecArms          Spec = "Arms"
	SpecFury          Spec = "Fury"
	SpecProtection    Spec = "Protection"
	SpecHoly          Spec = "Holy"
	SpecRetribution   Spec = "Retribution"
	SpecBeastMastery  Spec = "Beast Mastery"
	SpecMarksmanship  Spec = "Marksmanship"
	SpecSurvival      Spec = "Survival"
	SpecOutlaw        Spec = "Outlaw"
	SpecAssassination Spec = "Assassination"
	SpecSubtlety      Spec = "Subtlety"
	SpecDiscipline    Spec = "Discipline"
	SpecShadow        Spec = "Shadow"
	SpecElemental     Spec = "Elemental"
	SpecRestoration   Spec = "Restoration"
	SpecEnhancement   Spec = "Enhancement"
	SpecArcane        Spec = "Arcane"
	SpecFire          Spec = "Fire"
	SpecFrost         Spec = "Frost"
	SpecAffliction    Spec = "Affliction"
	SpecDemonology    Spec = "Demonology"
	SpecDestruction   Spec = "Destruction"
	SpecBrewmaster    Spec = "Brewmaster"
	SpecMistweaver    Spec = "Mistweaver"
	SpecWindwalker    Spec = "Windwalker"
	SpecBalance       Spec = "Balance"
	SpecFeral         Spec = "Feral"
	SpecGuardian      Spec = "Guardian"
	SpecHavoc         Spec = "Havoc"
	SpecVengeance     Spec = "Vengeance"
	SpecBlood         Spec = "Blood"
	SpecUnholy        Spec = "Unholy"
)

var specs = []Spec{
	SpecArms, SpecFury, SpecProtection, SpecHoly, SpecRetribution,
	SpecBeastMastery, SpecMarksmanship, SpecSurvival, SpecOutlaw,
	SpecAssassination, SpecSubtlety, SpecDiscipline, SpecShadow,
	SpecElemental, SpecRestoration, SpecEnhancement, SpecArcane, SpecFire,
	SpecFrost, SpecAffliction, SpecDemonology, SpecDestruction,
	SpecBrewmaster, SpecMistweaver, SpecWindwalker, SpecBalance, SpecFeral,
	SpecGuardian, SpecHavoc, SpecVengeance, SpecBlood, SpecUnholy,
}

// UnmarshalJSON rejects unknown specs
func (s *Spec) UnmarshalJSON(data []byte) error {
	v, err := unmarshalEnum("spec", data, specs)
	if err != nil {
		return err
	}
	*s = v

	return nil
}

// Role is the group role of the active spec
type Role string

// roles
const (
	RoleDPS     Role = "DPS"
	RoleTank    Role = "TANK"
	RoleHealing Role = "HEALING"
)

var roles = []Role{RoleDPS, RoleTank, RoleHealing}

// UnmarshalJSON rejects unknown roles
func (r *Role) UnmarshalJSON(data []byte) error {
	v, err := unmarshalEnum("role", data, roles)
	if err != nil {
		return err
	}
	*r = v

	return nil
}
