package raiderio

import (
	"encoding/json"
	"fmt"
)

// Spell is a spell attached to gear
type Spell struct {
	ID     int     `json:"id"`
	Name   string  `json:"name"`
	Icon   string  `json:"icon"`
	School int     `json:"school"`
	Rank   *string `json:"rank"`
}

// Corruption totals, either for a single item or the whole character
type Corruption struct {
	Added     int     `json:"added"`
	Resisted  int     `json:"resisted"`
	Total     int     `json:"total"`
	CloakRank *int    `json:"cloakRank"`
	Spells    []Spell `json:"spells"`
}

// Quality is the rarity of an item
type Quality int

// qualities
const (
	QualityPoor Quality = iota
	QualityCommon
	QualityUncommon
	QualityRare
	QualityEpic
	QualityLegendary
	QualityArtifact
)

var qualityNames = map[Quality]string{
	QualityPoor:      "Poor",
	QualityCommon:    "Common",
	QualityUncommon:  "Uncommon",
	QualityRare:      "Rare",
	QualityEpic:      "Epic",
	QualityLegendary: "Legendary",
	QualityArtifact:  "Artifact",
}

func (q Quality) String() string {
	if name, ok := qualityNames[q]; ok {
		return name
	}

	return fmt.Sprintf("Quality(%d)", int(q))
}

// UnmarshalJSON rejects ordinals outside of Poor..Artifact
func (q *Quality) UnmarshalJSON(data []byte) error {
	var n int
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}

	if _, ok := qualityNames[Quality(n)]; !ok {
		return &EnumError{Kind: "quality", Value: fmt.Sprintf("%d", n)}
	}
	*q = Quality(n)

	return nil
}

// AzeritePower is an azerite trait selected on an item
type AzeritePower struct {
	ID    int   `json:"id"`
	Spell Spell `json:"spell"`
	Tier  int   `json:"tier"`
}

// EssenceName names a heart of azeroth essence
type EssenceName string

// essences
const (
	EssenceBloodOfTheEnemy       EssenceName = "Blood of the Enemy"
	EssenceVisionOfPerfection    EssenceName = "Vision of Perfection"
	EssenceMemoryOfLucidDreams   EssenceName = "Memory of Lucid Dreams"
	EssenceBreathOfTheDying      EssenceName = "Breath of the Dying"
	EssenceFormlessVoid          EssenceName = "Formless Void"
	EssenceStrengthOfTheWarden   EssenceName = "Strength of the Warden"
	EssenceTouchOfTheEverlasting EssenceName = "Touch of the Everlasting"
	EssenceSparkOfInspiration    EssenceName = "Spark of Inspiration"
	EssenceUnwaveringWard        EssenceName = "Unwavering Ward"
	EssenceSpiritOfPreservation  EssenceName = "Spirit of Preservation"
	EssenceTheCrucibleOfFlame    EssenceName = "The Crucible of Flame"
	EssenceWorldveinResonance    EssenceName = "Worldvein Resonance"
	EssenceRippleInSpace         EssenceName = "Ripple in Space"
	EssenceConflictAndStrife     EssenceName = "Conflict and Strife"
	EssenceAegisOfTheDeep        EssenceName = "Aegis of the Deep"
	EssenceNullificationDynamo   EssenceName = "Nullification Dynamo"
	EssenceSphereOfSuppression   EssenceName = "Sphere of Suppression"
	EssenceAzerothsUndyingGift   EssenceName = "Azeroth's Undying Gift"
	EssenceAnimaOfLifeAndDeath   EssenceName = "Anima of Life and Death"
	EssenceTheEverRisingTide     EssenceName = "The Ever-Rising Tide"
	EssenceTheWellOfExistence    EssenceName = "The Well of Existence"
	EssenceArtificeOfTime        EssenceName = "Artifice of Time"
	EssenceLifeBindersInvocation EssenceName = "Life-Binder's Invocation"
	EssenceVitalityConduit       EssenceName = "Vitality Conduit"
)

var essenceNames = []EssenceName{
	EssenceBloodOfTheEnemy, EssenceVisionOfPerfection,
	EssenceMemoryOfLucidDreams, EssenceBreathOfTheDying, EssenceFormlessVoid,
	EssenceStrengthOfTheWarden, EssenceTouchOfTheEverlasting,
	EssenceSparkOfInspiration, EssenceUnwaveringWard,
	EssenceSpiritOfPreservation, EssenceTheCrucibleOfFlame,
	EssenceWorldveinResonance, EssenceRippleInSpace, EssenceConflictAndStrife,
	EssenceAegisOfTheDeep, EssenceNullificationDynamo,
	EssenceSphereOfSuppression, EssenceAzerothsUndyingGift,
	EssenceAnimaOfLifeAndDeath, EssenceTheEverRisingTide,
	EssenceTheWellOfExistence, EssenceArtificeOfTime,
	EssenceLifeBindersInvocation, EssenceVitalityConduit,
}

// UnmarshalJSON rejects unknown essences
func (e *EssenceName) UnmarshalJSON(data []byte) error {
	v, err := unmarshalEnum("essence", data, essenceNames)
	if err != nil {
		return err
	}
	*e = v

	return nil
}

// Essence describes a heart of azeroth essence
type Essence struct {
	ID          int         `json:"id"`
	Name        EssenceName `json:"name"`
	Description string      `json:"description"`
}

// EssencePower is the rank-specific power of an essence
type EssencePower struct {
	ID              int     `json:"id"`
	Essence         Essence `json:"essence"`
	TierID          int     `json:"tierId"`
	MajorPowerSpell Spell   `json:"majorPowerSpell"`
	MinorPowerSpell Spell   `json:"minorPowerSpell"`
}

// EssenceSlot is an essence slotted into the heart of azeroth
type EssenceSlot struct {
	Slot  int          `json:"slot"`
	ID    int          `json:"id"`
	Rank  int          `json:"rank"`
	Power EssencePower `json:"power"`
}

// HeartOfAzeroth is the neck item's essence state
type HeartOfAzeroth struct {
	Essences []EssenceSlot `json:"essences"`
	Level    int           `json:"level"`
	Progress float64       `json:"progress"`
}

// Item is a single equipped item
type Item struct {
	ItemID            int             `json:"item_id"`
	ItemLevel         int             `json:"item_level"`
	ItemQuality       Quality         `json:"item_quality"`
	Icon              string          `json:"icon"`
	IsLegionLegendary bool            `json:"is_legion_legendary"`
	IsAzeriteArmor    bool            `json:"is_azerite_armor"`
	AzeritePowers     []AzeritePower  `json:"azerite_powers"`
	Corruption        Corruption      `json:"corruption"`
	Gems              []int           `json:"gems"`
	Bonuses           []int           `json:"bonuses"`
	HeartOfAzeroth    *HeartOfAzeroth `json:"heart_of_azeroth"`
}

// Items holds the equipped item per slot, empty slots are nil
type Items struct {
	Head     *Item `json:"head"`
	Neck     *Item `json:"neck"`
	Shoulder *Item `json:"shoulder"`
	Back     *Item `json:"back"`
	Chest    *Item `json:"chest"`
	Waist    *Item `json:"waist"`
	Shirt    *Item `json:"shirt"`
	Wrist    *Item `json:"wrist"`
	Hands    *Item `json:"hands"`
	Legs     *Item `json:"legs"`
	Feet     *Item `json:"feet"`
	Finger1  *Item `json:"finger1"`
	Finger2  *Item `json:"finger2"`
	Trinket1 *Item `json:"trinket1"`
	Trinket2 *Item `json:"trinket2"`
	Mainhand *Item `json:"mainhand"`
	Offhand  *Item `json:"offhand"`
}

// Gear is the character's equipment summary
type Gear struct {
	ItemLevelEquipped int        `json:"item_level_equipped"`
	ItemLevelTotal    int        `json:"item_level_total"`
	ArtifactTraits    float64    `json:"artifact_traits"`
	Corruption        Corruption `json:"corruption"`
	Items             Items      `json:"items"`
}
