package model

// Camp is the role-faction assigned to a player for one game.
type Camp string

const (
	CampVillageois   Camp = "Villageois"
	CampChasseur     Camp = "Chasseur"
	CampVoyante      Camp = "Voyante"
	CampLoup         Camp = "Loup"
	CampTraitre      Camp = "Traître"
	CampAmoureux     Camp = "Amoureux"
	CampIdiot        Camp = "Idiot du Village"
	CampAgent        Camp = "Agent"
	CampScientifique Camp = "Scientifique"
	CampVaudou       Camp = "Vaudou"
)

// Macro is the coarse camp grouping used for streaks and relations.
type Macro int

const (
	MacroNone Macro = iota
	MacroVillage
	MacroWolf
	MacroSolo
)

func (m Macro) String() string {
	switch m {
	case MacroVillage:
		return "Villageois"
	case MacroWolf:
		return "Loup"
	case MacroSolo:
		return "Solo"
	default:
		return "?"
	}
}

// CampRelation maps a camp to its macro grouping and whether it belongs to
// neither main faction. This is static ruleset configuration, never derived
// from corpus contents.
type CampRelation struct {
	Macro Macro
	Solo  bool
}

var campTable = map[Camp]CampRelation{
	CampVillageois:   {Macro: MacroVillage},
	CampChasseur:     {Macro: MacroVillage},
	CampVoyante:      {Macro: MacroVillage},
	CampLoup:         {Macro: MacroWolf},
	CampTraitre:      {Macro: MacroWolf},
	CampAmoureux:     {Macro: MacroSolo, Solo: true},
	CampIdiot:        {Macro: MacroSolo, Solo: true},
	CampAgent:        {Macro: MacroSolo, Solo: true},
	CampScientifique: {Macro: MacroSolo, Solo: true},
	CampVaudou:       {Macro: MacroSolo, Solo: true},
}

// RelationOf returns the camp's relation entry. Camps outside the table
// (modded rulesets introduce new solo roles) are treated as solo.
func RelationOf(c Camp) CampRelation {
	if r, ok := campTable[c]; ok {
		return r
	}
	return CampRelation{Macro: MacroSolo, Solo: true}
}

// MacroOf returns the camp's macro grouping.
func MacroOf(c Camp) Macro { return RelationOf(c).Macro }

// Opposes reports whether two camps belong to mutually-opposing macro-camps.
// Only the two main factions oppose each other; solo roles oppose nothing.
func Opposes(a, b Camp) bool {
	ma, mb := MacroOf(a), MacroOf(b)
	return (ma == MacroVillage && mb == MacroWolf) || (ma == MacroWolf && mb == MacroVillage)
}
