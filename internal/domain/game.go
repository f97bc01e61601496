package domain

// ModeInfo is the display data for one mode panel on the home screen.
type ModeInfo struct {
	Mode    GameMode
	Symbol  string
	Heading string
	Color   string // palette token, resolved by the formatter
	Labels  [3]string
}

var modeCatalogue = map[GameMode]ModeInfo{
	ModeAddition: {
		Mode:    ModeAddition,
		Symbol:  "+",
		Heading: "たしざん",
		Color:   "pink",
		Labels:  [3]string{"Lv.1 (10まで)", "Lv.2 (20まで)", "Lv.3 (50まで)"},
	},
	ModeSubtraction: {
		Mode:    ModeSubtraction,
		Symbol:  "-",
		Heading: "ひきざん",
		Color:   "blue",
		Labels:  [3]string{"Lv.1 (くりさがりなし)", "Lv.2 (くりさがりあり)", "Lv.3 (すこしおおきなかず)"},
	},
}

// Info returns the panel display data for the mode. Unknown modes get a bare
// entry carrying only the mode name.
func (m GameMode) Info() ModeInfo {
	if info, ok := modeCatalogue[m]; ok {
		return info
	}
	return ModeInfo{Mode: m, Heading: string(m)}
}

// LevelLabel returns the button label for a level within this mode.
func (m GameMode) LevelLabel(l Level) string {
	if !l.Valid() {
		return ""
	}
	return m.Info().Labels[l-1]
}
