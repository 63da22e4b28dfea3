package steam

import "fmt"

// VisibilityPublic is the communityvisibilitystate value of a fully public
// profile; anything else means limited information.
const VisibilityPublic = 3

// PlayerSummary is one player record from GetPlayerSummaries. PersonaState
// is a pointer because private profiles omit it entirely.
type PlayerSummary struct {
	SteamID       string `json:"steamid"`
	PersonaName   string `json:"personaname"`
	ProfileURL    string `json:"profileurl"`
	PersonaState  *int   `json:"personastate,omitempty"`
	Visibility    int    `json:"communityvisibilitystate"`
	GameExtraInfo string `json:"gameextrainfo,omitempty"`
	LastLogoff    int64  `json:"lastlogoff,omitempty"`
}

// Public reports whether the profile exposes full details.
func (p PlayerSummary) Public() bool {
	return p.Visibility == VisibilityPublic
}

var personaStateLabels = map[int]string{
	0: "offline",
	1: "online",
	2: "busy",
	3: "away",
	4: "snooze",
	5: "looking to trade",
	6: "looking to play",
}

// PersonaStateLabel maps a persona-state code to its display label.
func PersonaStateLabel(code int) string {
	if label, ok := personaStateLabels[code]; ok {
		return label
	}
	return fmt.Sprintf("unknown state(%d)", code)
}
