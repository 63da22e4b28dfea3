package command

import (
	"fmt"
	"strings"

	"github.com/morphlab/steamward/aliases"
	"github.com/morphlab/steamward/steam"
)

const helpText = `steam commands:
- steam help: show this help
- steam link <alias> <steamid|vanity>: bind an alias to a Steam account
- steam unlink <alias>: remove a binding
- steam list: list this chat's bindings
- steam status <alias|steamid|vanity>: report live presence
- steam whois <alias>: show a binding's stored and live details
a Steam Web API key is required (https://steamcommunity.com/dev/apikey): set steam.api_key and steam.enabled = true.`

const (
	msgBadUsage      = `invalid usage; send "steam help" for help`
	msgMissingAPIKey = "steam.api_key is not configured"
	msgStorageFailed = "failed to update bindings, please try again"

	msgPrivacyCaveat = "this profile is not public or only partially public, available details are limited"
	unknownName      = "<not public>"
)

func renderCannotResolve(target string) string {
	return fmt.Sprintf("cannot resolve %q to a SteamID", target)
}

func renderBindFailed(steamID string) string {
	return fmt.Sprintf("bind failed: could not fetch account info (steamid: %s)", steamID)
}

func renderFetchFailed(steamID string) string {
	return fmt.Sprintf("could not fetch player info (steamid: %s); the profile may be private or the API failed", steamID)
}

func renderLinked(alias, personaName, steamID string) string {
	return fmt.Sprintf("linked: %s -> %s (%s)", alias, personaName, steamID)
}

func renderUnlinked(alias string) string {
	return fmt.Sprintf("unlinked: %s", alias)
}

func renderAliasNotFound(alias string) string {
	return fmt.Sprintf("alias not found: %s", alias)
}

func renderList(entries []aliases.Entry) string {
	if len(entries) == 0 {
		return "no aliases bound in this chat\nuse: steam link <alias> <steamid|vanity>"
	}
	lines := make([]string, 0, len(entries)+1)
	lines = append(lines, "bound aliases:")
	for _, e := range entries {
		name := e.Record.PersonaName
		if name == "" {
			name = "-"
		}
		lines = append(lines, fmt.Sprintf("- %s -> %s (%s)", e.Alias, name, e.Record.SteamID))
	}
	return strings.Join(lines, "\n")
}

func renderStatus(steamID string, s steam.PlayerSummary) string {
	name := s.PersonaName
	if name == "" {
		name = unknownName
	}

	lines := []string{fmt.Sprintf("player: %s (%s)", name, steamID)}
	if s.PersonaState == nil {
		// Private profiles omit the persona state entirely.
		lines = append(lines, "state: unknown (possibly private)")
	} else {
		state := *s.PersonaState
		lines = append(lines, fmt.Sprintf("state: %s", steam.PersonaStateLabel(state)))
		if s.GameExtraInfo != "" {
			lines = append(lines, fmt.Sprintf("currently playing: %s", s.GameExtraInfo))
		}
		if state == 0 && s.LastLogoff > 0 {
			lines = append(lines, fmt.Sprintf("last online: %s", steam.FormatTimestamp(s.LastLogoff)))
		}
	}
	if s.ProfileURL != "" {
		lines = append(lines, fmt.Sprintf("profile: %s", s.ProfileURL))
	}
	if !s.Public() {
		lines = append(lines, msgPrivacyCaveat)
	}
	return strings.Join(lines, "\n")
}

func renderWhois(alias, steamID string, s steam.PlayerSummary) string {
	name := s.PersonaName
	if name == "" {
		name = unknownName
	}

	lines := []string{fmt.Sprintf("%s -> %s (%s)", alias, name, steamID)}
	if s.ProfileURL != "" {
		lines = append(lines, fmt.Sprintf("profile: %s", s.ProfileURL))
	}
	if !s.Public() {
		lines = append(lines, msgPrivacyCaveat)
	}
	return strings.Join(lines, "\n")
}

func renderWhoisFetchFailed(alias, steamID string) string {
	return fmt.Sprintf("%s -> %s\ncould not fetch details; the profile may be private or the API failed", alias, steamID)
}
