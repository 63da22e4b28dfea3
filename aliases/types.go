// Package aliases persists chat-scoped bindings from user-chosen aliases to
// Steam identities as a single JSON document.
package aliases

import "strings"

// DefaultChatKey scopes bindings when the host supplies no conversation
// identifier.
const DefaultChatKey = "global"

// Record is one alias binding. SteamID is canonical 64-bit; the profile
// fields are a snapshot from bind time.
type Record struct {
	SteamID     string `json:"steamid"`
	ProfileURL  string `json:"profileurl"`
	PersonaName string `json:"personaname"`
	CreatedAt   int64  `json:"created_at"`
}

// Entry pairs a normalized alias with its record for listing.
type Entry struct {
	Alias  string
	Record Record
}

// Normalize maps user-typed alias forms onto the stored key: trimmed,
// leading @ runs stripped, lowercased.
func Normalize(alias string) string {
	return strings.ToLower(strings.TrimLeft(strings.TrimSpace(alias), "@"))
}

// NormalizeChatKey falls back to the global scope for blank chat keys.
func NormalizeChatKey(chatKey string) string {
	chatKey = strings.TrimSpace(chatKey)
	if chatKey == "" {
		return DefaultChatKey
	}
	return chatKey
}
