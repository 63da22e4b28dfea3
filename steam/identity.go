package steam

import (
	"context"
	"fmt"
	"strconv"
	"strings"
)

// Offset between a 32-bit account ID and its 64-bit form for individual
// accounts (universe 1, account type 1).
const steamID64Offset = 76561197960265728

// steamID64MinDigits: decimal strings at least this long are taken as
// already-canonical 64-bit IDs.
const steamID64MinDigits = 16

// NormalizeIdentifier turns raw user input into a SteamID64. Numeric input
// is converted locally; anything else goes through vanity resolution.
func (c *Client) NormalizeIdentifier(ctx context.Context, raw string) (string, error) {
	s := strings.TrimLeft(strings.TrimSpace(raw), "@")
	if s == "" {
		return "", fmt.Errorf("%w: empty identifier", ErrNotFound)
	}

	if isAllDigits(s) {
		if len(s) >= steamID64MinDigits {
			return s, nil
		}
		id32, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			return "", fmt.Errorf("%w: identifier %q", ErrNotFound, raw)
		}
		return strconv.FormatUint(id32+steamID64Offset, 10), nil
	}

	return c.ResolveVanity(ctx, s)
}

func isAllDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(s) > 0
}
