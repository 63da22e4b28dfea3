package outputfmt

import (
	"errors"
	"strings"
	"testing"
)

func TestFormatErrorForDisplayNil(t *testing.T) {
	t.Parallel()

	if got := FormatErrorForDisplay(nil); got != "" {
		t.Fatalf("FormatErrorForDisplay(nil) = %q, want empty", got)
	}
}

func TestSanitizeErrorTextRedactsKey(t *testing.T) {
	t.Parallel()

	err := errors.New(`Get "https://api.steampowered.com/ISteamUser/GetPlayerSummaries/v2/?key=SECRET123&steamids=1": dial tcp: timeout`)
	got := FormatErrorForDisplay(err)
	if strings.Contains(got, "SECRET123") {
		t.Fatalf("sanitized text still contains credential: %q", got)
	}
	if strings.Contains(got, "api.steampowered.com") {
		t.Fatalf("sanitized text still contains host: %q", got)
	}
	if !strings.Contains(got, "/ISteamUser/GetPlayerSummaries/v2/") {
		t.Fatalf("sanitized text lost the path: %q", got)
	}
}

func TestSanitizeErrorTextPlain(t *testing.T) {
	t.Parallel()

	in := "plain failure with no urls"
	if got := SanitizeErrorText(in); got != in {
		t.Fatalf("SanitizeErrorText(%q) = %q", in, got)
	}
}
