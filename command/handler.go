// Package command dispatches the bot's chat verbs. The host chat framework
// owns parsing and delivery; it hands this package a verb, up to two
// arguments, and a chat key, and renders the returned string back to the
// user. Nothing here panics or returns an error to the host: every failure
// becomes user-facing text.
package command

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/morphlab/steamward/aliases"
	"github.com/morphlab/steamward/internal/outputfmt"
	"github.com/morphlab/steamward/steam"
)

// Store is the alias persistence surface the handler needs.
type Store interface {
	Upsert(chatKey, alias string, rec aliases.Record) error
	Remove(chatKey, alias string) (bool, error)
	List(chatKey string) ([]aliases.Entry, error)
	Get(chatKey, alias string) (aliases.Record, bool, error)
}

// Resolver is the Steam API surface the handler needs.
type Resolver interface {
	HasAPIKey() bool
	NormalizeIdentifier(ctx context.Context, raw string) (string, error)
	GetPlayerSummary(ctx context.Context, steamID64 string) (steam.PlayerSummary, error)
}

type Handler struct {
	Store  Store
	Steam  Resolver
	Logger *slog.Logger
	Now    func() time.Time
}

// Handle runs one subcommand and returns the response text. Verbs are
// case-insensitive; a blank chat key falls back to the global scope.
func (h *Handler) Handle(ctx context.Context, verb, argA, argB, chatKey string) string {
	verb = strings.ToLower(strings.TrimSpace(verb))
	chatKey = aliases.NormalizeChatKey(chatKey)

	logger := h.logger().With(
		"request_id", uuid.NewString(),
		"verb", verb,
		"chat_key", chatKey,
	)
	logger.Debug("steam_command")

	switch verb {
	case "", "help":
		return helpText
	case "list":
		return h.list(logger, chatKey)
	case "unlink":
		if argA == "" {
			return msgBadUsage
		}
		return h.unlink(logger, chatKey, argA)
	case "whois":
		if argA == "" {
			return msgBadUsage
		}
		return h.whois(ctx, logger, chatKey, argA)
	case "link":
		if argA == "" || argB == "" {
			return msgBadUsage
		}
		return h.link(ctx, logger, chatKey, argA, argB)
	case "status":
		if argA == "" {
			return msgBadUsage
		}
		return h.status(ctx, logger, chatKey, argA)
	default:
		return msgBadUsage
	}
}

func (h *Handler) link(ctx context.Context, logger *slog.Logger, chatKey, rawAlias, ident string) string {
	if !h.Steam.HasAPIKey() {
		return msgMissingAPIKey
	}
	alias := aliases.Normalize(rawAlias)

	steamID, err := h.Steam.NormalizeIdentifier(ctx, ident)
	if err != nil {
		logger.Warn("link_resolve_failed", "identifier", ident, "error", outputfmt.FormatErrorForDisplay(err))
		if errors.Is(err, steam.ErrMissingAPIKey) {
			return msgMissingAPIKey
		}
		return renderCannotResolve(ident)
	}

	// The record must be fetchable before it is bound; a failed fetch must
	// not leave a half-created binding behind.
	summary, err := h.Steam.GetPlayerSummary(ctx, steamID)
	if err != nil {
		logger.Warn("link_fetch_failed", "steamid", steamID, "error", outputfmt.FormatErrorForDisplay(err))
		if errors.Is(err, steam.ErrMissingAPIKey) {
			return msgMissingAPIKey
		}
		return renderBindFailed(steamID)
	}

	rec := aliases.Record{
		SteamID:     steamID,
		ProfileURL:  summary.ProfileURL,
		PersonaName: summary.PersonaName,
		CreatedAt:   h.now().UTC().Unix(),
	}
	if err := h.Store.Upsert(chatKey, alias, rec); err != nil {
		logger.Error("link_save_failed", "error", err.Error())
		return msgStorageFailed
	}
	logger.Info("alias_linked", "alias", alias, "steamid", steamID)
	return renderLinked(alias, summary.PersonaName, steamID)
}

func (h *Handler) unlink(logger *slog.Logger, chatKey, rawAlias string) string {
	alias := aliases.Normalize(rawAlias)
	removed, err := h.Store.Remove(chatKey, alias)
	if err != nil {
		logger.Error("unlink_save_failed", "error", err.Error())
		return msgStorageFailed
	}
	if !removed {
		return renderAliasNotFound(alias)
	}
	logger.Info("alias_unlinked", "alias", alias)
	return renderUnlinked(alias)
}

func (h *Handler) list(logger *slog.Logger, chatKey string) string {
	entries, err := h.Store.List(chatKey)
	if err != nil {
		logger.Error("list_load_failed", "error", err.Error())
		return msgStorageFailed
	}
	return renderList(entries)
}

func (h *Handler) status(ctx context.Context, logger *slog.Logger, chatKey, target string) string {
	// Bound aliases win over raw identifiers when the same string could be
	// read as either.
	steamID := ""
	if rec, ok, err := h.Store.Get(chatKey, target); err == nil && ok {
		steamID = rec.SteamID
	}
	if steamID == "" {
		id, err := h.Steam.NormalizeIdentifier(ctx, target)
		if err != nil {
			logger.Warn("status_resolve_failed", "target", target, "error", outputfmt.FormatErrorForDisplay(err))
			if errors.Is(err, steam.ErrMissingAPIKey) {
				return msgMissingAPIKey
			}
			return renderCannotResolve(target)
		}
		steamID = id
	}

	summary, err := h.Steam.GetPlayerSummary(ctx, steamID)
	if err != nil {
		logger.Warn("status_fetch_failed", "steamid", steamID, "error", outputfmt.FormatErrorForDisplay(err))
		if errors.Is(err, steam.ErrMissingAPIKey) {
			return msgMissingAPIKey
		}
		return renderFetchFailed(steamID)
	}
	return renderStatus(steamID, summary)
}

func (h *Handler) whois(ctx context.Context, logger *slog.Logger, chatKey, rawAlias string) string {
	alias := aliases.Normalize(rawAlias)
	rec, ok, err := h.Store.Get(chatKey, alias)
	if err != nil {
		logger.Error("whois_load_failed", "error", err.Error())
		return msgStorageFailed
	}
	if !ok {
		return renderAliasNotFound(alias)
	}

	summary, err := h.Steam.GetPlayerSummary(ctx, rec.SteamID)
	if err != nil {
		logger.Warn("whois_fetch_failed", "steamid", rec.SteamID, "error", outputfmt.FormatErrorForDisplay(err))
		if errors.Is(err, steam.ErrMissingAPIKey) {
			return msgMissingAPIKey
		}
		return renderWhoisFetchFailed(alias, rec.SteamID)
	}
	return renderWhois(alias, rec.SteamID, summary)
}

func (h *Handler) logger() *slog.Logger {
	if h.Logger != nil {
		return h.Logger
	}
	return slog.Default()
}

func (h *Handler) now() time.Time {
	if h.Now != nil {
		return h.Now()
	}
	return time.Now()
}
