package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/morphlab/steamward/aliases"
	"github.com/morphlab/steamward/command"
	"github.com/morphlab/steamward/internal/logutil"
	"github.com/morphlab/steamward/internal/statepaths"
	"github.com/morphlab/steamward/steam"
)

// newHandleCmd exposes the handler to a shell the same way a chat host
// would call it: one verb, up to two arguments, a chat key.
func newHandleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "handle <verb> [args...]",
		Short: "Dispatch one steam subcommand (help|link|unlink|list|status|whois) and print the response",
		Args:  cobra.RangeArgs(1, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !viper.GetBool("steam.enabled") {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "steam commands are disabled; set steam.enabled = true")
				return nil
			}

			logger, err := logutil.LoggerFromViper()
			if err != nil {
				return err
			}
			slog.SetDefault(logger)

			chatKey, err := cmd.Flags().GetString("chat-key")
			if err != nil {
				return err
			}

			verb := args[0]
			argA, argB := "", ""
			if len(args) > 1 {
				argA = args[1]
			}
			if len(args) > 2 {
				argB = args[2]
			}

			h := &command.Handler{
				Store:  aliases.NewFileStore(statepaths.AliasFilePath()),
				Steam:  steam.New(viper.GetString("steam.api_host"), viper.GetString("steam.api_key")),
				Logger: logger,
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), h.Handle(cmd.Context(), verb, argA, argB, chatKey))
			return nil
		},
	}

	cmd.Flags().String("chat-key", aliases.DefaultChatKey, "Chat scope for alias bindings.")
	return cmd
}
