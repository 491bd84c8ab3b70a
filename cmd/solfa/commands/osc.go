package commands

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/haivivi/solfa/pkg/cli"
	"github.com/haivivi/solfa/pkg/oscquery"
)

var (
	oscListen string
	oscReply  string
)

var oscCmd = &cobra.Command{
	Use:   "osc",
	Short: "Answer questions over OSC",
	Long: `Listen for OSC requests on UDP and send each answer to the reply address.

Requests:
  /solfa/chord     root [quality]
  /solfa/scale     root kind [direction]
  /solfa/transpose note interval [down]

Answers go to <address>/reply with one string argument per note, or to
/solfa/error with the request address and the error text.

Examples:
  solfa osc
  solfa osc --listen 0.0.0.0:9000 --reply 192.168.1.20:9001`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		listen := oscListen
		if listen == "" {
			listen = settings.OSCListen
		}
		replyAddr := oscReply
		if replyAddr == "" {
			replyAddr = settings.OSCReply
		}

		client, err := oscquery.NewClient(replyAddr)
		if err != nil {
			return err
		}

		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
		defer stop()

		cli.PrintInfo("listening on %s, replying to %s (Ctrl+C to stop)", listen, replyAddr)
		srv := &oscquery.Server{Addr: listen, Reply: client, Logger: slog.Default()}
		return srv.Run(ctx)
	},
}

func init() {
	oscCmd.Flags().StringVar(&oscListen, "listen", "", "UDP address to listen on (default from profile)")
	oscCmd.Flags().StringVar(&oscReply, "reply", "", "UDP address to send replies to (default from profile)")
	rootCmd.AddCommand(oscCmd)
}
