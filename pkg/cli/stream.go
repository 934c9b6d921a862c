package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/websocket"
	"github.com/shamikhz/UUID-Generator/pkg/cli/internal/output"
	"github.com/shamikhz/UUID-Generator/pkg/generator"
	"github.com/shamikhz/UUID-Generator/pkg/panel"
	"github.com/shamikhz/UUID-Generator/pkg/web"
	"github.com/spf13/cobra"
)

var (
	streamURL     string
	streamCount   int
	streamTimeout time.Duration
)

var streamCmd = &cobra.Command{
	Use:   "stream <version>",
	Short: "Drive a running server's panel over WebSocket",
	Long: `Connect to the /ws endpoint of a running "uuidgen serve", select a version
and print the batch, then regenerate until --count batches were printed.`,
	Example: `  # Three v1 batches from the local server
  uuidgen stream v1 --count 3

  # A remote server, one JSON state per line
  uuidgen stream v3 --url ws://panel.example.com:4380/ws --json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		v, err := generator.ParseVersion(args[0])
		if err != nil {
			return err
		}
		if streamCount < 1 {
			return fmt.Errorf("--count must be at least 1, got %d", streamCount)
		}
		url := streamURL
		if url == "" {
			url = "ws://" + cfg.Addr() + "/ws"
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return runStream(ctx, cmd.OutOrStdout(), streamOptions{
			URL:     url,
			Version: v,
			Count:   streamCount,
			Timeout: streamTimeout,
			JSON:    cfg.JSON,
		})
	},
}

func init() {
	rootCmd.AddCommand(streamCmd)
	streamCmd.Flags().StringVar(&streamURL, "url", "", "WebSocket URL (default: ws://<host>:<port>/ws from config)")
	streamCmd.Flags().IntVarP(&streamCount, "count", "n", 1, "Number of batches to print")
	streamCmd.Flags().DurationVar(&streamTimeout, "timeout", 10*time.Second, "Handshake and per-message timeout")
}

type streamOptions struct {
	URL     string
	Version generator.Version
	Count   int
	Timeout time.Duration
	JSON    bool
}

// streamReply is either a panel state or an error frame.
type streamReply struct {
	panel.State
	Error   string `json:"error"`
	Message string `json:"message"`
}

func runStream(ctx context.Context, w io.Writer, opts streamOptions) error {
	dialer := websocket.Dialer{HandshakeTimeout: opts.Timeout}
	conn, resp, err := dialer.DialContext(ctx, opts.URL, nil)
	if err != nil {
		if resp != nil {
			return fmt.Errorf("connect to %s: %w (HTTP %d)", opts.URL, err, resp.StatusCode)
		}
		return fmt.Errorf("connect to %s: %w", opts.URL, err)
	}
	defer conn.Close()

	// Unblock reads when interrupted.
	stop := context.AfterFunc(ctx, func() { _ = conn.SetReadDeadline(time.Now()) })
	defer stop()

	read := func() (panel.State, error) {
		if opts.Timeout > 0 {
			_ = conn.SetReadDeadline(time.Now().Add(opts.Timeout))
		}
		_, data, err := conn.ReadMessage()
		if err != nil {
			if ctx.Err() != nil {
				return panel.State{}, ctx.Err()
			}
			return panel.State{}, fmt.Errorf("read: %w", err)
		}
		var reply streamReply
		if err := json.Unmarshal(data, &reply); err != nil {
			return panel.State{}, fmt.Errorf("decode reply: %w", err)
		}
		if reply.Error != "" {
			return panel.State{}, fmt.Errorf("server rejected request: %s: %s", reply.Error, reply.Message)
		}
		return reply.State, nil
	}
	send := func(req web.StreamRequest) (panel.State, error) {
		if err := conn.WriteJSON(req); err != nil {
			return panel.State{}, fmt.Errorf("send %s: %w", req.Action, err)
		}
		return read()
	}

	// The server opens with the current (unset) state.
	if _, err := read(); err != nil {
		return err
	}

	st, err := send(web.StreamRequest{Action: web.ActionSelect, Version: string(opts.Version)})
	for i := 0; ; i++ {
		if err != nil {
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		}
		if err := writeStreamState(w, st, opts.JSON); err != nil {
			return err
		}
		if i+1 >= opts.Count {
			break
		}
		st, err = send(web.StreamRequest{Action: web.ActionGenerate})
	}

	_ = conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
	return nil
}

func writeStreamState(w io.Writer, st panel.State, asJSON bool) error {
	if asJSON {
		return json.NewEncoder(w).Encode(st)
	}
	return output.Lines(w, st.Identifiers)
}
