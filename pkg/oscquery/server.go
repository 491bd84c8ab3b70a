package oscquery

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"strconv"

	"github.com/hypebeast/go-osc/osc"
)

// Sender delivers replies. *osc.Client implements it.
type Sender interface {
	Send(packet osc.Packet) error
}

// NewClient returns an OSC client for a "host:port" reply address.
func NewClient(addr string) (*osc.Client, error) {
	host, portText, err := net.SplitHostPort(addr)
	if err != nil {
		return nil, fmt.Errorf("reply address %q: %w", addr, err)
	}
	port, err := strconv.Atoi(portText)
	if err != nil {
		return nil, fmt.Errorf("reply address %q: bad port: %w", addr, err)
	}
	if host == "" {
		host = "127.0.0.1"
	}
	return osc.NewClient(host, port), nil
}

// Server listens for requests on a UDP address and sends every answer to
// Reply.
type Server struct {
	Addr   string
	Reply  Sender
	Logger *slog.Logger
}

// Dispatcher returns a dispatcher with a handler for every request address.
func (s *Server) Dispatcher() *osc.StandardDispatcher {
	d := osc.NewStandardDispatcher()
	for _, addr := range Addresses() {
		d.AddMsgHandler(addr, s.serve)
	}
	return d
}

func (s *Server) serve(msg *osc.Message) {
	log := s.logger()
	reply := Handle(msg)
	if reply.Address == AddrError {
		log.Warn("request failed", "address", msg.Address, "args", msg.Arguments, "reply", reply.Arguments)
	} else {
		log.Debug("request", "address", msg.Address, "args", msg.Arguments, "reply", reply.Arguments)
	}
	if s.Reply == nil {
		return
	}
	if err := s.Reply.Send(reply); err != nil {
		log.Error("send reply", "address", reply.Address, "error", err)
	}
}

// Run serves until ctx is cancelled.
func (s *Server) Run(ctx context.Context) error {
	conn, err := net.ListenPacket("udp", s.Addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", s.Addr, err)
	}
	return s.Serve(ctx, conn)
}

// Serve reads requests from conn until ctx is cancelled. It closes conn.
func (s *Server) Serve(ctx context.Context, conn net.PacketConn) error {
	srv := &osc.Server{Addr: s.Addr, Dispatcher: s.Dispatcher()}

	stop := context.AfterFunc(ctx, func() { conn.Close() })
	defer stop()

	s.logger().Info("osc listening", "addr", conn.LocalAddr().String())
	err := srv.Serve(conn)
	if ctx.Err() != nil {
		return nil
	}
	if errors.Is(err, net.ErrClosed) {
		return nil
	}
	return err
}

func (s *Server) logger() *slog.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return slog.Default()
}
