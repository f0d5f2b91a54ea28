package ipc

import (
	"encoding/json"
	"fmt"
	"net"
	"os"
)

// DefaultSocketPath is where rwm listens unless the --socket flag (or
// RWM_SOCKET) overrides it.
const DefaultSocketPath = "/tmp/rwm.sock"

// Server accepts client connections on a Unix domain socket and streams
// them out one at a time, so the single-threaded reducer can serve
// exactly one IPC client per wake without racing its own state.
type Server struct {
	ln   net.Listener
	path string

	conns chan *Conn
	errs  chan error
}

// Listen removes any stale socket file left behind by a crashed previous
// run, binds a fresh Unix socket at path, and starts accepting.
func Listen(path string) (*Server, error) {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("removing stale socket %s: %w", path, err)
	}
	ln, err := net.Listen("unix", path)
	if err != nil {
		return nil, fmt.Errorf("listening on %s: %w", path, err)
	}

	s := &Server{ln: ln, path: path, conns: make(chan *Conn), errs: make(chan error, 1)}
	go s.acceptLoop()
	return s, nil
}

func (s *Server) acceptLoop() {
	for {
		nc, err := s.ln.Accept()
		if err != nil {
			select {
			case s.errs <- err:
			default:
			}
			return
		}
		s.conns <- &Conn{nc: nc}
	}
}

// Conns streams accepted connections in arrival order.
func (s *Server) Conns() <-chan *Conn { return s.conns }

// Errs carries a single fatal listener error (e.g. the socket was
// removed out from under it); at most one is sent, and the channel is
// never closed.
func (s *Server) Errs() <-chan error { return s.errs }

// Close stops accepting and removes the socket file so a later run
// doesn't find a stale one (belt and braces alongside Listen's own
// cleanup, for the case where this process exits normally).
func (s *Server) Close() error {
	err := s.ln.Close()
	if rmErr := os.Remove(s.path); rmErr != nil && !os.IsNotExist(rmErr) {
		if err == nil {
			err = rmErr
		}
	}
	return err
}

// Conn is one accepted client connection, good for exactly one
// request/reply round trip (rwm's client dials, sends one Command, reads
// one Reply, and disconnects).
type Conn struct {
	nc net.Conn
}

func (c *Conn) ReadCommand() (Command, error) {
	var cmd Command
	payload, err := ReadFrame(c.nc)
	if err != nil {
		return cmd, fmt.Errorf("reading command frame: %w", err)
	}
	if err := json.Unmarshal(payload, &cmd); err != nil {
		return cmd, fmt.Errorf("decoding command: %w", err)
	}
	return cmd, nil
}

func (c *Conn) WriteReply(reply Reply) error {
	data, err := json.Marshal(reply)
	if err != nil {
		return fmt.Errorf("encoding reply: %w", err)
	}
	return WriteFrame(c.nc, data)
}

func (c *Conn) Close() error { return c.nc.Close() }
