package gamenet

import (
	"context"
	"net"

	"golang.org/x/sync/semaphore"

	"github.com/cocv8/session-core/config"
	"github.com/cocv8/session-core/session"
)

// Server listens for game-client connections, admitting at most
// settings.MaxConnections concurrently, and drives one Session per
// connection on the server side of the handshake.
type Server struct {
	listener net.Listener
	sem      *semaphore.Weighted
	logger   *procLogger
}

// NewServer binds settings.Listen and prepares the connection-admission
// semaphore. It does not yet accept connections; call Serve for that.
func NewServer(settings *config.Settings) (*Server, error) {
	listener, err := net.Listen("tcp", settings.Listen)
	if err != nil {
		return nil, err
	}
	return &Server{
		listener: listener,
		sem:      semaphore.NewWeighted(int64(settings.MaxConnections)),
		logger:   newProcLogger("Server"),
	}, nil
}

// Addr returns the listener's bound address.
func (s *Server) Addr() net.Addr { return s.listener.Addr() }

// Close stops accepting new connections.
func (s *Server) Close() error { return s.listener.Close() }

// Serve accepts connections until ctx is canceled or Accept errors. Each
// admitted connection is handled on its own goroutine; connections beyond
// the admission cap are closed immediately rather than queued.
func (s *Server) Serve(ctx context.Context) error {
	go func() {
		<-ctx.Done()
		s.listener.Close()
	}()

	for {
		conn, err := s.listener.Accept()
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return err
		}

		if !s.sem.TryAcquire(1) {
			s.logger.warn("connection rejected: at capacity")
			conn.Close()
			continue
		}

		go func() {
			defer s.sem.Release(1)
			s.handleConn(ctx, conn)
		}()
	}
}

// handleConn drives one connection's Session from construction through
// whatever handshake and bulk-transport frames arrive, until the peer
// disconnects or the processor reports a fatal session error.
func (s *Server) handleConn(ctx context.Context, conn net.Conn) {
	defer conn.Close()

	logger := s.logger.withField("remote", conn.RemoteAddr().String())

	sess, err := session.New(session.Server, nil)
	if err != nil {
		logger.warn("failed to construct session")
		return
	}
	defer sess.Close()

	proc := NewProcessor(sess)

	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		frame, err := ReadFrame(conn)
		if err != nil {
			return
		}

		plaintext, err := proc.HandleIncoming(frame)
		if err != nil {
			logger.warn("session error, closing connection")
			return
		}

		// Dispatching decrypted application payloads to per-opcode
		// handlers is a property of the message-processor facade, not
		// this listener; callers that need it wrap Processor directly.
		_ = plaintext
	}
}
