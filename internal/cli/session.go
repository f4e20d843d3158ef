package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog/log"
	tomb "gopkg.in/tomb.v2"

	"github.com/joshuagourlay/Item-Exchange-Simulator/internal/common"
	"github.com/joshuagourlay/Item-Exchange-Simulator/internal/engine"
)

// Session is the interactive command loop driving the engine. It owns both
// books through the engine for its whole lifetime; one operation runs to
// completion before the next line is read.
type Session struct {
	eng   *engine.Engine
	in    io.Reader
	out   io.Writer
	lines chan string
}

func NewSession(eng *engine.Engine, in io.Reader, out io.Writer) *Session {
	eng.SetReporter(&consoleReporter{out: out})
	return &Session{
		eng:   eng,
		in:    in,
		out:   out,
		lines: make(chan string),
	}
}

// Run executes the command loop until quit, end of input, or context
// cancellation. Teardown (draining both books with clearing notices) runs
// on every exit path.
func (s *Session) Run(ctx context.Context) error {
	t, _ := tomb.WithContext(ctx)

	// The reader is not tomb-tracked: a blocked read on stdin cannot be
	// interrupted, and must not hold up Wait after the loop exits.
	go s.readLines()

	t.Go(func() error {
		return s.loop(t)
	})

	err := t.Wait()
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func (s *Session) readLines() {
	scanner := bufio.NewScanner(s.in)
	for scanner.Scan() {
		s.lines <- scanner.Text()
	}
	close(s.lines)
}

// next returns the following input line; ok is false once input is
// exhausted or the session is dying.
func (s *Session) next(t *tomb.Tomb) (string, bool) {
	select {
	case <-t.Dying():
		return "", false
	case line, ok := <-s.lines:
		return line, ok
	}
}

func (s *Session) loop(t *tomb.Tomb) error {
	log.Info().Msg("session started")
	defer func() {
		s.eng.Shutdown()
		log.Info().Msg("session ended")
	}()

	fmt.Fprintln(s.out)
	s.help()
	fmt.Fprintln(s.out)

	for {
		fmt.Fprint(s.out, "Enter operation code: ")
		line, ok := s.next(t)
		if !ok {
			// End of input tears down exactly like quit.
			return nil
		}
		code, ok := opCode(line)
		if !ok {
			continue
		}

		switch code {
		case 'b':
			s.createOrder(t, common.Buy)
		case 's':
			s.createOrder(t, common.Sell)
		case 'p':
			s.printBooks()
		case 'h':
			s.help()
		case 'q':
			return nil
		default:
			fmt.Fprintln(s.out, "Illegal operation code!")
		}
		fmt.Fprintln(s.out)
	}
}

// createOrder prompts for the order tuple, validates it and hands the order
// to the engine. Any invalid field aborts this single create with a notice;
// both books stay untouched.
func (s *Session) createOrder(t *tomb.Tomb, side common.Side) {
	fmt.Fprint(s.out, "Enter your username: ")
	line, ok := s.next(t)
	if !ok {
		return
	}
	owner, err := parseUsername(line)
	if err != nil {
		s.reject("username", err)
		return
	}

	fmt.Fprint(s.out, "Enter your price: ")
	line, ok = s.next(t)
	if !ok {
		return
	}
	price, err := parsePositiveFloat(line)
	if err != nil {
		s.reject("price", err)
		return
	}

	fmt.Fprint(s.out, "Enter your quantity: ")
	line, ok = s.next(t)
	if !ok {
		return
	}
	quantity, err := parsePositiveFloat(line)
	if err != nil {
		s.reject("quantity", err)
		return
	}

	fmt.Fprintln(s.out)
	s.eng.PlaceOrder(common.NewOrder(owner, side, price, quantity))
}

func (s *Session) reject(field string, err error) {
	log.Warn().Err(err).Str("field", field).Msg("order rejected")
	fmt.Fprintf(s.out, "Invalid %s: %v\n", field, err)
}

func (s *Session) printBooks() {
	RenderBook(s.out, "Buy", s.eng.Bids().Orders())
	RenderBook(s.out, "Sell", s.eng.Asks().Orders())
}

func (s *Session) help() {
	fmt.Fprintln(s.out, "List of operation codes:")
	fmt.Fprintln(s.out, "\t'b' for adding a buy order;")
	fmt.Fprintln(s.out, "\t's' for adding a sell order;")
	fmt.Fprintln(s.out, "\t'p' for printing all orders;")
	fmt.Fprintln(s.out, "\t'h' for help;")
	fmt.Fprintln(s.out, "\t'q' for quit.")
}
