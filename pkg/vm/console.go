package vm

import (
	"errors"
	"net"
	"os"
	"time"
)

// ConsoleSink is the terminal-output collaborator PRINT writes to: a
// small device interface the VM holds and calls into, never owning
// the underlying transport itself.
type ConsoleSink interface {
	WriteByte(b byte) error
}

// StdoutConsole writes PRINT output to the process's standard output.
// It is the default sink for the batch entry point.
type StdoutConsole struct{}

// WriteByte implements ConsoleSink.
func (StdoutConsole) WriteByte(b byte) error {
	_, err := os.Stdout.Write([]byte{b})
	return err
}

// ErrConsoleDetach indicates the remote console connection was lost.
var ErrConsoleDetach = errors.New("vm: console detached")

// NetConsole is a TCP-backed console sink: a remote terminal dials in
// and receives every byte the running process PRINTs. Only output is
// wired, since the syscall table in this version defines no
// console-input syscall.
type NetConsole struct {
	conn net.Conn
}

// DialNetConsole connects to a remote terminal listening at addr and
// returns a console sink backed by that connection. The caller should
// defer Close.
func DialNetConsole(addr string) (*NetConsole, error) {
	conn, err := net.Dial("tcp", addr)
	if err != nil {
		return nil, err
	}
	return &NetConsole{conn: conn}, nil
}

// Close closes the underlying connection.
func (c *NetConsole) Close() error {
	return c.conn.Close()
}

// WriteByte implements ConsoleSink. It uses a short write deadline so
// a stalled remote terminal cannot block the VM indefinitely; a
// timeout is reported as ErrConsoleDetach.
func (c *NetConsole) WriteByte(b byte) error {
	c.conn.SetWriteDeadline(time.Now().Add(time.Second))
	if _, err := c.conn.Write([]byte{b}); err != nil {
		return errors.Join(ErrConsoleDetach, err)
	}
	return nil
}

var (
	_ ConsoleSink = StdoutConsole{}
	_ ConsoleSink = &NetConsole{}
)
