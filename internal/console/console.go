package console

import (
	"bufio"
	"bytes"
	"io"
	"os"
	"sync"

	"golang.org/x/term"

	"gtaradio/internal/logging"
)

const (
	keyInterrupt = 0x03 // Ctrl-C
	keyEOF       = 0x04 // Ctrl-D
)

// KeyEscape stands for an escape key or a whole escape sequence.
const KeyEscape = 0x1b

// QuitKey is what Ctrl-C and Ctrl-D are translated to in raw mode.
const QuitKey = 'q'

// Console wraps the terminal streams used by the command loop.
type Console struct {
	in  *os.File
	out io.Writer

	mu    sync.Mutex
	state *term.State
}

// Open prepares in and out for the command loop. Raw mode is only entered
// when wantRaw is set and in is a terminal.
func Open(in *os.File, out io.Writer, wantRaw bool) (*Console, error) {
	c := &Console{in: in, out: out}

	fd := int(in.Fd())
	if !wantRaw || !term.IsTerminal(fd) {
		logging.Debug("Console: line-buffered input")
		return c, nil
	}

	state, err := term.MakeRaw(fd)
	if err != nil {
		return nil, err
	}
	c.state = state

	logging.SetOutput(NewCRLFWriter(os.Stderr))
	logging.Debug("Console: raw single-key input")

	return c, nil
}

// Raw reports whether the terminal is in raw mode.
func (c *Console) Raw() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state != nil
}

// Reader returns the stream commands are read from.
func (c *Console) Reader() io.Reader {
	if c.Raw() {
		return NewKeyReader(c.in)
	}
	return c.in
}

// Writer returns the stream prompts and status lines are written to.
func (c *Console) Writer() io.Writer {
	if c.Raw() {
		return NewCRLFWriter(c.out)
	}
	return c.out
}

// Restore returns the terminal to the state it was in before Open. It is
// safe to call more than once.
func (c *Console) Restore() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state == nil {
		return nil
	}

	err := term.Restore(int(c.in.Fd()), c.state)
	c.state = nil
	logging.SetOutput(os.Stderr)
	return err
}

// crlfWriter expands "\n" to "\r\n".
type crlfWriter struct {
	w io.Writer
}

// NewCRLFWriter returns a writer that expands every "\n" to "\r\n".
func NewCRLFWriter(w io.Writer) io.Writer {
	return &crlfWriter{w: w}
}

func (c *crlfWriter) Write(p []byte) (int, error) {
	if bytes.IndexByte(p, '\n') < 0 {
		return c.w.Write(p)
	}

	if _, err := c.w.Write(bytes.ReplaceAll(p, []byte("\n"), []byte("\r\n"))); err != nil {
		return 0, err
	}
	return len(p), nil
}

// keyReader maps raw-mode control keys to the quit command and collapses
// terminal escape sequences to a single KeyEscape.
type keyReader struct {
	r *bufio.Reader
}

// NewKeyReader returns a reader that translates Ctrl-C and Ctrl-D to
// QuitKey. A CSI (ESC [ ... final) or SS3 (ESC O x) sequence, as sent by
// arrow and function keys, is read as one KeyEscape byte.
func NewKeyReader(r io.Reader) io.Reader {
	return &keyReader{r: bufio.NewReader(r)}
}

func (k *keyReader) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}

	n := 0
	for n < len(p) {
		// Only block for the first byte.
		if n > 0 && k.r.Buffered() == 0 {
			break
		}

		b, err := k.r.ReadByte()
		if err != nil {
			if n > 0 {
				return n, nil
			}
			return 0, err
		}

		switch b {
		case keyInterrupt, keyEOF:
			b = QuitKey
		case KeyEscape:
			k.skipEscapeSequence()
		}

		p[n] = b
		n++
	}

	return n, nil
}

// skipEscapeSequence consumes the rest of a sequence whose ESC was just
// read. Terminals write a whole sequence at once, so only buffered bytes are
// examined and a lone ESC key is left alone.
func (k *keyReader) skipEscapeSequence() {
	if k.r.Buffered() == 0 {
		return
	}

	next, err := k.r.Peek(1)
	if err != nil {
		return
	}

	switch next[0] {
	case '[':
		_, _ = k.r.ReadByte()
		for k.r.Buffered() > 0 {
			b, err := k.r.ReadByte()
			if err != nil || (b >= 0x40 && b <= 0x7e) {
				return
			}
		}
	case 'O':
		_, _ = k.r.ReadByte()
		if k.r.Buffered() > 0 {
			_, _ = k.r.ReadByte()
		}
	}
}
