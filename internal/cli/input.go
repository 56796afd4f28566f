package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"
)

// readPassword is a test seam for term.ReadPassword.
var readPassword = term.ReadPassword

// prompt asks for one value and returns the trimmed answer. An answer on
// the last line of input without a newline still counts.
func (a *App) prompt(label string) (string, error) {
	a.printf("%s: ", label)

	line, err := a.reader.ReadString('\n')
	if errors.Is(err, io.EOF) && line != "" {
		err = nil
	}
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func (a *App) promptInt(label string) (int, error) {
	s, err := a.prompt(label)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%q is not a number", s)
	}
	return n, nil
}

// promptAmount accepts decimals with a dot, such as 12.50.
func (a *App) promptAmount(label string) (float64, error) {
	s, err := a.prompt(label)
	if err != nil {
		return 0, err
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%q is not an amount", s)
	}
	return f, nil
}

// GetPassword reads a password from the terminal without echo.
func GetPassword(w io.Writer) (string, error) {
	if _, err := fmt.Fprint(w, "Enter password: "); err != nil {
		return "", err
	}
	pw, err := readPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(w)
	if err != nil {
		return "", err
	}
	return string(pw), nil
}

type chunk struct {
	data []byte
	err  error
}

// cancelableReader reads in on a background goroutine so that a blocked
// Read returns ctx.Err() once ctx is done. Read errors are sticky.
type cancelableReader struct {
	ctx    context.Context
	chunks chan chunk
	rest   []byte
	err    error
}

func newCancelableReader(ctx context.Context, in io.Reader) *cancelableReader {
	r := &cancelableReader{ctx: ctx, chunks: make(chan chunk)}
	go r.pump(in)
	return r
}

func (r *cancelableReader) pump(in io.Reader) {
	for {
		buf := make([]byte, 4096)
		n, err := in.Read(buf)
		select {
		case r.chunks <- chunk{data: buf[:n], err: err}:
		case <-r.ctx.Done():
			return
		}
		if err != nil {
			return
		}
	}
}

func (r *cancelableReader) Read(p []byte) (int, error) {
	if len(r.rest) == 0 && r.err == nil {
		select {
		case <-r.ctx.Done():
			return 0, r.ctx.Err()
		case c := <-r.chunks:
			r.rest, r.err = c.data, c.err
		}
	}

	n := copy(p, r.rest)
	r.rest = r.rest[n:]
	if len(r.rest) == 0 && r.err != nil {
		return n, r.err
	}
	return n, nil
}
