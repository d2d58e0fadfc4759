package dashboard

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
)

// blockTerminator ends a multi-line entry.
const blockTerminator = "."

// Console is the line-oriented terminal the views render to and read from.
// Input is read by a single background goroutine so a blocked prompt can be
// abandoned when the context is cancelled.
type Console struct {
	in       *bufio.Reader
	out      io.Writer
	colorize bool

	readOnce sync.Once
	lines    chan string
	readErr  error
}

// NewConsole wraps the given streams. colorize enables ANSI colours on status
// lines and headers.
func NewConsole(in io.Reader, out io.Writer, colorize bool) *Console {
	if in == nil {
		in = strings.NewReader("")
	}
	return &Console{in: bufio.NewReader(in), out: out, colorize: colorize, lines: make(chan string)}
}

// Out exposes the output stream.
func (c *Console) Out() io.Writer {
	return c.out
}

// Prompt prints label and reads one line without its line ending. It returns
// io.EOF once input is exhausted and ctx.Err() when ctx ends first.
func (c *Console) Prompt(ctx context.Context, label string) (string, error) {
	fmt.Fprintf(c.out, "%s: ", label)
	return c.readLine(ctx)
}

// ReadBlock prints label and collects lines until a lone "." or end of input.
// The collected lines are joined with newlines.
func (c *Console) ReadBlock(ctx context.Context, label string) (string, error) {
	fmt.Fprintf(c.out, "%s (one per line, finish with %q):\n", label, blockTerminator)
	var lines []string
	for {
		line, err := c.readLine(ctx)
		if errors.Is(err, io.EOF) {
			return strings.Join(lines, "\n"), nil
		}
		if err != nil {
			return "", err
		}
		if strings.TrimSpace(line) == blockTerminator {
			return strings.Join(lines, "\n"), nil
		}
		lines = append(lines, line)
	}
}

// Confirm asks a yes/no question; anything but y or yes is a no.
func (c *Console) Confirm(ctx context.Context, question string) (bool, error) {
	answer, err := c.Prompt(ctx, question+" [y/N]")
	if err != nil {
		return false, err
	}
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}

func (c *Console) readLine(ctx context.Context) (string, error) {
	c.readOnce.Do(func() { go c.pump() })
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case line, ok := <-c.lines:
		if !ok {
			return "", c.readErr
		}
		return line, nil
	}
}

// pump feeds input lines to readLine one at a time. The channel is closed
// after the first read error, which readErr then holds.
func (c *Console) pump() {
	for {
		line, err := c.in.ReadString('\n')
		if line != "" && (err == nil || errors.Is(err, io.EOF)) {
			c.lines <- strings.TrimRight(line, "\r\n")
		}
		if err != nil {
			c.readErr = err
			close(c.lines)
			return
		}
	}
}

func (c *Console) Println(a ...any) {
	fmt.Fprintln(c.out, a...)
}

func (c *Console) Printf(format string, a ...any) {
	fmt.Fprintf(c.out, format, a...)
}

func (c *Console) Header(title string) {
	for _, line := range renderSectionHeader(title, c.colorize) {
		fmt.Fprintln(c.out, line)
	}
}

func (c *Console) Success(message string) { c.status(statusOK, message) }

func (c *Console) Info(message string) { c.status(statusInfo, message) }

func (c *Console) Warn(message string) { c.status(statusWarn, message) }

func (c *Console) Error(message string) { c.status(statusError, message) }

func (c *Console) status(kind statusKind, message string) {
	fmt.Fprintln(c.out, renderStatusLine(kind, message, c.colorize))
}

// Block prints multi-line content indented under the preceding line.
func (c *Console) Block(content string) {
	for _, line := range strings.Split(strings.TrimRight(content, "\n"), "\n") {
		fmt.Fprintf(c.out, "  %s\n", line)
	}
}
