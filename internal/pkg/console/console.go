package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
)

// Console is the terminal of the shell: line input plus serialized output.
// Input is read by a single goroutine, so ReadLine and Confirm share one stream.
type Console struct {
	mu  sync.Mutex
	out io.Writer

	lines chan string
	err   error
}

func New(in io.Reader, out io.Writer) *Console {
	c := &Console{
		out:   out,
		lines: make(chan string),
	}

	go c.scan(in)

	return c
}

func (c *Console) scan(in io.Reader) {
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		c.lines <- scanner.Text()
	}

	c.err = scanner.Err()
	if c.err == nil {
		c.err = io.EOF
	}
	close(c.lines)
}

// ReadLine blocks until a line arrives or ctx is done. It returns io.EOF once input is exhausted.
func (c *Console) ReadLine(ctx context.Context) (string, error) {
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case line, ok := <-c.lines:
		if !ok {
			return "", c.err
		}
		return line, nil
	}
}

func (c *Console) Notify(msg string) {
	c.Printf("%s\n", msg)
}

func (c *Console) Alert(msg string) {
	c.Printf("! %s\n", msg)
}

// Confirm asks a y/N question. Anything but an explicit yes, including EOF, is a no.
func (c *Console) Confirm(ctx context.Context, prompt string) bool {
	c.Printf("%s [y/N]: ", prompt)

	answer, err := c.ReadLine(ctx)
	if err != nil {
		c.Printf("\n")
		return false
	}

	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true
	default:
		return false
	}
}

func (c *Console) Printf(format string, args ...any) {
	c.mu.Lock()
	defer c.mu.Unlock()

	fmt.Fprintf(c.out, format, args...)
}

// Write lets renderers such as tabwriter print through the same lock.
func (c *Console) Write(p []byte) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.out.Write(p)
}
