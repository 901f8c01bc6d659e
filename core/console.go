package core

import (
	"bufio"
	"errors"
	"io"
	"strings"
)

// Console is where Print writes and where Input reads from.
type Console interface {
	// ReadLine blocks until a full line is available and returns it
	// without the line terminator.
	ReadLine() (string, error)
	// WriteLine writes s followed by a newline.
	WriteLine(s string) error
}

type streamConsole struct {
	r *bufio.Reader
	w io.Writer
}

// NewConsole creates a console reading lines from r and writing to w.
func NewConsole(r io.Reader, w io.Writer) Console {
	return &streamConsole{r: bufio.NewReader(r), w: w}
}

func (c *streamConsole) ReadLine() (string, error) {
	line, err := c.r.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimSuffix(line, "\r"), nil
		}
		return "", err
	}

	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")

	return line, nil
}

func (c *streamConsole) WriteLine(s string) error {
	_, err := io.WriteString(c.w, s+"\n")
	return err
}
