// Package scenario loads simulation inputs and formats simulation output.
//
// Three plain-text input formats are supported, one record per line:
// topology and changes files carry whitespace-separated "node1 node2 cost"
// triples, the message file carries "from to payload" where the payload is the
// rest of the line. A malformed line fails the whole load with an error naming
// the file and line; nothing is skipped silently.
package scenario

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/routelab/routesim/state"
)

// ParseLinks reads "node1 node2 cost" triples. Used for both the topology file
// and the changes file, which share the shape.
func ParseLinks(r io.Reader, name string) ([]state.Link, error) {
	var links []state.Link
	err := eachLine(r, name, func(lineNo int, fields []string, rest string) error {
		if len(fields) != 3 {
			return fmt.Errorf("want 3 fields, got %d", len(fields))
		}
		a, err := parseNode(fields[0])
		if err != nil {
			return err
		}
		b, err := parseNode(fields[1])
		if err != nil {
			return err
		}
		cost, err := strconv.Atoi(fields[2])
		if err != nil {
			return fmt.Errorf("bad cost %q", fields[2])
		}
		links = append(links, state.Link{A: a, B: b, Cost: cost})
		return nil
	})
	return links, err
}

// ParseMessages reads "from to payload" lines, preserving order and payload
// text (leading whitespace trimmed).
func ParseMessages(r io.Reader, name string) ([]state.Message, error) {
	var msgs []state.Message
	err := eachLine(r, name, func(lineNo int, fields []string, rest string) error {
		if len(fields) < 2 {
			return fmt.Errorf("want source and destination, got %d fields", len(fields))
		}
		from, err := parseNode(fields[0])
		if err != nil {
			return err
		}
		to, err := parseNode(fields[1])
		if err != nil {
			return err
		}
		msgs = append(msgs, state.Message{From: from, To: to, Payload: rest})
		return nil
	})
	return msgs, err
}

// LoadLinksFile and LoadMessagesFile are the os.ReadFile-shaped conveniences
// the CLI uses.
func LoadLinksFile(path string) ([]state.Link, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ParseLinks(f, path)
}

func LoadMessagesFile(path string) ([]state.Message, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ParseMessages(f, path)
}

// eachLine feeds every non-blank line to fn as (line number, leading fields,
// remainder after the second field) and wraps any error with file and line.
func eachLine(r io.Reader, name string, fn func(lineNo int, fields []string, rest string) error) error {
	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := sc.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		fields := strings.Fields(line)
		rest := restAfter(line, 2)
		if err := fn(lineNo, fields, rest); err != nil {
			return fmt.Errorf("%s:%d: %w", name, lineNo, err)
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	return nil
}

// restAfter returns the text following the first n whitespace-separated
// fields, with leading whitespace trimmed.
func restAfter(line string, n int) string {
	s := line
	for j := 0; j < n; j++ {
		s = strings.TrimLeft(s, " \t")
		i := strings.IndexAny(s, " \t")
		if i < 0 {
			return ""
		}
		s = s[i:]
	}
	return strings.TrimLeft(s, " \t")
}

func parseNode(s string) (state.NodeId, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("bad node id %q", s)
	}
	return state.NodeId(n), nil
}
