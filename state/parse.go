package state

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// ParseError reports a malformed input record. Parsing is strict so that
// the routing engines never see a bad record.
type ParseError struct {
	File string
	Line int
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s:%d: %v", e.File, e.Line, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

func parseLines(r io.Reader, name string, record func(line string, num int) error) error {
	scanner := bufio.NewScanner(r)
	num := 0
	for scanner.Scan() {
		num++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if err := record(line, num); err != nil {
			return &ParseError{File: name, Line: num, Err: err}
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading %s: %w", name, err)
	}
	return nil
}

func parseCost(s string) (Cost, error) {
	c, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("cost %q is not an integer", s)
	}
	return Cost(c), nil
}

// ParseTopology reads "<a> <b> <cost>" records, one symmetric link per
// line. Costs must be non-negative.
func ParseTopology(r io.Reader, name string) ([]Link, error) {
	var links []Link
	err := parseLines(r, name, func(line string, _ int) error {
		fields := strings.Fields(line)
		if len(fields) != 3 {
			return fmt.Errorf("expected 3 fields, got %d", len(fields))
		}
		cost, err := parseCost(fields[2])
		if err != nil {
			return err
		}
		if cost < 0 {
			return fmt.Errorf("link cost %d is negative", cost)
		}
		links = append(links, Link{A: NodeId(fields[0]), B: NodeId(fields[1]), Cost: cost})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return links, nil
}

// ParseMessages reads "<source> <destination> <text...>" records. The text
// is the remainder of the line, passed through verbatim.
func ParseMessages(r io.Reader, name string) ([]Message, error) {
	var msgs []Message
	err := parseLines(r, name, func(line string, _ int) error {
		fields := strings.SplitN(line, " ", 3)
		if len(fields) != 3 {
			return fmt.Errorf("expected source, destination and text, got %d fields", len(fields))
		}
		msgs = append(msgs, Message{Source: NodeId(fields[0]), Dest: NodeId(fields[1]), Text: fields[2]})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return msgs, nil
}

// ParseChanges reads "<a> <b> <cost>" records. RemoveLinkCost is the only
// negative cost accepted.
func ParseChanges(r io.Reader, name string) ([]Change, error) {
	var changes []Change
	err := parseLines(r, name, func(line string, _ int) error {
		fields := strings.Fields(line)
		if len(fields) != 3 {
			return fmt.Errorf("expected 3 fields, got %d", len(fields))
		}
		cost, err := parseCost(fields[2])
		if err != nil {
			return err
		}
		if cost < 0 && cost != RemoveLinkCost {
			return fmt.Errorf("change cost %d is negative and not the removal sentinel %d", cost, RemoveLinkCost)
		}
		changes = append(changes, Change{A: NodeId(fields[0]), B: NodeId(fields[1]), Cost: cost})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return changes, nil
}

func LoadTopology(path string) ([]Link, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ParseTopology(f, path)
}

func LoadMessages(path string) ([]Message, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ParseMessages(f, path)
}

func LoadChanges(path string) ([]Change, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ParseChanges(f, path)
}
