// Package topology ingests CAIDA-style AS-relationship files into an
// asgraph.Graph, validates the result is a single connected AS-graph, and
// implements the deployment-selection strategies trials draw on.
package topology

import (
	"bufio"
	"compress/bzip2"
	"compress/gzip"
	"errors"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/Emeline-1/bgpsecsim/asgraph"
)

// reader opens filename transparently decompressing .gz and .bz2 suffixes,
// matching the CAIDA distribution's own packaging of as-rel/ppdc files.
type reader struct {
	filename string
	fp       io.ReadCloser
	body     io.Reader
	toClose  io.ReadCloser // bzip2.Reader has no Close method of its own
}

func newReader(filename string) *reader {
	return &reader{filename: filename}
}

func (r *reader) Open() error {
	var err error
	r.fp, err = os.Open(r.filename)
	if err != nil {
		return errors.New("topology: " + err.Error())
	}
	switch {
	case strings.HasSuffix(r.filename, ".gz"):
		gz, err := gzip.NewReader(r.fp)
		if err != nil {
			r.fp.Close()
			return errors.New("topology: " + err.Error())
		}
		r.toClose = gz
		r.body = gz
	case strings.HasSuffix(r.filename, ".bz2"):
		r.body = bzip2.NewReader(r.fp)
	default:
		r.body = r.fp
	}
	return nil
}

func (r *reader) Scanner() *bufio.Scanner { return bufio.NewScanner(r.body) }

func (r *reader) Close() {
	r.fp.Close()
	if r.toClose != nil {
		r.toClose.Close()
	}
}

// ParseASRel reads a CAIDA as-rel file and returns the edges it describes.
// Each non-comment line is either:
//
//	<provider-as>|<customer-as>|-1
//	<peer-as>|<peer-as>|0
//
// A p2c line yields one CUSTOMER edge with the provider as A (from the
// provider's point of view the neighbor is its customer — see
// asgraph.Edge); a peer line yields one PEER edge. Blank lines and lines containing "#"
// are skipped.
func ParseASRel(filename string) ([]asgraph.Edge, error) {
	r := newReader(filename)
	if err := r.Open(); err != nil {
		return nil, err
	}
	defer r.Close()

	var edges []asgraph.Edge
	scanner := r.Scanner()
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if line == "" || strings.Contains(line, "#") {
			continue
		}
		fields := strings.Split(line, "|")
		if len(fields) < 3 {
			return nil, &asgraph.GraphError{Op: "ParseASRel", Message: "malformed line " + strconv.Itoa(lineNo) + " in " + filename}
		}
		a, err := parseASID(fields[0])
		if err != nil {
			return nil, &asgraph.GraphError{Op: "ParseASRel", Message: err.Error() + " on line " + strconv.Itoa(lineNo)}
		}
		b, err := parseASID(fields[1])
		if err != nil {
			return nil, &asgraph.GraphError{Op: "ParseASRel", Message: err.Error() + " on line " + strconv.Itoa(lineNo)}
		}
		switch fields[2] {
		case "0":
			edges = append(edges, asgraph.Edge{A: a, B: b, Rel: asgraph.PEER})
		case "-1":
			// fields[0] provides to fields[1]: from fields[0]'s side that
			// neighbor is a CUSTOMER.
			edges = append(edges, asgraph.Edge{A: a, B: b, Rel: asgraph.CUSTOMER})
		default:
			return nil, &asgraph.GraphError{Op: "ParseASRel", Message: "unknown relation code " + fields[2] + " on line " + strconv.Itoa(lineNo)}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, &asgraph.GraphError{Op: "ParseASRel", Message: err.Error()}
	}
	log.Printf("topology: parsed %d edges from %s", len(edges), filename)
	return edges, nil
}

func parseASID(field string) (asgraph.ASID, error) {
	n, err := strconv.ParseUint(field, 10, 32)
	if err != nil {
		return 0, errors.New("invalid AS id " + field)
	}
	return asgraph.ASID(n), nil
}

// LoadGraph parses filename and builds an asgraph.Graph from the resulting
// edges, in one step.
func LoadGraph(filename string) (*asgraph.Graph, error) {
	edges, err := ParseASRel(filename)
	if err != nil {
		return nil, err
	}
	return asgraph.New(edges)
}
