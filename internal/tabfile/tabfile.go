// Package tabfile reads and writes tableaux as YAML documents.
//
// A document lists the variable names, the basic variable of every row and
// the rows themselves as rational literals:
//
//	name: production plan
//	vars: [x, y, s1, s2]
//	basis: [z, s1, s2]
//	rows:
//	  - ["-3", "-5", "0", "0", "0"]
//	  - ["1", "0", "1", "0", "4"]
//	  - ["0", "2", "0", "1", "12"]
//
// Unknown keys and malformed cells are rejected; cell errors carry their
// coordinates.
package tabfile

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/pivotlab/rational"
	"github.com/katalvlaran/pivotlab/tableau"
)

// ErrNoRows is returned for a document without rows.
var ErrNoRows = errors.New("tabfile: document has no rows")

// Document is the on-disk form of a tableau.
type Document struct {
	Name       string   `yaml:"name,omitempty"`
	Vars       []string `yaml:"vars"`
	Basis      []string `yaml:"basis"`
	Artificial []string `yaml:"artificial,omitempty"`
	RHSLabel   string   `yaml:"rhs_label,omitempty"`
	Rows       []Row    `yaml:"rows"`
}

// Row is one tableau row of rational literals. It encodes in flow style so a
// document reads like the printed tableau.
type Row []string

// MarshalYAML emits the row as a flow sequence of quoted literals.
func (r Row) MarshalYAML() (any, error) {
	n := &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle}
	for _, lit := range r {
		n.Content = append(n.Content, &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: lit, Style: yaml.DoubleQuotedStyle})
	}

	return n, nil
}

// DocumentError describes a document that could not be turned into a tableau.
type DocumentError struct {
	File     string
	Row, Col int // -1 when the error is not about a cell
	Err      error
}

func (e *DocumentError) Error() string {
	loc := e.File
	if loc == "" {
		loc = "<input>"
	}
	if e.Row >= 0 {
		return fmt.Sprintf("%s: rows[%d][%d]: %v", loc, e.Row, e.Col, e.Err)
	}

	return fmt.Sprintf("%s: %v", loc, e.Err)
}

func (e *DocumentError) Unwrap() error { return e.Err }

// FromTableau captures t as a Document.
func FromTableau(t *tableau.Tableau) Document {
	header := t.Header()
	d := Document{
		Vars:       t.Vars(),
		Basis:      t.Basis(),
		Artificial: t.Artificial(),
	}
	for _, row := range t.View() {
		d.Rows = append(d.Rows, Row(row))
	}
	if label := header[len(header)-1]; label != tableau.DefaultRHSLabel {
		d.RHSLabel = label
	}

	return d
}

// Tableau builds the tableau described by d. Cells are parsed strictly.
func (d Document) Tableau() (*tableau.Tableau, error) {
	if len(d.Rows) == 0 {
		return nil, &DocumentError{Row: -1, Err: ErrNoRows}
	}
	cols := len(d.Rows[0])
	rows := make([][]rational.Rational, len(d.Rows))
	for i, lits := range d.Rows {
		rows[i] = make([]rational.Rational, len(lits))
		for j, lit := range lits {
			v, err := rational.Parse(lit)
			if err != nil {
				return nil, &DocumentError{Row: i, Col: j, Err: err}
			}
			rows[i][j] = v
		}
	}

	var opts []tableau.Option
	if len(d.Artificial) > 0 {
		opts = append(opts, tableau.WithArtificial(d.Artificial...))
	}
	if d.RHSLabel != "" {
		opts = append(opts, tableau.WithRHSLabel(d.RHSLabel))
	}
	t, err := tableau.New(len(rows), cols, rows, d.Vars, d.Basis, opts...)
	if err != nil {
		return nil, &DocumentError{Row: -1, Err: err}
	}

	return t, nil
}

// Decode reads one document from r and builds its tableau.
func Decode(r io.Reader) (*tableau.Tableau, Document, error) {
	var d Document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&d); err != nil {
		if errors.Is(err, io.EOF) {
			err = ErrNoRows
		}

		return nil, d, &DocumentError{Row: -1, Err: err}
	}
	t, err := d.Tableau()

	return t, d, err
}

// Encode writes t as a YAML document named name.
func Encode(w io.Writer, t *tableau.Tableau, name string) error {
	d := FromTableau(t)
	d.Name = name
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(d); err != nil {
		return err
	}

	return enc.Close()
}

// Load reads the document at path.
func Load(path string) (*tableau.Tableau, Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, Document{}, err
	}
	t, d, err := Decode(bytes.NewReader(data))
	var de *DocumentError
	if errors.As(err, &de) {
		de.File = path
	}

	return t, d, err
}

// Save writes t to path via a temporary file renamed into place.
func Save(path string, t *tableau.Tableau, name string) error {
	var buf bytes.Buffer
	if err := Encode(&buf, t, name); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".pivotlab-*.yaml")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err = tmp.Write(buf.Bytes()); err != nil {
		tmp.Close()

		return err
	}
	if err = tmp.Close(); err != nil {
		return err
	}

	return os.Rename(tmp.Name(), path)
}
