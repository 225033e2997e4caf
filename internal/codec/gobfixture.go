package codec

import (
	"bytes"
	"encoding/gob"
)

// gobBuffer is a Writer/Reader pair backed by encoding/gob and an
// in-memory buffer. It exists solely as a round-trip test fixture: the
// spec treats the columnar codec as an external collaborator, and gob
// is not a columnar format, so this type is never the production
// persistence path — see DESIGN.md.
type gobBuffer struct {
	buf bytes.Buffer
}

// NewGobFixture returns a Writer+Reader pair for use in tests that need
// a concrete load(save(G)) round trip without a real columnar backend.
func NewGobFixture() interface {
	Writer
	Reader
} {
	return &gobBuffer{}
}

func (g *gobBuffer) Write(s Snapshot) error {
	g.buf.Reset()
	return gob.NewEncoder(&g.buf).Encode(s)
}

func (g *gobBuffer) Read() (Snapshot, error) {
	var s Snapshot
	err := gob.NewDecoder(bytes.NewReader(g.buf.Bytes())).Decode(&s)
	return s, err
}
