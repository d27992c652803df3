package circuit

import (
	"bytes"
	"fmt"
	"io"

	"github.com/fxamacker/cbor/v2"
)

// serialized circuit layout; version guards future format changes.
type circuitRaw struct {
	Version     uint32  `cbor:"v"`
	NumQubits   int     `cbor:"n"`
	Gates       []Gate  `cbor:"g"`
	GlobalPhase float64 `cbor:"p"`
}

const serializationVersion = 1

// WriteTo serializes the circuit in CBOR.
func (c *Circuit) WriteTo(w io.Writer) (int64, error) {
	raw := circuitRaw{
		Version:     serializationVersion,
		NumQubits:   c.numQubits,
		Gates:       c.gates,
		GlobalPhase: c.globalPhase,
	}
	var buf bytes.Buffer
	if err := cbor.NewEncoder(&buf).Encode(raw); err != nil {
		return 0, fmt.Errorf("circuit: encode: %w", err)
	}
	n, err := w.Write(buf.Bytes())
	return int64(n), err
}

// ReadFrom deserializes a circuit previously written with WriteTo,
// replacing the receiver's contents.
func (c *Circuit) ReadFrom(r io.Reader) (int64, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return int64(len(data)), err
	}
	var raw circuitRaw
	if err := cbor.Unmarshal(data, &raw); err != nil {
		return int64(len(data)), fmt.Errorf("circuit: decode: %w", err)
	}
	if raw.Version != serializationVersion {
		return int64(len(data)), fmt.Errorf("circuit: unsupported serialization version %d", raw.Version)
	}
	if raw.NumQubits <= 0 {
		return int64(len(data)), fmt.Errorf("circuit: invalid qubit count %d", raw.NumQubits)
	}
	c.numQubits = raw.NumQubits
	c.gates = raw.Gates
	c.globalPhase = raw.GlobalPhase
	return int64(len(data)), nil
}
