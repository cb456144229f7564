// File: io.go
// Role: the binary wire format for StringAutomaton (an ImmutableAutomaton
// whose transitions carry DiscreteChar element distributions): fixed-size
// records in host byte order, written and read as exact inverses of each
// other for well-formed input.
//
// Grammar (pseudo-BNF):
//
//	Automaton     := f64(version_hash) i32(state_count) State{state_count}
//	                 i32(transition_count) Transition{transition_count}
//	                 i32(start_state_index) u8(is_epsilon_free)
//	State         := i32(first_transition) i32(last_transition) f64(end_weight_log)
//	Transition    := u8(has_distribution) [DiscreteChar?] f64(weight_log)
//	                 i32(destination_state) i32(group)
//	DiscreteChar  := i32(range_count) Range{range_count} f64(common_value_log)
//	Range         := i32(start_inclusive) i32(end_exclusive) f64(probability_log)
package automaton

import (
	"encoding/binary"
	"fmt"
	"io"
)

// wireVersionHash identifies this package's wire grammar. ReadAutomatonFrom
// rejects input whose leading f64 does not match.
const wireVersionHash float64 = 1.0

// wireWriter writes the primitive values of the grammar above in host byte
// order, tracking the first error so call sites can check once per record
// instead of after every field.
type wireWriter struct {
	w   io.Writer
	err error
}

func newWireWriter(w io.Writer) *wireWriter { return &wireWriter{w: w} }

func (w *wireWriter) writeInt32(v int32) error {
	if w.err != nil {
		return w.err
	}
	w.err = binary.Write(w.w, binary.NativeEndian, v)

	return w.err
}

func (w *wireWriter) writeFloat64(v float64) error {
	if w.err != nil {
		return w.err
	}
	w.err = binary.Write(w.w, binary.NativeEndian, v)

	return w.err
}

func (w *wireWriter) writeUint8(v uint8) error {
	if w.err != nil {
		return w.err
	}
	w.err = binary.Write(w.w, binary.NativeEndian, v)

	return w.err
}

// wireReader reads the primitive values of the grammar above in host byte
// order.
type wireReader struct {
	r io.Reader
}

func newWireReader(r io.Reader) *wireReader { return &wireReader{r: r} }

func (r *wireReader) readInt32() (int32, error) {
	var v int32
	if err := binary.Read(r.r, binary.NativeEndian, &v); err != nil {
		return 0, err
	}

	return v, nil
}

func (r *wireReader) readFloat64() (float64, error) {
	var v float64
	if err := binary.Read(r.r, binary.NativeEndian, &v); err != nil {
		return 0, err
	}

	return v, nil
}

func (r *wireReader) readUint8() (uint8, error) {
	var v uint8
	if err := binary.Read(r.r, binary.NativeEndian, &v); err != nil {
		return 0, err
	}

	return v, nil
}

// countingWriter tracks the number of bytes successfully written through
// it, so WriteTo can satisfy io.WriterTo's (int64, error) signature.
type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)

	return n, err
}

func writeState(w *wireWriter, st stateData) error {
	if err := w.writeInt32(st.firstTransition); err != nil {
		return err
	}
	if err := w.writeInt32(st.lastTransition); err != nil {
		return err
	}

	return w.writeFloat64(st.endWeight.LogValue())
}

func readState(r *wireReader) (stateData, error) {
	first, err := r.readInt32()
	if err != nil {
		return stateData{}, err
	}
	last, err := r.readInt32()
	if err != nil {
		return stateData{}, err
	}
	endLog, err := r.readFloat64()
	if err != nil {
		return stateData{}, err
	}

	return stateData{firstTransition: first, lastTransition: last, endWeight: FromLog(endLog)}, nil
}

// writeTransition encodes t. Its ElementDistribution, if present, must be
// a DiscreteChar: the wire format serializes StringAutomaton instances.
func writeTransition(w *wireWriter, t Transition) error {
	if t.IsEpsilon() {
		if err := w.writeUint8(0); err != nil {
			return err
		}
	} else {
		dc, ok := t.ElementDistribution.(DiscreteChar)
		if !ok {
			return fmt.Errorf("automaton: transition element distribution is not DiscreteChar: %w", ErrWireFormat)
		}
		if err := w.writeUint8(1); err != nil {
			return err
		}
		if err := writeDiscreteChar(w, dc); err != nil {
			return err
		}
	}

	if err := w.writeFloat64(t.Weight.LogValue()); err != nil {
		return err
	}
	if err := w.writeInt32(int32(t.DestinationState)); err != nil {
		return err
	}

	return w.writeInt32(int32(t.Group))
}

func readTransition(r *wireReader) (Transition, error) {
	hasDistribution, err := r.readUint8()
	if err != nil {
		return Transition{}, err
	}

	var dist ElementDistribution
	if hasDistribution != 0 {
		dc, err := readDiscreteChar(r)
		if err != nil {
			return Transition{}, err
		}
		dist = dc
	}

	weightLog, err := r.readFloat64()
	if err != nil {
		return Transition{}, err
	}
	dest, err := r.readInt32()
	if err != nil {
		return Transition{}, err
	}
	group, err := r.readInt32()
	if err != nil {
		return Transition{}, err
	}

	return Transition{
		ElementDistribution: dist,
		Weight:              FromLog(weightLog),
		DestinationState:    uint32(dest),
		Group:               uint32(group),
	}, nil
}

// WriteTo encodes a per the grammar documented on this file, writing to w
// and returning the number of bytes written.
func (a *ImmutableAutomaton) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: w}
	ww := newWireWriter(cw)

	ww.writeFloat64(wireVersionHash)
	ww.writeInt32(int32(len(a.states)))
	for _, st := range a.states {
		if err := writeState(ww, st); err != nil {
			ww.err = err
			break
		}
	}
	if ww.err == nil {
		ww.writeInt32(int32(len(a.transitions)))
		for _, t := range a.transitions {
			if err := writeTransition(ww, t); err != nil {
				ww.err = err
				break
			}
		}
	}
	ww.writeInt32(int32(a.startStateIndex))
	epsilonFree := uint8(0)
	if a.isEpsilonFree {
		epsilonFree = 1
	}
	ww.writeUint8(epsilonFree)

	if ww.err != nil {
		return cw.n, fmt.Errorf("ImmutableAutomaton.WriteTo: %w", ww.err)
	}

	return cw.n, nil
}

// ReadAutomatonFrom decodes an ImmutableAutomaton from r per the grammar
// documented on this file. It is the exact inverse of WriteTo for
// well-formed input.
func ReadAutomatonFrom(r io.Reader) (*ImmutableAutomaton, error) {
	rr := newWireReader(r)

	hash, err := rr.readFloat64()
	if err != nil {
		return nil, fmt.Errorf("ReadAutomatonFrom: %w", err)
	}
	if hash != wireVersionHash {
		return nil, fmt.Errorf("ReadAutomatonFrom: version hash %v: %w", hash, ErrWireFormat)
	}

	stateCount, err := rr.readInt32()
	if err != nil {
		return nil, fmt.Errorf("ReadAutomatonFrom: %w", err)
	}
	if stateCount < 0 {
		return nil, fmt.Errorf("ReadAutomatonFrom: negative state count %d: %w", stateCount, ErrWireFormat)
	}
	states := make([]stateData, 0, stateCount)
	for i := int32(0); i < stateCount; i++ {
		st, err := readState(rr)
		if err != nil {
			return nil, fmt.Errorf("ReadAutomatonFrom: state %d: %w", i, err)
		}
		states = append(states, st)
	}

	transitionCount, err := rr.readInt32()
	if err != nil {
		return nil, fmt.Errorf("ReadAutomatonFrom: %w", err)
	}
	if transitionCount < 0 {
		return nil, fmt.Errorf("ReadAutomatonFrom: negative transition count %d: %w", transitionCount, ErrWireFormat)
	}
	transitions := make([]Transition, 0, transitionCount)
	epsilonFree := true
	for i := int32(0); i < transitionCount; i++ {
		t, err := readTransition(rr)
		if err != nil {
			return nil, fmt.Errorf("ReadAutomatonFrom: transition %d: %w", i, err)
		}
		if t.IsEpsilon() {
			epsilonFree = false
		}
		transitions = append(transitions, t)
	}

	startIndex, err := rr.readInt32()
	if err != nil {
		return nil, fmt.Errorf("ReadAutomatonFrom: %w", err)
	}
	if startIndex < 0 || int(startIndex) >= len(states) {
		return nil, fmt.Errorf("ReadAutomatonFrom: start index %d: %w", startIndex, ErrInvalidStart)
	}

	isEpsilonFreeByte, err := rr.readUint8()
	if err != nil {
		return nil, fmt.Errorf("ReadAutomatonFrom: %w", err)
	}

	a := &ImmutableAutomaton{
		states:          states,
		transitions:     transitions,
		startStateIndex: uint32(startIndex),
		isEpsilonFree:   isEpsilonFreeByte != 0,
	}
	if a.isEpsilonFree != epsilonFree {
		return nil, fmt.Errorf("ReadAutomatonFrom: is_epsilon_free flag disagrees with decoded transitions: %w", ErrWireFormat)
	}

	return a, nil
}
