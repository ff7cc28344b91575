package transport

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

const (
	envelopeHeaderSize = 5

	flagCompressed byte = 0b01
	flagEndStream  byte = 0b10

	maxEnvelopeSize = 16 << 20
)

var errCompressedEnvelope = errors.New("compressed envelopes are not supported")

// envelope is one length-prefixed frame of a Connect streaming body.
type envelope struct {
	flags byte
	data  []byte
}

func (e envelope) endStream() bool {
	return e.flags&flagEndStream != 0
}

func writeEnvelope(w io.Writer, flags byte, data []byte) error {
	var hdr [envelopeHeaderSize]byte
	hdr[0] = flags
	binary.BigEndian.PutUint32(hdr[1:], uint32(len(data)))
	if _, err := w.Write(hdr[:]); err != nil {
		return err
	}
	_, err := w.Write(data)
	return err
}

func marshalEnvelope(flags byte, data []byte) []byte {
	out := make([]byte, envelopeHeaderSize+len(data))
	out[0] = flags
	binary.BigEndian.PutUint32(out[1:], uint32(len(data)))
	copy(out[envelopeHeaderSize:], data)
	return out
}

// readEnvelope returns io.EOF only when r ends exactly on a frame boundary.
func readEnvelope(r io.Reader) (envelope, error) {
	var hdr [envelopeHeaderSize]byte
	if _, err := io.ReadFull(r, hdr[:]); err != nil {
		if errors.Is(err, io.ErrUnexpectedEOF) {
			return envelope{}, fmt.Errorf("truncated envelope header: %w", err)
		}
		return envelope{}, err
	}

	flags := hdr[0]
	if flags&flagCompressed != 0 {
		return envelope{}, errCompressedEnvelope
	}

	size := binary.BigEndian.Uint32(hdr[1:])
	if size > maxEnvelopeSize {
		return envelope{}, fmt.Errorf("envelope of %d bytes exceeds limit", size)
	}

	data := make([]byte, size)
	if _, err := io.ReadFull(r, data); err != nil {
		if errors.Is(err, io.EOF) {
			err = io.ErrUnexpectedEOF
		}
		return envelope{}, fmt.Errorf("truncated envelope body: %w", err)
	}
	return envelope{flags: flags, data: data}, nil
}

// ReadEnvelope reads one uncompressed, non-terminal message frame from r.
func ReadEnvelope(r io.Reader) ([]byte, error) {
	env, err := readEnvelope(r)
	if err != nil {
		return nil, err
	}
	if env.endStream() {
		return nil, errors.New("unexpected end-stream frame")
	}
	return env.data, nil
}

// WriteEnvelope frames data as one Connect streaming message.
func WriteEnvelope(w io.Writer, data []byte) error {
	return writeEnvelope(w, 0, data)
}

// WriteEndStream writes the terminating frame of a Connect stream. A nil
// callErr ends the stream successfully.
func WriteEndStream(w io.Writer, codec Codec, callErr *CallError) error {
	end := endStreamMessage{}
	if callErr != nil {
		end.Error = &wireError{Code: callErr.Code, Message: callErr.Message}
	}
	data, err := codec.Marshal(end)
	if err != nil {
		return err
	}
	return writeEnvelope(w, flagEndStream, data)
}

func isEOF(err error) bool {
	return errors.Is(err, io.EOF)
}
