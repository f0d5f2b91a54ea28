package ipc

import (
	"fmt"
	"io"
)

// MaxFrameSize is the largest payload the 4-ASCII-digit decimal length
// prefix can address.
const MaxFrameSize = 9999

// WriteFrame writes a 4-digit zero-padded decimal length prefix followed
// by payload. It returns an error if payload exceeds MaxFrameSize rather
// than silently truncating the length.
func WriteFrame(w io.Writer, payload []byte) error {
	if len(payload) > MaxFrameSize {
		return fmt.Errorf("payload of %d bytes exceeds the %d-byte frame limit", len(payload), MaxFrameSize)
	}
	prefix := fmt.Sprintf("%04d", len(payload))
	if _, err := io.WriteString(w, prefix); err != nil {
		return fmt.Errorf("writing frame length: %w", err)
	}
	if _, err := w.Write(payload); err != nil {
		return fmt.Errorf("writing frame payload: %w", err)
	}
	return nil
}

// ReadFrame reads one length-prefixed frame from r: four ASCII decimal
// digits followed by exactly that many bytes.
func ReadFrame(r io.Reader) ([]byte, error) {
	var lenBuf [4]byte
	if _, err := io.ReadFull(r, lenBuf[:]); err != nil {
		return nil, err
	}
	var n int
	for _, b := range lenBuf {
		if b < '0' || b > '9' {
			return nil, fmt.Errorf("invalid frame length prefix %q", lenBuf)
		}
		n = n*10 + int(b-'0')
	}
	payload := make([]byte, n)
	if _, err := io.ReadFull(r, payload); err != nil {
		return nil, fmt.Errorf("reading frame payload: %w", err)
	}
	return payload, nil
}
