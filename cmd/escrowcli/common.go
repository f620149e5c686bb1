package main

import (
	"encoding/binary"
	"io"

	"github.com/iov-one/redeem"
	"github.com/iov-one/redeem/errors"
	"github.com/iov-one/redeem/gconf"
	"github.com/iov-one/redeem/x/escrow"
)

// Messages passed between commands are serialized using protocol buffers.
// Each message is preceded by its size, so that several messages can be
// streamed one after another:
// https://developers.google.com/protocol-buffers/docs/techniques#streaming
const frameHeaderSize = 4

// maxFrameSize limits the size of a single message.
const maxFrameSize = 1 << 20

func writeFrame(w io.Writer, raw []byte) error {
	var size [frameHeaderSize]byte
	binary.BigEndian.PutUint32(size[:], uint32(len(raw)))
	if _, err := w.Write(size[:]); err != nil {
		return err
	}
	_, err := w.Write(raw)
	return err
}

func readFrame(r io.Reader) ([]byte, error) {
	var size [frameHeaderSize]byte
	if _, err := io.ReadFull(r, size[:]); err != nil {
		return nil, err
	}
	n := binary.BigEndian.Uint32(size[:])
	if n > maxFrameSize {
		return nil, errors.Wrapf(errors.ErrInput, "message of %d bytes too big", n)
	}
	raw := make([]byte, n)
	if _, err := io.ReadFull(r, raw); err != nil {
		return nil, err
	}
	return raw, nil
}

func writeTx(w io.Writer, tx *redeem.Tx) error {
	raw, err := redeem.EncodeTx(tx)
	if err != nil {
		return err
	}
	return writeFrame(w, raw)
}

func readTx(r io.Reader) (*redeem.Tx, error) {
	raw, err := readFrame(r)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrInput, "cannot read transaction: %s", err)
	}
	return redeem.DecodeTx(raw)
}

func writeClaim(w io.Writer, claim *escrow.Claim) error {
	raw, err := escrow.EncodeClaim(claim)
	if err != nil {
		return err
	}
	return writeFrame(w, raw)
}

func readClaim(r io.Reader) (*escrow.Claim, error) {
	raw, err := readFrame(r)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrInput, "cannot read claim: %s", err)
	}
	return escrow.DecodeClaim(raw)
}

// readRedemption reads a transaction followed by a claim, as written by the
// claim and sign commands.
func readRedemption(r io.Reader) (*redeem.Tx, *escrow.Claim, error) {
	tx, err := readTx(r)
	if err != nil {
		return nil, nil, err
	}
	claim, err := readClaim(r)
	if err != nil {
		return nil, nil, err
	}
	return tx, claim, nil
}

func writeRedemption(w io.Writer, tx *redeem.Tx, claim *escrow.Claim) error {
	if err := writeTx(w, tx); err != nil {
		return err
	}
	return writeClaim(w, claim)
}

func loadValidator(configPath string) (*escrow.Validator, error) {
	opts, err := gconf.LoadFile(configPath)
	if err != nil {
		return nil, err
	}
	return escrow.LoadValidator(opts)
}
