// Package proto implements the Tucants referee wire format: a
// single-byte message tag followed by a fixed-width payload. Framing is
// a thin I/O boundary, built directly on net.Conn/io.ReadFull rather
// than a framed-message library like gorilla/websocket, since the
// protocol is a raw byte stream over a plain TCP socket, not an HTTP
// upgrade. The fixed-width decoding style is grounded on
// hailam-chessplay/internal/book/book.go (io.ReadFull into a
// fixed-size array, field-by-field slicing).
package proto

import (
	"io"

	"github.com/pkg/errors"

	"github.com/croatoan/tucants/internal/board"
)

// Message tags.
const (
	TagNewPosition         byte = 1
	TagColorWhite          byte = 2
	TagColorBlack          byte = 3
	TagRequestMove         byte = 4
	TagPrepareReceiveMove  byte = 5
	TagRequestName         byte = 6
	TagQuit                byte = 7
)

// Byte widths.
const (
	PositionBytes = board.Rows*board.Cols + 2 + 1 // 99
	MoveBytes     = 12 + 1                        // 13
	NameBytes     = 17
	MaxNameLen    = 16
)

// ReadTag reads the single-byte message tag that begins every inbound
// message.
func ReadTag(r io.Reader) (byte, error) {
	var buf [1]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, errors.Wrap(err, "proto: read tag")
	}
	return buf[0], nil
}

// ReadPosition decodes a 99-byte Position payload: 12x8 board tiles,
// then score[White], score[Black], then turn.
func ReadPosition(r io.Reader) (board.Position, error) {
	var buf [PositionBytes]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return board.Position{}, errors.Wrap(err, "proto: read position")
	}

	var pos board.Position
	i := 0
	for row := 0; row < board.Rows; row++ {
		for col := 0; col < board.Cols; col++ {
			pos.Board.Set(row, col, board.Tile(buf[i]))
			i++
		}
	}
	pos.Score[board.White] = int(buf[i])
	pos.Score[board.Black] = int(buf[i+1])
	pos.Turn = board.Tile(buf[i+2])
	return pos, nil
}

// WritePosition encodes pos in the same 99-byte layout ReadPosition
// expects.
func WritePosition(w io.Writer, pos board.Position) error {
	var buf [PositionBytes]byte
	i := 0
	for row := 0; row < board.Rows; row++ {
		for col := 0; col < board.Cols; col++ {
			buf[i] = byte(pos.Board.Get(row, col))
			i++
		}
	}
	buf[i] = byte(pos.Score[board.White])
	buf[i+1] = byte(pos.Score[board.Black])
	buf[i+2] = byte(pos.Turn)

	_, err := w.Write(buf[:])
	return errors.Wrap(err, "proto: write position")
}

// ReadMove decodes a 13-byte Move payload: 6 row bytes, 6 col bytes,
// then color. A null move is encoded with every row byte 0xFF.
func ReadMove(r io.Reader) (board.Move, error) {
	var buf [MoveBytes]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return board.Move{}, errors.Wrap(err, "proto: read move")
	}

	m := board.Move{Color: board.Tile(buf[12])}
	for i := 0; i < 6; i++ {
		m.Row[i] = int8(buf[i])
		m.Col[i] = int8(buf[6+i])
	}
	return m, nil
}

// WriteMove encodes m in the same 13-byte layout ReadMove expects.
func WriteMove(w io.Writer, m board.Move) error {
	var buf [MoveBytes]byte
	for i := 0; i < 6; i++ {
		buf[i] = byte(m.Row[i])
		buf[6+i] = byte(m.Col[i])
	}
	buf[12] = byte(m.Color)

	_, err := w.Write(buf[:])
	return errors.Wrap(err, "proto: write move")
}

// WriteName encodes name into the 17-byte fixed Name payload: up to 16
// bytes of name followed by a zero terminator, zero-padded.
func WriteName(w io.Writer, name string) error {
	if len(name) > MaxNameLen {
		name = name[:MaxNameLen]
	}
	var buf [NameBytes]byte
	copy(buf[:], name)

	_, err := w.Write(buf[:])
	return errors.Wrap(err, "proto: write name")
}

// ReadName decodes a 17-byte Name payload back to a string, trimming
// the terminator and any trailing padding.
func ReadName(r io.Reader) (string, error) {
	var buf [NameBytes]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return "", errors.Wrap(err, "proto: read name")
	}
	n := 0
	for n < len(buf) && buf[n] != 0 {
		n++
	}
	return string(buf[:n]), nil
}
