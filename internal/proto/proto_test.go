package proto

import (
	"bytes"
	"testing"

	"github.com/croatoan/tucants/internal/board"
)

func TestPositionRoundTrip(t *testing.T) {
	want := board.NewStartingPosition()
	want.Score[board.White] = 3
	want.Score[board.Black] = 1
	want.Turn = board.Black

	var buf bytes.Buffer
	if err := WritePosition(&buf, want); err != nil {
		t.Fatalf("WritePosition: %v", err)
	}
	if got := buf.Len(); got != PositionBytes {
		t.Fatalf("encoded length = %d, want %d", got, PositionBytes)
	}

	got, err := ReadPosition(&buf)
	if err != nil {
		t.Fatalf("ReadPosition: %v", err)
	}
	if got.Board != want.Board {
		t.Error("board did not round-trip")
	}
	if got.Score != want.Score {
		t.Errorf("score = %v, want %v", got.Score, want.Score)
	}
	if got.Turn != want.Turn {
		t.Errorf("turn = %v, want %v", got.Turn, want.Turn)
	}
}

func TestMoveRoundTrip(t *testing.T) {
	want := board.NewMove(board.White, [2]int{2, 1}, [2]int{4, 3}, [2]int{6, 5})

	var buf bytes.Buffer
	if err := WriteMove(&buf, want); err != nil {
		t.Fatalf("WriteMove: %v", err)
	}
	if got := buf.Len(); got != MoveBytes {
		t.Fatalf("encoded length = %d, want %d", got, MoveBytes)
	}

	got, err := ReadMove(&buf)
	if err != nil {
		t.Fatalf("ReadMove: %v", err)
	}
	if got != want {
		t.Errorf("move = %+v, want %+v", got, want)
	}
}

func TestNullMoveRoundTripIsAllFFRows(t *testing.T) {
	want := board.NullMove(board.Black)

	var buf bytes.Buffer
	if err := WriteMove(&buf, want); err != nil {
		t.Fatalf("WriteMove: %v", err)
	}
	encoded := buf.Bytes()
	for i := 0; i < 6; i++ {
		if encoded[i] != 0xFF {
			t.Errorf("row byte %d = 0x%02X, want 0xFF", i, encoded[i])
		}
	}

	got, err := ReadMove(bytes.NewReader(encoded))
	if err != nil {
		t.Fatalf("ReadMove: %v", err)
	}
	if !got.IsNull() {
		t.Error("round-tripped null move should report IsNull")
	}
}

func TestNameRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteName(&buf, "croatoan"); err != nil {
		t.Fatalf("WriteName: %v", err)
	}
	if got := buf.Len(); got != NameBytes {
		t.Fatalf("encoded length = %d, want %d", got, NameBytes)
	}

	got, err := ReadName(&buf)
	if err != nil {
		t.Fatalf("ReadName: %v", err)
	}
	if got != "croatoan" {
		t.Errorf("name = %q, want %q", got, "croatoan")
	}
}

func TestNameTruncatedAtMaxLen(t *testing.T) {
	long := "this-name-is-way-too-long"
	var buf bytes.Buffer
	if err := WriteName(&buf, long); err != nil {
		t.Fatalf("WriteName: %v", err)
	}
	got, err := ReadName(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("ReadName: %v", err)
	}
	if len(got) > MaxNameLen {
		t.Errorf("len(name) = %d, want <= %d", len(got), MaxNameLen)
	}
	if got != long[:MaxNameLen] {
		t.Errorf("name = %q, want %q", got, long[:MaxNameLen])
	}
}

func TestReadTag(t *testing.T) {
	buf := bytes.NewReader([]byte{TagRequestMove})
	tag, err := ReadTag(buf)
	if err != nil {
		t.Fatalf("ReadTag: %v", err)
	}
	if tag != TagRequestMove {
		t.Errorf("tag = %d, want %d", tag, TagRequestMove)
	}
}
