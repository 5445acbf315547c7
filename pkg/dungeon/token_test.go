package dungeon

import (
	"testing"

	"github.com/tokendelve/excavator/pkg/errors"
)

// fullToken carries every region in range: prefix, count '0' (2 rooms),
// coordinates "0a1b", shapes "78", sizes "23" read from the tail.
const fullToken = "nft100a1b7823"

func TestDecodeFullToken(t *testing.T) {
	d, err := Decode(fullToken)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	if d.RoomCount != 2 {
		t.Errorf("RoomCount = %d, want 2", d.RoomCount)
	}

	// Coordinates scale by sqrt(2): '0'→0, 'a'→10→14, '1'→1→1, 'b'→11→16.
	wantCenters := []Point{{0, 14}, {1, 16}}
	for i, want := range wantCenters {
		if d.Centers[i] != want {
			t.Errorf("Centers[%d] = %v, want %v", i, d.Centers[i], want)
		}
	}

	// Sizes from tail "23" with zero root penalty: 2+round(sqrt(2)*1.5)=4,
	// 2+round(sqrt(3)*1.5)=5. Area = 9² + 11² = 202.
	if d.Sizes[0] != 4 || d.Sizes[1] != 5 {
		t.Errorf("Sizes = %v, want [4 5]", d.Sizes)
	}
	if d.Area != 202 {
		t.Errorf("Area = %d, want 202", d.Area)
	}

	if string(d.Shapes) != "78" {
		t.Errorf("Shapes = %q, want %q", d.Shapes, "78")
	}

	wantBounds := Bounds{MinX: -1, MaxX: 2, MinY: 13, MaxY: 17}
	if d.Bounds != wantBounds {
		t.Errorf("Bounds = %+v, want %+v", d.Bounds, wantBounds)
	}

	// Every lowercase letter occurs once; 'n' occurs first in the token.
	if d.Dominant != 'n' {
		t.Errorf("Dominant = %q, want 'n'", d.Dominant)
	}
	if d.Type != "Necropolis" {
		t.Errorf("Type = %q, want Necropolis", d.Type)
	}
	if d.Level != 1 {
		t.Errorf("Level = %d, want 1", d.Level)
	}
}

func TestDecodeRoomCountFromCountChar(t *testing.T) {
	tokens := []string{fullToken, "nft15abcdefghijklmn", "nft1zabcdefghijklmnopqrstuvwxyz0123456789"}
	for _, token := range tokens {
		d, err := Decode(token)
		if err != nil {
			t.Fatalf("Decode(%q) error = %v", token, err)
		}
		n, _ := CharNum(token[4])
		if d.RoomCount != 2+n {
			t.Errorf("Decode(%q).RoomCount = %d, want %d", token, d.RoomCount, 2+n)
		}
		if len(d.Centers) != d.RoomCount || len(d.Sizes) != d.RoomCount || len(d.Shapes) != d.RoomCount {
			t.Errorf("Decode(%q) sequence lengths = %d/%d/%d, want %d",
				token, len(d.Centers), len(d.Sizes), len(d.Shapes), d.RoomCount)
		}
	}
}

func TestDecodeCoordinateWraparound(t *testing.T) {
	// Count '3' gives 5 rooms but only "abc" remains after the count
	// character, so coordinate and shape reads cycle over those three bytes.
	d, err := Decode("nft13abc")
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if d.RoomCount != 5 {
		t.Fatalf("RoomCount = %d, want 5", d.RoomCount)
	}

	// Room 0 reads 'a','b' in range; room 1 reads 'c' then wraps to 'a'.
	// scale = sqrt(5): 'a'→10→22, 'b'→11→25, 'c'→12→27.
	wantCenters := []Point{{22, 25}, {27, 22}, {25, 27}, {22, 25}, {27, 22}}
	for i, want := range wantCenters {
		if d.Centers[i] != want {
			t.Errorf("Centers[%d] = %v, want %v", i, d.Centers[i], want)
		}
	}
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name  string
		token string
		code  errors.Code
	}{
		{"wrong prefix", "abc100a1b7823", errors.ErrCodeInvalidPrefix},
		{"empty", "", errors.ErrCodeInvalidPrefix},
		{"prefix only", "nft1", errors.ErrCodeTokenTooShort},
		{"count char not alphanumeric", "nft1!abc", errors.ErrCodeInvalidCharacter},
		{"empty wrap region", "nft10", errors.ErrCodeTokenTooShort},
		{"coordinate char not alphanumeric", "nft10!!", errors.ErrCodeInvalidCharacter},
		{"size char not alphanumeric", "nft100a1b78!3", errors.ErrCodeInvalidCharacter},
		{"size region before token start", "nft1zabc", errors.ErrCodeIndexOutOfBounds},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := Decode(tt.token)
			if err == nil {
				t.Fatalf("Decode(%q) = %+v, want error", tt.token, d)
			}
			if !errors.Is(err, tt.code) {
				t.Errorf("Decode(%q) error code = %q, want %q", tt.token, errors.GetCode(err), tt.code)
			}
			if d != nil {
				t.Errorf("Decode(%q) returned partial record on failure", tt.token)
			}
		})
	}
}

func TestCharNum(t *testing.T) {
	tests := []struct {
		c    byte
		n    int
		ok   bool
	}{
		{'0', 0, true},
		{'9', 9, true},
		{'a', 10, true},
		{'z', 35, true},
		{'A', 10, true},
		{'Z', 35, true},
		{'!', 0, false},
		{' ', 0, false},
	}
	for _, tt := range tests {
		n, ok := CharNum(tt.c)
		if n != tt.n || ok != tt.ok {
			t.Errorf("CharNum(%q) = (%d, %v), want (%d, %v)", tt.c, n, ok, tt.n, tt.ok)
		}
	}
}

func TestDominantTieBreakByFirstOccurrence(t *testing.T) {
	// 'q' and 'g' both occur twice after the prefix; together with the
	// prefix letters, 'n', 'f', 't' also reach two. 'n' occurs first.
	d, err := Decode("nft10qgqgnft")
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if d.Dominant != 'n' {
		t.Errorf("Dominant = %q, want 'n'", d.Dominant)
	}
}

func TestFrequencyCountsLowercaseOnly(t *testing.T) {
	d, err := Decode("nft10QQQQQxy")
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if _, ok := d.Frequency['Q']; ok {
		t.Error("Frequency counted an uppercase letter")
	}
	if _, ok := d.Frequency['q']; ok {
		t.Error("Frequency folded uppercase into lowercase")
	}
	if d.Frequency['x'] != 1 || d.Frequency['y'] != 1 {
		t.Errorf("Frequency = %v, want x:1 y:1 among letters", d.Frequency)
	}
}
