package dungeon

import (
	"math"

	"github.com/tokendelve/excavator/pkg/errors"
)

// Prefix is the required token prefix.
const Prefix = "nft1"

// Token region indices. The count character sits directly after the prefix,
// the coordinate block directly after the count character.
const (
	countIndex = len(Prefix)
	coordStart = countIndex + 1
)

// CharNum maps an alphanumeric character to its numeric value: digits to 0–9,
// letters (case-insensitive) to 10–35. ok is false for anything else.
func CharNum(c byte) (n int, ok bool) {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0'), true
	case c >= 'a' && c <= 'z':
		return int(c-'a') + 10, true
	case c >= 'A' && c <= 'Z':
		return int(c-'A') + 10, true
	}
	return 0, false
}

// Decode parses a token into a dungeon record. All fields derived purely from
// the token are populated: room structure, bounding box, character statistics,
// and classification. Excavated is left nil; Generate fills it.
//
// Decode fails with a typed error when the token is structurally invalid. No
// partial record is returned on failure.
func Decode(token string) (*Dungeon, error) {
	if len(token) < len(Prefix) || token[:len(Prefix)] != Prefix {
		return nil, errors.New(errors.ErrCodeInvalidPrefix, "token must start with %q", Prefix)
	}
	if len(token) < coordStart {
		return nil, errors.New(errors.ErrCodeTokenTooShort, "token has no room count character")
	}

	countNum, ok := CharNum(token[countIndex])
	if !ok {
		return nil, errors.New(errors.ErrCodeInvalidCharacter,
			"room count character %q is not alphanumeric", token[countIndex])
	}
	roomCount := 2 + countNum

	// Coordinate and shape reads wrap cyclically over the token body after
	// the prefix and count character.
	wrapLen := len(token) - coordStart
	if wrapLen <= 0 {
		return nil, errors.New(errors.ErrCodeTokenTooShort,
			"token body after prefix and count is empty")
	}
	charAt := func(index int) byte {
		if index < len(token) {
			return token[index]
		}
		return token[coordStart+(index-coordStart)%wrapLen]
	}

	scale := math.Sqrt(float64(roomCount))

	centers := make([]Point, roomCount)
	for i := 0; i < roomCount; i++ {
		xc := charAt(coordStart + 2*i)
		yc := charAt(coordStart + 2*i + 1)
		xn, ok := CharNum(xc)
		if !ok {
			return nil, errors.New(errors.ErrCodeInvalidCharacter,
				"coordinate character %q is not alphanumeric", xc)
		}
		yn, ok := CharNum(yc)
		if !ok {
			return nil, errors.New(errors.ErrCodeInvalidCharacter,
				"coordinate character %q is not alphanumeric", yc)
		}
		centers[i] = Point{
			X: int(math.Round(float64(xn) * scale)),
			Y: int(math.Round(float64(yn) * scale)),
		}
	}

	sizes, area, err := decodeSizes(token, roomCount)
	if err != nil {
		return nil, err
	}

	shapeStart := coordStart + 2*roomCount
	shapes := make([]byte, roomCount)
	for i := 0; i < roomCount; i++ {
		shapes[i] = charAt(shapeStart + i)
	}

	freq, dominant := letterFrequency(token)

	return &Dungeon{
		Token:     token,
		RoomCount: roomCount,
		Centers:   centers,
		Sizes:     sizes,
		Shapes:    shapes,
		Bounds:    centerBounds(centers),
		Area:      area,
		Frequency: freq,
		Dominant:  dominant,
		Type:      BiomeFor(dominant),
		Level:     LevelFor(area),
	}, nil
}

// decodeSizes reads one size character per room from the token tail and
// accumulates the total room area.
func decodeSizes(token string, roomCount int) (sizes []int, area int, err error) {
	start := len(token) - roomCount
	if start < 0 {
		return nil, 0, errors.New(errors.ErrCodeIndexOutOfBounds,
			"token too short for %d size characters", roomCount)
	}

	rootPenalty := int(math.Round(math.Sqrt(float64(roomCount)) / 4))

	sizes = make([]int, roomCount)
	for i := 0; i < roomCount; i++ {
		c := token[start+i]
		n, ok := CharNum(c)
		if !ok {
			return nil, 0, errors.New(errors.ErrCodeInvalidCharacter,
				"size character %q is not alphanumeric", c)
		}
		size := 2 + int(math.Round(math.Sqrt(float64(n))*1.5)) - rootPenalty
		if size < 0 {
			return nil, 0, errors.New(errors.ErrCodeInvalidCharacter,
				"size character %q yields negative room size %d", c, size)
		}
		sizes[i] = size
		side := 2*size + 1
		area += side * side
	}
	return sizes, area, nil
}

// centerBounds computes the min/max extent of the room centers, padded by one
// cell on each side.
func centerBounds(centers []Point) Bounds {
	b := Bounds{
		MinX: centers[0].X, MaxX: centers[0].X,
		MinY: centers[0].Y, MaxY: centers[0].Y,
	}
	for _, p := range centers[1:] {
		if p.X < b.MinX {
			b.MinX = p.X
		}
		if p.X > b.MaxX {
			b.MaxX = p.X
		}
		if p.Y < b.MinY {
			b.MinY = p.Y
		}
		if p.Y > b.MaxY {
			b.MaxY = p.Y
		}
	}
	b.MinX--
	b.MaxX++
	b.MinY--
	b.MaxY++
	return b
}

// letterFrequency counts lowercase letters across the whole token and picks
// the dominant one. Ties are broken by first occurrence position in the token,
// never by map iteration order. dominant is 0 when no lowercase letter occurs.
func letterFrequency(token string) (freq map[byte]int, dominant byte) {
	freq = make(map[byte]int)
	max := 0
	for i := 0; i < len(token); i++ {
		c := token[i]
		if c < 'a' || c > 'z' {
			continue
		}
		freq[c]++
		if freq[c] > max {
			max = freq[c]
		}
	}
	if max == 0 {
		return freq, 0
	}
	for i := 0; i < len(token); i++ {
		c := token[i]
		if c >= 'a' && c <= 'z' && freq[c] == max {
			return freq, c
		}
	}
	return freq, 0
}
