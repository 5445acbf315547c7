package token

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/tokendelve/excavator/pkg/dungeon"
)

func TestMintShapeAndDeterminism(t *testing.T) {
	tok := Mint(rand.New(rand.NewSource(11)))

	if !strings.HasPrefix(tok, dungeon.Prefix) {
		t.Errorf("token %q missing prefix %q", tok, dungeon.Prefix)
	}
	if len(tok) != len(dungeon.Prefix)+BodyLength {
		t.Errorf("token length = %d, want %d", len(tok), len(dungeon.Prefix)+BodyLength)
	}
	for i := len(dungeon.Prefix); i < len(tok); i++ {
		if _, ok := dungeon.CharNum(tok[i]); !ok {
			t.Errorf("token byte %q at %d is not base62", tok[i], i)
		}
	}

	again := Mint(rand.New(rand.NewSource(11)))
	if tok != again {
		t.Errorf("same seed minted %q and %q", tok, again)
	}
}

func TestMintNRaisesTinyLengths(t *testing.T) {
	tok := MintN(rand.New(rand.NewSource(1)), 0)
	if len(tok) != len(dungeon.Prefix)+1 {
		t.Errorf("token length = %d, want prefix+1", len(tok))
	}
}

func TestMintedTokensDecode(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	for i := 0; i < 50; i++ {
		tok := Mint(rng)
		if _, err := dungeon.Decode(tok); err != nil {
			t.Fatalf("minted token %q failed to decode: %v", tok, err)
		}
	}
}

func TestValid(t *testing.T) {
	if !Valid(Mint(rand.New(rand.NewSource(5)))) {
		t.Error("minted token reported invalid")
	}
	if Valid("not-a-token") {
		t.Error("garbage reported valid")
	}
}
