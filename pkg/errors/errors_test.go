package errors

import (
	stderrors "errors"
	"fmt"
	"testing"
)

func TestNewFormatsMessage(t *testing.T) {
	err := New(ErrCodeInvalidPrefix, "token %q does not start with %q", "abc", "nft1")

	if got, want := err.Code, ErrCodeInvalidPrefix; got != want {
		t.Errorf("Code = %q, want %q", got, want)
	}
	if got, want := err.Error(), `INVALID_PREFIX: token "abc" does not start with "nft1"`; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestWrapPreservesCause(t *testing.T) {
	cause := stderrors.New("disk full")
	err := Wrap(ErrCodeInternal, cause, "write artifact %s", "map.svg")

	if !stderrors.Is(err, cause) {
		t.Error("wrapped error should match its cause via errors.Is")
	}
	if got := err.Error(); got != "INTERNAL_ERROR: write artifact map.svg: disk full" {
		t.Errorf("Error() = %q", got)
	}
}

func TestIsMatchesCode(t *testing.T) {
	err := New(ErrCodeTokenTooShort, "token too short")

	if !Is(err, ErrCodeTokenTooShort) {
		t.Error("Is() should match the error's own code")
	}
	if Is(err, ErrCodeNotFound) {
		t.Error("Is() should not match a different code")
	}
	if Is(stderrors.New("plain"), ErrCodeTokenTooShort) {
		t.Error("Is() should not match a plain error")
	}
}

func TestIsMatchesThroughWrapping(t *testing.T) {
	inner := New(ErrCodeInvalidCharacter, "bad character")
	outer := fmt.Errorf("decode: %w", inner)

	if !Is(outer, ErrCodeInvalidCharacter) {
		t.Error("Is() should unwrap fmt.Errorf chains")
	}
	if got, want := GetCode(outer), ErrCodeInvalidCharacter; got != want {
		t.Errorf("GetCode() = %q, want %q", got, want)
	}
}

func TestGetCodeOnPlainError(t *testing.T) {
	if got := GetCode(stderrors.New("plain")); got != "" {
		t.Errorf("GetCode() = %q, want empty", got)
	}
}

func TestUserMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "structured error strips code",
			err:  New(ErrCodeInvalidSeed, "invalid seed: %q", "banana"),
			want: `invalid seed: "banana"`,
		},
		{
			name: "plain error passes through",
			err:  stderrors.New("plain failure"),
			want: "plain failure",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := UserMessage(tt.err); got != tt.want {
				t.Errorf("UserMessage() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestIsDecodeError(t *testing.T) {
	tests := []struct {
		code Code
		want bool
	}{
		{ErrCodeInvalidPrefix, true},
		{ErrCodeTokenTooShort, true},
		{ErrCodeInvalidCharacter, true},
		{ErrCodeIndexOutOfBounds, true},
		{ErrCodeScatterCapacity, false},
		{ErrCodeNotFound, false},
		{ErrCodeInternal, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			if got := IsDecodeError(New(tt.code, "x")); got != tt.want {
				t.Errorf("IsDecodeError(%s) = %v, want %v", tt.code, got, tt.want)
			}
		})
	}

	if IsDecodeError(stderrors.New("plain")) {
		t.Error("IsDecodeError should be false for plain errors")
	}
}
