package security

import (
	"encoding/json"
	"fmt"
	"testing"
)

func TestSecret_Redaction(t *testing.T) {
	s := FromString("hunter2")

	if got := s.String(); got != "[SECRET]" {
		t.Errorf("String: expected [SECRET], got %q", got)
	}
	if got := fmt.Sprintf("%v", s); got != "[SECRET]" {
		t.Errorf("%%v: expected [SECRET], got %q", got)
	}
	if got := fmt.Sprintf("%s", s); got != "[SECRET]" {
		t.Errorf("%%s: expected [SECRET], got %q", got)
	}

	data, err := json.Marshal(s)
	if err != nil {
		t.Fatalf("MarshalJSON failed: %v", err)
	}
	if string(data) != `"[SECRET]"` {
		t.Errorf("MarshalJSON: expected \"[SECRET]\", got %s", data)
	}

	text, err := s.MarshalText()
	if err != nil {
		t.Fatalf("MarshalText failed: %v", err)
	}
	if string(text) != "[SECRET]" {
		t.Errorf("MarshalText: expected [SECRET], got %q", text)
	}
}

func TestSecret_Bytes(t *testing.T) {
	s := FromString("hunter2")

	b := s.Bytes()
	if string(b) != "hunter2" {
		t.Errorf("expected underlying bytes, got %q", b)
	}

	// Bytes must return a copy
	b[0] = 'X'
	if string(s.Bytes()) != "hunter2" {
		t.Error("mutating the returned slice changed the secret")
	}
}

func TestSecret_Zero(t *testing.T) {
	s := FromString("hunter2")
	s.Zero()

	for i, b := range s {
		if b != 0 {
			t.Fatalf("byte %d not zeroed: %x", i, b)
		}
	}

	// Zero on nil must not panic
	var nilSecret Secret
	nilSecret.Zero()
}

func TestSecret_Use(t *testing.T) {
	s := FromString("hunter2")

	var seen string
	err := s.Use(func(b []byte) error {
		seen = string(b)
		return nil
	})
	if err != nil {
		t.Fatalf("Use failed: %v", err)
	}
	if seen != "hunter2" {
		t.Errorf("Use saw %q", seen)
	}

	wantErr := fmt.Errorf("boom")
	if err := s.Use(func([]byte) error { return wantErr }); err != wantErr {
		t.Errorf("Use should propagate the callback error, got %v", err)
	}
}

func TestFromBytes_Copies(t *testing.T) {
	in := []byte("hunter2")
	s := FromBytes(in)

	in[0] = 'X'
	if string(s.Bytes()) != "hunter2" {
		t.Error("FromBytes must copy its input")
	}
}
