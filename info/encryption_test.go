package info

import (
	"errors"
	"testing"
)

func TestParseEncryption(t *testing.T) {
	t.Parallel()

	docinfo := parse("Encrypted: yes (print:yes copy:no change:no addNotes:no algorithm:AES-256)\n")

	enc, err := docinfo.Encryption()
	if err != nil {
		t.Fatal(err)
	}

	if !enc.Enabled() {
		t.Error("encryption not enabled")
	}

	if !enc.PrintAllowed() {
		t.Error("print should be allowed")
	}

	if enc.CopyAllowed() {
		t.Error("copy should not be allowed")
	}

	if enc.ChangeAllowed() {
		t.Error("change should not be allowed")
	}

	if enc.AddNotesAllowed() {
		t.Error("addNotes should not be allowed")
	}

	if enc.Algorithm() != "AES-256" {
		t.Errorf("wrong algorithm, want %q, got %q", "AES-256", enc.Algorithm())
	}
}

func TestParseEncryptionDefaults(t *testing.T) {
	t.Parallel()

	// a permission pdfinfo does not report counts as allowed
	enc, err := parseEncryption("yes ()")
	if err != nil {
		t.Fatal(err)
	}

	if !enc.PrintAllowed() || !enc.CopyAllowed() || !enc.ChangeAllowed() || !enc.AddNotesAllowed() {
		t.Error("missing options should default to allowed")
	}

	if enc.Algorithm() != "" {
		t.Errorf("unexpected algorithm %q", enc.Algorithm())
	}
}

func TestParseEncryptionMalformed(t *testing.T) {
	t.Parallel()

	var tests = []struct {
		name string
		raw  string
	}{
		{name: "unencrypted", raw: "no"},
		{name: "empty", raw: ""},
		{name: "missing parens", raw: "yes print:yes"},
		{name: "unterminated", raw: "yes (print:yes"},
	}

	for _, test := range tests {
		test := test

		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			_, err := parseEncryption(test.raw)
			if !errors.Is(err, ErrMalformedEncryption) {
				t.Errorf("want ErrMalformedEncryption, got %v", err)
			}
		})
	}
}
