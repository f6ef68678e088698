package info

import (
	"errors"
	"strings"
)

// ErrMalformedEncryption is returned when the "Encrypted" field does
// not follow the "yes (print:yes copy:no ... algorithm:AES-256)" form.
var ErrMalformedEncryption = errors.New("malformed encryption options")

// Encryption is the parsed form of pdfinfo's "Encrypted" field. A
// permission that pdfinfo did not report counts as allowed.
type Encryption struct {
	enabled bool
	options map[string]string
}

// Encryption parses the encryption details from the "Encrypted" field.
func (i *Info) Encryption() (*Encryption, error) {
	return parseEncryption(i.fields["Encrypted"])
}

func parseEncryption(raw string) (*Encryption, error) {
	enabled, options, ok := strings.Cut(raw, " ")
	if !ok {
		return nil, ErrMalformedEncryption
	}

	options, ok = strings.CutPrefix(options, "(")
	if !ok {
		return nil, ErrMalformedEncryption
	}

	options, ok = strings.CutSuffix(options, ")")
	if !ok {
		return nil, ErrMalformedEncryption
	}

	enc := &Encryption{
		enabled: enabled == "yes",
		options: make(map[string]string),
	}

	for _, part := range strings.Fields(options) {
		key, value, ok := strings.Cut(part, ":")
		if !ok {
			continue
		}

		enc.options[key] = value
	}

	return enc, nil
}

// Enabled reports whether encryption is enabled.
func (e *Encryption) Enabled() bool {
	return e.enabled
}

func (e *Encryption) allowed(key string) bool {
	value, ok := e.options[key]
	if !ok {
		return true
	}

	return value == "yes"
}

func (e *Encryption) PrintAllowed() bool    { return e.allowed("print") }
func (e *Encryption) CopyAllowed() bool     { return e.allowed("copy") }
func (e *Encryption) ChangeAllowed() bool   { return e.allowed("change") }
func (e *Encryption) AddNotesAllowed() bool { return e.allowed("addNotes") }

// Algorithm returns the encryption algorithm name, e.g. "AES-256".
func (e *Encryption) Algorithm() string {
	return e.options["algorithm"]
}
