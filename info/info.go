// Package info wraps the pdfinfo tool. It feeds the document bytes to
// pdfinfo over stdin and parses the line oriented "Key: Value" output
// into an Info with typed accessors.
package info

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/docpipe/poppler/pdf"
)

const tool = "pdfinfo"

// ErrPageCountUnknown is returned when the "Pages" field is missing or
// not an integer, which usually means the document is broken.
var ErrPageCountUnknown = errors.New("page count is missing or invalid")

// Args holds the options passed through to pdfinfo.
type Args struct {
	Password pdf.Password
}

func (a Args) buildArgs() []string {
	// "-" makes pdfinfo read the document from stdin
	args := []string{"-"}

	return a.Password.AppendArgs(args)
}

// Info holds the fields reported by pdfinfo for a single document. It
// is not modified after Extract returns.
type Info struct {
	fields map[string]string
}

// Extract runs pdfinfo over the document bytes.
func Extract(ctx context.Context, data []byte, args Args) (*Info, error) {
	out, err := pdf.Run(ctx, tool, data, args.Password.IsSet(), args.buildArgs()...)
	if err != nil {
		return nil, err
	}

	return parse(string(out)), nil
}

// parse splits each output line at the first colon. Lines without a
// colon are skipped, unknown keys are kept and reachable via Field.
func parse(output string) *Info {
	fields := make(map[string]string)

	for _, line := range strings.Split(output, "\n") {
		key, value, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}

		fields[key] = strings.TrimLeft(value, " \t")
	}

	return &Info{fields: fields}
}

// Field returns the raw value for a pdfinfo key.
func (i *Info) Field(key string) (string, bool) {
	value, ok := i.fields[key]

	return value, ok
}

// Fields returns a copy of all parsed fields.
func (i *Info) Fields() map[string]string {
	fields := make(map[string]string, len(i.fields))
	for key, value := range i.fields {
		fields[key] = value
	}

	return fields
}

func (i *Info) str(key string) string {
	return i.fields[key]
}

func (i *Info) boolean(key string) bool {
	return i.fields[key] == "yes"
}

// Pages returns the number of pages in the document.
func (i *Info) Pages() (int, error) {
	value, ok := i.fields["Pages"]
	if !ok {
		return 0, fmt.Errorf("%w: field not present", ErrPageCountUnknown)
	}

	pages, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrPageCountUnknown, err)
	}

	return pages, nil
}

func (i *Info) Title() string    { return i.str("Title") }
func (i *Info) Subject() string  { return i.str("Subject") }
func (i *Info) Keywords() string { return i.str("Keywords") }
func (i *Info) Author() string   { return i.str("Author") }
func (i *Info) Creator() string  { return i.str("Creator") }
func (i *Info) Producer() string { return i.str("Producer") }

// CreationDate returns the creation date as pdfinfo printed it.
func (i *Info) CreationDate() string { return i.str("CreationDate") }

// ModDate returns the modification date as pdfinfo printed it.
func (i *Info) ModDate() string { return i.str("ModDate") }

func (i *Info) Form() string       { return i.str("Form") }
func (i *Info) PageSize() string   { return i.str("Page size") }
func (i *Info) PageRot() string    { return i.str("Page rot") }
func (i *Info) FileSize() string   { return i.str("File size") }
func (i *Info) PDFVersion() string { return i.str("PDF version") }

func (i *Info) CustomMetadata() bool { return i.boolean("Custom Metadata") }
func (i *Info) MetadataStream() bool { return i.boolean("Metadata Stream") }
func (i *Info) Tagged() bool         { return i.boolean("Tagged") }
func (i *Info) UserProperties() bool { return i.boolean("UserProperties") }
func (i *Info) Suspects() bool       { return i.boolean("Suspects") }
func (i *Info) JavaScript() bool     { return i.boolean("JavaScript") }
func (i *Info) Optimized() bool      { return i.boolean("Optimized") }

// Encrypted reports whether the document is encrypted. The raw field
// carries the permission options behind the leading "yes".
func (i *Info) Encrypted() bool {
	return strings.HasPrefix(i.fields["Encrypted"], "yes")
}

// EncryptionRaw returns the unparsed "Encrypted" field.
func (i *Info) EncryptionRaw() string {
	return i.str("Encrypted")
}
