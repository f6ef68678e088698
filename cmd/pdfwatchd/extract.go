package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/docpipe/poppler/info"
	"github.com/docpipe/poppler/pdf"
	"github.com/docpipe/poppler/text"
)

const sidecarFileMode = 0644

// Extracter reads PDFs from a channel and writes their text next to
// them.
type Extracter struct {
	TextDir  string
	Password pdf.Password

	log logrus.FieldLogger
}

// SetLogger updates the logger to use.
func (s *Extracter) SetLogger(logger logrus.FieldLogger) {
	s.log = logger.WithField("component", "extracter")
}

func (s *Extracter) Run(ctx context.Context, inFiles <-chan string) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case filename := <-inFiles:
			err := s.processFile(ctx, filename)
			if err != nil {
				s.log.WithField("filename", filename).Warnf("error: %v", err)
			}
		}
	}
}

func (s *Extracter) processFile(ctx context.Context, filename string) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("read %v: %w", filename, err)
	}

	log := s.log.WithField("filename", filename)

	docinfo, err := info.Extract(ctx, data, info.Args{Password: s.Password})
	if err != nil {
		return fmt.Errorf("pdfinfo for %v failed: %w", filename, err)
	}

	pages, err := docinfo.Pages()
	if err != nil {
		return fmt.Errorf("page count for %v: %w", filename, err)
	}

	content, err := text.AllPages(ctx, data, text.Args{Password: s.Password})
	if err != nil {
		return fmt.Errorf("extract text from %v failed: %w", filename, err)
	}

	base := strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	target := filepath.Join(s.TextDir, base+".txt")

	err = os.WriteFile(target, []byte(content), sidecarFileMode)
	if err != nil {
		return fmt.Errorf("write %v: %w", target, err)
	}

	log.WithField("pages", pages).WithField("title", docinfo.Title()).Printf("extracted text to %v", target)

	return nil
}
