// Package preflight checks uploads before they are forwarded for conversion.
package preflight

import (
	"errors"
	"fmt"

	"github.com/gen2brain/go-fitz"
)

var ErrInvalidPDF = errors.New("Invalid PDF file")

// Report describes a document that passed the check.
type Report struct {
	Pages int
}

type Checker struct {
	maxPages int
}

// New returns a checker. maxPages <= 0 disables the page limit.
func New(maxPages int) *Checker {
	return &Checker{maxPages: maxPages}
}

// Inspect opens data with MuPDF and makes sure it has at least one page.
func (c *Checker) Inspect(data []byte) (*Report, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty upload", ErrInvalidPDF)
	}

	doc, err := fitz.NewFromMemory(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPDF, err)
	}
	defer doc.Close()

	pages := doc.NumPage()
	if pages < 1 {
		return nil, fmt.Errorf("%w: no pages", ErrInvalidPDF)
	}
	if c.maxPages > 0 && pages > c.maxPages {
		return nil, fmt.Errorf("%w: %d pages exceeds limit of %d", ErrInvalidPDF, pages, c.maxPages)
	}
	return &Report{Pages: pages}, nil
}
