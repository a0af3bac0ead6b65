package models

import (
	"fmt"
	"path/filepath"
	"strings"
)

const (
	FormatDOCX = "docx"
	FormatCSV  = "csv"
	FormatXLSX = "xlsx"
)

// Formats lists the output formats the conversion service accepts.
var Formats = []string{FormatDOCX, FormatCSV, FormatXLSX}

// ConvertRequest represents a single upload for the convert endpoint
type ConvertRequest struct {
	FileName string
	Format   string
	Data     []byte
}

func (r ConvertRequest) Validate() error {
	if r.FileName == "" {
		return fmt.Errorf("No file selected")
	}
	if !IsPDF(r.FileName) {
		return fmt.Errorf("Only PDF files allowed")
	}
	if !IsFormat(r.Format) {
		return fmt.Errorf("Invalid format")
	}
	return nil
}

// OutputName is the suggested download name for the converted artifact.
func (r ConvertRequest) OutputName() string {
	base := filepath.Base(r.FileName)
	return strings.TrimSuffix(base, filepath.Ext(base)) + "." + r.Format
}

func IsPDF(name string) bool {
	return strings.EqualFold(filepath.Ext(name), ".pdf")
}

func IsFormat(format string) bool {
	for _, f := range Formats {
		if f == format {
			return true
		}
	}
	return false
}

type ConvertResponse struct {
	Filename    string `json:"filename" example:"report.docx"`
	DownloadURL string `json:"download_url" example:"/download/4f1c_report.docx"`
	PreviewURL  string `json:"preview_url,omitempty" example:"/preview_output/4f1c_report.docx"`
	Format      string `json:"format,omitempty" example:"docx"`
}

type ErrorResponse struct {
	Error string `json:"error,omitempty" example:"Invalid format"`
}
