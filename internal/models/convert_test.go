package models

import "testing"

func TestConvertRequestValidate(t *testing.T) {
	tests := []struct {
		name    string
		req     ConvertRequest
		wantErr string
	}{
		{"ok", ConvertRequest{FileName: "report.pdf", Format: FormatDOCX}, ""},
		{"upper ext", ConvertRequest{FileName: "REPORT.PDF", Format: FormatCSV}, ""},
		{"no name", ConvertRequest{Format: FormatDOCX}, "No file selected"},
		{"not pdf", ConvertRequest{FileName: "notes.txt", Format: FormatDOCX}, "Only PDF files allowed"},
		{"bad format", ConvertRequest{FileName: "report.pdf", Format: "odt"}, "Invalid format"},
		{"empty format", ConvertRequest{FileName: "report.pdf"}, "Invalid format"},
	}

	for _, tt := range tests {
		err := tt.req.Validate()
		if tt.wantErr == "" {
			if err != nil {
				t.Errorf("%s: unexpected error %v", tt.name, err)
			}
			continue
		}
		if err == nil || err.Error() != tt.wantErr {
			t.Errorf("%s: got %v, want %q", tt.name, err, tt.wantErr)
		}
	}
}

func TestOutputName(t *testing.T) {
	req := ConvertRequest{FileName: "dir/report.v2.pdf", Format: FormatXLSX}
	if got := req.OutputName(); got != "report.v2.xlsx" {
		t.Fatalf("OutputName() = %q", got)
	}
}
