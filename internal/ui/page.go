package ui

// Link is a download affordance rendered into the status area.
type Link struct {
	Href  string
	Label string
}

// FormatButton is one of the page's format selectors.
type FormatButton interface {
	Format() string
	SetActive(active bool)
}

// Page is the markup the controller drives: drop/click target, file picker,
// format buttons, submit control and status area.
type Page interface {
	OpenFilePicker()
	SetFileLabel(name string)
	FormatButtons() []FormatButton
	SetSubmitEnabled(enabled bool)
	SetStatus(text string)
	SetResult(message string, link Link)
}
