package service

// Dialog is the create/edit dialog state of one entity type
type Dialog[T any] struct {
	Open    bool `json:"open"`
	Editing *T   `json:"editing,omitempty"`
	Fields  T    `json:"fields"`
}

// Creating reports whether the dialog is open for a new entity
func (d Dialog[T]) Creating() bool {
	return d.Open && d.Editing == nil
}

// ClosePolicy tells when a submitted dialog closes
type ClosePolicy int

const (
	// CloseOnSubmit closes the dialog as soon as the form is sent
	CloseOnSubmit ClosePolicy = iota
	// CloseOnConfirm closes the dialog when the backend has answered
	CloseOnConfirm
)

// Selection is a select field whose default follows an option list that may arrive late.
// Until the user picks a value explicitly, the selection falls back to the first option
// whenever the options change.
type Selection struct {
	value    string
	explicit bool
}

// Value returns the selected option
func (s *Selection) Value() string {
	return s.value
}

// Explicit reports whether the value was chosen rather than defaulted
func (s *Selection) Explicit() bool {
	return s.explicit
}

// Choose sets value as the user's choice
func (s *Selection) Choose(value string) {
	s.value = value
	s.explicit = true
}

// Reset forgets any choice
func (s *Selection) Reset() {
	s.value = ""
	s.explicit = false
}

// Sync re-derives the default from options and returns the selected value
func (s *Selection) Sync(options []string) string {
	if s.explicit {
		return s.value
	}
	for _, opt := range options {
		if opt == s.value && s.value != "" {
			return s.value
		}
	}
	s.value = ""
	if len(options) > 0 {
		s.value = options[0]
	}
	return s.value
}
