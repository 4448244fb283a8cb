package api

import "strings"

// Validate checks a submission before it is sent.
func (s *SnippetSubmission) Validate() error {
	if strings.TrimSpace(s.Title) == "" {
		return ErrTitleRequired
	}

	if strings.TrimSpace(s.Code) == "" {
		return ErrEmptyCode
	}

	if _, err := ParseVisibility(string(s.Visibility)); err != nil {
		return err
	}

	return nil
}
