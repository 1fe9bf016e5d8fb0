package common

import (
	"errors"
	"strings"
	"unicode/utf8"
)

// MaxContentLength matches the size of the tweets.content column.
const MaxContentLength = 255

func ValidateContent(content string) error {
	if strings.TrimSpace(content) == "" {
		return errors.New("content must not be empty")
	}

	if utf8.RuneCountInString(content) > MaxContentLength {
		return errors.New("content must be at most 255 characters")
	}

	return nil
}

func ValidateFileRef(file string) error {
	if strings.TrimSpace(file) == "" {
		return errors.New("file reference is required")
	}

	if len(file) > 255 {
		return errors.New("file reference is too long")
	}

	return nil
}
