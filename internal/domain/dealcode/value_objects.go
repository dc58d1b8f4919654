package dealcode

import (
	"errors"
	"strings"
)

var ErrEmptyCode = errors.New("deal code is empty")

// Code is an opaque token displayed in upper case.
type Code string

func NewCode(s string) (Code, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if s == "" {
		return "", ErrEmptyCode
	}
	return Code(s), nil
}

func (c Code) String() string {
	return string(c)
}

const SourceNotAppreciatedFeedback = "not_appreciated_feedback"
