package domain

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Email represents an email address as a custom scalar type
type Email string

// UnmarshalGQL は GraphQL の値を Email に変換する。
func (e *Email) UnmarshalGQL(v any) error {
	s, ok := v.(string)
	if !ok {
		return fmt.Errorf("%vは文字列である必要があります", v)
	}

	// Simple validation: check if the email contains '@'
	if !strings.Contains(s, "@") {
		return fmt.Errorf("invalid email format: %s", s)
	}

	*e = Email(s)
	return nil
}

// MarshalGQL は Email を GraphQL の値に変換する。
func (e Email) MarshalGQL(w io.Writer) {
	fmt.Fprint(w, strconv.Quote(string(e)))
}

// String returns the string representation of the email
func (e Email) String() string {
	return string(e)
}
