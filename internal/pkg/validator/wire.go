package validator

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrUnexpectedShape marks an upstream payload that does not match the
// expected schema.
var ErrUnexpectedShape = errors.New("unexpected data shape")

// ShapeError carries the field problems found while ingesting one upstream
// payload. It matches ErrUnexpectedShape with errors.Is.
type ShapeError struct {
	Source string
	Errs   ValidationErrors
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("%s: %s: %s", ErrUnexpectedShape, e.Source, e.Errs.Error())
}

func (e *ShapeError) Is(target error) bool {
	return target == ErrUnexpectedShape
}

// NewShapeError wraps errs, or returns nil when there are none.
func NewShapeError(source string, errs ValidationErrors) error {
	if len(errs) == 0 {
		return nil
	}
	return &ShapeError{Source: source, Errs: errs}
}

// LooseString decodes a JSON string or number into its string form.
// JSON null decodes to the empty string.
type LooseString string

func (s *LooseString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*s = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var v string
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		*s = LooseString(v)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("expected string or number, got %s", data)
	}
	*s = LooseString(n.String())
	return nil
}

func (s LooseString) String() string {
	return string(s)
}

// LooseInt decodes a JSON integer or an integer held in a string.
type LooseInt int

func (i *LooseInt) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var v string
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("expected integer, got %q", v)
		}
		*i = LooseInt(n)
		return nil
	}
	var n int
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("expected integer, got %s", data)
	}
	*i = LooseInt(n)
	return nil
}
