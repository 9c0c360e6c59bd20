package tokenizer

import (
	"errors"

	"github.com/temirov/dirdump/internal/utils"
)

// ErrNilCounter is returned when counting without a Counter.
var ErrNilCounter = errors.New("nil tokenizer counter")

// CountBytes estimates tokens for data. Data that is not valid UTF-8 counts as zero tokens.
func CountBytes(counter Counter, data []byte) (int, error) {
	if counter == nil {
		return 0, ErrNilCounter
	}
	if !utils.IsValidUTF8(data) {
		return 0, nil
	}
	return counter.CountString(string(data))
}
