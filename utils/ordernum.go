package utils

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// NewOrderNumber returns a time-prefixed order number with a short random
// suffix, e.g. ORD-1735467200123-9F86D081. Uniqueness in practice is all
// that matters; the format itself carries no meaning.
func NewOrderNumber() string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
	return fmt.Sprintf("ORD-%d-%s", time.Now().UnixMilli(), suffix)
}
