package delivery

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"deliveryconnect/internal/pkg/errs"
	"deliveryconnect/internal/pkg/guard"
)

// idPrefix is the wire prefix of every delivery identifier.
const idPrefix = "DEL-"

// ErrIDIsNotConstructed is returned when attempting to use an improperly
// initialized ID. IDs must be created via NewID or ParseID.
var ErrIDIsNotConstructed = errs.NewValueIsRequiredError(
	"delivery ID must be created via NewID or ParseID constructors")

// ID identifies a delivery. The wire format is "DEL-<millisecond epoch>",
// derived from the creation instant. IDs are immutable and globally unique
// within the delivery collection.
type ID struct {
	value string
	guard guard.ConstructorGuard
}

// NewID derives a delivery identifier from the creation timestamp.
func NewID(createdAt time.Time) ID {
	return ID{
		value: fmt.Sprintf("%s%d", idPrefix, createdAt.UnixMilli()),
		guard: guard.NewConstructorGuard(),
	}
}

// ParseID validates and wraps an identifier received from the outside,
// such as a scanned handoff payload or an HTTP path parameter.
func ParseID(s string) (ID, error) {
	raw, ok := strings.CutPrefix(s, idPrefix)
	if !ok {
		return ID{}, errs.NewValueIsInvalidErrorWithCause("deliveryId",
			fmt.Errorf("%q does not start with %q", s, idPrefix))
	}

	if _, err := strconv.ParseInt(raw, 10, 64); err != nil || raw == "" {
		return ID{}, errs.NewValueIsInvalidErrorWithCause("deliveryId",
			fmt.Errorf("%q does not carry a numeric timestamp", s))
	}

	return ID{
		value: s,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// String returns the wire form of the identifier.
func (id ID) String() string {
	return id.value
}

// IsEqual compares two identifiers by value.
func (id ID) IsEqual(other ID) bool {
	return id.value == other.value
}

// Validate returns ErrIDIsNotConstructed for the zero value.
func (id ID) Validate() error {
	return id.guard.Validate(ErrIDIsNotConstructed)
}
