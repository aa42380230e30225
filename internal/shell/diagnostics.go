package shell

import (
	"errors"
	"strings"

	"github.com/mesh-intelligence/hbnb/pkg/types"
)

// Diagnostic lines printed for each error class.
const (
	diagClassMissing     = "** class name missing **"
	diagClassUnknown     = "** class doesn't exist **"
	diagIDMissing        = "** instance id missing **"
	diagNoInstance       = "** no instance found **"
	diagAttributeMissing = "** attribute name missing **"
	diagValueMissing     = "** value missing **"
	diagAttributeFixed   = "** attribute can't be updated **"
)

// diagnose converts an error into its one-line diagnostic.
func diagnose(err error) string {
	switch {
	case errors.Is(err, types.ErrMissingTypeName):
		return diagClassMissing
	case errors.Is(err, types.ErrUnknownType):
		return diagClassUnknown
	case errors.Is(err, types.ErrMissingID):
		return diagIDMissing
	case errors.Is(err, types.ErrUnknownID):
		return diagNoInstance
	case errors.Is(err, types.ErrMissingField):
		return diagAttributeMissing
	case errors.Is(err, types.ErrMissingValue):
		return diagValueMissing
	case errors.Is(err, types.ErrReservedField):
		return diagAttributeFixed
	case errors.Is(err, types.ErrInvalidField):
		return "** invalid value: " + detail(err, types.ErrInvalidField) + " **"
	default:
		return "** " + err.Error() + " **"
	}
}

// detail drops the sentinel's own text from err's message.
func detail(err, sentinel error) string {
	msg := err.Error()
	trimmed := strings.TrimPrefix(msg, sentinel.Error()+": ")
	if trimmed == "" {
		return msg
	}
	return trimmed
}
