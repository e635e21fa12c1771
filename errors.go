package komand

import "github.com/cockroachdb/errors"

// Sentinel errors returned by declaration and parsing operations. Call
// sites wrap these with context, match them with errors.Is.
var (
	// ErrInvalidSpecification indicates a malformed argument declaration,
	// for example a mixed list of flags and names or an empty token.
	ErrInvalidSpecification = errors.New("invalid argument specification")

	// ErrDuplicateMatchToken indicates a name or flag that is already
	// registered on the parser.
	ErrDuplicateMatchToken = errors.New("duplicate match token")

	// ErrMissingFlagValue indicates a value flag at the end of the input
	// with no token left to consume.
	ErrMissingFlagValue = errors.New("missing flag value")

	// ErrUnexpectedToken indicates a positional token with no positional
	// specification left to bind it.
	ErrUnexpectedToken = errors.New("unexpected token")
)
