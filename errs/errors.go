// Package errs centralizes the sentinel errors used across this module, so
// callers can compare with errors.Is instead of matching on message strings.
package errs

import "errors"

// Decoder-level errors (decoder, stream packages).
var (
	// ErrInvalidHeaderLine is never returned by the header parser itself
	// (parsing never fails, per spec), but is available for strict callers
	// that want to reject a line that matched no known form.
	ErrInvalidHeaderLine = errors.New("evt3: unrecognized header line")
)

// Sink-level errors (sink package).
var (
	ErrInvalidFieldOrder  = errors.New("evt3/sink: field order must name exactly x, y, p (or pol/polarity), and t (or time/timestamp) once each")
	ErrUnknownFieldName   = errors.New("evt3/sink: unknown field name")
	ErrDuplicateFieldName = errors.New("evt3/sink: duplicate field name")
)

// Compress-level errors (compress package).
var (
	ErrUnknownCodec    = errors.New("evt3/compress: unknown codec")
	ErrBufferTooLarge  = errors.New("evt3/compress: decompressed size exceeds safety limit")
	ErrEmptyCompressed = errors.New("evt3/compress: empty compressed input")
)

// DecodeErrorKind classifies a DecodeError the way the file driver reports
// failures to its caller (spec §6/§7).
type DecodeErrorKind uint8

const (
	// KindIo wraps any I/O failure encountered while reading the input.
	KindIo DecodeErrorKind = iota
	// KindInvalidFormat is reserved for future use; the current decoder
	// never produces it (malformed words are silently skipped).
	KindInvalidFormat
	// KindUnexpectedEof is reserved; the current implementation treats EOF
	// as normal stream termination.
	KindUnexpectedEof
)

func (k DecodeErrorKind) String() string {
	switch k {
	case KindIo:
		return "io"
	case KindInvalidFormat:
		return "invalid_format"
	case KindUnexpectedEof:
		return "unexpected_eof"
	default:
		return "unknown"
	}
}

// DecodeError is the error type returned by the buffered file driver.
//
// Only KindIo is ever produced by this decoder today; KindInvalidFormat and
// KindUnexpectedEof are reserved for future use and kept here so that
// higher layers can already switch on DecodeErrorKind without churn later.
type DecodeError struct {
	Kind DecodeErrorKind
	Err  error
}

func (e *DecodeError) Error() string {
	if e.Err == nil {
		return "evt3: " + e.Kind.String()
	}

	return "evt3: " + e.Kind.String() + ": " + e.Err.Error()
}

// Unwrap allows errors.Is/errors.As to see through to the underlying error.
func (e *DecodeError) Unwrap() error {
	return e.Err
}

// NewIoError wraps an I/O failure from the buffered file driver.
func NewIoError(err error) *DecodeError {
	return &DecodeError{Kind: KindIo, Err: err}
}

// NewInvalidFormatError wraps a reserved, currently-unused error path.
func NewInvalidFormatError(msg string) *DecodeError {
	return &DecodeError{Kind: KindInvalidFormat, Err: errors.New(msg)}
}
