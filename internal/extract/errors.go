// Package extract turns raw VCF records into normalized, labeled
// variants for one VCF/BAM pair.
package extract

import "fmt"

// ConfigError reports a bad or missing input specification. It is
// raised before any record of the affected file is read.
type ConfigError struct {
	Msg string
	Err error
}

func (e *ConfigError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("config error: %s: %v", e.Msg, e.Err)
	}
	return "config error: " + e.Msg
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// UnsupportedInputError reports a structurally valid file that
// violates a supported-shape constraint.
type UnsupportedInputError struct {
	Path   string
	Reason string
}

func (e *UnsupportedInputError) Error() string {
	return fmt.Sprintf("unsupported input %s: %s", e.Path, e.Reason)
}

// MalformedRecordError reports a record that failed a hard validation.
// It aborts the whole collection build; malformed records are never
// silently dropped or partially included.
type MalformedRecordError struct {
	Path   string
	Record string
	Reason string
	Err    error
}

func (e *MalformedRecordError) Error() string {
	msg := fmt.Sprintf("malformed record %s in %s: %s", e.Record, e.Path, e.Reason)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *MalformedRecordError) Unwrap() error {
	return e.Err
}
