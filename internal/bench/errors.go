package bench

import "fmt"

// ConfigurationError reports invalid Mark or Press configuration before
// any candidate has run.
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid benchmark configuration: %s", e.Reason)
}

// EquivalenceError reports that two candidates produced different outputs.
// Timing results are withheld entirely when this is returned.
type EquivalenceError struct {
	Reference string // candidate whose output is the baseline
	Offender  string // candidate whose output differed
	Reason    string
}

func (e *EquivalenceError) Error() string {
	return fmt.Sprintf("candidates %q and %q produced different outputs: %s", e.Reference, e.Offender, e.Reason)
}

// ExecutionError reports that a candidate invocation itself failed.
type ExecutionError struct {
	Candidate string
	Err       error
}

func (e *ExecutionError) Error() string {
	return fmt.Sprintf("candidate %q failed: %v", e.Candidate, e.Err)
}

func (e *ExecutionError) Unwrap() error { return e.Err }

// UnsupportedLayoutError reports a plot layout the renderer does not know.
type UnsupportedLayoutError struct {
	Layout string
}

func (e *UnsupportedLayoutError) Error() string {
	return fmt.Sprintf("unsupported plot layout %q", e.Layout)
}
