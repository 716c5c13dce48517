package channel

import "fmt"

// Policy holds the suspicion threshold.
// A threshold change takes effect on the dataset only after Apply.
type Policy struct {
	// threshold is the live value, possibly not yet applied.
	threshold int
	// applied is the threshold the dataset was last classified with.
	applied int
}

// NewPolicy returns a policy whose threshold is already applied.
func NewPolicy(threshold int) (*Policy, error) {
	if !validValue(threshold) {
		return nil, fmt.Errorf("threshold %d: %w", threshold, ErrValueOutOfRange)
	}

	return &Policy{
		threshold: threshold,
		applied:   threshold,
	}, nil
}

// Threshold returns the live threshold.
func (p *Policy) Threshold() int {
	return p.threshold
}

// Applied returns the threshold of the last classification.
func (p *Policy) Applied() int {
	return p.applied
}

// Pending reports whether the live threshold differs from the applied one.
func (p *Policy) Pending() bool {
	return p.threshold != p.applied
}

// SetThreshold stores a new live threshold without reclassifying anything.
func (p *Policy) SetThreshold(value int) error {
	if !validValue(value) {
		return fmt.Errorf("set threshold %d: %w", value, ErrValueOutOfRange)
	}

	p.threshold = value

	return nil
}

// Apply reclassifies every channel of d against the live threshold.
func (p *Policy) Apply(d *Dataset) {
	d.ReclassifyAll(p.threshold)
	p.applied = p.threshold
}
