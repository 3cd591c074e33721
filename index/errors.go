package index

import "errors"

// ErrDescriptor is the sentinel for spec.md §7 kind 7 (DescriptorError):
// fatal on session start.
var ErrDescriptor = errors.New("index: descriptor missing or malformed")
