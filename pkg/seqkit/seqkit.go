// Package seqkit provides deferred execution transforms over sequence.Sequence values.
package seqkit

import "go.llib.dev/frameless/pkg/errorkit"

// ErrInvalidArgument is returned synchronously when a transform receives an unusable argument.
const ErrInvalidArgument errorkit.Error = "seqkit: invalid argument"
