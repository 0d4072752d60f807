// SPDX-License-Identifier: MIT
// Package: anvil-level-design/meshbuild
//
// errors.go — sentinel errors shared by every constructor.

package meshbuild

import "errors"

// ErrBadDimension is returned when a constructor dimension is below its
// documented minimum.
var ErrBadDimension = errors.New("meshbuild: dimension below minimum")
