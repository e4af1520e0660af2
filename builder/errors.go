// SPDX-License-Identifier: MIT
// Package: vdconquest/builder
package builder

import "errors"

// ErrUnknownMesh indicates Build was called with a Name outside the
// enumerated constants.
var ErrUnknownMesh = errors.New("builder: unknown mesh name")
