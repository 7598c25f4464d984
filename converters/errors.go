// SPDX-License-Identifier: MIT

package converters

import "errors"

// ErrUnsupported is returned for tensors that are not 2-D or whose element
// type has no numeric mapping.
var ErrUnsupported = errors.New("converters: unsupported tensor")
