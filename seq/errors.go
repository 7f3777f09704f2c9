// SPDX-License-Identifier: EPL-2.0

package seq

import "errors"

var (
	ErrTickOverflow = errors.New("ticker send failure: tick channel full")
)
