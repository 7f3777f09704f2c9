// SPDX-License-Identifier: EPL-2.0

package tone

import "errors"

var (
	ErrTableTooLong = errors.New("tone table too long")
)
