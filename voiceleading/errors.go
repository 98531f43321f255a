// SPDX-License-Identifier: MIT

package voiceleading

import "errors"

// ErrArityMismatch indicates operands with different numbers of voices.
var ErrArityMismatch = errors.New("voiceleading: arity mismatch")
