// Copyright (c) 2017 Temple3x (temple3x@gmail.com)
//
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package gjinverse

import "errors"

var (
	ErrDivisionByZero = errors.New("gjinverse: division by zero")
	ErrSingular       = errors.New("gjinverse: matrix is singular")
	ErrWorkerFailure  = errors.New("gjinverse: worker failure")
	ErrInterrupted    = errors.New("gjinverse: interrupted")
	ErrNotSquare      = errors.New("gjinverse: matrix is not square")
	ErrInvalidRoot    = errors.New("gjinverse: invalid field root")
)
