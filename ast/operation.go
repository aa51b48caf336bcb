/*
 * Basalt - A smart contract language for the Ethereum Virtual Machine
 *
 * Copyright Basalt Foundation
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *   http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package ast

import (
	"github.com/basalt-lang/basalt/errors"
)

type Operation uint

const (
	OperationUnknown Operation = iota
	OperationOr
	OperationAnd
	OperationEqual
	OperationNotEqual
	OperationLess
	OperationGreater
	OperationLessEqual
	OperationGreaterEqual
	OperationPlus
	OperationMinus
	OperationMul
	OperationDiv
	OperationMod
	OperationNot
	OperationBitwiseOr
	OperationBitwiseXor
	OperationBitwiseAnd
	OperationBitwiseNot
	OperationBitwiseLeftShift
	OperationBitwiseRightShift
)

func (s Operation) Symbol() string {
	switch s {
	case OperationOr:
		return "||"
	case OperationAnd:
		return "&&"
	case OperationEqual:
		return "=="
	case OperationNotEqual:
		return "!="
	case OperationLess:
		return "<"
	case OperationGreater:
		return ">"
	case OperationLessEqual:
		return "<="
	case OperationGreaterEqual:
		return ">="
	case OperationPlus:
		return "+"
	case OperationMinus:
		return "-"
	case OperationMul:
		return "*"
	case OperationDiv:
		return "/"
	case OperationMod:
		return "%"
	case OperationNot:
		return "!"
	case OperationBitwiseOr:
		return "|"
	case OperationBitwiseXor:
		return "^"
	case OperationBitwiseAnd:
		return "&"
	case OperationBitwiseNot:
		return "~"
	case OperationBitwiseLeftShift:
		return "<<"
	case OperationBitwiseRightShift:
		return ">>"
	}

	panic(errors.NewUnreachableError())
}

func (s Operation) String() string {
	return s.Symbol()
}

// IsUserDefinable returns true if the operation may be bound
// to a user function through a `using` directive.
// Logical operations and shifts are always built-in.
func (s Operation) IsUserDefinable() bool {
	switch s {
	case OperationEqual,
		OperationNotEqual,
		OperationLess,
		OperationGreater,
		OperationLessEqual,
		OperationGreaterEqual,
		OperationPlus,
		OperationMinus,
		OperationMul,
		OperationDiv,
		OperationMod,
		OperationBitwiseOr,
		OperationBitwiseXor,
		OperationBitwiseAnd,
		OperationBitwiseNot:

		return true
	}

	return false
}

// IsUnary returns true if the operation can be used as a prefix operation
// with a single operand.
func (s Operation) IsUnary() bool {
	switch s {
	case OperationMinus,
		OperationNot,
		OperationBitwiseNot:

		return true
	}

	return false
}

// IsBinary returns true if the operation can be used with two operands.
func (s Operation) IsBinary() bool {
	switch s {
	case OperationNot, OperationBitwiseNot:
		return false
	}

	return s != OperationUnknown
}
