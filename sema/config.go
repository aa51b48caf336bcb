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

package sema

import (
	"github.com/basalt-lang/basalt/ast"
)

// BuiltinBinaryOperatorHandlerFunc resolves the result type
// of a built-in binary operation. It is consulted when operator resolution
// falls through, i.e. when no user-defined operator applies.
type BuiltinBinaryOperatorHandlerFunc func(
	operation ast.Operation,
	leftType Type,
	rightType Type,
) (Type, bool)

// BuiltinUnaryOperatorHandlerFunc resolves the result type
// of a built-in unary operation
type BuiltinUnaryOperatorHandlerFunc func(
	operation ast.Operation,
	operandType Type,
) (Type, bool)

type Config struct {
	// SuggestionsEnabled enables "did you mean" suggestions
	// on resolution errors
	SuggestionsEnabled bool
	// LocalAttachmentsShadowGlobals excludes compilation-wide `global`
	// attachments from candidate gathering when a lexically visible scope
	// attaches the same member name to the same type.
	// When disabled (the default), local and global candidates
	// form one overload set
	LocalAttachmentsShadowGlobals bool
	// BuiltinBinaryOperatorHandler is consulted for operations
	// on types without a user-defined operator
	BuiltinBinaryOperatorHandler BuiltinBinaryOperatorHandlerFunc
	// BuiltinUnaryOperatorHandler is consulted for prefix operations
	// on types without a user-defined operator
	BuiltinUnaryOperatorHandler BuiltinUnaryOperatorHandlerFunc
}
