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

package common

import (
	"github.com/basalt-lang/basalt/errors"
)

type DeclarationKind uint

const (
	DeclarationKindUnknown DeclarationKind = iota
	DeclarationKindVariable
	DeclarationKindConstant
	DeclarationKindFunction
	DeclarationKindParameter
	DeclarationKindStructure
	DeclarationKindValueType
	DeclarationKindContract
	DeclarationKindLibrary
	DeclarationKindContractInterface
	DeclarationKindImport
	DeclarationKindUsingDirective
)

func (k DeclarationKind) IsTypeDeclaration() bool {
	switch k {
	case DeclarationKindStructure,
		DeclarationKindValueType,
		DeclarationKindContract,
		DeclarationKindLibrary,
		DeclarationKindContractInterface:

		return true

	default:
		return false
	}
}

func (k DeclarationKind) Name() string {
	switch k {
	case DeclarationKindUnknown:
		return "unknown"
	case DeclarationKindVariable:
		return "variable"
	case DeclarationKindConstant:
		return "constant"
	case DeclarationKindFunction:
		return "function"
	case DeclarationKindParameter:
		return "parameter"
	case DeclarationKindStructure:
		return "struct"
	case DeclarationKindValueType:
		return "value type"
	case DeclarationKindContract:
		return "contract"
	case DeclarationKindLibrary:
		return "library"
	case DeclarationKindContractInterface:
		return "contract interface"
	case DeclarationKindImport:
		return "import"
	case DeclarationKindUsingDirective:
		return "using directive"
	}

	panic(errors.NewUnreachableError())
}

func (k DeclarationKind) String() string {
	return k.Name()
}
