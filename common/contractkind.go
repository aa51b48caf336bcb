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

type ContractKind uint

const (
	ContractKindUnknown ContractKind = iota
	ContractKindContract
	ContractKindLibrary
	ContractKindInterface
)

func (k ContractKind) Keyword() string {
	switch k {
	case ContractKindContract:
		return "contract"
	case ContractKindLibrary:
		return "library"
	case ContractKindInterface:
		return "interface"
	}

	panic(errors.NewUnreachableError())
}

func (k ContractKind) Name() string {
	return k.Keyword()
}

func (k ContractKind) String() string {
	return k.Keyword()
}

func (k ContractKind) DeclarationKind() DeclarationKind {
	switch k {
	case ContractKindContract:
		return DeclarationKindContract
	case ContractKindLibrary:
		return DeclarationKindLibrary
	case ContractKindInterface:
		return DeclarationKindContractInterface
	}

	panic(errors.NewUnreachableError())
}
