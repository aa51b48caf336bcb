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

// DataLocation is the storage area a reference-typed value lives in.
// Elementary (value) types have no data location.
type DataLocation uint

const (
	DataLocationDefault DataLocation = iota
	DataLocationStorage
	DataLocationMemory
	DataLocationCalldata
)

func (l DataLocation) Keyword() string {
	switch l {
	case DataLocationDefault:
		return ""
	case DataLocationStorage:
		return "storage"
	case DataLocationMemory:
		return "memory"
	case DataLocationCalldata:
		return "calldata"
	}

	panic(errors.NewUnreachableError())
}

func (l DataLocation) String() string {
	return l.Keyword()
}
