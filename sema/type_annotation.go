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
	"fmt"

	"github.com/basalt-lang/basalt/common"
)

// TypeAnnotation pairs a type with the data location of the annotated value.
// Data locations only apply to reference types.
type TypeAnnotation struct {
	Type         Type
	DataLocation common.DataLocation
}

func NewTypeAnnotation(ty Type, dataLocation common.DataLocation) TypeAnnotation {
	return TypeAnnotation{
		Type:         ty,
		DataLocation: dataLocation,
	}
}

func (a TypeAnnotation) String() string {
	keyword := a.DataLocation.Keyword()
	if keyword == "" {
		return a.Type.String()
	}
	return fmt.Sprintf("%s %s", a.Type, keyword)
}

func (a TypeAnnotation) QualifiedString() string {
	keyword := a.DataLocation.Keyword()
	if keyword == "" {
		return a.Type.QualifiedString()
	}
	return fmt.Sprintf("%s %s", a.Type.QualifiedString(), keyword)
}

func (a TypeAnnotation) Equal(other TypeAnnotation) bool {
	return TypesEqual(a.Type, other.Type) &&
		a.DataLocation == other.DataLocation
}

// IsImplicitlyConvertibleTo returns true if an argument of this annotation
// can be passed to a parameter of the other annotation.
//
// Data locations are irrelevant for value types.
// For reference types, the locations must match,
// with the exception that calldata values may be copied into memory.
func (a TypeAnnotation) IsImplicitlyConvertibleTo(other TypeAnnotation) bool {
	if !IsImplicitlyConvertible(a.Type, other.Type) {
		return false
	}

	if !a.Type.IsReferenceType() {
		return true
	}

	if a.DataLocation == other.DataLocation {
		return true
	}

	return a.DataLocation == common.DataLocationCalldata &&
		other.DataLocation == common.DataLocationMemory
}
