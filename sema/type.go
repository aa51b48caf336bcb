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

// TypeID is a canonical, unique identifier for a type.
// Types declared in a source unit are qualified with the unit's location,
// e.g. `test.Point`
type TypeID string

type Type interface {
	isType()
	ID() TypeID
	String() string
	QualifiedString() string
	// IsUserDefined returns true if the type was declared in a source unit,
	// as opposed to a built-in type
	IsUserDefined() bool
	// IsReferenceType returns true if values of the type
	// live in a data location (storage, memory, or calldata)
	IsReferenceType() bool
}

func TypesEqual(first, second Type) bool {
	if first == nil || second == nil {
		return first == second
	}
	return first.ID() == second.ID()
}

// InvalidType is the sentinel for failed type resolution.
// Checks involving it are suppressed to avoid follow-on errors.

type invalidType struct{}

var InvalidType Type = &invalidType{}

func (*invalidType) isType() {}

func (*invalidType) ID() TypeID {
	return "<<invalid>>"
}

func (t *invalidType) String() string {
	return "<<invalid>>"
}

func (t *invalidType) QualifiedString() string {
	return "<<invalid>>"
}

func (*invalidType) IsUserDefined() bool {
	return false
}

func (*invalidType) IsReferenceType() bool {
	return false
}

func IsInvalidType(t Type) bool {
	return t == nil || t == InvalidType
}

// VoidType is the result type of a call to a function
// that returns no values

type voidType struct{}

var VoidType Type = &voidType{}

func (*voidType) isType() {}

func (*voidType) ID() TypeID {
	return "()"
}

func (t *voidType) String() string {
	return "()"
}

func (t *voidType) QualifiedString() string {
	return "()"
}

func (*voidType) IsUserDefined() bool {
	return false
}

func (*voidType) IsReferenceType() bool {
	return false
}

// BoolType

type BoolType struct{}

var TheBoolType = &BoolType{}

var _ Type = TheBoolType

func (*BoolType) isType() {}

func (*BoolType) ID() TypeID {
	return "bool"
}

func (t *BoolType) String() string {
	return "bool"
}

func (t *BoolType) QualifiedString() string {
	return "bool"
}

func (*BoolType) IsUserDefined() bool {
	return false
}

func (*BoolType) IsReferenceType() bool {
	return false
}

// AddressType

type AddressType struct {
	Payable bool
}

var TheAddressType = &AddressType{}
var TheAddressPayableType = &AddressType{Payable: true}

var _ Type = TheAddressType

func (*AddressType) isType() {}

func (t *AddressType) ID() TypeID {
	return TypeID(t.String())
}

func (t *AddressType) String() string {
	if t.Payable {
		return "address payable"
	}
	return "address"
}

func (t *AddressType) QualifiedString() string {
	return t.String()
}

func (*AddressType) IsUserDefined() bool {
	return false
}

func (*AddressType) IsReferenceType() bool {
	return false
}

// IntegerType

type IntegerType struct {
	Bits   int
	Signed bool
}

var Uint8Type = NewIntegerType(8, false)
var Uint128Type = NewIntegerType(128, false)
var Uint256Type = NewIntegerType(256, false)
var Int8Type = NewIntegerType(8, true)
var Int128Type = NewIntegerType(128, true)
var Int256Type = NewIntegerType(256, true)

var _ Type = Uint256Type

func NewIntegerType(bits int, signed bool) *IntegerType {
	return &IntegerType{
		Bits:   bits,
		Signed: signed,
	}
}

func (*IntegerType) isType() {}

func (t *IntegerType) ID() TypeID {
	return TypeID(t.String())
}

func (t *IntegerType) String() string {
	if t.Signed {
		return fmt.Sprintf("int%d", t.Bits)
	}
	return fmt.Sprintf("uint%d", t.Bits)
}

func (t *IntegerType) QualifiedString() string {
	return t.String()
}

func (*IntegerType) IsUserDefined() bool {
	return false
}

func (*IntegerType) IsReferenceType() bool {
	return false
}

// FixedBytesType

type FixedBytesType struct {
	Size int
}

var Bytes4Type = &FixedBytesType{Size: 4}
var Bytes32Type = &FixedBytesType{Size: 32}

var _ Type = Bytes32Type

func (*FixedBytesType) isType() {}

func (t *FixedBytesType) ID() TypeID {
	return TypeID(t.String())
}

func (t *FixedBytesType) String() string {
	return fmt.Sprintf("bytes%d", t.Size)
}

func (t *FixedBytesType) QualifiedString() string {
	return t.String()
}

func (*FixedBytesType) IsUserDefined() bool {
	return false
}

func (*FixedBytesType) IsReferenceType() bool {
	return false
}

// BytesType is the dynamically sized `bytes` type

type BytesType struct{}

var TheBytesType = &BytesType{}

var _ Type = TheBytesType

func (*BytesType) isType() {}

func (*BytesType) ID() TypeID {
	return "bytes"
}

func (t *BytesType) String() string {
	return "bytes"
}

func (t *BytesType) QualifiedString() string {
	return "bytes"
}

func (*BytesType) IsUserDefined() bool {
	return false
}

func (*BytesType) IsReferenceType() bool {
	return true
}

// StringType

type StringType struct{}

var TheStringType = &StringType{}

var _ Type = TheStringType

func (*StringType) isType() {}

func (*StringType) ID() TypeID {
	return "string"
}

func (t *StringType) String() string {
	return "string"
}

func (t *StringType) QualifiedString() string {
	return "string"
}

func (*StringType) IsUserDefined() bool {
	return false
}

func (*StringType) IsReferenceType() bool {
	return true
}

// ArrayType is a dynamically sized array type

type ArrayType struct {
	ElementType Type
}

var _ Type = &ArrayType{}

func NewArrayType(elementType Type) *ArrayType {
	return &ArrayType{
		ElementType: elementType,
	}
}

func (*ArrayType) isType() {}

func (t *ArrayType) ID() TypeID {
	return TypeID(fmt.Sprintf("%s[]", t.ElementType.ID()))
}

func (t *ArrayType) String() string {
	return fmt.Sprintf("%s[]", t.ElementType)
}

func (t *ArrayType) QualifiedString() string {
	return fmt.Sprintf("%s[]", t.ElementType.QualifiedString())
}

func (t *ArrayType) IsUserDefined() bool {
	return t.ElementType.IsUserDefined()
}

func (*ArrayType) IsReferenceType() bool {
	return true
}

// StructType

type StructType struct {
	Location   common.Location
	Identifier string
	Fields     []*FieldMember
}

type FieldMember struct {
	Identifier     string
	TypeAnnotation TypeAnnotation
}

var _ Type = &StructType{}

func (*StructType) isType() {}

func (t *StructType) ID() TypeID {
	return locationQualifiedID(t.Location, t.Identifier)
}

func (t *StructType) String() string {
	return t.Identifier
}

func (t *StructType) QualifiedString() string {
	return string(t.ID())
}

func (*StructType) IsUserDefined() bool {
	return true
}

func (*StructType) IsReferenceType() bool {
	return true
}

func (t *StructType) FieldMember(name string) *FieldMember {
	for _, field := range t.Fields {
		if field.Identifier == name {
			return field
		}
	}
	return nil
}

// ValueType is a user-defined value type
// wrapping an elementary underlying type,
// e.g. `type Fixed is uint256;`
type ValueType struct {
	Location       common.Location
	Identifier     string
	UnderlyingType Type
}

var _ Type = &ValueType{}

func (*ValueType) isType() {}

func (t *ValueType) ID() TypeID {
	return locationQualifiedID(t.Location, t.Identifier)
}

func (t *ValueType) String() string {
	return t.Identifier
}

func (t *ValueType) QualifiedString() string {
	return string(t.ID())
}

func (*ValueType) IsUserDefined() bool {
	return true
}

func (*ValueType) IsReferenceType() bool {
	return false
}

// ContractType

type ContractType struct {
	Location   common.Location
	Identifier string
	Kind       common.ContractKind
}

var _ Type = &ContractType{}

func (*ContractType) isType() {}

func (t *ContractType) ID() TypeID {
	return locationQualifiedID(t.Location, t.Identifier)
}

func (t *ContractType) String() string {
	return t.Identifier
}

func (t *ContractType) QualifiedString() string {
	return string(t.ID())
}

func (*ContractType) IsUserDefined() bool {
	return true
}

func (*ContractType) IsReferenceType() bool {
	return false
}

// LibraryType

type LibraryType struct {
	Location   common.Location
	Identifier string
	Functions  []*Callable
}

var _ Type = &LibraryType{}

func (*LibraryType) isType() {}

func (t *LibraryType) ID() TypeID {
	return locationQualifiedID(t.Location, t.Identifier)
}

func (t *LibraryType) String() string {
	return t.Identifier
}

func (t *LibraryType) QualifiedString() string {
	return string(t.ID())
}

func (*LibraryType) IsUserDefined() bool {
	return true
}

func (*LibraryType) IsReferenceType() bool {
	return false
}

func (t *LibraryType) Function(name string) *Callable {
	for _, function := range t.Functions {
		if function.Identifier.Identifier == name {
			return function
		}
	}
	return nil
}

func locationQualifiedID(location common.Location, identifier string) TypeID {
	if location == nil {
		return TypeID(identifier)
	}
	return TypeID(fmt.Sprintf("%s.%s", location.ID(), identifier))
}

// IsImplicitlyConvertible returns true if a value of the first type
// can be implicitly converted to the second type.
//
// Data locations are not considered here,
// see TypeAnnotation.IsImplicitlyConvertibleTo
func IsImplicitlyConvertible(from, to Type) bool {
	if TypesEqual(from, to) {
		return true
	}

	switch to := to.(type) {
	case *IntegerType:
		from, ok := from.(*IntegerType)
		return ok &&
			from.Signed == to.Signed &&
			from.Bits <= to.Bits

	case *FixedBytesType:
		from, ok := from.(*FixedBytesType)
		return ok && from.Size <= to.Size

	case *AddressType:
		from, ok := from.(*AddressType)
		// payable is the stricter type
		return ok && from.Payable && !to.Payable
	}

	return false
}
