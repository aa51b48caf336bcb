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
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/basalt-lang/basalt/common"
)

func TestTypeIDs(t *testing.T) {

	t.Parallel()

	assert.Equal(t, TypeID("uint256"), Uint256Type.ID())
	assert.Equal(t, TypeID("uint256[]"), NewArrayType(Uint256Type).ID())

	structType := &StructType{
		Location:   testLocation,
		Identifier: "Point",
	}
	assert.Equal(t, TypeID("test.Point"), structType.ID())
	assert.Equal(t, "test.Point", structType.QualifiedString())
	assert.Equal(t, "Point", structType.String())
}

func TestIsImplicitlyConvertible(t *testing.T) {

	t.Parallel()

	point := &StructType{Location: testLocation, Identifier: "Point"}

	tests := []struct {
		name     string
		from     Type
		to       Type
		expected bool
	}{
		{"identity", Uint256Type, Uint256Type, true},
		{"unsigned widening", Uint8Type, Uint256Type, true},
		{"unsigned narrowing", Uint256Type, Uint8Type, false},
		{"signed widening", Int8Type, Int256Type, true},
		{"signedness mismatch", Uint8Type, Int256Type, false},
		{"fixed bytes widening", Bytes4Type, Bytes32Type, true},
		{"fixed bytes narrowing", Bytes32Type, Bytes4Type, false},
		{"payable to address", TheAddressPayableType, TheAddressType, true},
		{"address to payable", TheAddressType, TheAddressPayableType, false},
		{"struct identity", point, point, true},
		{"struct to unrelated", point, Uint256Type, false},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t,
				test.expected,
				IsImplicitlyConvertible(test.from, test.to),
			)
		})
	}
}

func TestTypeAnnotationConvertibility(t *testing.T) {

	t.Parallel()

	array := NewArrayType(Uint256Type)

	t.Run("value types ignore locations", func(t *testing.T) {
		t.Parallel()

		from := NewTypeAnnotation(Uint256Type, common.DataLocationDefault)
		to := NewTypeAnnotation(Uint256Type, common.DataLocationStorage)
		assert.True(t, from.IsImplicitlyConvertibleTo(to))
	})

	t.Run("reference types require matching locations", func(t *testing.T) {
		t.Parallel()

		memory := NewTypeAnnotation(array, common.DataLocationMemory)
		storage := NewTypeAnnotation(array, common.DataLocationStorage)

		assert.True(t, memory.IsImplicitlyConvertibleTo(memory))
		assert.False(t, memory.IsImplicitlyConvertibleTo(storage))
		assert.False(t, storage.IsImplicitlyConvertibleTo(memory))
	})

	t.Run("calldata converts to memory", func(t *testing.T) {
		t.Parallel()

		calldata := NewTypeAnnotation(array, common.DataLocationCalldata)
		memory := NewTypeAnnotation(array, common.DataLocationMemory)

		assert.True(t, calldata.IsImplicitlyConvertibleTo(memory))
		assert.False(t, memory.IsImplicitlyConvertibleTo(calldata))
	})
}

func TestValueTypeIdentity(t *testing.T) {

	t.Parallel()

	// a user-defined value type is distinct from its underlying type

	fixed := &ValueType{
		Location:       testLocation,
		Identifier:     "Fixed",
		UnderlyingType: Uint256Type,
	}

	assert.True(t, fixed.IsUserDefined())
	assert.False(t, fixed.IsReferenceType())
	assert.False(t, IsImplicitlyConvertible(fixed, Uint256Type))
	assert.False(t, IsImplicitlyConvertible(Uint256Type, fixed))
}
