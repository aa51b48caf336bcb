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
	"github.com/stretchr/testify/require"

	"github.com/basalt-lang/basalt/ast"
)

func newTestEntry(name string, ty Type) *BindingEntry {
	return &BindingEntry{
		Type: ty,
		Callable: &Callable{
			Identifier:   ast.Identifier{Identifier: name},
			FunctionType: &FunctionType{},
		},
		Role: RoleMember,
	}
}

func entryNames(entries []*BindingEntry) []string {
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, entry.Callable.Identifier.Identifier)
	}
	return names
}

func collectForType(set *AttachmentSet, typeID TypeID) []*BindingEntry {
	var entries []*BindingEntry
	set.ForType(typeID, func(entry *BindingEntry) {
		entries = append(entries, entry)
	})
	return entries
}

func TestAttachmentSetInsertionOrder(t *testing.T) {

	t.Parallel()

	set := NewAttachmentSet()
	set.Insert(newTestEntry("first", Uint256Type))
	set.Insert(newTestEntry("second", Uint256Type))
	set.Insert(newTestEntry("other", TheBoolType))
	set.Insert(newTestEntry("third", Uint256Type))

	assert.Equal(t, 4, set.Count())

	assert.Equal(t,
		[]string{"first", "second", "third"},
		entryNames(collectForType(set, Uint256Type.ID())),
	)
	assert.Equal(t,
		[]string{"other"},
		entryNames(collectForType(set, TheBoolType.ID())),
	)
}

func TestAttachmentSetWildcard(t *testing.T) {

	t.Parallel()

	// a wildcard entry applies to every queried type

	set := NewAttachmentSet()
	set.Insert(newTestEntry("specific", Uint256Type))
	set.Insert(newTestEntry("wildcard", nil))

	assert.Equal(t,
		[]string{"specific", "wildcard"},
		entryNames(collectForType(set, Uint256Type.ID())),
	)
	assert.Equal(t,
		[]string{"wildcard"},
		entryNames(collectForType(set, TheBoolType.ID())),
	)
}

func TestAttachmentActivationsScopeOrder(t *testing.T) {

	t.Parallel()

	activations := &AttachmentActivations{}

	activations.Enter()
	activations.Current().Insert(newTestEntry("outer", Uint256Type))

	activations.Enter()
	activations.Current().Insert(newTestEntry("inner", Uint256Type))

	require.Equal(t, 2, activations.Depth())

	var names []string
	activations.ForType(Uint256Type.ID(), func(entry *BindingEntry) {
		names = append(names, entry.Callable.Identifier.Identifier)
	})
	assert.Equal(t, []string{"outer", "inner"}, names)

	// leaving the inner scope drops its entries

	activations.Leave()

	names = nil
	activations.ForType(Uint256Type.ID(), func(entry *BindingEntry) {
		names = append(names, entry.Callable.Identifier.Identifier)
	})
	assert.Equal(t, []string{"outer"}, names)
}

func TestGlobalAttachments(t *testing.T) {

	t.Parallel()

	t.Run("directive processed once", func(t *testing.T) {
		t.Parallel()

		globals := NewGlobalAttachments()
		directive := &ast.UsingForDeclaration{}

		require.True(t, globals.BeginDirective(directive))
		globals.Insert(newTestEntry("norm", Uint256Type))

		// the same directive node is not processed again
		require.False(t, globals.BeginDirective(directive))
		assert.Equal(t, 1, globals.Count())
	})

	t.Run("insert after seal panics", func(t *testing.T) {
		t.Parallel()

		globals := NewGlobalAttachments()
		globals.Seal()
		require.True(t, globals.IsSealed())

		assert.Panics(t, func() {
			globals.Insert(newTestEntry("late", Uint256Type))
		})
	})
}
