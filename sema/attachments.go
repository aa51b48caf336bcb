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

// WildcardTypeID keys binding entries of wildcard directives (`using L for *`),
// which apply to every type in the directive's scope
const WildcardTypeID TypeID = "*"

type Role uint

const (
	RoleMember Role = iota
	RoleOperator
)

func (r Role) Name() string {
	if r == RoleOperator {
		return "operator"
	}
	return "member"
}

// BindingEntry records one callable attached to one type
// by a `using` directive
type BindingEntry struct {
	// Type is nil for wildcard attachments
	Type     Type
	Callable *Callable
	Role     Role
	// Operation is only valid when Role is RoleOperator
	Operation ast.Operation
	// Directive is the declaration the entry originates from
	Directive *ast.UsingForDeclaration
}

func (e *BindingEntry) typeID() TypeID {
	if e.Type == nil {
		return WildcardTypeID
	}
	return e.Type.ID()
}

// AttachmentSet is the binding table of a single scope:
// all entries created by `using` directives textually within it,
// keyed by target type, in insertion order per type.
type AttachmentSet struct {
	entries map[TypeID][]*BindingEntry
	typeIDs []TypeID
}

func NewAttachmentSet() *AttachmentSet {
	return &AttachmentSet{}
}

func (s *AttachmentSet) Insert(entry *BindingEntry) {
	if s.entries == nil {
		s.entries = make(map[TypeID][]*BindingEntry)
	}
	typeID := entry.typeID()
	existing, present := s.entries[typeID]
	if !present {
		s.typeIDs = append(s.typeIDs, typeID)
	}
	s.entries[typeID] = append(existing, entry)
}

// ForType calls the given function for every entry attached
// to the given type in this scope, in insertion order.
// Wildcard entries apply to every type and are included.
func (s *AttachmentSet) ForType(typeID TypeID, f func(*BindingEntry)) {
	for _, entry := range s.entries[typeID] {
		f(entry)
	}
	if typeID != WildcardTypeID {
		for _, entry := range s.entries[WildcardTypeID] {
			f(entry)
		}
	}
}

func (s *AttachmentSet) Count() int {
	var count int
	for _, entries := range s.entries {
		count += len(entries)
	}
	return count
}

// ForEach calls the given function for every entry in this scope,
// grouped by target type, types in insertion order.
func (s *AttachmentSet) ForEach(f func(*BindingEntry)) {
	for _, typeID := range s.typeIDs {
		for _, entry := range s.entries[typeID] {
			f(entry)
		}
	}
}

// AttachmentActivations is a stack of binding tables.
// Each entry represents one lexical scope (source unit or contract).
type AttachmentActivations struct {
	scopes []*AttachmentSet
}

func (a *AttachmentActivations) Enter() {
	a.scopes = append(a.scopes, NewAttachmentSet())
}

func (a *AttachmentActivations) Leave() {
	count := len(a.scopes)
	if count < 1 {
		return
	}
	a.scopes = a.scopes[:count-1]
}

func (a *AttachmentActivations) Current() *AttachmentSet {
	count := len(a.scopes)
	if count < 1 {
		return nil
	}
	return a.scopes[count-1]
}

func (a *AttachmentActivations) Depth() int {
	return len(a.scopes)
}

// ForType calls the given function for every entry attached to the given type
// in any active scope, walking scopes from outermost to innermost.
func (a *AttachmentActivations) ForType(typeID TypeID, f func(*BindingEntry)) {
	for _, scope := range a.scopes {
		scope.ForType(typeID, f)
	}
}
