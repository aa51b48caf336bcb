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
	"github.com/basalt-lang/basalt/errors"
)

// GlobalAttachments is the compilation-wide binding state
// created by `global` directives.
// Entries are visible in every source unit of the compilation,
// independent of imports.
//
// The state is insert-only: entries are written while global directives
// are collected, and only read afterwards.
// Once sealed, insertion is an internal error:
// call-site resolution must never begin before collection has completed
// for the entire compilation.
type GlobalAttachments struct {
	set    *AttachmentSet
	sealed bool
	// processed tracks handled directives,
	// so that re-running collection over the same program
	// does not duplicate entries
	processed map[*ast.UsingForDeclaration]struct{}
}

func NewGlobalAttachments() *GlobalAttachments {
	return &GlobalAttachments{
		set:       NewAttachmentSet(),
		processed: map[*ast.UsingForDeclaration]struct{}{},
	}
}

// BeginDirective marks the given directive as processed.
// It returns false if the directive was already processed,
// in which case it must be skipped.
func (g *GlobalAttachments) BeginDirective(directive *ast.UsingForDeclaration) bool {
	if _, done := g.processed[directive]; done {
		return false
	}
	g.processed[directive] = struct{}{}
	return true
}

func (g *GlobalAttachments) Insert(entry *BindingEntry) {
	if g.sealed {
		panic(errors.NewUnreachableError())
	}
	g.set.Insert(entry)
}

// Seal ends the collection phase.
// Any insertion afterwards is an internal error.
func (g *GlobalAttachments) Seal() {
	g.sealed = true
}

func (g *GlobalAttachments) IsSealed() bool {
	return g.sealed
}

func (g *GlobalAttachments) Count() int {
	return g.set.Count()
}

func (g *GlobalAttachments) ForType(typeID TypeID, f func(*BindingEntry)) {
	g.set.ForType(typeID, f)
}
