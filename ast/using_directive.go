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

package ast

import (
	"strings"

	"github.com/turbolent/prettier"

	"github.com/basalt-lang/basalt/common"
)

// UsingItem is a single entry in the braced list of a `using` directive:
// a function name, optionally bound to an operator,
// e.g. `Math.add as +`
type UsingItem struct {
	Function *NominalType
	// Operation the function is bound to.
	// OperationUnknown for a plain member-function attachment
	Operation Operation
}

func (i UsingItem) String() string {
	if i.Operation == OperationUnknown {
		return i.Function.String()
	}
	return i.Function.String() + " as " + i.Operation.Symbol()
}

// UsingForDeclaration represents a `using ... for ...` directive:
//
//	using Lib for T;
//	using Lib for *;
//	using {f, Lib.g} for T;
//	using {add as +} for T global;
//
// Either Library is set (whole-library attachment),
// or Items is set (explicit function or operator list).
// A nil Target means the wildcard `*`.
type UsingForDeclaration struct {
	Library  *NominalType `json:",omitempty"`
	Items    []UsingItem  `json:",omitempty"`
	Target   Type         `json:",omitempty"`
	IsGlobal bool
	Range
}

var _ Declaration = &UsingForDeclaration{}

func (*UsingForDeclaration) isDeclaration() {}

func (d *UsingForDeclaration) DeclarationIdentifier() *Identifier {
	return nil
}

func (d *UsingForDeclaration) DeclarationKind() common.DeclarationKind {
	return common.DeclarationKindUsingDirective
}

func (d *UsingForDeclaration) IsWildcard() bool {
	return d.Target == nil
}

func (d *UsingForDeclaration) String() string {
	var sb strings.Builder
	sb.WriteString("using ")
	if d.Library != nil {
		sb.WriteString(d.Library.String())
	} else {
		sb.WriteRune('{')
		for i, item := range d.Items {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(item.String())
		}
		sb.WriteRune('}')
	}
	sb.WriteString(" for ")
	if d.Target == nil {
		sb.WriteRune('*')
	} else {
		sb.WriteString(d.Target.String())
	}
	if d.IsGlobal {
		sb.WriteString(" global")
	}
	sb.WriteRune(';')
	return sb.String()
}

var usingForSeparatorDoc prettier.Doc = prettier.Concat{
	prettier.Text(","),
	prettier.Line{},
}

func (d *UsingForDeclaration) Doc() prettier.Doc {
	var sourceDoc prettier.Doc
	if d.Library != nil {
		sourceDoc = d.Library.Doc()
	} else {
		itemDocs := make([]prettier.Doc, 0, len(d.Items))
		for _, item := range d.Items {
			itemDocs = append(itemDocs, prettier.Text(item.String()))
		}
		sourceDoc = prettier.WrapBraces(
			prettier.Join(usingForSeparatorDoc, itemDocs...),
			prettier.SoftLine{},
		)
	}

	var targetDoc prettier.Doc
	if d.Target == nil {
		targetDoc = prettier.Text("*")
	} else {
		targetDoc = d.Target.Doc()
	}

	doc := prettier.Concat{
		prettier.Text("using "),
		sourceDoc,
		prettier.Text(" for "),
		targetDoc,
	}

	if d.IsGlobal {
		doc = append(doc, prettier.Text(" global"))
	}

	return append(doc, prettier.Text(";"))
}
