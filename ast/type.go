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
	"fmt"
	"strings"

	"github.com/turbolent/prettier"

	"github.com/basalt-lang/basalt/common"
)

// Type is a reference to a type in source code,
// e.g. the target of a `using` directive,
// or the type of a parameter.
//
// Type references are purely syntactic:
// they are resolved to semantic types during checking.
type Type interface {
	HasPosition
	fmt.Stringer
	isType()
	Doc() prettier.Doc
}

// NominalType represents a named type, e.g. `uint256` or `Lib.Point`
type NominalType struct {
	Identifier        Identifier
	NestedIdentifiers []Identifier `json:",omitempty"`
}

var _ Type = &NominalType{}

func (*NominalType) isType() {}

func (t *NominalType) String() string {
	var sb strings.Builder
	sb.WriteString(t.Identifier.String())
	for _, identifier := range t.NestedIdentifiers {
		sb.WriteRune('.')
		sb.WriteString(identifier.String())
	}
	return sb.String()
}

func (t *NominalType) Doc() prettier.Doc {
	return prettier.Text(t.String())
}

func (t *NominalType) StartPosition() Position {
	return t.Identifier.StartPosition()
}

func (t *NominalType) EndPosition() Position {
	nestedCount := len(t.NestedIdentifiers)
	if nestedCount == 0 {
		return t.Identifier.EndPosition()
	}
	lastIdentifier := t.NestedIdentifiers[nestedCount-1]
	return lastIdentifier.EndPosition()
}

// ArrayType represents a dynamically sized array type, e.g. `uint256[]`
type ArrayType struct {
	ElementType Type
	Range
}

var _ Type = &ArrayType{}

func (*ArrayType) isType() {}

func (t *ArrayType) String() string {
	return fmt.Sprintf("%s[]", t.ElementType)
}

func (t *ArrayType) Doc() prettier.Doc {
	return prettier.Concat{
		t.ElementType.Doc(),
		prettier.Text("[]"),
	}
}

// TypeAnnotation annotates a type reference
// with the data location of the annotated value
type TypeAnnotation struct {
	DataLocation common.DataLocation
	Type         Type `json:"AnnotatedType"`
	StartPos     Position
}

func NewTypeAnnotation(t Type, dataLocation common.DataLocation, startPos Position) *TypeAnnotation {
	return &TypeAnnotation{
		DataLocation: dataLocation,
		Type:         t,
		StartPos:     startPos,
	}
}

func (t *TypeAnnotation) String() string {
	keyword := t.DataLocation.Keyword()
	if keyword == "" {
		return t.Type.String()
	}
	return fmt.Sprintf("%s %s", t.Type, keyword)
}

func (t *TypeAnnotation) Doc() prettier.Doc {
	doc := t.Type.Doc()
	keyword := t.DataLocation.Keyword()
	if keyword == "" {
		return doc
	}
	return prettier.Concat{
		doc,
		prettier.Space,
		prettier.Text(keyword),
	}
}

func (t *TypeAnnotation) StartPosition() Position {
	return t.StartPos
}

func (t *TypeAnnotation) EndPosition() Position {
	return t.Type.EndPosition()
}
