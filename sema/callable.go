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
	"strings"

	"github.com/basalt-lang/basalt/ast"
	"github.com/basalt-lang/basalt/common"
)

// Parameter

type Parameter struct {
	Identifier     string
	TypeAnnotation TypeAnnotation
}

func (p Parameter) String() string {
	if p.Identifier == "" {
		return p.TypeAnnotation.String()
	}
	return p.TypeAnnotation.String() + " " + p.Identifier
}

// FunctionType

type FunctionType struct {
	Parameters            []Parameter
	ReturnTypeAnnotations []TypeAnnotation
}

func (t *FunctionType) String() string {
	var sb strings.Builder
	sb.WriteString("function(")
	for i, parameter := range t.Parameters {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(parameter.String())
	}
	sb.WriteString(")")
	if len(t.ReturnTypeAnnotations) > 0 {
		sb.WriteString(" returns (")
		for i, annotation := range t.ReturnTypeAnnotations {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(annotation.String())
		}
		sb.WriteString(")")
	}
	return sb.String()
}

// Callable is a referenceable function:
// a free function of a source unit, or a library function
type Callable struct {
	Identifier   ast.Identifier
	Visibility   ast.Visibility
	FunctionType *FunctionType
	// Library is the owning library, nil for free functions
	Library *LibraryType
	// Location is the source unit the function is declared in
	Location common.Location
}

func (c *Callable) QualifiedName() string {
	if c.Library != nil {
		return c.Library.Identifier + "." + c.Identifier.Identifier
	}
	return c.Identifier.Identifier
}

func (c *Callable) String() string {
	return c.QualifiedName() + strings.TrimPrefix(c.FunctionType.String(), "function")
}
