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
)

// Expression

type Expression interface {
	HasPosition
	fmt.Stringer
	isExpression()
	Doc() prettier.Doc
}

// IdentifierExpression

type IdentifierExpression struct {
	Identifier Identifier
}

var _ Expression = &IdentifierExpression{}

func (*IdentifierExpression) isExpression() {}

func (e *IdentifierExpression) String() string {
	return e.Identifier.String()
}

func (e *IdentifierExpression) Doc() prettier.Doc {
	return prettier.Text(e.Identifier.Identifier)
}

func (e *IdentifierExpression) StartPosition() Position {
	return e.Identifier.StartPosition()
}

func (e *IdentifierExpression) EndPosition() Position {
	return e.Identifier.EndPosition()
}

// MemberExpression

type MemberExpression struct {
	Expression Expression
	Identifier Identifier
}

var _ Expression = &MemberExpression{}

func (*MemberExpression) isExpression() {}

func (e *MemberExpression) String() string {
	return fmt.Sprintf(
		"%s.%s",
		e.Expression, e.Identifier,
	)
}

func (e *MemberExpression) Doc() prettier.Doc {
	return prettier.Concat{
		e.Expression.Doc(),
		prettier.Text("."),
		prettier.Text(e.Identifier.Identifier),
	}
}

func (e *MemberExpression) StartPosition() Position {
	return e.Expression.StartPosition()
}

func (e *MemberExpression) EndPosition() Position {
	return e.Identifier.EndPosition()
}

// InvocationExpression

type InvocationExpression struct {
	InvokedExpression Expression
	Arguments         []Expression
	EndPos            Position
}

var _ Expression = &InvocationExpression{}

func (*InvocationExpression) isExpression() {}

func (e *InvocationExpression) String() string {
	var sb strings.Builder
	sb.WriteString(e.InvokedExpression.String())
	sb.WriteRune('(')
	for i, argument := range e.Arguments {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(argument.String())
	}
	sb.WriteRune(')')
	return sb.String()
}

func (e *InvocationExpression) Doc() prettier.Doc {
	if len(e.Arguments) == 0 {
		return prettier.Concat{
			e.InvokedExpression.Doc(),
			prettier.Text("()"),
		}
	}

	argumentDocs := make([]prettier.Doc, 0, len(e.Arguments))
	for _, argument := range e.Arguments {
		argumentDocs = append(argumentDocs, argument.Doc())
	}

	return prettier.Concat{
		e.InvokedExpression.Doc(),
		prettier.WrapParentheses(
			prettier.Join(prettier.Concat{prettier.Text(","), prettier.Line{}}, argumentDocs...),
			prettier.SoftLine{},
		),
	}
}

func (e *InvocationExpression) StartPosition() Position {
	return e.InvokedExpression.StartPosition()
}

func (e *InvocationExpression) EndPosition() Position {
	return e.EndPos
}

// BinaryExpression

type BinaryExpression struct {
	Operation Operation
	Left      Expression
	Right     Expression
}

var _ Expression = &BinaryExpression{}

func (*BinaryExpression) isExpression() {}

func (e *BinaryExpression) String() string {
	return fmt.Sprintf(
		"(%s %s %s)",
		e.Left, e.Operation.Symbol(), e.Right,
	)
}

func (e *BinaryExpression) Doc() prettier.Doc {
	return prettier.Concat{
		e.Left.Doc(),
		prettier.Space,
		prettier.Text(e.Operation.Symbol()),
		prettier.Space,
		e.Right.Doc(),
	}
}

func (e *BinaryExpression) StartPosition() Position {
	return e.Left.StartPosition()
}

func (e *BinaryExpression) EndPosition() Position {
	return e.Right.EndPosition()
}

// UnaryExpression

type UnaryExpression struct {
	Operation  Operation
	Expression Expression
	StartPos   Position
}

var _ Expression = &UnaryExpression{}

func (*UnaryExpression) isExpression() {}

func (e *UnaryExpression) String() string {
	return fmt.Sprintf(
		"%s%s",
		e.Operation.Symbol(), e.Expression,
	)
}

func (e *UnaryExpression) Doc() prettier.Doc {
	return prettier.Concat{
		prettier.Text(e.Operation.Symbol()),
		e.Expression.Doc(),
	}
}

func (e *UnaryExpression) StartPosition() Position {
	return e.StartPos
}

func (e *UnaryExpression) EndPosition() Position {
	return e.Expression.EndPosition()
}
