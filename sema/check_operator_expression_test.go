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

// fixedValueType declares `type Fixed is uint256;`
// plus binary `add` and unary `neg` operator functions for it
func fixedValueType() []ast.Declaration {
	fixedAnnotation := typeAnnotation(nominalType("Fixed"))

	return []ast.Declaration{
		&ast.ValueTypeDeclaration{
			Identifier:     identifier("Fixed"),
			UnderlyingType: nominalType("uint256"),
		},
		functionDeclaration(
			"add",
			[]*ast.Parameter{
				parameter("a", fixedAnnotation),
				parameter("b", fixedAnnotation),
			},
			fixedAnnotation,
		),
		functionDeclaration(
			"neg",
			[]*ast.Parameter{
				parameter("v", fixedAnnotation),
			},
			fixedAnnotation,
		),
	}
}

func TestCheckBinaryOperatorResolution(t *testing.T) {

	t.Parallel()

	t.Run("user-defined operator", func(t *testing.T) {
		t.Parallel()

		// using {add as +} for Fixed;
		// function f(Fixed a, Fixed b) { a + b; }

		expression := &ast.BinaryExpression{
			Operation: ast.OperationPlus,
			Left:      identifierExpression("a"),
			Right:     identifierExpression("b"),
		}

		declarations := append(
			fixedValueType(),
			usingOperator(nominalType("Fixed"), ast.OperationPlus, nominalType("add")),
			functionWithBody(
				"f",
				[]*ast.Parameter{
					parameter("a", typeAnnotation(nominalType("Fixed"))),
					parameter("b", typeAnnotation(nominalType("Fixed"))),
				},
				expressionStatement(expression),
			),
		)

		checker := newTestChecker(t, &ast.Program{Declarations: declarations})

		require.NoError(t, checker.Check())

		resolution, ok := checker.Elaboration.BinaryExpressionOperatorFunctions[expression]
		require.True(t, ok)
		assert.Equal(t, "add", resolution.Entry.Callable.QualifiedName())
	})

	t.Run("missing operator", func(t *testing.T) {
		t.Parallel()

		// no directive binds * for Fixed

		expression := &ast.BinaryExpression{
			Operation: ast.OperationMul,
			Left:      identifierExpression("a"),
			Right:     identifierExpression("b"),
		}

		declarations := append(
			fixedValueType(),
			usingOperator(nominalType("Fixed"), ast.OperationPlus, nominalType("add")),
			functionWithBody(
				"f",
				[]*ast.Parameter{
					parameter("a", typeAnnotation(nominalType("Fixed"))),
					parameter("b", typeAnnotation(nominalType("Fixed"))),
				},
				expressionStatement(expression),
			),
		)

		checker := newTestChecker(t, &ast.Program{Declarations: declarations})

		errs := requireCheckerErrors(t, checker.Check(), 1)

		var noOperatorErr *NoOperatorOverloadError
		require.ErrorAs(t, errs[0], &noOperatorErr)
		assert.Equal(t, ast.OperationMul, noOperatorErr.Operation)
	})

	t.Run("mixed operand types", func(t *testing.T) {
		t.Parallel()

		// Fixed + uint256 is rejected before resolution:
		// user-defined operators never convert their operands

		expression := &ast.BinaryExpression{
			Operation: ast.OperationPlus,
			Left:      identifierExpression("a"),
			Right:     identifierExpression("x"),
		}

		declarations := append(
			fixedValueType(),
			usingOperator(nominalType("Fixed"), ast.OperationPlus, nominalType("add")),
			functionWithBody(
				"f",
				[]*ast.Parameter{
					parameter("a", typeAnnotation(nominalType("Fixed"))),
					parameter("x", typeAnnotation(nominalType("uint256"))),
				},
				expressionStatement(expression),
			),
		)

		checker := newTestChecker(t, &ast.Program{Declarations: declarations})

		errs := requireCheckerErrors(t, checker.Check(), 1)

		var invalidOperandsErr *InvalidBinaryOperandsError
		require.ErrorAs(t, errs[0], &invalidOperandsErr)
	})

	t.Run("built-in fallthrough", func(t *testing.T) {
		t.Parallel()

		// uint256 + uint256 uses the built-in operator,
		// no directive needed

		expression := &ast.BinaryExpression{
			Operation: ast.OperationPlus,
			Left:      identifierExpression("a"),
			Right:     identifierExpression("b"),
		}

		checker := newTestChecker(t, &ast.Program{
			Declarations: []ast.Declaration{
				functionWithBody(
					"f",
					[]*ast.Parameter{
						parameter("a", typeAnnotation(nominalType("uint256"))),
						parameter("b", typeAnnotation(nominalType("uint256"))),
					},
					expressionStatement(expression),
				),
			},
		})

		require.NoError(t, checker.Check())
	})

	t.Run("custom built-in handler", func(t *testing.T) {
		t.Parallel()

		// the embedding compiler can override built-in operator typing

		expression := &ast.BinaryExpression{
			Operation: ast.OperationPlus,
			Left:      identifierExpression("a"),
			Right:     identifierExpression("b"),
		}

		var handled bool

		program := &ast.Program{
			Declarations: []ast.Declaration{
				functionWithBody(
					"f",
					[]*ast.Parameter{
						parameter("a", typeAnnotation(nominalType("uint256"))),
						parameter("b", typeAnnotation(nominalType("uint256"))),
					},
					expressionStatement(expression),
				),
			},
		}

		checker, err := NewChecker(program, testLocation, nil, &Config{
			BuiltinBinaryOperatorHandler: func(
				operation ast.Operation,
				leftType Type,
				rightType Type,
			) (Type, bool) {
				handled = true
				return Uint256Type, true
			},
		})
		require.NoError(t, err)

		require.NoError(t, checker.Check())
		assert.True(t, handled)
	})
}

func TestCheckUnaryOperatorResolution(t *testing.T) {

	t.Parallel()

	t.Run("user-defined operator", func(t *testing.T) {
		t.Parallel()

		// using {neg as -} for Fixed;
		// function f(Fixed v) { -v; }

		expression := &ast.UnaryExpression{
			Operation:  ast.OperationMinus,
			Expression: identifierExpression("v"),
		}

		declarations := append(
			fixedValueType(),
			usingOperator(nominalType("Fixed"), ast.OperationMinus, nominalType("neg")),
			functionWithBody(
				"f",
				[]*ast.Parameter{
					parameter("v", typeAnnotation(nominalType("Fixed"))),
				},
				expressionStatement(expression),
			),
		)

		checker := newTestChecker(t, &ast.Program{Declarations: declarations})

		require.NoError(t, checker.Check())

		resolution, ok := checker.Elaboration.UnaryExpressionOperatorFunctions[expression]
		require.True(t, ok)
		assert.Equal(t, "neg", resolution.Entry.Callable.QualifiedName())
	})

	t.Run("missing operator", func(t *testing.T) {
		t.Parallel()

		expression := &ast.UnaryExpression{
			Operation:  ast.OperationBitwiseNot,
			Expression: identifierExpression("v"),
		}

		declarations := append(
			fixedValueType(),
			functionWithBody(
				"f",
				[]*ast.Parameter{
					parameter("v", typeAnnotation(nominalType("Fixed"))),
				},
				expressionStatement(expression),
			),
		)

		checker := newTestChecker(t, &ast.Program{Declarations: declarations})

		errs := requireCheckerErrors(t, checker.Check(), 1)

		var noOperatorErr *NoOperatorOverloadError
		require.ErrorAs(t, errs[0], &noOperatorErr)
	})

	t.Run("built-in fallthrough", func(t *testing.T) {
		t.Parallel()

		// !b on bool uses the built-in operator

		expression := &ast.UnaryExpression{
			Operation:  ast.OperationNot,
			Expression: identifierExpression("b"),
		}

		checker := newTestChecker(t, &ast.Program{
			Declarations: []ast.Declaration{
				functionWithBody(
					"f",
					[]*ast.Parameter{
						parameter("b", typeAnnotation(nominalType("bool"))),
					},
					expressionStatement(expression),
				),
			},
		})

		require.NoError(t, checker.Check())
	})

	t.Run("invalid built-in operand", func(t *testing.T) {
		t.Parallel()

		// unary minus on an unsigned integer

		expression := &ast.UnaryExpression{
			Operation:  ast.OperationMinus,
			Expression: identifierExpression("v"),
		}

		checker := newTestChecker(t, &ast.Program{
			Declarations: []ast.Declaration{
				functionWithBody(
					"f",
					[]*ast.Parameter{
						parameter("v", typeAnnotation(nominalType("uint256"))),
					},
					expressionStatement(expression),
				),
			},
		})

		errs := requireCheckerErrors(t, checker.Check(), 1)

		var invalidOperandErr *InvalidUnaryOperandError
		require.ErrorAs(t, errs[0], &invalidOperandErr)
	})
}

func TestBuiltinOperatorResults(t *testing.T) {

	t.Parallel()

	t.Run("binary", func(t *testing.T) {
		t.Parallel()

		tests := []struct {
			operation ast.Operation
			left      Type
			right     Type
			expected  Type
		}{
			{ast.OperationPlus, Uint8Type, Uint256Type, Uint256Type},
			{ast.OperationLess, Uint256Type, Uint256Type, TheBoolType},
			{ast.OperationEqual, TheAddressType, TheAddressPayableType, TheBoolType},
			{ast.OperationAnd, TheBoolType, TheBoolType, TheBoolType},
			{ast.OperationBitwiseAnd, Bytes4Type, Bytes4Type, Bytes4Type},
			{ast.OperationBitwiseLeftShift, Uint256Type, Uint8Type, Uint256Type},
		}

		for _, test := range tests {
			result, ok := builtinBinaryOperatorResult(test.operation, test.left, test.right)
			require.True(t, ok, "%s", test.operation.Symbol())
			assert.True(t, TypesEqual(test.expected, result), "%s", test.operation.Symbol())
		}

		_, ok := builtinBinaryOperatorResult(ast.OperationPlus, Uint256Type, Int256Type)
		assert.False(t, ok)

		_, ok = builtinBinaryOperatorResult(ast.OperationAnd, Uint256Type, Uint256Type)
		assert.False(t, ok)
	})

	t.Run("unary", func(t *testing.T) {
		t.Parallel()

		result, ok := builtinUnaryOperatorResult(ast.OperationMinus, Int256Type)
		require.True(t, ok)
		assert.True(t, TypesEqual(Int256Type, result))

		result, ok = builtinUnaryOperatorResult(ast.OperationBitwiseNot, Bytes32Type)
		require.True(t, ok)
		assert.True(t, TypesEqual(Bytes32Type, result))

		_, ok = builtinUnaryOperatorResult(ast.OperationMinus, Uint256Type)
		assert.False(t, ok)
	})
}
