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
	"github.com/basalt-lang/basalt/common"
)

func TestCheckUsingDirectiveIncompatibleFirstParameter(t *testing.T) {

	t.Parallel()

	// library Math { function half(uint256 v) returns (uint256) }
	// struct Point { ... }
	// using {Math.half} for Point;
	//
	// half is never called, the attachment must still fail

	checker := newTestChecker(t, &ast.Program{
		Declarations: []ast.Declaration{
			libraryDeclaration(
				"Math",
				functionDeclaration(
					"half",
					[]*ast.Parameter{
						parameter("v", typeAnnotation(nominalType("uint256"))),
					},
					typeAnnotation(nominalType("uint256")),
				),
			),
			structDeclaration(
				"Point",
				fieldDeclaration("x", typeAnnotation(nominalType("uint256"))),
			),
			usingFunctions(
				nominalType("Point"),
				nominalType("Math", "half"),
			),
		},
	})

	errs := requireCheckerErrors(t, checker.Check(), 1)

	var incompatibleErr *IncompatibleFirstParameterError
	require.ErrorAs(t, errs[0], &incompatibleErr)
	assert.Equal(t, "Math.half", incompatibleErr.Callable.QualifiedName())
}

func TestCheckUsingDirectiveCompatibleFirstParameter(t *testing.T) {

	t.Parallel()

	t.Run("exact type", func(t *testing.T) {
		t.Parallel()

		checker := newTestChecker(t, &ast.Program{
			Declarations: []ast.Declaration{
				libraryDeclaration(
					"Math",
					functionDeclaration(
						"half",
						[]*ast.Parameter{
							parameter("v", typeAnnotation(nominalType("uint256"))),
						},
						typeAnnotation(nominalType("uint256")),
					),
				),
				usingFunctions(
					nominalType("uint256"),
					nominalType("Math", "half"),
				),
			},
		})

		require.NoError(t, checker.Check())
	})

	t.Run("widening conversion", func(t *testing.T) {
		t.Parallel()

		// uint8 is implicitly convertible to uint256

		checker := newTestChecker(t, &ast.Program{
			Declarations: []ast.Declaration{
				libraryDeclaration(
					"Math",
					functionDeclaration(
						"half",
						[]*ast.Parameter{
							parameter("v", typeAnnotation(nominalType("uint256"))),
						},
						typeAnnotation(nominalType("uint256")),
					),
				),
				usingFunctions(
					nominalType("uint8"),
					nominalType("Math", "half"),
				),
			},
		})

		require.NoError(t, checker.Check())
	})
}

func TestCheckUsingDirectiveFreeFunction(t *testing.T) {

	t.Parallel()

	// function double(uint256 v) returns (uint256)
	// using {double} for uint256;

	checker := newTestChecker(t, &ast.Program{
		Declarations: []ast.Declaration{
			functionDeclaration(
				"double",
				[]*ast.Parameter{
					parameter("v", typeAnnotation(nominalType("uint256"))),
				},
				typeAnnotation(nominalType("uint256")),
			),
			usingFunctions(
				nominalType("uint256"),
				nominalType("double"),
			),
		},
	})

	require.NoError(t, checker.Check())
}

func TestCheckUsingDirectiveUnknownFunction(t *testing.T) {

	t.Parallel()

	t.Run("free function", func(t *testing.T) {
		t.Parallel()

		checker := newTestChecker(t, &ast.Program{
			Declarations: []ast.Declaration{
				usingFunctions(
					nominalType("uint256"),
					nominalType("missing"),
				),
			},
		})

		errs := requireCheckerErrors(t, checker.Check(), 1)

		var notDeclaredErr *NotDeclaredError
		require.ErrorAs(t, errs[0], &notDeclaredErr)
		assert.Equal(t, "missing", notDeclaredErr.Name)
	})

	t.Run("library function", func(t *testing.T) {
		t.Parallel()

		checker := newTestChecker(t, &ast.Program{
			Declarations: []ast.Declaration{
				libraryDeclaration("Math"),
				usingFunctions(
					nominalType("uint256"),
					nominalType("Math", "missing"),
				),
			},
		})

		errs := requireCheckerErrors(t, checker.Check(), 1)

		var notDeclaredErr *NotDeclaredError
		require.ErrorAs(t, errs[0], &notDeclaredErr)
		assert.Equal(t, "missing", notDeclaredErr.Name)
	})
}

func TestCheckUsingDirectiveWholeLibraryIsUnchecked(t *testing.T) {

	t.Parallel()

	// `using Math for Point;` must not validate first parameters:
	// the library's unrelated functions simply become non-viable candidates

	checker := newTestChecker(t, &ast.Program{
		Declarations: []ast.Declaration{
			libraryDeclaration(
				"Math",
				functionDeclaration(
					"half",
					[]*ast.Parameter{
						parameter("v", typeAnnotation(nominalType("uint256"))),
					},
					typeAnnotation(nominalType("uint256")),
				),
			),
			structDeclaration("Point"),
			usingLibrary("Math", nominalType("Point")),
		},
	})

	require.NoError(t, checker.Check())
}

func TestCheckUsingDirectiveOperator(t *testing.T) {

	t.Parallel()

	pointStruct := func() *ast.StructDeclaration {
		return structDeclaration(
			"Point",
			fieldDeclaration("x", typeAnnotation(nominalType("uint256"))),
		)
	}

	addFunction := func(secondParameter *ast.TypeAnnotation) *ast.FunctionDeclaration {
		return functionDeclaration(
			"add",
			[]*ast.Parameter{
				parameter("a", locatedTypeAnnotation(common.DataLocationMemory, nominalType("Point"))),
				parameter("b", secondParameter),
			},
			locatedTypeAnnotation(common.DataLocationMemory, nominalType("Point")),
		)
	}

	t.Run("valid", func(t *testing.T) {
		t.Parallel()

		// using {add as +} for Point;
		// with add(Point, Point) -> Point

		checker := newTestChecker(t, &ast.Program{
			Declarations: []ast.Declaration{
				pointStruct(),
				addFunction(locatedTypeAnnotation(common.DataLocationMemory, nominalType("Point"))),
				usingOperator(
					nominalType("Point"),
					ast.OperationPlus,
					nominalType("add"),
				),
			},
		})

		require.NoError(t, checker.Check())
	})

	t.Run("wrong parameter type", func(t *testing.T) {
		t.Parallel()

		// add(Point, uint256) -> Point must be rejected

		checker := newTestChecker(t, &ast.Program{
			Declarations: []ast.Declaration{
				pointStruct(),
				addFunction(typeAnnotation(nominalType("uint256"))),
				usingOperator(
					nominalType("Point"),
					ast.OperationPlus,
					nominalType("add"),
				),
			},
		})

		errs := requireCheckerErrors(t, checker.Check(), 1)

		var mismatchErr *OperatorTypeMismatchError
		require.ErrorAs(t, errs[0], &mismatchErr)
		assert.Equal(t, ast.OperationPlus, mismatchErr.Operation)
	})

	t.Run("mismatched data locations", func(t *testing.T) {
		t.Parallel()

		// second parameter is storage while the first is memory

		checker := newTestChecker(t, &ast.Program{
			Declarations: []ast.Declaration{
				pointStruct(),
				addFunction(locatedTypeAnnotation(common.DataLocationStorage, nominalType("Point"))),
				usingOperator(
					nominalType("Point"),
					ast.OperationPlus,
					nominalType("add"),
				),
			},
		})

		errs := requireCheckerErrors(t, checker.Check(), 1)

		var mismatchErr *OperatorTypeMismatchError
		require.ErrorAs(t, errs[0], &mismatchErr)
	})

	t.Run("wrong arity", func(t *testing.T) {
		t.Parallel()

		// a binary operator cannot be bound to a one-parameter function

		checker := newTestChecker(t, &ast.Program{
			Declarations: []ast.Declaration{
				pointStruct(),
				functionDeclaration(
					"negate",
					[]*ast.Parameter{
						parameter("p", locatedTypeAnnotation(common.DataLocationMemory, nominalType("Point"))),
					},
					locatedTypeAnnotation(common.DataLocationMemory, nominalType("Point")),
				),
				usingOperator(
					nominalType("Point"),
					ast.OperationPlus,
					nominalType("negate"),
				),
			},
		})

		errs := requireCheckerErrors(t, checker.Check(), 1)

		var mismatchErr *OperatorTypeMismatchError
		require.ErrorAs(t, errs[0], &mismatchErr)
	})

	t.Run("unary", func(t *testing.T) {
		t.Parallel()

		// using {negate as -} for Point;

		checker := newTestChecker(t, &ast.Program{
			Declarations: []ast.Declaration{
				pointStruct(),
				functionDeclaration(
					"negate",
					[]*ast.Parameter{
						parameter("p", locatedTypeAnnotation(common.DataLocationMemory, nominalType("Point"))),
					},
					locatedTypeAnnotation(common.DataLocationMemory, nominalType("Point")),
				),
				usingOperator(
					nominalType("Point"),
					ast.OperationMinus,
					nominalType("negate"),
				),
			},
		})

		require.NoError(t, checker.Check())
	})

	t.Run("non-definable operator", func(t *testing.T) {
		t.Parallel()

		// logical && cannot be user-defined

		checker := newTestChecker(t, &ast.Program{
			Declarations: []ast.Declaration{
				pointStruct(),
				addFunction(locatedTypeAnnotation(common.DataLocationMemory, nominalType("Point"))),
				usingOperator(
					nominalType("Point"),
					ast.OperationAnd,
					nominalType("add"),
				),
			},
		})

		errs := requireCheckerErrors(t, checker.Check(), 1)

		var invalidOperatorErr *InvalidOperatorError
		require.ErrorAs(t, errs[0], &invalidOperatorErr)
	})

	t.Run("built-in target", func(t *testing.T) {
		t.Parallel()

		checker := newTestChecker(t, &ast.Program{
			Declarations: []ast.Declaration{
				functionDeclaration(
					"add",
					[]*ast.Parameter{
						parameter("a", typeAnnotation(nominalType("uint256"))),
						parameter("b", typeAnnotation(nominalType("uint256"))),
					},
					typeAnnotation(nominalType("uint256")),
				),
				usingOperator(
					nominalType("uint256"),
					ast.OperationPlus,
					nominalType("add"),
				),
			},
		})

		errs := requireCheckerErrors(t, checker.Check(), 1)

		var invalidTargetErr *InvalidOperatorTargetError
		require.ErrorAs(t, errs[0], &invalidTargetErr)
	})
}

func TestCheckUsingDirectiveWildcard(t *testing.T) {

	t.Parallel()

	mathLibrary := func() *ast.ContractDeclaration {
		return libraryDeclaration(
			"Math",
			functionDeclaration(
				"half",
				[]*ast.Parameter{
					parameter("v", typeAnnotation(nominalType("uint256"))),
				},
				typeAnnotation(nominalType("uint256")),
			),
		)
	}

	t.Run("in contract", func(t *testing.T) {
		t.Parallel()

		// contract C { using Math for *; function f(uint256 v) { v.half(); } }

		checker := newTestChecker(t, &ast.Program{
			Declarations: []ast.Declaration{
				mathLibrary(),
				contractDeclaration(
					"C",
					&ast.UsingForDeclaration{
						Library: nominalType("Math"),
					},
					functionWithBody(
						"f",
						[]*ast.Parameter{
							parameter("v", typeAnnotation(nominalType("uint256"))),
						},
						expressionStatement(memberCall("v", "half")),
					),
				),
			},
		})

		require.NoError(t, checker.Check())
	})

	t.Run("at file scope", func(t *testing.T) {
		t.Parallel()

		checker := newTestChecker(t, &ast.Program{
			Declarations: []ast.Declaration{
				mathLibrary(),
				&ast.UsingForDeclaration{
					Library: nominalType("Math"),
				},
			},
		})

		errs := requireCheckerErrors(t, checker.Check(), 1)

		var wildcardErr *InvalidWildcardTargetError
		require.ErrorAs(t, errs[0], &wildcardErr)
	})
}

func TestCheckUsingDirectiveGlobal(t *testing.T) {

	t.Parallel()

	t.Run("valid", func(t *testing.T) {
		t.Parallel()

		checker := newTestChecker(t, &ast.Program{
			Declarations: []ast.Declaration{
				structDeclaration("Point"),
				functionDeclaration(
					"norm",
					[]*ast.Parameter{
						parameter("p", locatedTypeAnnotation(common.DataLocationMemory, nominalType("Point"))),
					},
					typeAnnotation(nominalType("uint256")),
				),
				global(usingFunctions(
					nominalType("Point"),
					nominalType("norm"),
				)),
			},
		})

		require.NoError(t, checker.Check())
		require.Equal(t, 1, checker.GlobalAttachments().Count())
	})

	t.Run("built-in target", func(t *testing.T) {
		t.Parallel()

		checker := newTestChecker(t, &ast.Program{
			Declarations: []ast.Declaration{
				functionDeclaration(
					"double",
					[]*ast.Parameter{
						parameter("v", typeAnnotation(nominalType("uint256"))),
					},
					typeAnnotation(nominalType("uint256")),
				),
				global(usingFunctions(
					nominalType("uint256"),
					nominalType("double"),
				)),
			},
		})

		errs := requireCheckerErrors(t, checker.Check(), 1)

		var globalTargetErr *InvalidGlobalTargetError
		require.ErrorAs(t, errs[0], &globalTargetErr)
	})

	t.Run("in contract", func(t *testing.T) {
		t.Parallel()

		// `global` is only allowed at file level

		checker := newTestChecker(t, &ast.Program{
			Declarations: []ast.Declaration{
				structDeclaration("Point"),
				functionDeclaration(
					"norm",
					[]*ast.Parameter{
						parameter("p", locatedTypeAnnotation(common.DataLocationMemory, nominalType("Point"))),
					},
					typeAnnotation(nominalType("uint256")),
				),
				contractDeclaration(
					"C",
					global(usingFunctions(
						nominalType("Point"),
						nominalType("norm"),
					)),
				),
			},
		})

		errs := requireCheckerErrors(t, checker.Check(), 1)

		var globalTargetErr *InvalidGlobalTargetError
		require.ErrorAs(t, errs[0], &globalTargetErr)
	})
}

func TestCheckUsingDirectiveIdempotence(t *testing.T) {

	t.Parallel()

	// collecting the same unmodified program twice
	// must not duplicate global attachments

	program := &ast.Program{
		Declarations: []ast.Declaration{
			structDeclaration("Point"),
			functionDeclaration(
				"norm",
				[]*ast.Parameter{
					parameter("p", locatedTypeAnnotation(common.DataLocationMemory, nominalType("Point"))),
				},
				typeAnnotation(nominalType("uint256")),
			),
			global(usingFunctions(
				nominalType("Point"),
				nominalType("norm"),
			)),
		},
	}

	checker := newTestChecker(t, program)

	checker.CollectGlobalDirectives()
	require.Equal(t, 1, checker.GlobalAttachments().Count())

	checker.CollectGlobalDirectives()
	require.Equal(t, 1, checker.GlobalAttachments().Count())

	globals := checker.GlobalAttachments()
	otherChecker, err := NewChecker(program, testLocation, globals, &Config{})
	require.NoError(t, err)

	otherChecker.CollectGlobalDirectives()
	require.Equal(t, 1, globals.Count())
}
