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

// gatherAttachedMembers collects the binding entries
// attached to the given type that have the given role,
// in attachment order: global entries first,
// then lexical scopes from outermost to innermost.
//
// Duplicate attachments of the same function are collapsed.
func (checker *Checker) gatherAttachedMembers(
	receiverType Type,
	role Role,
	filter func(*BindingEntry) bool,
) []*BindingEntry {

	var entries []*BindingEntry
	seen := map[*Callable]struct{}{}

	gather := func(entry *BindingEntry) {
		if entry.Role != role {
			return
		}
		if filter != nil && !filter(entry) {
			return
		}
		if _, ok := seen[entry.Callable]; ok {
			return
		}
		seen[entry.Callable] = struct{}{}
		entries = append(entries, entry)
	}

	typeID := receiverType.ID()

	if checker.Config.LocalAttachmentsShadowGlobals {
		// Scoped directives hide matching global ones entirely
		checker.attachmentScopes.ForType(typeID, gather)
		if len(entries) == 0 {
			checker.globalAttachments.ForType(typeID, gather)
		}
		return entries
	}

	checker.globalAttachments.ForType(typeID, gather)
	checker.attachmentScopes.ForType(typeID, gather)

	return entries
}

// viableCandidates filters candidates down to those
// that can be invoked with the given argument types:
// the candidate takes the receiver plus the arguments,
// and each argument is implicitly convertible
// to the corresponding parameter
func viableCandidates(
	candidates []*BindingEntry,
	argumentTypes []TypeAnnotation,
) []*BindingEntry {

	var viable []*BindingEntry

	for _, candidate := range candidates {
		parameters := candidate.Callable.FunctionType.Parameters

		if len(parameters) != len(argumentTypes)+1 {
			continue
		}

		allConvertible := true
		for i, argumentType := range argumentTypes {
			parameterAnnotation := parameters[i+1].TypeAnnotation
			if !argumentType.IsImplicitlyConvertibleTo(parameterAnnotation) {
				allConvertible = false
				break
			}
		}

		if allConvertible {
			viable = append(viable, candidate)
		}
	}

	return viable
}

// mostSpecificCandidates filters viable candidates down to
// those not strictly less specific than another candidate.
//
// A candidate is strictly more specific than another if
// every parameter type is implicitly convertible to the
// other's corresponding parameter type, and at least one
// conversion does not hold in the opposite direction.
func mostSpecificCandidates(candidates []*BindingEntry) []*BindingEntry {
	if len(candidates) < 2 {
		return candidates
	}

	var result []*BindingEntry

	for _, candidate := range candidates {
		dominated := false
		for _, other := range candidates {
			if other == candidate {
				continue
			}
			if isStrictlyMoreSpecific(other.Callable, candidate.Callable) {
				dominated = true
				break
			}
		}
		if !dominated {
			result = append(result, candidate)
		}
	}

	return result
}

func isStrictlyMoreSpecific(a, b *Callable) bool {
	aParameters := a.FunctionType.Parameters
	bParameters := b.FunctionType.Parameters

	if len(aParameters) != len(bParameters) {
		return false
	}

	strict := false
	for i, aParameter := range aParameters {
		aType := aParameter.TypeAnnotation.Type
		bType := bParameters[i].TypeAnnotation.Type

		if !IsImplicitlyConvertible(aType, bType) {
			return false
		}
		if !IsImplicitlyConvertible(bType, aType) {
			strict = true
		}
	}

	return strict
}
