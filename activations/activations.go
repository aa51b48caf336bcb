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

package activations

// Activation is a single scope frame,
// mapping names to values of type T.
type Activation[T any] struct {
	entries map[string]T
	Depth   int
}

func NewActivation[T any](depth int) *Activation[T] {
	return &Activation[T]{
		Depth: depth,
	}
}

func (a *Activation[T]) Find(name string) (result T, exists bool) {
	if a.entries == nil {
		return
	}
	result, exists = a.entries[name]
	return
}

func (a *Activation[T]) Set(name string, value T) {
	if a.entries == nil {
		a.entries = make(map[string]T)
	}
	a.entries[name] = value
}

// Activations is a stack of activation records.
// Each entry represents a new scope.
type Activations[T any] struct {
	activations []*Activation[T]
}

func NewActivations[T any]() *Activations[T] {
	return &Activations[T]{}
}

func (a *Activations[T]) Current() *Activation[T] {
	count := len(a.activations)
	if count < 1 {
		return nil
	}
	return a.activations[count-1]
}

// Find returns the value bound to the given name
// in the innermost activation that declares it.
func (a *Activations[T]) Find(name string) (result T, exists bool) {
	for i := len(a.activations) - 1; i >= 0; i-- {
		result, exists = a.activations[i].Find(name)
		if exists {
			return
		}
	}
	return
}

// FindCurrent returns the value bound to the given name
// in the current activation only, ignoring outer activations.
func (a *Activations[T]) FindCurrent(name string) (result T, exists bool) {
	current := a.Current()
	if current == nil {
		return
	}
	return current.Find(name)
}

func (a *Activations[T]) Set(name string, value T) {
	current := a.Current()
	if current == nil {
		a.PushNew()
		current = a.Current()
	}
	current.Set(name, value)
}

func (a *Activations[T]) PushNew() {
	a.activations = append(
		a.activations,
		NewActivation[T](len(a.activations)),
	)
}

func (a *Activations[T]) Pop() {
	count := len(a.activations)
	if count < 1 {
		return
	}
	a.activations = a.activations[:count-1]
}

func (a *Activations[T]) Depth() int {
	return len(a.activations)
}
