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
	"github.com/basalt-lang/basalt/errors"
)

type Visibility uint

const (
	VisibilityNotSpecified Visibility = iota
	VisibilityInternal
	VisibilityPrivate
	VisibilityPublic
	VisibilityExternal
)

func (v Visibility) Keyword() string {
	switch v {
	case VisibilityNotSpecified:
		return ""
	case VisibilityInternal:
		return "internal"
	case VisibilityPrivate:
		return "private"
	case VisibilityPublic:
		return "public"
	case VisibilityExternal:
		return "external"
	}

	panic(errors.NewUnreachableError())
}

func (v Visibility) String() string {
	return v.Keyword()
}
