// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package binarytree

import "github.com/pkg/errors"

// Failure kinds reported by the tree engines. Engines wrap these with
// context, so compare with errors.Is.
var (
	ErrAllocation     = errors.New("node allocation failed")
	ErrDuplicateValue = errors.New("value already present")
	ErrEmptyTree      = errors.New("tree is empty")
	ErrNotFound       = errors.New("value not found")
)
