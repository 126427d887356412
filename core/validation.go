// Copyright 2025 Poiesic Systems
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


package core

import "fmt"

// ValidateEntry validates an EmojiEntry according to domain rules.
//
// Validation rules:
//   - Symbol must not be empty
//   - Name must not be empty
//
// NOT validated:
//   - Keywords (an entry may carry none; its name is still indexed)
//   - Id uniqueness (the index builder checks the whole catalog)
func ValidateEntry(entry *EmojiEntry) error {
	if entry == nil {
		return fmt.Errorf("%w: entry is nil", ErrInvalidEntry)
	}

	if entry.Symbol == "" {
		return fmt.Errorf("%w: %w", ErrInvalidEntry, ErrEmptySymbol)
	}

	if entry.Name == "" {
		return fmt.Errorf("%w: %w", ErrInvalidEntry, ErrEmptyName)
	}

	return nil
}
