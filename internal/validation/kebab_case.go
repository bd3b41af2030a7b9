// Copyright 2026 The pathless Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package validation

import (
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/iancoleman/strcase"
)

// KebabCase validates that a string field is written in kebab-case, like the names of routable
// components are.
type KebabCase struct{}

func (KebabCase) Tag() string { return "kebabcase" }

func (KebabCase) Validate(fl validator.FieldLevel) bool {
	val := fl.Field().String()

	return len(val) != 0 && strcase.ToKebab(val) == val
}

func (KebabCase) MessageTemplate() string { return "{0} must be written in kebab-case, got '{1}'" }

func (k KebabCase) Translate(ut ut.Translator, fe validator.FieldError) string {
	translation, err := ut.T(k.Tag(), fe.Field(), fe.Value().(string)) // nolint: forcetypeassert
	if err != nil {
		return fe.Error()
	}

	return translation
}
