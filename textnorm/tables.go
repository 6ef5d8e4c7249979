// Copyright 2025 Florian Zenker (flo@znkr.io)
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

package textnorm

// punctuation maps full-width and typographic punctuation to a small ASCII alphabet. Decorative
// symbols and the mathematical operators in U+2295..U+22FF all collapse to '*'.
var punctuation = buildPunctuation()

// digits maps full-width digits to ASCII digits.
var digits = buildDigits()

func buildPunctuation() map[rune]string {
	m := map[rune]string{
		'。': ".",
		'，': ",",
		'；': ";",
		'：': ":",
		'！': "!",
		'？': "?",
		'“': `"`,
		'”': `"`,
		'‘': "'",
		'’': "'",
		'（': "(",
		'）': ")",
		'【': "[",
		'】': "]",
		'《': "<",
		'》': ">",
		'、': ",",
		'…': "...",
		'—': "-",
		'–': "-",
		'·': ".",
		'•': ".",
	}
	for _, r := range "※★☆◆◇■□▲△●○◎" {
		m[r] = "*"
	}
	for r := rune(0x2295); r <= 0x22FF; r++ {
		m[r] = "*"
	}
	return m
}

func buildDigits() map[rune]string {
	m := make(map[rune]string, 10)
	for i := range rune(10) {
		m['０'+i] = string('0' + i)
	}
	return m
}
