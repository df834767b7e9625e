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


package openai

// repairJSON attempts to fix common JSON formatting issues from LLM responses:
// keys missing their opening quote and trailing commas before a closing
// bracket or brace.
func repairJSON(s string) string {
	in := []rune(s)
	out := make([]rune, 0, len(in)+16)

	i := 0
	for i < len(in) {
		ch := in[i]

		// Drop a comma that directly precedes a closing bracket or brace
		if ch == ',' {
			j := i + 1
			for j < len(in) && (in[j] == ' ' || in[j] == '\n' || in[j] == '\t') {
				j++
			}
			if j < len(in) && (in[j] == '}' || in[j] == ']') {
				i++
				continue
			}
		}

		// After { or , scan for an unquoted key such as `, type":`
		if ch == '{' || ch == ',' {
			out = append(out, ch)
			i++

			for i < len(in) && (in[i] == ' ' || in[i] == '\n' || in[i] == '\t') {
				out = append(out, in[i])
				i++
			}

			if i < len(in) && in[i] != '"' && isLetter(in[i]) {
				keyStart := i
				for i < len(in) && (isLetter(in[i]) || in[i] == '_' || in[i] == ' ') {
					i++
				}

				// A bare word ending in `":` means the opening quote was lost
				if i+1 < len(in) && in[i] == '"' && in[i+1] == ':' {
					out = append(out, '"')
					out = append(out, in[keyStart:i]...)
					continue
				}
				// Not a key; keep what was scanned
				out = append(out, in[keyStart:i]...)
			}
			continue
		}

		out = append(out, ch)
		i++
	}

	return string(out)
}
