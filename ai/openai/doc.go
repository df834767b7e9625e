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


// Package openai implements the ai interfaces against OpenAI-compatible APIs.
//
// It works with any service exposing the OpenAI REST surface, including
// local runtimes such as Ollama, LocalAI, and vLLM. Embeddings go through
// the embeddings endpoint; entity recognition goes through the chat endpoint
// in JSON mode, with response repair and parse retries for models that emit
// slightly malformed JSON.
package openai
