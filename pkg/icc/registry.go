/*
Copyright 2024 The iccinspect Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package icc

// elementDecoders maps a 4-byte element-type signature to the
// decoder that understands its payload layout. Populated once at
// package init; signatures absent from this map decode as Untyped.
// This replaces the source's signature-to-class reflective lookup
// with an explicit, immutable registry (spec.md §9).
var elementDecoders = map[string]elementDecoder{
	"XYZ ": decodeXYZArray,
	"curv": decodeCurve,
	"para": decodePara,
	"desc": decodeDescription,
	"text": decodeText,
	"mluc": decodeMLUC,
	"sf32": decodeSF32,
}
