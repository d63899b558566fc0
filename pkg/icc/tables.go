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

// Immutable lookup tables for tagged header enums. Signatures not
// present in a table attach the literal description "None"; the raw
// tag is always retained regardless of whether it is recognized.

var colorSpaceSignatures = map[string]string{
	"XYZ ": "nCIEXYZ or PCSXYZ",
	"Lab ": "CIELAB or PCSLAB",
	"Luv ": "CIELUV",
	"YCbr": "YCbCr",
	"Yxy ": "CIEYxy",
	"RGB ": "RGB",
	"GRAY": "Gray",
	"HSV ": "HSV",
	"HLS ": "HLS",
	"CMYK": "CMYK",
	"CMY ": "CMY",
	"2CLR": "2 colour",
	"3CLR": "3 colour",
	"4CLR": "4 colour",
	"5CLR": "5 colour",
	"6CLR": "6 colour",
	"7CLR": "7 colour",
	"8CLR": "8 colour",
	"9CLR": "9 colour",
	"ACLR": "10 colour",
	"BCLR": "11 colour",
	"CCLR": "12 colour",
	"DCLR": "13 colour",
	"ECLR": "14 colour",
	"FCLR": "15 colour",
}

var deviceClassSignatures = map[string]string{
	"scnr": "Input device profile",
	"mntr": "Display device profile",
	"prtr": "Output device profile",
	"link": "DeviceLink profile",
	"spac": "ColorSpace profile",
	"abst": "Abstract profile",
	"nmcl": "NamedColor profile",
}

var primaryPlatformSignatures = map[string]string{
	"APPL": "Apple Computer, Inc.",
	"MSFT": "Microsoft Corporation",
	"SGI ": "Silicon Graphics, Inc.",
	"SUNW": "Sun Microsystems, Inc.",
}

var renderingIntentNames = map[uint32]string{
	0: "Perceptual",
	1: "Media-relative colorimetric",
	2: "Saturation",
	3: "ICC-absolute colorimetric",
}

const noDescription = "None"

func lookupDescription(table map[string]string, sig string) string {
	if d, ok := table[sig]; ok {
		return d
	}
	return noDescription
}
