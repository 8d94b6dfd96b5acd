// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package cangjie

import "github.com/dacolabs/flatcj/internal/translate"

// keywords are the reserved words and built-in type names of Cangjie.
var keywords = translate.NewKeywords(
	"as",
	"abstract",
	"break",
	"Bool",
	"case",
	"catch",
	"class",
	"const",
	"continue",
	"Rune",
	"do",
	"else",
	"enum",
	"extend",
	"for",
	"func",
	"false",
	"finally",
	"foreign",
	"Float16",
	"Float32",
	"Float64",
	"if",
	"in",
	"is",
	"init",
	"import",
	"interface",
	"Int8",
	"Int16",
	"Int32",
	"Int64",
	"IntNative",
	"let",
	"mut",
	"main",
	"macro",
	"match",
	"Nothing",
	"open",
	"operator",
	"override",
	"prop",
	"public",
	"package",
	"private",
	"protected",
	"quote",
	"redef",
	"return",
	"spawn",
	"super",
	"static",
	"struct",
	"synchronized",
	"try",
	"this",
	"true",
	"type",
	"throw",
	"This",
	"unsafe",
	"Unit",
	"UInt8",
	"UInt16",
	"UInt32",
	"UInt64",
	"UIntNative",
	"var",
	"VArray",
	"where",
	"while",
)
