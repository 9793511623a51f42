// Copyright (c) 2026, The Wind Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package key defines the canonical physical key codes, logical modifier
// bitsets, and chord strings used across all backends. Key codes follow
// the USB HID usage table numbering, which every supported backend can
// be mapped onto.
package key

// Codes is the identity of a physical key, independent of keyboard
// layout. The numbering is the USB HID usage table for keyboards.
type Codes int32

const (
	CodeUnknown Codes = 0

	CodeA Codes = 4 + iota - 1
	CodeB
	CodeC
	CodeD
	CodeE
	CodeF
	CodeG
	CodeH
	CodeI
	CodeJ
	CodeK
	CodeL
	CodeM
	CodeN
	CodeO
	CodeP
	CodeQ
	CodeR
	CodeS
	CodeT
	CodeU
	CodeV
	CodeW
	CodeX
	CodeY
	CodeZ

	Code1
	Code2
	Code3
	Code4
	Code5
	Code6
	Code7
	Code8
	Code9
	Code0

	CodeReturnEnter
	CodeEscape
	CodeBackspace
	CodeTab
	CodeSpacebar
	CodeHyphenMinus
	CodeEqualSign
	CodeLeftSquareBracket
	CodeRightSquareBracket
	CodeBackslash
)

const (
	CodeSemicolon Codes = 51 + iota
	CodeApostrophe
	CodeGraveAccent
	CodeComma
	CodeFullStop
	CodeSlash
	CodeCapsLock

	CodeF1
	CodeF2
	CodeF3
	CodeF4
	CodeF5
	CodeF6
	CodeF7
	CodeF8
	CodeF9
	CodeF10
	CodeF11
	CodeF12
)

const (
	CodeHome Codes = 74 + iota
	CodePageUp
	CodeDelete
	CodeEnd
	CodePageDown
	CodeRightArrow
	CodeLeftArrow
	CodeDownArrow
	CodeUpArrow
)

const (
	CodeLeftControl Codes = 224 + iota
	CodeLeftShift
	CodeLeftAlt
	CodeLeftMeta
	CodeRightControl
	CodeRightShift
	CodeRightAlt
	CodeRightMeta
)

var codeNames = map[Codes]string{
	CodeUnknown:            "Unknown",
	CodeA:                  "A",
	CodeB:                  "B",
	CodeC:                  "C",
	CodeD:                  "D",
	CodeE:                  "E",
	CodeF:                  "F",
	CodeG:                  "G",
	CodeH:                  "H",
	CodeI:                  "I",
	CodeJ:                  "J",
	CodeK:                  "K",
	CodeL:                  "L",
	CodeM:                  "M",
	CodeN:                  "N",
	CodeO:                  "O",
	CodeP:                  "P",
	CodeQ:                  "Q",
	CodeR:                  "R",
	CodeS:                  "S",
	CodeT:                  "T",
	CodeU:                  "U",
	CodeV:                  "V",
	CodeW:                  "W",
	CodeX:                  "X",
	CodeY:                  "Y",
	CodeZ:                  "Z",
	Code1:                  "1",
	Code2:                  "2",
	Code3:                  "3",
	Code4:                  "4",
	Code5:                  "5",
	Code6:                  "6",
	Code7:                  "7",
	Code8:                  "8",
	Code9:                  "9",
	Code0:                  "0",
	CodeReturnEnter:        "ReturnEnter",
	CodeEscape:             "Escape",
	CodeBackspace:          "Backspace",
	CodeTab:                "Tab",
	CodeSpacebar:           "Spacebar",
	CodeHyphenMinus:        "HyphenMinus",
	CodeEqualSign:          "EqualSign",
	CodeLeftSquareBracket:  "LeftSquareBracket",
	CodeRightSquareBracket: "RightSquareBracket",
	CodeBackslash:          "Backslash",
	CodeSemicolon:          "Semicolon",
	CodeApostrophe:         "Apostrophe",
	CodeGraveAccent:        "GraveAccent",
	CodeComma:              "Comma",
	CodeFullStop:           "FullStop",
	CodeSlash:              "Slash",
	CodeCapsLock:           "CapsLock",
	CodeF1:                 "F1",
	CodeF2:                 "F2",
	CodeF3:                 "F3",
	CodeF4:                 "F4",
	CodeF5:                 "F5",
	CodeF6:                 "F6",
	CodeF7:                 "F7",
	CodeF8:                 "F8",
	CodeF9:                 "F9",
	CodeF10:                "F10",
	CodeF11:                "F11",
	CodeF12:                "F12",
	CodeHome:               "Home",
	CodePageUp:             "PageUp",
	CodeDelete:             "Delete",
	CodeEnd:                "End",
	CodePageDown:           "PageDown",
	CodeRightArrow:         "RightArrow",
	CodeLeftArrow:          "LeftArrow",
	CodeDownArrow:          "DownArrow",
	CodeUpArrow:            "UpArrow",
	CodeLeftControl:        "LeftControl",
	CodeLeftShift:          "LeftShift",
	CodeLeftAlt:            "LeftAlt",
	CodeLeftMeta:           "LeftMeta",
	CodeRightControl:       "RightControl",
	CodeRightShift:         "RightShift",
	CodeRightAlt:           "RightAlt",
	CodeRightMeta:          "RightMeta",
}

func (c Codes) String() string {
	if nm, ok := codeNames[c]; ok {
		return nm
	}
	return "Unknown"
}

// CodeRuneMap gives the rune for key codes that produce one directly on
// a US layout, used for translating physical key events into text when
// the backend provides none.
var CodeRuneMap = map[Codes]rune{
	CodeA: 'a', CodeB: 'b', CodeC: 'c', CodeD: 'd', CodeE: 'e',
	CodeF: 'f', CodeG: 'g', CodeH: 'h', CodeI: 'i', CodeJ: 'j',
	CodeK: 'k', CodeL: 'l', CodeM: 'm', CodeN: 'n', CodeO: 'o',
	CodeP: 'p', CodeQ: 'q', CodeR: 'r', CodeS: 's', CodeT: 't',
	CodeU: 'u', CodeV: 'v', CodeW: 'w', CodeX: 'x', CodeY: 'y',
	CodeZ: 'z',
	Code1: '1', Code2: '2', Code3: '3', Code4: '4', Code5: '5',
	Code6: '6', Code7: '7', Code8: '8', Code9: '9', Code0: '0',
	CodeSpacebar: ' ', CodeHyphenMinus: '-', CodeEqualSign: '=',
	CodeLeftSquareBracket: '[', CodeRightSquareBracket: ']',
	CodeBackslash: '\\', CodeSemicolon: ';', CodeApostrophe: '\'',
	CodeGraveAccent: '`', CodeComma: ',', CodeFullStop: '.',
	CodeSlash: '/',
}

// IsModifier reports whether the code is one of the modifier keys.
func (c Codes) IsModifier() bool {
	return c >= CodeLeftControl && c <= CodeRightMeta
}

// Modifier returns the logical modifier and physical location for a
// modifier key code. ok is false for non-modifier codes.
func (c Codes) Modifier() (mod Modifiers, loc Locations, ok bool) {
	switch c {
	case CodeLeftControl:
		return Control, Left, true
	case CodeRightControl:
		return Control, Right, true
	case CodeLeftShift:
		return Shift, Left, true
	case CodeRightShift:
		return Shift, Right, true
	case CodeLeftAlt:
		return Alt, Left, true
	case CodeRightAlt:
		return Alt, Right, true
	case CodeLeftMeta:
		return Meta, Left, true
	case CodeRightMeta:
		return Meta, Right, true
	}
	return 0, 0, false
}

// ModifierCode returns the key code for the given logical modifier at
// the given physical location.
func ModifierCode(mod Modifiers, loc Locations) Codes {
	var c Codes
	switch mod {
	case Control:
		c = CodeLeftControl
	case Shift:
		c = CodeLeftShift
	case Alt:
		c = CodeLeftAlt
	case Meta:
		c = CodeLeftMeta
	default:
		return CodeUnknown
	}
	if loc == Right {
		c += 4
	}
	return c
}
