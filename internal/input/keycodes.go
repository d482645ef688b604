package input

// Legacy key codes. The numbering follows the DirectInput scan code layout
// that old game code persists in its option files.
const (
	KeyNone         = 0x00
	KeyEscape       = 0x01
	Key1            = 0x02
	Key2            = 0x03
	Key3            = 0x04
	Key4            = 0x05
	Key5            = 0x06
	Key6            = 0x07
	Key7            = 0x08
	Key8            = 0x09
	Key9            = 0x0A
	Key0            = 0x0B
	KeyMinus        = 0x0C
	KeyEquals       = 0x0D
	KeyBack         = 0x0E
	KeyTab          = 0x0F
	KeyQ            = 0x10
	KeyW            = 0x11
	KeyE            = 0x12
	KeyR            = 0x13
	KeyT            = 0x14
	KeyY            = 0x15
	KeyU            = 0x16
	KeyI            = 0x17
	KeyO            = 0x18
	KeyP            = 0x19
	KeyLBracket     = 0x1A
	KeyRBracket     = 0x1B
	KeyReturn       = 0x1C
	KeyLControl     = 0x1D
	KeyA            = 0x1E
	KeyS            = 0x1F
	KeyD            = 0x20
	KeyF            = 0x21
	KeyG            = 0x22
	KeyH            = 0x23
	KeyJ            = 0x24
	KeyK            = 0x25
	KeyL            = 0x26
	KeySemicolon    = 0x27
	KeyApostrophe   = 0x28
	KeyGrave        = 0x29
	KeyLShift       = 0x2A
	KeyBackslash    = 0x2B
	KeyZ            = 0x2C
	KeyX            = 0x2D
	KeyC            = 0x2E
	KeyV            = 0x2F
	KeyB            = 0x30
	KeyN            = 0x31
	KeyM            = 0x32
	KeyComma        = 0x33
	KeyPeriod       = 0x34
	KeySlash        = 0x35
	KeyRShift       = 0x36
	KeyMultiply     = 0x37
	KeyLMenu        = 0x38 // left Alt
	KeySpace        = 0x39
	KeyCapital      = 0x3A
	KeyF1           = 0x3B
	KeyF2           = 0x3C
	KeyF3           = 0x3D
	KeyF4           = 0x3E
	KeyF5           = 0x3F
	KeyF6           = 0x40
	KeyF7           = 0x41
	KeyF8           = 0x42
	KeyF9           = 0x43
	KeyF10          = 0x44
	KeyNumLock      = 0x45
	KeyScroll       = 0x46
	KeyNumpad7      = 0x47
	KeyNumpad8      = 0x48
	KeyNumpad9      = 0x49
	KeySubtract     = 0x4A
	KeyNumpad4      = 0x4B
	KeyNumpad5      = 0x4C
	KeyNumpad6      = 0x4D
	KeyAdd          = 0x4E
	KeyNumpad1      = 0x4F
	KeyNumpad2      = 0x50
	KeyNumpad3      = 0x51
	KeyNumpad0      = 0x52
	KeyDecimal      = 0x53
	KeyF11          = 0x57
	KeyF12          = 0x58
	KeyF13          = 0x64
	KeyF14          = 0x65
	KeyF15          = 0x66
	KeyF16          = 0x67
	KeyF17          = 0x68
	KeyF18          = 0x69
	KeyKana         = 0x70
	KeyF19          = 0x71
	KeyConvert      = 0x79
	KeyNoConvert    = 0x7B
	KeyYen          = 0x7D
	KeyNumpadEquals = 0x8D
	KeyCircumflex   = 0x90
	KeyAt           = 0x91
	KeyColon        = 0x92
	KeyUnderline    = 0x93
	KeyKanji        = 0x94
	KeyStop         = 0x95
	KeyAx           = 0x96
	KeyUnlabeled    = 0x97
	KeyNumpadEnter  = 0x9C
	KeyRControl     = 0x9D
	KeySection      = 0xA7
	KeyNumpadComma  = 0xB3
	KeyDivide       = 0xB5
	KeySysRq        = 0xB7
	KeyRMenu        = 0xB8 // right Alt
	KeyFunction     = 0xC4
	KeyPause        = 0xC5
	KeyHome         = 0xC7
	KeyUp           = 0xC8
	KeyPrior        = 0xC9 // page up
	KeyLeft         = 0xCB
	KeyRight        = 0xCD
	KeyEnd          = 0xCF
	KeyDown         = 0xD0
	KeyNext         = 0xD1 // page down
	KeyInsert       = 0xD2
	KeyDelete       = 0xD3
	KeyClear        = 0xDA
	KeyLMeta        = 0xDB
	KeyLWin         = KeyLMeta
	KeyRMeta        = 0xDC
	KeyRWin         = KeyRMeta
	KeyApps         = 0xDD
	KeyPower        = 0xDE
	KeySleep        = 0xDF
)

// KeyboardSize is the size of the legacy key state array
const KeyboardSize = 256

// CharNone means no character was translated for an event
const CharNone rune = 0

var keyNames = map[int]string{
	KeyNone: "NONE", KeyEscape: "ESCAPE",
	Key1: "1", Key2: "2", Key3: "3", Key4: "4", Key5: "5",
	Key6: "6", Key7: "7", Key8: "8", Key9: "9", Key0: "0",
	KeyMinus: "MINUS", KeyEquals: "EQUALS", KeyBack: "BACK", KeyTab: "TAB",
	KeyQ: "Q", KeyW: "W", KeyE: "E", KeyR: "R", KeyT: "T", KeyY: "Y",
	KeyU: "U", KeyI: "I", KeyO: "O", KeyP: "P",
	KeyLBracket: "LBRACKET", KeyRBracket: "RBRACKET", KeyReturn: "RETURN",
	KeyLControl: "LCONTROL",
	KeyA:        "A", KeyS: "S", KeyD: "D", KeyF: "F", KeyG: "G", KeyH: "H",
	KeyJ: "J", KeyK: "K", KeyL: "L",
	KeySemicolon: "SEMICOLON", KeyApostrophe: "APOSTROPHE", KeyGrave: "GRAVE",
	KeyLShift: "LSHIFT", KeyBackslash: "BACKSLASH",
	KeyZ: "Z", KeyX: "X", KeyC: "C", KeyV: "V", KeyB: "B", KeyN: "N", KeyM: "M",
	KeyComma: "COMMA", KeyPeriod: "PERIOD", KeySlash: "SLASH", KeyRShift: "RSHIFT",
	KeyMultiply: "MULTIPLY", KeyLMenu: "LMENU", KeySpace: "SPACE", KeyCapital: "CAPITAL",
	KeyF1: "F1", KeyF2: "F2", KeyF3: "F3", KeyF4: "F4", KeyF5: "F5",
	KeyF6: "F6", KeyF7: "F7", KeyF8: "F8", KeyF9: "F9", KeyF10: "F10",
	KeyNumLock: "NUMLOCK", KeyScroll: "SCROLL",
	KeyNumpad7: "NUMPAD7", KeyNumpad8: "NUMPAD8", KeyNumpad9: "NUMPAD9",
	KeySubtract: "SUBTRACT",
	KeyNumpad4:  "NUMPAD4", KeyNumpad5: "NUMPAD5", KeyNumpad6: "NUMPAD6",
	KeyAdd:     "ADD",
	KeyNumpad1: "NUMPAD1", KeyNumpad2: "NUMPAD2", KeyNumpad3: "NUMPAD3",
	KeyNumpad0: "NUMPAD0", KeyDecimal: "DECIMAL",
	KeyF11: "F11", KeyF12: "F12", KeyF13: "F13", KeyF14: "F14", KeyF15: "F15",
	KeyF16: "F16", KeyF17: "F17", KeyF18: "F18", KeyKana: "KANA", KeyF19: "F19",
	KeyConvert: "CONVERT", KeyNoConvert: "NOCONVERT", KeyYen: "YEN",
	KeyNumpadEquals: "NUMPADEQUALS", KeyCircumflex: "CIRCUMFLEX", KeyAt: "AT",
	KeyColon: "COLON", KeyUnderline: "UNDERLINE", KeyKanji: "KANJI", KeyStop: "STOP",
	KeyAx: "AX", KeyUnlabeled: "UNLABELED", KeyNumpadEnter: "NUMPADENTER",
	KeyRControl: "RCONTROL", KeySection: "SECTION", KeyNumpadComma: "NUMPADCOMMA",
	KeyDivide: "DIVIDE", KeySysRq: "SYSRQ", KeyRMenu: "RMENU", KeyFunction: "FUNCTION",
	KeyPause: "PAUSE", KeyHome: "HOME", KeyUp: "UP", KeyPrior: "PRIOR",
	KeyLeft: "LEFT", KeyRight: "RIGHT", KeyEnd: "END", KeyDown: "DOWN", KeyNext: "NEXT",
	KeyInsert: "INSERT", KeyDelete: "DELETE", KeyClear: "CLEAR",
	KeyLMeta: "LMETA", KeyRMeta: "RMETA", KeyApps: "APPS", KeyPower: "POWER", KeySleep: "SLEEP",
}

// Alternative spellings accepted by KeyIndex
var keyAliases = map[string]int{
	"LWIN": KeyLWin,
	"RWIN": KeyRWin,
}

// KeyName returns the legacy name of a key code, or "" if it has none
func KeyName(key int) string {
	return keyNames[key]
}

// KeyIndex returns the key code for a legacy key name, or -1 if unknown
func KeyIndex(name string) int {
	if code, ok := keyAliases[name]; ok {
		return code
	}
	for code, n := range keyNames {
		if n == name {
			return code
		}
	}
	return -1
}

// KeyCount returns the number of named key codes
func KeyCount() int {
	return len(keyNames)
}

// KeyCodes returns every named key code in ascending order
func KeyCodes() []int {
	codes := make([]int, 0, len(keyNames))
	for code := 0; code < KeyboardSize; code++ {
		if _, ok := keyNames[code]; ok {
			codes = append(codes, code)
		}
	}
	return codes
}
