package input

// NativeKey is a key code in GLFW numbering. The values match glfw.Key so the
// display layer can convert with a plain cast.
type NativeKey int

const (
	NativeUnknown      NativeKey = -1
	NativeSpace        NativeKey = 32
	NativeApostrophe   NativeKey = 39
	NativeComma        NativeKey = 44
	NativeMinus        NativeKey = 45
	NativePeriod       NativeKey = 46
	NativeSlash        NativeKey = 47
	Native0            NativeKey = 48
	Native1            NativeKey = 49
	Native2            NativeKey = 50
	Native3            NativeKey = 51
	Native4            NativeKey = 52
	Native5            NativeKey = 53
	Native6            NativeKey = 54
	Native7            NativeKey = 55
	Native8            NativeKey = 56
	Native9            NativeKey = 57
	NativeSemicolon    NativeKey = 59
	NativeEqual        NativeKey = 61
	NativeA            NativeKey = 65
	NativeB            NativeKey = 66
	NativeC            NativeKey = 67
	NativeD            NativeKey = 68
	NativeE            NativeKey = 69
	NativeF            NativeKey = 70
	NativeG            NativeKey = 71
	NativeH            NativeKey = 72
	NativeI            NativeKey = 73
	NativeJ            NativeKey = 74
	NativeK            NativeKey = 75
	NativeL            NativeKey = 76
	NativeM            NativeKey = 77
	NativeN            NativeKey = 78
	NativeO            NativeKey = 79
	NativeP            NativeKey = 80
	NativeQ            NativeKey = 81
	NativeR            NativeKey = 82
	NativeS            NativeKey = 83
	NativeT            NativeKey = 84
	NativeU            NativeKey = 85
	NativeV            NativeKey = 86
	NativeW            NativeKey = 87
	NativeX            NativeKey = 88
	NativeY            NativeKey = 89
	NativeZ            NativeKey = 90
	NativeLeftBracket  NativeKey = 91
	NativeBackslash    NativeKey = 92
	NativeRightBracket NativeKey = 93
	NativeGraveAccent  NativeKey = 96
	NativeWorld1       NativeKey = 161
	NativeWorld2       NativeKey = 162

	NativeEscape       NativeKey = 256
	NativeEnter        NativeKey = 257
	NativeTab          NativeKey = 258
	NativeBackspace    NativeKey = 259
	NativeInsert       NativeKey = 260
	NativeDelete       NativeKey = 261
	NativeRight        NativeKey = 262
	NativeLeft         NativeKey = 263
	NativeDown         NativeKey = 264
	NativeUp           NativeKey = 265
	NativePageUp       NativeKey = 266
	NativePageDown     NativeKey = 267
	NativeHome         NativeKey = 268
	NativeEnd          NativeKey = 269
	NativeCapsLock     NativeKey = 280
	NativeScrollLock   NativeKey = 281
	NativeNumLock      NativeKey = 282
	NativePrintScreen  NativeKey = 283
	NativePause        NativeKey = 284
	NativeF1           NativeKey = 290
	NativeF2           NativeKey = 291
	NativeF3           NativeKey = 292
	NativeF4           NativeKey = 293
	NativeF5           NativeKey = 294
	NativeF6           NativeKey = 295
	NativeF7           NativeKey = 296
	NativeF8           NativeKey = 297
	NativeF9           NativeKey = 298
	NativeF10          NativeKey = 299
	NativeF11          NativeKey = 300
	NativeF12          NativeKey = 301
	NativeF13          NativeKey = 302
	NativeF14          NativeKey = 303
	NativeF15          NativeKey = 304
	NativeF16          NativeKey = 305
	NativeF17          NativeKey = 306
	NativeF18          NativeKey = 307
	NativeF19          NativeKey = 308
	NativeF20          NativeKey = 309
	NativeF21          NativeKey = 310
	NativeF22          NativeKey = 311
	NativeF23          NativeKey = 312
	NativeF24          NativeKey = 313
	NativeF25          NativeKey = 314
	NativeKP0          NativeKey = 320
	NativeKP1          NativeKey = 321
	NativeKP2          NativeKey = 322
	NativeKP3          NativeKey = 323
	NativeKP4          NativeKey = 324
	NativeKP5          NativeKey = 325
	NativeKP6          NativeKey = 326
	NativeKP7          NativeKey = 327
	NativeKP8          NativeKey = 328
	NativeKP9          NativeKey = 329
	NativeKPDecimal    NativeKey = 330
	NativeKPDivide     NativeKey = 331
	NativeKPMultiply   NativeKey = 332
	NativeKPSubtract   NativeKey = 333
	NativeKPAdd        NativeKey = 334
	NativeKPEnter      NativeKey = 335
	NativeKPEqual      NativeKey = 336
	NativeLeftShift    NativeKey = 340
	NativeLeftControl  NativeKey = 341
	NativeLeftAlt      NativeKey = 342
	NativeLeftSuper    NativeKey = 343
	NativeRightShift   NativeKey = 344
	NativeRightControl NativeKey = 345
	NativeRightAlt     NativeKey = 346
	NativeRightSuper   NativeKey = 347
	NativeMenu         NativeKey = 348

	NativeLast = NativeMenu
)

// IsCharacterKey reports whether a native key normally produces a character
// callback after its press.
func (k NativeKey) IsCharacterKey() bool {
	return k > NativeSpace && k <= NativeGraveAccent
}

var nativeToLegacy = map[NativeKey]int{
	NativeSpace:      KeySpace,
	NativeApostrophe: KeyApostrophe,
	NativeComma:      KeyComma,
	NativeMinus:      KeyMinus,
	NativePeriod:     KeyPeriod,
	NativeSlash:      KeySlash,
	Native0:          Key0,
	Native1:          Key1,
	Native2:          Key2,
	Native3:          Key3,
	Native4:          Key4,
	Native5:          Key5,
	Native6:          Key6,
	Native7:          Key7,
	Native8:          Key8,
	Native9:          Key9,
	NativeSemicolon:  KeySemicolon,
	NativeEqual:      KeyEquals,
	NativeA:          KeyA, NativeB: KeyB, NativeC: KeyC, NativeD: KeyD,
	NativeE: KeyE, NativeF: KeyF, NativeG: KeyG, NativeH: KeyH,
	NativeI: KeyI, NativeJ: KeyJ, NativeK: KeyK, NativeL: KeyL,
	NativeM: KeyM, NativeN: KeyN, NativeO: KeyO, NativeP: KeyP,
	NativeQ: KeyQ, NativeR: KeyR, NativeS: KeyS, NativeT: KeyT,
	NativeU: KeyU, NativeV: KeyV, NativeW: KeyW, NativeX: KeyX,
	NativeY: KeyY, NativeZ: KeyZ,
	NativeLeftBracket:  KeyLBracket,
	NativeBackslash:    KeyBackslash,
	NativeRightBracket: KeyRBracket,
	NativeGraveAccent:  KeyGrave,

	NativeEscape:      KeyEscape,
	NativeEnter:       KeyReturn,
	NativeTab:         KeyTab,
	NativeBackspace:   KeyBack,
	NativeInsert:      KeyInsert,
	NativeDelete:      KeyDelete,
	NativeRight:       KeyRight,
	NativeLeft:        KeyLeft,
	NativeDown:        KeyDown,
	NativeUp:          KeyUp,
	NativePageUp:      KeyPrior,
	NativePageDown:    KeyNext,
	NativeHome:        KeyHome,
	NativeEnd:         KeyEnd,
	NativeCapsLock:    KeyCapital,
	NativeScrollLock:  KeyScroll,
	NativeNumLock:     KeyNumLock,
	NativePrintScreen: KeySysRq,
	NativePause:       KeyPause,

	NativeF1: KeyF1, NativeF2: KeyF2, NativeF3: KeyF3, NativeF4: KeyF4,
	NativeF5: KeyF5, NativeF6: KeyF6, NativeF7: KeyF7, NativeF8: KeyF8,
	NativeF9: KeyF9, NativeF10: KeyF10, NativeF11: KeyF11, NativeF12: KeyF12,
	NativeF13: KeyF13, NativeF14: KeyF14, NativeF15: KeyF15, NativeF16: KeyF16,
	NativeF17: KeyF17, NativeF18: KeyF18, NativeF19: KeyF19,

	NativeKP0: KeyNumpad0, NativeKP1: KeyNumpad1, NativeKP2: KeyNumpad2,
	NativeKP3: KeyNumpad3, NativeKP4: KeyNumpad4, NativeKP5: KeyNumpad5,
	NativeKP6: KeyNumpad6, NativeKP7: KeyNumpad7, NativeKP8: KeyNumpad8,
	NativeKP9:        KeyNumpad9,
	NativeKPDecimal:  KeyDecimal,
	NativeKPDivide:   KeyDivide,
	NativeKPMultiply: KeyMultiply,
	NativeKPSubtract: KeySubtract,
	NativeKPAdd:      KeyAdd,
	NativeKPEnter:    KeyNumpadEnter,
	NativeKPEqual:    KeyNumpadEquals,

	NativeLeftShift:    KeyLShift,
	NativeLeftControl:  KeyLControl,
	NativeLeftAlt:      KeyLMenu,
	NativeLeftSuper:    KeyLMeta,
	NativeRightShift:   KeyRShift,
	NativeRightControl: KeyRControl,
	NativeRightAlt:     KeyRMenu,
	NativeRightSuper:   KeyRMeta,
	NativeMenu:         KeyApps,
}

var legacyToNative = func() map[int]NativeKey {
	m := make(map[int]NativeKey, len(nativeToLegacy))
	for native, legacy := range nativeToLegacy {
		m[legacy] = native
	}
	return m
}()

// ToLegacy translates a native key to its legacy code, or KeyNone when the key
// has no legacy equivalent.
func ToLegacy(k NativeKey) int {
	if code, ok := nativeToLegacy[k]; ok {
		return code
	}
	return KeyNone
}

// ToNative translates a legacy key code to a native key, or NativeUnknown
func ToNative(code int) NativeKey {
	if k, ok := legacyToNative[code]; ok {
		return k
	}
	return NativeUnknown
}
