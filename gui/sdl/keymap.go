package sdl

import (
	"github.com/kondrak/rust64-sub000/hardware/keyboard"
	"github.com/veandco/go-sdl2/sdl"
)

// sdlKeymap maps SDL keycodes onto the abstract C64 keys the keyboard
// package knows how to place on the matrix. Keys with no natural PC
// equivalent borrow the nearest free key, matching the host-keycode choices
// the original keycode_to_c64 table made.
var sdlKeymap = map[sdl.Keycode]keyboard.Key{
	sdl.K_0: keyboard.Key0, sdl.K_1: keyboard.Key1, sdl.K_2: keyboard.Key2,
	sdl.K_3: keyboard.Key3, sdl.K_4: keyboard.Key4, sdl.K_5: keyboard.Key5,
	sdl.K_6: keyboard.Key6, sdl.K_7: keyboard.Key7, sdl.K_8: keyboard.Key8,
	sdl.K_9: keyboard.Key9,

	sdl.K_a: keyboard.KeyA, sdl.K_b: keyboard.KeyB, sdl.K_c: keyboard.KeyC,
	sdl.K_d: keyboard.KeyD, sdl.K_e: keyboard.KeyE, sdl.K_f: keyboard.KeyF,
	sdl.K_g: keyboard.KeyG, sdl.K_h: keyboard.KeyH, sdl.K_i: keyboard.KeyI,
	sdl.K_j: keyboard.KeyJ, sdl.K_k: keyboard.KeyK, sdl.K_l: keyboard.KeyL,
	sdl.K_m: keyboard.KeyM, sdl.K_n: keyboard.KeyN, sdl.K_o: keyboard.KeyO,
	sdl.K_p: keyboard.KeyP, sdl.K_q: keyboard.KeyQ, sdl.K_r: keyboard.KeyR,
	sdl.K_s: keyboard.KeyS, sdl.K_t: keyboard.KeyT, sdl.K_u: keyboard.KeyU,
	sdl.K_v: keyboard.KeyV, sdl.K_w: keyboard.KeyW, sdl.K_x: keyboard.KeyX,
	sdl.K_y: keyboard.KeyY, sdl.K_z: keyboard.KeyZ,

	sdl.K_F1: keyboard.KeyF1, sdl.K_F2: keyboard.KeyF2, sdl.K_F3: keyboard.KeyF3,
	sdl.K_F4: keyboard.KeyF4, sdl.K_F5: keyboard.KeyF5, sdl.K_F6: keyboard.KeyF6,
	sdl.K_F7: keyboard.KeyF7, sdl.K_F8: keyboard.KeyF8,

	sdl.K_DOWN: keyboard.KeyDown, sdl.K_UP: keyboard.KeyUp,
	sdl.K_RIGHT: keyboard.KeyRight, sdl.K_LEFT: keyboard.KeyLeft,

	sdl.K_SPACE: keyboard.KeySpace, sdl.K_COMMA: keyboard.KeyComma,
	sdl.K_PERIOD: keyboard.KeyPeriod, sdl.K_SLASH: keyboard.KeySlash,
	sdl.K_KP_MULTIPLY: keyboard.KeyAsterisk,
	sdl.K_RETURN:       keyboard.KeyEnter,
	sdl.K_BACKSPACE:    keyboard.KeyDelete,
	sdl.K_BACKQUOTE:    keyboard.KeyArrowLeft,
	sdl.K_LSHIFT:       keyboard.KeyLeftShift,
	sdl.K_RSHIFT:       keyboard.KeyRightShift,

	sdl.K_MINUS:       keyboard.KeyPlus,
	sdl.K_EQUALS:      keyboard.KeyMinus,
	sdl.K_INSERT:      keyboard.KeyPound,
	sdl.K_HOME:        keyboard.KeyHome,
	sdl.K_LEFTBRACKET: keyboard.KeyAt,
	sdl.K_DELETE:      keyboard.KeyInsert,
	sdl.K_SEMICOLON:   keyboard.KeyColon,
	sdl.K_QUOTE:       keyboard.KeySemicolon,
	sdl.K_BACKSLASH:   keyboard.KeyEquals,
	sdl.K_TAB:         keyboard.KeyControl,
	sdl.K_LCTRL:       keyboard.KeyCommodore,
}
