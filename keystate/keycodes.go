package keystate

import "strings"

// Rawcodes maps a key name from the configuration to the hook rawcodes it
// can arrive as. Modifier keys map to both their left and right variants.
// Unknown names map to nil.
func Rawcodes(keyName string) []uint16 {
	k := strings.ToLower(strings.TrimSpace(keyName))
	switch k {
	case "":
		return nil
	case "ctrl":
		return []uint16{162, 163} // VK_LCONTROL, VK_RCONTROL
	case "alt":
		return []uint16{164, 165} // VK_LMENU, VK_RMENU
	case "shift":
		return []uint16{160, 161} // VK_LSHIFT, VK_RSHIFT
	case "space":
		return []uint16{32}
	case "esc", "escape":
		return []uint16{27}
	}
	// Letters a-z share the VK codes of their upper-case ASCII values.
	if len(k) == 1 && k[0] >= 'a' && k[0] <= 'z' {
		return []uint16{uint16(k[0] - 'a' + 'A')}
	}
	// Digits 0-9 map directly to their ASCII values.
	if len(k) == 1 && k[0] >= '0' && k[0] <= '9' {
		return []uint16{uint16(k[0])}
	}
	// Function keys F1-F12, VK_F1=0x70.
	if strings.HasPrefix(k, "f") {
		switch k {
		case "f10":
			return []uint16{0x79}
		case "f11":
			return []uint16{0x7A}
		case "f12":
			return []uint16{0x7B}
		}
		if len(k) == 2 && k[1] >= '1' && k[1] <= '9' {
			return []uint16{uint16(0x70 + k[1] - '1')}
		}
	}
	return nil
}
