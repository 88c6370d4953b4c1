package device

// KeyboardProduct is the USB product id of a supported Razer keyboard. The
// set is closed; it grows only when new products are added to the registry.
type KeyboardProduct uint16

const (
	KEYBOARD_BLACKWIDOW_ULTIMATE_2012    KeyboardProduct = 0x010d
	KEYBOARD_BLACKWIDOW_STEALTH_EDITION  KeyboardProduct = 0x010e
	KEYBOARD_ANANSI                      KeyboardProduct = 0x010f
	KEYBOARD_NOSTROMO                    KeyboardProduct = 0x0111
	KEYBOARD_ORBWEAVER                   KeyboardProduct = 0x0113
	KEYBOARD_BLACKWIDOW_ULTIMATE_2013    KeyboardProduct = 0x011a
	KEYBOARD_BLACKWIDOW_STEALTH          KeyboardProduct = 0x011b
	KEYBOARD_BLACKWIDOW_TE_2014          KeyboardProduct = 0x011c
	KEYBOARD_TARTARUS                    KeyboardProduct = 0x0201
	KEYBOARD_DEATHSTALKER_EXPERT         KeyboardProduct = 0x0202
	KEYBOARD_BLACKWIDOW_CHROMA           KeyboardProduct = 0x0203
	KEYBOARD_DEATHSTALKER_CHROMA         KeyboardProduct = 0x0204
	KEYBOARD_BLADE_STEALTH               KeyboardProduct = 0x0205
	KEYBOARD_ORBWEAVER_CHROMA            KeyboardProduct = 0x0207
	KEYBOARD_TARTARUS_CHROMA             KeyboardProduct = 0x0208
	KEYBOARD_BLACKWIDOW_CHROMA_TE        KeyboardProduct = 0x0209
	KEYBOARD_BLADE_QHD                   KeyboardProduct = 0x020f
	KEYBOARD_BLADE_PRO_LATE_2016         KeyboardProduct = 0x0210
	KEYBOARD_BLACKWIDOW_OVERWATCH        KeyboardProduct = 0x0211
	KEYBOARD_BLACKWIDOW_ULTIMATE_2016    KeyboardProduct = 0x0214
	KEYBOARD_BLACKWIDOW_X_CHROMA         KeyboardProduct = 0x0216
	KEYBOARD_BLACKWIDOW_X_ULTIMATE       KeyboardProduct = 0x0217
	KEYBOARD_BLACKWIDOW_X_CHROMA_TE      KeyboardProduct = 0x021a
	KEYBOARD_ORNATA_CHROMA               KeyboardProduct = 0x021e
	KEYBOARD_ORNATA                      KeyboardProduct = 0x021f
	KEYBOARD_BLADE_STEALTH_LATE_2016     KeyboardProduct = 0x0220
	KEYBOARD_BLACKWIDOW_CHROMA_V2        KeyboardProduct = 0x0221
	KEYBOARD_BLADE_LATE_2016             KeyboardProduct = 0x0224
	KEYBOARD_BLADE_PRO_2017              KeyboardProduct = 0x0225
	KEYBOARD_HUNTSMAN_ELITE              KeyboardProduct = 0x0226
	KEYBOARD_HUNTSMAN                    KeyboardProduct = 0x0227
	KEYBOARD_BLACKWIDOW_ELITE            KeyboardProduct = 0x0228
	KEYBOARD_CYNOSA_CHROMA               KeyboardProduct = 0x022a
	KEYBOARD_TARTARUS_V2                 KeyboardProduct = 0x022b
	KEYBOARD_CYNOSA_CHROMA_PRO           KeyboardProduct = 0x022c
	KEYBOARD_BLADE_STEALTH_MID_2017      KeyboardProduct = 0x022d
	KEYBOARD_BLADE_PRO_2017_FULLHD       KeyboardProduct = 0x022f
	KEYBOARD_BLADE_STEALTH_LATE_2017     KeyboardProduct = 0x0232
	KEYBOARD_BLADE_2018                  KeyboardProduct = 0x0233
	KEYBOARD_BLADE_PRO_2019              KeyboardProduct = 0x0234
	KEYBOARD_BLACKWIDOW_LITE             KeyboardProduct = 0x0235
	KEYBOARD_BLACKWIDOW_ESSENTIAL        KeyboardProduct = 0x0237
	KEYBOARD_BLADE_STEALTH_2019          KeyboardProduct = 0x0239
	KEYBOARD_BLADE_2019_ADV              KeyboardProduct = 0x023a
	KEYBOARD_BLADE_2018_BASE             KeyboardProduct = 0x023b
	KEYBOARD_CYNOSA_LITE                 KeyboardProduct = 0x023f
	KEYBOARD_BLADE_2018_MERCURY          KeyboardProduct = 0x0240
	KEYBOARD_BLACKWIDOW_2019             KeyboardProduct = 0x0241
	KEYBOARD_HUNTSMAN_TE                 KeyboardProduct = 0x0243
	KEYBOARD_BLADE_MID_2019_MERCURY      KeyboardProduct = 0x0245
	KEYBOARD_BLADE_2019_BASE             KeyboardProduct = 0x0246
	KEYBOARD_BLADE_STEALTH_LATE_2019     KeyboardProduct = 0x024a
	KEYBOARD_BLADE_PRO_LATE_2019         KeyboardProduct = 0x024c
	KEYBOARD_BLADE_STUDIO_EDITION_2019   KeyboardProduct = 0x024d
	KEYBOARD_BLACKWIDOW_V3               KeyboardProduct = 0x024e
	KEYBOARD_BLADE_STEALTH_EARLY_2020    KeyboardProduct = 0x0252
	KEYBOARD_BLADE_15_ADV_2020           KeyboardProduct = 0x0253
	KEYBOARD_BLADE_EARLY_2020_BASE       KeyboardProduct = 0x0255
	KEYBOARD_BLADE_PRO_EARLY_2020        KeyboardProduct = 0x0256
	KEYBOARD_HUNTSMAN_MINI               KeyboardProduct = 0x0257
	KEYBOARD_BLACKWIDOW_V3_MINI          KeyboardProduct = 0x0258
	KEYBOARD_BLADE_STEALTH_LATE_2020     KeyboardProduct = 0x0259
	KEYBOARD_BLACKWIDOW_V3_PRO_WIRED     KeyboardProduct = 0x025a
	KEYBOARD_BLACKWIDOW_V3_PRO_WIRELESS  KeyboardProduct = 0x025c
	KEYBOARD_ORNATA_V2                   KeyboardProduct = 0x025d
	KEYBOARD_CYNOSA_V2                   KeyboardProduct = 0x025e
	KEYBOARD_HUNTSMAN_V2_ANALOG          KeyboardProduct = 0x0266
	KEYBOARD_HUNTSMAN_MINI_JP            KeyboardProduct = 0x0269
	KEYBOARD_BOOK_2020                   KeyboardProduct = 0x026a
	KEYBOARD_HUNTSMAN_V2_TKL             KeyboardProduct = 0x026b
	KEYBOARD_HUNTSMAN_V2                 KeyboardProduct = 0x026c
	KEYBOARD_BLADE_15_ADV_EARLY_2021     KeyboardProduct = 0x026d
	KEYBOARD_BLADE_15_BASE_EARLY_2021    KeyboardProduct = 0x026f
	KEYBOARD_BLADE_14_2021               KeyboardProduct = 0x0270
	KEYBOARD_BLACKWIDOW_V3_MINI_WIRELESS KeyboardProduct = 0x0271
	KEYBOARD_BLADE_15_ADV_MID_2021       KeyboardProduct = 0x0276
	KEYBOARD_BLADE_17_PRO_MID_2021       KeyboardProduct = 0x0279
	KEYBOARD_BLACKWIDOW_V3_TK            KeyboardProduct = 0x0a24
)

// keyboardNames doubles as the registry membership set and the display name
// used when the HID descriptor carries no product string.
var keyboardNames = map[KeyboardProduct]string{
	KEYBOARD_BLACKWIDOW_ULTIMATE_2012:    "BlackWidow Ultimate 2012",
	KEYBOARD_BLACKWIDOW_STEALTH_EDITION:  "BlackWidow Stealth Edition",
	KEYBOARD_ANANSI:                      "Anansi",
	KEYBOARD_NOSTROMO:                    "Nostromo",
	KEYBOARD_ORBWEAVER:                   "Orbweaver",
	KEYBOARD_BLACKWIDOW_ULTIMATE_2013:    "BlackWidow Ultimate 2013",
	KEYBOARD_BLACKWIDOW_STEALTH:          "BlackWidow Stealth",
	KEYBOARD_BLACKWIDOW_TE_2014:          "BlackWidow Tournament Edition 2014",
	KEYBOARD_TARTARUS:                    "Tartarus",
	KEYBOARD_DEATHSTALKER_EXPERT:         "DeathStalker Expert",
	KEYBOARD_BLACKWIDOW_CHROMA:           "BlackWidow Chroma",
	KEYBOARD_DEATHSTALKER_CHROMA:         "DeathStalker Chroma",
	KEYBOARD_BLADE_STEALTH:               "Blade Stealth",
	KEYBOARD_ORBWEAVER_CHROMA:            "Orbweaver Chroma",
	KEYBOARD_TARTARUS_CHROMA:             "Tartarus Chroma",
	KEYBOARD_BLACKWIDOW_CHROMA_TE:        "BlackWidow Chroma Tournament Edition",
	KEYBOARD_BLADE_QHD:                   "Blade QHD",
	KEYBOARD_BLADE_PRO_LATE_2016:         "Blade Pro (Late 2016)",
	KEYBOARD_BLACKWIDOW_OVERWATCH:        "BlackWidow Overwatch",
	KEYBOARD_BLACKWIDOW_ULTIMATE_2016:    "BlackWidow Ultimate 2016",
	KEYBOARD_BLACKWIDOW_X_CHROMA:         "BlackWidow X Chroma",
	KEYBOARD_BLACKWIDOW_X_ULTIMATE:       "BlackWidow X Ultimate",
	KEYBOARD_BLACKWIDOW_X_CHROMA_TE:      "BlackWidow X Chroma Tournament Edition",
	KEYBOARD_ORNATA_CHROMA:               "Ornata Chroma",
	KEYBOARD_ORNATA:                      "Ornata",
	KEYBOARD_BLADE_STEALTH_LATE_2016:     "Blade Stealth (Late 2016)",
	KEYBOARD_BLACKWIDOW_CHROMA_V2:        "BlackWidow Chroma V2",
	KEYBOARD_BLADE_LATE_2016:             "Blade (Late 2016)",
	KEYBOARD_BLADE_PRO_2017:              "Blade Pro 2017",
	KEYBOARD_HUNTSMAN_ELITE:              "Huntsman Elite",
	KEYBOARD_HUNTSMAN:                    "Huntsman",
	KEYBOARD_BLACKWIDOW_ELITE:            "BlackWidow Elite",
	KEYBOARD_CYNOSA_CHROMA:               "Cynosa Chroma",
	KEYBOARD_TARTARUS_V2:                 "Tartarus V2",
	KEYBOARD_CYNOSA_CHROMA_PRO:           "Cynosa Chroma Pro",
	KEYBOARD_BLADE_STEALTH_MID_2017:      "Blade Stealth (Mid 2017)",
	KEYBOARD_BLADE_PRO_2017_FULLHD:       "Blade Pro 2017 FullHD",
	KEYBOARD_BLADE_STEALTH_LATE_2017:     "Blade Stealth (Late 2017)",
	KEYBOARD_BLADE_2018:                  "Blade 2018",
	KEYBOARD_BLADE_PRO_2019:              "Blade Pro 2019",
	KEYBOARD_BLACKWIDOW_LITE:             "BlackWidow Lite",
	KEYBOARD_BLACKWIDOW_ESSENTIAL:        "BlackWidow Essential",
	KEYBOARD_BLADE_STEALTH_2019:          "Blade Stealth 2019",
	KEYBOARD_BLADE_2019_ADV:              "Blade 2019 Advanced",
	KEYBOARD_BLADE_2018_BASE:             "Blade 2018 Base",
	KEYBOARD_CYNOSA_LITE:                 "Cynosa Lite",
	KEYBOARD_BLADE_2018_MERCURY:          "Blade 2018 Mercury",
	KEYBOARD_BLACKWIDOW_2019:             "BlackWidow 2019",
	KEYBOARD_HUNTSMAN_TE:                 "Huntsman Tournament Edition",
	KEYBOARD_BLADE_MID_2019_MERCURY:      "Blade (Mid 2019) Mercury",
	KEYBOARD_BLADE_2019_BASE:             "Blade 2019 Base",
	KEYBOARD_BLADE_STEALTH_LATE_2019:     "Blade Stealth (Late 2019)",
	KEYBOARD_BLADE_PRO_LATE_2019:         "Blade Pro (Late 2019)",
	KEYBOARD_BLADE_STUDIO_EDITION_2019:   "Blade Studio Edition 2019",
	KEYBOARD_BLACKWIDOW_V3:               "BlackWidow V3",
	KEYBOARD_BLADE_STEALTH_EARLY_2020:    "Blade Stealth (Early 2020)",
	KEYBOARD_BLADE_15_ADV_2020:           "Blade 15 Advanced 2020",
	KEYBOARD_BLADE_EARLY_2020_BASE:       "Blade (Early 2020) Base",
	KEYBOARD_BLADE_PRO_EARLY_2020:        "Blade Pro (Early 2020)",
	KEYBOARD_HUNTSMAN_MINI:               "Huntsman Mini",
	KEYBOARD_BLACKWIDOW_V3_MINI:          "BlackWidow V3 Mini",
	KEYBOARD_BLADE_STEALTH_LATE_2020:     "Blade Stealth (Late 2020)",
	KEYBOARD_BLACKWIDOW_V3_PRO_WIRED:     "BlackWidow V3 Pro (Wired)",
	KEYBOARD_BLACKWIDOW_V3_PRO_WIRELESS:  "BlackWidow V3 Pro (Wireless)",
	KEYBOARD_ORNATA_V2:                   "Ornata V2",
	KEYBOARD_CYNOSA_V2:                   "Cynosa V2",
	KEYBOARD_HUNTSMAN_V2_ANALOG:          "Huntsman V2 Analog",
	KEYBOARD_HUNTSMAN_MINI_JP:            "Huntsman Mini (JP)",
	KEYBOARD_BOOK_2020:                   "Book 13 2020",
	KEYBOARD_HUNTSMAN_V2_TKL:             "Huntsman V2 TKL",
	KEYBOARD_HUNTSMAN_V2:                 "Huntsman V2",
	KEYBOARD_BLADE_15_ADV_EARLY_2021:     "Blade 15 Advanced (Early 2021)",
	KEYBOARD_BLADE_15_BASE_EARLY_2021:    "Blade 15 Base (Early 2021)",
	KEYBOARD_BLADE_14_2021:               "Blade 14 2021",
	KEYBOARD_BLACKWIDOW_V3_MINI_WIRELESS: "BlackWidow V3 Mini (Wireless)",
	KEYBOARD_BLADE_15_ADV_MID_2021:       "Blade 15 Advanced (Mid 2021)",
	KEYBOARD_BLADE_17_PRO_MID_2021:       "Blade 17 Pro (Mid 2021)",
	KEYBOARD_BLACKWIDOW_V3_TK:            "BlackWidow V3 Tenkeyless",
}

// KeyboardProductFromPID reports whether pid is a supported keyboard.
func KeyboardProductFromPID(pid uint16) (KeyboardProduct, bool) {
	product := KeyboardProduct(pid)
	_, ok := keyboardNames[product]
	return product, ok
}

// PID returns the USB product id.
func (k KeyboardProduct) PID() uint16 {
	return uint16(k)
}

func (k KeyboardProduct) String() string {
	if name, ok := keyboardNames[k]; ok {
		return name
	}
	return "unknown keyboard"
}

// ConnectInfo returns the HID match criteria for the keyboard's management
// interface. Legacy keyboards expose it on interface 2 (usage 2, page 1);
// newer boards moved it to the consumer-control interface 3 (usage 1,
// page 0x0C).
func (k KeyboardProduct) ConnectInfo() DeviceConnectInfo {
	switch k {
	case KEYBOARD_BLACKWIDOW_V3, KEYBOARD_BLACKWIDOW_V3_MINI,
		KEYBOARD_BLACKWIDOW_V3_PRO_WIRELESS, KEYBOARD_BLACKWIDOW_V3_MINI_WIRELESS,
		KEYBOARD_HUNTSMAN_V2_ANALOG, KEYBOARD_HUNTSMAN_V2_TKL, KEYBOARD_HUNTSMAN_V2:
		return modernKeyboardConnectInfo
	default:
		return legacyKeyboardConnectInfo
	}
}

// TransactionDevice returns the routing byte this keyboard family expects.
func (k KeyboardProduct) TransactionDevice() TransactionDevice {
	switch k {
	case KEYBOARD_TARTARUS_V2, KEYBOARD_BLACKWIDOW_ELITE, KEYBOARD_CYNOSA_V2,
		KEYBOARD_ORNATA_V2, KEYBOARD_HUNTSMAN_V2_ANALOG, KEYBOARD_BLACKWIDOW_V3_MINI:
		return TRANSACTION_DEVICE_ZERO
	case KEYBOARD_BLACKWIDOW_V3_MINI_WIRELESS:
		return TRANSACTION_DEVICE_FOUR
	default:
		return TRANSACTION_DEVICE_DEFAULT
	}
}

// IsBlade reports whether the device is a Blade laptop.
func (k KeyboardProduct) IsBlade() bool {
	switch k {
	case KEYBOARD_BLADE_STEALTH,
		KEYBOARD_BLADE_STEALTH_LATE_2016,
		KEYBOARD_BLADE_PRO_LATE_2016,
		KEYBOARD_BLADE_2018,
		KEYBOARD_BLADE_2018_MERCURY,
		KEYBOARD_BLADE_2018_BASE,
		KEYBOARD_BLADE_2019_ADV,
		KEYBOARD_BLADE_MID_2019_MERCURY,
		KEYBOARD_BLADE_STUDIO_EDITION_2019,
		KEYBOARD_BLADE_QHD,
		KEYBOARD_BLADE_LATE_2016,
		KEYBOARD_BLADE_STEALTH_MID_2017,
		KEYBOARD_BLADE_STEALTH_LATE_2017,
		KEYBOARD_BLADE_STEALTH_2019,
		KEYBOARD_BLADE_PRO_2017,
		KEYBOARD_BLADE_PRO_2017_FULLHD,
		KEYBOARD_BLADE_2019_BASE,
		KEYBOARD_BLADE_STEALTH_LATE_2019,
		KEYBOARD_BLADE_PRO_2019,
		KEYBOARD_BLADE_PRO_LATE_2019,
		KEYBOARD_BLADE_STEALTH_EARLY_2020,
		KEYBOARD_BLADE_STEALTH_LATE_2020,
		KEYBOARD_BLADE_PRO_EARLY_2020,
		KEYBOARD_BOOK_2020,
		KEYBOARD_BLADE_15_ADV_2020,
		KEYBOARD_BLADE_EARLY_2020_BASE,
		KEYBOARD_BLADE_15_ADV_EARLY_2021,
		KEYBOARD_BLADE_15_ADV_MID_2021,
		KEYBOARD_BLADE_15_BASE_EARLY_2021,
		KEYBOARD_BLADE_17_PRO_MID_2021,
		KEYBOARD_BLADE_14_2021:
		return true
	}
	return false
}

// IsLogoOnly reports whether the only programmable LED is the logo.
func (k KeyboardProduct) IsLogoOnly() bool {
	switch k {
	case KEYBOARD_BLACKWIDOW_STEALTH,
		KEYBOARD_BLACKWIDOW_STEALTH_EDITION,
		KEYBOARD_BLACKWIDOW_ULTIMATE_2012,
		KEYBOARD_BLACKWIDOW_ULTIMATE_2013,
		KEYBOARD_BLACKWIDOW_TE_2014:
		return true
	}
	return false
}

// IsExtendedMatrix reports whether the keyboard is addressed through the
// extended matrix command class.
func (k KeyboardProduct) IsExtendedMatrix() bool {
	switch k {
	case KEYBOARD_TARTARUS_V2,
		KEYBOARD_ORNATA,
		KEYBOARD_ORNATA_CHROMA,
		KEYBOARD_HUNTSMAN_ELITE,
		KEYBOARD_HUNTSMAN_TE,
		KEYBOARD_HUNTSMAN_MINI,
		KEYBOARD_HUNTSMAN_MINI_JP,
		KEYBOARD_BLACKWIDOW_2019,
		KEYBOARD_HUNTSMAN,
		KEYBOARD_BLACKWIDOW_ESSENTIAL,
		KEYBOARD_CYNOSA_CHROMA,
		KEYBOARD_CYNOSA_CHROMA_PRO,
		KEYBOARD_CYNOSA_LITE,
		KEYBOARD_BLACKWIDOW_V3,
		KEYBOARD_BLACKWIDOW_V3_TK,
		KEYBOARD_BLACKWIDOW_V3_PRO_WIRED,
		KEYBOARD_BLACKWIDOW_ELITE,
		KEYBOARD_CYNOSA_V2,
		KEYBOARD_ORNATA_V2,
		KEYBOARD_HUNTSMAN_V2_ANALOG,
		KEYBOARD_BLACKWIDOW_V3_MINI,
		KEYBOARD_BLACKWIDOW_V3_MINI_WIRELESS:
		return true
	}
	return false
}
