package device

// CommandClass groups related commands on the wire.
// A brightness request to class StandardLED and one to class ExtendedMatrix
// address entirely different hardware generations.
type CommandClass uint8

const (
	CLASS_STANDARD_DEVICE       CommandClass = 0x00
	CLASS_STANDARD_LED          CommandClass = 0x03
	CLASS_MISC                  CommandClass = 0x07
	CLASS_EXTENDED_MATRIX_MOUSE CommandClass = 0x0D
	CLASS_BLADE                 CommandClass = 0x0E
	CLASS_EXTENDED_MATRIX       CommandClass = 0x0F
)

// Command is one kind of request the protocol can carry. The set is closed;
// each member maps to a fixed (class, base id, reply size) triple.
type Command int

const (
	CMD_DEVICE_MODE Command = iota
	CMD_SERIAL
	CMD_FIRMWARE_VERSION
	CMD_LED_STATE
	CMD_LED_BLINKING
	CMD_LED_RGB
	CMD_LED_EFFECT
	CMD_LED_BRIGHTNESS
	CMD_STANDARD_MATRIX_EFFECT
	CMD_STANDARD_MATRIX_CUSTOM_FRAME
	CMD_EXTENDED_MATRIX_BRIGHTNESS
	CMD_BLADE_BRIGHTNESS
	CMD_BATTERY_CHARGE
	CMD_CHARGING_STATUS
)

// commandParts is the wire identity of a command: its class byte, its base
// id (before the direction bit is OR'd in), and the payload size the device
// declares when replying to it.
type commandParts struct {
	class     CommandClass
	id        uint8
	replySize uint8
}

var commandTable = map[Command]commandParts{
	CMD_DEVICE_MODE:                  {CLASS_STANDARD_DEVICE, 0x04, 2},
	CMD_SERIAL:                       {CLASS_STANDARD_DEVICE, 0x02, 22},
	CMD_FIRMWARE_VERSION:             {CLASS_STANDARD_DEVICE, 0x01, 2},
	CMD_LED_STATE:                    {CLASS_STANDARD_LED, 0x00, 3},
	CMD_LED_BLINKING:                 {CLASS_STANDARD_LED, 0x04, 4},
	CMD_LED_RGB:                      {CLASS_STANDARD_LED, 0x01, 5},
	CMD_LED_EFFECT:                   {CLASS_STANDARD_LED, 0x02, 3},
	CMD_LED_BRIGHTNESS:               {CLASS_STANDARD_LED, 0x03, 3},
	CMD_STANDARD_MATRIX_EFFECT:       {CLASS_STANDARD_LED, 0x0A, 8},
	CMD_STANDARD_MATRIX_CUSTOM_FRAME: {CLASS_STANDARD_LED, 0x0B, 70},
	CMD_EXTENDED_MATRIX_BRIGHTNESS:   {CLASS_EXTENDED_MATRIX, 0x04, 3},
	CMD_BLADE_BRIGHTNESS:             {CLASS_BLADE, 0x04, 2},
	CMD_BATTERY_CHARGE:               {CLASS_MISC, 0x80, 2},
	CMD_CHARGING_STATUS:              {CLASS_MISC, 0x84, 2},
}

func (c Command) parts() commandParts {
	return commandTable[c]
}

func (c Command) String() string {
	switch c {
	case CMD_DEVICE_MODE:
		return "device mode"
	case CMD_SERIAL:
		return "serial"
	case CMD_FIRMWARE_VERSION:
		return "firmware version"
	case CMD_LED_STATE:
		return "led state"
	case CMD_LED_BLINKING:
		return "led blinking"
	case CMD_LED_RGB:
		return "led rgb"
	case CMD_LED_EFFECT:
		return "led effect"
	case CMD_LED_BRIGHTNESS:
		return "led brightness"
	case CMD_STANDARD_MATRIX_EFFECT:
		return "standard matrix effect"
	case CMD_STANDARD_MATRIX_CUSTOM_FRAME:
		return "standard matrix custom frame"
	case CMD_EXTENDED_MATRIX_BRIGHTNESS:
		return "extended matrix brightness"
	case CMD_BLADE_BRIGHTNESS:
		return "blade brightness"
	case CMD_BATTERY_CHARGE:
		return "battery charge"
	case CMD_CHARGING_STATUS:
		return "charging status"
	default:
		return "unknown"
	}
}

// Led identifies one of the addressable LEDs or LED groups on a device.
type Led uint8

const (
	LED_ZERO           Led = 0x00
	LED_SCROLL_WHEEL   Led = 0x01
	LED_BATTERY        Led = 0x03
	LED_LOGO           Led = 0x04
	LED_BACKLIGHT      Led = 0x05
	LED_MACRO          Led = 0x07
	LED_GAME           Led = 0x08
	LED_RED_PROFILE    Led = 0x0C
	LED_GREEN_PROFILE  Led = 0x0D
	LED_BLUE_PROFILE   Led = 0x0E
	LED_RIGHT_SIDE     Led = 0x10
	LED_LEFT_SIDE      Led = 0x11
	LED_CHARGING       Led = 0x20
	LED_FAST_CHARGING  Led = 0x21
	LED_FULLY_CHARGING Led = 0x22
)

// Storage tells the device whether a setting should survive power cycles.
// Not all devices support saving, and saving too often wears the memory.
type Storage uint8

const (
	// STORE_NO only sets the value until the next power cycle.
	STORE_NO Storage = 0x00
	// STORE_VAR saves the setting so it survives a restart.
	STORE_VAR Storage = 0x01
)
