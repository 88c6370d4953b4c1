package device

import (
	"fmt"
	"strings"
)

// DeviceKind identifies which product a device record is and carries the
// per-family behavior switches the protocol needs.
type DeviceKind interface {
	fmt.Stringer

	// PID returns the USB product id.
	PID() uint16
	// ConnectInfo returns the HID match criteria for the product's
	// management interface.
	ConnectInfo() DeviceConnectInfo
	// TransactionDevice returns the routing byte the product expects in
	// every request.
	TransactionDevice() TransactionDevice
}

// DeviceMode is the behavioral mode a device is switched to.
type DeviceMode uint8

const (
	// DEVICE_MODE_NORMAL is the unmanaged mode without any special software.
	DEVICE_MODE_NORMAL DeviceMode = 0x00
	// DEVICE_MODE_FACTORY_TESTING makes FN and macro keys behave like standard keys.
	DEVICE_MODE_FACTORY_TESTING DeviceMode = 0x02
	// DEVICE_MODE_DRIVER makes the device behave as if the full vendor software were installed.
	DEVICE_MODE_DRIVER DeviceMode = 0x03
)

func (m DeviceMode) String() string {
	switch m {
	case DEVICE_MODE_NORMAL:
		return "normal"
	case DEVICE_MODE_FACTORY_TESTING:
		return "factory testing"
	case DEVICE_MODE_DRIVER:
		return "driver"
	default:
		return "unknown"
	}
}

// FirmwareVersion is the major and minor firmware version of a device.
type FirmwareVersion struct {
	Major uint8
	Minor uint8
}

func (v FirmwareVersion) String() string {
	return fmt.Sprintf("v%d.%d", v.Major, v.Minor)
}

// Device is an opened Razer device. It exclusively owns the underlying HID
// endpoint until Close is called; requests on one Device must not be issued
// concurrently.
type Device struct {
	// Kind tells which product this is.
	Kind DeviceKind
	// Name is the HID product string, or the registry display name when the
	// descriptor carries none.
	Name string
	// Serial is the serial number reported by the HID descriptor, possibly empty.
	Serial string

	hidDevice featureDevice
}

// Close releases the HID endpoint.
func (d *Device) Close() error {
	return d.hidDevice.Close()
}

func (d *Device) newReport(direction Direction, command Command, body []byte) *report {
	return newReport(direction, command, body, d.Kind.TransactionDevice())
}

// GetFirmwareVersion reads the firmware version of the device.
func (d *Device) GetFirmwareVersion() (FirmwareVersion, error) {
	report := d.newReport(DIRECTION_DEVICE_TO_HOST, CMD_FIRMWARE_VERSION, nil)
	body, err := report.SendAndReceive(d.hidDevice)
	if err != nil {
		return FirmwareVersion{}, err
	}
	return FirmwareVersion{Major: body[0], Minor: body[1]}, nil
}

// GetSerial returns the serial number of the device. The serial from the
// HID descriptor is preferred; only when that is empty is the device asked.
func (d *Device) GetSerial() (string, error) {
	if d.Serial != "" {
		return d.Serial, nil
	}
	report := d.newReport(DIRECTION_DEVICE_TO_HOST, CMD_SERIAL, nil)
	body, err := report.SendAndReceive(d.hidDevice)
	if err != nil {
		return "", err
	}
	return strings.ToValidUTF8(string(body), "�"), nil
}

// GetDeviceMode reads the device mode.
func (d *Device) GetDeviceMode() (DeviceMode, error) {
	report := d.newReport(DIRECTION_DEVICE_TO_HOST, CMD_DEVICE_MODE, nil)
	body, err := report.SendAndReceive(d.hidDevice)
	if err != nil {
		return 0, err
	}
	mode := DeviceMode(body[0])
	switch mode {
	case DEVICE_MODE_NORMAL, DEVICE_MODE_FACTORY_TESTING, DEVICE_MODE_DRIVER:
		return mode, nil
	}
	return 0, &ParseError{Reason: "invalid device mode"}
}

// SetDeviceMode switches the device mode.
func (d *Device) SetDeviceMode(mode DeviceMode) error {
	report := d.newReport(DIRECTION_HOST_TO_DEVICE, CMD_DEVICE_MODE, []byte{uint8(mode), 0})
	return report.Send(d.hidDevice)
}

// SetLedBrightness sets the brightness of one LED in percent.
func (d *Device) SetLedBrightness(store Storage, led Led, percent uint8) error {
	if percent > 100 {
		return ErrInvalidBrightness
	}
	report := d.newReport(DIRECTION_HOST_TO_DEVICE, CMD_LED_BRIGHTNESS, []byte{uint8(store), uint8(led), percent})
	return report.Send(d.hidDevice)
}

// GetLedBrightness reads the brightness of one LED in percent.
func (d *Device) GetLedBrightness(store Storage, led Led) (uint8, error) {
	report := d.newReport(DIRECTION_DEVICE_TO_HOST, CMD_LED_BRIGHTNESS, []byte{uint8(store), uint8(led)})
	body, err := report.SendAndReceive(d.hidDevice)
	if err != nil {
		return 0, err
	}
	return body[2], nil
}

// SetExtendedMatrixBrightness sets brightness through the extended matrix
// class used by newer per-key RGB keyboards.
func (d *Device) SetExtendedMatrixBrightness(store Storage, led Led, percent uint8) error {
	if percent > 100 {
		return ErrInvalidBrightness
	}
	report := d.newReport(DIRECTION_HOST_TO_DEVICE, CMD_EXTENDED_MATRIX_BRIGHTNESS, []byte{uint8(store), uint8(led), percent})
	return report.Send(d.hidDevice)
}

// GetExtendedMatrixBrightness reads brightness through the extended matrix class.
func (d *Device) GetExtendedMatrixBrightness(store Storage, led Led) (uint8, error) {
	report := d.newReport(DIRECTION_DEVICE_TO_HOST, CMD_EXTENDED_MATRIX_BRIGHTNESS, []byte{uint8(store), uint8(led)})
	body, err := report.SendAndReceive(d.hidDevice)
	if err != nil {
		return 0, err
	}
	return body[2], nil
}

// GetLedState reads the on/off state of one LED.
func (d *Device) GetLedState(store Storage, led Led) (uint8, error) {
	report := d.newReport(DIRECTION_DEVICE_TO_HOST, CMD_LED_STATE, []byte{uint8(store), uint8(led)})
	body, err := report.SendAndReceive(d.hidDevice)
	if err != nil {
		return 0, err
	}
	return body[2], nil
}

// GetBatteryCharge reads the raw battery level in the range [0, 255].
// Callers convert to percent as charge/255*100.
func (d *Device) GetBatteryCharge() (uint8, error) {
	report := d.newReport(DIRECTION_DEVICE_TO_HOST, CMD_BATTERY_CHARGE, []byte{0x00, 0x00})
	body, err := report.SendAndReceive(d.hidDevice)
	if err != nil {
		return 0, err
	}
	return body[1], nil
}

// GetChargingStatus reads whether the device is charging (1) or not (0).
func (d *Device) GetChargingStatus() (uint8, error) {
	report := d.newReport(DIRECTION_DEVICE_TO_HOST, CMD_CHARGING_STATUS, []byte{0x00, 0x00})
	body, err := report.SendAndReceive(d.hidDevice)
	if err != nil {
		return 0, err
	}
	return body[1], nil
}

// SetBladeBrightness sets keyboard brightness on Blade laptops, which use a
// dedicated command class.
func (d *Device) SetBladeBrightness(percent uint8) error {
	if percent > 100 {
		return ErrInvalidBrightness
	}
	report := d.newReport(DIRECTION_HOST_TO_DEVICE, CMD_BLADE_BRIGHTNESS, []byte{0x01, percent})
	return report.Send(d.hidDevice)
}

// GetBladeBrightness reads keyboard brightness on Blade laptops.
func (d *Device) GetBladeBrightness() (uint8, error) {
	report := d.newReport(DIRECTION_DEVICE_TO_HOST, CMD_BLADE_BRIGHTNESS, []byte{0x01})
	body, err := report.SendAndReceive(d.hidDevice)
	if err != nil {
		return 0, err
	}
	return body[1], nil
}

// SetBrightness sets the main brightness of the device, picking the command
// variant the product family answers to.
func (d *Device) SetBrightness(percent uint8) error {
	kb, ok := d.Kind.(KeyboardProduct)
	if !ok {
		return d.SetLedBrightness(STORE_VAR, LED_BACKLIGHT, percent)
	}
	switch {
	case kb == KEYBOARD_TARTARUS_V2:
		return d.SetExtendedMatrixBrightness(STORE_VAR, LED_ZERO, percent)
	case kb.IsLogoOnly():
		return d.SetLedBrightness(STORE_VAR, LED_LOGO, percent)
	case kb.IsExtendedMatrix():
		return d.SetExtendedMatrixBrightness(STORE_VAR, LED_BACKLIGHT, percent)
	case kb.IsBlade():
		return d.SetBladeBrightness(percent)
	default:
		return d.SetLedBrightness(STORE_VAR, LED_BACKLIGHT, percent)
	}
}

// GetBrightness reads the main brightness of the device, symmetric to
// SetBrightness.
func (d *Device) GetBrightness() (uint8, error) {
	kb, ok := d.Kind.(KeyboardProduct)
	if !ok {
		return d.GetLedBrightness(STORE_VAR, LED_BACKLIGHT)
	}
	switch {
	case kb == KEYBOARD_TARTARUS_V2:
		return d.GetExtendedMatrixBrightness(STORE_VAR, LED_ZERO)
	case kb.IsLogoOnly():
		return d.GetLedBrightness(STORE_VAR, LED_LOGO)
	case kb.IsExtendedMatrix():
		return d.GetExtendedMatrixBrightness(STORE_VAR, LED_BACKLIGHT)
	case kb.IsBlade():
		return d.GetBladeBrightness()
	default:
		return d.GetLedBrightness(STORE_VAR, LED_BACKLIGHT)
	}
}
