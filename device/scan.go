package device

import (
	"fmt"
	"log/slog"

	hid "github.com/sstallion/go-hid"

	"razer-driver-go/constant"
)

// DeviceConnectInfo is the HID match criteria for a product's management
// interface. A nil field means the axis is not filtered on.
type DeviceConnectInfo struct {
	InterfaceNumber *int
	Usage           *uint16
	UsagePage       *uint16
}

// Matches reports whether a HID interface descriptor satisfies the criteria.
func (ci DeviceConnectInfo) Matches(info *hid.DeviceInfo) bool {
	if ci.InterfaceNumber != nil && *ci.InterfaceNumber != info.InterfaceNbr {
		return false
	}
	if ci.Usage != nil && *ci.Usage != info.Usage {
		return false
	}
	if ci.UsagePage != nil && *ci.UsagePage != info.UsagePage {
		return false
	}
	return true
}

func ifaceNbr(n int) *int       { return &n }
func usageVal(u uint16) *uint16 { return &u }

var (
	legacyKeyboardConnectInfo = DeviceConnectInfo{InterfaceNumber: ifaceNbr(2), Usage: usageVal(2), UsagePage: usageVal(1)}
	modernKeyboardConnectInfo = DeviceConnectInfo{InterfaceNumber: ifaceNbr(3), Usage: usageVal(1), UsagePage: usageVal(0x0C)}
	wirelessMouseConnectInfo  = DeviceConnectInfo{InterfaceNumber: ifaceNbr(0), Usage: usageVal(2), UsagePage: usageVal(1)}
)

// kindFromPID resolves a product id against the keyboard registry first,
// then the mouse registry.
func kindFromPID(pid uint16) (DeviceKind, bool) {
	if keyboard, ok := KeyboardProductFromPID(pid); ok {
		return keyboard, true
	}
	if mouse, ok := MouseProductFromPID(pid); ok {
		return mouse, true
	}
	return nil, false
}

// Scan walks the HID enumeration and opens the management endpoint of every
// recognized Razer device. Interfaces that match a product but fail to open
// are skipped so the rest of the bus stays usable; result order is the HID
// layer's enumeration order.
func Scan() ([]*Device, error) {
	var devices []*Device
	uniquePaths := make(map[string]struct{})
	err := hid.Enumerate(constant.RAZER_VENDOR_ID, hid.ProductIDAny, func(info *hid.DeviceInfo) error {
		if _, ok := uniquePaths[info.Path]; ok {
			return nil
		}
		uniquePaths[info.Path] = struct{}{}

		kind, ok := kindFromPID(info.ProductID)
		if !ok {
			return nil
		}
		if !kind.ConnectInfo().Matches(info) {
			return nil
		}

		name := info.ProductStr
		if name == "" {
			name = kind.String()
		}

		hidDevice, err := hid.OpenPath(info.Path)
		if err != nil {
			slog.Debug(fmt.Sprintf("skipping %s (%s): %v", name, info.Path, err))
			return nil
		}

		devices = append(devices, &Device{
			Kind:      kind,
			Name:      name,
			Serial:    info.SerialNbr,
			hidDevice: hidDevice,
		})
		return nil
	})
	if err != nil {
		return nil, &TransportError{Op: "enumerate hid devices", Err: err}
	}
	return devices, nil
}
