// Package battery reads battery state from Razer devices and estimates how
// long a charge will last from observed discharge history.
package battery

import (
	"fmt"
	"math"

	"razer-driver-go/device"
)

// Status is one battery reading from a device.
type Status struct {
	ProductID  uint16
	Name       string
	Percentage uint8
	Charging   bool
}

// Read queries the device for its charge level and charging flag. The raw
// charge byte is scaled from [0,255] to a rounded percentage.
func Read(dev *device.Device) (Status, error) {
	charge, err := dev.GetBatteryCharge()
	if err != nil {
		return Status{}, err
	}
	charging, err := dev.GetChargingStatus()
	if err != nil {
		return Status{}, err
	}
	return Status{
		ProductID:  dev.Kind.PID(),
		Name:       dev.Name,
		Percentage: percentage(charge),
		Charging:   charging == 1,
	}, nil
}

// percentage scales the raw charge byte to a rounded percent.
func percentage(charge uint8) uint8 {
	return uint8(math.Round(float64(charge) / 255.0 * 100.0))
}

// Icon picks a battery glyph for the current state.
func (s Status) Icon() string {
	switch {
	case s.Charging:
		return "⚡️"
	case s.Percentage > 20:
		return "🔋"
	case s.Percentage > 10:
		return "🪫"
	case s.Percentage > 0:
		return "🔌"
	default:
		return "💤"
	}
}

func (s Status) String() string {
	return fmt.Sprintf("%s%d%%", s.Icon(), s.Percentage)
}
