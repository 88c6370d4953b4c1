package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"sort"
	"strings"
	"syscall"
	"time"

	"github.com/alecthomas/kong"
	kongtoml "github.com/alecthomas/kong-toml"

	"razer-driver-go/battery"
	"razer-driver-go/device"
	"razer-driver-go/logging"
)

type CLI struct {
	Log struct {
		Level string `help:"Log level (debug, info, warn, error)." default:"info"`
		File  string `help:"Also write logs to this file." type:"path"`
	} `embed:"" prefix:"log."`

	List       ListCmd       `cmd:"" help:"List connected Razer devices."`
	Battery    BatteryCmd    `cmd:"" help:"Show battery charge and charging state."`
	Brightness BrightnessCmd `cmd:"" help:"Get or set the main brightness of a device."`
	Mode       ModeCmd       `cmd:"" help:"Get or set the device mode."`
	LedOff     LedOffCmd     `cmd:"" name:"ledoff" help:"Turn off the main LED of a device."`
	Monitor    MonitorCmd    `cmd:"" help:"Poll battery state and log discharge estimates."`
	Shell      ShellCmd      `cmd:"" help:"Interactive shell over the same operations."`
}

// configCandidates lists where an optional razerctl config may live; flags
// always win over file values. No environment variables are read.
func configCandidates() []string {
	paths := []string{"/etc/razerctl/config.toml"}
	if dir, err := os.UserConfigDir(); err == nil {
		paths = append(paths, filepath.Join(dir, "razerctl", "config.toml"))
	}
	return paths
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("razerctl"),
		kong.Description("Control Razer keyboards and mice over the HID control protocol."),
		kong.UsageOnError(),
		kong.Configuration(kongtoml.Loader, configCandidates()...),
	)

	logger, closers, err := logging.New(cli.Log.Level, cli.Log.File)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to set up logging: %v\n", err)
		os.Exit(2)
	}
	defer func() {
		for _, c := range closers {
			_ = c.Close()
		}
	}()
	slog.SetDefault(logger)

	ctx.FatalIfErrorf(ctx.Run(logger))
}

// scanSorted returns the connected devices ordered by name so the index
// arguments stay stable between invocations.
func scanSorted() ([]*device.Device, error) {
	devices, err := device.Scan()
	if err != nil {
		return nil, err
	}
	sort.Slice(devices, func(i, j int) bool { return devices[i].Name < devices[j].Name })
	return devices, nil
}

func closeAll(devices []*device.Device) {
	for _, dev := range devices {
		_ = dev.Close()
	}
}

// pickDevice resolves a 1-based index from the sorted device list.
func pickDevice(devices []*device.Device, index int) (*device.Device, error) {
	if len(devices) == 0 {
		return nil, fmt.Errorf("no Razer devices found")
	}
	if index < 1 || index > len(devices) {
		return nil, fmt.Errorf("device index %d out of range (1-%d)", index, len(devices))
	}
	return devices[index-1], nil
}

type ListCmd struct{}

func (c *ListCmd) Run(logger *slog.Logger) error {
	devices, err := scanSorted()
	if err != nil {
		return err
	}
	defer closeAll(devices)

	fmt.Printf("Found %d device(s):\n", len(devices))
	for i, dev := range devices {
		line := fmt.Sprintf("  %d. %s (%s, pid %#04x)", i+1, dev.Name, dev.Kind, dev.Kind.PID())
		if serial := strings.TrimRight(dev.Serial, "\x00"); serial != "" {
			line += fmt.Sprintf(" serial=%s", serial)
		}
		fmt.Println(line)
	}
	return nil
}

type BatteryCmd struct{}

func (c *BatteryCmd) Run(logger *slog.Logger) error {
	devices, err := scanSorted()
	if err != nil {
		return err
	}
	defer closeAll(devices)

	if len(devices) == 0 {
		return fmt.Errorf("no Razer devices found")
	}
	for _, dev := range devices {
		status, err := battery.Read(dev)
		if err != nil {
			logger.Debug("no battery info", "device", dev.Name, "error", err)
			fmt.Printf("%s => No info\n", dev.Name)
			continue
		}
		fmt.Printf("%s => %s\n", dev.Name, status)
	}
	return nil
}

type BrightnessCmd struct {
	Device int    `help:"1-based device index from 'list'." default:"1"`
	Value  *uint8 `arg:"" optional:"" help:"Brightness percent to set; omit to read."`
}

func (c *BrightnessCmd) Run(logger *slog.Logger) error {
	devices, err := scanSorted()
	if err != nil {
		return err
	}
	defer closeAll(devices)

	dev, err := pickDevice(devices, c.Device)
	if err != nil {
		return err
	}
	if c.Value == nil {
		percent, err := dev.GetBrightness()
		if err != nil {
			return err
		}
		fmt.Printf("%s => %d%%\n", dev.Name, percent)
		return nil
	}
	if err := dev.SetBrightness(*c.Value); err != nil {
		return err
	}
	logger.Info("brightness set", "device", dev.Name, "percent", *c.Value)
	return nil
}

type ModeCmd struct {
	Device int     `help:"1-based device index from 'list'." default:"1"`
	Value  *string `arg:"" optional:"" help:"Mode to set (normal, factory, driver); omit to read."`
}

func (c *ModeCmd) Run(logger *slog.Logger) error {
	devices, err := scanSorted()
	if err != nil {
		return err
	}
	defer closeAll(devices)

	dev, err := pickDevice(devices, c.Device)
	if err != nil {
		return err
	}
	if c.Value == nil {
		mode, err := dev.GetDeviceMode()
		if err != nil {
			return err
		}
		fmt.Printf("%s => %s\n", dev.Name, mode)
		return nil
	}

	var mode device.DeviceMode
	switch *c.Value {
	case "normal":
		mode = device.DEVICE_MODE_NORMAL
	case "factory":
		mode = device.DEVICE_MODE_FACTORY_TESTING
	case "driver":
		mode = device.DEVICE_MODE_DRIVER
	default:
		return fmt.Errorf("unknown mode %q (expected normal, factory or driver)", *c.Value)
	}
	if err := dev.SetDeviceMode(mode); err != nil {
		return err
	}
	logger.Info("device mode set", "device", dev.Name, "mode", mode)
	return nil
}

type LedOffCmd struct {
	Device int `arg:"" help:"1-based device index from 'list'."`
}

func (c *LedOffCmd) Run(logger *slog.Logger) error {
	devices, err := scanSorted()
	if err != nil {
		return err
	}
	defer closeAll(devices)

	dev, err := pickDevice(devices, c.Device)
	if err != nil {
		return err
	}
	if err := dev.SetLedBrightness(device.STORE_NO, device.LED_ZERO, 0); err != nil {
		return err
	}
	logger.Info("led turned off", "device", dev.Name)
	return nil
}

type MonitorCmd struct {
	Interval time.Duration `help:"Time between battery polls." default:"60s"`
}

func (c *MonitorCmd) Run(logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	history := battery.NewHistory(0)
	monitor := battery.NewMonitor(history, logger)
	monitor.Interval = c.Interval
	monitor.OnSample = func(status battery.Status) {
		if remaining, ok := history.Remaining(status); ok && !status.Charging {
			logger.Info("estimated remaining",
				"device", status.Name,
				"remaining", battery.FormatDuration(remaining),
			)
		}
	}

	logger.Info("battery monitor started", "interval", c.Interval.String())
	if err := monitor.Run(ctx); err != nil && ctx.Err() == nil {
		return err
	}
	return nil
}
