package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/peterh/liner"

	"razer-driver-go/battery"
	"razer-driver-go/device"
)

var shellCommands = []string{"list", "rescan", "battery", "brightness", "mode", "serial", "firmware", "use", "help", "exit", "quit"}

// ShellCmd runs device operations interactively, keeping one scan open so
// repeated queries don't re-enumerate the bus every time. The shell reads
// the device mode but does not set it, and has no ledoff or monitor command.
type ShellCmd struct{}

func (c *ShellCmd) Run(logger *slog.Logger) error {
	devices, err := scanSorted()
	if err != nil {
		return err
	}
	defer func() { closeAll(devices) }()

	line := liner.NewLiner()
	defer line.Close()

	line.SetCtrlCAborts(true)
	line.SetCompleter(func(prefix string) (out []string) {
		for _, cmd := range shellCommands {
			if strings.HasPrefix(cmd, strings.ToLower(prefix)) {
				out = append(out, cmd)
			}
		}
		return out
	})

	historyPath := filepath.Join(os.TempDir(), ".razerctl_history")
	if f, err := os.Open(historyPath); err == nil {
		_, _ = line.ReadHistory(f)
		f.Close()
	}
	defer func() {
		if f, err := os.Create(historyPath); err == nil {
			_, _ = line.WriteHistory(f)
			f.Close()
		}
	}()

	selected := 0
	printShellDevices(devices)

	for {
		input, err := line.Prompt("razerctl> ")
		if err != nil {
			// liner returns an error on EOF and on Ctrl-C with aborts on
			return nil
		}
		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}
		line.AppendHistory(input)

		fields := strings.Fields(input)
		switch fields[0] {
		case "exit", "quit":
			return nil
		case "help":
			fmt.Println("commands:", strings.Join(shellCommands, ", "))
		case "list":
			printShellDevices(devices)
		case "rescan":
			closeAll(devices)
			devices, err = scanSorted()
			if err != nil {
				return err
			}
			selected = 0
			printShellDevices(devices)
		case "use":
			if len(fields) != 2 {
				fmt.Println("usage: use <index>")
				continue
			}
			index, err := strconv.Atoi(fields[1])
			if err != nil || index < 1 || index > len(devices) {
				fmt.Println("invalid device index")
				continue
			}
			selected = index - 1
			fmt.Printf("using %s\n", devices[selected].Name)
		case "battery":
			withShellDevice(devices, selected, func(dev *device.Device) {
				status, err := battery.Read(dev)
				if err != nil {
					fmt.Printf("failed to read battery: %v\n", err)
					return
				}
				fmt.Println(status)
			})
		case "brightness":
			withShellDevice(devices, selected, func(dev *device.Device) {
				if len(fields) == 1 {
					percent, err := dev.GetBrightness()
					if err != nil {
						fmt.Printf("failed to get brightness: %v\n", err)
						return
					}
					fmt.Printf("%d%%\n", percent)
					return
				}
				value, err := strconv.ParseUint(fields[1], 10, 8)
				if err != nil {
					fmt.Println("usage: brightness [0-100]")
					return
				}
				if err := dev.SetBrightness(uint8(value)); err != nil {
					fmt.Printf("failed to set brightness: %v\n", err)
				}
			})
		case "mode":
			withShellDevice(devices, selected, func(dev *device.Device) {
				mode, err := dev.GetDeviceMode()
				if err != nil {
					fmt.Printf("failed to get device mode: %v\n", err)
					return
				}
				fmt.Println(mode)
			})
		case "serial":
			withShellDevice(devices, selected, func(dev *device.Device) {
				serial, err := dev.GetSerial()
				if err != nil {
					fmt.Printf("failed to get serial: %v\n", err)
					return
				}
				fmt.Println(strings.TrimRight(serial, "\x00"))
			})
		case "firmware":
			withShellDevice(devices, selected, func(dev *device.Device) {
				version, err := dev.GetFirmwareVersion()
				if err != nil {
					fmt.Printf("failed to get firmware version: %v\n", err)
					return
				}
				fmt.Println(version)
			})
		default:
			fmt.Printf("unknown command %q, try help\n", fields[0])
		}
	}
}

func printShellDevices(devices []*device.Device) {
	if len(devices) == 0 {
		fmt.Println("no Razer devices found")
		return
	}
	for i, dev := range devices {
		fmt.Printf("  %d. %s (%s)\n", i+1, dev.Name, dev.Kind)
	}
}

func withShellDevice(devices []*device.Device, selected int, fn func(*device.Device)) {
	if len(devices) == 0 {
		fmt.Println("no Razer devices found")
		return
	}
	fn(devices[selected])
}
