package transport

import (
	"fmt"
	"io"

	"go.bug.st/serial"
)

// DefaultBaudRate matches the panel firmware's serial configuration.
const DefaultBaudRate = 9600

// OpenSerial opens the named port (COM3, /dev/ttyUSB0, /dev/ttyACM0) in
// 8N1 mode at the given baud rate.
func OpenSerial(port string, baud int) (io.ReadWriteCloser, error) {
	if baud <= 0 {
		baud = DefaultBaudRate
	}
	mode := &serial.Mode{
		BaudRate: baud,
		DataBits: 8,
		Parity:   serial.NoParity,
		StopBits: serial.OneStopBit,
	}
	p, err := serial.Open(port, mode)
	if err != nil {
		return nil, fmt.Errorf("open serial port %s: %w", port, err)
	}
	return p, nil
}

// ListPorts reports the serial ports visible on this machine, for startup
// diagnostics when the configured port cannot be opened.
func ListPorts() []string {
	ports, err := serial.GetPortsList()
	if err != nil {
		return nil
	}
	return ports
}
