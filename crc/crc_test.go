package crc_test

import (
	"testing"

	"razer-driver-go/crc"
)

func TestXOR(t *testing.T) {
	testCases := []struct {
		input    []byte
		expected byte
	}{
		{nil, 0x00},
		{[]byte{0x7C}, 0x7C},
		{[]byte{0xFF, 0x02, 0x81}, 0x7C},
		{[]byte{0xAA, 0xAA}, 0x00},
		// Add more test cases as needed
	}

	for _, tc := range testCases {
		actual := crc.XOR(tc.input)
		if actual != tc.expected {
			t.Errorf("XOR(%v) = %02X; expected %02X", tc.input, actual, tc.expected)
		}
	}
}

func TestXORSelfCancels(t *testing.T) {
	data := []byte{0x01, 0x00, 0x02, 0x00, 0x81, 0x05, 0x5A}
	sum := crc.XOR(data)
	if got := crc.XOR(append(data, sum)); got != 0 {
		t.Errorf("XOR of data plus its checksum = %02X; expected 0", got)
	}
}
