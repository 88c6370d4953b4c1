package device

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"razer-driver-go/crc"
)

// fakeHID stands in for an opened HID endpoint. Sent buffers are recorded;
// reads are served from queued replies.
type fakeHID struct {
	sent    [][]byte
	replies [][]byte
	sendErr error
	getErr  error
	closed  bool
}

func (f *fakeHID) SendFeatureReport(p []byte) (int, error) {
	if f.sendErr != nil {
		return 0, f.sendErr
	}
	buf := make([]byte, len(p))
	copy(buf, p)
	f.sent = append(f.sent, buf)
	return len(p), nil
}

func (f *fakeHID) GetFeatureReport(p []byte) (int, error) {
	if f.getErr != nil {
		return 0, f.getErr
	}
	if len(f.replies) == 0 {
		return 0, errors.New("no reply queued")
	}
	reply := f.replies[0]
	f.replies = f.replies[1:]
	copy(p, reply)
	return len(reply), nil
}

func (f *fakeHID) Close() error {
	f.closed = true
	return nil
}

// replyTo builds a successful reply frame answering the given request.
func replyTo(command Command, direction Direction, body []byte) []byte {
	parts := command.parts()
	buf := make([]byte, reportLength)
	buf[1] = uint8(STATUS_COMMAND_SUCCESSFUL)
	buf[6] = parts.replySize
	buf[7] = uint8(parts.class)
	buf[8] = parts.id | uint8(direction)
	copy(buf[9:], body)
	return buf
}

func TestEncodeFirmwareVersionRequest(t *testing.T) {
	report := newReport(DIRECTION_DEVICE_TO_HOST, CMD_FIRMWARE_VERSION, nil, TRANSACTION_DEVICE_DEFAULT)
	buf, err := report.Encode()
	require.NoError(t, err)
	require.Len(t, buf, 91)

	assert.Equal(t, uint8(0x00), buf[0], "report id")
	assert.Equal(t, uint8(0x00), buf[1], "status")
	assert.Equal(t, uint8(0xFF), buf[2], "transaction id")
	assert.Equal(t, []byte{0x00, 0x00}, buf[3:5], "remaining packets")
	assert.Equal(t, uint8(0x00), buf[5], "protocol type")
	assert.Equal(t, uint8(0x02), buf[6], "data size")
	assert.Equal(t, uint8(0x00), buf[7], "command class")
	assert.Equal(t, uint8(0x81), buf[8], "command id")
	for i := 9; i < 89; i++ {
		require.Equal(t, uint8(0x00), buf[i], "body byte %d", i)
	}
	assert.Equal(t, uint8(0x7C), buf[89], "crc")
	assert.Equal(t, uint8(0x00), buf[90], "reserved")
}

func TestEncodeEveryCommand(t *testing.T) {
	body := []byte{0x01, 0x05, 0x5A}
	for command, parts := range commandTable {
		hostToDevice := newReport(DIRECTION_HOST_TO_DEVICE, command, body, TRANSACTION_DEVICE_DEFAULT)
		buf, err := hostToDevice.Encode()
		require.NoError(t, err, "%s", command)
		assert.Len(t, buf, 91, "%s", command)
		assert.Equal(t, uint8(len(body)), buf[6], "%s host-to-device data size", command)

		deviceToHost := newReport(DIRECTION_DEVICE_TO_HOST, command, nil, TRANSACTION_DEVICE_DEFAULT)
		buf, err = deviceToHost.Encode()
		require.NoError(t, err, "%s", command)
		assert.Equal(t, parts.replySize, buf[6], "%s device-to-host data size", command)

		assert.Equal(t, buf[89], crc.XOR(buf[2:89]), "%s crc", command)
		assert.Equal(t, uint8(0x00), buf[90], "%s reserved", command)
	}
}

func TestEncodeRejectsOversizedBody(t *testing.T) {
	report := newReport(DIRECTION_HOST_TO_DEVICE, CMD_LED_BRIGHTNESS, make([]byte, 81), TRANSACTION_DEVICE_DEFAULT)
	_, err := report.Encode()
	require.ErrorIs(t, err, errBodyTooLarge)
}

func TestTransactionIDPerDeviceByte(t *testing.T) {
	testCases := []struct {
		transactionDevice TransactionDevice
		expected          uint8
	}{
		{TRANSACTION_DEVICE_DEFAULT, 0xFF},
		{TRANSACTION_DEVICE_ZERO, 0x1F},
		{TRANSACTION_DEVICE_ONE, 0x3F},
		{TRANSACTION_DEVICE_FOUR, 0x9F},
		{TRANSACTION_DEVICE_SEVEN, 0xDF},
	}
	for _, tc := range testCases {
		report := newReport(DIRECTION_DEVICE_TO_HOST, CMD_BATTERY_CHARGE, nil, tc.transactionDevice)
		buf, err := report.Encode()
		require.NoError(t, err)
		assert.Equal(t, tc.expected, buf[2], "transaction device %#02x", uint8(tc.transactionDevice))
	}
}

func TestVerifyResponseRoundTrip(t *testing.T) {
	report := newReport(DIRECTION_DEVICE_TO_HOST, CMD_FIRMWARE_VERSION, nil, TRANSACTION_DEVICE_DEFAULT)
	reply := replyTo(CMD_FIRMWARE_VERSION, DIRECTION_DEVICE_TO_HOST, []byte{0x02, 0x01})
	reply[2] = 0xFF // devices tend to echo the transaction id; it is ignored

	body, err := report.VerifyResponse(reply)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x02, 0x01}, body)
}

func TestVerifyResponseBodyLength(t *testing.T) {
	for command, parts := range commandTable {
		report := newReport(DIRECTION_DEVICE_TO_HOST, command, nil, TRANSACTION_DEVICE_DEFAULT)
		body, err := report.VerifyResponse(replyTo(command, DIRECTION_DEVICE_TO_HOST, nil))
		require.NoError(t, err, "%s", command)
		assert.Len(t, body, int(parts.replySize), "%s", command)
	}
}

func TestVerifyResponseRejectsMutations(t *testing.T) {
	report := newReport(DIRECTION_DEVICE_TO_HOST, CMD_FIRMWARE_VERSION, nil, TRANSACTION_DEVICE_DEFAULT)

	testCases := []struct {
		name     string
		mutate   func([]byte)
		expected string
	}{
		{"report id", func(b []byte) { b[0] = 0x01 }, "mismatched response: report id"},
		{"unknown status", func(b []byte) { b[1] = 0x09 }, "failed to parse: invalid status"},
		{"remaining packets", func(b []byte) { b[4] = 0x01 }, "mismatched response: remaining packets"},
		{"oversized data", func(b []byte) { b[6] = 81 }, "failed to parse: invalid data size"},
		{"wrong size", func(b []byte) { b[6] = 3 }, "mismatched response: wrong size packet"},
		{"command class", func(b []byte) { b[7] = 0x03 }, "mismatched response: command class"},
		{"command id", func(b []byte) { b[8] = 0x82 }, "mismatched response: command id"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			reply := replyTo(CMD_FIRMWARE_VERSION, DIRECTION_DEVICE_TO_HOST, []byte{0x02, 0x01})
			tc.mutate(reply)
			_, err := report.VerifyResponse(reply)
			require.Error(t, err)
			assert.Equal(t, tc.expected, err.Error())
		})
	}
}

func TestVerifyResponseBadStatus(t *testing.T) {
	report := newReport(DIRECTION_DEVICE_TO_HOST, CMD_FIRMWARE_VERSION, nil, TRANSACTION_DEVICE_DEFAULT)

	testCases := []struct {
		status   Status
		expected string
	}{
		{STATUS_COMMAND_BUSY, "bad status: busy"},
		{STATUS_COMMAND_FAILURE, "bad status: failure"},
		{STATUS_COMMAND_NO_RESPONSE, "bad status: no response or timeout"},
		{STATUS_COMMAND_NOT_SUPPORT, "bad status: not supported"},
	}
	for _, tc := range testCases {
		reply := replyTo(CMD_FIRMWARE_VERSION, DIRECTION_DEVICE_TO_HOST, nil)
		reply[1] = uint8(tc.status)
		_, err := report.VerifyResponse(reply)

		var badStatus *BadStatusError
		require.ErrorAs(t, err, &badStatus)
		assert.Equal(t, tc.status, badStatus.Status)
		assert.Equal(t, tc.expected, err.Error())
	}
}

func TestSendAndReceive(t *testing.T) {
	fake := &fakeHID{
		replies: [][]byte{replyTo(CMD_BATTERY_CHARGE, DIRECTION_DEVICE_TO_HOST, []byte{0x00, 0xFF})},
	}
	report := newReport(DIRECTION_DEVICE_TO_HOST, CMD_BATTERY_CHARGE, []byte{0x00, 0x00}, TRANSACTION_DEVICE_SEVEN)

	body, err := report.SendAndReceive(fake)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x00, 0xFF}, body)

	require.Len(t, fake.sent, 1)
	assert.Equal(t, uint8(0xDF), fake.sent[0][2], "transaction id on the wire")
}

func TestSendWrapsTransportErrors(t *testing.T) {
	cause := errors.New("device gone")
	fake := &fakeHID{sendErr: cause}
	report := newReport(DIRECTION_HOST_TO_DEVICE, CMD_DEVICE_MODE, []byte{0x00, 0x00}, TRANSACTION_DEVICE_DEFAULT)

	err := report.Send(fake)
	var transport *TransportError
	require.ErrorAs(t, err, &transport)
	assert.ErrorIs(t, err, cause)
}
