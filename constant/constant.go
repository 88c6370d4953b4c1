package constant

// RAZER_VENDOR_ID is the USB vendor ID shared by all supported Razer devices.
const RAZER_VENDOR_ID = uint16(0x1532)
