package firmware

import "fmt"

// Status is an EFI status code. Error codes have the high bit set.
type Status uint64

const errorBit Status = 1 << 63

// EFI status codes returned by console and boot services.
const (
	StatusSuccess          Status = 0
	StatusLoadError        Status = errorBit | 1
	StatusInvalidParameter Status = errorBit | 2
	StatusUnsupported      Status = errorBit | 3
	StatusBadBufferSize    Status = errorBit | 4
	StatusBufferTooSmall   Status = errorBit | 5
	StatusNotReady         Status = errorBit | 6
	StatusDeviceError      Status = errorBit | 7
	StatusWriteProtected   Status = errorBit | 8
	StatusOutOfResources   Status = errorBit | 9
	StatusVolumeCorrupted  Status = errorBit | 10
	StatusVolumeFull       Status = errorBit | 11
	StatusNoMedia          Status = errorBit | 12
	StatusMediaChanged     Status = errorBit | 13
	StatusNotFound         Status = errorBit | 14
	StatusAccessDenied     Status = errorBit | 15
	StatusNoResponse       Status = errorBit | 16
	StatusNoMapping        Status = errorBit | 17
	StatusTimeout          Status = errorBit | 18
	StatusNotStarted       Status = errorBit | 19
	StatusAlreadyStarted   Status = errorBit | 20
	StatusAborted          Status = errorBit | 21
)

var statusNames = map[Status]string{
	StatusSuccess:          "EFI_SUCCESS",
	StatusLoadError:        "EFI_LOAD_ERROR",
	StatusInvalidParameter: "EFI_INVALID_PARAMETER",
	StatusUnsupported:      "EFI_UNSUPPORTED",
	StatusBadBufferSize:    "EFI_BAD_BUFFER_SIZE",
	StatusBufferTooSmall:   "EFI_BUFFER_TOO_SMALL",
	StatusNotReady:         "EFI_NOT_READY",
	StatusDeviceError:      "EFI_DEVICE_ERROR",
	StatusWriteProtected:   "EFI_WRITE_PROTECTED",
	StatusOutOfResources:   "EFI_OUT_OF_RESOURCES",
	StatusVolumeCorrupted:  "EFI_VOLUME_CORRUPTED",
	StatusVolumeFull:       "EFI_VOLUME_FULL",
	StatusNoMedia:          "EFI_NO_MEDIA",
	StatusMediaChanged:     "EFI_MEDIA_CHANGED",
	StatusNotFound:         "EFI_NOT_FOUND",
	StatusAccessDenied:     "EFI_ACCESS_DENIED",
	StatusNoResponse:       "EFI_NO_RESPONSE",
	StatusNoMapping:        "EFI_NO_MAPPING",
	StatusTimeout:          "EFI_TIMEOUT",
	StatusNotStarted:       "EFI_NOT_STARTED",
	StatusAlreadyStarted:   "EFI_ALREADY_STARTED",
	StatusAborted:          "EFI_ABORTED",
}

// IsError reports whether the status has the EFI error bit set.
func (s Status) IsError() bool {
	return s&errorBit != 0
}

// Error returns the EFI name of the status.
func (s Status) Error() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return fmt.Sprintf("EFI status %#x", uint64(s))
}

// Err converts a raw status into an error, nil for non-error statuses.
func (s Status) Err() error {
	if !s.IsError() {
		return nil
	}
	return s
}
