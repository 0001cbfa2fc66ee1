package aggregate

import "strings"

func norm(s string) string { return strings.ToLower(strings.TrimSpace(s)) }

// Gender is the closed set of genders with their own totals. Anything else is
// GenderUnrecognized and is left out of gender buckets.
type Gender int

const (
	GenderUnrecognized Gender = iota
	GenderMale
	GenderFemale
)

func ParseGender(s string) Gender {
	switch norm(s) {
	case "male":
		return GenderMale
	case "female":
		return GenderFemale
	}
	return GenderUnrecognized
}

func (g Gender) String() string {
	switch g {
	case GenderMale:
		return "male"
	case GenderFemale:
		return "female"
	}
	return "unrecognized"
}

// Device is the closed set of device classes. Tablets, TVs and free-text
// labels are DeviceUnrecognized and contribute to nothing.
type Device int

const (
	DeviceUnrecognized Device = iota
	DeviceMobile
	DeviceDesktop
)

func ParseDevice(s string) Device {
	switch norm(s) {
	case "mobile":
		return DeviceMobile
	case "desktop":
		return DeviceDesktop
	}
	return DeviceUnrecognized
}

func (d Device) String() string {
	switch d {
	case DeviceMobile:
		return "mobile"
	case DeviceDesktop:
		return "desktop"
	}
	return "unrecognized"
}
