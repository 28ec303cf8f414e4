package model

// SystemType identifies the roof assembly family. The value is stable and
// used as a key into the system catalogs.
type SystemType string

const (
	SystemSBS                     SystemType = "SBS"
	SystemEPDMFullyAdhered        SystemType = "EPDM_Fully_Adhered"
	SystemEPDMBallasted           SystemType = "EPDM_Ballasted"
	SystemTPOMechanicallyAttached SystemType = "TPO_Mechanically_Attached"
	SystemTPOFullyAdhered         SystemType = "TPO_Fully_Adhered"
)

func (t SystemType) String() string {
	return string(t)
}

func ParseSystemType(s string) (SystemType, bool) {
	switch SystemType(s) {
	case SystemSBS, SystemEPDMFullyAdhered, SystemEPDMBallasted,
		SystemTPOMechanicallyAttached, SystemTPOFullyAdhered:
		return SystemType(s), true
	default:
		return SystemSBS, false
	}
}
