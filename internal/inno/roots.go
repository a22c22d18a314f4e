package inno

// Full hive names as they appear in .reg key headers.
const (
	HKEYLocalMachine  = "HKEY_LOCAL_MACHINE"
	HKEYClassesRoot   = "HKEY_CLASSES_ROOT"
	HKEYCurrentUser   = "HKEY_CURRENT_USER"
	HKEYUsers         = "HKEY_USERS"
	HKEYCurrentConfig = "HKEY_CURRENT_CONFIG"
)

var shortRoots = map[string]string{
	HKEYCurrentUser:   "HKCU",
	HKEYLocalMachine:  "HKLM",
	HKEYClassesRoot:   "HKCR",
	HKEYUsers:         "HKU",
	HKEYCurrentConfig: "HKCC",
}

// ShortRoot maps a full hive name to the Inno Root token. Unknown names map
// to "" and the caller decides whether to warn.
func ShortRoot(hive string) string {
	return shortRoots[hive]
}

// KnownRoot reports whether hive is one of the five root key names.
func KnownRoot(hive string) bool {
	_, ok := shortRoots[hive]
	return ok
}
