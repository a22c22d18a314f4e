package inno

const (
	// SectionHeader opens the destination document.
	SectionHeader = "[Registry]"

	// DefaultPlaceholder is the Inno constant the source directory maps to.
	DefaultPlaceholder = "{app}"

	// BreakToken separates REG_MULTI_SZ items inside one ValueData literal.
	BreakToken = "{break}"

	// UninstallFlags asks the uninstaller to remove the value and, once
	// empty, its key.
	UninstallFlags = "uninsdeletevalue uninsdeletekeyifempty"

	// DwordPrefix is the Pascal hexadecimal literal prefix.
	DwordPrefix = "$"

	// DwordFormat renders a DWORD as eight lowercase hex digits.
	DwordFormat = "%08x"

	// BinaryByteFormat renders one REG_BINARY byte.
	BinaryByteFormat = "%02x"

	// BinaryByteSeparator separates REG_BINARY bytes.
	BinaryByteSeparator = " "

	openBrace      = "{"
	escapedBrace   = "{{"
	quote          = `"`
	escapedQuote   = `""`
	paramSeparator = ";"
)

// Line endings accepted by EmitterOptions.
const (
	CRLF = "\r\n"
	LF   = "\n"
)
