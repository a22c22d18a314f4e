package regtext

const (
	// ============================================================================
	// .reg File Format Tokens
	// ============================================================================

	// RegFileHeader is the header line of .reg files version 5.00
	RegFileHeader = "Windows Registry Editor Version 5.00"

	// RegFileHeaderV4 is the header line of the older ANSI .reg format
	RegFileHeaderV4 = "REGEDIT4"

	// ============================================================================
	// Delimiters and Structural Tokens
	// ============================================================================

	// KeyOpenBracket marks the start of a registry key path
	KeyOpenBracket = "["

	// KeyCloseBracket marks the end of a registry key path
	KeyCloseBracket = "]"

	// DeleteKeyPrefix marks a key for deletion (e.g., [-HKEY_LOCAL_MACHINE\...])
	DeleteKeyPrefix = "-"

	// DefaultValueMarker is the name token of the default (unnamed) value
	DefaultValueMarker = "@"

	// CommentPrefix marks a comment line
	CommentPrefix = ";"

	// ContinuationMarker ends a physical line that continues on the next one
	ContinuationMarker = `\`

	// ============================================================================
	// Quote and Escape Characters
	// ============================================================================

	// Quote is the double-quote character for value names and string data
	Quote = "\""

	// Backslash is used for escaping and path separators
	Backslash = "\\"

	// ============================================================================
	// Value Type Prefixes
	// ============================================================================

	// DWORDPrefix identifies a DWORD value in .reg format
	DWORDPrefix = "dword:"

	// HexPrefix identifies binary data in .reg format
	HexPrefix = "hex:"

	// HexExpandSZPrefix identifies REG_EXPAND_SZ values (type 2)
	HexExpandSZPrefix = "hex(2):"

	// HexMultiSZPrefix identifies REG_MULTI_SZ values (type 7)
	HexMultiSZPrefix = "hex(7):"

	// HexQWORDPrefix identifies REG_QWORD values (type 0xb)
	HexQWORDPrefix = "hex(b):"

	// HexByteSeparator separates bytes in hex data
	HexByteSeparator = ","

	// DeleteValueToken marks a value for deletion
	DeleteValueToken = "-"

	// ============================================================================
	// Encoding Names
	// ============================================================================

	// EncodingAuto sniffs a BOM and falls back to UTF-8
	EncodingAuto = "auto"

	// EncodingUTF8 is the identifier for UTF-8 encoding
	EncodingUTF8 = "utf8"

	// EncodingUTF16LE is the identifier for UTF-16 little-endian encoding
	EncodingUTF16LE = "utf16le"

	// EncodingWindows1252 is the identifier for the ANSI code page regedit4 files use
	EncodingWindows1252 = "windows1252"

	// ============================================================================
	// Numeric Widths
	// ============================================================================

	// DWORDHexMaxDigits is the longest accepted DWORD hex string
	DWORDHexMaxDigits = 8

	// QWORDSize is the byte width of a REG_QWORD payload
	QWORDSize = 8

	// UTF16CodeUnitSize is the size of a UTF-16 code unit in bytes
	UTF16CodeUnitSize = 2

	// ============================================================================
	// Buffer and Parsing Sizes
	// ============================================================================

	// ScannerInitialBufferSize is the initial buffer size for the .reg file scanner
	ScannerInitialBufferSize = 64 * 1024 // 64KB

	// ScannerMaxLineSize is the maximum physical line size for the .reg file scanner
	ScannerMaxLineSize = 1024 * 1024 // 1MB
)

// nul is the UTF-16 null code unit as it appears after decoding.
const nul = "\x00"
