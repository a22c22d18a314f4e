// Package reginno converts Windows registry export files (.reg) into the
// [Registry] section of an Inno Setup script.
//
// Every value under every key in the source becomes one Inno entry that
// writes the value at install time and removes it again on uninstall:
//
//	[HKEY_CURRENT_USER\Software\Foo]
//	"Bar"="Baz"
//
// becomes
//
//	[Registry]
//	Root: HKCU; Subkey: "Software\Foo"; ValueName: Bar; ValueType: string; ValueData: "Baz"; Flags: uninsdeletevalue uninsdeletekeyifempty;
//
// Supported value types are strings, dword, hex (binary), hex(2)
// (expandsz), hex(b) (qword) and hex(7) (multisz). Key and value deletions
// are recognised but skipped.
//
// # Pipeline
//
// The input is processed in one pass, one logical line at a time:
//
//  1. continuation lines (trailing backslash) are joined
//  2. the line is classified against the .reg grammar
//  3. a key header replaces the running ParseContext; a value record is
//     decoded, its text transformed and one directive written
//
// Unrecognised lines (comments, the file header, unsupported types) are
// skipped. A malformed hex payload stops the run with a *RecordError that
// names the record; whatever was already written stays written.
//
// # Text Handling
//
// Text values are un-escaped (.reg escapes), then Inno constant braces are
// doubled, then the configured source directory is replaced with a
// placeholder such as {app}. Braces inside the placeholder therefore stay
// Inno constants.
//
// # Example
//
//	stats, err := reginno.ConvertFile("settings.reg", "settings.reg.iss", reginno.Options{})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(stats.Directives, "entries written")
package reginno
