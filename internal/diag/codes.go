package diag

import (
	"fmt"
)

type Code uint32

const (
	UnknownCode Code = 0

	// Configuration loading
	CfgInfo            Code = 1000
	CfgReadFile        Code = 1001
	CfgParseJSON       Code = 1002
	CfgExtendsNotFound Code = 1101
	CfgExtendsCycle    Code = 1102
	CfgUnknownOption   Code = 1201
	CfgBadOptionValue  Code = 1202
	CfgMissingFile     Code = 1301
	CfgNoInputs        Code = 1302
	CfgBadPattern      Code = 1303

	// Template fragment parsing
	SynInfo                  Code = 2000
	SynUnexpectedToken       Code = 2001
	SynUnterminatedTemplate  Code = 2002
	SynUnterminatedHole      Code = 2003
	SynDanglingEscape        Code = 2004
	SynExpectTemplateLiteral Code = 2005

	// I/O while building a compilation unit
	IOLoadFileError Code = 4001

	// GenDiagnostic marks diagnostics raised by the generator itself rather
	// than by the compiler front end. The value is fairly meaningless but
	// reasonably unique; only its distinctness matters.
	GenDiagnostic Code = 100000
)

var codeDescription = map[Code]string{
	UnknownCode:              "Unknown error",
	CfgInfo:                  "Configuration information",
	CfgReadFile:              "Cannot read configuration file",
	CfgParseJSON:             "Configuration file is not valid JSON",
	CfgExtendsNotFound:       "Extended configuration file not found",
	CfgExtendsCycle:          "Configuration extends cycle",
	CfgUnknownOption:         "Unknown compiler option",
	CfgBadOptionValue:        "Invalid compiler option value",
	CfgMissingFile:           "Listed file does not exist",
	CfgNoInputs:              "No inputs were found in configuration",
	CfgBadPattern:            "Malformed include or exclude pattern",
	SynInfo:                  "Syntax information",
	SynUnexpectedToken:       "Unexpected token",
	SynUnterminatedTemplate:  "Unterminated template literal",
	SynUnterminatedHole:      "Unterminated template substitution",
	SynDanglingEscape:        "Backslash at end of template literal",
	SynExpectTemplateLiteral: "Expected a template literal",
	IOLoadFileError:          "I/O load file error",
	GenDiagnostic:            "Generator diagnostic",
}

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("CFG%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("SYN%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("IO%04d", ic)
	case c == GenDiagnostic:
		return fmt.Sprintf("GEN%d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
