package hwdef

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Define names recognized in the exported header.
const (
	// DefinePrefix selects the defines belonging to this peripheral
	DefinePrefix = "XPAR_ACCEL_"

	// DefineCtrlBase names the control bank base address
	DefineCtrlBase = "XPAR_ACCEL_CTRL_BASEADDR"

	// DefineDataBase names the data window base address
	DefineDataBase = "XPAR_ACCEL_DATA_BASEADDR"

	// DefineDataWidth names the data window width in bits (optional)
	DefineDataWidth = "XPAR_ACCEL_DATA_WIDTH"
)

// ParseError reports a malformed line in the exported header.
type ParseError struct {
	// Line is the 1-based line number
	Line int

	// Name is the define being parsed, if known
	Name string

	// Message describes what was wrong
	Message string
}

func (e *ParseError) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("hwdef: line %d: %s: %s", e.Line, e.Name, e.Message)
	}
	return fmt.Sprintf("hwdef: line %d: %s", e.Line, e.Message)
}

// Parse reads an exported platform header from the given path.
//
// Example:
//
//	p, err := hwdef.Parse("xparameters.h")
//	if err != nil {
//	    log.Fatal(err)
//	}
func Parse(path string) (Platform, error) {
	f, err := os.Open(path)
	if err != nil {
		return Platform{}, fmt.Errorf("hwdef: open platform header: %w", err)
	}
	defer func() { _ = f.Close() }()

	return ParseReader(f)
}

// ParseReader reads an exported platform header from any io.Reader.
// This is useful for testing and for headers embedded in other build
// artifacts.
func ParseReader(r io.Reader) (Platform, error) {
	p := Platform{WordBits: DefaultWordBits}
	seen := map[string]bool{}

	scanner := bufio.NewScanner(r)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		name, value, ok := splitDefine(scanner.Text())
		if !ok || !strings.HasPrefix(name, DefinePrefix) {
			continue
		}
		if seen[name] {
			return Platform{}, &ParseError{Line: lineNum, Name: name, Message: "duplicate define"}
		}
		seen[name] = true

		switch name {
		case DefineCtrlBase:
			addr, err := parseAddr(value)
			if err != nil {
				return Platform{}, &ParseError{Line: lineNum, Name: name, Message: err.Error()}
			}
			p.CtrlBase = addr
		case DefineDataBase:
			addr, err := parseAddr(value)
			if err != nil {
				return Platform{}, &ParseError{Line: lineNum, Name: name, Message: err.Error()}
			}
			p.DataBase = addr
		case DefineDataWidth:
			bits, err := strconv.Atoi(value)
			if err != nil {
				return Platform{}, &ParseError{Line: lineNum, Name: name, Message: "not a decimal bit width"}
			}
			p.WordBits = bits
		}
		// Unknown XPAR_ACCEL_ defines are tolerated: newer toolchain
		// exports add parameters this driver does not consume.
	}
	if err := scanner.Err(); err != nil {
		return Platform{}, fmt.Errorf("hwdef: read platform header: %w", err)
	}

	if !seen[DefineCtrlBase] {
		return Platform{}, fmt.Errorf("hwdef: %s not defined", DefineCtrlBase)
	}
	if !seen[DefineDataBase] {
		return Platform{}, fmt.Errorf("hwdef: %s not defined", DefineDataBase)
	}

	if err := p.Validate(); err != nil {
		return Platform{}, err
	}
	return p, nil
}

// splitDefine extracts the name and value from a "#define NAME VALUE"
// line. Lines that are not defines report ok=false.
func splitDefine(line string) (name, value string, ok bool) {
	line = strings.TrimSpace(line)
	if !strings.HasPrefix(line, "#define") {
		return "", "", false
	}
	fields := strings.Fields(line)
	if len(fields) < 3 {
		return "", "", false
	}
	// Trailing comment after the value is allowed.
	return fields[1], fields[2], true
}

// parseAddr parses a C hex or decimal address literal, tolerating the
// U/UL suffixes the toolchain emits.
func parseAddr(s string) (uint64, error) {
	s = strings.TrimRight(s, "uUlL")
	var addr uint64
	var err error
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		addr, err = strconv.ParseUint(s[2:], 16, 64)
	} else {
		addr, err = strconv.ParseUint(s, 10, 64)
	}
	if err != nil {
		return 0, fmt.Errorf("not a valid address literal")
	}
	return addr, nil
}
