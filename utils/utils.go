package utils

import (
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
)

var ormSourceDir string

func init() {
	_, file, _, _ := runtime.Caller(0)
	// compatible solution to get orm source directory with various operating systems
	ormSourceDir = sourceDir(file)
}

func sourceDir(file string) string {
	dir := filepath.Dir(file)
	dir = filepath.Dir(dir)

	s := filepath.Dir(dir)
	if filepath.Base(s) != "gorm.io" {
		s = dir
	}
	return filepath.ToSlash(s) + "/"
}

// CallerFrame retrieves the first relevant stack frame outside of the orm's internal implementation files.
func CallerFrame() runtime.Frame {
	pcs := [13]uintptr{}
	// the third caller usually from orm internal
	length := runtime.Callers(3, pcs[:])
	frames := runtime.CallersFrames(pcs[:length])
	for i := 0; i < length; i++ {
		frame, _ := frames.Next()
		if !strings.HasPrefix(frame.File, ormSourceDir) || strings.HasSuffix(frame.File, "_test.go") {
			return frame
		}
	}

	return runtime.Frame{}
}

// FileWithLineNum return the file name and line number of the current file
func FileWithLineNum() string {
	frame := CallerFrame()
	if frame.PC != 0 {
		return frame.File + ":" + strconv.FormatInt(int64(frame.Line), 10)
	}

	return ""
}

// CheckTruth check string true or not
func CheckTruth(vals ...string) bool {
	for _, val := range vals {
		if val != "" && !strings.EqualFold(val, "false") {
			return true
		}
	}
	return false
}

// Contains reports whether elem is one of elems
func Contains(elems []string, elem string) bool {
	for _, e := range elems {
		if elem == e {
			return true
		}
	}
	return false
}

// IsValidIdentifier reports whether name can be written into SQL text as a
// bare table or column identifier.
func IsValidIdentifier(name string) bool {
	if name == "" {
		return false
	}

	for i, c := range name {
		switch {
		case c == '_', c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z':
		case c >= '0' && c <= '9' && i > 0:
		default:
			return false
		}
	}
	return true
}
