package logger

import (
	"database/sql/driver"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode"
)

const (
	tmFmtWithMS = "2006-01-02 15:04:05.999"
	nullStr     = "NULL"
)

func isPrintable(s string) bool {
	for _, r := range s {
		if !unicode.IsPrint(r) {
			return false
		}
	}
	return true
}

// ExplainSQL generate full SQL string with given variables, an unsafe method, only for debug usage.
// bindVar is the positional placeholder ("?" or "%s"); when numericPlaceholder
// is not nil it is used instead, its first group being the 1-based var index.
func ExplainSQL(sql string, numericPlaceholder *regexp.Regexp, bindVar string, escaper string, avars ...interface{}) string {
	vars := make([]string, len(avars))

	for idx, v := range avars {
		if valuer, ok := v.(driver.Valuer); ok {
			v, _ = valuer.Value()
		}

		switch v := v.(type) {
		case bool:
			vars[idx] = strconv.FormatBool(v)
		case time.Time:
			if v.IsZero() {
				vars[idx] = escaper + "0000-00-00 00:00:00" + escaper
			} else {
				vars[idx] = escaper + v.Format(tmFmtWithMS) + escaper
			}
		case *time.Time:
			if v == nil {
				vars[idx] = nullStr
			} else {
				vars[idx] = escaper + v.Format(tmFmtWithMS) + escaper
			}
		case []byte:
			if s := string(v); isPrintable(s) {
				vars[idx] = escaper + strings.ReplaceAll(s, escaper, escaper+escaper) + escaper
			} else {
				vars[idx] = escaper + "<binary>" + escaper
			}
		case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
			vars[idx] = fmt.Sprintf("%d", v)
		case float32:
			vars[idx] = strconv.FormatFloat(float64(v), 'f', -1, 32)
		case float64:
			vars[idx] = strconv.FormatFloat(v, 'f', -1, 64)
		case string:
			vars[idx] = escaper + strings.ReplaceAll(v, escaper, escaper+escaper) + escaper
		default:
			if v == nil {
				vars[idx] = nullStr
			} else {
				vars[idx] = escaper + strings.ReplaceAll(fmt.Sprint(v), escaper, escaper+escaper) + escaper
			}
		}
	}

	if numericPlaceholder != nil {
		return numericPlaceholder.ReplaceAllStringFunc(sql, func(match string) string {
			groups := numericPlaceholder.FindStringSubmatch(match)
			if len(groups) < 2 {
				return match
			}
			if n, err := strconv.Atoi(groups[1]); err == nil && n >= 1 && n <= len(vars) {
				return vars[n-1]
			}
			return match
		})
	}

	if bindVar == "" {
		bindVar = "?"
	}

	var (
		builder strings.Builder
		idx     int
	)
	for {
		pos := strings.Index(sql, bindVar)
		if pos < 0 || idx >= len(vars) {
			builder.WriteString(sql)
			break
		}
		builder.WriteString(sql[:pos])
		builder.WriteString(vars[idx])
		sql = sql[pos+len(bindVar):]
		idx++
	}

	return builder.String()
}
