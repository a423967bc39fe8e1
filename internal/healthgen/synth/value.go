package synth

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

type kind int

const (
	kindNull kind = iota
	kindStr
	kindInt
	kindFloat
	kindBool
	kindDate
	kindClock
)

// Value is one SQL literal in a row tuple. Rendering goes through Literal only.
type Value struct {
	kind   kind
	s      string
	i      int64
	f      float64
	places int
	b      bool
	t      time.Time
}

func Null() Value { return Value{kind: kindNull} }

func Str(s string) Value { return Value{kind: kindStr, s: s} }

func Int(i int) Value { return Value{kind: kindInt, i: int64(i)} }

// Float renders with a fixed number of decimal places.
func Float(f float64, places int) Value { return Value{kind: kindFloat, f: f, places: places} }

func Bool(b bool) Value { return Value{kind: kindBool, b: b} }

// Date renders as 'YYYY-MM-DD'.
func Date(t time.Time) Value { return Value{kind: kindDate, t: t} }

// Clock renders a time of day as 'HH:MM:SS'.
func Clock(hour, minute, second int) Value {
	return Value{kind: kindClock, t: time.Date(0, 1, 1, hour, minute, second, 0, time.UTC)}
}

func OptStr(p *string) Value {
	if p == nil {
		return Null()
	}
	return Str(*p)
}

func OptInt(p *int) Value {
	if p == nil {
		return Null()
	}
	return Int(*p)
}

func OptDate(p *time.Time) Value {
	if p == nil {
		return Null()
	}
	return Date(*p)
}

func (v Value) IsNull() bool { return v.kind == kindNull }

// Escape doubles every backslash and every single quote so s can sit inside a
// '...' literal under MySQL's default sql_mode, where backslash is an escape character.
func Escape(s string) string {
	return literalEscaper.Replace(s)
}

var literalEscaper = strings.NewReplacer(`\`, `\\`, "'", "''")

// Literal renders v in MySQL literal syntax. NULL is never quoted.
func (v Value) Literal() string {
	switch v.kind {
	case kindNull:
		return "NULL"
	case kindStr:
		return "'" + Escape(v.s) + "'"
	case kindInt:
		return strconv.FormatInt(v.i, 10)
	case kindFloat:
		return strconv.FormatFloat(v.f, 'f', v.places, 64)
	case kindBool:
		if v.b {
			return "TRUE"
		}
		return "FALSE"
	case kindDate:
		return "'" + v.t.Format("2006-01-02") + "'"
	case kindClock:
		return "'" + v.t.Format("15:04:05") + "'"
	default:
		panic(fmt.Sprintf("synth: unknown value kind %d", v.kind))
	}
}

func (v Value) String() string { return v.Literal() }
