package key

import "strconv"

// Str is a string Key.
type Str string

func (s Str) Hash32() uint32 {
	return hashString(string(s))
}

func (s Str) Equals(other Key) bool {
	var o, ok = other.(Str)
	return ok && s == o
}

func (s Str) String() string {
	return strconv.Quote(string(s))
}
