package token

// ValueKind tags which payload a Value carries.
type ValueKind int

const (
	NoValue ValueKind = iota
	BoolValue
	SymbolValue  // interned string: TYPEID, OBJECTID, INT_CONST, STR_CONST
	MessageValue // diagnostic text: ERROR
)

// Value is the optional payload attached to a token. A Symbol or Message
// value may still be absent (Valid=false); that renders as a placeholder
// rather than failing.
type Value struct {
	Kind  ValueKind
	Bool  bool
	Text  string
	Valid bool
}

// Bool returns a boolean payload.
func Bool(b bool) Value { return Value{Kind: BoolValue, Bool: b, Valid: true} }

// Symbol returns a present string-table reference.
func Symbol(s string) Value { return Value{Kind: SymbolValue, Text: s, Valid: true} }

// Message returns a present error message.
func Message(s string) Value { return Value{Kind: MessageValue, Text: s, Valid: true} }

// Absent returns a payload of the given kind with no content.
func Absent(k ValueKind) Value { return Value{Kind: k} }

// Get returns the payload text and whether it is present.
func (v Value) Get() (string, bool) {
	if !v.Valid {
		return "", false
	}
	return v.Text, true
}

// PayloadKind returns the payload shape implied by a token code.
func PayloadKind(c Code) ValueKind {
	switch c {
	case BOOL_CONST:
		return BoolValue
	case TYPEID, OBJECTID, INT_CONST, STR_CONST:
		return SymbolValue
	case ERROR:
		return MessageValue
	default:
		return NoValue
	}
}
