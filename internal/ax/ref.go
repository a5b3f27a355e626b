package ax

// Ref is one reference to a foreign accessibility object. Implementations wrap
// the platform API; every method reports the raw status code of the call.
//
// Values returned by AttributeValue and ParameterizedAttributeValue follow the
// copy rule: any Ref inside them (directly or in a []any) is owned by the
// caller and must be released exactly once. Refs passed in as arguments are
// borrowed.
type Ref interface {
	AttributeNames() ([]string, Code)
	AttributeValue(name string) (any, Code)
	SetAttributeValue(name string, value any) Code
	IsAttributeSettable(name string) (bool, Code)

	ParameterizedAttributeNames() ([]string, Code)
	ParameterizedAttributeValue(name string, param any) (any, Code)

	ActionNames() ([]string, Code)
	ActionDescription(name string) (string, Code)
	PerformAction(name string) Code

	Pid() (int, Code)
	SetMessagingTimeout(seconds float32) Code
	ElementAtPosition(x, y float32) (Ref, Code)

	// Retain returns a second owned reference to the same object.
	Retain() Ref
	// Release drops this reference. It must be called exactly once per owned Ref.
	Release()
	// Equal reports whether both refs denote the same foreign object.
	Equal(other Ref) bool
	// Hash is consistent with Equal.
	Hash() uintptr
}
