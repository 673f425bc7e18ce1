package ir

import "fmt"

// Kind is the variant of a Node.
type Kind int

const (
	RootKind Kind = iota
	ElementKind
	AttributeKind
)

func (k Kind) String() string {
	s, ok := map[Kind]string{
		RootKind:      "Root",
		ElementKind:   "Element",
		AttributeKind: "Attribute",
	}[k]
	if ok {
		return s
	}
	return "<unknown kind>"
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(d []byte) error {
	kk, ok := map[string]Kind{
		"Root":      RootKind,
		"Element":   ElementKind,
		"Attribute": AttributeKind,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized kind %q", d)
	}
	*k = kk
	return nil
}

func Kinds() []Kind {
	return []Kind{
		RootKind,
		ElementKind,
		AttributeKind,
	}
}
