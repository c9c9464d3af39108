package cli

import "fmt"

// enumFlag is a pflag.Value over one of the option enums.
type enumFlag[T fmt.Stringer] struct {
	value *T
	parse func(string) (T, error)
	typ   string
}

func newEnumFlag[T fmt.Stringer](value *T, parse func(string) (T, error), typ string) *enumFlag[T] {
	return &enumFlag[T]{value: value, parse: parse, typ: typ}
}

func (f *enumFlag[T]) String() string {
	return (*f.value).String()
}

func (f *enumFlag[T]) Set(s string) error {
	v, err := f.parse(s)
	if err != nil {
		return err
	}
	*f.value = v
	return nil
}

func (f *enumFlag[T]) Type() string {
	return f.typ
}
