package cmds

// Var defines name <value>. name. resets it to the zero value.
func Var[T any](name string, desc string) *T {
	var value T

	Define(name, Func(func(v T) {
		value = v
	}).Desc(desc))

	var zero T
	Define(name+".", Func(func() {
		value = zero
	}).Desc("reset "+name))

	return &value
}

// Switch defines name to set and !name to clear.
func Switch(name string, desc string) *bool {
	var value bool

	Define(name, Func(func() {
		value = true
	}).Desc(desc))

	Define("!"+name, Func(func() {
		value = false
	}).Desc("unset "+name))

	return &value
}
