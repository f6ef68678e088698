package pdf

// Password selects which poppler password flag is passed to a tool. The
// owner password bypasses all security restrictions on the document,
// the user password only unlocks it. The zero value means no password.
type Password struct {
	value string
	owner bool
	set   bool
}

// OwnerPassword returns the owner password for a document.
func OwnerPassword(value string) Password {
	return Password{value: value, owner: true, set: true}
}

// UserPassword returns the user password for a document.
func UserPassword(value string) Password {
	return Password{value: value, set: true}
}

// IsSet reports whether a password was supplied.
func (p Password) IsSet() bool {
	return p.set
}

// AppendArgs appends the password flags to a command line.
func (p Password) AppendArgs(args []string) []string {
	if !p.set {
		return args
	}

	if p.owner {
		return append(args, "-opw", p.value)
	}

	return append(args, "-upw", p.value)
}

// String hides the password value so it cannot end up in log output.
func (p Password) String() string {
	return "******"
}

// GoString hides the password value from %#v as well.
func (p Password) GoString() string {
	return "pdf.Password{******}"
}
