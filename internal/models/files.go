package models

// Kind tells how a source file is registered in the output.
type Kind int

const (
	// Template files are assigned into the namespace or exported directly.
	Template Kind = iota

	// Partial files are registered with Handlebars.registerPartial.
	Partial
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case Partial:
		return "partial"
	default:
		return "template"
	}
}

// FileGroup is a set of source paths compiled into one destination file.
type FileGroup struct {
	// Src lists the source template paths in processing order.
	Src []string

	// Dest is the path of the emitted JavaScript file.
	Dest string
}

// ClassifiedFile is a source path with its kind and registration name.
type ClassifiedFile struct {
	Path string
	Kind Kind
	Name string
}
