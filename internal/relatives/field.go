package relatives

// Field names a stub attribute that may be filled after a relative is accepted.
type Field int

const (
	FieldAddressRegion Field = iota
	FieldAddressLocality
	FieldMiddleName
	FieldCheckRelatives
)

// Fields lists the promptable fields in the order they are asked.
var Fields = []Field{FieldAddressRegion, FieldAddressLocality, FieldMiddleName, FieldCheckRelatives}

func (f Field) String() string {
	switch f {
	case FieldAddressRegion:
		return "addressRegion"
	case FieldAddressLocality:
		return "addressLocality"
	case FieldMiddleName:
		return "middleName"
	case FieldCheckRelatives:
		return "checkRelatives"
	default:
		return "unknown"
	}
}

// Label is the human-facing question text for the field.
func (f Field) Label() string {
	switch f {
	case FieldAddressRegion:
		return "State"
	case FieldAddressLocality:
		return "City"
	case FieldMiddleName:
		return "Middle name"
	case FieldCheckRelatives:
		return "Check relatives? [y|n]"
	default:
		return f.String()
	}
}
