package schema

// Field identifies a column of the target schema, or an intermediate
// mapped field that feeds a synthesized column.
type Field string

// Target schema fields, in output order.
const (
	FieldBusinessName      Field = "Business Name"
	FieldFullName          Field = "Full Name"
	FieldSSN               Field = "SSN"
	FieldDOB               Field = "DOB"
	FieldIndustry          Field = "Industry"
	FieldEIN               Field = "EIN"
	FieldBusinessStartDate Field = "Business Start Date"
	FieldPhone1            Field = "Phone 1"
	FieldPhone2            Field = "Phone 2"
	FieldPhone3            Field = "Phone 3"
	FieldEmail1            Field = "Email 1"
	FieldEmail2            Field = "Email 2"
	FieldBusinessAddress   Field = "Business Address"
	FieldHomeAddress       Field = "Home Address"
	FieldMonthlyRevenue    Field = "Monthly Revenue"
)

// Intermediate fields. Source columns may map to these, but they are folded
// into synthesized output columns instead of being emitted directly.
const (
	FieldFirstName      Field = "First Name"
	FieldLastName       Field = "Last Name"
	FieldPhone          Field = "Phone"
	FieldEmail          Field = "Email"
	FieldBusinessStreet Field = "Business Street"
	FieldBusinessCity   Field = "Business City"
	FieldBusinessState  Field = "Business State"
	FieldBusinessZip    Field = "Business Zip"
	FieldHomeStreet     Field = "Home Street"
	FieldHomeCity       Field = "Home City"
	FieldHomeState      Field = "Home State"
	FieldHomeZip        Field = "Home Zip"
)

// None marks an unassigned column.
const None Field = ""

// TargetSchema is the fixed ordered column set every cleaned file gets.
// Every field is always present in the output, matched or not.
type TargetSchema struct {
	Fields []Field
}

// DefaultTargetSchema returns the schema the HUB expects.
func DefaultTargetSchema() TargetSchema {
	return TargetSchema{Fields: []Field{
		FieldBusinessName,
		FieldFullName,
		FieldSSN,
		FieldDOB,
		FieldIndustry,
		FieldEIN,
		FieldBusinessStartDate,
		FieldPhone1,
		FieldPhone2,
		FieldPhone3,
		FieldEmail1,
		FieldEmail2,
		FieldBusinessAddress,
		FieldHomeAddress,
		FieldMonthlyRevenue,
	}}
}

// Headers returns the schema fields as output column headers, in order.
func (s TargetSchema) Headers() []string {
	headers := make([]string, len(s.Fields))
	for i, f := range s.Fields {
		headers[i] = string(f)
	}
	return headers
}

// Contains reports whether f is part of the target schema.
func (s TargetSchema) Contains(f Field) bool {
	for _, field := range s.Fields {
		if field == f {
			return true
		}
	}
	return false
}

// PhoneSlots returns the positional phone fields in schema order.
func (s TargetSchema) PhoneSlots() []Field {
	return s.slotsOf(FieldPhone1, FieldPhone2, FieldPhone3)
}

// EmailSlots returns the positional email fields in schema order.
func (s TargetSchema) EmailSlots() []Field {
	return s.slotsOf(FieldEmail1, FieldEmail2)
}

func (s TargetSchema) slotsOf(candidates ...Field) []Field {
	var slots []Field
	for _, f := range s.Fields {
		for _, c := range candidates {
			if f == c {
				slots = append(slots, f)
			}
		}
	}
	return slots
}

// MappableFields returns every field a source column may be confirmed
// as: the target schema plus the intermediate component fields.
func MappableFields() []Field {
	fields := DefaultTargetSchema().Fields
	return append(fields,
		FieldFirstName, FieldLastName, FieldPhone, FieldEmail,
		FieldBusinessStreet, FieldBusinessCity, FieldBusinessState, FieldBusinessZip,
		FieldHomeStreet, FieldHomeCity, FieldHomeState, FieldHomeZip,
	)
}

// IsPhoneInput reports whether a mapped field carries phone values that the
// multiplexer should collect.
func IsPhoneInput(f Field) bool {
	switch f {
	case FieldPhone, FieldPhone1, FieldPhone2, FieldPhone3:
		return true
	}
	return false
}

// IsEmailInput reports whether a mapped field carries email values.
func IsEmailInput(f Field) bool {
	switch f {
	case FieldEmail, FieldEmail1, FieldEmail2:
		return true
	}
	return false
}

// IsDateField reports whether cleaned values for f are dates.
func IsDateField(f Field) bool {
	return f == FieldDOB || f == FieldBusinessStartDate
}
