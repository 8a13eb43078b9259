package classify

import (
	"leadhub/domain/schema"
)

// AliasTable maps header lookup keys to target fields. Static and
// hand-curated; loaded at startup, never mutated at runtime.
type AliasTable map[string]schema.Field

// NewAliasTable builds a table from raw header variants, normalizing each
// key through LookupKey so callers can list aliases in natural spelling.
func NewAliasTable(entries map[string]schema.Field) AliasTable {
	table := make(AliasTable, len(entries))
	for raw, field := range entries {
		table[LookupKey(raw)] = field
	}
	return table
}

// Resolve looks up a raw header. Exact match only, after normalization;
// no fuzzy matching, no scoring.
func (t AliasTable) Resolve(header string) (schema.Field, bool) {
	field, ok := t[LookupKey(header)]
	return field, ok
}

// DefaultAliasTable is the merged dictionary of every header variant the
// providers have sent so far. Target-schema headers map to themselves so a
// cleaned file classifies onto itself unchanged.
func DefaultAliasTable() AliasTable {
	return NewAliasTable(map[string]schema.Field{
		// business name
		"business name": schema.FieldBusinessName,
		"businessname":  schema.FieldBusinessName,
		"biz name":      schema.FieldBusinessName,
		"company":       schema.FieldBusinessName,
		"company name":  schema.FieldBusinessName,
		"dba":           schema.FieldBusinessName,
		"merchant name": schema.FieldBusinessName,
		"legal name":    schema.FieldBusinessName,

		// person names
		"full name":      schema.FieldFullName,
		"ownerfullname":  schema.FieldFullName,
		"owner name":     schema.FieldFullName,
		"contact name":   schema.FieldFullName,
		"owner":          schema.FieldFullName,
		"name":           schema.FieldFirstName,
		"first name":     schema.FieldFirstName,
		"firstname":      schema.FieldFirstName,
		"fname":          schema.FieldFirstName,
		"owner first":    schema.FieldFirstName,
		"last name":      schema.FieldLastName,
		"lastname":       schema.FieldLastName,
		"lname":          schema.FieldLastName,
		"owner last":     schema.FieldLastName,

		// identifiers
		"ssn":                    schema.FieldSSN,
		"social security":        schema.FieldSSN,
		"social security number": schema.FieldSSN,
		"social":                 schema.FieldSSN,
		"ein":                    schema.FieldEIN,
		"employer id":            schema.FieldEIN,
		"tax id":                 schema.FieldEIN,
		"federal tax id":         schema.FieldEIN,
		"fein":                   schema.FieldEIN,

		// dates
		"dob":                 schema.FieldDOB,
		"date of birth":       schema.FieldDOB,
		"dateofbirth":         schema.FieldDOB,
		"birth date":          schema.FieldDOB,
		"birthdate":           schema.FieldDOB,
		"birthday":            schema.FieldDOB,
		"business start date": schema.FieldBusinessStartDate,
		"bsd":                 schema.FieldBusinessStartDate,
		"startdate":           schema.FieldBusinessStartDate,
		"start date":          schema.FieldBusinessStartDate,
		"date established":    schema.FieldBusinessStartDate,
		"years in business":   schema.FieldBusinessStartDate,

		// industry and revenue
		"industry":               schema.FieldIndustry,
		"industry type":          schema.FieldIndustry,
		"business type":          schema.FieldIndustry,
		"type of business":       schema.FieldIndustry,
		"naics":                  schema.FieldIndustry,
		"sic":                    schema.FieldIndustry,
		"revenue":                schema.FieldMonthlyRevenue,
		"monthly revenue":        schema.FieldMonthlyRevenue,
		"businessmonthlyrevenue": schema.FieldMonthlyRevenue,
		"monthly sales":          schema.FieldMonthlyRevenue,
		"gross monthly revenue":  schema.FieldMonthlyRevenue,
		"avg monthly revenue":    schema.FieldMonthlyRevenue,
		"monthly deposits":       schema.FieldMonthlyRevenue,

		// phones (generic; the multiplexer assigns slots)
		"phone":          schema.FieldPhone,
		"phone 1":        schema.FieldPhone,
		"phone1":         schema.FieldPhone,
		"phone 2":        schema.FieldPhone,
		"phone2":         schema.FieldPhone,
		"phone 3":        schema.FieldPhone,
		"phone3":         schema.FieldPhone,
		"phone number":   schema.FieldPhone,
		"cellphone":      schema.FieldPhone,
		"cell phone":     schema.FieldPhone,
		"cell":           schema.FieldPhone,
		"mobile":         schema.FieldPhone,
		"mobile phone":   schema.FieldPhone,
		"telephone":      schema.FieldPhone,
		"tel":            schema.FieldPhone,
		"work phone":     schema.FieldPhone,
		"home phone":     schema.FieldPhone,
		"business phone": schema.FieldPhone,
		"contact number": schema.FieldPhone,
		"googlephone":    schema.FieldPhone,
		"number1":        schema.FieldPhone,

		// emails
		"email":         schema.FieldEmail,
		"email 1":       schema.FieldEmail,
		"email1":        schema.FieldEmail,
		"email 2":       schema.FieldEmail,
		"email2":        schema.FieldEmail,
		"email address": schema.FieldEmail,
		"e mail":        schema.FieldEmail,
		"google email":  schema.FieldEmail,
		"owner email":   schema.FieldEmail,
		"contact email": schema.FieldEmail,

		// business address parts
		"address":        schema.FieldBusinessStreet,
		"address 1":      schema.FieldBusinessStreet,
		"street":         schema.FieldBusinessStreet,
		"street address": schema.FieldBusinessStreet,
		"city":           schema.FieldBusinessCity,
		"state":          schema.FieldBusinessState,
		"zip":            schema.FieldBusinessZip,
		"zip code":       schema.FieldBusinessZip,
		"zipcode":        schema.FieldBusinessZip,
		"postal code":    schema.FieldBusinessZip,

		// home / owner address parts
		"owner address": schema.FieldHomeStreet,
		"owner street":  schema.FieldHomeStreet,
		"home street":   schema.FieldHomeStreet,
		"owner city":    schema.FieldHomeCity,
		"home city":     schema.FieldHomeCity,
		"owner state":   schema.FieldHomeState,
		"home state":    schema.FieldHomeState,
		"owner zip":     schema.FieldHomeZip,
		"home zip":      schema.FieldHomeZip,

		// target headers resolve to themselves so cleaning is a fixed point
		"business address": schema.FieldBusinessAddress,
		"home address":     schema.FieldHomeAddress,
	})
}
