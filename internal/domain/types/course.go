package types

// Accreditation unit categories, in display order.
const (
	AccredMath                 = "Math"
	AccredNaturalSciences      = "Natural Sciences"
	AccredMathNaturalSciences  = "Math and Natural Sciences"
	AccredComplementaryStudies = "Complimentary Studies"
	AccredEngineeringScience   = "Engineering Science"
	AccredEngineeringDesign    = "Engineering Design"
	AccredEngineeringSciDesign = "Engineering Science and Engineering Design"
	AccredOther                = "Other"
)

// AccreditationCategories lists the unit categories in spreadsheet column order.
var AccreditationCategories = []string{
	AccredMath,
	AccredNaturalSciences,
	AccredMathNaturalSciences,
	AccredComplementaryStudies,
	AccredEngineeringScience,
	AccredEngineeringDesign,
	AccredEngineeringSciDesign,
	AccredOther,
}

// AccreditationUnits maps a unit category to the units a course satisfies.
type AccreditationUnits map[string]float64

// Clone returns an independent copy of u.
func (u AccreditationUnits) Clone() AccreditationUnits {
	if u == nil {
		return nil
	}
	out := make(AccreditationUnits, len(u))
	for k, v := range u {
		out[k] = v
	}
	return out
}

// Course is one catalog entry together with its requisite lists.
type Course struct {
	Name           CourseName `json:"name"`
	Faculty        string     `json:"faculty,omitempty"`
	Department     string     `json:"department,omitempty"`
	CourseID       string     `json:"course_id,omitempty"`
	Subject        string     `json:"subject,omitempty"`
	Catalog        string     `json:"catalog,omitempty"`
	LongTitle      string     `json:"long_title,omitempty"`
	EffectiveDate  string     `json:"effective_date,omitempty"`
	Status         string     `json:"status,omitempty"`
	CalendarPrint  string     `json:"calendar_print,omitempty"`
	ProgUnits      string     `json:"prog_units,omitempty"`
	EnggUnits      string     `json:"engg_units,omitempty"`
	CalcFeeIndex   string     `json:"calc_fee_index,omitempty"`
	ActualFeeIndex string     `json:"actual_fee_index,omitempty"`
	Duration       string     `json:"duration,omitempty"`
	AlphaHours     string     `json:"alpha_hours,omitempty"`
	Description    string     `json:"description,omitempty"`

	Category string `json:"category,omitempty"`
	Color    string `json:"color,omitempty"`
	// Elective marks the placeholder courses standing in for PROG/COMP/ITS.
	Elective ElectiveKind `json:"elective,omitempty"`

	Accreditation AccreditationUnits `json:"accreditation,omitempty"`

	Prereqs []Requirement `json:"prereqs"`
	Coreqs  []Requirement `json:"coreqs"`
}

// Clone returns a deep copy; the requisite lists and unit map are not shared.
func (c Course) Clone() Course {
	out := c
	out.Prereqs = CloneRequirements(c.Prereqs)
	out.Coreqs = CloneRequirements(c.Coreqs)
	out.Accreditation = c.Accreditation.Clone()
	return out
}

// ElectiveKind identifies an elective placeholder by its sequencing code.
type ElectiveKind string

const (
	ElectiveNone          ElectiveKind = ""
	ElectiveComplementary ElectiveKind = "COMP"
	ElectiveProgram       ElectiveKind = "PROG"
	ElectiveITS           ElectiveKind = "ITS"
)

// ElectivePlaceholder describes the catalog entry created for an elective code.
type ElectivePlaceholder struct {
	Kind        ElectiveKind
	Name        CourseName
	Description string
}

// ElectivePlaceholders lists the supported elective codes.
var ElectivePlaceholders = []ElectivePlaceholder{
	{
		Kind:        ElectiveComplementary,
		Name:        "Complementary Elective",
		Description: "A complementary elective of the student's choice. Please consult the calendar for more information.",
	},
	{
		Kind:        ElectiveProgram,
		Name:        "Program/Technical Elective",
		Description: "A program/technical elective of the student's choice. Please consult the calendar for more information.",
	},
	{
		Kind:        ElectiveITS,
		Name:        "ITS Elective",
		Description: "An ITS elective of the student's choice. Please consult the calendar for more information.",
	},
}

// LookupElective returns the placeholder for a sequencing code such as "PROG".
func LookupElective(code string) (ElectivePlaceholder, bool) {
	for _, p := range ElectivePlaceholders {
		if string(p.Kind) == code {
			return p, true
		}
	}
	return ElectivePlaceholder{}, false
}
