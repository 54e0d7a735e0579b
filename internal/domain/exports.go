package domain

import (
	interfaces "progviz/internal/domain/interfaces"
	types "progviz/internal/domain/types"
)

// Type aliases expose domain types from the types subpackage for compact imports.
type (
	CourseName          = types.CourseName
	Requirement         = types.Requirement
	Warning             = types.Warning
	AccreditationUnits  = types.AccreditationUnits
	Course              = types.Course
	ElectiveKind        = types.ElectiveKind
	ElectivePlaceholder = types.ElectivePlaceholder
	Slot                = types.Slot
	Term                = types.Term
	Plan                = types.Plan
	Category            = types.Category
	Program             = types.Program
	Cell                = types.Cell
	TermColumn          = types.TermColumn
	PlanSheet           = types.PlanSheet
	SequenceWorkbook    = types.SequenceWorkbook
	CategorySheet       = types.CategorySheet
	AccreditationSheet  = types.AccreditationSheet
	Manifest            = types.Manifest
)

// Interface aliases expose domain interfaces from the interfaces subpackage.
type (
	CourseReader        = interfaces.CourseReader
	CategoryReader      = interfaces.CategoryReader
	AccreditationReader = interfaces.AccreditationReader
	SequenceReader      = interfaces.SequenceReader
	SiteStore           = interfaces.SiteStore
	CatalogService      = interfaces.CatalogService
	CatalogSources      = interfaces.CatalogSources
	Catalog             = interfaces.Catalog
	SequenceService     = interfaces.SequenceService
	SiteService         = interfaces.SiteService
)

// OrSeparator joins the options of a disjunctive requirement.
const OrSeparator = types.OrSeparator

// Elective codes used in sequencing sheets.
const (
	ElectiveNone          = types.ElectiveNone
	ElectiveComplementary = types.ElectiveComplementary
	ElectiveProgram       = types.ElectiveProgram
	ElectiveITS           = types.ElectiveITS
)

// Accreditation unit categories, in display order.
const (
	AccredMath                 = types.AccredMath
	AccredNaturalSciences      = types.AccredNaturalSciences
	AccredMathNaturalSciences  = types.AccredMathNaturalSciences
	AccredComplementaryStudies = types.AccredComplementaryStudies
	AccredEngineeringScience   = types.AccredEngineeringScience
	AccredEngineeringDesign    = types.AccredEngineeringDesign
	AccredEngineeringSciDesign = types.AccredEngineeringSciDesign
	AccredOther                = types.AccredOther
)

var (
	// ElectivePlaceholders lists the supported elective codes.
	ElectivePlaceholders = types.ElectivePlaceholders
	// AccreditationCategories lists the unit categories in column order.
	AccreditationCategories = types.AccreditationCategories
)

// JoinOptions builds a requirement from its disjuncts.
func JoinOptions(opts []CourseName) Requirement { return types.JoinOptions(opts) }

// NormalizeCourseName upper-cases a cell and collapses whitespace runs.
func NormalizeCourseName(raw string) CourseName { return types.NormalizeCourseName(raw) }

// LookupElective returns the placeholder for a sequencing code such as "PROG".
func LookupElective(code string) (ElectivePlaceholder, bool) { return types.LookupElective(code) }
