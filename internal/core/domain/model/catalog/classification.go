package catalog

import (
	"fmt"
	"sort"
	"strings"

	"workorders/internal/pkg/errs"
)

// WorkCategory classifies a work order by the nature of the work.
type WorkCategory int

const (
	// WorkCategoryUnknown represents an invalid or undefined category.
	WorkCategoryUnknown WorkCategory = iota

	// CategoryPreventive is scheduled preventive maintenance.
	CategoryPreventive

	// CategoryCorrective is repair work after a fault.
	CategoryCorrective

	// CategoryEmergency is work responding to an emergency situation.
	CategoryEmergency

	// CategoryImprovement is facility improvement or upgrade work.
	CategoryImprovement

	// CategoryInspection is periodic inspection or examination work.
	CategoryInspection
)

func getWorkCategoryStrings() map[WorkCategory]string {
	return map[WorkCategory]string{
		WorkCategoryUnknown: "UNKNOWN",
		CategoryPreventive:  "PREVENTIVE",
		CategoryCorrective:  "CORRECTIVE",
		CategoryEmergency:   "EMERGENCY",
		CategoryImprovement: "IMPROVEMENT",
		CategoryInspection:  "INSPECTION",
	}
}

// WorkCategoryFromString parses the persisted string form.
func WorkCategoryFromString(s string) (WorkCategory, error) {
	for category, str := range getWorkCategoryStrings() {
		if str == s && category != WorkCategoryUnknown {
			return category, nil
		}
	}
	return WorkCategoryUnknown, errs.NewValueIsInvalidErrorWithCause(
		"workCategory", fmt.Errorf("%q is not a valid work category", s))
}

// Validate checks if the WorkCategory value is valid.
func (c WorkCategory) Validate() error {
	if _, ok := getWorkCategoryStrings()[c]; !ok || c == WorkCategoryUnknown {
		return errs.NewValueIsInvalidErrorWithCause(
			"workCategory", fmt.Errorf("%d is not a valid work category", c))
	}
	return nil
}

// String returns the persisted name of the category.
func (c WorkCategory) String() string {
	if str, ok := getWorkCategoryStrings()[c]; ok {
		return str
	}
	return "UNKNOWN"
}

// WorkType classifies a work order by trade or discipline.
type WorkType int

const (
	// WorkTypeUnknown represents an invalid or undefined work type.
	WorkTypeUnknown WorkType = iota

	// TypeElectrical covers electrical installations.
	TypeElectrical

	// TypePlumbing covers water supply, drainage, and gas piping.
	TypePlumbing

	// TypeHVAC covers heating, cooling, and ventilation.
	TypeHVAC

	// TypeElevator covers elevators and escalators.
	TypeElevator

	// TypeFireSafety covers fire-protection and safety installations.
	TypeFireSafety

	// TypeSecurity covers security and access-control installations.
	TypeSecurity

	// TypeStructural covers building structure and exterior walls.
	TypeStructural

	// TypeAppliance covers appliances and general equipment.
	TypeAppliance

	// TypeLighting covers lighting installations.
	TypeLighting

	// TypeCleaning covers cleaning and sanitation work.
	TypeCleaning

	// TypeOther covers work not matching any other type.
	TypeOther
)

func getWorkTypeStrings() map[WorkType]string {
	return map[WorkType]string{
		WorkTypeUnknown: "UNKNOWN",
		TypeElectrical:  "ELECTRICAL",
		TypePlumbing:    "PLUMBING",
		TypeHVAC:        "HVAC",
		TypeElevator:    "ELEVATOR",
		TypeFireSafety:  "FIRE_SAFETY",
		TypeSecurity:    "SECURITY",
		TypeStructural:  "STRUCTURAL",
		TypeAppliance:   "APPLIANCE",
		TypeLighting:    "LIGHTING",
		TypeCleaning:    "CLEANING",
		TypeOther:       "OTHER",
	}
}

// WorkTypeFromString parses the persisted string form.
func WorkTypeFromString(s string) (WorkType, error) {
	for workType, str := range getWorkTypeStrings() {
		if str == s && workType != WorkTypeUnknown {
			return workType, nil
		}
	}
	return WorkTypeUnknown, errs.NewValueIsInvalidErrorWithCause(
		"workType", fmt.Errorf("%q is not a valid work type", s))
}

// RecommendedTypes returns the work types usually associated with a category,
// most relevant first. Used as a suggestion list; any type remains valid for
// any category.
func RecommendedTypes(category WorkCategory) []WorkType {
	switch category {
	case CategoryPreventive:
		return []WorkType{TypeHVAC, TypeElevator, TypeFireSafety, TypeElectrical, TypePlumbing}
	case CategoryCorrective:
		return []WorkType{TypeElectrical, TypePlumbing, TypeHVAC, TypeAppliance, TypeLighting}
	case CategoryEmergency:
		return []WorkType{TypeElectrical, TypePlumbing, TypeFireSafety, TypeElevator, TypeSecurity}
	case CategoryImprovement:
		return []WorkType{TypeStructural, TypeLighting, TypeSecurity, TypeAppliance}
	case CategoryInspection:
		return []WorkType{TypeFireSafety, TypeElevator, TypeHVAC, TypeElectrical, TypeStructural}
	default:
		return nil
	}
}

// Validate checks if the WorkType value is valid.
func (t WorkType) Validate() error {
	if _, ok := getWorkTypeStrings()[t]; !ok || t == WorkTypeUnknown {
		return errs.NewValueIsInvalidErrorWithCause(
			"workType", fmt.Errorf("%d is not a valid work type", t))
	}
	return nil
}

// String returns the persisted name of the work type.
func (t WorkType) String() string {
	if str, ok := getWorkTypeStrings()[t]; ok {
		return str
	}
	return "UNKNOWN"
}

// WorkPriority ranks a work order by importance. Each priority carries a
// target response time and a sort order used to rank open work.
type WorkPriority int

const (
	// WorkPriorityUnknown represents an invalid or undefined priority.
	WorkPriorityUnknown WorkPriority = iota

	// PriorityLow is routine work handled within the planned window.
	PriorityLow

	// PriorityMedium is standard-priority work.
	PriorityMedium

	// PriorityHigh is important work needing a fast turnaround.
	PriorityHigh

	// PriorityUrgent is work that must be handled immediately.
	PriorityUrgent

	// PriorityEmergency is an emergency handled before everything else.
	PriorityEmergency
)

type priorityAttributes struct {
	responseTimeHours int
	sortOrder         int
}

func getWorkPriorityStrings() map[WorkPriority]string {
	return map[WorkPriority]string{
		WorkPriorityUnknown: "UNKNOWN",
		PriorityLow:         "LOW",
		PriorityMedium:      "MEDIUM",
		PriorityHigh:        "HIGH",
		PriorityUrgent:      "URGENT",
		PriorityEmergency:   "EMERGENCY",
	}
}

func getWorkPriorityAttributes() map[WorkPriority]priorityAttributes {
	return map[WorkPriority]priorityAttributes{
		PriorityLow:       {responseTimeHours: 72, sortOrder: 1},
		PriorityMedium:    {responseTimeHours: 48, sortOrder: 2},
		PriorityHigh:      {responseTimeHours: 24, sortOrder: 3},
		PriorityUrgent:    {responseTimeHours: 4, sortOrder: 4},
		PriorityEmergency: {responseTimeHours: 1, sortOrder: 5},
	}
}

// WorkPriorityFromString parses the persisted string form.
func WorkPriorityFromString(s string) (WorkPriority, error) {
	for priority, str := range getWorkPriorityStrings() {
		if str == s && priority != WorkPriorityUnknown {
			return priority, nil
		}
	}
	return WorkPriorityUnknown, errs.NewValueIsInvalidErrorWithCause(
		"workPriority", fmt.Errorf("%q is not a valid work priority", s))
}

// FromFaultPriority maps a fault-report priority label onto a work priority.
// Unrecognized labels fall back to PriorityMedium.
func FromFaultPriority(faultPriority string) WorkPriority {
	switch strings.ToUpper(faultPriority) {
	case "LOW":
		return PriorityLow
	case "MEDIUM", "NORMAL":
		return PriorityMedium
	case "HIGH":
		return PriorityHigh
	case "URGENT":
		return PriorityUrgent
	case "EMERGENCY", "CRITICAL":
		return PriorityEmergency
	default:
		return PriorityMedium
	}
}

// PrioritiesByRank returns all priorities sorted most urgent first.
func PrioritiesByRank() []WorkPriority {
	out := []WorkPriority{PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent, PriorityEmergency}
	sort.Slice(out, func(i, j int) bool {
		return out[i].SortOrder() > out[j].SortOrder()
	})
	return out
}

// Validate checks if the WorkPriority value is valid.
func (p WorkPriority) Validate() error {
	if _, ok := getWorkPriorityAttributes()[p]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"workPriority", fmt.Errorf("%d is not a valid work priority", p))
	}
	return nil
}

// String returns the persisted name of the priority.
func (p WorkPriority) String() string {
	if str, ok := getWorkPriorityStrings()[p]; ok {
		return str
	}
	return "UNKNOWN"
}

// ResponseTimeHours returns the target response time in hours.
func (p WorkPriority) ResponseTimeHours() int {
	return getWorkPriorityAttributes()[p].responseTimeHours
}

// SortOrder returns the ranking weight of the priority. Higher means more
// urgent.
func (p WorkPriority) SortOrder() int {
	return getWorkPriorityAttributes()[p].sortOrder
}

// Escalated returns the priority one rank up. PriorityEmergency is the
// ceiling and escalates to itself.
func (p WorkPriority) Escalated() WorkPriority {
	switch p {
	case PriorityLow:
		return PriorityMedium
	case PriorityMedium:
		return PriorityHigh
	case PriorityHigh:
		return PriorityUrgent
	case PriorityUrgent, PriorityEmergency:
		return PriorityEmergency
	default:
		return p
	}
}

// WorkUrgency expresses how quickly a work order must be responded to,
// independently of its priority rank.
type WorkUrgency int

const (
	// WorkUrgencyUnknown represents an invalid or undefined urgency.
	WorkUrgencyUnknown WorkUrgency = iota

	// UrgencyLow allows up to a week of response time.
	UrgencyLow

	// UrgencyNormal allows up to three days of response time.
	UrgencyNormal

	// UrgencyHigh requires a response within a day.
	UrgencyHigh

	// UrgencyCritical requires a response within four hours.
	UrgencyCritical
)

func getWorkUrgencyStrings() map[WorkUrgency]string {
	return map[WorkUrgency]string{
		WorkUrgencyUnknown: "UNKNOWN",
		UrgencyLow:         "LOW",
		UrgencyNormal:      "NORMAL",
		UrgencyHigh:        "HIGH",
		UrgencyCritical:    "CRITICAL",
	}
}

func getWorkUrgencyMaxResponseHours() map[WorkUrgency]int {
	return map[WorkUrgency]int{
		UrgencyLow:      168,
		UrgencyNormal:   72,
		UrgencyHigh:     24,
		UrgencyCritical: 4,
	}
}

// WorkUrgencyFromString parses the persisted string form.
func WorkUrgencyFromString(s string) (WorkUrgency, error) {
	for urgency, str := range getWorkUrgencyStrings() {
		if str == s && urgency != WorkUrgencyUnknown {
			return urgency, nil
		}
	}
	return WorkUrgencyUnknown, errs.NewValueIsInvalidErrorWithCause(
		"workUrgency", fmt.Errorf("%q is not a valid work urgency", s))
}

// Validate checks if the WorkUrgency value is valid.
func (u WorkUrgency) Validate() error {
	if _, ok := getWorkUrgencyMaxResponseHours()[u]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"workUrgency", fmt.Errorf("%d is not a valid work urgency", u))
	}
	return nil
}

// String returns the persisted name of the urgency.
func (u WorkUrgency) String() string {
	if str, ok := getWorkUrgencyStrings()[u]; ok {
		return str
	}
	return "UNKNOWN"
}

// MaxResponseHours returns the maximum allowed response time in hours.
func (u WorkUrgency) MaxResponseHours() int {
	return getWorkUrgencyMaxResponseHours()[u]
}

// ProcessingOrder combines priority and urgency into a single ranking weight.
// Higher means handled first.
func ProcessingOrder(priority WorkPriority, urgency WorkUrgency) int {
	return priority.SortOrder()*10 + int(urgency)
}
