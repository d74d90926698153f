package subscription

import "strings"

var excludedDepartments = map[string]struct{}{
	"975": {},
	"977": {},
	"978": {},
	"984": {},
	"986": {},
	"987": {},
	"988": {},
	"989": {},
}

// DepartmentCode keeps 3 digits for overseas postal codes (97x, 98x), 2 otherwise.
func DepartmentCode(postalCode string) string {
	pc := strings.TrimSpace(postalCode)
	if len(pc) < 2 {
		return pc
	}
	if len(pc) >= 3 && (strings.HasPrefix(pc, "97") || strings.HasPrefix(pc, "98")) {
		return pc[:3]
	}
	return pc[:2]
}

func IsEligibleDepartment(departmentCode string) bool {
	_, excluded := excludedDepartments[departmentCode]
	return !excluded
}
