package fixtures

import "github.com/darrylcauldwell/workforce-backend-go/internal/domain/lookup"

// DefaultLookupOptions holds the seeded enumeration codes and display labels.
// The core always operates on the codes; labels feed dropdowns only.
var DefaultLookupOptions = map[lookup.Kind][]lookup.Option{
	lookup.KindShiftRole: {
		{Code: "yard_duties", Label: "Yard Duties"},
		{Code: "riding", Label: "Riding & Exercise"},
		{Code: "teaching", Label: "Teaching"},
		{Code: "maintenance", Label: "Maintenance"},
		{Code: "office", Label: "Office"},
	},
	lookup.KindWorkType: {
		{Code: "regular", Label: "Regular Hours"},
		{Code: "overtime", Label: "Overtime"},
		{Code: "event_cover", Label: "Event Cover"},
		{Code: "training", Label: "Training"},
	},
	lookup.KindLeaveType: {
		{Code: "annual", Label: "Annual Leave"},
		{Code: "unpaid", Label: "Unpaid Leave"},
		{Code: "compassionate", Label: "Compassionate Leave"},
		{Code: "other", Label: "Other"},
	},
	lookup.KindStaffType: {
		{Code: "permanent", Label: "Permanent"},
		{Code: "casual", Label: "Casual"},
		{Code: "on_call", Label: "On Call"},
	},
}
