package lookup

// Kind identifies one enumeration table. The core operates on the underlying
// codes; labels exist only for display.
type Kind string

const (
	KindShiftRole Kind = "shift_role"
	KindWorkType  Kind = "work_type"
	KindLeaveType Kind = "leave_type"
	KindStaffType Kind = "staff_type"
)

var KindValues = []string{
	string(KindShiftRole),
	string(KindWorkType),
	string(KindLeaveType),
	string(KindStaffType),
}

type Option struct {
	Code  string `json:"code"`
	Label string `json:"label"`
}
