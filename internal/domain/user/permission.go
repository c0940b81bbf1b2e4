package user

type Permission string

const (
	// Self Management
	PermissionViewOwnProfile Permission = "profile.view_own"

	// Leave Management
	PermissionLeaveViewOwn Permission = "leave.view_own"
	PermissionLeaveCreate  Permission = "leave.create"
	PermissionLeaveViewAll Permission = "leave.view_all"
	PermissionLeaveDecide  Permission = "leave.decide"

	// Attendance Management
	PermissionAttendanceViewOwn Permission = "attendance.view_own"
	PermissionAttendanceClock   Permission = "attendance.clock"
	PermissionAttendanceViewAll Permission = "attendance.view_all"
	PermissionAttendanceMark    Permission = "attendance.mark"

	// Employee Management
	PermissionEmployeeViewAll Permission = "employee.view_all"
	PermissionEmployeeManage  Permission = "employee.manage"

	// Payroll Management
	PermissionPayrollViewOwn     Permission = "payroll.view_own"
	PermissionPayrollViewAll     Permission = "payroll.view_all"
	PermissionPayrollRun         Permission = "payroll.run"
	PermissionSalaryConfigManage Permission = "payroll.configure"
)

// RolePermissions is the single authorization policy table: every
// role-gated operation is listed here and nowhere else. Services stay
// free of role logic entirely.
var RolePermissions = map[Role][]Permission{
	RoleAdmin: {
		PermissionViewOwnProfile,
		PermissionLeaveViewOwn,
		PermissionLeaveCreate,
		PermissionLeaveViewAll,
		PermissionLeaveDecide,
		PermissionAttendanceViewOwn,
		PermissionAttendanceClock,
		PermissionAttendanceViewAll,
		PermissionAttendanceMark,
		PermissionEmployeeViewAll,
		PermissionEmployeeManage,
		PermissionPayrollViewOwn,
		PermissionPayrollViewAll,
		PermissionPayrollRun,
		PermissionSalaryConfigManage,
	},
	RoleHR: {
		PermissionViewOwnProfile,
		PermissionLeaveViewOwn,
		PermissionLeaveCreate,
		PermissionLeaveViewAll,
		PermissionLeaveDecide,
		PermissionAttendanceViewOwn,
		PermissionAttendanceClock,
		PermissionAttendanceViewAll,
		PermissionAttendanceMark,
		PermissionEmployeeViewAll,
		PermissionPayrollViewOwn,
		PermissionPayrollViewAll,
		PermissionPayrollRun,
	},
	RoleEmployee: {
		PermissionViewOwnProfile,
		PermissionLeaveViewOwn,
		PermissionLeaveCreate,
		PermissionAttendanceViewOwn,
		PermissionAttendanceClock,
		PermissionPayrollViewOwn,
	},
}

// HasPermission checks if a role has a specific permission
func HasPermission(role Role, permission Permission) bool {
	permissions, exists := RolePermissions[role]
	if !exists {
		return false
	}

	for _, p := range permissions {
		if p == permission {
			return true
		}
	}
	return false
}
