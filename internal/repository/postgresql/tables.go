package postgresql

import "github.com/ptcpms/personnel-backend-go/internal/domain/personnel"

// Table names per personnel type. Staff and trainees keep separate tables
// with identical attendance and leave schemas; every repository in this
// package resolves its target table through these helpers.

func personnelTable(ptype personnel.Type) string {
	if ptype == personnel.TypeStaff {
		return "staff"
	}
	return "trainees"
}

func attendanceTable(ptype personnel.Type) string {
	if ptype == personnel.TypeStaff {
		return "staff_attendance"
	}
	return "trainee_attendance"
}

func leaveTable(ptype personnel.Type) string {
	if ptype == personnel.TypeStaff {
		return "staff_leaves"
	}
	return "trainee_leaves"
}

func archiveTable(ptype personnel.Type) string {
	if ptype == personnel.TypeStaff {
		return "archived_staff"
	}
	return "archived_trainees"
}
