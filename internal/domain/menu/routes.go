package menu

import (
	"fmt"

	"github.com/cmlabs-hris/hris-console-go/internal/domain/access"
)

// Console route paths. API handlers are gated by the descriptor of the screen
// they serve.
const (
	PathDashboard          = "/"
	PathAttendanceOwn      = "/absensi"
	PathAttendanceApproval = "/absensi/approval"
	PathAttendanceRecap    = "/absensi/rekap"
	PathOvertimeOwn        = "/lembur"
	PathOvertimeApproval   = "/lembur/approval"
	PathOvertimeHRD        = "/lembur/hrd"
	PathOvertimeHRDApprove = "/lembur/hrd/approve/:id"
	PathTravel             = "/surat-dinas"
	PathTravelApproval     = "/surat-dinas/approval"
	PathPayroll            = "/payroll"
	PathPayrollDetail      = "/payroll/detail/:userId"
	PathPayrollArchive     = "/payroll/arsip"
	PathEmployees          = "/karyawan"
	PathDivisions          = "/divisi"
	PathLocations          = "/lokasi"
	PathApprovalHistory    = "/riwayat-persetujuan"
	PathProfile            = "/profil"
	PathLogin              = "/login"

	// API-only descriptors for lists shared by several screens.
	PathAPIOvertimeList   = "/api/v1/overtime"
	PathAPIAttendanceList = "/api/v1/attendance"
)

// HeadOfficeCompanyID is the only company that manages work locations.
const HeadOfficeCompanyID = "1"

var (
	supervisors = []string{access.RoleAdmin, access.RoleKadiv}
	hrd         = []string{access.RoleAdmin, access.RoleHRD}
	approvers   = []string{access.RoleAdmin, access.RoleKadiv, access.RoleHRD}
	adminOnly   = []string{access.RoleAdmin}
)

// DefaultRoutes returns the console route table. Order is significant: it is
// the in-section order of the menu.
func DefaultRoutes() []access.RouteDescriptor {
	return []access.RouteDescriptor{
		{Path: PathLogin, Access: access.Unrestricted()},
		{Path: PathDashboard, Label: "Dashboard", Section: "Dashboard", Access: access.Unrestricted()},

		{Path: PathAttendanceOwn, Label: "Absensi Saya", Section: "Absensi", Access: access.Unrestricted()},
		{Path: PathAttendanceApproval, Label: "Persetujuan Absensi", Section: "Absensi", Access: access.ForRoles(supervisors...)},
		{Path: PathAttendanceRecap, Label: "Rekap Absensi", Section: "Absensi", Access: access.ForRoles(hrd...)},

		{Path: PathOvertimeOwn, Label: "Pengajuan Lembur", Section: "Lembur", Access: access.Unrestricted()},
		{Path: PathOvertimeApproval, Label: "Persetujuan Lembur", Section: "Lembur", Access: access.ForRoles(supervisors...)},
		{Path: PathOvertimeHRD, Label: "Konfirmasi HRD", Section: "Lembur", Access: access.ForRoles(hrd...)},
		{Path: PathOvertimeHRDApprove, Access: access.ForRoles(hrd...)},

		{Path: PathTravel, Label: "Surat Dinas", Section: "Surat Dinas", Access: access.Unrestricted()},
		{Path: PathTravelApproval, Label: "Persetujuan Surat Dinas", Section: "Surat Dinas", Access: access.ForRoles(supervisors...)},

		{Path: PathPayroll, Label: "Payroll", Section: "Payroll", Access: access.ForRoles(hrd...)},
		{Path: PathPayrollDetail, Access: access.ForRoles(hrd...)},
		{Path: PathPayrollArchive, Label: "Arsip Payroll", Section: "Payroll", Access: access.ForRoles(hrd...)},

		{Path: PathEmployees, Label: "Karyawan", Section: "Master Data", Access: access.ForRoles(adminOnly...)},
		{Path: PathDivisions, Label: "Divisi", Section: "Master Data", Access: access.ForRoles(adminOnly...)},
		{Path: PathLocations, Label: "Lokasi", Section: "Master Data", Access: access.Restricted(adminOnly, []string{HeadOfficeCompanyID})},

		{Path: PathApprovalHistory, Label: "Riwayat Persetujuan", Access: access.ForRoles(approvers...)},
		{Path: PathProfile, Label: "Profil", Access: access.Unrestricted()},

		{Path: PathAPIOvertimeList, Access: access.ForRoles(approvers...)},
		{Path: PathAPIAttendanceList, Access: access.ForRoles(approvers...)},
	}
}

// Table indexes a route list by path.
type Table struct {
	routes []access.RouteDescriptor
	byPath map[string]access.RouteDescriptor
}

// NewTable indexes routes. Duplicate paths are rejected.
func NewTable(routes []access.RouteDescriptor) (*Table, error) {
	byPath := make(map[string]access.RouteDescriptor, len(routes))
	for _, r := range routes {
		if _, dup := byPath[r.Path]; dup {
			return nil, fmt.Errorf("duplicate route path %q", r.Path)
		}
		byPath[r.Path] = r
	}
	cp := make([]access.RouteDescriptor, len(routes))
	copy(cp, routes)
	return &Table{routes: cp, byPath: byPath}, nil
}

// Lookup finds the descriptor registered for path.
func (t *Table) Lookup(path string) (access.RouteDescriptor, error) {
	d, ok := t.byPath[path]
	if !ok {
		return access.RouteDescriptor{}, fmt.Errorf("%s: %w", path, access.ErrRouteUnknown)
	}
	return d, nil
}

// MenuFor builds the menu of the table for session.
func (t *Table) MenuFor(session access.Session) Menu {
	return BuildMenu(t.routes, session)
}
