package fallback

import (
	"strings"

	"github.com/jrsteele09/temco-admin/internal/utils"
	"github.com/jrsteele09/temco-admin/services"
)

func member(id int64, no, first, last, email, nic string) services.Member {
	return services.Member{
		ID:           id,
		MembershipNo: no,
		FirstName:    utils.Ptr(first),
		LastName:     utils.Ptr(last),
		FullName:     utils.Ptr(first + " " + last),
		Email:        utils.Ptr(email),
		NIC:          utils.Ptr(nic),
		IsActive:     true,
	}
}

var members = []services.Member{
	member(1, "TM-0001", "Kamal", "Perera", "kamal.perera@gmail.com", "199012345678"),
	member(2, "TM-0002", "Nimal", "Silva", "nimal.silva@yahoo.com", "198845678912"),
	member(3, "TM-0003", "Sunil", "Fernando", "sunil.f@gmail.com", "197523456789"),
	member(4, "TM-0004", "Chamari", "Jayasinghe", "chamari.j@outlook.com", "199267891234"),
	member(5, "TM-0005", "Ruwan", "Wickramasinghe", "ruwan.w@gmail.com", "198534567891"),
	member(6, "TM-0006", "Dilani", "Rajapaksha", "dilani.r@gmail.com", "199478912345"),
	member(7, "TM-0007", "Asanka", "Gunawardena", "asanka.g@hotmail.com", "198156789123"),
	member(8, "TM-0008", "Malini", "Bandara", "malini.b@gmail.com", "197989123456"),
	member(9, "TM-0009", "Tharindu", "Herath", "tharindu.h@gmail.com", "199623456781"),
	member(10, "TM-0010", "Nadeesha", "Kumari", "", "199134567812"),
	member(11, "TM-0011", "Pradeep", "Dissanayake", "pradeep.d@gmail.com", "198712345679"),
	member(12, "TM-0012", "Sanduni", "Amarasinghe", "sanduni.a@gmail.com", "199845678123"),
}

// Members returns a page of the bundled members, searchable by name, email,
// membership number and NIC.
func Members(params services.ListParams) *services.Page[services.Member] {
	return Paginate(members, params, func(m services.Member, term string) bool {
		return ContainsFold(term, m.DisplayName(), m.MembershipNo, utils.Value(m.Email), utils.Value(m.NIC))
	})
}

var users = []services.User{
	{
		ID:        1,
		Username:  "admin",
		FirstName: utils.Ptr("System"),
		LastName:  utils.Ptr("Administrator"),
		FullName:  utils.Ptr("System Administrator"),
		Email:     utils.Ptr("admin@temcobank.com"),
		RoleName:  "Admin",
		IsActive:  true,
	},
}

// Users returns a page of the bundled users.
func Users(params services.ListParams) *services.Page[services.User] {
	return Paginate(users, params, func(u services.User, term string) bool {
		return ContainsFold(term, u.Username, u.DisplayName(), utils.Value(u.Email))
	})
}

var roles = []services.Role{
	{ID: 1, RoleCode: "ADMIN", RoleName: "Admin", Description: "System administrator with full access", UserCount: 1, PermissionCount: 45, IsActive: true},
	{ID: 2, RoleCode: "MEMBER", RoleName: "Member", Description: "Basic member access", UserCount: 177, PermissionCount: 5, IsActive: true},
	{ID: 4, RoleCode: "ACCOUNTANT", RoleName: "Accountant", Description: "Financial operations access", UserCount: 5, PermissionCount: 20, IsActive: true},
	{ID: 5, RoleCode: "FINANCE_CONTROLLER", RoleName: "Finance Controller", Description: "Financial oversight and approvals", PermissionCount: 25, IsActive: true},
	{ID: 6, RoleCode: "CHAIRMAN", RoleName: "Chairman", Description: "Executive oversight access", PermissionCount: 30, IsActive: true},
	{ID: 7, RoleCode: "SUPPLIER", RoleName: "Supplier", Description: "Vendor portal access", PermissionCount: 8, IsActive: true},
	{ID: 8, RoleCode: "DATA_CONTROLLER", RoleName: "Data Controller", Description: "Data management access", PermissionCount: 15, IsActive: true},
	{ID: 9, RoleCode: "DEPARTMENT_HEAD", RoleName: "Department Head", Description: "Department management access", PermissionCount: 22, IsActive: true},
}

// Roles returns a page of the bundled roles.
func Roles(params services.ListParams) *services.Page[services.Role] {
	return Paginate(roles, params, func(r services.Role, term string) bool {
		return ContainsFold(term, r.RoleCode, r.RoleName, r.Description)
	})
}

var activityLogs = []services.ActivityLog{
	{ID: 1, Username: "admin", Action: "LOGIN", Details: "User logged in successfully", IPAddress: "192.168.1.100", Timestamp: "2024-01-28 10:30:45", Status: "success"},
	{ID: 2, Username: "john.doe", Action: "CREATE", Details: "Created new user: jane.smith", IPAddress: "192.168.1.101", Timestamp: "2024-01-28 10:25:30", Status: "success"},
}

// ActivityLogs returns a page of the bundled activity logs, honouring the action filter.
func ActivityLogs(params services.ListParams) *services.Page[services.ActivityLog] {
	logs := activityLogs
	if params.Action != "" && !strings.EqualFold(params.Action, services.FilterAll) {
		logs = nil
		for _, l := range activityLogs {
			if strings.EqualFold(l.Action, params.Action) {
				logs = append(logs, l)
			}
		}
	}
	return Paginate(logs, params, func(l services.ActivityLog, term string) bool {
		return ContainsFold(term, l.Username, l.Action, l.Details)
	})
}
