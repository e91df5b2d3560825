package mockserver

import "github.com/jrsteele09/temco-admin/services"

func defaultCustomers() []services.Customer {
	return []services.Customer{
		{ID: 1, StudentID: "STU001", NIC: "200012345678", FirstName: "Kamal", LastName: "Perera", FullName: "Kamal Perera", Email: "kamal@email.com", MobileNo: "0771234567", DateOfBirth: "2000-05-15", CustomerStatus: "ACTIVE", RegistrationDate: "2024-01-15", BankName: "BOC", EnrollmentCount: 2, OutstandingDueCount: 1},
		{ID: 2, StudentID: "STU002", NIC: "199987654321", FirstName: "Nimal", LastName: "Silva", FullName: "Nimal Silva", Email: "nimal@email.com", MobileNo: "0779876543", DateOfBirth: "1999-08-20", CustomerStatus: "ACTIVE", RegistrationDate: "2024-02-10", BankName: "HNB", EnrollmentCount: 1, OutstandingDueCount: 0},
		{ID: 3, StudentID: "STU003", NIC: "200156789012", FirstName: "Sunil", LastName: "Fernando", FullName: "Sunil Fernando", Email: "sunil@email.com", MobileNo: "0712345678", DateOfBirth: "2001-03-10", CustomerStatus: "ACTIVE", RegistrationDate: "2024-03-05", BankName: "Commercial Bank", EnrollmentCount: 3, OutstandingDueCount: 2},
		{ID: 4, StudentID: "STU004", NIC: "199812340987", FirstName: "Kumari", LastName: "Jayawardena", FullName: "Kumari Jayawardena", Email: "kumari@email.com", MobileNo: "0761234567", DateOfBirth: "1998-11-25", CustomerStatus: "SUSPENDED", RegistrationDate: "2023-12-01", BankName: "Sampath Bank", EnrollmentCount: 1, OutstandingDueCount: 3},
		{ID: 5, StudentID: "STU005", NIC: "200234567890", FirstName: "Ruwan", LastName: "Wickramasinghe", FullName: "Ruwan Wickramasinghe", Email: "ruwan@email.com", MobileNo: "0751234567", DateOfBirth: "2002-07-08", CustomerStatus: "ACTIVE", RegistrationDate: "2024-04-20", BankName: "NSB", EnrollmentCount: 2, OutstandingDueCount: 1},
	}
}

func defaultSummary() services.DashboardSummary {
	return services.DashboardSummary{
		TotalCustomers:     1250,
		ActiveEnrollments:  890,
		PendingPayments:    156,
		OverduePayments:    23,
		TodayCollections:   125000,
		MonthlyCollections: 2450000,
	}
}
