package users

import "fmt"

// Account is a login the mock API is seeded with.
type Account struct {
	User     User
	Password string
}

// DefaultAccounts are the development logins.
func DefaultAccounts() []Account {
	return []Account{
		{
			User: User{
				ID:       1,
				Username: "admin",
				FullName: "System Administrator",
				Email:    "admin@temcobank.lk",
				Roles:    []RoleType{RoleAdmin},
			},
			Password: "Admin@123",
		},
		{
			User: User{
				ID:       2,
				Username: "cashier",
				FullName: "John Cashier",
				Email:    "cashier@temcobank.lk",
				Roles:    []RoleType{RoleCashier},
			},
			Password: "Cashier@123",
		},
	}
}

// Seed hashes each account's password and stores the user.
func Seed(repo UserRepo, accounts []Account) error {
	for _, a := range accounts {
		hash, err := HashPassword(a.Password)
		if err != nil {
			return fmt.Errorf("hash password for %s: %w", a.User.Username, err)
		}
		u := a.User
		u.PasswordHash = hash
		if err := repo.Upsert(&u); err != nil {
			return fmt.Errorf("store user %s: %w", u.Username, err)
		}
	}
	return nil
}
