package users

type UserRepo interface {
	Upsert(user *User) error
	GetByID(id int64) (*User, error)
	GetByUsername(username string) (*User, error)
	List(offset, limit int) ([]*User, error)
}
