package models

// User is an account on the network. Password is stored as given and never serialized.
type User struct {
	ID        uint   `json:"id" gorm:"primaryKey"`
	Username  string `json:"username" gorm:"size:50;uniqueIndex;not null"`
	Firstname string `json:"firstname" gorm:"size:50"`
	Lastname  string `json:"lastname" gorm:"size:50"`
	Email     string `json:"email" gorm:"size:120;uniqueIndex;not null"`
	Password  string `json:"-" gorm:"size:100;not null"`
	IsActive  bool   `json:"is_active" gorm:"not null"`
}

func (User) TableName() string {
	return "users"
}

// CreateUserRequest defines the request body for creating a new user
type CreateUserRequest struct {
	Username  string `json:"username" validate:"required"`
	Firstname string `json:"firstname"`
	Lastname  string `json:"lastname"`
	Email     string `json:"email" validate:"required"`
	Password  string `json:"password" validate:"required"`
	IsActive  *bool  `json:"is_active"`
}

// UpdateUserRequest defines the request body for updating a user.
// Nil fields are left unchanged.
type UpdateUserRequest struct {
	Username  *string `json:"username"`
	Firstname *string `json:"firstname"`
	Lastname  *string `json:"lastname"`
	Email     *string `json:"email"`
	Password  *string `json:"password"`
	IsActive  *bool   `json:"is_active"`
}

// Apply overwrites the fields present in the request.
func (r *UpdateUserRequest) Apply(user *User) {
	if r.Username != nil {
		user.Username = *r.Username
	}
	if r.Firstname != nil {
		user.Firstname = *r.Firstname
	}
	if r.Lastname != nil {
		user.Lastname = *r.Lastname
	}
	if r.Email != nil {
		user.Email = *r.Email
	}
	if r.Password != nil {
		user.Password = *r.Password
	}
	if r.IsActive != nil {
		user.IsActive = *r.IsActive
	}
}
