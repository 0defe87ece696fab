package model

type UserRole string

const (
	Student UserRole = "student"
	Admin   UserRole = "admin"
)

type User struct {
	BaseModel
	Email    string   `gorm:"uniqueIndex;size:254" json:"email"`
	Password string   `json:"-"`
	Name     string   `gorm:"size:100" json:"name"`
	Role     UserRole `gorm:"size:20;default:student" json:"role"`
}
