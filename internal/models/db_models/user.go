package db_models

const (
	GenderMale           = "Male"
	GenderFemale         = "Female"
	GenderPreferNotToSay = "Prefer not to say"

	NationalityNotSpecified = "Not specified"
)

// User is a traveller account. PasswordHash is nil for accounts created
// through Google sign-in.
type User struct {
	BaseModel
	FullName        string     `gorm:"size:50;not null"`
	Email           string     `gorm:"size:255;uniqueIndex;not null"`
	PasswordHash    *string    `gorm:"size:255"`
	Nationality     string     `gorm:"size:100;not null"`
	Gender          string     `gorm:"size:32;not null"`
	Age             int
	TravelMode      string     `gorm:"size:64;not null"`
	GoogleID        *string    `gorm:"size:64;uniqueIndex"`
	IsEmailVerified bool       `gorm:"not null;default:false"`
	Bookmarks       []Bookmark `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

func (u *User) HasPassword() bool {
	return u.PasswordHash != nil && *u.PasswordHash != ""
}
