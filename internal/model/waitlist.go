package model

type WaitlistEntry struct {
	BaseModel
	Email string `gorm:"uniqueIndex:idx_waitlist_email_topic;size:254" json:"email"`
	Topic string `gorm:"uniqueIndex:idx_waitlist_email_topic;size:40" json:"topic"`
}
