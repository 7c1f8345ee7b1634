package model

import (
	"time"
)

type Role string

const (
	RoleStudent    Role = "student"
	RoleInstructor Role = "instructor"
	RoleAdmin      Role = "admin"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	return r == RoleStudent || r == RoleInstructor || r == RoleAdmin
}

type UserProfile struct {
	Id          int64  `json:"id"`
	Email       string `json:"email"`
	Role        Role   `json:"role"`
	TotpEnabled bool   `json:"totp_enabled"`
}

type Classroom struct {
	Id           int64     `json:"id"`
	Name         string    `json:"name"`
	Code         string    `json:"code"`
	InstructorId int64     `json:"instructor_id"`
	CreatedAt    time.Time `json:"created_at"`
}

type Assignment struct {
	Id          int64      `json:"id"`
	ClassroomId int64      `json:"classroom_id"`
	Title       string     `json:"title"`
	Description *string    `json:"description"`
	FileURL     *string    `json:"file_url"`
	DueDate     *time.Time `json:"due_date"`
	CreatedAt   time.Time  `json:"created_at"`
}

type Material struct {
	Id          int64     `json:"id"`
	ClassroomId int64     `json:"classroom_id"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	FileURL     *string   `json:"file_url"`
	CreatedAt   time.Time `json:"created_at"`
}

type Submission struct {
	Id           int64     `json:"id"`
	AssignmentId int64     `json:"assignment_id"`
	Content      *string   `json:"content"`
	Grade        *string   `json:"grade"`
	SubmittedAt  time.Time `json:"submitted_at"`
}

// MfaEnrollment is the server's response to starting a TOTP setup. The
// token binds the later verify call to this enrollment.
type MfaEnrollment struct {
	Secret   string `json:"secret"`
	Otpauth  string `json:"otpauth"`
	MfaToken string `json:"mfa_token"`
}

// FileUpload is an opaque attachment handle. Contents are held in memory
// until the upload request is made.
type FileUpload struct {
	Filename string
	Data     []byte
}
