// Copyright 2026 Shuleni Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"time"
)

// Role is the per-school role of a user. A user holds exactly one role
// per school.
type Role string

const (
	RoleSuperAdmin Role = "super_admin"
	RoleAdmin      Role = "admin"
	RoleTeacher    Role = "teacher"
	RoleViewer     Role = "viewer"
)

func (r Role) Valid() bool {
	switch r {
	case RoleSuperAdmin, RoleAdmin, RoleTeacher, RoleViewer:
		return true
	}
	return false
}

// Assignable reports whether the role may be granted through team
// management. super_admin is only ever granted at school creation.
func (r Role) Assignable() bool {
	return r.Valid() && r != RoleSuperAdmin
}

// CanManageTeam reports whether the role may run team-management
// operations.
func (r Role) CanManageTeam() bool {
	return r == RoleSuperAdmin || r == RoleAdmin
}

type InvitationStatus string

const (
	InvitationPending  InvitationStatus = "pending"
	InvitationAccepted InvitationStatus = "accepted"
)

type School struct {
	ID                string     `db:"id"`
	Name              string     `db:"name"`
	Code              string     `db:"code"`
	Location          string     `db:"location"`
	Phone             string     `db:"phone"`
	Email             string     `db:"email"`
	AcademicYearStart *time.Time `db:"academic_year_start"`
	AcademicYearEnd   *time.Time `db:"academic_year_end"`
	CreatedBy         string     `db:"created_by"`
	CreatedAt         time.Time  `db:"created_at"`
}

type Membership struct {
	ID        string    `db:"id"`
	SchoolID  string    `db:"school_id"`
	UserID    string    `db:"user_id"`
	Role      Role      `db:"role"`
	CreatedAt time.Time `db:"created_at"`
}

type Invitation struct {
	ID        string           `db:"id"`
	SchoolID  string           `db:"school_id"`
	Email     string           `db:"email"`
	Role      Role             `db:"role"`
	InvitedBy string           `db:"invited_by"`
	Status    InvitationStatus `db:"status"`
	CreatedAt time.Time        `db:"created_at"`
}

type Profile struct {
	ID        string    `db:"id"`
	UserID    string    `db:"user_id"`
	Email     string    `db:"email"`
	FullName  string    `db:"full_name"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// Member is the read model of a membership joined with the member's
// profile, as presented on the team-management screen.
type Member struct {
	MembershipID string    `db:"id"`
	SchoolID     string    `db:"school_id"`
	UserID       string    `db:"user_id"`
	Role         Role      `db:"role"`
	Email        string    `db:"email"`
	FullName     string    `db:"full_name"`
	CreatedAt    time.Time `db:"created_at"`
}

type Trade struct {
	ID           string    `db:"id"`
	SchoolID     string    `db:"school_id"`
	Name         string    `db:"name"`
	Abbreviation string    `db:"abbreviation"`
	CreatedAt    time.Time `db:"created_at"`
}

type Class struct {
	ID        string    `db:"id"`
	SchoolID  string    `db:"school_id"`
	Name      string    `db:"name"`
	Level     string    `db:"level"`
	TradeID   *string   `db:"trade_id"`
	CreatedAt time.Time `db:"created_at"`
}

type Student struct {
	ID                 string     `db:"id"`
	SchoolID           string     `db:"school_id"`
	RegistrationNumber string     `db:"registration_number"`
	FullName           string     `db:"full_name"`
	Gender             string     `db:"gender"`
	DateOfBirth        *time.Time `db:"date_of_birth"`
	ClassID            *string    `db:"class_id"`
	TradeID            *string    `db:"trade_id"`
	AcademicYear       string     `db:"academic_year"`
	GuardianName       string     `db:"guardian_name"`
	GuardianPhone      string     `db:"guardian_phone"`
	HomeLocation       string     `db:"home_location"`
	Status             string     `db:"status"`
	AdmissionDate      *time.Time `db:"admission_date"`
	IsDeleted          bool       `db:"is_deleted"`
	CreatedAt          time.Time  `db:"created_at"`
	UpdatedAt          time.Time  `db:"updated_at"`
}

type DisciplineRecord struct {
	ID          string    `db:"id"`
	SchoolID    string    `db:"school_id"`
	StudentID   string    `db:"student_id"`
	RecordType  string    `db:"record_type"`
	Category    string    `db:"category"`
	Description string    `db:"description"`
	ActionTaken string    `db:"action_taken"`
	MistakeDate time.Time `db:"mistake_date"`
	RecordedBy  string    `db:"recorded_by"`
	CreatedAt   time.Time `db:"created_at"`
}
