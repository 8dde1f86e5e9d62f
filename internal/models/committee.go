package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Committee roles
const (
	CommitteeRoleLeader      = "leader"
	CommitteeRoleSecretary   = "secretary"
	CommitteeRoleTreasurer   = "treasurer"
	CommitteeRoleMember      = "member"
	CommitteeRoleCoordinator = "coordinator"
)

// Committee is a working group of members (e.g. maintenance, finance).
type Committee struct {
	ID          string                `gorm:"primaryKey;size:36" json:"id"`
	Name        string                `gorm:"uniqueIndex;size:255;not null" json:"name"`
	Description string                `gorm:"type:text" json:"description"`
	MemberRoles []CommitteeMemberRole `gorm:"foreignKey:CommitteeID" json:"member_roles,omitempty"`
	CreatedAt   time.Time             `json:"created_at"`
	UpdatedAt   time.Time             `json:"updated_at"`
	DeletedAt   gorm.DeletedAt        `gorm:"index" json:"-"`
}

func (Committee) TableName() string { return "committees" }

func (c *Committee) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}

// CommitteeMemberRole records a member's role on a committee, with an
// optional service period.
type CommitteeMemberRole struct {
	ID          string     `gorm:"primaryKey;size:36" json:"id"`
	MemberID    string     `gorm:"size:36;index;not null" json:"member_id"`
	Member      *Member    `gorm:"foreignKey:MemberID" json:"member,omitempty"`
	CommitteeID string     `gorm:"size:36;index;not null" json:"committee_id"`
	Role        string     `gorm:"size:50;not null" json:"role"` // leader, secretary, treasurer, member, coordinator
	StartDate   *time.Time `json:"start_date"`
	EndDate     *time.Time `json:"end_date"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func (CommitteeMemberRole) TableName() string { return "committee_member_roles" }

func (r *CommitteeMemberRole) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}
