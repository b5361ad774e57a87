package domain

import "time"

// MemberStatus enumerates staff lifecycle states.
type MemberStatus string

const (
	MemberStatusActive   MemberStatus = "active"
	MemberStatusInactive MemberStatus = "inactive"
)

// MemberStats holds display counters for a team member. They are stored
// independently of the lead collection and are only as fresh as the last
// recompute; TeamService.RecomputeStats derives them from leads on demand.
type MemberStats struct {
	TotalLeads     int     `json:"totalLeads"`
	ActiveLeads    int     `json:"activeLeads"`
	ClosedDeals    int     `json:"closedDeals"`
	ConversionRate float64 `json:"conversionRate"`
}

// TeamMember models a staff record with a role and display stats.
type TeamMember struct {
	ID        string       `json:"id"`
	Name      string       `json:"name"`
	Email     string       `json:"email"`
	Phone     string       `json:"phone,omitempty"`
	Role      Role         `json:"role"`
	Status    MemberStatus `json:"status"`
	JoinDate  string       `json:"joinDate"`
	Stats     MemberStats  `json:"stats"`
	CreatedAt time.Time    `json:"createdAt"`
}
