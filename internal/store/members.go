package store

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/spec-kit/estate-crm/internal/domain"
)

// TeamMemberInput carries caller-supplied fields for member creation.
type TeamMemberInput struct {
	Name  string
	Email string
	Phone string
	Role  domain.Role
}

// TeamMemberPatch describes a shallow partial update for a member.
type TeamMemberPatch struct {
	Name   *string
	Email  *string
	Phone  *string
	Role   *domain.Role
	Status *domain.MemberStatus
	Stats  *domain.MemberStats
}

// AddTeamMember appends a new member with defaults applied and persists.
func (s *Store) AddTeamMember(ctx context.Context, input TeamMemberInput) (domain.TeamMember, error) {
	now := time.Now().UTC()
	member := domain.TeamMember{
		ID:        uuid.NewString(),
		Name:      input.Name,
		Email:     input.Email,
		Phone:     input.Phone,
		Role:      input.Role,
		Status:    domain.MemberStatusActive,
		JoinDate:  now.Format("2006-01-02"),
		Stats:     domain.MemberStats{},
		CreatedAt: now,
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.teamMembers = append(s.teamMembers, member)
	return member, s.persistTeamMembers(ctx)
}

// UpdateTeamMember merges the patch onto the member with the given id.
func (s *Store) UpdateTeamMember(ctx context.Context, id string, patch TeamMemberPatch) (domain.TeamMember, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.memberIndex(id)
	if idx < 0 {
		return domain.TeamMember{}, ErrNotFound
	}
	member := &s.teamMembers[idx]
	if patch.Name != nil {
		member.Name = *patch.Name
	}
	if patch.Email != nil {
		member.Email = *patch.Email
	}
	if patch.Phone != nil {
		member.Phone = *patch.Phone
	}
	if patch.Role != nil {
		member.Role = *patch.Role
	}
	if patch.Status != nil {
		member.Status = *patch.Status
	}
	if patch.Stats != nil {
		member.Stats = *patch.Stats
	}
	return *member, s.persistTeamMembers(ctx)
}

// RemoveTeamMember deletes the member and cascades AssignedTo to nil on
// every lead currently assigned to that member's name. The match is by
// display name, so leads assigned to other names are untouched.
func (s *Store) RemoveTeamMember(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.memberIndex(id)
	if idx < 0 {
		return ErrNotFound
	}
	name := s.teamMembers[idx].Name
	s.teamMembers = append(s.teamMembers[:idx], s.teamMembers[idx+1:]...)

	leadsTouched := false
	for i := range s.leads {
		if s.leads[i].AssignedTo != nil && *s.leads[i].AssignedTo == name {
			s.leads[i].AssignedTo = nil
			leadsTouched = true
		}
	}

	err := s.persistTeamMembers(ctx)
	if leadsTouched {
		if leadsErr := s.persistLeads(ctx); leadsErr != nil {
			err = errors.Join(err, leadsErr)
		}
	}
	return err
}

// GetTeamMember returns a copy of the member with the given id.
func (s *Store) GetTeamMember(id string) (domain.TeamMember, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	idx := s.memberIndex(id)
	if idx < 0 {
		return domain.TeamMember{}, ErrNotFound
	}
	return s.teamMembers[idx], nil
}

// FindTeamMemberByName resolves the weak name reference used by lead
// assignment. First match wins when names collide.
func (s *Store) FindTeamMemberByName(name string) (domain.TeamMember, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.teamMembers {
		if s.teamMembers[i].Name == name {
			return s.teamMembers[i], true
		}
	}
	return domain.TeamMember{}, false
}

func (s *Store) memberIndex(id string) int {
	for i := range s.teamMembers {
		if s.teamMembers[i].ID == id {
			return i
		}
	}
	return -1
}
