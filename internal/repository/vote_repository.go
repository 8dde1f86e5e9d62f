package repository

import (
	"github.com/thecooperator/backend/internal/models"
	"gorm.io/gorm"
)

// VoteRepository is pure data access for proposals and votes.
type VoteRepository struct {
	db *gorm.DB
}

func NewVoteRepository(db *gorm.DB) *VoteRepository {
	return &VoteRepository{db: db}
}

func (r *VoteRepository) GetProposal(id string) (*models.Proposal, error) {
	var proposal models.Proposal
	if err := r.db.First(&proposal, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &proposal, nil
}

func (r *VoteRepository) CountUsers() (int64, error) {
	var count int64
	err := r.db.Model(&models.User{}).Count(&count).Error
	return count, err
}

func (r *VoteRepository) CountVotesForProposal(proposalID string) (int64, error) {
	var count int64
	err := r.db.Model(&models.Vote{}).
		Where("proposal_id = ?", proposalID).
		Count(&count).Error
	return count, err
}

func (r *VoteRepository) ListVotesForProposal(proposalID string) ([]models.Vote, error) {
	var votes []models.Vote
	err := r.db.Where("proposal_id = ?", proposalID).
		Order("created_at").
		Find(&votes).Error
	return votes, err
}

func (r *VoteRepository) CountVotesForUser(userID string) (int64, error) {
	var count int64
	err := r.db.Model(&models.Vote{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	return count, err
}

func (r *VoteRepository) HasVoted(proposalID, userID string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Vote{}).
		Where("proposal_id = ? AND user_id = ?", proposalID, userID).
		Count(&count).Error
	return count > 0, err
}

func (r *VoteRepository) CreateVote(vote *models.Vote) error {
	return r.db.Create(vote).Error
}
