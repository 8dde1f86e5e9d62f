package services

import (
	"errors"

	"github.com/thecooperator/backend/internal/models"
	"github.com/thecooperator/backend/internal/repository"
	"gorm.io/gorm"
)

// VotePolicyService computes quorum and tallies votes for proposals. Every
// user in the system counts as an eligible voter; votes are unique per
// (user, proposal), so the raw vote count is also the distinct-voter count.
type VotePolicyService struct {
	db     *gorm.DB
	votes  *repository.VoteRepository
	quorum float64
}

func NewVotePolicyService(db *gorm.DB, quorumFraction float64) *VotePolicyService {
	return &VotePolicyService{
		db:     db,
		votes:  repository.NewVoteRepository(db),
		quorum: quorumFraction,
	}
}

// ProposalResults is the outcome summary for one proposal. No winning choice
// is computed; interpreting the tally is the caller's business.
type ProposalResults struct {
	ProposalID string         `json:"proposal_id"`
	Title      string         `json:"title"`
	QuorumMet  bool           `json:"quorum_met"`
	TotalVotes int64          `json:"total_votes"`
	Results    map[string]int `json:"results_summary"`
}

// IsQuorumReached reports whether the fraction of users that have voted on
// the proposal meets the configured quorum. With zero users in the system
// quorum is never reached.
func (s *VotePolicyService) IsQuorumReached(proposalID string) (bool, error) {
	if _, err := s.getProposal(proposalID); err != nil {
		return false, err
	}

	eligible, err := s.votes.CountUsers()
	if err != nil {
		return false, err
	}
	if eligible == 0 {
		return false, nil
	}

	cast, err := s.votes.CountVotesForProposal(proposalID)
	if err != nil {
		return false, err
	}

	return float64(cast)/float64(eligible) >= s.quorum, nil
}

// GetProposalResults returns the quorum flag plus a tally of votes by choice.
func (s *VotePolicyService) GetProposalResults(proposalID string) (*ProposalResults, error) {
	proposal, err := s.getProposal(proposalID)
	if err != nil {
		return nil, err
	}

	quorumMet, err := s.IsQuorumReached(proposalID)
	if err != nil {
		return nil, err
	}

	votes, err := s.votes.ListVotesForProposal(proposalID)
	if err != nil {
		return nil, err
	}

	tally := make(map[string]int)
	for _, v := range votes {
		tally[v.Choice]++
	}

	return &ProposalResults{
		ProposalID: proposal.ID,
		Title:      proposal.Title,
		QuorumMet:  quorumMet,
		TotalVotes: int64(len(votes)),
		Results:    tally,
	}, nil
}

// CastVote records a ballot. A second vote by the same user on the same
// proposal is rejected.
func (s *VotePolicyService) CastVote(proposalID, userID, choice string) (*models.Vote, error) {
	if _, err := s.getProposal(proposalID); err != nil {
		return nil, err
	}

	var user models.User
	if err := s.db.First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	voted, err := s.votes.HasVoted(proposalID, userID)
	if err != nil {
		return nil, err
	}
	if voted {
		return nil, ErrDuplicateVote
	}

	vote := &models.Vote{
		ProposalID: proposalID,
		UserID:     userID,
		Choice:     choice,
	}
	if err := s.votes.CreateVote(vote); err != nil {
		// The unique index backstops the check under concurrency.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateVote
		}
		return nil, err
	}

	return vote, nil
}

func (s *VotePolicyService) getProposal(proposalID string) (*models.Proposal, error) {
	proposal, err := s.votes.GetProposal(proposalID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProposalNotFound
		}
		return nil, err
	}
	return proposal, nil
}
