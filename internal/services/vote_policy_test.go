package services

import (
	"errors"
	"fmt"
	"testing"
)

const testQuorumFraction = 0.5

func TestIsQuorumReached_NoUsers(t *testing.T) {
	db := openTestDB(t)
	policy := NewVotePolicyService(db, testQuorumFraction)
	proposal := createTestProposal(t, db, "Repaint the hallway")

	reached, err := policy.IsQuorumReached(proposal.ID)
	if err != nil {
		t.Fatalf("IsQuorumReached failed: %v", err)
	}
	if reached {
		t.Error("quorum can never be reached with zero users")
	}
}

func TestIsQuorumReached_ProposalNotFound(t *testing.T) {
	db := openTestDB(t)
	policy := NewVotePolicyService(db, testQuorumFraction)

	_, err := policy.IsQuorumReached("no-such-proposal")
	if !errors.Is(err, ErrProposalNotFound) {
		t.Errorf("expected ErrProposalNotFound, got %v", err)
	}
}

func TestIsQuorumReached_Boundary(t *testing.T) {
	db := openTestDB(t)
	policy := NewVotePolicyService(db, testQuorumFraction)
	proposal := createTestProposal(t, db, "New bike racks")

	users := make([]string, 4)
	for i := range users {
		u := createTestUser(t, db, fmt.Sprintf("user%d@example.com", i))
		users[i] = u.ID
	}

	// 1 of 4 votes: 0.25 < 0.5
	if _, err := policy.CastVote(proposal.ID, users[0], "yes"); err != nil {
		t.Fatalf("CastVote failed: %v", err)
	}
	reached, err := policy.IsQuorumReached(proposal.ID)
	if err != nil {
		t.Fatalf("IsQuorumReached failed: %v", err)
	}
	if reached {
		t.Error("quorum should not be met at 1/4 participation")
	}

	// 2 of 4 votes: exactly 0.5, the threshold is inclusive
	if _, err := policy.CastVote(proposal.ID, users[1], "no"); err != nil {
		t.Fatalf("CastVote failed: %v", err)
	}
	reached, err = policy.IsQuorumReached(proposal.ID)
	if err != nil {
		t.Fatalf("IsQuorumReached failed: %v", err)
	}
	if !reached {
		t.Error("quorum should be met at exactly 2/4 participation")
	}
}

func TestCastVote_Success(t *testing.T) {
	db := openTestDB(t)
	policy := NewVotePolicyService(db, testQuorumFraction)
	proposal := createTestProposal(t, db, "Install solar panels")
	user := createTestUser(t, db, "alice@example.com")

	vote, err := policy.CastVote(proposal.ID, user.ID, "yes")
	if err != nil {
		t.Fatalf("CastVote failed: %v", err)
	}
	if vote.ID == "" {
		t.Error("vote should get an ID on create")
	}
	if vote.Choice != "yes" {
		t.Errorf("Choice = %q, expected %q", vote.Choice, "yes")
	}
}

func TestCastVote_Duplicate(t *testing.T) {
	db := openTestDB(t)
	policy := NewVotePolicyService(db, testQuorumFraction)
	proposal := createTestProposal(t, db, "Install solar panels")
	user := createTestUser(t, db, "alice@example.com")

	if _, err := policy.CastVote(proposal.ID, user.ID, "yes"); err != nil {
		t.Fatalf("first vote failed: %v", err)
	}

	// A second ballot is rejected even when the choice differs.
	_, err := policy.CastVote(proposal.ID, user.ID, "no")
	if !errors.Is(err, ErrDuplicateVote) {
		t.Errorf("expected ErrDuplicateVote, got %v", err)
	}
}

func TestCastVote_SameUserDifferentProposals(t *testing.T) {
	db := openTestDB(t)
	policy := NewVotePolicyService(db, testQuorumFraction)
	first := createTestProposal(t, db, "Proposal one")
	second := createTestProposal(t, db, "Proposal two")
	user := createTestUser(t, db, "alice@example.com")

	if _, err := policy.CastVote(first.ID, user.ID, "yes"); err != nil {
		t.Fatalf("vote on first proposal failed: %v", err)
	}
	if _, err := policy.CastVote(second.ID, user.ID, "no"); err != nil {
		t.Errorf("uniqueness is per proposal, second vote should succeed: %v", err)
	}
}

func TestCastVote_UserNotFound(t *testing.T) {
	db := openTestDB(t)
	policy := NewVotePolicyService(db, testQuorumFraction)
	proposal := createTestProposal(t, db, "Install solar panels")

	_, err := policy.CastVote(proposal.ID, "no-such-user", "yes")
	if !errors.Is(err, ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound, got %v", err)
	}
}

func TestCastVote_ProposalNotFound(t *testing.T) {
	db := openTestDB(t)
	policy := NewVotePolicyService(db, testQuorumFraction)
	user := createTestUser(t, db, "alice@example.com")

	_, err := policy.CastVote("no-such-proposal", user.ID, "yes")
	if !errors.Is(err, ErrProposalNotFound) {
		t.Errorf("expected ErrProposalNotFound, got %v", err)
	}
}

func TestGetProposalResults_Tally(t *testing.T) {
	db := openTestDB(t)
	policy := NewVotePolicyService(db, testQuorumFraction)
	proposal := createTestProposal(t, db, "Renovate the courtyard")

	choices := []string{"yes", "yes", "no", "abstain"}
	for i, choice := range choices {
		user := createTestUser(t, db, fmt.Sprintf("user%d@example.com", i))
		if _, err := policy.CastVote(proposal.ID, user.ID, choice); err != nil {
			t.Fatalf("CastVote failed: %v", err)
		}
	}

	results, err := policy.GetProposalResults(proposal.ID)
	if err != nil {
		t.Fatalf("GetProposalResults failed: %v", err)
	}

	if results.ProposalID != proposal.ID {
		t.Errorf("ProposalID = %q, expected %q", results.ProposalID, proposal.ID)
	}
	if results.Title != "Renovate the courtyard" {
		t.Errorf("Title = %q, expected %q", results.Title, "Renovate the courtyard")
	}
	if results.TotalVotes != 4 {
		t.Errorf("TotalVotes = %d, expected 4", results.TotalVotes)
	}
	if !results.QuorumMet {
		t.Error("quorum should be met with full participation")
	}
	if results.Results["yes"] != 2 {
		t.Errorf("yes = %d, expected 2", results.Results["yes"])
	}
	if results.Results["no"] != 1 {
		t.Errorf("no = %d, expected 1", results.Results["no"])
	}
	if results.Results["abstain"] != 1 {
		t.Errorf("abstain = %d, expected 1", results.Results["abstain"])
	}
}

func TestGetProposalResults_NoVotes(t *testing.T) {
	db := openTestDB(t)
	policy := NewVotePolicyService(db, testQuorumFraction)
	proposal := createTestProposal(t, db, "Quiet proposal")
	createTestUser(t, db, "alice@example.com")

	results, err := policy.GetProposalResults(proposal.ID)
	if err != nil {
		t.Fatalf("GetProposalResults failed: %v", err)
	}
	if results.TotalVotes != 0 {
		t.Errorf("TotalVotes = %d, expected 0", results.TotalVotes)
	}
	if results.QuorumMet {
		t.Error("quorum should not be met with no votes")
	}
	if len(results.Results) != 0 {
		t.Errorf("tally should be empty, got %v", results.Results)
	}
}
